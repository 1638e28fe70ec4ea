//go:build windows

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"proctiller/pkg/process"
)

var errNoMatch = errors.New("no matching process")

func newFindCmd(opts *options) *cobra.Command {
	var (
		name       string
		all        bool
		title      string
		foreground bool
		self       bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the pid of a process located by name, window or identity",
		Long: `Print the pid of a process located by executable name, window title,
foreground window, or the pid of proctiller itself.

Name matching ignores case. When several processes share the name, the one
enumerated last is printed; pass --all to print every match in
enumeration order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if all {
				if name == "" {
					return errors.New("--all requires --name")
				}
				pids, n := process.AllByExecutableName(nil, name)
				if n == 0 {
					return fmt.Errorf("%w named %q", errNoMatch, name)
				}
				for _, pid := range pids {
					fmt.Fprintln(out, pid)
				}
				return nil
			}

			var (
				pid uint32
				ok  bool
			)
			switch {
			case name != "":
				pid, ok = process.ByExecutableName(name)
			case title != "":
				pid, ok = process.ByWindowTitle(title)
			case foreground:
				pid, ok = process.ByForegroundWindow()
			case self:
				pid, ok = process.CurrentID(), true
			}
			if !ok {
				return errNoMatch
			}

			fmt.Fprintln(out, pid)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "Executable name, e.g. notepad.exe")
	flags.BoolVar(&all, "all", false, "Print every process matching --name")
	flags.StringVar(&title, "title", "", "Exact title of a top-level window")
	flags.BoolVar(&foreground, "foreground", false, "Owner of the foreground window")
	flags.BoolVar(&self, "self", false, "This process")
	cmd.MarkFlagsOneRequired("name", "title", "foreground", "self")
	cmd.MarkFlagsMutuallyExclusive("name", "title", "foreground", "self")

	return cmd
}
