//go:build windows

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/windows"

	"proctiller/pkg/process"
)

func newLaunchCmd(opts *options) *cobra.Command {
	var (
		dir       string
		suspended bool
		wait      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "launch PATH [ARGS...]",
		Short: "Start a process, optionally suspended, and print its pid",
		Long: `Start a process, optionally suspended, and print its pid.

Arguments after PATH are passed to the new process; flags must come
before PATH. With --wait the command blocks until the primary thread of
the new process exits or the duration elapses, whichever comes first. A
suspended process stays suspended after proctiller exits.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			launch := opts.cfg.Launch
			flags := cmd.Flags()
			if flags.Changed("dir") {
				launch.Dir = dir
			}
			if flags.Changed("suspended") {
				launch.Suspended = suspended
			}
			if flags.Changed("wait") {
				launch.Timeout = wait
			}

			quoted := make([]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				quoted = append(quoted, windows.EscapeArg(arg))
			}

			p := process.New()
			defer p.Close()

			pid, err := p.CreateAndOpen(process.CreateOptions{
				Path:      args[0],
				Args:      strings.Join(quoted, " "),
				Dir:       launch.Dir,
				Suspended: launch.Suspended,
				Timeout:   launch.Timeout,
			})
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{"pid": pid, "suspended": launch.Suspended}).Info("Launched ", args[0])
			fmt.Fprintln(cmd.OutOrStdout(), pid)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVar(&dir, "dir", "", "Working directory of the new process")
	flags.BoolVar(&suspended, "suspended", false, "Create the process with its primary thread suspended")
	flags.DurationVar(&wait, "wait", 0, "Wait up to this long for the primary thread (0 disables)")
	return cmd
}
