//go:build windows

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"proctiller/pkg/process"
)

func newOpenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "open PID",
		Short: "Check that a process can be opened with full access",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}

			p, err := process.Open(pid)
			if err != nil {
				return err
			}
			defer p.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "opened pid %d (handle 0x%X)\n", p.PID(), p.Handle())
			return nil
		},
	}
}
