//go:build windows

package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"proctiller/pkg/process"
)

func newKillCmd(opts *options) *cobra.Command {
	var code uint32

	cmd := &cobra.Command{
		Use:   "kill PID",
		Short: "Terminate a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("code") {
				code = opts.cfg.Kill.ExitCode
			}

			p, err := process.Open(pid)
			if err != nil {
				return err
			}
			defer p.Close()

			if err := p.Terminate(code); err != nil {
				return err
			}
			logrus.WithField("pid", pid).Infof("Terminated with exit code %d", code)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&code, "code", 1, "Exit code for the terminated process")
	return cmd
}
