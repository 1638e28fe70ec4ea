//go:build windows

package cli

import (
	"github.com/spf13/cobra"

	"proctiller/internal/tui"
)

func newUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse and control processes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), opts.cfg)
		},
	}
}
