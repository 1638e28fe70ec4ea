//go:build windows

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"proctiller/internal/procinfo"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info PID",
		Short: "Show details of a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}

			details, err := procinfo.Describe(cmd.Context(), pid)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, f := range details.Fields() {
				fmt.Fprintf(w, "%s:\t%s\n", f.Label, f.Value)
			}
			return w.Flush()
		},
	}
}
