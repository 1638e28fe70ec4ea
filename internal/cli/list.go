//go:build windows

package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"proctiller/pkg/process"
)

func newListCmd(opts *options) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List running processes sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := process.List()
			if err != nil {
				return fmt.Errorf("list processes: %w", err)
			}

			if name != "" {
				infos = slices.DeleteFunc(infos, func(info process.Info) bool {
					return !strings.EqualFold(info.Exe, name)
				})
			}
			slices.SortFunc(infos, func(a, b process.Info) int {
				return cmp.Or(
					cmp.Compare(strings.ToLower(a.Exe), strings.ToLower(b.Exe)),
					cmp.Compare(a.PID, b.PID),
				)
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PID\tPPID\tNAME")
			for _, info := range infos {
				fmt.Fprintf(w, "%d\t%d\t%s\n", info.PID, info.ParentPID, info.Exe)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Only list processes with this executable name")
	return cmd
}
