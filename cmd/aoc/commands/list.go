package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc2023/internal/days"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List days and the state of their inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, u := range days.Units {
				st, err := appCtx.Inputs.Status(u)
				if err != nil {
					return err
				}
				state := "missing"
				if st.Present {
					state = "present"
				}
				if st.Known {
					fmt.Fprintf(out, "%-7s %-8s %s\n", u.Name, state, st.Record.Checksum)
				} else {
					fmt.Fprintf(out, "%-7s %s\n", u.Name, state)
				}
			}
			return nil
		},
	}
}
