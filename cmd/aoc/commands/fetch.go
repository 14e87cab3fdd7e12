package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc2023/internal/days"
)

func fetchCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "fetch <day>",
		Short: "Download a day's puzzle input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := days.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%s not recognized", args[0])
			}
			rec, err := appCtx.Inputs.Ensure(cmd.Context(), u, passphrase, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d bytes, %s)\n", u.Name, rec.Path, rec.Bytes, rec.Checksum)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "download even if the input file exists")
	return cmd
}
