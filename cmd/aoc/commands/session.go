package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc2023/internal/crypto"
	"aoc2023/internal/domain"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the adventofcode.com session cookie",
	}
	cmd.AddCommand(sessionSetCmd(), sessionFingerprintCmd())
	return cmd
}

func sessionSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <token>",
		Short: "Encrypt and store the session cookie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			token := domain.SessionToken(args[0])
			if err := appCtx.Sessions.SaveSession(passphrase, token); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session stored.\nFingerprint: %s\n", crypto.Fingerprint([]byte(token)))
			return nil
		},
	}
}

func sessionFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the session cookie fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := appCtx.Inputs.Token(passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint([]byte(token)))
			return nil
		},
	}
}
