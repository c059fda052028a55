package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sementinha/internal/domain"
)

func unsealCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "unseal <file>",
		Short: "Decrypt a sealed export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass := appCtx.Config.SealPassphrase
			if pass == "" {
				return fmt.Errorf("passphrase required (-p or SEMENTINHA_SEAL_PASSPHRASE)")
			}
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			// Sealed artifacts only open under their original name.
			name := strings.TrimSuffix(filepath.Base(args[0]), domain.SealedExt)
			pt, err := appCtx.Sealer.Open(pass, name, b)
			if err != nil {
				return fmt.Errorf("unseal %s: %w", args[0], err)
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(pt)
				return err
			}
			return os.WriteFile(out, pt, 0o600)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write plaintext to this file instead of stdout")
	return cmd
}
