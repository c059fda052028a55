package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sementinha/internal/shell"
)

// run <script>: feed the menu from a file, one answer per line.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run menu answers from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()

			return shell.New(appCtx, f, cmd.OutOrStdout()).
				WithExportFormat(exportFormat()).
				Run(cmd.Context())
		},
	}
}
