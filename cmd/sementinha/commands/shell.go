package commands

import (
	"github.com/spf13/cobra"

	"sementinha/internal/shell"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.New(appCtx, cmd.InOrStdin(), cmd.OutOrStdout()).
				WithExportFormat(exportFormat()).
				Run(cmd.Context())
		},
	}
}
