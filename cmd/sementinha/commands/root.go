package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"sementinha/internal/app"
	"sementinha/internal/domain"
)

var (
	envName    string
	exportDir  string
	format     string
	passphrase string
	appCtx     *app.App
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sementinha",
		Short:        "Donation campaign registry",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := domain.ParseExportFormat(format); err != nil {
				return fmt.Errorf("--format: %w", err)
			}
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if envName != "" {
				cfg.Env = envName
			}
			if exportDir != "" {
				cfg.ExportDir = exportDir
			}
			if passphrase != "" {
				cfg.SealPassphrase = passphrase
			}

			logger := app.NewLogger(cfg, cmd.ErrOrStderr())
			appCtx = app.New(cfg, logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envName, "env", "", "environment name (development enables console logs)")
	root.PersistentFlags().StringVar(&exportDir, "export-dir", "", "directory for exported files (default $SEMENTINHA_EXPORT_DIR or .)")
	root.PersistentFlags().StringVar(&format, "format", string(domain.ExportText), "export format: text or json")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal exports")

	root.AddCommand(shellCmd(), runCmd(), demoCmd(), unsealCmd())
	return root
}

// exportFormat is only called after PersistentPreRunE has checked the flag.
func exportFormat() domain.ExportFormat {
	f, _ := domain.ParseExportFormat(format)
	return f
}
