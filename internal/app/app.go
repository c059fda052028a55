package app

import (
	"github.com/rs/zerolog"

	"sementinha/internal/domain"
)

// App bundles the services available to commands and the shell.
type App struct {
	Config       Config
	Log          zerolog.Logger
	Registration domain.RegistrationService
	Campaigns    domain.CampaignService
	Donations    domain.DonationService
	Export       domain.ExportService
	Sealer       domain.Sealer
}

// ExportOptions returns the export options implied by the configuration.
func (a *App) ExportOptions(format domain.ExportFormat) domain.ExportOptions {
	return domain.ExportOptions{
		Dir:        a.Config.ExportDir,
		Format:     format,
		Passphrase: a.Config.SealPassphrase,
	}
}
