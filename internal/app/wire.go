package app

import (
	"github.com/rs/zerolog"

	"sementinha/internal/services/campaign"
	"sementinha/internal/services/donation"
	"sementinha/internal/services/export"
	"sementinha/internal/services/registration"
	"sementinha/internal/store"
)

// New constructs the dependency graph around a fresh, empty registry.
func New(cfg Config, log zerolog.Logger) *App {
	reg := store.NewRegistry()
	envelope := store.NewEnvelope()

	return &App{
		Config:       cfg,
		Log:          log,
		Registration: registration.New(reg, reg, log.With().Str("service", "registration").Logger()),
		Campaigns:    campaign.New(reg, reg, log.With().Str("service", "campaign").Logger()),
		Donations:    donation.New(reg, reg, reg, log.With().Str("service", "donation").Logger()),
		Export: export.New(
			reg,
			store.NewArtifactFileStore(),
			envelope,
			log.With().Str("service", "export").Logger(),
		),
		Sealer: envelope,
	}
}
