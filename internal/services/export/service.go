package export

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"sementinha/internal/domain"
)

// Service collects the registry content and writes it as artifacts.
type Service struct {
	reg       domain.Registry
	artifacts domain.ArtifactStore
	sealer    domain.Sealer
	log       zerolog.Logger
}

// New returns an export service. sealer may be nil when sealed exports are
// not needed.
func New(reg domain.Registry, artifacts domain.ArtifactStore, sealer domain.Sealer, log zerolog.Logger) *Service {
	return &Service{reg: reg, artifacts: artifacts, sealer: sealer, log: log}
}

// ExportAll writes users, projects and campaigns into opts.Dir, replacing any
// previous export, and returns the written paths.
func (s *Service) ExportAll(ctx context.Context, opts domain.ExportOptions) ([]string, error) {
	rec := s.Records()

	var (
		artifacts []domain.Artifact
		err       error
	)
	switch opts.Format {
	case "", domain.ExportText:
		artifacts = renderText(rec)
	case domain.ExportJSON:
		artifacts, err = renderJSON(rec)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
	default:
		return nil, fmt.Errorf("export: %q: %w", opts.Format, domain.ErrUnknownFormat)
	}

	sealed := opts.Passphrase != ""
	var plain []string
	if sealed {
		for _, a := range artifacts {
			plain = append(plain, a.Name)
		}
		if artifacts, err = s.seal(opts.Passphrase, artifacts); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	paths, err := s.artifacts.WriteArtifacts(ctx, dir, artifacts)
	if err != nil {
		return paths, fmt.Errorf("export: %w", err)
	}
	if sealed {
		// Plaintext from an earlier unsealed export would sit next to the
		// sealed copy.
		removed, err := s.artifacts.RemoveArtifacts(ctx, dir, plain)
		if err != nil {
			return paths, fmt.Errorf("export: %w", err)
		}
		if len(removed) > 0 {
			s.log.Warn().Strs("paths", removed).Msg("removed plaintext export replaced by sealed copy")
		}
	}
	s.log.Debug().Strs("paths", paths).Bool("sealed", sealed).Msg("export written")
	return paths, nil
}

// Records assembles the registry content in registration order.
func (s *Service) Records() domain.ExportRecords {
	orgs := s.reg.Organizations()
	orgNames := make(map[domain.OrganizationID]string, len(orgs))
	for _, org := range orgs {
		orgNames[org.ID] = org.Name
	}

	campaigns := s.reg.Campaigns()
	campaignNames := make(map[domain.CampaignID]string, len(campaigns))
	crs := make([]domain.CampaignRecord, 0, len(campaigns))
	for _, c := range campaigns {
		campaignNames[c.ID] = c.Name
		crs = append(crs, domain.CampaignRecord{Campaign: c, OrganizationName: orgNames[c.OrganizationID]})
	}

	users := s.reg.Users()
	urs := make([]domain.UserRecord, 0, len(users))
	for _, u := range users {
		lines := make([]domain.DonationLine, 0, len(u.Donations))
		for _, id := range u.Donations {
			if d, ok := s.reg.Donation(id); ok {
				lines = append(lines, domain.DonationLine{Donation: d, CampaignName: campaignNames[d.CampaignID]})
			}
		}
		urs = append(urs, domain.UserRecord{User: u, Donations: lines})
	}

	return domain.ExportRecords{Users: urs, Organizations: orgs, Campaigns: crs}
}

func (s *Service) seal(passphrase string, artifacts []domain.Artifact) ([]domain.Artifact, error) {
	if s.sealer == nil {
		return nil, fmt.Errorf("sealing is not configured")
	}
	out := make([]domain.Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		ct, err := s.sealer.Seal(passphrase, a.Name, a.Body)
		if err != nil {
			return nil, fmt.Errorf("seal %s: %w", a.Name, err)
		}
		out = append(out, domain.Artifact{Name: a.Name + domain.SealedExt, Body: ct})
	}
	return out, nil
}

// Compile-time assertion that Service implements domain.ExportService.
var _ domain.ExportService = (*Service)(nil)
