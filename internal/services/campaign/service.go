package campaign

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sementinha/internal/domain"
)

// Service creates and lists campaigns.
type Service struct {
	orgs      domain.OrganizationStore
	campaigns domain.CampaignStore
	log       zerolog.Logger
	now       func() time.Time
}

// New returns a campaign service backed by the given stores.
func New(orgs domain.OrganizationStore, campaigns domain.CampaignStore, log zerolog.Logger) *Service {
	return &Service{orgs: orgs, campaigns: campaigns, log: log, now: time.Now}
}

// CreateCampaign creates a campaign under the organization with exactly the
// given name.
func (s *Service) CreateCampaign(
	name, organizationName, objective, description string,
	goal domain.Money,
) (domain.Campaign, error) {
	if err := checkCampaign(name, goal); err != nil {
		return domain.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}
	org, ok := s.orgs.OrganizationByName(organizationName)
	if !ok {
		return domain.Campaign{}, fmt.Errorf("create campaign: %q: %w", organizationName, domain.ErrOrganizationNotFound)
	}
	return s.create(org, name, objective, description, goal)
}

// CreateCampaignAt creates a campaign under the organization at the given
// one-based position of the organization listing.
func (s *Service) CreateCampaignAt(
	index int,
	name, objective, description string,
	goal domain.Money,
) (domain.Campaign, error) {
	if err := checkCampaign(name, goal); err != nil {
		return domain.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}
	org, ok := s.orgs.OrganizationAt(index - 1)
	if !ok {
		return domain.Campaign{}, fmt.Errorf("create campaign: organization %d: %w", index, domain.ErrIndexOutOfRange)
	}
	return s.create(org, name, objective, description, goal)
}

func (s *Service) create(
	org domain.Organization,
	name, objective, description string,
	goal domain.Money,
) (domain.Campaign, error) {
	c, err := s.campaigns.AddCampaign(domain.Campaign{
		ID:             domain.CampaignID(uuid.NewString()),
		OrganizationID: org.ID,
		Name:           strings.TrimSpace(name),
		Objective:      strings.TrimSpace(objective),
		Description:    strings.TrimSpace(description),
		Goal:           goal,
		CreatedAt:      s.now().UTC(),
	})
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}
	s.log.Debug().
		Str("campaign_id", c.ID.String()).
		Str("organization_id", org.ID.String()).
		Stringer("goal", c.Goal).
		Msg("campaign created")
	return c, nil
}

// ListCampaigns returns every campaign in creation order with its status.
func (s *Service) ListCampaigns() []domain.CampaignStatus {
	return s.statuses(s.campaigns.Campaigns())
}

// CampaignsForOrganization lists the campaigns of the organization with
// exactly the given name, in creation order.
func (s *Service) CampaignsForOrganization(name string) ([]domain.CampaignStatus, error) {
	org, ok := s.orgs.OrganizationByName(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrOrganizationNotFound)
	}
	cs := make([]domain.Campaign, 0, len(org.Campaigns))
	for _, id := range org.Campaigns {
		if c, ok := s.campaigns.Campaign(id); ok {
			cs = append(cs, c)
		}
	}
	return s.statuses(cs), nil
}

func (s *Service) statuses(cs []domain.Campaign) []domain.CampaignStatus {
	out := make([]domain.CampaignStatus, 0, len(cs))
	for _, c := range cs {
		org, _ := s.orgs.Organization(c.OrganizationID)
		out = append(out, domain.CampaignStatus{
			Campaign:         c,
			OrganizationName: org.Name,
			GoalReached:      c.GoalReached(),
		})
	}
	return out
}

// checkCampaign validates the fields that do not depend on registry state.
func checkCampaign(name string, goal domain.Money) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrEmptyName
	}
	if !goal.IsPositive() {
		return fmt.Errorf("goal %s: %w", goal, domain.ErrInvalidAmount)
	}
	return nil
}

// Compile-time assertion that Service implements domain.CampaignService.
var _ domain.CampaignService = (*Service)(nil)
