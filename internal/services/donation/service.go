package donation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sementinha/internal/domain"
)

// Service records donations and lists them per user.
type Service struct {
	users     domain.UserStore
	campaigns domain.CampaignStore
	donations domain.DonationStore
	log       zerolog.Logger
	now       func() time.Time
}

// New returns a donation service backed by the given stores.
func New(
	users domain.UserStore,
	campaigns domain.CampaignStore,
	donations domain.DonationStore,
	log zerolog.Logger,
) *Service {
	return &Service{
		users:     users,
		campaigns: campaigns,
		donations: donations,
		log:       log,
		now:       time.Now,
	}
}

// Donate records amount from the user with the given email to the campaign
// whose name matches campaignName case-insensitively.
func (s *Service) Donate(email, campaignName string, amount domain.Money) (domain.DonationReceipt, error) {
	if !amount.IsPositive() {
		return domain.DonationReceipt{}, fmt.Errorf("donate %s: %w", amount, domain.ErrInvalidAmount)
	}
	u, err := s.user(email)
	if err != nil {
		return domain.DonationReceipt{}, fmt.Errorf("donate: %w", err)
	}
	matches := s.campaigns.CampaignsByName(strings.TrimSpace(campaignName))
	if len(matches) == 0 {
		return domain.DonationReceipt{}, fmt.Errorf("donate: %q: %w", campaignName, domain.ErrCampaignNotFound)
	}
	if len(matches) > 1 {
		return domain.DonationReceipt{}, fmt.Errorf("donate: %q: %w", campaignName, domain.ErrAmbiguousCampaign)
	}
	return s.record(u, matches[0], amount)
}

// DonateAt records amount from the user with the given email to the campaign
// at the given one-based position of the campaign listing.
func (s *Service) DonateAt(email string, index int, amount domain.Money) (domain.DonationReceipt, error) {
	if !amount.IsPositive() {
		return domain.DonationReceipt{}, fmt.Errorf("donate %s: %w", amount, domain.ErrInvalidAmount)
	}
	u, err := s.user(email)
	if err != nil {
		return domain.DonationReceipt{}, fmt.Errorf("donate: %w", err)
	}
	c, ok := s.campaigns.CampaignAt(index - 1)
	if !ok {
		return domain.DonationReceipt{}, fmt.Errorf("donate: campaign %d: %w", index, domain.ErrIndexOutOfRange)
	}
	return s.record(u, c, amount)
}

func (s *Service) record(u domain.User, c domain.Campaign, amount domain.Money) (domain.DonationReceipt, error) {
	d := domain.Donation{
		ID:         domain.DonationID(uuid.NewString()),
		UserID:     u.ID,
		CampaignID: c.ID,
		Amount:     amount,
		CreatedAt:  s.now().UTC(),
	}
	updated, err := s.donations.RecordDonation(d)
	if err != nil {
		return domain.DonationReceipt{}, fmt.Errorf("donate: %w", err)
	}
	s.log.Debug().
		Str("donation_id", d.ID.String()).
		Str("user_id", u.ID.String()).
		Str("campaign_id", c.ID.String()).
		Stringer("amount", amount).
		Stringer("total_raised", updated.TotalRaised).
		Bool("goal_reached", updated.GoalReached()).
		Msg("donation recorded")
	return domain.DonationReceipt{Donation: d, Campaign: updated}, nil
}

// ListDonationsForUser returns the donations made by the user with the given
// email, in the order they were made.
func (s *Service) ListDonationsForUser(email string) ([]domain.DonationLine, error) {
	u, err := s.user(email)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.DonationLine, 0, len(u.Donations))
	for _, id := range u.Donations {
		d, ok := s.donations.Donation(id)
		if !ok {
			continue
		}
		c, _ := s.campaigns.Campaign(d.CampaignID)
		lines = append(lines, domain.DonationLine{Donation: d, CampaignName: c.Name})
	}
	return lines, nil
}

func (s *Service) user(email string) (domain.User, error) {
	u, ok := s.users.UserByEmail(strings.TrimSpace(email))
	if !ok {
		return domain.User{}, fmt.Errorf("%q: %w", email, domain.ErrUserNotFound)
	}
	return u, nil
}

// Compile-time assertion that Service implements domain.DonationService.
var _ domain.DonationService = (*Service)(nil)
