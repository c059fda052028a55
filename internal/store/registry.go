package store

import (
	"fmt"
	"sync"

	"golang.org/x/text/cases"

	"sementinha/internal/domain"
)

// Registry is the in-memory arena for organizations, users, campaigns and
// donations. Entities are kept in maps keyed by identifier with a separate
// slice recording insertion order. Every read returns a copy.
//
// A single lock covers all four collections, so operations that touch more
// than one of them (campaign creation, donations) are atomic.
type Registry struct {
	mu sync.RWMutex

	orgs     map[domain.OrganizationID]*domain.Organization
	orgOrder []domain.OrganizationID

	users     map[domain.UserID]*domain.User
	userOrder []domain.UserID

	campaigns     map[domain.CampaignID]*domain.Campaign
	campaignOrder []domain.CampaignID

	donations map[domain.DonationID]*domain.Donation
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		orgs:      make(map[domain.OrganizationID]*domain.Organization),
		users:     make(map[domain.UserID]*domain.User),
		campaigns: make(map[domain.CampaignID]*domain.Campaign),
		donations: make(map[domain.DonationID]*domain.Donation),
	}
}

// ---------- Organizations ----------

// AddOrganization stores org unless its name is already registered.
func (r *Registry) AddOrganization(org domain.Organization) (domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orgs[org.ID]; exists {
		return domain.Organization{}, fmt.Errorf("organization id %s: %w", org.ID, domain.ErrDuplicate)
	}
	for _, id := range r.orgOrder {
		if r.orgs[id].Name == org.Name {
			return domain.Organization{}, fmt.Errorf("organization %q: %w", org.Name, domain.ErrDuplicateName)
		}
	}

	stored := cloneOrganization(org)
	stored.Campaigns = nil
	r.orgs[stored.ID] = &stored
	r.orgOrder = append(r.orgOrder, stored.ID)
	return cloneOrganization(stored), nil
}

func (r *Registry) Organization(id domain.OrganizationID) (domain.Organization, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	org, ok := r.orgs[id]
	if !ok {
		return domain.Organization{}, false
	}
	return cloneOrganization(*org), true
}

// OrganizationByName matches the name exactly.
func (r *Registry) OrganizationByName(name string) (domain.Organization, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orgOrder {
		if org := r.orgs[id]; org.Name == name {
			return cloneOrganization(*org), true
		}
	}
	return domain.Organization{}, false
}

func (r *Registry) OrganizationAt(index int) (domain.Organization, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.orgOrder) {
		return domain.Organization{}, false
	}
	return cloneOrganization(*r.orgs[r.orgOrder[index]]), true
}

func (r *Registry) Organizations() []domain.Organization {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Organization, 0, len(r.orgOrder))
	for _, id := range r.orgOrder {
		out = append(out, cloneOrganization(*r.orgs[id]))
	}
	return out
}

// ---------- Users ----------

// AddUser stores u unless another user already has its cpf or its email.
func (r *Registry) AddUser(u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; exists {
		return domain.User{}, fmt.Errorf("user id %s: %w", u.ID, domain.ErrDuplicate)
	}
	for _, id := range r.userOrder {
		if existing := r.users[id]; existing.CPF == u.CPF || existing.Email == u.Email {
			return domain.User{}, domain.ErrDuplicateUser
		}
	}

	stored := cloneUser(u)
	stored.Donations = nil
	r.users[stored.ID] = &stored
	r.userOrder = append(r.userOrder, stored.ID)
	return cloneUser(stored), nil
}

// UserByEmail matches the email exactly.
func (r *Registry) UserByEmail(email string) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.userOrder {
		if u := r.users[id]; u.Email == email {
			return cloneUser(*u), true
		}
	}
	return domain.User{}, false
}

func (r *Registry) Users() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		out = append(out, cloneUser(*r.users[id]))
	}
	return out
}

// ---------- Campaigns ----------

// AddCampaign stores c and links it to its organization. Campaign names are
// unique per organization, compared case-insensitively.
func (r *Registry) AddCampaign(c domain.Campaign) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	org, ok := r.orgs[c.OrganizationID]
	if !ok {
		return domain.Campaign{}, fmt.Errorf("organization id %s: %w", c.OrganizationID, domain.ErrOrganizationNotFound)
	}
	if _, exists := r.campaigns[c.ID]; exists {
		return domain.Campaign{}, fmt.Errorf("campaign id %s: %w", c.ID, domain.ErrDuplicate)
	}
	folded := foldName(c.Name)
	for _, id := range org.Campaigns {
		if foldName(r.campaigns[id].Name) == folded {
			return domain.Campaign{}, fmt.Errorf("campaign %q in %q: %w", c.Name, org.Name, domain.ErrDuplicateName)
		}
	}

	stored := cloneCampaign(c)
	stored.Donations = nil
	stored.TotalRaised = 0
	r.campaigns[stored.ID] = &stored
	r.campaignOrder = append(r.campaignOrder, stored.ID)
	org.Campaigns = append(org.Campaigns, stored.ID)
	return cloneCampaign(stored), nil
}

func (r *Registry) Campaign(id domain.CampaignID) (domain.Campaign, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.campaigns[id]
	if !ok {
		return domain.Campaign{}, false
	}
	return cloneCampaign(*c), true
}

func (r *Registry) CampaignsByName(name string) []domain.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()

	folded := foldName(name)
	var out []domain.Campaign
	for _, id := range r.campaignOrder {
		if c := r.campaigns[id]; foldName(c.Name) == folded {
			out = append(out, cloneCampaign(*c))
		}
	}
	return out
}

func (r *Registry) CampaignAt(index int) (domain.Campaign, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.campaignOrder) {
		return domain.Campaign{}, false
	}
	return cloneCampaign(*r.campaigns[r.campaignOrder[index]]), true
}

func (r *Registry) Campaigns() []domain.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(r.campaignOrder))
	for _, id := range r.campaignOrder {
		out = append(out, cloneCampaign(*r.campaigns[id]))
	}
	return out
}

// ---------- Donations ----------

// RecordDonation validates d against the current state, then appends it to
// its campaign and its user and recomputes the campaign total. Nothing is
// modified when any check fails.
func (r *Registry) RecordDonation(d domain.Donation) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !d.Amount.IsPositive() {
		return domain.Campaign{}, fmt.Errorf("donation of %s: %w", d.Amount, domain.ErrInvalidAmount)
	}
	u, ok := r.users[d.UserID]
	if !ok {
		return domain.Campaign{}, fmt.Errorf("user id %s: %w", d.UserID, domain.ErrUserNotFound)
	}
	c, ok := r.campaigns[d.CampaignID]
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign id %s: %w", d.CampaignID, domain.ErrCampaignNotFound)
	}
	if _, exists := r.donations[d.ID]; exists {
		return domain.Campaign{}, fmt.Errorf("donation id %s: %w", d.ID, domain.ErrDuplicate)
	}

	stored := d
	r.donations[stored.ID] = &stored
	c.Donations = append(c.Donations, stored.ID)
	u.Donations = append(u.Donations, stored.ID)
	c.TotalRaised = r.totalLocked(c.Donations)
	return cloneCampaign(*c), nil
}

func (r *Registry) Donation(id domain.DonationID) (domain.Donation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.donations[id]
	if !ok {
		return domain.Donation{}, false
	}
	return *d, true
}

// totalLocked sums the amounts of ids. Callers hold r.mu.
func (r *Registry) totalLocked(ids []domain.DonationID) domain.Money {
	amounts := make([]domain.Money, 0, len(ids))
	for _, id := range ids {
		amounts = append(amounts, r.donations[id].Amount)
	}
	return domain.Sum(amounts...)
}

// ---------- helpers ----------

// foldName is the comparison key for case-insensitive campaign names. A
// Caser is stateful, so one is built per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}

func cloneOrganization(o domain.Organization) domain.Organization {
	o.Campaigns = append([]domain.CampaignID(nil), o.Campaigns...)
	return o
}

func cloneUser(u domain.User) domain.User {
	u.Donations = append([]domain.DonationID(nil), u.Donations...)
	return u
}

func cloneCampaign(c domain.Campaign) domain.Campaign {
	c.Donations = append([]domain.DonationID(nil), c.Donations...)
	return c
}

// Compile-time assertion that Registry implements domain.Registry.
var _ domain.Registry = (*Registry)(nil)
