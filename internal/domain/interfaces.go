package domain

import "context"

// OrganizationStore holds organizations in registration order.
type OrganizationStore interface {
	// AddOrganization stores org, failing with ErrDuplicateName when the name
	// is already taken.
	AddOrganization(org Organization) (Organization, error)
	Organization(id OrganizationID) (Organization, bool)
	OrganizationByName(name string) (Organization, bool)
	// OrganizationAt returns the organization at a zero-based position.
	OrganizationAt(index int) (Organization, bool)
	Organizations() []Organization
}

// UserStore holds donors in registration order.
type UserStore interface {
	// AddUser stores u, failing with ErrDuplicateUser when the cpf or the
	// email is already registered.
	AddUser(u User) (User, error)
	UserByEmail(email string) (User, bool)
	Users() []User
}

// CampaignStore holds campaigns in creation order.
type CampaignStore interface {
	// AddCampaign stores c and appends it to its organization's campaign list
	// in one step.
	AddCampaign(c Campaign) (Campaign, error)
	Campaign(id CampaignID) (Campaign, bool)
	// CampaignsByName returns every campaign whose name matches
	// case-insensitively.
	CampaignsByName(name string) []Campaign
	// CampaignAt returns the campaign at a zero-based position.
	CampaignAt(index int) (Campaign, bool)
	Campaigns() []Campaign
}

// DonationStore records donations against users and campaigns.
type DonationStore interface {
	// RecordDonation appends d to both its user's and its campaign's lists and
	// recomputes the campaign total, all or nothing. It returns the updated
	// campaign.
	RecordDonation(d Donation) (Campaign, error)
	Donation(id DonationID) (Donation, bool)
}

// Registry is the full in-memory store used by the services.
type Registry interface {
	OrganizationStore
	UserStore
	CampaignStore
	DonationStore
}

// ArtifactStore writes export artifacts into a directory.
type ArtifactStore interface {
	WriteArtifacts(ctx context.Context, dir string, artifacts []Artifact) ([]string, error)
	// RemoveArtifacts deletes the named files from dir when present and
	// returns the paths that were removed.
	RemoveArtifacts(ctx context.Context, dir string, names []string) ([]string, error)
}

// RegistrationService registers organizations, projects and users.
type RegistrationService interface {
	RegisterOrganization(name, description string) (Organization, error)
	RegisterProject(name, description string) (Organization, error)
	RegisterUser(name, email, cpf, phone, address string) (User, error)
	Organization(name string) (Organization, error)
	Organizations() []Organization
	User(email string) (User, error)
	Users() []User
}

// CampaignService creates campaigns and reports on them.
type CampaignService interface {
	CreateCampaign(name, organizationName, objective, description string, goal Money) (Campaign, error)
	// CreateCampaignAt selects the organization by its one-based position in
	// the organization listing.
	CreateCampaignAt(index int, name, objective, description string, goal Money) (Campaign, error)
	ListCampaigns() []CampaignStatus
	CampaignsForOrganization(name string) ([]CampaignStatus, error)
}

// DonationService records donations and lists them per user.
type DonationService interface {
	Donate(email, campaignName string, amount Money) (DonationReceipt, error)
	// DonateAt selects the campaign by its one-based position in the campaign
	// listing.
	DonateAt(email string, index int, amount Money) (DonationReceipt, error)
	ListDonationsForUser(email string) ([]DonationLine, error)
}

// ExportService writes the registry content to disk.
type ExportService interface {
	ExportAll(ctx context.Context, opts ExportOptions) ([]string, error)
}
