package domain

// OrganizationID identifies a registered organization or project.
type OrganizationID string

// String returns the string form of the identifier.
func (id OrganizationID) String() string { return string(id) }

// UserID identifies a registered donor.
type UserID string

// String returns the string form of the identifier.
func (id UserID) String() string { return string(id) }

// CampaignID identifies a campaign.
type CampaignID string

// String returns the string form of the identifier.
func (id CampaignID) String() string { return string(id) }

// DonationID identifies a recorded donation.
type DonationID string

// String returns the string form of the identifier.
func (id DonationID) String() string { return string(id) }
