package domain

import "time"

// Organization is a registered organization or project that owns campaigns.
type Organization struct {
	ID          OrganizationID `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Campaigns   []CampaignID   `json:"campaigns"`
	CreatedAt   time.Time      `json:"created_at"`
}

// User is a registered donor.
type User struct {
	ID        UserID       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	CPF       string       `json:"cpf"` // formatted, XXX.XXX.XXX-XX
	Phone     string       `json:"phone"`
	Address   string       `json:"address"`
	Donations []DonationID `json:"donations"`
	CreatedAt time.Time    `json:"created_at"`
}

// Campaign is a fundraising goal under one organization.
//
// TotalRaised is a cached aggregate: stores recompute it from Donations on
// every change instead of adjusting it incrementally.
type Campaign struct {
	ID             CampaignID     `json:"id"`
	OrganizationID OrganizationID `json:"organization_id"`
	Name           string         `json:"name"`
	Objective      string         `json:"objective"`
	Description    string         `json:"description"`
	Goal           Money          `json:"goal"`
	TotalRaised    Money          `json:"total_raised"`
	Donations      []DonationID   `json:"donations"`
	CreatedAt      time.Time      `json:"created_at"`
}

// GoalReached reports whether the campaign has raised at least its goal.
func (c Campaign) GoalReached() bool { return c.TotalRaised >= c.Goal }

// Donation is an immutable record of a user giving an amount to a campaign.
type Donation struct {
	ID         DonationID `json:"id"`
	UserID     UserID     `json:"user_id"`
	CampaignID CampaignID `json:"campaign_id"`
	Amount     Money      `json:"amount"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CampaignStatus is one row of the campaign listing.
type CampaignStatus struct {
	Campaign         Campaign
	OrganizationName string
	GoalReached      bool
}

// DonationLine is a donation together with the name of the campaign it went to.
type DonationLine struct {
	Donation     Donation
	CampaignName string
}

// DonationReceipt is returned by a successful donation. Campaign reflects the
// recomputed total after the donation was recorded.
type DonationReceipt struct {
	Donation Donation
	Campaign Campaign
}
