package domain

import "fmt"

// ExportFormat selects how export artifacts are rendered.
type ExportFormat string

const (
	ExportText ExportFormat = "text"
	ExportJSON ExportFormat = "json"
)

// ParseExportFormat accepts "text", "json" or an empty string, which means
// text.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case "", ExportText:
		return ExportText, nil
	case ExportJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// ExportOptions controls a single export run.
type ExportOptions struct {
	Dir    string
	Format ExportFormat
	// Passphrase, when set, seals every artifact before it is written.
	Passphrase string
}

// Artifact is one named export file.
type Artifact struct {
	Name string
	Body []byte
}

// UserRecord is a user with the donations it made, in order.
type UserRecord struct {
	User      User
	Donations []DonationLine
}

// CampaignRecord is a campaign with its parent organization's name.
type CampaignRecord struct {
	Campaign         Campaign
	OrganizationName string
}

// ExportRecords is the registry content rendered by an export.
type ExportRecords struct {
	Users         []UserRecord
	Organizations []Organization
	Campaigns     []CampaignRecord
}

// SealedExt is appended to the name of every sealed artifact.
const SealedExt = ".sealed"

// Sealer encrypts and decrypts artifact bodies with a passphrase. The
// artifact name is authenticated, so a sealed body only opens under the name
// it was sealed for.
type Sealer interface {
	Seal(passphrase, name string, raw []byte) ([]byte, error)
	Open(passphrase, name string, sealed []byte) ([]byte, error)
}
