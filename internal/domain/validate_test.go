package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sementinha/internal/domain"
)

func TestValidateEmail(t *testing.T) {
	for _, ok := range []string{"a@b.com", "x.y@z", "@.", "name@nowhere.invalid"} {
		assert.NoError(t, domain.ValidateEmail(ok), ok)
	}
	for _, bad := range []string{"", "ab.com", "a@bcom", "plain"} {
		assert.ErrorIs(t, domain.ValidateEmail(bad), domain.ErrInvalidEmail, bad)
	}
}

func TestNormalizeCPF(t *testing.T) {
	got, err := domain.NormalizeCPF("123.456.789-01")
	require.NoError(t, err)
	assert.Equal(t, "123.456.789-01", got)

	got, err = domain.NormalizeCPF("12345678901")
	require.NoError(t, err)
	assert.Equal(t, "123.456.789-01", got)

	got, err = domain.NormalizeCPF("  98765432100 ")
	require.NoError(t, err)
	assert.Equal(t, "987.654.321-00", got)
}

func TestNormalizeCPF_Invalid(t *testing.T) {
	for _, bad := range []string{
		"",
		"123.456.789-0",   // 13 characters
		"123.456.789-012", // 15 characters
		"123.456.789-0a",  // non-digit in a digit position
		"a23.456.789-01",
		"123-456-789.01", // separators in the wrong places
		"123456789012345",
		"1234567890",
		"1234567890a",
	} {
		_, err := domain.NormalizeCPF(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidCPF, bad)
	}
}

func TestCampaign_GoalReached(t *testing.T) {
	c := domain.Campaign{Goal: domain.MustParseMoney("1000.00")}
	assert.False(t, c.GoalReached())

	c.TotalRaised = domain.MustParseMoney("999.99")
	assert.False(t, c.GoalReached())

	c.TotalRaised = domain.MustParseMoney("1000.00")
	assert.True(t, c.GoalReached())

	c.TotalRaised = domain.MustParseMoney("1100.00")
	assert.True(t, c.GoalReached())
}

func TestErrorCategories(t *testing.T) {
	assert.ErrorIs(t, domain.ErrDuplicateUser, domain.ErrDuplicate)
	assert.ErrorIs(t, domain.ErrDuplicateName, domain.ErrDuplicate)
	assert.ErrorIs(t, domain.ErrIndexOutOfRange, domain.ErrNotFound)
	assert.ErrorIs(t, domain.ErrOrganizationNotFound, domain.ErrNotFound)
	assert.ErrorIs(t, domain.ErrInvalidCPF, domain.ErrValidation)
	assert.NotErrorIs(t, domain.ErrUserNotFound, domain.ErrValidation)
}

func TestParseExportFormat(t *testing.T) {
	for in, want := range map[string]domain.ExportFormat{"": domain.ExportText, "text": domain.ExportText, "json": domain.ExportJSON} {
		got, err := domain.ParseExportFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseExportFormat("xml")
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
	require.ErrorIs(t, err, domain.ErrValidation)
}
