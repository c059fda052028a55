package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sementinha/internal/app"
	"sementinha/internal/domain"
	"sementinha/internal/shell"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func run(t *testing.T, a *app.App, in *strings.Reader) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, shell.New(a, in, &out).Run(context.Background()))
	return out.String()
}

func newApp(t *testing.T) *app.App {
	t.Helper()
	return app.New(app.Config{Env: "production", ExportDir: t.TempDir()}, zerolog.Nop())
}

func TestShell_EndToEnd(t *testing.T) {
	a := newApp(t)
	out := run(t, a, script(
		"2", "Green Earth", "Reforestation",
		"3", "1", "Plant Trees", "Plant native trees", "One tree per donor", "1000.00",
		"1", "Ana", "a@b.com", "12345678901", "555-0100", "Rua A, 1",
		"5", "a@b.com", "1", "600",
		"5", "a@b.com", "1", "500,00",
		"4",
		"6", "a@b.com",
		"7",
		"0",
	))

	assert.Contains(t, out, "Project Green Earth registered.")
	assert.Contains(t, out, "Campaign Plant Trees created for project Green Earth.")
	assert.Contains(t, out, "User Ana registered.")
	assert.Contains(t, out, "Donation of 600.00 to campaign Plant Trees recorded.")
	assert.Contains(t, out, "Campaign Plant Trees has not reached its goal yet.")
	assert.Contains(t, out, "Campaign Plant Trees has reached its goal!")
	assert.Contains(t, out, "Goal: 1000.00 - Raised: 1100.00 - Status: reached")
	assert.Contains(t, out, " - 600.00 for campaign Plant Trees\n - 500.00 for campaign Plant Trees\n")
	assert.Contains(t, out, "Data saved to ")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))

	users, err := os.ReadFile(filepath.Join(a.Config.ExportDir, "users.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(users), "CPF: 123.456.789-01")
}

func TestShell_ErrorsKeepLooping(t *testing.T) {
	a := newApp(t)
	out := run(t, a, script(
		"9",
		"3",
		"5",
		"2", "", "",
		"2", "Green Earth", "",
		"2", "Green Earth", "again",
		"3", "7",
		"3", "abc",
		"3", "1", "X", "", "", "0",
		"1", "Ana", "not-an-email", "12345678901", "", "",
		"1", "Ana", "a@b.com", "123", "", "",
		"6", "nobody@b.com",
		"0",
	))

	assert.Contains(t, out, "Invalid option. Try again.")
	assert.Contains(t, out, "No projects registered. Register a project first.")
	assert.Contains(t, out, "No campaigns registered. Create a campaign first.")
	assert.Equal(t, 8, strings.Count(out, "Error: "), out)
	assert.Len(t, a.Registration.Organizations(), 1)
	assert.Empty(t, a.Registration.Users())
	assert.Empty(t, a.Campaigns.ListCampaigns())
}

func TestShell_DonationRejected(t *testing.T) {
	a := newApp(t)
	_, err := a.Registration.RegisterProject("Green Earth", "")
	require.NoError(t, err)
	_, err = a.Campaigns.CreateCampaign("Plant Trees", "Green Earth", "", "", domain.MustParseMoney("100"))
	require.NoError(t, err)
	_, err = a.Registration.RegisterUser("Ana", "a@b.com", "123.456.789-01", "", "")
	require.NoError(t, err)

	out := run(t, a, script(
		"5", "ghost@b.com",
		"5", "a@b.com", "1", "-5",
		"5", "a@b.com", "1", "0",
		"5", "a@b.com", "2", "10",
		"6", "a@b.com",
		"0",
	))

	assert.Equal(t, 4, strings.Count(out, "Error: "), out)
	assert.Contains(t, out, "This user has not made any donations.")
	assert.Equal(t, domain.Money(0), a.Campaigns.ListCampaigns()[0].Campaign.TotalRaised)
}

func TestShell_EndOfInputExits(t *testing.T) {
	a := newApp(t)
	out := run(t, a, strings.NewReader("2\nGreen Earth"))

	assert.Contains(t, out, "Project description: ")
	assert.NotContains(t, out, "registered")
	assert.Contains(t, out, "Goodbye!")
}

func TestShell_ExportFailureIsReturned(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	a := app.New(app.Config{ExportDir: blocker}, zerolog.Nop())

	var out bytes.Buffer
	err := shell.New(a, script("7"), &out).Run(context.Background())
	require.Error(t, err)
}

func TestShell_JSONExport(t *testing.T) {
	a := newApp(t)
	var out bytes.Buffer
	err := shell.New(a, script("7", "0"), &out).
		WithExportFormat(domain.ExportJSON).
		Run(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(a.Config.ExportDir, "campaigns.json"))
	require.NoError(t, err)
}

func TestShell_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := shell.New(newApp(t), script("0"), &bytes.Buffer{}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestShell_ProjectNumberCheckedFirst(t *testing.T) {
	a := newApp(t)
	_, err := a.Registration.RegisterProject("Green Earth", "")
	require.NoError(t, err)

	out := run(t, a, script("3", "2", "0"))

	assert.Contains(t, out, "Error: ")
	assert.NotContains(t, out, "Campaign name: ")
	assert.Empty(t, a.Campaigns.ListCampaigns())
}

func TestShell_UnknownExportFormatKeepsSession(t *testing.T) {
	a := newApp(t)
	var out bytes.Buffer
	err := shell.New(a, script("2", "Green Earth", "Trees", "7", "4", "0"), &out).
		WithExportFormat("xml").
		Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Error: ")
	assert.Contains(t, out.String(), "No campaigns registered.")
	assert.Contains(t, out.String(), "Goodbye!")
	assert.Len(t, a.Registration.Organizations(), 1)
}

func TestShell_CampaignsByProject(t *testing.T) {
	a := newApp(t)
	for _, name := range []string{"Green Earth", "Blue Sea"} {
		_, err := a.Registration.RegisterProject(name, "")
		require.NoError(t, err)
	}
	_, err := a.Campaigns.CreateCampaign("Plant Trees", "Green Earth", "", "", domain.MustParseMoney("100"))
	require.NoError(t, err)
	_, err = a.Campaigns.CreateCampaign("Clean Beaches", "Blue Sea", "", "", domain.MustParseMoney("50"))
	require.NoError(t, err)

	out := run(t, a, script("8", "Blue Sea", "8", "Nowhere", "0"))

	assert.Contains(t, out, " - Clean Beaches (Project: Blue Sea)")
	assert.NotContains(t, out, "Plant Trees")
	assert.Equal(t, 1, strings.Count(out, "Error: "), out)
}
