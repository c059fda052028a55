package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sementinha/internal/domain"
)

// demoCmd seeds one organization, one campaign, one donor and two donations,
// then prints the campaign report. With --export it also writes the files.
func demoCmd() *cobra.Command {
	var doExport bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed sample data and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if err := seedDemo(); err != nil {
				return err
			}

			fmt.Fprintln(w, "Campaigns:")
			for _, row := range appCtx.Campaigns.ListCampaigns() {
				c := row.Campaign
				fmt.Fprintf(w, " - %s (Project: %s) - Goal: %s - Raised: %s - Goal reached: %t\n",
					c.Name, row.OrganizationName, c.Goal, c.TotalRaised, row.GoalReached)
			}
			lines, err := appCtx.Donations.ListDonationsForUser(demoEmail)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Donations by %s:\n", demoEmail)
			for _, line := range lines {
				fmt.Fprintf(w, " - %s for campaign %s\n", line.Donation.Amount, line.CampaignName)
			}

			if !doExport {
				return nil
			}
			paths, err := appCtx.Export.ExportAll(cmd.Context(), appCtx.ExportOptions(exportFormat()))
			if err != nil {
				appCtx.Log.Error().Err(err).Msg("export failed")
				return err
			}
			appCtx.Log.Info().Strs("paths", paths).Msg("export written")
			fmt.Fprintf(w, "Data saved to %s.\n", strings.Join(paths, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&doExport, "export", false, "also export the seeded data")
	return cmd
}

const demoEmail = "a@b.com"

func seedDemo() error {
	if _, err := appCtx.Registration.RegisterOrganization("Green Earth", "Reforestation projects"); err != nil {
		return err
	}
	if _, err := appCtx.Campaigns.CreateCampaign(
		"Plant Trees", "Green Earth", "Plant native trees", "One tree per donor",
		domain.MustParseMoney("1000.00"),
	); err != nil {
		return err
	}
	if _, err := appCtx.Registration.RegisterUser("Ana", demoEmail, "123.456.789-01", "", ""); err != nil {
		return err
	}
	for _, amount := range []string{"600.00", "500.00"} {
		if _, err := appCtx.Donations.Donate(demoEmail, "plant trees", domain.MustParseMoney(amount)); err != nil {
			return err
		}
	}
	return nil
}
