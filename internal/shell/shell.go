package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sementinha/internal/app"
	"sementinha/internal/domain"
)

// errQuit ends the loop: either the exit option or end of input.
var errQuit = errors.New("quit")

// Shell is the numbered-menu front end over the registry services.
type Shell struct {
	app    *app.App
	in     *bufio.Reader
	out    io.Writer
	format domain.ExportFormat
}

// New returns a Shell reading answers from in and writing to out.
func New(a *app.App, in io.Reader, out io.Writer) *Shell {
	return &Shell{app: a, in: bufio.NewReader(in), out: out, format: domain.ExportText}
}

// WithExportFormat sets the format used by the export option.
func (s *Shell) WithExportFormat(f domain.ExportFormat) *Shell {
	s.format = f
	return s
}

// Run shows the menu until the user exits or input ends. Domain errors are
// printed and the loop continues; only an export I/O failure is returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.menu()
		choice, err := s.readLine()
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			err = s.registerUser()
		case "2":
			err = s.registerProject()
		case "3":
			err = s.createCampaign()
		case "4":
			s.listCampaigns()
		case "5":
			err = s.donate()
		case "6":
			err = s.listDonations()
		case "7":
			err = s.export(ctx)
		case "8":
			err = s.listProjectCampaigns()
		case "0":
			err = errQuit
		default:
			s.println("Invalid option. Try again.")
		}

		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			s.println("Goodbye!")
			return nil
		default:
			return err
		}
	}
}

func (s *Shell) menu() {
	s.println("")
	s.println("--- Main Menu ---")
	s.println("1. Register user")
	s.println("2. Register project")
	s.println("3. Create campaign")
	s.println("4. List campaigns")
	s.println("5. Donate")
	s.println("6. List donations by user")
	s.println("7. Export data")
	s.println("8. List campaigns by project")
	s.println("0. Exit")
	s.print("Choose an option: ")
}

func (s *Shell) registerUser() error {
	var name, email, cpf, phone, address string
	if err := s.ask(
		prompt{"User name: ", &name},
		prompt{"Email: ", &email},
		prompt{"CPF: ", &cpf},
		prompt{"Phone: ", &phone},
		prompt{"Address: ", &address},
	); err != nil {
		return err
	}
	u, err := s.app.Registration.RegisterUser(name, email, cpf, phone, address)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.printf("User %s registered.\n", u.Name)
	return nil
}

func (s *Shell) registerProject() error {
	var name, description string
	if err := s.ask(
		prompt{"Project name: ", &name},
		prompt{"Project description: ", &description},
	); err != nil {
		return err
	}
	org, err := s.app.Registration.RegisterProject(name, description)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.printf("Project %s registered.\n", org.Name)
	return nil
}

func (s *Shell) createCampaign() error {
	orgs := s.app.Registration.Organizations()
	if len(orgs) == 0 {
		s.println("No projects registered. Register a project first.")
		return nil
	}
	s.println("Choose a project for the campaign:")
	for i, org := range orgs {
		s.printf("%d. %s\n", i+1, org.Name)
	}

	var choice string
	if err := s.ask(prompt{"Project number: ", &choice}); err != nil {
		return err
	}
	index, err := strconv.Atoi(choice)
	if err != nil || index < 1 || index > len(orgs) {
		s.fail(domain.ErrIndexOutOfRange)
		return nil
	}

	var name, objective, description, goalText string
	if err := s.ask(
		prompt{"Campaign name: ", &name},
		prompt{"Campaign objective: ", &objective},
		prompt{"Campaign description: ", &description},
		prompt{"Campaign goal: ", &goalText},
	); err != nil {
		return err
	}
	goal, err := domain.ParseMoney(goalText)
	if err != nil {
		s.fail(err)
		return nil
	}

	c, err := s.app.Campaigns.CreateCampaignAt(index, name, objective, description, goal)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.printf("Campaign %s created for project %s.\n", c.Name, orgs[index-1].Name)
	return nil
}

func (s *Shell) listCampaigns() {
	rows := s.app.Campaigns.ListCampaigns()
	if len(rows) == 0 {
		s.println("No campaigns registered.")
		return
	}
	s.printCampaigns(rows)
}

func (s *Shell) listProjectCampaigns() error {
	var name string
	if err := s.ask(prompt{"Project name: ", &name}); err != nil {
		return err
	}
	rows, err := s.app.Campaigns.CampaignsForOrganization(name)
	if err != nil {
		s.fail(err)
		return nil
	}
	if len(rows) == 0 {
		s.printf("Project %s has no campaigns.\n", name)
		return nil
	}
	s.printCampaigns(rows)
	return nil
}

func (s *Shell) printCampaigns(rows []domain.CampaignStatus) {
	s.println("Campaigns:")
	for _, row := range rows {
		c := row.Campaign
		status := "not reached"
		if row.GoalReached {
			status = "reached"
		}
		s.printf(" - %s (Project: %s) - Objective: %s - Goal: %s - Raised: %s - Status: %s\n",
			c.Name, row.OrganizationName, c.Objective, c.Goal, c.TotalRaised, status)
	}
}

func (s *Shell) donate() error {
	rows := s.app.Campaigns.ListCampaigns()
	if len(rows) == 0 {
		s.println("No campaigns registered. Create a campaign first.")
		return nil
	}

	var email string
	if err := s.ask(prompt{"Donor email: ", &email}); err != nil {
		return err
	}
	if _, err := s.app.Registration.User(email); err != nil {
		s.fail(err)
		return nil
	}

	s.println("Choose a campaign:")
	for i, row := range rows {
		s.printf("%d. %s - Project: %s\n", i+1, row.Campaign.Name, row.OrganizationName)
	}
	var choice, amountText string
	if err := s.ask(
		prompt{"Campaign number: ", &choice},
		prompt{"Donation amount: ", &amountText},
	); err != nil {
		return err
	}
	index, err := strconv.Atoi(choice)
	if err != nil {
		s.fail(domain.ErrIndexOutOfRange)
		return nil
	}
	amount, err := domain.ParseMoney(amountText)
	if err != nil {
		s.fail(err)
		return nil
	}

	receipt, err := s.app.Donations.DonateAt(email, index, amount)
	if err != nil {
		s.fail(err)
		return nil
	}
	c := receipt.Campaign
	s.printf("Donation of %s to campaign %s recorded.\n", receipt.Donation.Amount, c.Name)
	if c.GoalReached() {
		s.printf("Campaign %s has reached its goal!\n", c.Name)
	} else {
		s.printf("Campaign %s has not reached its goal yet.\n", c.Name)
	}
	return nil
}

func (s *Shell) listDonations() error {
	var email string
	if err := s.ask(prompt{"User email: ", &email}); err != nil {
		return err
	}
	lines, err := s.app.Donations.ListDonationsForUser(email)
	if err != nil {
		s.fail(err)
		return nil
	}
	if len(lines) == 0 {
		s.println("This user has not made any donations.")
		return nil
	}
	s.println("Donations:")
	for _, line := range lines {
		s.printf(" - %s for campaign %s\n", line.Donation.Amount, line.CampaignName)
	}
	return nil
}

func (s *Shell) export(ctx context.Context) error {
	paths, err := s.app.Export.ExportAll(ctx, s.app.ExportOptions(s.format))
	if errors.Is(err, domain.ErrValidation) {
		s.fail(err)
		return nil
	}
	if err != nil {
		s.app.Log.Error().Err(err).Msg("export failed")
		return err
	}
	s.app.Log.Info().Strs("paths", paths).Msg("export written")
	s.printf("Data saved to %s.\n", strings.Join(paths, ", "))
	return nil
}

// ---------- input/output ----------

type prompt struct {
	text string
	dst  *string
}

// ask shows each prompt and reads one line into its destination. End of
// input mid-way ends the session.
func (s *Shell) ask(prompts ...prompt) error {
	for _, p := range prompts {
		s.print(p.text)
		line, err := s.readLine()
		if err != nil {
			return errQuit
		}
		*p.dst = line
	}
	return nil
}

// readLine returns the next trimmed line. A final line without a newline is
// still returned; io.EOF is reported only when nothing was read.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) fail(err error) {
	s.printf("Error: %v\n", err)
}

func (s *Shell) print(a string) { _, _ = io.WriteString(s.out, a) }

func (s *Shell) println(a string) { _, _ = fmt.Fprintln(s.out, a) }

func (s *Shell) printf(format string, a ...any) { _, _ = fmt.Fprintf(s.out, format, a...) }
