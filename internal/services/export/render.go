package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"sementinha/internal/domain"
)

const (
	usersName     = "users"
	projectsName  = "projects"
	campaignsName = "campaigns"
)

func renderText(rec domain.ExportRecords) []domain.Artifact {
	var users bytes.Buffer
	users.WriteString("=== Users ===\n")
	for _, ur := range rec.Users {
		u := ur.User
		fmt.Fprintf(&users, "Name: %s\nEmail: %s\nCPF: %s\nPhone: %s\nAddress: %s\n", u.Name, u.Email, u.CPF, u.Phone, u.Address)
		users.WriteString("Donations:\n")
		for _, line := range ur.Donations {
			fmt.Fprintf(&users, "  - %s for campaign %s\n", line.Donation.Amount, line.CampaignName)
		}
		users.WriteString("\n")
	}

	var projects bytes.Buffer
	projects.WriteString("=== Projects ===\n")
	for _, org := range rec.Organizations {
		fmt.Fprintf(&projects, "Name: %s\nDescription: %s\n\n", org.Name, org.Description)
	}

	var campaigns bytes.Buffer
	campaigns.WriteString("=== Campaigns ===\n")
	for _, cr := range rec.Campaigns {
		c := cr.Campaign
		fmt.Fprintf(&campaigns,
			"Name: %s\nProject: %s\nObjective: %s\nDescription: %s\nGoal: %s\nTotal raised: %s\n\n",
			c.Name, cr.OrganizationName, c.Objective, c.Description, c.Goal, c.TotalRaised)
	}

	return []domain.Artifact{
		{Name: usersName + ".txt", Body: users.Bytes()},
		{Name: projectsName + ".txt", Body: projects.Bytes()},
		{Name: campaignsName + ".txt", Body: campaigns.Bytes()},
	}
}

type jsonDonation struct {
	Amount   string `json:"amount"`
	Campaign string `json:"campaign"`
}

type jsonUser struct {
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	CPF       string         `json:"cpf"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	Donations []jsonDonation `json:"donations"`
}

type jsonProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type jsonCampaign struct {
	Name        string `json:"name"`
	Project     string `json:"project"`
	Objective   string `json:"objective"`
	Description string `json:"description"`
	Goal        string `json:"goal"`
	TotalRaised string `json:"total_raised"`
	GoalReached bool   `json:"goal_reached"`
}

func renderJSON(rec domain.ExportRecords) ([]domain.Artifact, error) {
	users := make([]jsonUser, 0, len(rec.Users))
	for _, ur := range rec.Users {
		ds := make([]jsonDonation, 0, len(ur.Donations))
		for _, line := range ur.Donations {
			ds = append(ds, jsonDonation{Amount: line.Donation.Amount.String(), Campaign: line.CampaignName})
		}
		users = append(users, jsonUser{
			Name:      ur.User.Name,
			Email:     ur.User.Email,
			CPF:       ur.User.CPF,
			Phone:     ur.User.Phone,
			Address:   ur.User.Address,
			Donations: ds,
		})
	}

	projects := make([]jsonProject, 0, len(rec.Organizations))
	for _, org := range rec.Organizations {
		projects = append(projects, jsonProject{Name: org.Name, Description: org.Description})
	}

	campaigns := make([]jsonCampaign, 0, len(rec.Campaigns))
	for _, cr := range rec.Campaigns {
		c := cr.Campaign
		campaigns = append(campaigns, jsonCampaign{
			Name:        c.Name,
			Project:     cr.OrganizationName,
			Objective:   c.Objective,
			Description: c.Description,
			Goal:        c.Goal.String(),
			TotalRaised: c.TotalRaised.String(),
			GoalReached: c.GoalReached(),
		})
	}

	out := make([]domain.Artifact, 0, 3)
	for _, part := range []struct {
		name string
		v    any
	}{
		{usersName, users},
		{projectsName, projects},
		{campaignsName, campaigns},
	} {
		b, err := json.MarshalIndent(part.v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", part.name, err)
		}
		out = append(out, domain.Artifact{Name: part.name + ".json", Body: append(b, '\n')})
	}
	return out, nil
}
