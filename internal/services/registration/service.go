package registration

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sementinha/internal/domain"
)

// Service registers organizations and users.
type Service struct {
	orgs  domain.OrganizationStore
	users domain.UserStore
	log   zerolog.Logger
	now   func() time.Time
}

// New returns a registration service backed by the given stores.
func New(orgs domain.OrganizationStore, users domain.UserStore, log zerolog.Logger) *Service {
	return &Service{orgs: orgs, users: users, log: log, now: time.Now}
}

// RegisterOrganization creates an organization. The name must be non-empty
// and not already registered.
func (s *Service) RegisterOrganization(name, description string) (domain.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Organization{}, fmt.Errorf("register organization: %w", domain.ErrEmptyName)
	}
	org, err := s.orgs.AddOrganization(domain.Organization{
		ID:          domain.OrganizationID(uuid.NewString()),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return domain.Organization{}, fmt.Errorf("register organization: %w", err)
	}
	s.log.Debug().Str("organization_id", org.ID.String()).Str("name", org.Name).Msg("organization registered")
	return org, nil
}

// RegisterProject is RegisterOrganization under the project vocabulary.
func (s *Service) RegisterProject(name, description string) (domain.Organization, error) {
	return s.RegisterOrganization(name, description)
}

// RegisterUser validates and stores a donor. The email check runs before the
// cpf check; duplicates on either field are reported as ErrDuplicateUser.
func (s *Service) RegisterUser(name, email, cpf, phone, address string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return domain.User{}, fmt.Errorf("register user: %w", domain.ErrEmptyName)
	}
	if err := domain.ValidateEmail(email); err != nil {
		return domain.User{}, fmt.Errorf("register user: %w", err)
	}
	formatted, err := domain.NormalizeCPF(cpf)
	if err != nil {
		return domain.User{}, fmt.Errorf("register user: %w", err)
	}

	u, err := s.users.AddUser(domain.User{
		ID:        domain.UserID(uuid.NewString()),
		Name:      name,
		Email:     email,
		CPF:       formatted,
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("register user: %w", err)
	}
	s.log.Debug().Str("user_id", u.ID.String()).Msg("user registered")
	return u, nil
}

// Organization looks up an organization by exact name.
func (s *Service) Organization(name string) (domain.Organization, error) {
	org, ok := s.orgs.OrganizationByName(name)
	if !ok {
		return domain.Organization{}, fmt.Errorf("%q: %w", name, domain.ErrOrganizationNotFound)
	}
	return org, nil
}

// Organizations lists organizations in registration order.
func (s *Service) Organizations() []domain.Organization { return s.orgs.Organizations() }

// User looks up a user by exact email.
func (s *Service) User(email string) (domain.User, error) {
	u, ok := s.users.UserByEmail(strings.TrimSpace(email))
	if !ok {
		return domain.User{}, fmt.Errorf("%q: %w", email, domain.ErrUserNotFound)
	}
	return u, nil
}

// Users lists users in registration order.
func (s *Service) Users() []domain.User { return s.users.Users() }

// Compile-time assertion that Service implements domain.RegistrationService.
var _ domain.RegistrationService = (*Service)(nil)
