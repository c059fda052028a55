package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them so
// callers can branch with errors.Is at either granularity.
var (
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("already registered")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrEmptyName         = fmt.Errorf("%w: name must not be empty", ErrValidation)
	ErrInvalidEmail      = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrInvalidCPF        = fmt.Errorf("%w: invalid cpf", ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	ErrAmbiguousCampaign = fmt.Errorf("%w: more than one campaign has that name", ErrValidation)
	ErrUnknownFormat     = fmt.Errorf("%w: export format must be text or json", ErrValidation)

	ErrDuplicateName = fmt.Errorf("name %w", ErrDuplicate)
	ErrDuplicateUser = fmt.Errorf("cpf or email %w", ErrDuplicate)

	ErrOrganizationNotFound = fmt.Errorf("organization %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrCampaignNotFound     = fmt.Errorf("campaign %w", ErrNotFound)
	ErrIndexOutOfRange      = fmt.Errorf("selection out of range: %w", ErrNotFound)
)
