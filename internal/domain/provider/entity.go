package provider

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrBusinessNameRequired = errors.New("business name is required")

type Profile struct {
	BusinessName string
	Description  *string
	Category     *string
	Address      *string
	Phone        *string
	Instagram    *string
	Website      *string
	ContactEmail *string
	TaxID        *string
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.BusinessName) == "" {
		return ErrBusinessNameRequired
	}
	return nil
}

// Provider is an entrepreneur's business, owned by exactly one account.
type Provider struct {
	id      uuid.UUID
	ownerID uuid.UUID
	profile Profile
	code    Code
}

func NewProvider(ownerID uuid.UUID, profile Profile, code Code) (*Provider, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if code.IsZero() {
		return nil, ErrInvalidCode
	}
	return &Provider{
		id:      uuid.New(),
		ownerID: ownerID,
		profile: profile,
		code:    code,
	}, nil
}

func (p *Provider) ID() uuid.UUID      { return p.id }
func (p *Provider) OwnerID() uuid.UUID { return p.ownerID }
func (p *Provider) Profile() Profile   { return p.profile }
func (p *Provider) Code() Code         { return p.code }
