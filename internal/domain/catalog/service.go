package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrServiceNameRequired = errors.New("service name is required")
	ErrNegativeDuration    = errors.New("duration must not be negative")
	ErrNegativePrice       = errors.New("price must not be negative")
)

// Service is a bookable offering of one provider.
type Service struct {
	id          uuid.UUID
	providerID  uuid.UUID
	name        string
	description *string
	durationMin int
	priceCents  int64
}

// durationMin 0 means "unset" and resolves to the booking default.
func NewService(providerID uuid.UUID, name string, description *string, durationMin int, priceCents int64) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrServiceNameRequired
	}
	if durationMin < 0 {
		return nil, ErrNegativeDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Service{
		id:          uuid.New(),
		providerID:  providerID,
		name:        name,
		description: description,
		durationMin: durationMin,
		priceCents:  priceCents,
	}, nil
}

func (s *Service) ID() uuid.UUID         { return s.id }
func (s *Service) ProviderID() uuid.UUID { return s.providerID }
func (s *Service) Name() string          { return s.name }
func (s *Service) Description() *string  { return s.description }
func (s *Service) DurationMin() int      { return s.durationMin }
func (s *Service) PriceCents() int64     { return s.priceCents }
