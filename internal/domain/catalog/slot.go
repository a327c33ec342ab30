package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrStartRequired   = errors.New("start is required")
	ErrBelowReserved   = errors.New("capacity is below the slot's current reservations")
)

// Slot ("turno") is one bookable window of a service. Start is naive UTC.
type Slot struct {
	id          uuid.UUID
	serviceID   uuid.UUID
	start       time.Time
	durationMin int
	capacity    int
	priceCents  int64
}

func NewSlot(serviceID uuid.UUID, start time.Time, durationMin, capacity int, priceCents int64) (*Slot, error) {
	if start.IsZero() {
		return nil, ErrStartRequired
	}
	if durationMin < 0 {
		return nil, ErrNegativeDuration
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Slot{
		id:          uuid.New(),
		serviceID:   serviceID,
		start:       start.UTC(),
		durationMin: durationMin,
		capacity:    capacity,
		priceCents:  priceCents,
	}, nil
}

// RestoreSlot rebuilds a stored slot under the same rules as NewSlot.
func RestoreSlot(id, serviceID uuid.UUID, start time.Time, durationMin, capacity int, priceCents int64) (*Slot, error) {
	s, err := NewSlot(serviceID, start, durationMin, capacity, priceCents)
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

// Holds fails when capacity cannot cover reservations already taken.
func (s *Slot) Holds(reserved int) error {
	if s.capacity < reserved {
		return ErrBelowReserved
	}
	return nil
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) ServiceID() uuid.UUID { return s.serviceID }
func (s *Slot) Start() time.Time     { return s.start }
func (s *Slot) DurationMin() int     { return s.durationMin }
func (s *Slot) Capacity() int        { return s.capacity }
func (s *Slot) PriceCents() int64    { return s.priceCents }
