package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is one customer's seat in a slot. Only the admission flow
// constructs new ones.
type Reservation struct {
	id         uuid.UUID
	slotID     uuid.UUID
	customerID uuid.UUID
	createdAt  time.Time
}

func New(slotID, customerID uuid.UUID, now time.Time) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		slotID:     slotID,
		customerID: customerID,
		createdAt:  now.UTC(),
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) SlotID() uuid.UUID     { return r.slotID }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
