package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID   uuid.UUID
	Role string
}

type ProviderSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Code    string
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	DurationMin int
	PriceCents  int64
}

type SlotSnapshot struct {
	ID                 uuid.UUID
	ServiceID          uuid.UUID
	ProviderID         uuid.UUID
	Start              time.Time
	DurationMin        int
	ServiceDurationMin int
	Capacity           int
	PriceCents         int64
	Reserved           int
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	SlotID     uuid.UUID
	CustomerID uuid.UUID
	ProviderID uuid.UUID
}
