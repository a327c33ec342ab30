package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView represents read-optimized user data
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProviderView is also the cached value for code lookups, hence the JSON tags.
type ProviderView struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	BusinessName string    `json:"business_name"`
	Description  *string   `json:"description,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Instagram    *string   `json:"instagram,omitempty"`
	Website      *string   `json:"website,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	TaxID        *string   `json:"tax_id,omitempty"`
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"created_at"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	DurationMin int       `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// SlotView carries the reservation count next to the slot so listings need
// no second round trip. DurationMin is the effective duration.
type SlotView struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DurationMin int       `json:"duration_min"`
	Capacity    int       `json:"capacity"`
	PriceCents  int64     `json:"price_cents"`
	Reserved    int       `json:"reserved"`
}

type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	SlotID       uuid.UUID `json:"slot_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	ServiceID    uuid.UUID `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	ProviderID   uuid.UUID `json:"provider_id"`
	OwnerID      uuid.UUID `json:"-"`
	BusinessName string    `json:"business_name"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	CreatedAt    time.Time `json:"created_at"`
}

type WorkingHoursView struct {
	ID      uuid.UUID `json:"id"`
	Weekday string    `json:"weekday"`
	Start   string    `json:"start"`
	End     string    `json:"end"`
}
