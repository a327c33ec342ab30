package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Role         string
	FirstName    pgtype.Text
	LastName     pgtype.Text
	CreatedAt    pgtype.Timestamptz
}

type Provider struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	BusinessName string
	Description  pgtype.Text
	Category     pgtype.Text
	Address      pgtype.Text
	Phone        pgtype.Text
	Instagram    pgtype.Text
	Website      pgtype.Text
	ContactEmail pgtype.Text
	TaxID        pgtype.Text
	Code         string
	CreatedAt    pgtype.Timestamptz
}

type Service struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	Name        string
	Description pgtype.Text
	DurationMin int32
	PriceCents  int64
	CreatedAt   pgtype.Timestamptz
}

type Slot struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	StartAt     pgtype.Timestamp
	DurationMin int32
	Capacity    int32
	PriceCents  int64
	CreatedAt   pgtype.Timestamptz
}

type Reservation struct {
	ID         uuid.UUID
	SlotID     uuid.UUID
	CustomerID uuid.UUID
	CreatedAt  pgtype.Timestamptz
}

type WorkingHour struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	Weekday    string
	StartTime  pgtype.Time
	EndTime    pgtype.Time
}
