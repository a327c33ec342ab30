package shared

import (
	"context"
	"time"

	"turnera/internal/domain/catalog"
	"turnera/internal/domain/provider"
	"turnera/internal/domain/reservation"
	"turnera/internal/domain/schedule"
	"turnera/internal/domain/user"
	"turnera/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Providers() ProviderRepository
	Services() ServiceRepository
	Slots() SlotRepository
	Reservations() ReservationRepository
	WorkingHours() WorkingHoursRepository
	Locks() LockRepository
	Reads() CommandReads
	DB() query.DBTX
}

// CommandReads re-reads current state for write-side decisions. Inside a
// transaction every call observes the latest committed rows.
type CommandReads interface {
	// IsOwnerOf is the single ownership capability used by every gate.
	IsOwnerOf(ctx context.Context, accountID, providerID uuid.UUID) (bool, error)

	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ProviderByID(ctx context.Context, id uuid.UUID) (*ProviderSnapshot, error)
	ProviderByOwner(ctx context.Context, ownerID uuid.UUID) (*ProviderSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)

	CountReservations(ctx context.Context, slotID uuid.UUID) (int, error)
	HasReservation(ctx context.Context, slotID, customerID uuid.UUID) (bool, error)
	// CountActiveReservations counts reservations whose slot starts at or after now.
	CountActiveReservations(ctx context.Context, customerID, providerID uuid.UUID, now time.Time) (int, error)
	// SlotsStartingBetween lists a provider's slots with start in [from, to].
	SlotsStartingBetween(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]SlotSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, db query.DBTX, u *user.User) error
	UpdateRole(ctx context.Context, db query.DBTX, userID uuid.UUID, role user.Role) error
	// FindForUpdate loads the account and holds its row until the transaction ends.
	FindForUpdate(ctx context.Context, db query.DBTX, userID uuid.UUID) (*user.User, error)
	Update(ctx context.Context, db query.DBTX, u *user.User) error
}

type ProviderRepository interface {
	Create(ctx context.Context, db query.DBTX, p *provider.Provider) error
	UpdateProfile(ctx context.Context, db query.DBTX, providerID uuid.UUID, profile provider.Profile) error
	UpdateCode(ctx context.Context, db query.DBTX, providerID uuid.UUID, code provider.Code) error
	// Lock takes the provider row exclusively until the transaction ends.
	Lock(ctx context.Context, db query.DBTX, providerID uuid.UUID) error
	Delete(ctx context.Context, db query.DBTX, providerID uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, db query.DBTX, s *catalog.Service) error
	Delete(ctx context.Context, db query.DBTX, serviceID uuid.UUID) error
	DeleteByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error
}

type SlotRepository interface {
	Create(ctx context.Context, db query.DBTX, s *catalog.Slot) error
	Update(ctx context.Context, db query.DBTX, s *catalog.Slot) error
	// Lock takes the slot row exclusively until the transaction ends.
	Lock(ctx context.Context, db query.DBTX, slotID uuid.UUID) error
	// LockWindow share-locks a provider's slots starting in [from, to].
	LockWindow(ctx context.Context, db query.DBTX, providerID uuid.UUID, from, to time.Time) error
	// LockByService and LockByProvider take every matching slot row
	// exclusively, in id order, ahead of a cascading delete.
	LockByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) error
	LockByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error
	Delete(ctx context.Context, db query.DBTX, slotID uuid.UUID) error
	DeleteByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) error
	DeleteByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, db query.DBTX, r *reservation.Reservation) error
	Delete(ctx context.Context, db query.DBTX, reservationID uuid.UUID) error
	DeleteBySlot(ctx context.Context, db query.DBTX, slotID uuid.UUID) error
	DeleteByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) error
	DeleteByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error
}

type WorkingHoursRepository interface {
	Create(ctx context.Context, db query.DBTX, w *schedule.WorkingHours, position int) error
	DeleteByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error
}

type LockRepository interface {
	// LockCustomerProvider serializes limit checks for one (customer, provider) pair.
	LockCustomerProvider(ctx context.Context, db query.DBTX, customerID, providerID uuid.UUID) error
}
