package repository

import (
	"context"

	"turnera/internal/domain/booking"
	"turnera/internal/domain/reservation"
	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const reservationSlotCustomerKey = "reservations_slot_customer_key"

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) error
	DeleteReservation(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	DeleteReservationsBySlot(ctx context.Context, db query.DBTX, slotID uuid.UUID) (int64, error)
	DeleteReservationsByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) (int64, error)
	DeleteReservationsByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

// Create maps a (slot, customer) uniqueness violation to CONFLICT_ON_COMMIT:
// another admission for the same pair committed first.
func (r *ReservationRepository) Create(ctx context.Context, db query.DBTX, res *reservation.Reservation) error {
	err := r.queries.CreateReservation(ctx, db, converter.ReservationToInfra(res))
	if err == nil {
		return nil
	}

	wrapped := infra.WrapRepoErr("failed to create reservation", err)
	if infra.IsKind(wrapped, infra.KindDuplicateKey) && infra.ConstraintOf(wrapped) == reservationSlotCustomerKey {
		return booking.Reject(booking.KindConflictOnCommit, "reservation already exists for slot and customer")
	}
	return wrapped
}

func (r *ReservationRepository) Delete(ctx context.Context, db query.DBTX, reservationID uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, db, reservationID)
	return affected("reservation", "failed to delete reservation", n, err)
}

func (r *ReservationRepository) DeleteBySlot(ctx context.Context, db query.DBTX, slotID uuid.UUID) error {
	if _, err := r.queries.DeleteReservationsBySlot(ctx, db, slotID); err != nil {
		return infra.WrapRepoErr("failed to delete slot reservations", err)
	}
	return nil
}

func (r *ReservationRepository) DeleteByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) error {
	if _, err := r.queries.DeleteReservationsByService(ctx, db, serviceID); err != nil {
		return infra.WrapRepoErr("failed to delete service reservations", err)
	}
	return nil
}

func (r *ReservationRepository) DeleteByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error {
	if _, err := r.queries.DeleteReservationsByProvider(ctx, db, providerID); err != nil {
		return infra.WrapRepoErr("failed to delete provider reservations", err)
	}
	return nil
}
