package queries

import (
	"context"

	"github.com/google/uuid"

	"turnera/internal/pkg/errs"
)

var (
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrReservationForbidden = errs.New("reservation belongs to another account")
)

type ReservationQueries interface {
	ListMine(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error)
	// Get returns a reservation to its customer or to the owner of its provider.
	Get(ctx context.Context, reservationID, actorID uuid.UUID) (*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error) {
	return q.readStore.ListByCustomer(ctx, customerID)
}

func (q *reservationQueriesImpl) Get(ctx context.Context, reservationID, actorID uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, reservationID)
	if view, err = notFoundAs(view, err, ErrReservationNotFound); err != nil {
		return nil, err
	}
	if view.CustomerID != actorID && view.OwnerID != actorID {
		return nil, ErrReservationForbidden
	}
	return view, nil
}
