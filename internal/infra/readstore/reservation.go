package readstore

import (
	"context"

	"turnera/internal/domain/booking"
	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/pgconv"
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationDetail(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ReservationDetailRow, error)
	ListReservationsByCustomer(ctx context.Context, db query.DBTX, customerID uuid.UUID) ([]query.ReservationDetailRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      query.DBTX
	policy  booking.Policy
}

func NewReservationReadStore(queries ReservationViewQueries, db query.DBTX, policy booking.Policy) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		policy:  policy.Normalized(),
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationDetail(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return r.toReservationView(row), nil
}

func (r *ReservationReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, r.toReservationView(row))
	}
	return views, nil
}

func (r *ReservationReadStore) toReservationView(row query.ReservationDetailRow) *queries.ReservationView {
	start := pgconv.TimeFromTimestamp(row.StartAt)
	return &queries.ReservationView{
		ID:           row.ID,
		SlotID:       row.SlotID,
		CustomerID:   row.CustomerID,
		ServiceID:    row.ServiceID,
		ServiceName:  row.ServiceName,
		ProviderID:   row.ProviderID,
		OwnerID:      row.OwnerID,
		BusinessName: row.BusinessName,
		Start:        start,
		End:          start.Add(r.policy.SlotDuration(int(row.DurationMin), int(row.ServiceMin))),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
