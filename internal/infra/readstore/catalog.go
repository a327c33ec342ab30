package readstore

import (
	"context"
	"time"

	"turnera/internal/domain/booking"
	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/pgconv"
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ServiceReadQueries interface {
	GetServiceByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Service, error)
	ListServicesByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) ([]query.Service, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      query.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db query.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return toServiceView(row), nil
}

func (r *ServiceReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServicesByProvider(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider services", err)
	}

	views := make([]*queries.ServiceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toServiceView(row))
	}
	return views, nil
}

func toServiceView(row query.Service) *queries.ServiceView {
	return &queries.ServiceView{
		ID:          row.ID,
		ProviderID:  row.ProviderID,
		Name:        row.Name,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		DurationMin: int(row.DurationMin),
		PriceCents:  row.PriceCents,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

type SlotReadQueries interface {
	GetSlotDetail(ctx context.Context, db query.DBTX, id uuid.UUID) (query.SlotDetailRow, error)
	ListSlotsByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) ([]query.SlotDetailRow, error)
	ListUpcomingSlotsByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID, now pgtype.Timestamp) ([]query.SlotDetailRow, error)
	ListSlotsByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) ([]query.SlotDetailRow, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      query.DBTX
	policy  booking.Policy
}

func NewSlotReadStore(queries SlotReadQueries, db query.DBTX, policy booking.Policy) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
		policy:  policy.Normalized(),
	}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotDetail(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return r.toSlotView(row), nil
}

func (r *SlotReadStore) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListSlotsByService(ctx, r.db, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service slots", err)
	}
	return r.toSlotViews(rows), nil
}

func (r *SlotReadStore) ListUpcomingByService(ctx context.Context, serviceID uuid.UUID, now time.Time) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListUpcomingSlotsByService(ctx, r.db, serviceID, pgconv.TimestampToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming slots", err)
	}
	return r.toSlotViews(rows), nil
}

func (r *SlotReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListSlotsByProvider(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider slots", err)
	}
	return r.toSlotViews(rows), nil
}

func (r *SlotReadStore) toSlotViews(rows []query.SlotDetailRow) []*queries.SlotView {
	views := make([]*queries.SlotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, r.toSlotView(row))
	}
	return views
}

func (r *SlotReadStore) toSlotView(row query.SlotDetailRow) *queries.SlotView {
	start := pgconv.TimeFromTimestamp(row.StartAt)
	d := r.policy.SlotDuration(int(row.DurationMin), int(row.ServiceDurationMin))
	return &queries.SlotView{
		ID:          row.ID,
		ServiceID:   row.ServiceID,
		ProviderID:  row.ProviderID,
		Start:       start,
		End:         start.Add(d),
		DurationMin: int(d / time.Minute),
		Capacity:    int(row.Capacity),
		PriceCents:  row.PriceCents,
		Reserved:    int(row.Reserved),
	}
}
