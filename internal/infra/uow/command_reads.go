package uow

import (
	"context"
	"time"

	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/pgconv"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type commandReads struct {
	q    *query.Queries
	dbtx query.DBTX
}

func newCommandReads(q *query.Queries, dbtx query.DBTX) *commandReads {
	return &commandReads{q: q, dbtx: dbtx}
}

func (r *commandReads) IsOwnerOf(ctx context.Context, accountID, providerID uuid.UUID) (bool, error) {
	owned, err := r.q.IsProviderOwnedBy(ctx, r.dbtx, providerID, accountID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check provider ownership", err)
	}
	return owned, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, err := r.q.GetUserByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read user", err)
	}
	return &shared.UserSnapshot{ID: u.ID, Role: u.Role}, nil
}

func (r *commandReads) ProviderByID(ctx context.Context, id uuid.UUID) (*shared.ProviderSnapshot, error) {
	p, err := r.q.GetProviderByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read provider", err)
	}
	return toProviderSnapshot(p), nil
}

func (r *commandReads) ProviderByOwner(ctx context.Context, ownerID uuid.UUID) (*shared.ProviderSnapshot, error) {
	p, err := r.q.GetProviderByOwner(ctx, r.dbtx, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read provider by owner", err)
	}
	return toProviderSnapshot(p), nil
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	s, err := r.q.GetServiceByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read service", err)
	}
	return &shared.ServiceSnapshot{
		ID:          s.ID,
		ProviderID:  s.ProviderID,
		DurationMin: int(s.DurationMin),
		PriceCents:  s.PriceCents,
	}, nil
}

func (r *commandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	row, err := r.q.GetSlotDetail(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read slot", err)
	}
	snap := toSlotSnapshot(row)
	return &snap, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row, err := r.q.GetReservationDetail(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation", err)
	}
	return &shared.ReservationSnapshot{
		ID:         row.ID,
		SlotID:     row.SlotID,
		CustomerID: row.CustomerID,
		ProviderID: row.ProviderID,
	}, nil
}

func (r *commandReads) CountReservations(ctx context.Context, slotID uuid.UUID) (int, error) {
	n, err := r.q.CountReservationsBySlot(ctx, r.dbtx, slotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return int(n), nil
}

func (r *commandReads) HasReservation(ctx context.Context, slotID, customerID uuid.UUID) (bool, error) {
	exists, err := r.q.ReservationExists(ctx, r.dbtx, slotID, customerID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing reservation", err)
	}
	return exists, nil
}

func (r *commandReads) CountActiveReservations(ctx context.Context, customerID, providerID uuid.UUID, now time.Time) (int, error) {
	n, err := r.q.CountActiveReservationsWithProvider(ctx, r.dbtx, customerID, providerID, pgconv.TimestampToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return int(n), nil
}

func (r *commandReads) SlotsStartingBetween(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]shared.SlotSnapshot, error) {
	rows, err := r.q.ListProviderSlotsInWindow(ctx, r.dbtx, providerID,
		pgconv.TimestampToPgtype(from), pgconv.TimestampToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider slots in window", err)
	}

	snaps := make([]shared.SlotSnapshot, len(rows))
	for i, row := range rows {
		snaps[i] = toSlotSnapshot(row)
	}
	return snaps, nil
}

func toProviderSnapshot(p query.Provider) *shared.ProviderSnapshot {
	return &shared.ProviderSnapshot{ID: p.ID, OwnerID: p.OwnerID, Code: p.Code}
}

func toSlotSnapshot(row query.SlotDetailRow) shared.SlotSnapshot {
	return shared.SlotSnapshot{
		ID:                 row.ID,
		ServiceID:          row.ServiceID,
		ProviderID:         row.ProviderID,
		Start:              pgconv.TimeFromTimestamp(row.StartAt),
		DurationMin:        int(row.DurationMin),
		ServiceDurationMin: int(row.ServiceDurationMin),
		Capacity:           int(row.Capacity),
		PriceCents:         row.PriceCents,
		Reserved:           int(row.Reserved),
	}
}
