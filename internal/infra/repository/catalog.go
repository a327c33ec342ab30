package repository

import (
	"context"
	"time"

	"turnera/internal/domain/catalog"
	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/infra/repository/converter"
	"turnera/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db query.DBTX, arg query.CreateServiceParams) error
	DeleteService(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	DeleteServicesByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) (int64, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
}

func NewServiceRepository(queries ServiceWriteQueries) *ServiceRepository {
	return &ServiceRepository{queries: queries}
}

func (r *ServiceRepository) Create(ctx context.Context, db query.DBTX, s *catalog.Service) error {
	if err := r.queries.CreateService(ctx, db, converter.ServiceToInfra(s)); err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, db query.DBTX, serviceID uuid.UUID) error {
	n, err := r.queries.DeleteService(ctx, db, serviceID)
	return affected("service", "failed to delete service", n, err)
}

func (r *ServiceRepository) DeleteByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error {
	if _, err := r.queries.DeleteServicesByProvider(ctx, db, providerID); err != nil {
		return infra.WrapRepoErr("failed to delete provider services", err)
	}
	return nil
}

type SlotWriteQueries interface {
	CreateSlot(ctx context.Context, db query.DBTX, arg query.CreateSlotParams) error
	UpdateSlot(ctx context.Context, db query.DBTX, arg query.UpdateSlotParams) (int64, error)
	LockSlot(ctx context.Context, db query.DBTX, id uuid.UUID) (uuid.UUID, error)
	LockProviderSlotsInWindow(ctx context.Context, db query.DBTX, providerID uuid.UUID, from, to pgtype.Timestamp) (int64, error)
	LockSlotsByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) (int64, error)
	LockSlotsByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) (int64, error)
	DeleteSlot(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	DeleteSlotsByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) (int64, error)
	DeleteSlotsByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
}

func NewSlotRepository(queries SlotWriteQueries) *SlotRepository {
	return &SlotRepository{queries: queries}
}

func (r *SlotRepository) Create(ctx context.Context, db query.DBTX, s *catalog.Slot) error {
	if err := r.queries.CreateSlot(ctx, db, converter.SlotToInfra(s)); err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) Update(ctx context.Context, db query.DBTX, s *catalog.Slot) error {
	n, err := r.queries.UpdateSlot(ctx, db, converter.SlotUpdateToInfra(s))
	return affected("slot", "failed to update slot", n, err)
}

func (r *SlotRepository) Lock(ctx context.Context, db query.DBTX, slotID uuid.UUID) error {
	if _, err := r.queries.LockSlot(ctx, db, slotID); err != nil {
		return infra.WrapRepoErr("failed to lock slot", err)
	}
	return nil
}

func (r *SlotRepository) LockWindow(ctx context.Context, db query.DBTX, providerID uuid.UUID, from, to time.Time) error {
	_, err := r.queries.LockProviderSlotsInWindow(ctx, db, providerID,
		pgconv.TimestampToPgtype(from), pgconv.TimestampToPgtype(to))
	if err != nil {
		return infra.WrapRepoErr("failed to lock provider slots", err)
	}
	return nil
}

func (r *SlotRepository) LockByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) error {
	if _, err := r.queries.LockSlotsByService(ctx, db, serviceID); err != nil {
		return infra.WrapRepoErr("failed to lock service slots", err)
	}
	return nil
}

func (r *SlotRepository) LockByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error {
	if _, err := r.queries.LockSlotsByProvider(ctx, db, providerID); err != nil {
		return infra.WrapRepoErr("failed to lock provider slots", err)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, db query.DBTX, slotID uuid.UUID) error {
	n, err := r.queries.DeleteSlot(ctx, db, slotID)
	return affected("slot", "failed to delete slot", n, err)
}

func (r *SlotRepository) DeleteByService(ctx context.Context, db query.DBTX, serviceID uuid.UUID) error {
	if _, err := r.queries.DeleteSlotsByService(ctx, db, serviceID); err != nil {
		return infra.WrapRepoErr("failed to delete service slots", err)
	}
	return nil
}

func (r *SlotRepository) DeleteByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error {
	if _, err := r.queries.DeleteSlotsByProvider(ctx, db, providerID); err != nil {
		return infra.WrapRepoErr("failed to delete provider slots", err)
	}
	return nil
}
