package repository

import (
	"context"

	"turnera/internal/domain/schedule"
	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type WorkingHoursWriteQueries interface {
	CreateWorkingHour(ctx context.Context, db query.DBTX, arg query.CreateWorkingHourParams) error
	DeleteWorkingHoursByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) (int64, error)
}

type WorkingHoursRepository struct {
	queries WorkingHoursWriteQueries
}

func NewWorkingHoursRepository(queries WorkingHoursWriteQueries) *WorkingHoursRepository {
	return &WorkingHoursRepository{queries: queries}
}

func (r *WorkingHoursRepository) Create(ctx context.Context, db query.DBTX, w *schedule.WorkingHours, position int) error {
	if err := r.queries.CreateWorkingHour(ctx, db, converter.WorkingHoursToInfra(w, position)); err != nil {
		return infra.WrapRepoErr("failed to create working hours", err)
	}
	return nil
}

func (r *WorkingHoursRepository) DeleteByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) error {
	if _, err := r.queries.DeleteWorkingHoursByProvider(ctx, db, providerID); err != nil {
		return infra.WrapRepoErr("failed to delete working hours", err)
	}
	return nil
}
