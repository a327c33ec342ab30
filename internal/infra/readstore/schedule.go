package readstore

import (
	"context"

	"turnera/internal/domain/schedule"
	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/pgconv"
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkingHoursReadQueries interface {
	ListWorkingHoursByProvider(ctx context.Context, db query.DBTX, providerID uuid.UUID) ([]query.WorkingHour, error)
}

type WorkingHoursReadStore struct {
	queries WorkingHoursReadQueries
	db      query.DBTX
}

func NewWorkingHoursReadStore(queries WorkingHoursReadQueries, db query.DBTX) *WorkingHoursReadStore {
	return &WorkingHoursReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WorkingHoursReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*queries.WorkingHoursView, error) {
	rows, err := r.queries.ListWorkingHoursByProvider(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list working hours", err)
	}

	views := make([]*queries.WorkingHoursView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.WorkingHoursView{
			ID:      row.ID,
			Weekday: row.Weekday,
			Start:   schedule.FormatTimeOfDay(pgconv.TimeOfDayFromPgtype(row.StartTime)),
			End:     schedule.FormatTimeOfDay(pgconv.TimeOfDayFromPgtype(row.EndTime)),
		})
	}
	return views, nil
}
