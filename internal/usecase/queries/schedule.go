package queries

import (
	"context"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	ListWorkingHours(ctx context.Context, providerID uuid.UUID) ([]*WorkingHoursView, error)
}

type WorkingHoursReadStore interface {
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*WorkingHoursView, error)
}

type scheduleQueriesImpl struct {
	readStore WorkingHoursReadStore
	providers ProviderQueries
}

func NewScheduleQueries(readStore WorkingHoursReadStore, providers ProviderQueries) ScheduleQueries {
	return &scheduleQueriesImpl{
		readStore: readStore,
		providers: providers,
	}
}

func (q *scheduleQueriesImpl) ListWorkingHours(ctx context.Context, providerID uuid.UUID) ([]*WorkingHoursView, error) {
	if _, err := q.providers.GetByID(ctx, providerID); err != nil {
		return nil, err
	}
	return q.readStore.ListByProvider(ctx, providerID)
}
