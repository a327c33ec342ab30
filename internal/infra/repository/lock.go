package repository

import (
	"context"

	"turnera/internal/infra"
	"turnera/internal/infra/query"

	"github.com/google/uuid"
)

type LockQueries interface {
	AcquireXactLock(ctx context.Context, db query.DBTX, key string) error
}

type LockRepository struct {
	queries LockQueries
}

func NewLockRepository(queries LockQueries) *LockRepository {
	return &LockRepository{queries: queries}
}

func CustomerProviderLockKey(customerID, providerID uuid.UUID) string {
	return "booking:" + customerID.String() + ":" + providerID.String()
}

func (r *LockRepository) LockCustomerProvider(ctx context.Context, db query.DBTX, customerID, providerID uuid.UUID) error {
	if err := r.queries.AcquireXactLock(ctx, db, CustomerProviderLockKey(customerID, providerID)); err != nil {
		return infra.WrapRepoErr("failed to acquire booking lock", err)
	}
	return nil
}
