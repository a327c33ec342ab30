package repository

import (
	"context"

	"turnera/internal/domain/provider"
	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ProviderWriteQueries interface {
	CreateProvider(ctx context.Context, db query.DBTX, arg query.CreateProviderParams) error
	UpdateProviderProfile(ctx context.Context, db query.DBTX, id uuid.UUID, arg query.ProviderProfileParams) (int64, error)
	UpdateProviderCode(ctx context.Context, db query.DBTX, id uuid.UUID, code string) (int64, error)
	LockProvider(ctx context.Context, db query.DBTX, id uuid.UUID) (uuid.UUID, error)
	DeleteProvider(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type ProviderRepository struct {
	queries ProviderWriteQueries
}

func NewProviderRepository(queries ProviderWriteQueries) *ProviderRepository {
	return &ProviderRepository{queries: queries}
}

func (r *ProviderRepository) Create(ctx context.Context, db query.DBTX, p *provider.Provider) error {
	if err := r.queries.CreateProvider(ctx, db, converter.ProviderToInfra(p)); err != nil {
		return infra.WrapRepoErr("failed to create provider", err)
	}
	return nil
}

func (r *ProviderRepository) UpdateProfile(ctx context.Context, db query.DBTX, providerID uuid.UUID, profile provider.Profile) error {
	n, err := r.queries.UpdateProviderProfile(ctx, db, providerID, converter.ProfileToInfra(profile))
	return affected("provider", "failed to update provider profile", n, err)
}

func (r *ProviderRepository) UpdateCode(ctx context.Context, db query.DBTX, providerID uuid.UUID, code provider.Code) error {
	n, err := r.queries.UpdateProviderCode(ctx, db, providerID, code.Value())
	return affected("provider", "failed to update provider code", n, err)
}

func (r *ProviderRepository) Lock(ctx context.Context, db query.DBTX, providerID uuid.UUID) error {
	if _, err := r.queries.LockProvider(ctx, db, providerID); err != nil {
		return infra.WrapRepoErr("failed to lock provider", err)
	}
	return nil
}

func (r *ProviderRepository) Delete(ctx context.Context, db query.DBTX, providerID uuid.UUID) error {
	n, err := r.queries.DeleteProvider(ctx, db, providerID)
	return affected("provider", "failed to delete provider", n, err)
}

// affected turns a zero-row write into NOT_FOUND.
func affected(entity, msg string, n int64, err error) error {
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if n == 0 {
		return infra.WrapRepoErr(entity+" not found", nil, infra.KindNotFound)
	}
	return nil
}
