package readstore

import (
	"context"

	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/pgconv"
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProviderReadQueries interface {
	GetProviderByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Provider, error)
	GetProviderByOwner(ctx context.Context, db query.DBTX, ownerID uuid.UUID) (query.Provider, error)
	GetProviderByCode(ctx context.Context, db query.DBTX, code string) (query.Provider, error)
}

type ProviderReadStore struct {
	queries ProviderReadQueries
	db      query.DBTX
}

func NewProviderReadStore(queries ProviderReadQueries, db query.DBTX) *ProviderReadStore {
	return &ProviderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProviderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProviderView, error) {
	row, err := r.queries.GetProviderByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find provider by ID", err)
	}
	return toProviderView(row), nil
}

func (r *ProviderReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.ProviderView, error) {
	row, err := r.queries.GetProviderByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find provider by owner", err)
	}
	return toProviderView(row), nil
}

func (r *ProviderReadStore) FindByCode(ctx context.Context, code string) (*queries.ProviderView, error) {
	row, err := r.queries.GetProviderByCode(ctx, r.db, code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find provider by code", err)
	}
	return toProviderView(row), nil
}

func toProviderView(row query.Provider) *queries.ProviderView {
	return &queries.ProviderView{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		BusinessName: row.BusinessName,
		Description:  pgconv.StringPtrFromPgtype(row.Description),
		Category:     pgconv.StringPtrFromPgtype(row.Category),
		Address:      pgconv.StringPtrFromPgtype(row.Address),
		Phone:        pgconv.StringPtrFromPgtype(row.Phone),
		Instagram:    pgconv.StringPtrFromPgtype(row.Instagram),
		Website:      pgconv.StringPtrFromPgtype(row.Website),
		ContactEmail: pgconv.StringPtrFromPgtype(row.ContactEmail),
		TaxID:        pgconv.StringPtrFromPgtype(row.TaxID),
		Code:         row.Code,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
