package queries

import (
	"context"

	"turnera/internal/domain/provider"
	"turnera/internal/infra"
	"turnera/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProviderNotFound = errs.New("provider not found")

type ProviderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProviderView, error)
	GetMine(ctx context.Context, ownerID uuid.UUID) (*ProviderView, error)
	GetByCode(ctx context.Context, code string) (*ProviderView, error)
}

type ProviderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProviderView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*ProviderView, error)
	FindByCode(ctx context.Context, code string) (*ProviderView, error)
}

// ProviderCache fronts the public code lookup. Misses and backend failures
// both report ok=false; callers fall through to the database.
type ProviderCache interface {
	Get(ctx context.Context, code string) (*ProviderView, bool)
	Set(ctx context.Context, code string, view *ProviderView)
	Invalidate(ctx context.Context, codes ...string)
}

type providerQueriesImpl struct {
	readStore ProviderReadStore
	cache     ProviderCache
}

func NewProviderQueries(readStore ProviderReadStore, cache ProviderCache) ProviderQueries {
	return &providerQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *providerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProviderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	return notFoundAs(view, err, ErrProviderNotFound)
}

func (q *providerQueriesImpl) GetMine(ctx context.Context, ownerID uuid.UUID) (*ProviderView, error) {
	view, err := q.readStore.FindByOwner(ctx, ownerID)
	return notFoundAs(view, err, ErrProviderNotFound)
}

func (q *providerQueriesImpl) GetByCode(ctx context.Context, code string) (*ProviderView, error) {
	normalized := provider.NormalizeCode(code)
	if normalized == "" {
		return nil, ErrProviderNotFound
	}

	if view, ok := q.cache.Get(ctx, normalized); ok {
		return view, nil
	}

	view, err := q.readStore.FindByCode(ctx, normalized)
	if view, err = notFoundAs(view, err, ErrProviderNotFound); err != nil {
		return nil, err
	}
	q.cache.Set(ctx, normalized, view)
	return view, nil
}

// notFoundAs marks a repository NOT_FOUND with the given sentinel.
func notFoundAs[T any](v T, err error, sentinel error) (T, error) {
	if err == nil {
		return v, nil
	}
	var zero T
	if infra.IsKind(err, infra.KindNotFound) {
		return zero, errs.Mark(err, sentinel)
	}
	return zero, err
}
