//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"turnera/internal/infra"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProviderStore struct {
	view  *queries.ProviderView
	err   error
	calls int
}

func (s *stubProviderStore) find() (*queries.ProviderView, error) {
	s.calls++
	return s.view, s.err
}

func (s *stubProviderStore) FindByID(context.Context, uuid.UUID) (*queries.ProviderView, error) {
	return s.find()
}

func (s *stubProviderStore) FindByOwner(context.Context, uuid.UUID) (*queries.ProviderView, error) {
	return s.find()
}

func (s *stubProviderStore) FindByCode(context.Context, string) (*queries.ProviderView, error) {
	return s.find()
}

type mapCache map[string]*queries.ProviderView

func (c mapCache) Get(_ context.Context, code string) (*queries.ProviderView, bool) {
	v, ok := c[code]
	return v, ok
}
func (c mapCache) Set(_ context.Context, code string, v *queries.ProviderView) { c[code] = v }
func (c mapCache) Invalidate(_ context.Context, codes ...string) {
	for _, code := range codes {
		delete(c, code)
	}
}

type stubServiceStore struct{ err error }

func (s stubServiceStore) FindByID(context.Context, uuid.UUID) (*queries.ServiceView, error) {
	return nil, s.err
}

func (s stubServiceStore) ListByProvider(context.Context, uuid.UUID) ([]*queries.ServiceView, error) {
	return nil, s.err
}

func missing(what string) error {
	return infra.WrapRepoErr(what+" not found", pgx.ErrNoRows)
}

func TestProviderQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("存在しないIDはセンチネルで印付け", func(t *testing.T) {
		qs := queries.NewProviderQueries(&stubProviderStore{err: missing("provider")}, mapCache{})

		_, err := qs.GetByID(ctx, uuid.New())
		assert.True(t, errs.Is(err, queries.ErrProviderNotFound))
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "元のリポジトリ種別を保持")

		_, err = qs.GetMine(ctx, uuid.New())
		assert.True(t, errs.Is(err, queries.ErrProviderNotFound))
	})

	t.Run("NOT_FOUND以外はそのまま返す", func(t *testing.T) {
		dbErr := infra.WrapRepoErr("provider lookup", errors.New("connection reset"))
		qs := queries.NewProviderQueries(&stubProviderStore{err: dbErr}, mapCache{})

		_, err := qs.GetByID(ctx, uuid.New())
		require.Error(t, err)
		assert.False(t, errs.Is(err, queries.ErrProviderNotFound))
	})

	t.Run("コード検索はキャッシュに載せる", func(t *testing.T) {
		view := &queries.ProviderView{ID: uuid.New(), Code: "AB23CD45"}
		store := &stubProviderStore{view: view}
		cache := mapCache{}
		qs := queries.NewProviderQueries(store, cache)

		got, err := qs.GetByCode(ctx, "ab23cd45")
		require.NoError(t, err)
		assert.Equal(t, view, got)

		got, err = qs.GetByCode(ctx, "AB23CD45")
		require.NoError(t, err)
		assert.Equal(t, view, got)
		assert.Equal(t, 1, store.calls, "2回目はキャッシュから返す")
	})

	t.Run("未知のコードはキャッシュしない", func(t *testing.T) {
		cache := mapCache{}
		qs := queries.NewProviderQueries(&stubProviderStore{err: missing("provider")}, cache)

		_, err := qs.GetByCode(ctx, "ZZ23ZZ45")
		assert.True(t, errs.Is(err, queries.ErrProviderNotFound))
		assert.Empty(t, cache)
	})
}

func TestGetServiceNotFound(t *testing.T) {
	providers := queries.NewProviderQueries(&stubProviderStore{}, mapCache{})
	qs := queries.NewCatalogQueries(stubServiceStore{err: missing("service")}, nil, providers, nil)

	_, err := qs.GetService(context.Background(), uuid.New())
	assert.True(t, errs.Is(err, queries.ErrServiceNotFound))
}
