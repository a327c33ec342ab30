package readstore

import (
	"context"

	"github.com/google/uuid"

	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/pgconv"
	"turnera/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.User, error)
	GetUserByEmail(ctx context.Context, db query.DBTX, email string) (query.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUserView(row), row.PasswordHash, nil
}

func toUserView(row query.User) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Email:     row.Email,
		Username:  row.Username,
		Role:      row.Role,
		FirstName: pgconv.StringPtrFromPgtype(row.FirstName),
		LastName:  pgconv.StringPtrFromPgtype(row.LastName),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
