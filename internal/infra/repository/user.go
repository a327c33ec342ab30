package repository

import (
	"context"

	"turnera/internal/domain/user"
	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) error
	UpdateUserRole(ctx context.Context, db query.DBTX, id uuid.UUID, role string) (int64, error)
	GetUserForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.User, error)
	UpdateUser(ctx context.Context, db query.DBTX, arg query.UpdateUserParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, db query.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, db, converter.UserToInfra(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, db query.DBTX, userID uuid.UUID, role user.Role) error {
	n, err := r.queries.UpdateUserRole(ctx, db, userID, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindForUpdate(ctx context.Context, db query.DBTX, userID uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserForUpdate(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, db query.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUser(ctx, db, converter.UserUpdateToInfra(u))
	return affected("user", "failed to update user", n, err)
}
