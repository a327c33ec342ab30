package converter

import (
	"turnera/internal/domain/user"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/errs"
	"turnera/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func UserToInfra(u *user.User) query.CreateUserParams {
	return query.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Username:     u.Username().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		FirstName:    pgconv.StringPtrToPgtype(u.FirstName()),
		LastName:     pgconv.StringPtrToPgtype(u.LastName()),
		CreatedAt:    pgtype.Timestamptz{Time: u.CreatedAt(), Valid: true},
	}
}

func UserUpdateToInfra(u *user.User) query.UpdateUserParams {
	return query.UpdateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Username:     u.Username().Value(),
		PasswordHash: u.PasswordHash(),
		FirstName:    pgconv.StringPtrToPgtype(u.FirstName()),
		LastName:     pgconv.StringPtrToPgtype(u.LastName()),
	}
}

// UserToDomain rejects rows whose stored values no longer pass validation.
func UserToDomain(row query.User) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "stored email of user %s", row.ID)
	}
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, errs.Wrapf(err, "stored username of user %s", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored role of user %s", row.ID)
	}
	return user.Restore(row.ID, email, username, row.PasswordHash, role,
		pgconv.StringPtrFromPgtype(row.FirstName), pgconv.StringPtrFromPgtype(row.LastName),
		pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
