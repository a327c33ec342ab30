package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, username, password_hash, role, first_name, last_name, created_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Username,
		&i.PasswordHash,
		&i.Role,
		&i.FirstName,
		&i.LastName,
		&i.CreatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :exec
INSERT INTO users (id, email, username, password_hash, role, first_name, last_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Role         string
	FirstName    pgtype.Text
	LastName     pgtype.Text
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.Username,
		arg.PasswordHash,
		arg.Role,
		arg.FirstName,
		arg.LastName,
		arg.CreatedAt,
	)
	return err
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + ` FROM users WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT ` + userColumns + ` FROM users WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const updateUserRole = `-- name: UpdateUserRole :execrows
UPDATE users SET role = $2, updated_at = now() WHERE id = $1
`

func (q *Queries) UpdateUserRole(ctx context.Context, db DBTX, id uuid.UUID, role string) (int64, error) {
	result, err := db.Exec(ctx, updateUserRole, id, role)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getUserForUpdate = `-- name: GetUserForUpdate :one
SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetUserForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserForUpdate, id))
}

const updateUser = `-- name: UpdateUser :execrows
UPDATE users
SET email = $2, username = $3, password_hash = $4, first_name = $5, last_name = $6, updated_at = now()
WHERE id = $1
`

type UpdateUserParams struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	FirstName    pgtype.Text
	LastName     pgtype.Text
}

func (q *Queries) UpdateUser(ctx context.Context, db DBTX, arg UpdateUserParams) (int64, error) {
	result, err := db.Exec(ctx, updateUser,
		arg.ID,
		arg.Email,
		arg.Username,
		arg.PasswordHash,
		arg.FirstName,
		arg.LastName,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
