package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const providerColumns = `id, owner_id, business_name, description, category, address, phone,
	instagram, website, contact_email, tax_id, code, created_at`

func scanProvider(row interface{ Scan(...any) error }) (Provider, error) {
	var i Provider
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.BusinessName,
		&i.Description,
		&i.Category,
		&i.Address,
		&i.Phone,
		&i.Instagram,
		&i.Website,
		&i.ContactEmail,
		&i.TaxID,
		&i.Code,
		&i.CreatedAt,
	)
	return i, err
}

const createProvider = `-- name: CreateProvider :exec
INSERT INTO providers (id, owner_id, business_name, description, category, address, phone,
	instagram, website, contact_email, tax_id, code)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type ProviderProfileParams struct {
	BusinessName string
	Description  pgtype.Text
	Category     pgtype.Text
	Address      pgtype.Text
	Phone        pgtype.Text
	Instagram    pgtype.Text
	Website      pgtype.Text
	ContactEmail pgtype.Text
	TaxID        pgtype.Text
}

type CreateProviderParams struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Code    string
	ProviderProfileParams
}

func (q *Queries) CreateProvider(ctx context.Context, db DBTX, arg CreateProviderParams) error {
	_, err := db.Exec(ctx, createProvider,
		arg.ID,
		arg.OwnerID,
		arg.BusinessName,
		arg.Description,
		arg.Category,
		arg.Address,
		arg.Phone,
		arg.Instagram,
		arg.Website,
		arg.ContactEmail,
		arg.TaxID,
		arg.Code,
	)
	return err
}

const getProviderByID = `-- name: GetProviderByID :one
SELECT ` + providerColumns + ` FROM providers WHERE id = $1
`

func (q *Queries) GetProviderByID(ctx context.Context, db DBTX, id uuid.UUID) (Provider, error) {
	return scanProvider(db.QueryRow(ctx, getProviderByID, id))
}

const getProviderByOwner = `-- name: GetProviderByOwner :one
SELECT ` + providerColumns + ` FROM providers WHERE owner_id = $1
`

func (q *Queries) GetProviderByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) (Provider, error) {
	return scanProvider(db.QueryRow(ctx, getProviderByOwner, ownerID))
}

const getProviderByCode = `-- name: GetProviderByCode :one
SELECT ` + providerColumns + ` FROM providers WHERE code = upper(trim($1))
`

func (q *Queries) GetProviderByCode(ctx context.Context, db DBTX, code string) (Provider, error) {
	return scanProvider(db.QueryRow(ctx, getProviderByCode, code))
}

const lockProvider = `-- name: LockProvider :one
SELECT id FROM providers WHERE id = $1 FOR UPDATE
`

func (q *Queries) LockProvider(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	var locked uuid.UUID
	err := db.QueryRow(ctx, lockProvider, id).Scan(&locked)
	return locked, err
}

const isProviderOwnedBy = `-- name: IsProviderOwnedBy :one
SELECT EXISTS (SELECT 1 FROM providers WHERE id = $1 AND owner_id = $2)
`

func (q *Queries) IsProviderOwnedBy(ctx context.Context, db DBTX, providerID, ownerID uuid.UUID) (bool, error) {
	var owned bool
	err := db.QueryRow(ctx, isProviderOwnedBy, providerID, ownerID).Scan(&owned)
	return owned, err
}

const updateProviderProfile = `-- name: UpdateProviderProfile :execrows
UPDATE providers SET
	business_name = $2, description = $3, category = $4, address = $5, phone = $6,
	instagram = $7, website = $8, contact_email = $9, tax_id = $10, updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateProviderProfile(ctx context.Context, db DBTX, id uuid.UUID, arg ProviderProfileParams) (int64, error) {
	result, err := db.Exec(ctx, updateProviderProfile,
		id,
		arg.BusinessName,
		arg.Description,
		arg.Category,
		arg.Address,
		arg.Phone,
		arg.Instagram,
		arg.Website,
		arg.ContactEmail,
		arg.TaxID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateProviderCode = `-- name: UpdateProviderCode :execrows
UPDATE providers SET code = $2, updated_at = now() WHERE id = $1
`

func (q *Queries) UpdateProviderCode(ctx context.Context, db DBTX, id uuid.UUID, code string) (int64, error) {
	result, err := db.Exec(ctx, updateProviderCode, id, code)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteProvider = `-- name: DeleteProvider :execrows
DELETE FROM providers WHERE id = $1
`

func (q *Queries) DeleteProvider(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteProvider, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
