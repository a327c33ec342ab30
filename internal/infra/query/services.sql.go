package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const serviceColumns = `id, provider_id, name, description, duration_min, price_cents, created_at`

func scanService(row interface{ Scan(...any) error }) (Service, error) {
	var i Service
	err := row.Scan(
		&i.ID,
		&i.ProviderID,
		&i.Name,
		&i.Description,
		&i.DurationMin,
		&i.PriceCents,
		&i.CreatedAt,
	)
	return i, err
}

const createService = `-- name: CreateService :exec
INSERT INTO services (id, provider_id, name, description, duration_min, price_cents)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateServiceParams struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	Name        string
	Description pgtype.Text
	DurationMin int32
	PriceCents  int64
}

func (q *Queries) CreateService(ctx context.Context, db DBTX, arg CreateServiceParams) error {
	_, err := db.Exec(ctx, createService,
		arg.ID,
		arg.ProviderID,
		arg.Name,
		arg.Description,
		arg.DurationMin,
		arg.PriceCents,
	)
	return err
}

const getServiceByID = `-- name: GetServiceByID :one
SELECT ` + serviceColumns + ` FROM services WHERE id = $1
`

func (q *Queries) GetServiceByID(ctx context.Context, db DBTX, id uuid.UUID) (Service, error) {
	return scanService(db.QueryRow(ctx, getServiceByID, id))
}

const listServicesByProvider = `-- name: ListServicesByProvider :many
SELECT ` + serviceColumns + ` FROM services WHERE provider_id = $1 ORDER BY name, id
`

func (q *Queries) ListServicesByProvider(ctx context.Context, db DBTX, providerID uuid.UUID) ([]Service, error) {
	rows, err := db.Query(ctx, listServicesByProvider, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Service
	for rows.Next() {
		i, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteService = `-- name: DeleteService :execrows
DELETE FROM services WHERE id = $1
`

func (q *Queries) DeleteService(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteService, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteServicesByProvider = `-- name: DeleteServicesByProvider :execrows
DELETE FROM services WHERE provider_id = $1
`

func (q *Queries) DeleteServicesByProvider(ctx context.Context, db DBTX, providerID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteServicesByProvider, providerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
