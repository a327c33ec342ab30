package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `-- name: CreateReservation :exec
INSERT INTO reservations (id, slot_id, customer_id, created_at)
VALUES ($1, $2, $3, $4)
`

type CreateReservationParams struct {
	ID         uuid.UUID
	SlotID     uuid.UUID
	CustomerID uuid.UUID
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.SlotID,
		arg.CustomerID,
		arg.CreatedAt,
	)
	return err
}

const countReservationsBySlot = `-- name: CountReservationsBySlot :one
SELECT count(*) FROM reservations WHERE slot_id = $1
`

func (q *Queries) CountReservationsBySlot(ctx context.Context, db DBTX, slotID uuid.UUID) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countReservationsBySlot, slotID).Scan(&count)
	return count, err
}

const reservationExists = `-- name: ReservationExists :one
SELECT EXISTS (SELECT 1 FROM reservations WHERE slot_id = $1 AND customer_id = $2)
`

func (q *Queries) ReservationExists(ctx context.Context, db DBTX, slotID, customerID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, reservationExists, slotID, customerID).Scan(&exists)
	return exists, err
}

const countActiveReservationsWithProvider = `-- name: CountActiveReservationsWithProvider :one
SELECT count(*) FROM reservations r
JOIN slots sl ON sl.id = r.slot_id
JOIN services sv ON sv.id = sl.service_id
WHERE r.customer_id = $1 AND sv.provider_id = $2 AND sl.start_at >= $3
`

func (q *Queries) CountActiveReservationsWithProvider(ctx context.Context, db DBTX, customerID, providerID uuid.UUID, now pgtype.Timestamp) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countActiveReservationsWithProvider, customerID, providerID, now).Scan(&count)
	return count, err
}

type ReservationDetailRow struct {
	ID           uuid.UUID
	SlotID       uuid.UUID
	CustomerID   uuid.UUID
	CreatedAt    pgtype.Timestamptz
	StartAt      pgtype.Timestamp
	DurationMin  int32
	ServiceID    uuid.UUID
	ServiceName  string
	ServiceMin   int32
	ProviderID   uuid.UUID
	OwnerID      uuid.UUID
	BusinessName string
}

func scanReservationDetail(row interface{ Scan(...any) error }) (ReservationDetailRow, error) {
	var i ReservationDetailRow
	err := row.Scan(
		&i.ID,
		&i.SlotID,
		&i.CustomerID,
		&i.CreatedAt,
		&i.StartAt,
		&i.DurationMin,
		&i.ServiceID,
		&i.ServiceName,
		&i.ServiceMin,
		&i.ProviderID,
		&i.OwnerID,
		&i.BusinessName,
	)
	return i, err
}

const reservationDetailSelect = `SELECT r.id, r.slot_id, r.customer_id, r.created_at,
	sl.start_at, sl.duration_min, sv.id, sv.name, sv.duration_min, p.id, p.owner_id, p.business_name
FROM reservations r
JOIN slots sl ON sl.id = r.slot_id
JOIN services sv ON sv.id = sl.service_id
JOIN providers p ON p.id = sv.provider_id
`

const getReservationDetail = `-- name: GetReservationDetail :one
` + reservationDetailSelect + `WHERE r.id = $1
`

func (q *Queries) GetReservationDetail(ctx context.Context, db DBTX, id uuid.UUID) (ReservationDetailRow, error) {
	return scanReservationDetail(db.QueryRow(ctx, getReservationDetail, id))
}

const listReservationsByCustomer = `-- name: ListReservationsByCustomer :many
` + reservationDetailSelect + `WHERE r.customer_id = $1
ORDER BY sl.start_at DESC, r.id
`

func (q *Queries) ListReservationsByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) ([]ReservationDetailRow, error) {
	rows, err := db.Query(ctx, listReservationsByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReservationDetailRow
	for rows.Next() {
		i, err := scanReservationDetail(rows)
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

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservationsBySlot = `-- name: DeleteReservationsBySlot :execrows
DELETE FROM reservations WHERE slot_id = $1
`

func (q *Queries) DeleteReservationsBySlot(ctx context.Context, db DBTX, slotID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservationsBySlot, slotID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservationsByService = `-- name: DeleteReservationsByService :execrows
DELETE FROM reservations r USING slots sl
WHERE sl.id = r.slot_id AND sl.service_id = $1
`

func (q *Queries) DeleteReservationsByService(ctx context.Context, db DBTX, serviceID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservationsByService, serviceID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservationsByProvider = `-- name: DeleteReservationsByProvider :execrows
DELETE FROM reservations r USING slots sl, services sv
WHERE sl.id = r.slot_id AND sv.id = sl.service_id AND sv.provider_id = $1
`

func (q *Queries) DeleteReservationsByProvider(ctx context.Context, db DBTX, providerID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteReservationsByProvider, providerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
