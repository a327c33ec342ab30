package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createSlot = `-- name: CreateSlot :exec
INSERT INTO slots (id, service_id, start_at, duration_min, capacity, price_cents)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateSlotParams struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	StartAt     pgtype.Timestamp
	DurationMin int32
	Capacity    int32
	PriceCents  int64
}

func (q *Queries) CreateSlot(ctx context.Context, db DBTX, arg CreateSlotParams) error {
	_, err := db.Exec(ctx, createSlot,
		arg.ID,
		arg.ServiceID,
		arg.StartAt,
		arg.DurationMin,
		arg.Capacity,
		arg.PriceCents,
	)
	return err
}

// SlotDetailRow is a slot joined with what the gates need from its service.
type SlotDetailRow struct {
	ID                 uuid.UUID
	ServiceID          uuid.UUID
	ProviderID         uuid.UUID
	StartAt            pgtype.Timestamp
	DurationMin        int32
	ServiceDurationMin int32
	Capacity           int32
	PriceCents         int64
	Reserved           int64
}

func scanSlotDetail(row interface{ Scan(...any) error }) (SlotDetailRow, error) {
	var i SlotDetailRow
	err := row.Scan(
		&i.ID,
		&i.ServiceID,
		&i.ProviderID,
		&i.StartAt,
		&i.DurationMin,
		&i.ServiceDurationMin,
		&i.Capacity,
		&i.PriceCents,
		&i.Reserved,
	)
	return i, err
}

const slotDetailSelect = `SELECT sl.id, sl.service_id, sv.provider_id, sl.start_at, sl.duration_min,
	sv.duration_min, sl.capacity, sl.price_cents,
	(SELECT count(*) FROM reservations r WHERE r.slot_id = sl.id) AS reserved
FROM slots sl
JOIN services sv ON sv.id = sl.service_id
`

const getSlotDetail = `-- name: GetSlotDetail :one
` + slotDetailSelect + `WHERE sl.id = $1
`

func (q *Queries) GetSlotDetail(ctx context.Context, db DBTX, id uuid.UUID) (SlotDetailRow, error) {
	return scanSlotDetail(db.QueryRow(ctx, getSlotDetail, id))
}

const lockSlot = `-- name: LockSlot :one
SELECT id FROM slots WHERE id = $1 FOR UPDATE
`

func (q *Queries) LockSlot(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	var locked uuid.UUID
	err := db.QueryRow(ctx, lockSlot, id).Scan(&locked)
	return locked, err
}

const lockProviderSlotsInWindow = `-- name: LockProviderSlotsInWindow :execrows
SELECT sl.id FROM slots sl
JOIN services sv ON sv.id = sl.service_id
WHERE sv.provider_id = $1 AND sl.start_at BETWEEN $2 AND $3
FOR SHARE OF sl
`

func (q *Queries) LockProviderSlotsInWindow(ctx context.Context, db DBTX, providerID uuid.UUID, from, to pgtype.Timestamp) (int64, error) {
	result, err := db.Exec(ctx, lockProviderSlotsInWindow, providerID, from, to)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const lockSlotsByService = `-- name: LockSlotsByService :execrows
SELECT id FROM slots WHERE service_id = $1
ORDER BY id
FOR UPDATE
`

func (q *Queries) LockSlotsByService(ctx context.Context, db DBTX, serviceID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, lockSlotsByService, serviceID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const lockSlotsByProvider = `-- name: LockSlotsByProvider :execrows
SELECT sl.id FROM slots sl
JOIN services sv ON sv.id = sl.service_id
WHERE sv.provider_id = $1
ORDER BY sl.id
FOR UPDATE OF sl
`

func (q *Queries) LockSlotsByProvider(ctx context.Context, db DBTX, providerID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, lockSlotsByProvider, providerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listProviderSlotsInWindow = `-- name: ListProviderSlotsInWindow :many
` + slotDetailSelect + `WHERE sv.provider_id = $1 AND sl.start_at BETWEEN $2 AND $3
ORDER BY sl.start_at, sl.id
`

func (q *Queries) ListProviderSlotsInWindow(ctx context.Context, db DBTX, providerID uuid.UUID, from, to pgtype.Timestamp) ([]SlotDetailRow, error) {
	return q.listSlotDetails(ctx, db, listProviderSlotsInWindow, providerID, from, to)
}

const listSlotsByService = `-- name: ListSlotsByService :many
` + slotDetailSelect + `WHERE sl.service_id = $1
ORDER BY sl.start_at, sl.id
`

func (q *Queries) ListSlotsByService(ctx context.Context, db DBTX, serviceID uuid.UUID) ([]SlotDetailRow, error) {
	return q.listSlotDetails(ctx, db, listSlotsByService, serviceID)
}

const listUpcomingSlotsByService = `-- name: ListUpcomingSlotsByService :many
` + slotDetailSelect + `WHERE sl.service_id = $1 AND sl.start_at >= $2
ORDER BY sl.start_at, sl.id
`

func (q *Queries) ListUpcomingSlotsByService(ctx context.Context, db DBTX, serviceID uuid.UUID, now pgtype.Timestamp) ([]SlotDetailRow, error) {
	return q.listSlotDetails(ctx, db, listUpcomingSlotsByService, serviceID, now)
}

const listSlotsByProvider = `-- name: ListSlotsByProvider :many
` + slotDetailSelect + `WHERE sv.provider_id = $1
ORDER BY sl.start_at, sl.id
`

func (q *Queries) ListSlotsByProvider(ctx context.Context, db DBTX, providerID uuid.UUID) ([]SlotDetailRow, error) {
	return q.listSlotDetails(ctx, db, listSlotsByProvider, providerID)
}

func (q *Queries) listSlotDetails(ctx context.Context, db DBTX, sql string, args ...interface{}) ([]SlotDetailRow, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SlotDetailRow
	for rows.Next() {
		i, err := scanSlotDetail(rows)
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

const updateSlot = `-- name: UpdateSlot :execrows
UPDATE slots SET start_at = $2, duration_min = $3, capacity = $4, price_cents = $5
WHERE id = $1
`

type UpdateSlotParams struct {
	ID          uuid.UUID
	StartAt     pgtype.Timestamp
	DurationMin int32
	Capacity    int32
	PriceCents  int64
}

func (q *Queries) UpdateSlot(ctx context.Context, db DBTX, arg UpdateSlotParams) (int64, error) {
	result, err := db.Exec(ctx, updateSlot,
		arg.ID,
		arg.StartAt,
		arg.DurationMin,
		arg.Capacity,
		arg.PriceCents,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteSlot = `-- name: DeleteSlot :execrows
DELETE FROM slots WHERE id = $1
`

func (q *Queries) DeleteSlot(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteSlot, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteSlotsByService = `-- name: DeleteSlotsByService :execrows
DELETE FROM slots WHERE service_id = $1
`

func (q *Queries) DeleteSlotsByService(ctx context.Context, db DBTX, serviceID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteSlotsByService, serviceID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteSlotsByProvider = `-- name: DeleteSlotsByProvider :execrows
DELETE FROM slots sl USING services sv
WHERE sv.id = sl.service_id AND sv.provider_id = $1
`

func (q *Queries) DeleteSlotsByProvider(ctx context.Context, db DBTX, providerID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteSlotsByProvider, providerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
