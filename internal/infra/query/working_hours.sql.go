package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createWorkingHour = `-- name: CreateWorkingHour :exec
INSERT INTO working_hours (id, provider_id, weekday, start_time, end_time, position)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateWorkingHourParams struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	Weekday    string
	StartTime  pgtype.Time
	EndTime    pgtype.Time
	Position   int32
}

func (q *Queries) CreateWorkingHour(ctx context.Context, db DBTX, arg CreateWorkingHourParams) error {
	_, err := db.Exec(ctx, createWorkingHour,
		arg.ID,
		arg.ProviderID,
		arg.Weekday,
		arg.StartTime,
		arg.EndTime,
		arg.Position,
	)
	return err
}

const listWorkingHoursByProvider = `-- name: ListWorkingHoursByProvider :many
SELECT id, provider_id, weekday, start_time, end_time
FROM working_hours WHERE provider_id = $1
ORDER BY position, start_time
`

func (q *Queries) ListWorkingHoursByProvider(ctx context.Context, db DBTX, providerID uuid.UUID) ([]WorkingHour, error) {
	rows, err := db.Query(ctx, listWorkingHoursByProvider, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WorkingHour
	for rows.Next() {
		var i WorkingHour
		if err := rows.Scan(
			&i.ID,
			&i.ProviderID,
			&i.Weekday,
			&i.StartTime,
			&i.EndTime,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteWorkingHoursByProvider = `-- name: DeleteWorkingHoursByProvider :execrows
DELETE FROM working_hours WHERE provider_id = $1
`

func (q *Queries) DeleteWorkingHoursByProvider(ctx context.Context, db DBTX, providerID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteWorkingHoursByProvider, providerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
