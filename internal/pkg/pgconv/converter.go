package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// Columns are "timestamp without time zone"; the wall clock is written as UTC.
func TimestampToPgtype(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{Time: t.UTC(), Valid: true}
}

func TimeFromTimestamp(pt pgtype.Timestamp) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return time.Date(pt.Time.Year(), pt.Time.Month(), pt.Time.Day(),
		pt.Time.Hour(), pt.Time.Minute(), pt.Time.Second(), pt.Time.Nanosecond(), time.UTC)
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time.UTC()
}

// Microseconds since midnight, as stored by the "time" column type.
func TimeOfDayToPgtype(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func TimeOfDayFromPgtype(pt pgtype.Time) time.Duration {
	if !pt.Valid {
		return 0
	}
	return time.Duration(pt.Microseconds) * time.Microsecond
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
