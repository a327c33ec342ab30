//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction, so fixtures can seed
// inside a test transaction when a test needs one.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	username := strings.SplitN(email, "@", 2)[0]

	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, username, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, email, username, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestProvider makes ownerID an entrepreneur owning a provider with the given code.
func CreateTestProvider(t *testing.T, db DBLike, ownerID uuid.UUID, code string) uuid.UUID {
	t.Helper()

	providerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO providers (id, owner_id, business_name, code) VALUES ($1, $2, $3, $4)",
		providerID, ownerID, "Negocio "+code, code)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "UPDATE users SET role = 'entrepreneur' WHERE id = $1", ownerID)
	require.NoError(t, err)

	return providerID
}

func CreateTestService(t *testing.T, db DBLike, providerID uuid.UUID, durationMin int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, provider_id, name, duration_min, price_cents) VALUES ($1, $2, $3, $4, $5)",
		serviceID, providerID, "Servicio", durationMin, 100000)
	require.NoError(t, err)

	return serviceID
}

// CreateTestSlot stores start as naive UTC.
func CreateTestSlot(t *testing.T, db DBLike, serviceID uuid.UUID, start time.Time, capacity int) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO slots (id, service_id, start_at, capacity) VALUES ($1, $2, $3, $4)",
		slotID, serviceID, start.UTC(), capacity)
	require.NoError(t, err)

	return slotID
}

func CountReservations(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE slot_id = $1", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
