//go:build e2e

// Package e2e boots the full fx graph against a throwaway PostgreSQL database.
// One container serves the test process; every suite gets its own database.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"turnera/cmd/bootstrap"
	"turnera/cmd/bootstrap/components"
	"turnera/internal/infra/db"
	"turnera/internal/pkg/config"
	"turnera/migrations"
	"turnera/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")

	createAttempts = 5
)

// postgresServer is the container shared by every suite in the process.
// Ryuk removes it when the process exits.
type postgresServer struct {
	host string
	port nat.Port
}

var (
	serverOnce sync.Once
	server     postgresServer
	serverErr  error
)

func (p postgresServer) url(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, p.host, p.port.Port(), database)
}

func (p postgresServer) dbConfig(database string) config.DBConfig {
	return config.DBConfig{
		Host:     p.host,
		Port:     p.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   database,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// postgresRequest trades durability for speed; the data lives on tmpfs.
func postgresRequest() testcontainers.ContainerRequest {
	settings := []string{
		"fsync=off",
		"full_page_writes=off",
		"synchronous_commit=off",
		"shared_buffers=256MB",
		"max_connections=200",
		"log_statement=none",
	}
	cmd := []string{"postgres"}
	for _, s := range settings {
		cmd = append(cmd, "-c", s)
	}

	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd:   cmd,
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return postgresServer{host: host, port: port}.url("postgres")
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "turnera-e2e"},
	}
}

func startServer() (postgresServer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: postgresRequest(),
		Started:          true,
	})
	if err != nil {
		return postgresServer{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return postgresServer{}, err
	}
	port, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return postgresServer{}, err
	}
	return postgresServer{host: host, port: port}, nil
}

func sharedServer(t *testing.T) postgresServer {
	t.Helper()
	serverOnce.Do(func() {
		server, serverErr = startServer()
	})
	require.NoError(t, serverErr, "PostgreSQLコンテナの起動に失敗")
	return server
}

// createDatabase retries because CREATE DATABASE races on the template
// database when several test binaries start together.
func createDatabase(t *testing.T, srv postgresServer) string {
	t.Helper()

	name := "turnera_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, srv.url("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == createAttempts {
			break
		}
		backoff := time.Duration(attempt) * 500 * time.Millisecond
		slog.Warn("データベース作成を再試行します", "attempt", attempt, "wait", backoff, "error", err)
		time.Sleep(backoff)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, srv.url("postgres"))
		if err != nil {
			slog.Warn("テスト用データベースを削除できません", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テスト用データベースの削除に失敗", "database", name, "error", err)
		}
	})
	return name
}

func openDatabase(t *testing.T, cfg config.DBConfig) *pgxpool.Pool {
	t.Helper()

	pool, closePool, err := db.Connect(cfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, migrations.Up(ctx, pool), "マイグレーションに失敗")
	return pool
}

// startApp wires everything but the DB module, which is replaced by pool.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗", "error", err)
		}
	})
	return router
}

// SharedSuite gives each suite a migrated database and a running router.
// Every subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	srv := sharedServer(t)
	s.Config = config.NewTestConfig()
	s.Config.DB = srv.dbConfig(createDatabase(t, srv))
	s.DB = openDatabase(t, s.Config.DB)
	s.Router = startApp(t, s.DB, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "テーブルのリセットに失敗")
}
