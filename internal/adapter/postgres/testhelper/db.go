package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/tripmatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripmatch-backend/internal/config"
	"github.com/heartmarshall/tripmatch-backend/migrations"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// DSNEnv names a variable pointing at an existing database. When set, tests
// migrate it in place instead of starting a container.
const DSNEnv = "TRIPMATCH_TEST_DSN"

// SetupTestDB returns a pool on a migrated PostgreSQL shared by the whole
// test run: either DSNEnv or a container started on first use. The pool is
// built by postgres.NewPool and closed via t.Cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		if dsn := os.Getenv(DSNEnv); dsn != "" {
			sharedDSN, initErr = dsn, migrate(dsn)
			return
		}
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:              sharedDSN,
		MaxConns:         8,
		StatementTimeout: 30 * time.Second,
		ApplicationName:  "tripmatch-test",
	})
	if err != nil {
		t.Fatalf("testhelper: failed to create pool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "tripmatch",
			"POSTGRES_PASSWORD": "tripmatch",
			"POSTGRES_DB":       "tripmatch_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://tripmatch:tripmatch@%s:%s/tripmatch_test?sslmode=disable", host, port.Port())
	return dsn, migrate(dsn)
}

// migrate applies the embedded goose migrations over database/sql.
func migrate(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
