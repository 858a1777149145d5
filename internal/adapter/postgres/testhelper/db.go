package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/topics-backend/migrations"
)

const templateDB = "topics_template"

var (
	once    sync.Once
	baseDSN string
	initErr error
)

// SetupTestDB starts a shared PostgreSQL container (once for the entire test run),
// migrates a template database with goose, and returns a pool connected to a
// fresh database cloned from that template. Each test gets its own database,
// so counts and listings are not disturbed by tests running in parallel.
// The pool is closed and the database dropped via t.Cleanup.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		baseDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := "test_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	if err := adminExec(ctx, fmt.Sprintf(`CREATE DATABASE %s TEMPLATE %s`, name, templateDB)); err != nil {
		t.Fatalf("testhelper: create database: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsnFor(name))
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		_ = adminExec(dropCtx, fmt.Sprintf(`DROP DATABASE IF EXISTS %s`, name))
	})

	return pool
}

// DSN returns a connection string for a fresh migrated database, for callers
// that need their own pool configuration (e.g. postgres.NewPool).
func DSN(t *testing.T) string {
	t.Helper()
	pool := SetupTestDB(t)
	return pool.Config().ConnString()
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "postgres",
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

	base := fmt.Sprintf("postgres://testuser:testpass@%s:%s", host, port.Port())
	baseDSN = base

	if err := adminExec(ctx, `CREATE DATABASE `+templateDB); err != nil {
		return "", fmt.Errorf("create template database: %w", err)
	}

	// goose requires *sql.DB.
	db, err := sql.Open("pgx", dsnFor(templateDB))
	if err != nil {
		return "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return "", fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return "", fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return "", fmt.Errorf("goose up: %w", err)
	}

	return base, nil
}

func dsnFor(database string) string {
	return fmt.Sprintf("%s/%s?sslmode=disable", baseDSN, database)
}

// adminExec runs a statement against the maintenance database. CREATE/DROP
// DATABASE cannot run inside a pool transaction, so a plain connection is used.
func adminExec(ctx context.Context, stmt string) error {
	conn, err := pgx.Connect(ctx, dsnFor("postgres"))
	if err != nil {
		return fmt.Errorf("connect admin: %w", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, stmt)
	return err
}
