// Package testutil provides shared helpers for tests that need Postgres.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
)

// NewPgPool returns a pool to a unique, isolated and fully migrated test
// database. The test is skipped unless PGTESTDB_HOST is set.
func NewPgPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	host := os.Getenv("PGTESTDB_HOST")
	if host == "" {
		t.Skip("PGTESTDB_HOST not set, skipping postgres test")
	}

	conf := pgtestdb.Config{
		DriverName: "pgx",
		User:       getEnvOr("PGTESTDB_USER", "wall"),
		Password:   getEnvOr("PGTESTDB_PASSWORD", "wall"),
		Host:       host,
		Port:       getEnvOr("PGTESTDB_PORT", "5433"),
		Options:    "sslmode=disable",
	}
	gm := golangmigrator.New(migrationsDir())
	config := pgtestdb.Custom(t, conf, gm)

	pool, err := pgxpool.New(context.Background(), config.URL())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "migrations")
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
