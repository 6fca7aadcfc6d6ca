// Package storage opens bun database handles for the configured driver.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/goliatone/go-devlog/internal/runtimeconfig"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open returns a bun.DB for the configured driver. Driver "memory" has no
// database handle; callers should use the in-memory repositories instead.
func Open(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	switch cfg.NormalizedDriver() {
	case "sqlite":
		sqldb, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("storage: open sqlite: %w", err)
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	case "postgres":
		sqldb, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("storage: open postgres: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	case "memory":
		return nil, fmt.Errorf("storage: driver memory does not use a database handle")
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
