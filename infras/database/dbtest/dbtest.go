// Package dbtest opens throwaway migrated SQLite ledgers for tests.
package dbtest

import (
	"crowd/config"
	"crowd/infras/database"
	"testing"
)

// NewSQLite returns an in-memory database with every migration applied, including the
// seeded centers. It is closed when the test ends.
func NewSQLite(t testing.TB) *database.Connection {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.Driver = "sqlite3"
	cfg.DB.SQLite.Path = ":memory:"
	cfg.DB.SQLite.AutoMigrate = true

	conn, err := database.New(cfg)
	if err != nil {
		t.Fatalf("opening sqlite ledger: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}
