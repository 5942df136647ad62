package sqlite

//nolint:revive
import (
	"crowd/shared/constant"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Open connects to an SQLite database. A single connection is kept so every
// writer is serialized by database/sql and in-memory databases survive for the pool's lifetime.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(constant.DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	log.Info().Str("path", path).Msg("Connected to sqlite database")

	return db, nil
}
