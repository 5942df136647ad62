package database

import (
	"context"
	"crowd/config"
	"crowd/helper"
	"crowd/infras/postgres"
	"crowd/infras/sqlite"
	"crowd/shared/constant"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var errUnknownDriver = errors.New("unknown database driver")

// Connection holds the read and write pools. With SQLite both point to the same pool.
type Connection struct {
	Driver string
	Read   *sqlx.DB
	Write  *sqlx.DB
}

func New(config *config.Config) (*Connection, error) {
	switch config.DB.Driver {
	case constant.DriverPostgres:
		read, write, err := postgres.Connect(*config)
		if err != nil {
			return nil, fmt.Errorf("connecting postgres: %w", err)
		}

		return &Connection{Driver: constant.DriverPostgres, Read: read, Write: write}, nil
	case constant.DriverSQLite:
		db, err := sqlite.Open(config.DB.SQLite.Path)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if config.DB.SQLite.AutoMigrate {
			if err := helper.MigrateUp(db.DB, constant.DriverSQLite); err != nil {
				_ = db.Close()

				return nil, fmt.Errorf("migrating sqlite: %w", err)
			}
		}

		return NewFromDB(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDriver, config.DB.Driver)
	}
}

// NewFromDB wraps a single pool, used for SQLite and tests.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{
		Driver: db.DriverName(),
		Read:   db,
		Write:  db,
	}
}

// WithTx runs fn inside a write transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("closing read pool: %w", err)
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("closing write pool: %w", err)
		}
	}

	return nil
}
