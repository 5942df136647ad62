package helper

//nolint:revive
import (
	"crowd/config"
	"crowd/infras/postgres"
	"crowd/migrations"
	"crowd/shared/constant"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	sourceName = "iofs"
)

var errUnknownDriver = errors.New("unknown database driver")

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	switch config.DB.Driver {
	case constant.DriverPostgres:
		source, err := iofs.New(migrations.FS, constant.DriverPostgres)
		if err != nil {
			return nil, fmt.Errorf("error opening embedded migrations: %w", err)
		}

		connectionString := postgres.WriteDSN(*config)
		if table := config.DB.Postgres.MigrationTable; table != "" {
			connectionString += "&x-migrations-table=" + table
		}

		mig, err := migrate.NewWithSourceInstance(sourceName, source, connectionString)
		if err != nil {
			return nil, fmt.Errorf("error creating migrate instance: %w", err)
		}

		return mig, nil
	case constant.DriverSQLite:
		db, err := sql.Open(constant.DriverSQLite, config.DB.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("error opening sqlite database: %w", err)
		}

		return NewInstance(db, constant.DriverSQLite)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDriver, config.DB.Driver)
	}
}

// NewInstance builds a migrator on an already opened database. Closing the returned
// instance closes db as well.
func NewInstance(db *sql.DB, driver string) (*migrate.Migrate, error) {
	if driver != constant.DriverSQLite {
		return nil, fmt.Errorf("%w: %q", errUnknownDriver, driver)
	}

	source, err := iofs.New(migrations.FS, constant.DriverSQLite)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	instance, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("error creating sqlite migrate driver: %w", err)
	}

	mig, err := migrate.NewWithInstance(sourceName, source, constant.DriverSQLite, instance)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// MigrateUp applies every pending migration on db and leaves db open.
func MigrateUp(db *sql.DB, driver string) error {
	mig, err := NewInstance(db, driver)
	if err != nil {
		return err
	}

	return run(mig, ActionUp)
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	return run(mig, action)
}

func run(mig *migrate.Migrate, action string) error {
	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return nil
}
