package postgres

//nolint:revive
import (
	"crowd/config"
	"crowd/shared/constant"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

var errExhaustedRetries = errors.New("exhausted connection retries")

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// WriteDSN is the connection string of the primary, also used by the migration runner.
func WriteDSN(config config.Config) string {
	write := config.DB.Postgres.Write

	return dsn(write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode)
}

func ReadDSN(config config.Config) string {
	read := config.DB.Postgres.Read

	return dsn(read.Username, read.Password, read.Host, read.Port, getDBName(config, read.Name), read.SSLMode)
}

func dsn(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// Connect opens the read and write pools.
func Connect(config config.Config) (read, write *sqlx.DB, err error) {
	write, err = CreatePostgresConnection("write", WriteDSN(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
	if err != nil {
		return nil, nil, err
	}

	read, err = CreatePostgresConnection("read", ReadDSN(config), config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
	if err != nil {
		_ = write.Close()

		return nil, nil, err
	}

	return read, write, nil
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(name, descriptor string, maxRetry, waitTime int) (*sqlx.DB, error) {
	maxRetry = max(maxRetry, 1)

	var lastErr error

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(constant.DriverPostgres, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("connecting to %s database: %w: %w", name, errExhaustedRetries, lastErr)
}
