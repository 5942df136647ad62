package database_test

import (
	"context"
	"crowd/config"
	"crowd/infras/database"
	"crowd/infras/database/dbtest"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SQLiteSeedsCenters(t *testing.T) {
	conn := dbtest.NewSQLite(t)

	var count int
	require.NoError(t, conn.Read.Get(&count, "SELECT COUNT(*) FROM centers"))
	assert.Equal(t, 8, count)
	assert.Equal(t, "sqlite3", conn.Driver)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = "oracle"

	_, err := database.New(cfg)
	assert.Error(t, err)
}

func TestWithTx(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	ctx := context.Background()

	insert := func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO load_cells (center_id, slot_date, slot_hour, scheduled_count) VALUES ('ASK001', '2026-01-01', 9, 1)`)

		return err
	}

	t.Run("rollback on error", func(t *testing.T) {
		errBoom := errors.New("boom")

		err := conn.WithTx(ctx, func(tx *sqlx.Tx) error {
			require.NoError(t, insert(tx))

			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)

		var count int
		require.NoError(t, conn.Read.Get(&count, "SELECT COUNT(*) FROM load_cells"))
		assert.Zero(t, count)
	})

	t.Run("commit on success", func(t *testing.T) {
		require.NoError(t, conn.WithTx(ctx, insert))

		var count int
		require.NoError(t, conn.Read.Get(&count, "SELECT COUNT(*) FROM load_cells"))
		assert.Equal(t, 1, count)
	})
}
