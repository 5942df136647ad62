package repository_test

import (
	"context"
	"crowd/infras/database/dbtest"
	"crowd/infras/otel/mocks"
	"crowd/internal/domains/slot/model"
	"crowd/internal/domains/slot/repository"
	"errors"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reserve(t *testing.T, repo repository.Slot, conn interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}, req model.Reservation) (model.LoadCell, error) {
	t.Helper()

	var cell model.LoadCell

	err := conn.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		var err error
		cell, err = repo.ReserveTx(context.Background(), tx, req)

		return err
	})

	return cell, err
}

func TestReserveTx_ScheduledRespectsLimit(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	repo := repository.New(conn, mocks.NewOtel())

	req := model.Reservation{CenterID: "ASK001", Date: "2026-03-02", Hour: 10, Limit: 2, Capacity: 3}

	cell, err := reserve(t, repo, conn, req)
	require.NoError(t, err)
	assert.Equal(t, 1, cell.ScheduledCount)

	cell, err = reserve(t, repo, conn, req)
	require.NoError(t, err)
	assert.Equal(t, 2, cell.ScheduledCount)

	_, err = reserve(t, repo, conn, req)
	assert.ErrorIs(t, err, repository.ErrSlotTaken)

	walkIn := req
	walkIn.WalkIn = true

	cell, err = reserve(t, repo, conn, walkIn)
	require.NoError(t, err)
	assert.Equal(t, 2, cell.ScheduledCount)
	assert.Equal(t, 1, cell.WalkinCount)

	_, err = reserve(t, repo, conn, walkIn)
	assert.ErrorIs(t, err, repository.ErrSlotTaken)

	cells, err := repo.GetRange(context.Background(), "ASK001", "2026-03-02", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, 3, cells[0].Total())
}

func TestReserveTx_ScheduledBlockedByWalkins(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	repo := repository.New(conn, mocks.NewOtel())

	walkIn := model.Reservation{CenterID: "ASK002", Date: "2026-03-02", Hour: 9, WalkIn: true, Limit: 2, Capacity: 2}

	for range 2 {
		_, err := reserve(t, repo, conn, walkIn)
		require.NoError(t, err)
	}

	scheduled := walkIn
	scheduled.WalkIn = false
	scheduled.Limit = 1

	_, err := reserve(t, repo, conn, scheduled)
	assert.ErrorIs(t, err, repository.ErrSlotTaken)
}

func TestReserveTx_ZeroLimit(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	repo := repository.New(conn, mocks.NewOtel())

	_, err := reserve(t, repo, conn, model.Reservation{CenterID: "ASK001", Date: "2026-03-02", Hour: 9, Limit: 0, Capacity: 1})
	assert.ErrorIs(t, err, repository.ErrSlotTaken)

	cells, err := repo.GetRange(context.Background(), "ASK001", "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	assert.Empty(t, cells)
}

func TestReserveTx_ConcurrentCallersNeverOverbook(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	repo := repository.New(conn, mocks.NewOtel())

	req := model.Reservation{CenterID: "ASK003", Date: "2026-03-02", Hour: 11, Limit: 5, Capacity: 6}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)

	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := reserve(t, repo, conn, req)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				accepted++
			case errors.Is(err, repository.ErrSlotTaken):
				rejected++
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 5, accepted)
	assert.Equal(t, 15, rejected)

	cells, err := repo.GetRange(context.Background(), "ASK003", "2026-03-02", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, 5, cells[0].ScheduledCount)
}

func TestGetRange_Ordering(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	repo := repository.New(conn, mocks.NewOtel())

	for _, key := range []model.Key{{Date: "2026-03-03", Hour: 9}, {Date: "2026-03-02", Hour: 15}, {Date: "2026-03-02", Hour: 9}, {Date: "2026-03-05", Hour: 9}} {
		_, err := reserve(t, repo, conn, model.Reservation{CenterID: "ASK001", Date: key.Date, Hour: key.Hour, Limit: 40, Capacity: 50})
		require.NoError(t, err)
	}

	cells, err := repo.GetRange(context.Background(), "ASK001", "2026-03-02", "2026-03-04")
	require.NoError(t, err)

	keys := make([]model.Key, 0, len(cells))
	for _, c := range cells {
		keys = append(keys, c.Key())
	}

	assert.Equal(t, []model.Key{{Date: "2026-03-02", Hour: 9}, {Date: "2026-03-02", Hour: 15}, {Date: "2026-03-03", Hour: 9}}, keys)
}

func TestDeleteAllTx(t *testing.T) {
	conn := dbtest.NewSQLite(t)
	repo := repository.New(conn, mocks.NewOtel())

	_, err := reserve(t, repo, conn, model.Reservation{CenterID: "ASK001", Date: "2026-03-02", Hour: 9, Limit: 40, Capacity: 50})
	require.NoError(t, err)

	var deleted int64

	err = conn.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		deleted, err = repo.DeleteAllTx(context.Background(), tx)

		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
