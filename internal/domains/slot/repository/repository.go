package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"crowd/infras/database"
	"crowd/infras/otel"
	"crowd/internal/domains/slot/model"
	"crowd/shared/constant"
	gDto "crowd/shared/dto"
	"crowd/shared/logger"
	gRepo "crowd/shared/repository"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrSlotTaken is returned when a cell reached its limit before the reservation landed.
var ErrSlotTaken = errors.New("slot already taken")

const (
	reserveScheduledQuery = `INSERT INTO load_cells (center_id, slot_date, slot_hour, scheduled_count, walkin_count, created_at, modified_at)
VALUES (:center_id, :slot_date, :slot_hour, 1, 0, :now, :now)
ON CONFLICT (center_id, slot_date, slot_hour) DO UPDATE
SET scheduled_count = load_cells.scheduled_count + 1, modified_at = excluded.modified_at
WHERE load_cells.scheduled_count < :limit
  AND load_cells.scheduled_count + load_cells.walkin_count < :capacity
RETURNING scheduled_count, walkin_count`

	reserveWalkinQuery = `INSERT INTO load_cells (center_id, slot_date, slot_hour, scheduled_count, walkin_count, created_at, modified_at)
VALUES (:center_id, :slot_date, :slot_hour, 0, 1, :now, :now)
ON CONFLICT (center_id, slot_date, slot_hour) DO UPDATE
SET walkin_count = load_cells.walkin_count + 1, modified_at = excluded.modified_at
WHERE load_cells.scheduled_count + load_cells.walkin_count < :capacity
RETURNING scheduled_count, walkin_count`
)

type Slot interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.LoadCell, error)
	GetRange(ctx context.Context, centerID, fromDate, toDate string) ([]model.LoadCell, error)
	ReserveTx(ctx context.Context, sqltx *sqlx.Tx, req model.Reservation) (model.LoadCell, error)
	DeleteAllTx(ctx context.Context, sqltx *sqlx.Tx) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.LoadCell]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Slot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.LoadCell](model.EntityName, model.TableName, model.FieldCenterID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetRange returns the stored cells of one center between two days inclusive, in horizon order.
func (r *repositoryImpl) GetRange(ctx context.Context, centerID, fromDate, toDate string) ([]model.LoadCell, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".load_cell.GetRange")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCenterID, Value: centerID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldSlotDate, Value: [2]string{fromDate, toDate}, Operator: gDto.FilterOperatorBetween},
		},
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s, %s", model.FieldSlotDate, model.FieldSlotHour),
		SortDir: gDto.SortDirAsc,
	}

	return r.GetAll(ctx, params, filter)
}

// ReserveTx increments the requested counter of a cell, creating it when absent, only if the
// cell is still below its limit. The check and the increment are one statement.
func (r *repositoryImpl) ReserveTx(ctx context.Context, sqltx *sqlx.Tx, req model.Reservation) (cell model.LoadCell, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".load_cell.ReserveTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// a fresh cell starts at one, so a zero limit can never be satisfied
	if req.Capacity < 1 || (!req.WalkIn && req.Limit < 1) {
		return cell, ErrSlotTaken
	}

	query := reserveScheduledQuery
	if req.WalkIn {
		query = reserveWalkinQuery
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"center_id": req.CenterID,
		"slot_date": req.Date,
		"slot_hour": req.Hour,
		"limit":     req.Limit,
		"capacity":  req.Capacity,
		"now":       req.At,
	}

	stmt, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return cell, fmt.Errorf("failed to prepare reservation (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	var counts struct {
		ScheduledCount int `db:"scheduled_count"`
		WalkinCount    int `db:"walkin_count"`
	}

	err = stmt.GetContext(ctx, &counts, args)
	if errors.Is(err, sql.ErrNoRows) {
		return cell, ErrSlotTaken
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return cell, fmt.Errorf("failed to reserve slot (%s): %w", model.EntityName, err)
	}

	return model.LoadCell{
		CenterID:       req.CenterID,
		SlotDate:       req.Date,
		SlotHour:       req.Hour,
		ScheduledCount: counts.ScheduledCount,
		WalkinCount:    counts.WalkinCount,
	}, nil
}
