package service

import (
	"context"
	"crowd/infras/events"
	"crowd/internal/domains/booking/model"
	"crowd/internal/domains/booking/model/dto"
	"crowd/shared/constant"
	gDto "crowd/shared/dto"
	"crowd/shared/failure"
	"crowd/shared/metrics"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	redistributedTemplate = "%d appointments shifted to tomorrow."
	rescheduledTemplate   = "Dear Citizen, your appointment at %s has been moved to %s at %s. Request ID: %s. Please carry your documents."
)

// Redistribute moves the confirmed bookings a center holds for today to tomorrow, same hour.
// Load cells are left as they are: the freed hour stays counted and tomorrow's cell is not checked.
func (s *serviceImpl) Redistribute(ctx context.Context, req dto.RedistributeRequest) (res dto.RedistributeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Redistribute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	center, ok := s.centers.Find(req.CenterID)
	if !ok {
		return res, failure.NotFound("center not found") // nolint:wrapcheck
	}

	now := s.now()
	today := now.Format(constant.DayFormat)
	tomorrow := now.AddDate(0, 0, 1).Format(constant.DayFormat)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "from_center_id", Field: model.FieldAssignedCenterID, Value: center.CenterID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{ArgName: "from_date", Field: model.FieldAssignedDate, Value: today, Operator: gDto.FilterOperatorEq},
			gDto.Filter{ArgName: "from_status", Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq},
		},
	}

	var moved []model.Request

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error

		moved, err = s.repo.GetAllTx(ctx, tx, gDto.QueryParams{}, filter)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if len(moved) == 0 {
			return nil
		}

		_, err = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldAssignedDate: tomorrow,
			model.FieldStatus:       model.StatusRescheduled,
			model.FieldModifiedAt:   now,
		}, filter)

		return err //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("center_id", center.CenterID).Msg("failed to redistribute bookings")

		return res, fmt.Errorf("failed to redistribute bookings: %w", err)
	}

	for i := range moved {
		moved[i].AssignedDate = tomorrow
		moved[i].Status = model.StatusRescheduled
		moved[i].ModifiedAt = now
	}

	res.Count = len(moved)
	res.Message = fmt.Sprintf(redistributedTemplate, res.Count)

	log.Info().Str("center_id", center.CenterID).Int("count", res.Count).Msg("bookings redistributed")
	metrics.ObserveRedistributed(res.Count)

	s.notify(ctx, events.TypeBookingRescheduled, moved, func(record model.Request) string {
		return fmt.Sprintf(rescheduledTemplate, center.Name, record.AssignedDate, record.AssignedTimeSlot, record.RequestID)
	})

	if res.Count > 0 {
		s.invalidate(ctx, cacheGetRequest, cacheListRequests)
	}

	return res, nil
}
