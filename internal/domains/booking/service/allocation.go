package service

import (
	"context"
	"crowd/infras/events"
	"crowd/internal/domains/booking/model"
	"crowd/internal/domains/booking/model/dto"
	centerModel "crowd/internal/domains/center/model"
	slotModel "crowd/internal/domains/slot/model"
	slotRepository "crowd/internal/domains/slot/repository"
	"crowd/shared/constant"
	"crowd/shared/metrics"
	"crowd/shared/timezone"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	confirmationTemplate = "Dear Citizen, your appointment at %s is confirmed for %s at %s. Request ID: %s. Please carry your documents."
	overloadTemplate     = "System Overload. All nearby centers are full for the next %d days. Please try again later."

	requestIDLength = 10
)

// ErrUnavailable means no cell in the search horizon can take the request.
var ErrUnavailable = errors.New("no slot available in the search horizon")

// Slot is a cell picked by FindSlot. Deferred is set when the date is after today.
type Slot struct {
	Date     string
	Hour     int
	Deferred bool
}

func (s Slot) TimeSlot() string {
	return fmt.Sprintf(constant.TimeSlotFormat, s.Hour)
}

func newRequestID(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", constant.Empty))

	return prefix + id[:requestIDLength]
}

// Process routes the applicant, finds the earliest slot and books it. An exhausted horizon
// is reported through the result, not as an error.
func (s *serviceImpl) Process(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Process")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	center := s.centers.Select(req.City, req.PostalCode)
	walkIn := req.IsWalkIn()

	scope.SetAttributes(map[string]any{
		"center_id": center.CenterID,
		"user_type": req.UserType,
	})

	for attempt := range s.window.MaxAttempts {
		var (
			slot   Slot
			record model.Request
		)

		slot, err = s.FindSlot(ctx, center, walkIn)
		if errors.Is(err, ErrUnavailable) {
			err = nil

			break
		}

		if err != nil {
			return res, err
		}

		record, err = s.Commit(ctx, center, slot, req)
		if errors.Is(err, slotRepository.ErrSlotTaken) {
			metrics.ObserveReserveConflict()
			log.Debug().Int("attempt", attempt+1).Str("center_id", center.CenterID).Str("date", slot.Date).Int("hour", slot.Hour).Msg("slot taken concurrently, searching again")

			err = nil

			continue
		}

		if err != nil {
			return res, err
		}

		message := fmt.Sprintf(confirmationTemplate, center.Name, record.AssignedDate, record.AssignedTimeSlot, record.RequestID)

		metrics.ObserveBooking(record.UserType, record.Status)
		s.notify(ctx, events.TypeBookingConfirmed, []model.Request{record}, func(model.Request) string { return message })
		s.invalidate(ctx, cacheListRequests)

		data := dto.BookingResponse{}
		data.FromModel(record)

		return dto.BookingResult{
			Success:    true,
			Data:       &data,
			CenterName: center.Name,
			Message:    message,
		}, nil
	}

	metrics.ObserveOverload(req.UserType)
	log.Warn().Str("center_id", center.CenterID).Str("user_type", req.UserType).Msg("search horizon exhausted")

	return dto.BookingResult{
		Success: false,
		Message: fmt.Sprintf(overloadTemplate, s.window.Days),
	}, nil
}

// FindSlot scans the horizon date first, then hour, and returns the first cell that can take
// this kind of request. It only reads the ledger.
func (s *serviceImpl) FindSlot(ctx context.Context, center centerModel.Center, walkIn bool) (slot Slot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.FindSlot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.now()
	today := timezone.StartOfDay(now)
	last := today.AddDate(0, 0, s.window.Days-1)

	cells, err := s.slotRepo.GetRange(ctx, center.CenterID, today.Format(constant.DayFormat), last.Format(constant.DayFormat))
	if err != nil {
		log.Error().Err(err).Str("center_id", center.CenterID).Msg("failed to read load ledger")

		return slot, fmt.Errorf("failed to read load ledger: %w", err)
	}

	loads := make(map[slotModel.Key]slotModel.LoadCell, len(cells))
	for _, cell := range cells {
		loads[cell.Key()] = cell
	}

	for offset := range s.window.Days {
		date := today.AddDate(0, 0, offset).Format(constant.DayFormat)

		for hour := s.window.Open; hour < s.window.Close; hour++ {
			if offset == 0 && !s.window.Bookable(hour, now.Hour(), walkIn) {
				continue
			}

			if s.buffer.Open(loads[slotModel.Key{Date: date, Hour: hour}], center.CapacityPerHour, walkIn) {
				return Slot{Date: date, Hour: hour, Deferred: offset > 0}, nil
			}
		}
	}

	return slot, ErrUnavailable
}

// Commit reserves the cell and appends the record in one transaction. ErrSlotTaken is
// returned unwrapped when the cell filled up after FindSlot read it.
func (s *serviceImpl) Commit(ctx context.Context, center centerModel.Center, slot Slot, req dto.CreateBookingRequest) (record model.Request, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Commit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	walkIn := req.IsWalkIn()

	record = req.ToModel(newRequestID(s.cfg.Allocation.RequestIDPrefix), s.now())
	record.AssignedCenterID = center.CenterID
	record.AssignedDate = slot.Date
	record.AssignedTimeSlot = slot.TimeSlot()
	record.Status = model.Status(walkIn, slot.Deferred)

	reservation := slotModel.Reservation{
		CenterID: center.CenterID,
		Date:     slot.Date,
		Hour:     slot.Hour,
		WalkIn:   walkIn,
		Limit:    s.buffer.Limit(center.CapacityPerHour, walkIn),
		Capacity: center.CapacityPerHour,
		At:       record.CreatedAt,
	}

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.slotRepo.ReserveTx(ctx, tx, reservation); err != nil {
			return err //nolint:wrapcheck
		}

		return s.repo.InsertTx(ctx, tx, record) //nolint:wrapcheck
	})
	if errors.Is(err, slotRepository.ErrSlotTaken) {
		return model.Request{}, err
	}

	if err != nil {
		log.Error().Err(err).Str("center_id", center.CenterID).Msg("failed to commit booking")

		return model.Request{}, fmt.Errorf("failed to commit booking: %w", err)
	}

	return record, nil
}

// notify publishes after the transaction, delivery failures never undo a booking.
func (s *serviceImpl) notify(ctx context.Context, kind string, records []model.Request, message func(model.Request) string) {
	if len(records) == 0 {
		return
	}

	now := s.now()
	notifications := make([]events.Notification, 0, len(records))

	for _, record := range records {
		notifications = append(notifications, events.Notification{
			Type:       kind,
			RequestID:  record.RequestID,
			CenterID:   record.AssignedCenterID,
			Phone:      record.Phone,
			Status:     record.Status,
			Date:       record.AssignedDate,
			TimeSlot:   record.AssignedTimeSlot,
			Message:    message(record),
			OccurredAt: now,
		})
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, notifications...); err != nil {
			log.Error().Err(err).Str("type", kind).Int("count", len(notifications)).Msg("failed to publish notifications")
		}
	}()
}
