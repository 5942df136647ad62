package booking

import (
	"crowd/infras/otel"
	"crowd/internal/domains/booking/model/dto"
	"crowd/internal/domains/booking/service"
	"crowd/shared/constant"
	"crowd/shared/validator"
	"crowd/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id}", handler.TrackBooking)
	})
}

// CreateBooking routes an applicant to a center and books the earliest free hour.
// @Summary Book an appointment
// @Description Picks a center from the postal code or city, then the earliest hour with room in the next days.
// @Description When every center hour is full the result has success=false and an overload message.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Applicant details"
// @Success 201 {object} response.Data[dto.BookingResult] "Booking confirmed"
// @Success 200 {object} response.Data[dto.BookingResult] "No slot available"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Process(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process booking")

		response.WithError(writer, err)

		return
	}

	if !res.Success {
		scope.AddEvent("Booking rejected, search horizon exhausted")
		response.WithJSON(writer, http.StatusOK, res)

		return
	}

	scope.AddEvent("Booking confirmed " + res.Data.RequestID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// TrackBooking returns the current assignment of a request.
// @Summary Track a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Data[dto.TrackResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) TrackBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrackBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Track(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("request_id", id).Msg("failed to track booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
