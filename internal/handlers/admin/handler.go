package admin

import (
	"crowd/infras/otel"
	"crowd/internal/domains/booking/model/dto"
	"crowd/internal/domains/booking/service"
	"crowd/shared/constant"
	gDto "crowd/shared/dto"
	"crowd/shared/validator"
	"crowd/transport/http/middleware"
	"crowd/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const messageResetDone = "All requests and slot loads cleared."

type Handler struct {
	service    service.Booking
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)

		routerGroup.Post("/redistribute", handler.Redistribute)
		routerGroup.Post("/dashboard", handler.Dashboard)
		routerGroup.Get("/requests", handler.GetRequests)
		routerGroup.Post("/exports", handler.Export)
		routerGroup.Post("/reset", handler.Reset)
	})
}

// Redistribute moves today's confirmed scheduled requests of a center to tomorrow.
// @Summary Redistribute a center
// @Description Shifts today's confirmed scheduled requests at the center to tomorrow and marks them rescheduled.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.RedistributeRequest true "Center to relieve"
// @Success 200 {object} response.Data[dto.RedistributeResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/redistribute [post]
// @Security ApiKeyAuth
func (handler *Handler) Redistribute(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Redistribute")
	defer scope.End()

	req := dto.RedistributeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Redistribute(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("center_id", req.CenterID).Msg("failed to redistribute center")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Dashboard
// @Summary Request dashboard
// @Description Counters and the latest requests, narrowed by region, status and age group.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.DashboardRequest true "Filters"
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/dashboard [post]
// @Security ApiKeyAuth
func (handler *Handler) Dashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	req := dto.DashboardRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Dashboard(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRequests pages through the request ledger.
// @Summary List requests
// @Tags Admin
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort_by query string false "created_at, assigned_date, request_id or name"
// @Param sort_dir query string false "ASC or DESC"
// @Param region query string false "Substring of the applicant city"
// @Param status query string false "All, Pending or Done"
// @Param age_group query string false "Age group"
// @Success 200 {object} response.Data[dto.GetRequestsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/requests [get]
// @Security ApiKeyAuth
func (handler *Handler) GetRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequests")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(request, true)

	req := dto.DashboardRequest{}
	req.FromQuery(request)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, params, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Export uploads the request ledger as CSV.
// @Summary Export requests
// @Tags Admin
// @Produce json
// @Success 201 {object} response.Data[dto.ExportResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/admin/exports [post]
// @Security ApiKeyAuth
func (handler *Handler) Export(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	res, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// Reset clears every request and slot load.
// @Summary Reset the system
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/reset [post]
// @Security ApiKeyAuth
func (handler *Handler) Reset(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reset")
	defer scope.End()

	if err := handler.service.Reset(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset system")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, messageResetDone)
}
