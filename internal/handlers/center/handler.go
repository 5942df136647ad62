package center

import (
	"crowd/infras/otel"
	"crowd/internal/domains/center/service"
	"crowd/shared/constant"
	"crowd/shared/validator"
	"crowd/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Center
	otel    otel.Otel
}

func New(service service.Center, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/centers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCenters)
		routerGroup.Get("/{id}", handler.GetCenterByID)
		routerGroup.Get("/{id}/load", handler.GetCenterLoad)
	})
}

// GetCenters lists the service centers.
// @Summary List centers
// @Tags Center
// @Produce json
// @Success 200 {object} response.Data[dto.GetCentersResponse]
// @Router /v1/centers [get]
func (handler *Handler) GetCenters(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCenters")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.List(ctx))
}

// GetCenterByID
// @Summary Get a center
// @Tags Center
// @Produce json
// @Param id path string true "Center ID"
// @Success 200 {object} response.Data[dto.CenterResponse]
// @Failure 404 {object} response.Error
// @Router /v1/centers/{id} [get]
func (handler *Handler) GetCenterByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCenterByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetCenterLoad reports the hourly load of a center on one day.
// @Summary Get center load
// @Description Every service hour of the day with its scheduled and walk-in counts. Defaults to today.
// @Tags Center
// @Produce json
// @Param id path string true "Center ID"
// @Param date query string false "Day as YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.CenterLoadResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/centers/{id}/load [get]
func (handler *Handler) GetCenterLoad(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCenterLoad")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	date := request.URL.Query().Get(constant.RequestParamDate)

	if err := validator.ValidateVar(date, "omitempty,datetime="+constant.DayFormat); err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Load(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("center_id", id).Msg("failed to get center load")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
