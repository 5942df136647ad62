package center_test

import (
	"crowd/infras/otel/mocks"
	"crowd/internal/domains/center/model/dto"
	serviceMocks "crowd/internal/domains/center/service/mocks"
	"crowd/internal/handlers/center"
	"crowd/shared/failure"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *serviceMocks.MockCenter) *chi.Mux {
	handler := center.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_GetCenters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := serviceMocks.NewMockCenter(ctrl)
	svc.EXPECT().List(gomock.Any()).Return(dto.GetCentersResponse{
		Centers:   []dto.CenterResponse{{CenterID: "ASK001"}, {CenterID: "ASK002"}},
		TotalData: 2,
	})

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/centers/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data dto.GetCentersResponse `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 2, payload.Data.TotalData)
	assert.Equal(t, "ASK001", payload.Data.Centers[0].CenterID)
}

func TestHandler_GetCenterByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := serviceMocks.NewMockCenter(ctrl)
	svc.EXPECT().Get(gomock.Any(), "ASK003").Return(dto.CenterResponse{CenterID: "ASK003", CapacityPerHour: 30}, nil)
	svc.EXPECT().Get(gomock.Any(), "ASK999").Return(dto.CenterResponse{}, failure.NotFound("center"))

	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/centers/ASK003", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/centers/ASK999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_GetCenterLoad(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		date       string
		calls      int
		err        error
		wantStatus int
	}{
		{name: "explicit date", url: "/centers/ASK003/load?date=2026-03-03", date: "2026-03-03", calls: 1, wantStatus: http.StatusOK},
		{name: "defaults to today", url: "/centers/ASK003/load", date: "", calls: 1, wantStatus: http.StatusOK},
		{name: "unknown center", url: "/centers/ASK003/load?date=2026-03-03", date: "2026-03-03", calls: 1, err: failure.NotFound("center not found"), wantStatus: http.StatusNotFound},
		{name: "bad date", url: "/centers/ASK003/load?date=03-03-2026", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := serviceMocks.NewMockCenter(ctrl)
			svc.EXPECT().
				Load(gomock.Any(), "ASK003", tt.date).
				Return(dto.CenterLoadResponse{CenterID: "ASK003", Date: tt.date}, tt.err).
				Times(tt.calls)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
