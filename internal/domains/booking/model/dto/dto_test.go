package dto_test

import (
	"crowd/internal/domains/booking/model"
	"crowd/internal/domains/booking/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	age := 64
	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

	req := dto.CreateBookingRequest{
		RequestType: "Biometric Update",
		UserType:    model.UserTypeWalkin,
		City:        "Noida",
		PostalCode:  "201301",
		Name:        "Ravi Kumar",
		Phone:       "9812345678",
		Age:         &age,
	}

	record := req.ToModel("REQ0123456789", now)

	assert.True(t, req.IsWalkIn())
	assert.Equal(t, "REQ0123456789", record.RequestID)
	assert.Equal(t, model.AgeGroupSenior, record.AgeGroup)
	assert.Equal(t, "Noida", record.InputCity)
	assert.Equal(t, "201301", record.InputPostalCode)
	assert.Equal(t, now, record.CreatedAt)
	assert.Empty(t, record.AssignedCenterID)
}

func TestDashboardRequest_ToFilter(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.DashboardRequest
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "all",
			req:       dto.DashboardRequest{Region: "All", Status: "All", AgeGroup: "All"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "pending in region",
			req:       dto.DashboardRequest{Region: "Delhi", Status: dto.StatusFilterPending},
			wantWhere: "(LOWER(input_city) LIKE LOWER(:input_city)  AND status = :status)",
			wantArgs:  map[string]any{"input_city": "%Delhi%", "status": model.StatusConfirmed},
		},
		{
			name:      "done for seniors",
			req:       dto.DashboardRequest{Status: dto.StatusFilterDone, AgeGroup: model.AgeGroupSenior},
			wantWhere: "(status = :status AND age_group = :age_group)",
			wantArgs:  map[string]any{"status": model.StatusCompleted, "age_group": model.AgeGroupSenior},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.req.ToFilter()
			where, args := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
