package shared_test

import (
	"context"
	"crowd/shared"
	"crowd/shared/cache/mocks"
	"crowd/shared/dto"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 10, limit: 0, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "remainder", total: 21, limit: 10, expected: 3},
		{name: "less than limit", total: 3, limit: 50, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("ASK001", "center_id", "centers")

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(centers.center_id = :center_id)", where)
	assert.Equal(t, map[string]any{"center_id": "ASK001"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "center:get:ASK001", shared.BuildCacheKey("center:get", "ASK001"))
	assert.Equal(t, "center:list", shared.BuildCacheKey("center:list"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "Confirmed", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "age_group", Value: "Senior (60+)", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "age_group=Senior (60+)&status=Confirmed")

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	assert.NotEqual(t, first, other)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockRedisCache(ctrl)
	ctx := context.Background()

	mockCache.EXPECT().Clear(ctx, "center:list:*").Return(nil)
	shared.InvalidateCaches(ctx, mockCache, "center:list")

	mockCache.EXPECT().Clear(ctx, "booking:track:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(ctx, mockCache, "booking:track")
}
