package shared_test

import (
	"appointly/shared"
	cacheMocks "appointly/shared/cache/mocks"
	"appointly/shared/constant"
	"appointly/shared/dto"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "0", expected: boolPtr(false)},
		{input: "F", expected: boolPtr(false)},
		{input: "yes", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	value, err := shared.ConvertStringToInt("45")
	assert.NoError(t, err)
	assert.Equal(t, 45, value)

	_, err = shared.ConvertStringToInt("forty")
	assert.Error(t, err)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 100, limit: 0, expected: 1},
		{name: "exact", total: 100, limit: 10, expected: 10},
		{name: "remainder", total: 101, limit: 10, expected: 11},
		{name: "limit above total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type statusUpdate struct {
		Status  string  `db:"status"`
		Notes   string  `db:"notes"`
		StaffID *string `db:"staff_id"`
		Skipped string  `db:"-"`
		NoTag   string
	}

	empty := ""

	result := shared.TransformFields(statusUpdate{
		Status:  "confirmed",
		StaffID: &empty,
		Skipped: "x",
		NoTag:   "y",
	}, "owner-1")

	assert.Equal(t, "confirmed", result["status"])
	assert.Equal(t, &empty, result["staff_id"])
	assert.NotContains(t, result, "notes")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "owner-1", result[constant.FieldModifiedBy])

	_, ok := result[constant.FieldModifiedAt].(time.Time)
	assert.True(t, ok)
	assert.Len(t, result, 4)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("a-1", "id", "appointments")

	require.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	require.True(t, ok)
	assert.Equal(t, dto.Filter{Field: "id", Value: "a-1", Operator: dto.FilterOperatorEq, Table: "appointments"}, filter)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "appointment:owner-1:a-1", shared.BuildCacheKey("appointment", "owner-1", "a-1"))
	assert.Equal(t, "appointment", shared.BuildCacheKey("appointment"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	key := shared.BuildCacheKeyWithQuery("appointment:available:owner-1", map[string]any{
		"staff":    "",
		"duration": 30,
		"date":     "2024-01-01",
	})

	assert.Equal(t, "appointment:available:owner-1:date=2024-01-01:duration=30", key)

	same := shared.BuildCacheKeyWithQuery("appointment:available:owner-1", map[string]any{
		"date":     "2024-01-01",
		"duration": 30,
	})

	assert.Equal(t, key, same)
}

func boolPtr(b bool) *bool {
	return &b
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "appointment:gets*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "appointment:get*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "appointment:gets")
	shared.InvalidateCaches(context.Background(), mockCache, "appointment:get")
}

func TestExpireAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Bump(gomock.Any(), "appointment:generation:owner-1").Return(int64(4), nil)
	shared.ExpireAvailability(context.Background(), mockCache, "owner-1")

	mockCache.EXPECT().Bump(gomock.Any(), "appointment:generation:owner-1").Return(int64(0), errors.New("redis down"))
	mockCache.EXPECT().Clear(gomock.Any(), "appointment:available:owner-1*").Return(nil)
	shared.ExpireAvailability(context.Background(), mockCache, "owner-1")
}
