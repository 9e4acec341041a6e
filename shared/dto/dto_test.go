package dto_test

import (
	"appointly/shared/constant"
	"appointly/shared/dto"
	"appointly/shared/model"
	"appointly/shared/timezone"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, createdAt.In(timezone.GetLocation()).Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.In(timezone.GetLocation()).Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=date&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "date", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults applied",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			query:          "page=abc&limit=-10",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction ignored",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
		{
			name:     "limit is capped",
			query:    "page=1&limit=5000",
			expected: dto.QueryParams{Page: 1, Limit: constant.MaxValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/appointments?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_WithDefaultSort(t *testing.T) {
	assert.Equal(t,
		dto.QueryParams{Page: 1, SortBy: "date", SortDir: dto.SortDirAsc},
		dto.QueryParams{Page: 1}.WithDefaultSort("date", "asc"))

	assert.Equal(t,
		dto.QueryParams{SortBy: "name", SortDir: dto.SortDirDesc},
		dto.QueryParams{SortBy: "name", SortDir: dto.SortDirDesc}.WithDefaultSort("date", dto.SortDirAsc))

	assert.Equal(t,
		dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
		dto.QueryParams{SortBy: "name"}.WithDefaultSort("date", dto.SortDirDesc))
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name   string
		filter dto.Filter
		where  string
		args   map[string]any
	}{
		{
			name:   "equal with table",
			filter: dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "appointments"},
			where:  "appointments.status = :status",
			args:   map[string]any{"status": "pending"},
		},
		{
			name:   "not in slice",
			filter: dto.Filter{Field: "status", Value: []string{"cancelled", "no_show"}, Operator: dto.FilterOperatorNotIn},
			where:  "status NOT IN (:status_0, :status_1) ",
			args:   map[string]any{"status_0": "cancelled", "status_1": "no_show"},
		},
		{
			name:   "empty in matches nothing",
			filter: dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			where:  "FALSE",
			args:   map[string]any{},
		},
		{
			name:   "custom arg name",
			filter: dto.Filter{Field: "date", ArgName: "date_from", Value: "2024-01-01", Operator: dto.FilterOperatorGreaterEq},
			where:  "date >= :date_from",
			args:   map[string]any{"date_from": "2024-01-01"},
		},
		{
			name:   "strictly less",
			filter: dto.Filter{Field: "date", Value: "2024-01-10", Operator: dto.FilterOperatorLess},
			where:  "date < :date",
			args:   map[string]any{"date": "2024-01-10"},
		},
		{
			name:   "unknown operator",
			filter: dto.Filter{Field: "date", Operator: "between"},
			where:  "",
			args:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "business_owner_id", Value: "owner-1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "staff_id", Value: "staff-1", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "staff_id", ArgName: "no_staff", Value: "", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(business_owner_id = :business_owner_id AND (staff_id = :staff_id OR staff_id = :no_staff))", where)
	assert.Equal(t, map[string]any{"business_owner_id": "owner-1", "staff_id": "staff-1", "no_staff": ""}, args)

	empty := dto.FilterGroup{}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}
