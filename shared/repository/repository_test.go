package repository

import (
	"appointly/infras/otel/mocks"
	"appointly/shared/dto"
	"appointly/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

type slot struct {
	ID        string `db:"id"`
	StartTime string `db:"start_time"`
	OwnerName string `db:"owner_name" table:"business_profiles" column:"name"`
	model.Metadata
}

func TestRepository_Ordering(t *testing.T) {
	repo := NewRepository[slot]("slot", "slots", "id", nil, mocks.NewOtel())

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{name: "known column", params: dto.QueryParams{SortBy: "start_time", SortDir: "asc"}, want: "ORDER BY slots.start_time ASC"},
		{name: "embedded metadata column", params: dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc}, want: "ORDER BY slots.created_at DESC"},
		{name: "joined alias", params: dto.QueryParams{SortBy: "owner_name", SortDir: dto.SortDirAsc}, want: "ORDER BY business_profiles.name ASC"},
		{name: "unknown column", params: dto.QueryParams{SortBy: "id; DROP TABLE slots", SortDir: dto.SortDirAsc}},
		{name: "bad direction", params: dto.QueryParams{SortBy: "id", SortDir: "ASC, pg_sleep(5)"}},
		{name: "no direction", params: dto.QueryParams{SortBy: "id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.ordering(tt.params))
		})
	}
}

func TestRepository_InsertColumnsSkipJoinedFields(t *testing.T) {
	repo := NewRepository[slot]("slot", "slots", "id", nil, mocks.NewOtel())

	assert.Equal(t, []string{"id", "start_time", "created_at", "modified_at", "created_by", "modified_by"}, repo.InsertColumns)
}
