package dto

import (
	"appointly/shared/constant"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// With defaultRequest set, missing page and limit fall back to the defaults.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	values := r.URL.Query()

	q.Page = positive(values.Get(constant.RequestParamPage), q.Page)
	q.Limit = min(positive(values.Get(constant.RequestParamLimit), q.Limit), constant.MaxValueLimit)

	if sortBy := strings.TrimSpace(values.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	if dir := normalizeDir(values.Get(constant.RequestParamSortDir)); dir != "" {
		q.SortDir = dir
	}

	if !defaultRequest {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// WithDefaultSort orders by column when the caller asked for no ordering.
// A sort column without a direction sorts ascending.
func (q QueryParams) WithDefaultSort(column, dir string) QueryParams {
	if q.SortBy == "" {
		q.SortBy = column
		q.SortDir = normalizeDir(dir)
	}

	if q.SortDir == "" {
		q.SortDir = SortDirAsc
	}

	return q
}

func normalizeDir(value string) string {
	switch dir := strings.ToUpper(strings.TrimSpace(value)); dir {
	case SortDirAsc, SortDirDesc:
		return dir
	default:
		return ""
	}
}

func positive(value string, fallback int) int {
	if value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}
