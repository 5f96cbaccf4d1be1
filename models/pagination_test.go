package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationQueryNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PaginationQuery
		wantPage  int
		wantLimit int
	}{
		{"zero values get defaults", PaginationQuery{}, 1, 20},
		{"negative page clamps to 1", PaginationQuery{Page: -3, Limit: 10}, 1, 10},
		{"limit above cap resets to default", PaginationQuery{Page: 2, Limit: 500}, 2, 20},
		{"limit at cap kept", PaginationQuery{Page: 2, Limit: 100}, 2, 100},
		{"valid values untouched", PaginationQuery{Page: 4, Limit: 25}, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Normalize()
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

func TestPaginationQueryOffset(t *testing.T) {
	q := PaginationQuery{Page: 3, Limit: 20}
	assert.Equal(t, 40, q.Offset())
}

func TestNewPaginationResult(t *testing.T) {
	tests := []struct {
		total     int64
		limit     int
		wantPages int64
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
	}
	for _, tt := range tests {
		result := NewPaginationResult(tt.total, 1, tt.limit)
		assert.EqualValues(t, tt.wantPages, result.Pages, "total=%d limit=%d", tt.total, tt.limit)
	}
}
