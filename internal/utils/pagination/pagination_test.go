package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", 0, 0, 1, pagination.DefaultPerPage},
		{"negative page clamped", -5, 10, 1, 10},
		{"per page capped", 1, 1000, 1, pagination.MaxPerPage},
		{"valid values kept", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.Normalize(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPerPage, got.PerPage)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, PerPage: 15}.Offset())
	assert.Equal(t, 30, pagination.Params{Page: 3, PerPage: 15}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.Params{Page: 2, PerPage: 10}, 35)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)

	empty := pagination.NewMeta(pagination.Params{Page: 1, PerPage: 10}, 0)
	assert.Equal(t, 0, empty.TotalPages)
}
