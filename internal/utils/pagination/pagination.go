package pagination

import "math"

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Params is a normalized page request.
type Params struct {
	Page    int
	PerPage int
}

// Normalize clamps raw query values into valid pagination parameters.
func Normalize(page, perPage int) Params {
	if page <= 0 {
		page = 1
	}
	switch {
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	case perPage <= 0:
		perPage = DefaultPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

// Offset returns the row offset for the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta is the pagination metadata attached to list responses.
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
}

// NewMeta builds response metadata from the request parameters and total count.
func NewMeta(p Params, total int64) Meta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PerPage)))
	}
	return Meta{
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
		Total:       total,
		TotalPages:  totalPages,
	}
}
