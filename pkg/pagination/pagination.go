package pagination

import "math"

// Pagination represents pagination metadata on a list response
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	Size        int   `json:"size"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// Params represents input parameters for pagination
type Params struct {
	Page int `form:"page" json:"page"`
	Size int `form:"size" json:"size"`
}

// DefaultParams returns default pagination values
func DefaultParams() *Params {
	return &Params{
		Page: 1,
		Size: 15,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = 15
	}
	if p.Size > 100 {
		p.Size = 100
	}
}

// Offset calculates the offset for SQL queries
func (p *Params) Offset() int {
	return (p.Page - 1) * p.Size
}

// New creates Pagination metadata from validated params and a total count
func New(page, size int, total int64) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(size)))

	return &Pagination{
		CurrentPage: page,
		Size:        size,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// Result represents a paginated result with items and pagination info
type Result[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// NewResult creates a new paginated result
func NewResult[T any](items []T, pagination *Pagination) *Result[T] {
	return &Result[T]{
		Items:      items,
		Pagination: pagination,
	}
}
