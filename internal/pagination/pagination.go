// Package pagination applies optional page/page_size query parameters to
// list queries.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

// PageRequest holds pagination parameters parsed from query strings.
// A zero PageRequest means "return everything".
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// IsSet reports whether the caller asked for a page.
func (p PageRequest) IsSet() bool {
	return p.Page != 0 || p.PageSize != 0
}

// Defaults fills in default values when only one of page or page_size is provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 50
	}
}

// Offset returns the SQL OFFSET for the current page. Offsets that would
// overflow int saturate at math.MaxInt, which reads as past the end.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns how many pages totalItems spans at the current page size.
func (p PageRequest) TotalPages(totalItems int64) int {
	if p.PageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(p.PageSize)))
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given
// page request. An unset request leaves the query unbounded.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !req.IsSet() {
			return db
		}
		req.Defaults()
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}
