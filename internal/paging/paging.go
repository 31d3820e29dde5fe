// Package paging holds the list-view windowing rules: slice bounds for a
// page, the sliding page-number window and the page/page-size state machine.
package paging

import (
	"github.com/joefazee/atlas/internal/validator"
	"github.com/joefazee/atlas/models"
)

const (
	DefaultPageSize = 8
	// WindowWidth is the maximum number of page buttons shown at once.
	WindowWidth = 5
)

// PageSizes are the selectable page sizes, in display order.
var PageSizes = []int{8, 12, 16, 24}

// ValidPageSize reports whether n is one of PageSizes
func ValidPageSize(n int) bool {
	return validator.In(n, PageSizes...)
}

// TotalPages returns ceil(total/pageSize). Zero items means zero pages.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Bounds returns the half-open slice bounds of page within total items,
// clipped to [0, total].
func Bounds(page, pageSize, total int) (start, end int) {
	if page < 1 {
		page = 1
	}
	start = (page - 1) * pageSize
	end = page * pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end
}

// Window returns the page numbers to display around current. The window has
// width min(WindowWidth, totalPages) and always stays inside [1, totalPages].
func Window(current, totalPages int) []int {
	start := max(current-2, 1)
	end := min(start+WindowWidth-1, totalPages)
	if end-start < WindowWidth-1 {
		start = max(end-WindowWidth+1, 1)
	}
	if end < start {
		return []int{}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// State is the mutable list state of one viewer.
type State struct {
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// NewState returns the state of a freshly opened list view
func NewState() State {
	return State{Page: 1, PageSize: DefaultPageSize}
}

// Normalize repairs zero or out-of-range fields, e.g. state restored from an
// older session.
func (s *State) Normalize() {
	if !ValidPageSize(s.PageSize) {
		s.PageSize = DefaultPageSize
	}
	if s.Page < 1 {
		s.Page = 1
	}
}

// SetSearch replaces the search term and goes back to the first page
func (s *State) SetSearch(term string) {
	s.Search = term
	s.Page = 1
}

// SetPageSize changes the page size and goes back to the first page
func (s *State) SetPageSize(n int) error {
	if !ValidPageSize(n) {
		return models.ErrInvalidPageSize
	}
	s.PageSize = n
	s.Page = 1
	return nil
}

// GoTo moves to page, clamped to [1, totalPages]
func (s *State) GoTo(page, totalPages int) {
	s.Page = clamp(page, totalPages)
}

// Next advances one page; it is a no-op on the last page
func (s *State) Next(totalPages int) {
	if s.Page < totalPages {
		s.Page++
	}
}

// Prev goes back one page; it is a no-op on the first page
func (s *State) Prev() {
	if s.Page > 1 {
		s.Page--
	}
}

func clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}
