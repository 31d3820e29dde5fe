package paging

// View is one rendered page of a derived list.
type View[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"per_page"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	From       int   `json:"from"`
	To         int   `json:"to"`
	Pages      []int `json:"pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// Paginate cuts the page described by st out of items. st.Page is clamped to
// the available pages first, so callers can store the returned state back.
func Paginate[T any](items []T, st *State) View[T] {
	st.Normalize()

	total := len(items)
	totalPages := TotalPages(total, st.PageSize)
	st.GoTo(st.Page, totalPages)

	start, end := Bounds(st.Page, st.PageSize, total)

	v := View[T]{
		Items:      items[start:end],
		Page:       st.Page,
		PageSize:   st.PageSize,
		Total:      total,
		TotalPages: totalPages,
		To:         end,
		Pages:      Window(st.Page, totalPages),
		HasPrev:    st.Page > 1,
		HasNext:    st.Page < totalPages,
	}
	if total > 0 {
		v.From = start + 1
	}
	return v
}

// Map converts the items of a view while keeping the paging data
func Map[T, U any](v View[T], fn func(T) U) View[U] {
	out := make([]U, len(v.Items))
	for i := range v.Items {
		out[i] = fn(v.Items[i])
	}
	return View[U]{
		Items:      out,
		Page:       v.Page,
		PageSize:   v.PageSize,
		Total:      v.Total,
		TotalPages: v.TotalPages,
		From:       v.From,
		To:         v.To,
		Pages:      v.Pages,
		HasPrev:    v.HasPrev,
		HasNext:    v.HasNext,
	}
}
