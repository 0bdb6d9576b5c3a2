package pagination

// DefaultPageSize is the fixed number of rows on one sales table page.
const DefaultPageSize = 10

// Meta describes one page of an offset-paginated list.
type Meta struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
	// StartIndex and EndIndex are 1-based and inclusive ("Showing 11 to 20 of 25").
	// Both are 0 when the list is empty.
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

// TotalPages returns ceil(totalItems/pageSize), never less than 1.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (totalItems + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Bounds returns the zero-based half-open slice bounds of page within totalItems.
func Bounds(page, pageSize, totalItems int) (start, end int) {
	start = (page - 1) * pageSize
	if start > totalItems {
		start = totalItems
	}
	end = start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// NewMeta builds page metadata for a clamped page.
func NewMeta(page, pageSize, totalItems int) Meta {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := TotalPages(totalItems, pageSize)
	page = ClampPage(page, totalPages)
	start, end := Bounds(page, pageSize, totalItems)

	meta := Meta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
	if end > start {
		meta.StartIndex = start + 1
		meta.EndIndex = end
	}
	return meta
}

// Page returns the items on the requested page together with its metadata.
// The requested page is clamped, so an out-of-range page yields the nearest valid one.
func Page[T any](items []T, page, pageSize int) ([]T, Meta) {
	meta := NewMeta(page, pageSize, len(items))
	start, end := Bounds(meta.CurrentPage, meta.PageSize, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, meta
}
