package salesview

import (
	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/airvoucher/av_backend/internal/utils/pagination"
)

// Result is one served page of the sales table.
type Result struct {
	Records []domain.SaleRecord
	// Filtered is the number of records left after filtering, across all pages.
	Filtered int
	State    FilterState
	pagination.Meta
}

// Paginate returns page of records (page size PageSize) with its metadata.
// The page is clamped into [1, TotalPages].
func Paginate(records []domain.SaleRecord, page int) ([]domain.SaleRecord, pagination.Meta) {
	return pagination.Page(records, page, PageSize)
}

// Apply runs filter, sort and paginate. The returned State carries the page
// actually served.
func Apply(records []domain.SaleRecord, state FilterState) Result {
	state = state.Normalized()
	filtered := Filter(records, state)
	sorted := Sort(filtered, state.SortField, state.SortDirection)
	pageRecords, meta := Paginate(sorted, state.Page)
	state.Page = meta.CurrentPage

	return Result{
		Records:  pageRecords,
		Filtered: len(filtered),
		State:    state,
		Meta:     meta,
	}
}

// Page is a served result with display rows and filter panel options.
type Page struct {
	Rows    []Row
	Options Options
	Result
}

// Render runs Apply over records and formats the page rows. Options are
// computed from the unfiltered records.
func (f Formatter) Render(records []domain.SaleRecord, state FilterState) Page {
	result := Apply(records, state)
	return Page{
		Rows:    f.Rows(result.Records),
		Options: FilterOptions(records),
		Result:  result,
	}
}
