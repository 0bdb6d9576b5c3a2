// Package salesview turns a list of sale records into one rendered page of the
// sales table: filtering, sorting, pagination and per-row display values.
// Every function is pure; inputs are never modified.
package salesview

import (
	"strings"

	"github.com/airvoucher/av_backend/internal/utils/pagination"
)

// FilterAll disables a select filter.
const FilterAll = "all"

// PageSize is the number of rows on one sales table page.
const PageSize = pagination.DefaultPageSize

type SortField string

const (
	SortDate         SortField = "date"
	SortVoucherType  SortField = "voucher_type"
	SortAmount       SortField = "amount"
	SortRetailerName SortField = "retailer_name"
	SortTerminalName SortField = "terminal_name"
	SortRefNumber    SortField = "ref_number"
)

// IsKnown reports whether the field has a comparator.
func (f SortField) IsKnown() bool {
	switch f {
	case SortDate, SortVoucherType, SortAmount, SortRetailerName, SortTerminalName, SortRefNumber:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection defaults anything other than "asc" to descending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(s, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// FilterState is the table state a client sends with each request.
type FilterState struct {
	VoucherType   string
	RetailerName  string
	TerminalName  string
	Search        string
	SortField     SortField
	SortDirection SortDirection
	Page          int
}

// DefaultState is newest-first, unfiltered, first page.
func DefaultState() FilterState {
	return FilterState{
		VoucherType:   FilterAll,
		RetailerName:  FilterAll,
		TerminalName:  FilterAll,
		SortField:     SortDate,
		SortDirection: SortDesc,
		Page:          1,
	}
}

// Normalized fills empty selects with FilterAll and raises the page to at
// least 1. The search term is kept as typed.
func (s FilterState) Normalized() FilterState {
	if s.VoucherType == "" {
		s.VoucherType = FilterAll
	}
	if s.RetailerName == "" {
		s.RetailerName = FilterAll
	}
	if s.TerminalName == "" {
		s.TerminalName = FilterAll
	}
	if s.SortField == "" {
		s.SortField = SortDate
	}
	if s.SortDirection != SortAsc {
		s.SortDirection = SortDesc
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}

// sameView reports whether s and prev select and order the same rows.
func (s FilterState) sameView(prev FilterState) bool {
	a, b := s.Normalized(), prev.Normalized()
	return a.VoucherType == b.VoucherType &&
		a.RetailerName == b.RetailerName &&
		a.TerminalName == b.TerminalName &&
		a.Search == b.Search &&
		a.SortField == b.SortField &&
		a.SortDirection == b.SortDirection
}

// Reset returns s with Page set to 1 when any filter, the sort field or the
// sort direction differs from prev. Otherwise s is returned unchanged.
func (s FilterState) Reset(prev FilterState) FilterState {
	if !s.sameView(prev) {
		s.Page = 1
	}
	return s
}

// ToggleSort applies a header click: the same field flips direction, a new
// field is selected descending. The page always goes back to 1.
func ToggleSort(s FilterState, field SortField) FilterState {
	next := s
	if s.SortField == field {
		if s.SortDirection == SortAsc {
			next.SortDirection = SortDesc
		} else {
			next.SortDirection = SortAsc
		}
	} else {
		next.SortField = field
		next.SortDirection = SortDesc
	}
	return next.Reset(s)
}
