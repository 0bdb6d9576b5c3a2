package dto

import (
	"github.com/airvoucher/av_backend/internal/core/salesview"
	"github.com/airvoucher/av_backend/internal/utils/pagination"
)

// SalesQuery binds the sales table state from the query string.
// The prev_* parameters echo the view the client is leaving; toggle names a
// clicked column header.
type SalesQuery struct {
	Search       string `form:"search"`
	VoucherType  string `form:"voucher_type"`
	RetailerName string `form:"retailer_name"`
	TerminalName string `form:"terminal_name"`
	Sort         string `form:"sort,default=date"`
	Dir          string `form:"dir,default=desc"`
	Page         int    `form:"page,default=1"`
	Toggle       string `form:"toggle"`

	PrevSearch       string `form:"prev_search"`
	PrevVoucherType  string `form:"prev_voucher_type"`
	PrevRetailerName string `form:"prev_retailer_name"`
	PrevTerminalName string `form:"prev_terminal_name"`
	PrevSort         string `form:"prev_sort"`
	PrevDir          string `form:"prev_dir"`
}

func (q SalesQuery) hasPrev() bool {
	return q.PrevSearch != "" || q.PrevVoucherType != "" || q.PrevRetailerName != "" ||
		q.PrevTerminalName != "" || q.PrevSort != "" || q.PrevDir != ""
}

func (q SalesQuery) prevState() salesview.FilterState {
	return salesview.FilterState{
		VoucherType:   q.PrevVoucherType,
		RetailerName:  q.PrevRetailerName,
		TerminalName:  q.PrevTerminalName,
		Search:        q.PrevSearch,
		SortField:     salesview.SortField(q.PrevSort),
		SortDirection: salesview.ParseSortDirection(q.PrevDir),
	}
}

// ToFilterState converts the query into pipeline state. A known toggle field
// is applied as a header click; otherwise a changed view against the prev_*
// echo sends the client back to page 1. Unknown toggle fields are ignored.
func (q SalesQuery) ToFilterState() salesview.FilterState {
	state := salesview.FilterState{
		VoucherType:   q.VoucherType,
		RetailerName:  q.RetailerName,
		TerminalName:  q.TerminalName,
		Search:        q.Search,
		SortField:     salesview.SortField(q.Sort),
		SortDirection: salesview.ParseSortDirection(q.Dir),
		Page:          q.Page,
	}.Normalized()

	if field := salesview.SortField(q.Toggle); field.IsKnown() {
		return salesview.ToggleSort(state, field)
	}
	if q.hasPrev() {
		return state.Reset(q.prevState())
	}
	return state
}

// SalesStateResponse echoes the state actually served, page clamped.
type SalesStateResponse struct {
	Search       string `json:"search"`
	VoucherType  string `json:"voucherType"`
	RetailerName string `json:"retailerName"`
	TerminalName string `json:"terminalName"`
	Sort         string `json:"sort"`
	Dir          string `json:"dir"`
	Page         int    `json:"page"`
}

// SalesPageResponse is one page of the sales table.
type SalesPageResponse struct {
	Rows       []salesview.Row    `json:"rows"`
	Pagination pagination.Meta    `json:"pagination"`
	Filters    salesview.Options  `json:"filters"`
	State      SalesStateResponse `json:"state"`
}

// ToSalesPageResponse converts a rendered page.
func ToSalesPageResponse(p *salesview.Page) SalesPageResponse {
	return SalesPageResponse{
		Rows:       p.Rows,
		Pagination: p.Meta,
		Filters:    p.Options,
		State: SalesStateResponse{
			Search:       p.State.Search,
			VoucherType:  p.State.VoucherType,
			RetailerName: p.State.RetailerName,
			TerminalName: p.State.TerminalName,
			Sort:         string(p.State.SortField),
			Dir:          string(p.State.SortDirection),
			Page:         p.State.Page,
		},
	}
}
