package salesview

import (
	"strings"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

func selectMatches(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

func searchMatches(term string, r domain.SaleRecord) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.VoucherType), term) ||
		strings.Contains(strings.ToLower(r.RetailerName), term) ||
		strings.Contains(strings.ToLower(r.ID), term)
}

// Filter keeps the records matching every active criterion, in input order.
// The search term matches case-insensitively against voucher type, retailer
// name and sale ID, whitespace included. The returned slice never shares storage with records.
func Filter(records []domain.SaleRecord, state FilterState) []domain.SaleRecord {
	term := strings.ToLower(state.Search)
	out := make([]domain.SaleRecord, 0, len(records))
	for _, r := range records {
		if !searchMatches(term, r) {
			continue
		}
		if !selectMatches(state.VoucherType, r.VoucherType) {
			continue
		}
		if !selectMatches(state.RetailerName, r.RetailerName) {
			continue
		}
		if !selectMatches(state.TerminalName, r.TerminalNameOrEmpty()) {
			continue
		}
		out = append(out, r)
	}
	return out
}
