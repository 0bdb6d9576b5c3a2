package salesview

import (
	"sort"
	"strings"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

// compareFunc returns <0, 0 or >0 in ascending order.
type compareFunc func(a, b domain.SaleRecord) int

func comparator(field SortField) compareFunc {
	switch field {
	case SortDate:
		return func(a, b domain.SaleRecord) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortAmount:
		return func(a, b domain.SaleRecord) int { return a.Amount.Cmp(b.Amount) }
	case SortVoucherType:
		return func(a, b domain.SaleRecord) int { return strings.Compare(a.VoucherType, b.VoucherType) }
	case SortRetailerName:
		return func(a, b domain.SaleRecord) int { return strings.Compare(a.RetailerName, b.RetailerName) }
	case SortTerminalName:
		return func(a, b domain.SaleRecord) int {
			return strings.Compare(a.TerminalNameOrEmpty(), b.TerminalNameOrEmpty())
		}
	case SortRefNumber:
		return func(a, b domain.SaleRecord) int { return strings.Compare(a.RefNumber, b.RefNumber) }
	}
	return nil
}

// Sort returns a copy of records stably ordered by field. Descending reverses
// the comparator, so equal keys keep their input order in both directions.
// An unknown field returns the records in their original order.
func Sort(records []domain.SaleRecord, field SortField, dir SortDirection) []domain.SaleRecord {
	out := make([]domain.SaleRecord, len(records))
	copy(out, records)

	cmp := comparator(field)
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == SortAsc {
			return c < 0
		}
		return c > 0
	})
	return out
}
