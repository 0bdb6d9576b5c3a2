package salesview

import "github.com/airvoucher/av_backend/internal/core/domain"

// Options lists the values offered by the filter panel selects.
type Options struct {
	VoucherTypes  []string `json:"voucherTypes"`
	RetailerNames []string `json:"retailerNames"`
	TerminalNames []string `json:"terminalNames"`
}

type distinct struct {
	seen   map[string]struct{}
	values []string
}

func newDistinct() *distinct {
	return &distinct{seen: map[string]struct{}{}, values: []string{}}
}

func (d *distinct) add(v string) {
	if v == "" {
		return
	}
	if _, ok := d.seen[v]; ok {
		return
	}
	d.seen[v] = struct{}{}
	d.values = append(d.values, v)
}

// FilterOptions collects distinct non-empty values in first-seen order.
func FilterOptions(records []domain.SaleRecord) Options {
	vt, rn, tn := newDistinct(), newDistinct(), newDistinct()
	for _, r := range records {
		vt.add(r.VoucherType)
		rn.add(r.RetailerName)
		tn.add(r.TerminalNameOrEmpty())
	}
	return Options{VoucherTypes: vt.values, RetailerNames: rn.values, TerminalNames: tn.values}
}
