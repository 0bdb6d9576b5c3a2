package salesview

import (
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/airvoucher/av_backend/internal/utils"
	"github.com/airvoucher/av_backend/internal/utils/commission"
	"github.com/shopspring/decimal"
)

const (
	// DateLayout renders sale timestamps in the table, e.g. "2 Jan 2006, 15:04".
	DateLayout = "2 Jan 2006, 15:04"
	unknown    = "Unknown"
)

// Badge colour keys for voucher categories.
const (
	BadgePrimary = "primary"
	BadgePurple  = "purple"
	BadgeGreen   = "green"
	BadgeAmber   = "amber"
	BadgePink    = "pink"
)

// Profit states used to colour the profit column.
const (
	ProfitPositive = "positive"
	ProfitNegative = "negative"
)

// VoucherBadge maps a voucher type to its badge colour key.
func VoucherBadge(voucherType string) string {
	switch voucherType {
	case domain.VoucherMobile:
		return BadgePrimary
	case domain.VoucherOTT:
		return BadgePurple
	case domain.VoucherHollywoodbets:
		return BadgeGreen
	case domain.VoucherRinga:
		return BadgeAmber
	default:
		return BadgePink
	}
}

// ProfitState is negative for a loss and positive otherwise (zero included).
func ProfitState(profit decimal.Decimal) string {
	if profit.IsNegative() {
		return ProfitNegative
	}
	return ProfitPositive
}

// Row is a sale with its display values precomputed.
type Row struct {
	ID                     string          `json:"id"`
	CreatedAt              time.Time       `json:"createdAt"`
	Date                   string          `json:"date"`
	VoucherType            string          `json:"voucherType"`
	Badge                  string          `json:"badge"`
	RetailerName           string          `json:"retailerName"`
	TerminalName           string          `json:"terminalName"`
	RefNumber              string          `json:"refNumber"`
	Amount                 decimal.Decimal `json:"amount"`
	AmountDisplay          string          `json:"amountDisplay"`
	SupplierCommissionPct  decimal.Decimal `json:"supplierCommissionPct"`
	SupplierCommission     decimal.Decimal `json:"supplierCommission"`
	SupplierCommissionText string          `json:"supplierCommissionDisplay"`
	RetailerCommission     decimal.Decimal `json:"retailerCommission"`
	RetailerCommissionText string          `json:"retailerCommissionDisplay"`
	AgentCommission        decimal.Decimal `json:"agentCommission"`
	AgentCommissionText    string          `json:"agentCommissionDisplay"`
	Profit                 decimal.Decimal `json:"profit"`
	ProfitDisplay          string          `json:"profitDisplay"`
	ProfitState            string          `json:"profitState"`
}

// Formatter renders amounts and dates for one locale.
type Formatter struct {
	Location *time.Location
	Prefix   string
}

// NewFormatter falls back to UTC and the default currency prefix.
func NewFormatter(loc *time.Location, prefix string) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	if prefix == "" {
		prefix = utils.DefaultCurrencyPrefix
	}
	return Formatter{Location: loc, Prefix: prefix}
}

func (f Formatter) money(d decimal.Decimal) string {
	return utils.FormatCurrency(d, f.Prefix)
}

func (f Formatter) date(t time.Time) string {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

// Row builds the display row for one sale.
func (f Formatter) Row(r domain.SaleRecord) Row {
	supplier := commission.SupplierAmount(r.Amount, r.SupplierCommissionPct)
	return Row{
		ID:                     r.ID,
		CreatedAt:              r.CreatedAt,
		Date:                   f.date(r.CreatedAt),
		VoucherType:            orUnknown(r.VoucherType),
		Badge:                  VoucherBadge(r.VoucherType),
		RetailerName:           orUnknown(r.RetailerName),
		TerminalName:           r.TerminalNameOrEmpty(),
		RefNumber:              r.RefNumber,
		Amount:                 r.Amount,
		AmountDisplay:          f.money(r.Amount),
		SupplierCommissionPct:  r.SupplierCommissionPct,
		SupplierCommission:     supplier,
		SupplierCommissionText: f.money(supplier),
		RetailerCommission:     r.RetailerCommission,
		RetailerCommissionText: f.money(r.RetailerCommission),
		AgentCommission:        r.AgentCommission,
		AgentCommissionText:    f.money(r.AgentCommission),
		Profit:                 r.Profit,
		ProfitDisplay:          f.money(r.Profit),
		ProfitState:            ProfitState(r.Profit),
	}
}

// Rows maps Row over records.
func (f Formatter) Rows(records []domain.SaleRecord) []Row {
	out := make([]Row, 0, len(records))
	for _, r := range records {
		out = append(out, f.Row(r))
	}
	return out
}
