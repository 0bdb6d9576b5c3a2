package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Known voucher categories. The set is open; anything else is displayed as-is.
const (
	VoucherMobile        = "Mobile"
	VoucherOTT           = "OTT"
	VoucherHollywoodbets = "Hollywoodbets"
	VoucherRinga         = "Ringa"
)

// SaleRecord is one completed voucher sale. Records are read-only for this service.
type SaleRecord struct {
	ID                    string          `json:"id"`
	CreatedAt             time.Time       `json:"createdAt"`
	VoucherType           string          `json:"voucherType"`
	RetailerID            string          `json:"retailerId"`
	RetailerName          string          `json:"retailerName"`
	TerminalID            *string         `json:"terminalId,omitempty"`
	TerminalName          *string         `json:"terminalName,omitempty"`
	RefNumber             string          `json:"refNumber"`
	Amount                decimal.Decimal `json:"amount"`
	SupplierCommissionPct decimal.Decimal `json:"supplierCommissionPct"`
	RetailerCommission    decimal.Decimal `json:"retailerCommission"`
	AgentCommission       decimal.Decimal `json:"agentCommission"`
	Profit                decimal.Decimal `json:"profit"`
}

// TerminalNameOrEmpty returns the terminal name, or "" when the sale has none.
func (s SaleRecord) TerminalNameOrEmpty() string {
	if s.TerminalName == nil {
		return ""
	}
	return *s.TerminalName
}

// SaleScope selects which sales a caller may see.
// Exactly one of RetailerID / AgentProfileID is set, or neither for the admin view.
type SaleScope struct {
	RetailerID     string
	AgentProfileID string
	Since          time.Time
}

// CacheKey identifies the scope for cached sale lists. Since is truncated to the day.
func (s SaleScope) CacheKey() string {
	day := s.Since.UTC().Format("2006-01-02")
	switch {
	case s.RetailerID != "":
		return "sales:retailer:" + s.RetailerID + ":" + day
	case s.AgentProfileID != "":
		return "sales:agent:" + s.AgentProfileID + ":" + day
	default:
		return "sales:all:" + day
	}
}
