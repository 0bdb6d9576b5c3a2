package domain

import "github.com/shopspring/decimal"

// SalesDataPoint is one day of the sales time series.
type SalesDataPoint struct {
	Date          string          `json:"date"`
	FormattedDate string          `json:"formattedDate"`
	Amount        decimal.Decimal `json:"amount"`
}

// VoucherTypeSales is the total sold per voucher category.
type VoucherTypeSales struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// SalesSummary holds the stats tiles of a dashboard.
type SalesSummary struct {
	TodayTotal         decimal.Decimal `json:"todayTotal"`
	TodayCount         int             `json:"todayCount"`
	WeekTotal          decimal.Decimal `json:"weekTotal"`
	WindowTotal        decimal.Decimal `json:"windowTotal"`
	WindowCount        int             `json:"windowCount"`
	RetailerCommission decimal.Decimal `json:"retailerCommission"`
	AgentCommission    decimal.Decimal `json:"agentCommission"`
	Profit             decimal.Decimal `json:"profit"`
	AverageSale        decimal.Decimal `json:"averageSale"`
}

// Dashboard is the aggregate payload for a role dashboard.
type Dashboard struct {
	Summary    SalesSummary       `json:"summary"`
	TimeSeries []SalesDataPoint   `json:"timeSeries"`
	VoucherMix []VoucherTypeSales `json:"voucherMix"`
	WindowDays int                `json:"windowDays"`
}
