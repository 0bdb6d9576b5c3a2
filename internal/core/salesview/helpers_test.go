package salesview

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var baseTime = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func sale(id, voucherType, retailer string, amount string, at time.Time) domain.SaleRecord {
	return domain.SaleRecord{
		ID:                    id,
		CreatedAt:             at,
		VoucherType:           voucherType,
		RetailerID:            "ret-" + retailer,
		RetailerName:          retailer,
		RefNumber:             "REF-" + id,
		Amount:                decimal.RequireFromString(amount),
		SupplierCommissionPct: decimal.NewFromInt(5),
		RetailerCommission:    decimal.RequireFromString("0.50"),
		AgentCommission:       decimal.RequireFromString("0.25"),
		Profit:                decimal.RequireFromString("0.10"),
	}
}

// distinctAmounts returns n sales with amounts 1..n shuffled deterministically.
func distinctAmounts(n int) []domain.SaleRecord {
	out := make([]domain.SaleRecord, 0, n)
	for i := 0; i < n; i++ {
		amount := (i*7)%n + 1
		out = append(out, sale(fmt.Sprintf("s%02d", i), domain.VoucherMobile, "Corner Shop",
			fmt.Sprintf("%d.00", amount), baseTime.Add(time.Duration(i)*time.Hour)))
	}
	return out
}

func ids(records []domain.SaleRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func amounts(records []domain.SaleRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Amount.StringFixed(2)
	}
	return out
}
