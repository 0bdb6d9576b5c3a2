package salesview

import (
	"sort"
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/airvoucher/av_backend/internal/utils/commission"
	"github.com/shopspring/decimal"
)

const chartLabelLayout = "Jan 2"

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeSeries sums sale amounts per UTC day. Every day between the first and
// the last sale is present, with zero for days without sales.
func TimeSeries(records []domain.SaleRecord) []domain.SalesDataPoint {
	if len(records) == 0 {
		return []domain.SalesDataPoint{}
	}

	totals := map[time.Time]decimal.Decimal{}
	first, last := day(records[0].CreatedAt), day(records[0].CreatedAt)
	for _, r := range records {
		d := day(r.CreatedAt)
		totals[d] = totals[d].Add(r.Amount)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	var points []domain.SalesDataPoint
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		points = append(points, domain.SalesDataPoint{
			Date:          d.Format("2006-01-02"),
			FormattedDate: d.Format(chartLabelLayout),
			Amount:        totals[d],
		})
	}
	return points
}

// VoucherMix sums sale amounts per voucher type, largest first, ties by name.
func VoucherMix(records []domain.SaleRecord) []domain.VoucherTypeSales {
	totals := map[string]decimal.Decimal{}
	for _, r := range records {
		name := orUnknown(r.VoucherType)
		totals[name] = totals[name].Add(r.Amount)
	}

	out := make([]domain.VoucherTypeSales, 0, len(totals))
	for name, value := range totals {
		out = append(out, domain.VoucherTypeSales{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Value.Cmp(out[j].Value); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Summary computes the dashboard stat tiles relative to now.
func Summary(records []domain.SaleRecord, now time.Time) domain.SalesSummary {
	today := day(now)
	weekStart := today.AddDate(0, 0, -6)

	var s domain.SalesSummary
	for _, r := range records {
		d := day(r.CreatedAt)
		if d.Equal(today) {
			s.TodayTotal = s.TodayTotal.Add(r.Amount)
			s.TodayCount++
		}
		if !d.Before(weekStart) && !d.After(today) {
			s.WeekTotal = s.WeekTotal.Add(r.Amount)
		}
		s.WindowTotal = s.WindowTotal.Add(r.Amount)
		s.RetailerCommission = s.RetailerCommission.Add(r.RetailerCommission)
		s.AgentCommission = s.AgentCommission.Add(r.AgentCommission)
		s.Profit = s.Profit.Add(r.Profit)
	}
	s.WindowCount = len(records)
	s.AverageSale = commission.Average(s.WindowTotal, s.WindowCount)
	return s
}

// BuildDashboard assembles tiles and charts for a sales window.
func BuildDashboard(records []domain.SaleRecord, now time.Time, windowDays int) domain.Dashboard {
	return domain.Dashboard{
		Summary:    Summary(records, now),
		TimeSeries: TimeSeries(records),
		VoucherMix: VoucherMix(records),
		WindowDays: windowDays,
	}
}
