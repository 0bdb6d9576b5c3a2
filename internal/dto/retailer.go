package dto

import (
	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RetailerProfileResponse is the retailer account shown on the retailer pages.
type RetailerProfileResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	ContactName       string          `json:"contactName"`
	ContactEmail      string          `json:"contactEmail"`
	Status            string          `json:"status"`
	Balance           decimal.Decimal `json:"balance"`
	CreditLimit       decimal.Decimal `json:"creditLimit"`
	CommissionBalance decimal.Decimal `json:"commissionBalance"`
	// AvailableCredit is balance plus credit limit.
	AvailableCredit decimal.Decimal `json:"availableCredit"`
}

// ToRetailerProfileResponse converts a domain.Retailer.
func ToRetailerProfileResponse(r *domain.Retailer) RetailerProfileResponse {
	return RetailerProfileResponse{
		ID:                r.ID,
		Name:              r.Name,
		ContactName:       r.ContactName,
		ContactEmail:      r.ContactEmail,
		Status:            string(r.Status),
		Balance:           r.Balance,
		CreditLimit:       r.CreditLimit,
		CommissionBalance: r.CommissionBalance,
		AvailableCredit:   r.Balance.Add(r.CreditLimit),
	}
}
