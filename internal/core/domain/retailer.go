package domain

import "github.com/shopspring/decimal"

// RetailerStatus is the account state of a retailer.
type RetailerStatus string

const (
	RetailerActive    RetailerStatus = "active"
	RetailerInactive  RetailerStatus = "inactive"
	RetailerSuspended RetailerStatus = "suspended"
)

// Retailer is the business that owns terminals and earns commission.
type Retailer struct {
	ID                string          `json:"id"`
	UserProfileID     string          `json:"userProfileId"`
	AgentProfileID    *string         `json:"agentProfileId,omitempty"`
	Name              string          `json:"name"`
	ContactName       string          `json:"contactName"`
	ContactEmail      string          `json:"contactEmail"`
	Status            RetailerStatus  `json:"status"`
	Balance           decimal.Decimal `json:"balance"`
	CreditLimit       decimal.Decimal `json:"creditLimit"`
	CommissionBalance decimal.Decimal `json:"commissionBalance"`
	AuditFields
}

// IsOwnedBy reports whether the given user profile owns the retailer.
func (r *Retailer) IsOwnedBy(userID string) bool {
	return r != nil && userID != "" && r.UserProfileID == userID
}
