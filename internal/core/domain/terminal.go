package domain

import (
	"time"
)

// TerminalStatus is the lifecycle state of a terminal.
type TerminalStatus string

const (
	TerminalActive   TerminalStatus = "active"
	TerminalInactive TerminalStatus = "inactive"
)

// IsValid reports whether s is active or inactive.
func (s TerminalStatus) IsValid() bool {
	return s == TerminalActive || s == TerminalInactive
}

// Toggled returns the opposite status. Both transitions are always allowed.
func (s TerminalStatus) Toggled() TerminalStatus {
	if s == TerminalActive {
		return TerminalInactive
	}
	return TerminalActive
}

// Terminal is a retailer-owned point-of-sale endpoint.
type Terminal struct {
	ID            string         `json:"id"`
	RetailerID    string         `json:"retailerId"`
	Name          string         `json:"name"`
	Status        TerminalStatus `json:"status"`
	LastActive    *time.Time     `json:"lastActive,omitempty"`
	UserProfileID *string        `json:"userProfileId,omitempty"`
	ContactPerson *string        `json:"contactPerson,omitempty"`
	HasSales      bool           `json:"hasSales"`
	AuditFields
}

// CanDelete reports whether the terminal may be removed. Terminals with sales history stay.
func (t *Terminal) CanDelete() bool {
	return !t.HasSales
}
