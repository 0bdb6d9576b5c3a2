package dto

import (
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

// CreateTerminalRequest is the body of POST /retailer/terminals/create.
// Email, Password and AutoGeneratePassword together provision a terminal login.
type CreateTerminalRequest struct {
	RetailerID           string  `json:"retailerId" binding:"required"`
	Name                 string  `json:"name" binding:"required,max=100"`
	ContactPerson        *string `json:"contactPerson,omitempty" binding:"omitempty,max=100"`
	Email                *string `json:"email,omitempty" binding:"omitempty,email"`
	Password             *string `json:"password,omitempty" binding:"omitempty,min=8"`
	AutoGeneratePassword bool    `json:"autoGeneratePassword"`
}

// ToggleTerminalStatusRequest is the body of POST /retailer/terminals/toggle-status.
type ToggleTerminalStatusRequest struct {
	TerminalID string                `json:"terminalId" binding:"required"`
	Status     domain.TerminalStatus `json:"status" binding:"required,terminal_status"`
}

// DeleteTerminalRequest is the body of POST /retailer/terminals/delete.
type DeleteTerminalRequest struct {
	TerminalID string `json:"terminalId" binding:"required"`
}

// TerminalResponse is the wire form of a terminal.
type TerminalResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	LastActive    *time.Time `json:"last_active"`
	ContactPerson *string    `json:"contact_person,omitempty"`
	HasSales      bool       `json:"has_sales"`
	CanDelete     bool       `json:"can_delete"`
}

// TerminalEnvelope wraps a single terminal, matching the {terminal:{...}} shape.
type TerminalEnvelope struct {
	Terminal TerminalResponse `json:"terminal"`
}

// CreateTerminalResponse carries the created terminal and, when one was
// generated, the login password. The password is never returned again.
type CreateTerminalResponse struct {
	Terminal TerminalResponse `json:"terminal"`
	Password string           `json:"password,omitempty"`
}

// ListTerminalsResponse wraps the retailer's terminals.
type ListTerminalsResponse struct {
	Terminals []TerminalResponse `json:"terminals"`
}

// ToTerminalResponse converts a domain.Terminal.
func ToTerminalResponse(t *domain.Terminal) TerminalResponse {
	return TerminalResponse{
		ID:            t.ID,
		Name:          t.Name,
		Status:        string(t.Status),
		LastActive:    t.LastActive,
		ContactPerson: t.ContactPerson,
		HasSales:      t.HasSales,
		CanDelete:     t.CanDelete(),
	}
}

// ToListTerminalsResponse converts a slice of domain.Terminal.
func ToListTerminalsResponse(terminals []domain.Terminal) ListTerminalsResponse {
	out := make([]TerminalResponse, len(terminals))
	for i := range terminals {
		out[i] = ToTerminalResponse(&terminals[i])
	}
	return ListTerminalsResponse{Terminals: out}
}
