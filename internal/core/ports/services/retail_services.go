package services

import (
	"context"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/airvoucher/av_backend/internal/core/salesview"
	"github.com/airvoucher/av_backend/internal/dto"
)

// RetailerSvcFacade exposes the caller's retailer account
type RetailerSvcFacade interface {
	// GetRetailerForUser returns the retailer owned by userID.
	GetRetailerForUser(ctx context.Context, userID string) (*domain.Retailer, error)
}

// TerminalReaderSvc defines read operations for terminals
type TerminalReaderSvc interface {
	// ListTerminals returns the terminals of the caller's retailer.
	ListTerminals(ctx context.Context, userID string) ([]domain.Terminal, error)
}

// TerminalLifecycleSvc defines the terminal actions. Ownership of the
// retailer is verified on every call before anything is written.
type TerminalLifecycleSvc interface {
	// CreateTerminal creates an active terminal. When a login is requested the
	// generated password (if any) is returned once.
	CreateTerminal(ctx context.Context, userID string, req dto.CreateTerminalRequest) (*domain.Terminal, string, error)

	// ToggleTerminalStatus sets the terminal status.
	ToggleTerminalStatus(ctx context.Context, userID, terminalID string, status domain.TerminalStatus) (*domain.Terminal, error)

	// DeleteTerminal removes a terminal that has no sales.
	DeleteTerminal(ctx context.Context, userID, terminalID string) error
}

// TerminalSvcFacade combines all terminal-related service interfaces
type TerminalSvcFacade interface {
	TerminalReaderSvc
	TerminalLifecycleSvc
}

// SalesSvcFacade serves the sales table and dashboards for a session
type SalesSvcFacade interface {
	// GetSalesPage renders one page of the caller's sales.
	GetSalesPage(ctx context.Context, session *domain.Session, state salesview.FilterState) (*salesview.Page, error)

	// GetDashboard aggregates the caller's sales window.
	GetDashboard(ctx context.Context, session *domain.Session) (*domain.Dashboard, error)
}

// LayoutSvcFacade builds the per-role navigation shell
type LayoutSvcFacade interface {
	GetLayout(ctx context.Context, session *domain.Session) (*domain.Layout, error)
	// Close releases the session subscription.
	Close()
}
