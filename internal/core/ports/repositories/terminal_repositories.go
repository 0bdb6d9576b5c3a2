package repositories

import (
	"context"
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TerminalReader defines read operations for terminal data.
// Returned terminals carry HasSales.
type TerminalReader interface {
	// FindTerminalByID retrieves a terminal by its ID.
	FindTerminalByID(ctx context.Context, terminalID string) (*domain.Terminal, error)

	// ListTerminalsByRetailer retrieves all terminals of a retailer, ordered by name.
	ListTerminalsByRetailer(ctx context.Context, retailerID string) ([]domain.Terminal, error)
}

// TerminalWriter defines write operations for terminal data
type TerminalWriter interface {
	// SaveTerminal persists a new terminal.
	SaveTerminal(ctx context.Context, terminal domain.Terminal) error

	// UpdateTerminalStatus sets the status and returns the updated terminal.
	UpdateTerminalStatus(ctx context.Context, terminalID string, status domain.TerminalStatus, now time.Time) (*domain.Terminal, error)

	// DeleteTerminal removes a terminal without sales.
	// Returns apperrors.ErrTerminalHasSales if sales exist, apperrors.ErrNotFound if it is gone.
	DeleteTerminal(ctx context.Context, terminalID string) error
}

// TerminalTransactionSupport defines operations that run inside a caller-owned transaction
type TerminalTransactionSupport interface {
	SaveTerminalInTx(ctx context.Context, tx pgx.Tx, terminal domain.Terminal) error
}

// TerminalRepositoryFacade combines all terminal-related repository interfaces
type TerminalRepositoryFacade interface {
	TerminalReader
	TerminalWriter
	TerminalTransactionSupport
}

// TerminalRepositoryWithTx extends TerminalRepositoryFacade with transaction capabilities
type TerminalRepositoryWithTx interface {
	TerminalRepositoryFacade
	TransactionManager
}
