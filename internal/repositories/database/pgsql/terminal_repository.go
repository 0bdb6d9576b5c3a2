package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTerminalRepository struct {
	BaseRepository
}

func newPgxTerminalRepository(pool *pgxpool.Pool) portsrepo.TerminalRepositoryWithTx {
	return &PgxTerminalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTerminalRepository implements portsrepo.TerminalRepositoryWithTx
var _ portsrepo.TerminalRepositoryWithTx = (*PgxTerminalRepository)(nil)

// terminalColumns is shared by SELECT and RETURNING so every read carries has_sales.
const terminalColumns = `
	t.id, t.retailer_id, t.name, t.status, t.last_active, t.user_profile_id, t.contact_person,
	t.created_at, t.updated_at,
	EXISTS (SELECT 1 FROM sales s WHERE s.terminal_id = t.id) AS has_sales
`

func scanTerminal(row pgx.CollectableRow) (domain.Terminal, error) {
	var t domain.Terminal
	err := row.Scan(
		&t.ID,
		&t.RetailerID,
		&t.Name,
		&t.Status,
		&t.LastActive,
		&t.UserProfileID,
		&t.ContactPerson,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.HasSales,
	)
	return t, err
}

func (r *PgxTerminalRepository) getTerminals(ctx context.Context, filterQuery string, args ...any) ([]domain.Terminal, error) {
	query := `SELECT ` + terminalColumns + ` FROM terminals t ` + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query terminals: %w", err)
	}
	terminals, err := pgx.CollectRows(rows, scanTerminal)
	if err != nil {
		return nil, fmt.Errorf("failed to collect terminal rows: %w", err)
	}
	return terminals, nil
}

func (r *PgxTerminalRepository) FindTerminalByID(ctx context.Context, terminalID string) (*domain.Terminal, error) {
	terminals, err := r.getTerminals(ctx, `WHERE t.id = $1`, terminalID)
	if err != nil {
		return nil, err
	}
	if len(terminals) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &terminals[0], nil
}

func (r *PgxTerminalRepository) ListTerminalsByRetailer(ctx context.Context, retailerID string) ([]domain.Terminal, error) {
	return r.getTerminals(ctx, `WHERE t.retailer_id = $1 ORDER BY t.name, t.created_at`, retailerID)
}

func (r *PgxTerminalRepository) SaveTerminal(ctx context.Context, terminal domain.Terminal) error {
	return r.saveTerminal(ctx, r.Pool, terminal)
}

func (r *PgxTerminalRepository) SaveTerminalInTx(ctx context.Context, tx pgx.Tx, terminal domain.Terminal) error {
	return r.saveTerminal(ctx, tx, terminal)
}

func (r *PgxTerminalRepository) saveTerminal(ctx context.Context, db executor, terminal domain.Terminal) error {
	query := `
		INSERT INTO terminals (
			id, retailer_id, name, status, last_active, user_profile_id, contact_person,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := db.Exec(ctx, query,
		terminal.ID,
		terminal.RetailerID,
		terminal.Name,
		terminal.Status,
		terminal.LastActive,
		terminal.UserProfileID,
		terminal.ContactPerson,
		terminal.CreatedAt,
		terminal.UpdatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("terminal %s: %w", terminal.ID, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return apperrors.NewValidationFailedError("retailer does not exist")
		}
		return fmt.Errorf("failed to save terminal: %w", err)
	}
	return nil
}

// UpdateTerminalStatus writes the status in a single statement; the stored row is
// untouched on any error.
func (r *PgxTerminalRepository) UpdateTerminalStatus(ctx context.Context, terminalID string, status domain.TerminalStatus, now time.Time) (*domain.Terminal, error) {
	query := `
		UPDATE terminals t
		SET status = $2, updated_at = $3
		WHERE t.id = $1
		RETURNING ` + terminalColumns
	rows, err := r.Pool.Query(ctx, query, terminalID, status, now)
	if err != nil {
		return nil, fmt.Errorf("failed to update terminal status: %w", err)
	}
	terminal, err := pgx.CollectExactlyOneRow(rows, scanTerminal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update terminal status: %w", err)
	}
	return &terminal, nil
}

// DeleteTerminal deletes only when no sale references the terminal. When nothing
// is deleted it tells a missing terminal apart from one with sales.
func (r *PgxTerminalRepository) DeleteTerminal(ctx context.Context, terminalID string) error {
	query := `
		DELETE FROM terminals t
		WHERE t.id = $1
		  AND NOT EXISTS (SELECT 1 FROM sales s WHERE s.terminal_id = t.id);
	`
	cmdTag, err := r.Pool.Exec(ctx, query, terminalID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.ErrTerminalHasSales
		}
		return fmt.Errorf("failed to delete terminal: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM terminals WHERE id = $1)`, terminalID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check terminal: %w", err)
	}
	if exists {
		return apperrors.ErrTerminalHasSales
	}
	return apperrors.ErrNotFound
}
