package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRetailerRepository struct {
	BaseRepository
}

func newPgxRetailerRepository(pool *pgxpool.Pool) portsrepo.RetailerRepositoryFacade {
	return &PgxRetailerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RetailerRepositoryFacade = (*PgxRetailerRepository)(nil)

const retailerSelectQuery = `
SELECT
	r.id, r.user_profile_id, r.agent_profile_id, r.name, r.contact_name, r.contact_email,
	r.status, r.balance, r.credit_limit, r.commission_balance, r.created_at, r.updated_at
FROM retailers r
`

func scanRetailer(row pgx.CollectableRow) (domain.Retailer, error) {
	var r domain.Retailer
	err := row.Scan(
		&r.ID,
		&r.UserProfileID,
		&r.AgentProfileID,
		&r.Name,
		&r.ContactName,
		&r.ContactEmail,
		&r.Status,
		&r.Balance,
		&r.CreditLimit,
		&r.CommissionBalance,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

// getRetailers runs the shared select with the given filter.
func (r *PgxRetailerRepository) getRetailers(ctx context.Context, filterQuery string, args ...any) ([]domain.Retailer, error) {
	rows, err := r.Pool.Query(ctx, retailerSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query retailers: %w", err)
	}
	retailers, err := pgx.CollectRows(rows, scanRetailer)
	if err != nil {
		return nil, fmt.Errorf("failed to collect retailer rows: %w", err)
	}
	return retailers, nil
}

func (r *PgxRetailerRepository) findOne(ctx context.Context, filterQuery string, arg any) (*domain.Retailer, error) {
	retailers, err := r.getRetailers(ctx, filterQuery+` LIMIT 1`, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if len(retailers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &retailers[0], nil
}

func (r *PgxRetailerRepository) FindRetailerByID(ctx context.Context, retailerID string) (*domain.Retailer, error) {
	return r.findOne(ctx, `WHERE r.id = $1`, retailerID)
}

func (r *PgxRetailerRepository) FindRetailerByUserID(ctx context.Context, userID string) (*domain.Retailer, error) {
	return r.findOne(ctx, `WHERE r.user_profile_id = $1 ORDER BY r.created_at`, userID)
}

func (r *PgxRetailerRepository) ListRetailersByAgent(ctx context.Context, agentProfileID string) ([]domain.Retailer, error) {
	return r.getRetailers(ctx, `WHERE r.agent_profile_id = $1 ORDER BY r.name`, agentProfileID)
}
