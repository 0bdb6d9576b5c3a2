package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/airvoucher/av_backend/internal/core/domain"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleSelectQuery = `
SELECT
	s.id, s.created_at, COALESCE(s.voucher_type, ''), s.retailer_id, r.name,
	s.terminal_id, t.name, s.ref_number, s.amount, s.supplier_commission_pct,
	s.retailer_commission, s.agent_commission, s.profit
FROM sales s
JOIN retailers r ON r.id = s.retailer_id
LEFT JOIN terminals t ON t.id = s.terminal_id
`

func scanSale(row pgx.CollectableRow) (domain.SaleRecord, error) {
	var s domain.SaleRecord
	err := row.Scan(
		&s.ID,
		&s.CreatedAt,
		&s.VoucherType,
		&s.RetailerID,
		&s.RetailerName,
		&s.TerminalID,
		&s.TerminalName,
		&s.RefNumber,
		&s.Amount,
		&s.SupplierCommissionPct,
		&s.RetailerCommission,
		&s.AgentCommission,
		&s.Profit,
	)
	return s, err
}

// saleFilter builds the WHERE clause for a scope.
func saleFilter(scope domain.SaleScope) (string, []any) {
	conds := []string{"s.created_at >= $1"}
	args := []any{scope.Since}
	switch {
	case scope.RetailerID != "":
		args = append(args, scope.RetailerID)
		conds = append(conds, fmt.Sprintf("s.retailer_id = $%d", len(args)))
	case scope.AgentProfileID != "":
		args = append(args, scope.AgentProfileID)
		conds = append(conds, fmt.Sprintf("r.agent_profile_id = $%d", len(args)))
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, scope domain.SaleScope) ([]domain.SaleRecord, error) {
	filter, args := saleFilter(scope)
	query := saleSelectQuery + filter + ` ORDER BY s.created_at DESC, s.id`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	sales, err := pgx.CollectRows(rows, scanSale)
	if err != nil {
		return nil, fmt.Errorf("failed to collect sale rows: %w", err)
	}
	return sales, nil
}
