package pgsql

import (
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		RetailerRepo: newPgxRetailerRepository(dbPool),
		TerminalRepo: newPgxTerminalRepository(dbPool),
		SaleRepo:     newPgxSaleRepository(dbPool),
	}
}
