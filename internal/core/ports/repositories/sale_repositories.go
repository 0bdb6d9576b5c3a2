package repositories

import (
	"context"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

// SaleReader defines read operations for sale records
type SaleReader interface {
	// ListSales retrieves the sales visible in scope since scope.Since, newest first.
	ListSales(ctx context.Context, scope domain.SaleScope) ([]domain.SaleRecord, error)
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
}
