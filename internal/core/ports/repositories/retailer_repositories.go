package repositories

import (
	"context"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

// RetailerReader defines read operations for retailer data
type RetailerReader interface {
	// FindRetailerByID retrieves a retailer by its ID.
	FindRetailerByID(ctx context.Context, retailerID string) (*domain.Retailer, error)

	// FindRetailerByUserID retrieves the retailer owned by a user profile.
	FindRetailerByUserID(ctx context.Context, userID string) (*domain.Retailer, error)

	// ListRetailersByAgent retrieves the retailers managed by an agent profile.
	ListRetailersByAgent(ctx context.Context, agentProfileID string) ([]domain.Retailer, error)
}

// RetailerRepositoryFacade combines all retailer-related repository interfaces
type RetailerRepositoryFacade interface {
	RetailerReader
}
