package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
)

type retailerService struct {
	BaseService
	retailerRepo portsrepo.RetailerReader
}

// NewRetailerService creates a new retailer service.
func NewRetailerService(retailerRepo portsrepo.RetailerReader) portssvc.RetailerSvcFacade {
	return &retailerService{retailerRepo: retailerRepo}
}

func (s *retailerService) GetRetailerForUser(ctx context.Context, userID string) (*domain.Retailer, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("no active session")
	}
	retailer, err := s.retailerRepo.FindRetailerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Retailer profile not found")
		}
		s.LogError(ctx, err, "Failed to get retailer for user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to get retailer for user: %w", err)
	}
	return retailer, nil
}
