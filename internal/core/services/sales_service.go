package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/cache"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/core/salesview"
	"github.com/airvoucher/av_backend/internal/platform/config"
)

type salesService struct {
	BaseService
	saleRepo     portsrepo.SaleReader
	retailerRepo portsrepo.RetailerReader
	cache        cache.SalesCache
	cacheTTL     time.Duration
	windowDays   int
	formatter    salesview.Formatter
	now          func() time.Time
}

// NewSalesService creates the sales table and dashboard service.
func NewSalesService(cfg *config.Config, saleRepo portsrepo.SaleReader, retailerRepo portsrepo.RetailerReader, salesCache cache.SalesCache) portssvc.SalesSvcFacade {
	if salesCache == nil {
		salesCache = cache.NoopSalesCache{}
	}
	return &salesService{
		saleRepo:     saleRepo,
		retailerRepo: retailerRepo,
		cache:        salesCache,
		cacheTTL:     cfg.SalesCacheTTL,
		windowDays:   cfg.SalesWindowDays,
		formatter:    salesview.NewFormatter(cfg.DisplayLocation, cfg.CurrencyPrefix),
		now:          time.Now,
	}
}

// scopeFor maps a session to the sales it may see over the window.
func (s *salesService) scopeFor(ctx context.Context, sess *domain.Session) (domain.SaleScope, error) {
	if sess == nil {
		return domain.SaleScope{}, apperrors.NewUnauthorizedError("no active session")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	scope := domain.SaleScope{Since: today.AddDate(0, 0, -(s.windowDays - 1))}

	switch sess.Role {
	case domain.RoleAdmin:
	case domain.RoleAgent:
		scope.AgentProfileID = sess.UserID
	case domain.RoleRetailer:
		retailer, err := s.retailerRepo.FindRetailerByUserID(ctx, sess.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return domain.SaleScope{}, apperrors.NewNotFoundError("Retailer profile not found")
			}
			return domain.SaleScope{}, fmt.Errorf("failed to find retailer: %w", err)
		}
		scope.RetailerID = retailer.ID
	default:
		return domain.SaleScope{}, apperrors.NewForbiddenError("role cannot view sales")
	}
	return scope, nil
}

func (s *salesService) loadSales(ctx context.Context, sess *domain.Session) ([]domain.SaleRecord, error) {
	scope, err := s.scopeFor(ctx, sess)
	if err != nil {
		return nil, err
	}

	key := scope.CacheKey()
	if records, ok, err := s.cache.Get(ctx, key); err != nil {
		s.LogError(ctx, err, "Sales cache read failed", slog.String("key", key))
	} else if ok {
		s.LogDebug(ctx, "Sales cache hit", slog.String("key", key))
		return records, nil
	}

	records, err := s.saleRepo.ListSales(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales", slog.String("key", key))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if records == nil {
		records = []domain.SaleRecord{}
	}
	if err := s.cache.Set(ctx, key, records, s.cacheTTL); err != nil {
		s.LogError(ctx, err, "Sales cache write failed", slog.String("key", key))
	}
	return records, nil
}

func (s *salesService) GetSalesPage(ctx context.Context, sess *domain.Session, state salesview.FilterState) (*salesview.Page, error) {
	records, err := s.loadSales(ctx, sess)
	if err != nil {
		return nil, err
	}
	page := s.formatter.Render(records, state)
	return &page, nil
}

func (s *salesService) GetDashboard(ctx context.Context, sess *domain.Session) (*domain.Dashboard, error) {
	records, err := s.loadSales(ctx, sess)
	if err != nil {
		return nil, err
	}
	dashboard := salesview.BuildDashboard(records, s.now(), s.windowDays)
	return &dashboard, nil
}
