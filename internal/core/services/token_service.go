package services

import (
	"context"
	"time"

	"github.com/airvoucher/av_backend/internal/cache"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/platform/config"
	"github.com/airvoucher/av_backend/internal/utils"
)

// tokenService issues session JWTs and tracks revoked ones.
type tokenService struct {
	BaseService
	cfg      *config.Config
	denylist cache.TokenDenylist
	now      func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, denylist cache.TokenDenylist) portssvc.TokenSvcFacade {
	if denylist == nil {
		denylist = cache.NewMemoryTokenDenylist()
	}
	return &tokenService{cfg: cfg, denylist: denylist, now: time.Now}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.UserProfile) (string, time.Time, error) {
	expiryTime := s.now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// RevokeAccessToken stores the token hash until the token expires.
func (s *tokenService) RevokeAccessToken(ctx context.Context, rawToken string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if expiresAt.IsZero() {
		ttl = s.cfg.JWTExpiryDuration
	}
	return s.denylist.Revoke(ctx, utils.HashToken(rawToken), ttl)
}

func (s *tokenService) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	return s.denylist.IsRevoked(ctx, utils.HashToken(rawToken))
}
