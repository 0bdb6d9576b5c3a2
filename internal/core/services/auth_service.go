package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/session"
)

type authService struct {
	BaseService
	users  portssvc.UserSvcFacade
	tokens portssvc.TokenSvcFacade
	hub    *session.Hub
}

// NewAuthService creates the sign-in service. hub may be nil.
func NewAuthService(users portssvc.UserSvcFacade, tokens portssvc.TokenSvcFacade, hub *session.Hub) portssvc.AuthSvcFacade {
	return &authService{users: users, tokens: tokens, hub: hub}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.AuthenticateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, user)
}

// LoginVerifiedEmail signs in an existing profile. Accounts are provisioned
// by administrators, so an unknown email is unauthorized rather than created.
func (s *authService) LoginVerifiedEmail(ctx context.Context, email string) (*domain.AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("no account is registered for this email")
		}
		return nil, err
	}
	return s.issue(ctx, user)
}

func (s *authService) issue(ctx context.Context, user *domain.UserProfile) (*domain.AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	sess := domain.SessionFor(user)
	s.publish(session.SignedIn, sess)
	s.LogInfo(ctx, "User signed in", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	return &domain.AuthResult{AccessToken: token, ExpiresAt: expiresAt, User: user, Session: sess}, nil
}

func (s *authService) Logout(ctx context.Context, sess *domain.Session, rawToken string, expiresAt time.Time) error {
	if sess == nil {
		return apperrors.NewUnauthorizedError("no active session")
	}
	if rawToken != "" {
		if err := s.tokens.RevokeAccessToken(ctx, rawToken, expiresAt); err != nil {
			s.LogError(ctx, err, "Failed to revoke access token", slog.String("user_id", sess.UserID))
			return fmt.Errorf("failed to revoke access token: %w", err)
		}
	}
	s.publish(session.SignedOut, sess)
	s.LogInfo(ctx, "User signed out", slog.String("user_id", sess.UserID))
	return nil
}

func (s *authService) publish(kind session.EventKind, sess *domain.Session) {
	if s.hub != nil {
		s.hub.Publish(session.Event{Kind: kind, Session: sess})
	}
}
