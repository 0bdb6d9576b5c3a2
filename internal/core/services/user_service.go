package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserReader
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserReader) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		s.LogError(ctx, err, "Failed to get user by email")
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// AuthenticateUser returns ErrUnauthorized for an unknown email, an account
// without a password or a wrong password alike.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown email")
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with invalid credentials", slog.String("user_id", user.ID))
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	return user, nil
}
