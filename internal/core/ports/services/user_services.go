package services

import (
	"context"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

// UserReaderSvc defines read operations for user profiles
type UserReaderSvc interface {
	// GetUserByID retrieves a user profile by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error)

	// GetUserByEmail retrieves a user profile by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.UserProfile, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserAuthSvc
}
