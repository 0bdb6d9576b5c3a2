package repositories

import (
	"context"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserReader defines read operations for user profiles
type UserReader interface {
	// FindUserByID retrieves a specific user profile by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.UserProfile, error)

	// FindUserByEmail retrieves a user profile by email, case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
}

// UserWriter defines write operations for user profiles. Profiles are only
// created alongside a terminal, inside the caller's transaction.
type UserWriter interface {
	// SaveUserInTx persists a new user profile. A taken email returns apperrors.ErrDuplicate.
	SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.UserProfile) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// UserRepositoryWithTx extends UserRepositoryFacade with transaction capabilities
type UserRepositoryWithTx interface {
	UserRepositoryFacade
	TransactionManager
}
