package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryWithTx {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryWithTx
var _ portsrepo.UserRepositoryWithTx = (*PgxUserRepository)(nil)

const userSelectQuery = `
SELECT id, email, full_name, role, password_hash, created_at, updated_at
FROM user_profiles
`

func scanUser(row pgx.Row) (*domain.UserProfile, error) {
	var u domain.UserProfile
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.Role,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) findOne(ctx context.Context, filter string, arg any) (*domain.UserProfile, error) {
	user, err := scanUser(r.Pool.QueryRow(ctx, userSelectQuery+filter, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query user profile: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return r.findOne(ctx, `WHERE id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	return r.findOne(ctx, `WHERE lower(email) = $1`, strings.ToLower(email))
}

func (r *PgxUserRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, email, full_name, role, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		user.ID,
		user.Email,
		user.FullName,
		user.Role,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("user profile %s: %w", user.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user profile: %w", err)
	}
	return nil
}
