package services

import (
	"context"
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a session token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.UserProfile) (string, time.Time, error)
	// RevokeAccessToken denies a token until it would have expired anyway.
	RevokeAccessToken(ctx context.Context, rawToken string, expiresAt time.Time) error
	// IsRevoked reports whether the token was revoked by a sign-out.
	IsRevoked(ctx context.Context, rawToken string) (bool, error)
}

// AuthSvcFacade signs users in and out and announces session changes.
type AuthSvcFacade interface {
	// Login checks email and password and issues a token.
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	// LoginVerifiedEmail issues a token for an email already verified by an identity provider.
	LoginVerifiedEmail(ctx context.Context, email string) (*domain.AuthResult, error)
	// Logout revokes the caller's token and publishes a sign-out.
	Logout(ctx context.Context, session *domain.Session, rawToken string, expiresAt time.Time) error
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
