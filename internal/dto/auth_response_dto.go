package dto

import (
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

// LoginRequest is the body of an email and password sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Session   SessionResponse `json:"session"`
}

// SessionResponse is the public view of the current session.
type SessionResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
}

// ToSessionResponse converts a domain session. A nil session maps to the zero value.
func ToSessionResponse(s *domain.Session) SessionResponse {
	if s == nil {
		return SessionResponse{}
	}
	return SessionResponse{UserID: s.UserID, Email: s.Email, Role: string(s.Role)}
}

// ToLoginResponse converts an auth result.
func ToLoginResponse(r *domain.AuthResult) LoginResponse {
	return LoginResponse{
		Token:     r.AccessToken,
		ExpiresAt: r.ExpiresAt,
		Session:   ToSessionResponse(r.Session),
	}
}
