package domain

import "time"

// Session is the authenticated caller. A nil *Session means no session.
type Session struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role,omitempty"`
}

// AuthResult is returned by a successful sign-in.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *UserProfile
	Session     *Session
}

// SessionFor builds the session of a signed-in user profile.
func SessionFor(u *UserProfile) *Session {
	if u == nil {
		return nil
	}
	return &Session{UserID: u.ID, Email: u.Email, Role: u.Role}
}
