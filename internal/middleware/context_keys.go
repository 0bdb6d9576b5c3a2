package middleware

import (
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Keys for values the auth middleware stores in the request context.
const (
	userIDKey      = contextKey("userID")
	sessionKey     = contextKey("session")
	rawTokenKey    = contextKey("rawToken")
	tokenExpiryKey = contextKey("tokenExpiry")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetSessionFromContext returns the current session, or nil when the request is anonymous.
func GetSessionFromContext(c *gin.Context) *domain.Session {
	s, _ := c.Request.Context().Value(sessionKey).(*domain.Session)
	return s
}

// GetTokenFromContext returns the bearer token the request was authenticated with and its expiry.
func GetTokenFromContext(c *gin.Context) (string, time.Time, bool) {
	raw, ok := c.Request.Context().Value(rawTokenKey).(string)
	if !ok || raw == "" {
		return "", time.Time{}, false
	}
	exp, _ := c.Request.Context().Value(tokenExpiryKey).(time.Time)
	return raw, exp, true
}
