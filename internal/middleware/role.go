package middleware

import (
	"net/http"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireRole lets a request through only when the session role is one of roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[domain.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		session := GetSessionFromContext(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if _, ok := allowed[session.Role]; !ok {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted for route",
				"role", string(session.Role), "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
