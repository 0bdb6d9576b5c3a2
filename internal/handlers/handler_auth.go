package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/dto"
	"github.com/airvoucher/av_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// loginRate caps sign-in attempts per client IP.
const loginRate = "5-M"

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public sign-in routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth)

	rate, _ := limiter.NewRateFromFormatted(loginRate)
	limitMiddleware := limitergin.NewMiddleware(limiter.New(memory.NewStore(), rate))

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		registerGoogleOAuthRoutes(auth, services)
	}
}

// registerSessionRoutes sets up the routes that need a signed-in caller.
func registerSessionRoutes(v1 *gin.RouterGroup, as portssvc.AuthSvcFacade) {
	h := newAuthHandler(as)

	auth := v1.Group("/auth")
	{
		auth.POST("/logout", h.logout)
		auth.GET("/session", h.session)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns a JWT with the session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}

// logout godoc
// @Summary Sign out
// @Description Revokes the bearer token and ends the session.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw, expiresAt, _ := middleware.GetTokenFromContext(c)

	if err := h.authService.Logout(c.Request.Context(), middleware.GetSessionFromContext(c), raw, expiresAt); err != nil {
		respondError(c, err, "Failed to sign out")
		return
	}
	logger.Info("Session ended", slog.String("path", c.FullPath()))
	c.Status(http.StatusNoContent)
}

// session godoc
// @Summary Current session
// @Description Returns the caller's user ID, email and role.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/session [get]
func (h *authHandler) session(c *gin.Context) {
	sess := middleware.GetSessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}
