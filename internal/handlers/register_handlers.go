package handlers

import (
	"fmt"
	"net/http"

	"github.com/airvoucher/av_backend/cmd/docs"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/middleware"
	"github.com/airvoucher/av_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	v1Middleware := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret, services.TokenService)}
	if cfg.RateLimit != "" {
		lim, err := middleware.NewLimiter(cfg.RateLimit)
		if err != nil {
			return fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimit, err)
		}
		v1Middleware = append([]gin.HandlerFunc{middleware.RateLimit(lim)}, v1Middleware...)
	}
	v1 := r.Group("/api/v1", v1Middleware...)

	registerSessionRoutes(v1, services.Auth)
	registerLayoutRoutes(v1, services.Layout)

	retailer := v1.Group("/retailer", middleware.RequireRole(domain.RoleRetailer))
	registerRetailerRoutes(retailer, services.Retailer)
	registerTerminalRoutes(retailer, services.Terminal)
	registerSalesRoutes(retailer, services.Sales)

	agent := v1.Group("/agent", middleware.RequireRole(domain.RoleAgent))
	registerSalesRoutes(agent, services.Sales)

	admin := v1.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	registerSalesRoutes(admin, services.Sales)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
