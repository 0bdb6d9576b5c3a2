package services

import (
	"github.com/airvoucher/av_backend/internal/cache"
	portsrepo "github.com/airvoucher/av_backend/internal/core/ports/repositories"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/platform/config"
	"github.com/airvoucher/av_backend/internal/session"
)

// Infrastructure carries the shared non-database dependencies of the services.
type Infrastructure struct {
	SalesCache cache.SalesCache
	Denylist   cache.TokenDenylist
	Hub        *session.Hub
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, infra Infrastructure) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg, infra.Denylist)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.Auth = NewAuthService(container.User, container.TokenService, infra.Hub)

	container.Retailer = NewRetailerService(repos.RetailerRepo)
	container.Terminal = NewTerminalService(repos.TerminalRepo, repos.RetailerRepo, repos.UserRepo)
	container.Sales = NewSalesService(cfg, repos.SaleRepo, repos.RetailerRepo, infra.SalesCache)
	container.Layout = NewLayoutService(repos.RetailerRepo, repos.UserRepo, infra.Hub)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade               = (*userService)(nil)
	_ portssvc.TokenSvcFacade              = (*tokenService)(nil)
	_ portssvc.AuthSvcFacade               = (*authService)(nil)
	_ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)
	_ portssvc.RetailerSvcFacade           = (*retailerService)(nil)
	_ portssvc.TerminalSvcFacade           = (*terminalService)(nil)
	_ portssvc.SalesSvcFacade              = (*salesService)(nil)
	_ portssvc.LayoutSvcFacade             = (*layoutService)(nil)
)
