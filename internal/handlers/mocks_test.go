package handlers_test

import (
	"context"
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/core/salesview"
	"github.com/airvoucher/av_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TerminalService ---
type MockTerminalService struct {
	mock.Mock
}

func (m *MockTerminalService) ListTerminals(ctx context.Context, userID string) ([]domain.Terminal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Terminal), args.Error(1)
}

func (m *MockTerminalService) CreateTerminal(ctx context.Context, userID string, req dto.CreateTerminalRequest) (*domain.Terminal, string, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Terminal), args.String(1), args.Error(2)
}

func (m *MockTerminalService) ToggleTerminalStatus(ctx context.Context, userID, terminalID string, status domain.TerminalStatus) (*domain.Terminal, error) {
	args := m.Called(ctx, userID, terminalID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Terminal), args.Error(1)
}

func (m *MockTerminalService) DeleteTerminal(ctx context.Context, userID, terminalID string) error {
	return m.Called(ctx, userID, terminalID).Error(0)
}

var _ portssvc.TerminalSvcFacade = (*MockTerminalService)(nil)

// --- Mock SalesService ---
type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) GetSalesPage(ctx context.Context, session *domain.Session, state salesview.FilterState) (*salesview.Page, error) {
	args := m.Called(ctx, session, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*salesview.Page), args.Error(1)
}

func (m *MockSalesService) GetDashboard(ctx context.Context, session *domain.Session) (*domain.Dashboard, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

var _ portssvc.SalesSvcFacade = (*MockSalesService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthService) LoginVerifiedEmail(ctx context.Context, email string) (*domain.AuthResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, session *domain.Session, rawToken string, expiresAt time.Time) error {
	return m.Called(ctx, session, rawToken, expiresAt).Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.UserProfile) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) RevokeAccessToken(ctx context.Context, rawToken string, expiresAt time.Time) error {
	return m.Called(ctx, rawToken, expiresAt).Error(0)
}

func (m *MockTokenService) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	args := m.Called(ctx, rawToken)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock LayoutService ---
type MockLayoutService struct {
	mock.Mock
}

func (m *MockLayoutService) GetLayout(ctx context.Context, session *domain.Session) (*domain.Layout, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Layout), args.Error(1)
}

func (m *MockLayoutService) Close() {}

var _ portssvc.LayoutSvcFacade = (*MockLayoutService)(nil)

// --- Mock RetailerService ---
type MockRetailerService struct {
	mock.Mock
}

func (m *MockRetailerService) GetRetailerForUser(ctx context.Context, userID string) (*domain.Retailer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Retailer), args.Error(1)
}

var _ portssvc.RetailerSvcFacade = (*MockRetailerService)(nil)
