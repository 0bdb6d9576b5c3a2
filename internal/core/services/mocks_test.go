package services_test

import (
	"context"
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	var user *domain.UserProfile
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.UserProfile)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email)
	var user *domain.UserProfile
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.UserProfile)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.UserProfile) error {
	args := m.Called(ctx, tx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockUserRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockUserRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock RetailerRepository ---
type MockRetailerRepository struct {
	mock.Mock
}

func (m *MockRetailerRepository) FindRetailerByID(ctx context.Context, retailerID string) (*domain.Retailer, error) {
	args := m.Called(ctx, retailerID)
	var r *domain.Retailer
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.Retailer)
	}
	return r, args.Error(1)
}

func (m *MockRetailerRepository) FindRetailerByUserID(ctx context.Context, userID string) (*domain.Retailer, error) {
	args := m.Called(ctx, userID)
	var r *domain.Retailer
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.Retailer)
	}
	return r, args.Error(1)
}

func (m *MockRetailerRepository) ListRetailersByAgent(ctx context.Context, agentProfileID string) ([]domain.Retailer, error) {
	args := m.Called(ctx, agentProfileID)
	var rs []domain.Retailer
	if args.Get(0) != nil {
		rs = args.Get(0).([]domain.Retailer)
	}
	return rs, args.Error(1)
}

// --- Mock TerminalRepository ---
type MockTerminalRepository struct {
	mock.Mock
}

func (m *MockTerminalRepository) FindTerminalByID(ctx context.Context, terminalID string) (*domain.Terminal, error) {
	args := m.Called(ctx, terminalID)
	var t *domain.Terminal
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.Terminal)
	}
	return t, args.Error(1)
}

func (m *MockTerminalRepository) ListTerminalsByRetailer(ctx context.Context, retailerID string) ([]domain.Terminal, error) {
	args := m.Called(ctx, retailerID)
	var ts []domain.Terminal
	if args.Get(0) != nil {
		ts = args.Get(0).([]domain.Terminal)
	}
	return ts, args.Error(1)
}

func (m *MockTerminalRepository) SaveTerminal(ctx context.Context, terminal domain.Terminal) error {
	return m.Called(ctx, terminal).Error(0)
}

func (m *MockTerminalRepository) SaveTerminalInTx(ctx context.Context, tx pgx.Tx, terminal domain.Terminal) error {
	return m.Called(ctx, tx, terminal).Error(0)
}

func (m *MockTerminalRepository) UpdateTerminalStatus(ctx context.Context, terminalID string, status domain.TerminalStatus, now time.Time) (*domain.Terminal, error) {
	args := m.Called(ctx, terminalID, status, now)
	var t *domain.Terminal
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.Terminal)
	}
	return t, args.Error(1)
}

func (m *MockTerminalRepository) DeleteTerminal(ctx context.Context, terminalID string) error {
	return m.Called(ctx, terminalID).Error(0)
}

func (m *MockTerminalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockTerminalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTerminalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) ListSales(ctx context.Context, scope domain.SaleScope) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, scope)
	var rs []domain.SaleRecord
	if args.Get(0) != nil {
		rs = args.Get(0).([]domain.SaleRecord)
	}
	return rs, args.Error(1)
}

// --- Mock SalesCache ---
type MockSalesCache struct {
	mock.Mock
}

func (m *MockSalesCache) Get(ctx context.Context, key string) ([]domain.SaleRecord, bool, error) {
	args := m.Called(ctx, key)
	var rs []domain.SaleRecord
	if args.Get(0) != nil {
		rs = args.Get(0).([]domain.SaleRecord)
	}
	return rs, args.Bool(1), args.Error(2)
}

func (m *MockSalesCache) Set(ctx context.Context, key string, value []domain.SaleRecord, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}
