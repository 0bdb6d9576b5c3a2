package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/airvoucher/av_backend/internal/apperrors"
	"github.com/airvoucher/av_backend/internal/core/domain"
	portssvc "github.com/airvoucher/av_backend/internal/core/ports/services"
	"github.com/airvoucher/av_backend/internal/core/salesview"
	"github.com/airvoucher/av_backend/internal/dto"
	"github.com/airvoucher/av_backend/internal/handlers"
	"github.com/airvoucher/av_backend/internal/platform/config"
	"github.com/airvoucher/av_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "handler-test-secret"
	testUserID    = "user-owner"
)

type HandlersTestSuite struct {
	suite.Suite
	router   *gin.Engine
	terminal *MockTerminalService
	sales    *MockSalesService
	auth     *MockAuthService
	tokens   *MockTokenService
	layout   *MockLayoutService
	retailer *MockRetailerService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.terminal = new(MockTerminalService)
	suite.sales = new(MockSalesService)
	suite.auth = new(MockAuthService)
	suite.tokens = new(MockTokenService)
	suite.layout = new(MockLayoutService)
	suite.retailer = new(MockRetailerService)

	suite.tokens.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil).Maybe()

	cfg := &config.Config{JWTSecret: testJWTSecret, JWTExpiryDuration: time.Hour, IsProduction: true}
	services := &portssvc.ServiceContainer{
		Auth:         suite.auth,
		TokenService: suite.tokens,
		Retailer:     suite.retailer,
		Terminal:     suite.terminal,
		Sales:        suite.sales,
		Layout:       suite.layout,
	}

	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, services))
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.terminal.AssertExpectations(suite.T())
	suite.sales.AssertExpectations(suite.T())
	suite.auth.AssertExpectations(suite.T())
	suite.layout.AssertExpectations(suite.T())
	suite.retailer.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, userID+"@example.com", string(role), testJWTSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

func (suite *HandlersTestSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) retailerToken() string {
	return suite.generateTestToken(testUserID, domain.RoleRetailer)
}

func (suite *HandlersTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Terminals ---

func (suite *HandlersTestSuite) TestCreateTerminal_Success() {
	terminal := &domain.Terminal{ID: "terminal-1", RetailerID: "retailer-1", Name: "Till 1", Status: domain.TerminalActive}
	req := dto.CreateTerminalRequest{RetailerID: "retailer-1", Name: "Till 1"}
	suite.terminal.On("CreateTerminal", mock.Anything, testUserID, req).Return(terminal, "", nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/create", suite.retailerToken(), req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp map[string]map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("terminal-1", resp["terminal"]["id"])
	suite.Equal("active", resp["terminal"]["status"])
	suite.Contains(resp["terminal"], "last_active")
	suite.NotContains(w.Body.String(), "password")
}

func (suite *HandlersTestSuite) TestCreateTerminal_ReturnsGeneratedPasswordOnce() {
	email := "till@example.com"
	req := dto.CreateTerminalRequest{RetailerID: "retailer-1", Name: "Till 1", Email: &email, AutoGeneratePassword: true}
	terminal := &domain.Terminal{ID: "terminal-1", Name: "Till 1", Status: domain.TerminalActive}
	suite.terminal.On("CreateTerminal", mock.Anything, testUserID, req).Return(terminal, "Abc123xyz789", nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/create", suite.retailerToken(), req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateTerminalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Abc123xyz789", resp.Password)
}

func (suite *HandlersTestSuite) TestCreateTerminal_MissingFields() {
	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/create", suite.retailerToken(), map[string]string{"retailerId": "retailer-1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Missing required fields", suite.errorBody(w))
	suite.terminal.AssertNotCalled(suite.T(), "CreateTerminal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateTerminal_ForeignRetailer() {
	suite.terminal.On("CreateTerminal", mock.Anything, testUserID, mock.Anything).
		Return(nil, "", apperrors.NewForbiddenError("Not authorized to manage this retailer")).Once()

	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/create", suite.retailerToken(),
		dto.CreateTerminalRequest{RetailerID: "retailer-2", Name: "Till"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Not authorized to manage this retailer", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestCreateTerminal_PersistenceFailureIsGeneric() {
	suite.terminal.On("CreateTerminal", mock.Anything, testUserID, mock.Anything).
		Return(nil, "", errors.New(`pq: relation "terminals" does not exist`)).Once()

	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/create", suite.retailerToken(),
		dto.CreateTerminalRequest{RetailerID: "retailer-1", Name: "Till"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to create terminal", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestToggleStatus_Success() {
	updated := &domain.Terminal{ID: "terminal-1", Name: "Till 1", Status: domain.TerminalInactive}
	suite.terminal.On("ToggleTerminalStatus", mock.Anything, testUserID, "terminal-1", domain.TerminalInactive).Return(updated, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/toggle-status", suite.retailerToken(),
		map[string]string{"terminalId": "terminal-1", "status": "inactive"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TerminalEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("inactive", resp.Terminal.Status)
}

func (suite *HandlersTestSuite) TestToggleStatus_ForeignRetailerIs403() {
	suite.terminal.On("ToggleTerminalStatus", mock.Anything, testUserID, "terminal-9", domain.TerminalInactive).
		Return(nil, apperrors.NewForbiddenError("Not authorized to manage this terminal")).Once()

	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/toggle-status", suite.retailerToken(),
		map[string]string{"terminalId": "terminal-9", "status": "inactive"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Not authorized to manage this terminal", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestToggleStatus_InvalidStatus() {
	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/toggle-status", suite.retailerToken(),
		map[string]string{"terminalId": "terminal-1", "status": "paused"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid status. Must be 'active' or 'inactive'", suite.errorBody(w))
	suite.terminal.AssertNotCalled(suite.T(), "ToggleTerminalStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestToggleStatus_MissingFieldsReportedBeforeInvalidStatus() {
	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/toggle-status", suite.retailerToken(),
		map[string]string{"status": "paused"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Missing required fields", suite.errorBody(w))
	suite.terminal.AssertNotCalled(suite.T(), "ToggleTerminalStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestToggleStatus_NotFound() {
	suite.terminal.On("ToggleTerminalStatus", mock.Anything, testUserID, "gone", domain.TerminalActive).
		Return(nil, apperrors.NewNotFoundError("Terminal not found")).Once()

	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/toggle-status", suite.retailerToken(),
		map[string]string{"terminalId": "gone", "status": "active"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteTerminal_Success() {
	suite.terminal.On("DeleteTerminal", mock.Anything, testUserID, "terminal-1").Return(nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/delete", suite.retailerToken(),
		map[string]string{"terminalId": "terminal-1"})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteTerminal_HasSalesIs409() {
	suite.terminal.On("DeleteTerminal", mock.Anything, testUserID, "terminal-1").
		Return(apperrors.NewAppError(http.StatusConflict, "Cannot delete a terminal with sales history", apperrors.ErrTerminalHasSales)).Once()

	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/delete", suite.retailerToken(),
		map[string]string{"terminalId": "terminal-1"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Cannot delete a terminal with sales history", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestTerminalActions_OtherMethodsAre405() {
	for _, path := range []string{"/create", "/toggle-status", "/delete"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
			w := suite.request(method, "/api/v1/retailer/terminals"+path, suite.retailerToken(), nil)
			suite.Equal(http.StatusMethodNotAllowed, w.Code, "%s %s", method, path)
			suite.Equal("Method not allowed", suite.errorBody(w))
		}
	}
}

func (suite *HandlersTestSuite) TestListTerminals() {
	terminals := []domain.Terminal{
		{ID: "terminal-1", Name: "Till 1", Status: domain.TerminalActive, HasSales: true},
		{ID: "terminal-2", Name: "Till 2", Status: domain.TerminalInactive},
	}
	suite.terminal.On("ListTerminals", mock.Anything, testUserID).Return(terminals, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/retailer/terminals", suite.retailerToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTerminalsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Terminals, 2)
	suite.False(resp.Terminals[0].CanDelete)
	suite.True(resp.Terminals[1].CanDelete)
}

// --- Auth gating ---

func (suite *HandlersTestSuite) TestUnauthenticated() {
	w := suite.request(http.MethodPost, "/api/v1/retailer/terminals/delete", "", map[string]string{"terminalId": "terminal-1"})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.terminal.AssertNotCalled(suite.T(), "DeleteTerminal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestWrongRoleIsForbidden() {
	token := suite.generateTestToken("agent-1", domain.RoleAgent)
	w := suite.request(http.MethodGet, "/api/v1/retailer/terminals", token, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestRevokedTokenIsRejected() {
	token := suite.retailerToken()
	suite.tokens.ExpectedCalls = nil
	suite.tokens.On("IsRevoked", mock.Anything, token).Return(true, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/retailer/terminals", token, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Session has ended", suite.errorBody(w))
}

// --- Sales & dashboard ---

func (suite *HandlersTestSuite) TestListSales_BindsQueryState() {
	want := salesview.FilterState{
		VoucherType:   "Mobile",
		RetailerName:  salesview.FilterAll,
		TerminalName:  salesview.FilterAll,
		Search:        "corner",
		SortField:     salesview.SortAmount,
		SortDirection: salesview.SortAsc,
		Page:          2,
	}
	records := make([]domain.SaleRecord, 0, 15)
	for i := 0; i < 15; i++ {
		records = append(records, domain.SaleRecord{
			ID:           "sale-" + string(rune('a'+i)),
			VoucherType:  "Mobile",
			RetailerName: "Corner Shop",
			Amount:       decimal.NewFromInt(int64(i + 1)),
			CreatedAt:    time.Date(2025, 3, 1, 8, i, 0, 0, time.UTC),
		})
	}
	page := salesview.NewFormatter(time.UTC, "R").Render(records, want)
	suite.sales.On("GetSalesPage", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s != nil && s.UserID == testUserID && s.Role == domain.RoleRetailer
	}), want).Return(&page, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/retailer/sales?voucher_type=Mobile&search=corner&sort=amount&dir=asc&page=2", suite.retailerToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SalesPageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 5)
	suite.Equal(2, resp.Pagination.CurrentPage)
	suite.Equal(2, resp.Pagination.TotalPages)
	suite.Equal(15, resp.Pagination.TotalItems)
	suite.Equal("R 11.00", resp.Rows[0].AmountDisplay)
	suite.Equal("amount", resp.State.Sort)
	suite.Equal([]string{"Mobile"}, resp.Filters.VoucherTypes)
}

func (suite *HandlersTestSuite) TestListSales_DefaultsAndServerError() {
	suite.sales.On("GetSalesPage", mock.Anything, mock.Anything, salesview.DefaultState()).
		Return(nil, errors.New("dial tcp 10.0.0.1:5432: connection refused")).Once()

	w := suite.request(http.MethodGet, "/api/v1/retailer/sales", suite.retailerToken(), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to fetch sales", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestListSales_ToggleSortStartsOnFirstPage() {
	byAmount := salesview.DefaultState()
	byAmount.SortField = salesview.SortAmount
	suite.sales.On("GetSalesPage", mock.Anything, mock.Anything, byAmount).Return(&salesview.Page{}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/retailer/sales?sort=date&dir=desc&page=3&toggle=amount", suite.retailerToken(), nil)
	suite.Equal(http.StatusOK, w.Code)

	flipped := byAmount
	flipped.SortDirection = salesview.SortAsc
	suite.sales.On("GetSalesPage", mock.Anything, mock.Anything, flipped).Return(&salesview.Page{}, nil).Once()

	w = suite.request(http.MethodGet, "/api/v1/retailer/sales?sort=amount&dir=desc&page=2&toggle=amount", suite.retailerToken(), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.sales.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListSales_UnknownToggleIsIgnored() {
	want := salesview.DefaultState()
	want.Page = 2
	suite.sales.On("GetSalesPage", mock.Anything, mock.Anything, want).Return(&salesview.Page{}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/retailer/sales?page=2&toggle=profit", suite.retailerToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.sales.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListSales_ChangedViewResetsPage() {
	searched := salesview.DefaultState()
	searched.Search = "spaza"
	suite.sales.On("GetSalesPage", mock.Anything, mock.Anything, searched).Return(&salesview.Page{}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/retailer/sales?search=spaza&page=3&prev_sort=date&prev_dir=desc", suite.retailerToken(), nil)
	suite.Equal(http.StatusOK, w.Code)

	kept := searched
	kept.Page = 3
	suite.sales.On("GetSalesPage", mock.Anything, mock.Anything, kept).Return(&salesview.Page{}, nil).Once()

	w = suite.request(http.MethodGet, "/api/v1/retailer/sales?search=spaza&page=3&prev_search=spaza&prev_sort=date&prev_dir=desc", suite.retailerToken(), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.sales.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListSales_BadPage() {
	w := suite.request(http.MethodGet, "/api/v1/retailer/sales?page=abc", suite.retailerToken(), nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestDashboard_AgentAndAdminRoutes() {
	dashboard := &domain.Dashboard{WindowDays: 30, TimeSeries: []domain.SalesDataPoint{}, VoucherMix: []domain.VoucherTypeSales{}}
	suite.sales.On("GetDashboard", mock.Anything, mock.Anything).Return(dashboard, nil).Twice()

	w := suite.request(http.MethodGet, "/api/v1/agent/dashboard", suite.generateTestToken("agent-1", domain.RoleAgent), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/v1/admin/dashboard", suite.generateTestToken("admin-1", domain.RoleAdmin), nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp domain.Dashboard
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(30, resp.WindowDays)

	w = suite.request(http.MethodGet, "/api/v1/admin/dashboard", suite.generateTestToken("agent-1", domain.RoleAgent), nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

// --- Auth, layout, profile ---

func (suite *HandlersTestSuite) TestLogin() {
	sess := &domain.Session{UserID: testUserID, Email: "owner@example.com", Role: domain.RoleRetailer}
	result := &domain.AuthResult{AccessToken: "jwt-token", ExpiresAt: time.Now().Add(time.Hour), Session: sess}
	suite.auth.On("Login", mock.Anything, "owner@example.com", "secret-pass").Return(result, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "owner@example.com", Password: "secret-pass"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("jwt-token", resp.Token)
	suite.Equal(testUserID, resp.Session.UserID)
}

func (suite *HandlersTestSuite) TestLogin_InvalidCredentials() {
	suite.auth.On("Login", mock.Anything, "owner@example.com", "nope").
		Return(nil, apperrors.NewUnauthorizedError("invalid email or password")).Once()

	w := suite.request(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "owner@example.com", Password: "nope"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("invalid email or password", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestLogin_BadBody() {
	w := suite.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestLogoutAndSession() {
	token := suite.retailerToken()
	suite.auth.On("Logout", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.UserID == testUserID
	}), token, mock.AnythingOfType("time.Time")).Return(nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/auth/session", token, nil)
	suite.Equal(http.StatusOK, w.Code)
	var sess dto.SessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &sess))
	suite.Equal(testUserID, sess.UserID)
	suite.Equal("retailer", sess.Role)

	w = suite.request(http.MethodPost, "/api/v1/auth/logout", token, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestLayout() {
	layout := &domain.Layout{Role: domain.RoleRetailer, DisplayName: "Corner Shop", NavItems: []domain.NavItem{{Name: "Dashboard", Href: "/retailer", Icon: "home"}}}
	suite.layout.On("GetLayout", mock.Anything, mock.Anything).Return(layout, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/layout", suite.retailerToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"displayName":"Corner Shop"`)
}

func (suite *HandlersTestSuite) TestRetailerProfile() {
	retailer := &domain.Retailer{
		ID:          "retailer-1",
		Name:        "Corner Shop",
		Balance:     decimal.RequireFromString("100.50"),
		CreditLimit: decimal.RequireFromString("500"),
	}
	suite.retailer.On("GetRetailerForUser", mock.Anything, testUserID).Return(retailer, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/retailer/profile", suite.retailerToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RetailerProfileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.AvailableCredit.Equal(decimal.RequireFromString("600.50")))
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
