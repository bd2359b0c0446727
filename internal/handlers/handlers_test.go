package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/transaction_insights_api/internal/apperrors"
	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portssvc "github.com/SscSPs/transaction_insights_api/internal/core/ports/services"
	"github.com/SscSPs/transaction_insights_api/internal/dto"
	"github.com/SscSPs/transaction_insights_api/internal/handlers"
	"github.com/SscSPs/transaction_insights_api/internal/platform/config"
	"github.com/SscSPs/transaction_insights_api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SpendingService ---
type MockSpendingService struct {
	mock.Mock
}

func (m *MockSpendingService) CustomerSummary(ctx context.Context, customerID int64, rng domain.DateRange) (*domain.CustomerSummary, error) {
	args := m.Called(ctx, customerID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerSummary), args.Error(1)
}

func (m *MockSpendingService) OverallSummary(ctx context.Context, rng domain.DateRange) (*domain.OverallSummary, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverallSummary), args.Error(1)
}

func (m *MockSpendingService) TopSpenders(ctx context.Context, count int, rng domain.DateRange) ([]domain.TopSpender, error) {
	args := m.Called(ctx, count, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopSpender), args.Error(1)
}

func (m *MockSpendingService) TopCategoriesForCustomer(ctx context.Context, customerID int64, count int, rng domain.DateRange) ([]domain.TopCategory, error) {
	args := m.Called(ctx, customerID, count, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopCategory), args.Error(1)
}

func (m *MockSpendingService) TopCategoriesOverall(ctx context.Context, count int, rng domain.DateRange) ([]domain.TopCategory, error) {
	args := m.Called(ctx, count, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopCategory), args.Error(1)
}

func (m *MockSpendingService) ListCustomerTransactions(ctx context.Context, customerID int64, rng domain.DateRange, limit int, nextToken *string) (*domain.TransactionPage, error) {
	args := m.Called(ctx, customerID, rng, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

var _ portssvc.SpendingSvcFacade = (*MockSpendingService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockSpending *MockSpendingService
	mockUser     *MockUserService
	mockToken    *MockTokenService
	jwtSecret    string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockSpending = new(MockSpendingService)
	suite.mockUser = new(MockUserService)
	suite.mockToken = new(MockTokenService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		LoginRateLimit: "1000-M",
		IsProduction:   true,
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		User:     suite.mockUser,
		Token:    suite.mockToken,
		Spending: suite.mockSpending,
	})
}

// generateTestToken creates a signed access token for the given role and customer link.
func (suite *HandlerTestSuite) generateTestToken(role domain.Role, customerID *int64) string {
	token, err := utils.GenerateJWT("user-under-test", string(role), customerID, suite.jwtSecret, time.Hour, "test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *HandlerTestSuite) do(method, url, token string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func customerPtr(id int64) *int64 { return &id }

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestCustomerSummary_OwnCustomer() {
	top := domain.CategoryFood
	expected := &domain.CustomerSummary{
		CustomerID: 1,
		SpendingSummary: domain.SpendingSummary{
			PeriodDescription: "2024-01-01 to 2024-01-31",
			TotalSpent:        decimal.NewFromInt(50),
			Breakdown: []domain.CategoryBreakdownEntry{
				{Category: domain.CategoryFood, Total: decimal.NewFromInt(30)},
				{Category: domain.CategoryTransport, Total: decimal.NewFromInt(20)},
			},
			TopCategory: &top,
		},
	}
	suite.mockSpending.On("CustomerSummary", mock.Anything, int64(1), mock.MatchedBy(func(r domain.DateRange) bool {
		return r.From != nil && r.To != nil &&
			r.From.Format(domain.DateLayout) == "2024-01-01" && r.To.Format(domain.DateLayout) == "2024-01-31"
	})).Return(expected, nil).Once()

	token := suite.generateTestToken(domain.RoleUser, customerPtr(1))
	w := suite.do(http.MethodGet, "/api/v1/customers/1/summary?from=2024-01-01&to=2024-01-31", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(float64(1), body["customerId"])
	suite.Equal("FOOD", body["topCategory"])
	suite.Equal("2024-01-01 to 2024-01-31", body["periodDescription"])
	suite.mockSpending.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCustomerSummary_OtherCustomerForbidden() {
	token := suite.generateTestToken(domain.RoleUser, customerPtr(1))
	w := suite.do(http.MethodGet, "/api/v1/customers/2/summary", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSpending.AssertNotCalled(suite.T(), "CustomerSummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCustomerSummary_UnlinkedUserForbidden() {
	token := suite.generateTestToken(domain.RoleUser, nil)
	w := suite.do(http.MethodGet, "/api/v1/customers/1/summary", token, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCustomerSummary_AdminNotFound() {
	suite.mockSpending.On("CustomerSummary", mock.Anything, int64(99), domain.DateRange{}).
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(domain.RoleAdmin, nil)
	w := suite.do(http.MethodGet, "/api/v1/customers/99/summary", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCustomerSummary_StoreFailureKeepsStatus() {
	storeErr := apperrors.NewAppError(http.StatusServiceUnavailable, "failed to query category totals", context.DeadlineExceeded)
	suite.mockSpending.On("CustomerSummary", mock.Anything, int64(7), domain.DateRange{}).
		Return(nil, fmt.Errorf("failed to retrieve category totals: %w", storeErr)).Once()
	suite.mockSpending.On("CustomerSummary", mock.Anything, int64(8), domain.DateRange{}).
		Return(nil, assert.AnError).Once()

	token := suite.generateTestToken(domain.RoleAdmin, nil)

	w := suite.do(http.MethodGet, "/api/v1/customers/7/summary", token, nil)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.JSONEq(`{"error":"Failed to build customer summary"}`, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/customers/8/summary", token, nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestCustomerSummary_BadInput() {
	token := suite.generateTestToken(domain.RoleAdmin, nil)

	cases := []string{
		"/api/v1/customers/abc/summary",
		"/api/v1/customers/1/summary?from=2024-13-01",
		"/api/v1/customers/1/summary?from=01-02-2024",
		"/api/v1/customers/1/summary?from=2024-02-01&to=2024-01-01",
	}
	for _, url := range cases {
		w := suite.do(http.MethodGet, url, token, nil)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.mockSpending.AssertNotCalled(suite.T(), "CustomerSummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCustomerSummary_NoToken() {
	w := suite.do(http.MethodGet, "/api/v1/customers/1/summary", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestOverallSummary_AdminOnly() {
	expected := &domain.OverallSummary{SpendingSummary: domain.SpendingSummary{
		PeriodDescription: "All time",
		TotalSpent:        decimal.Zero,
		Breakdown:         []domain.CategoryBreakdownEntry{},
	}}
	suite.mockSpending.On("OverallSummary", mock.Anything, domain.DateRange{}).Return(expected, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/summary/overall", suite.generateTestToken(domain.RoleUser, customerPtr(1)), nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/summary/overall", suite.generateTestToken(domain.RoleAdmin, nil), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"breakdown":[]`)
	suite.Contains(w.Body.String(), `"topCategory":null`)
}

func (suite *HandlerTestSuite) TestTopSpenders() {
	suite.mockSpending.On("TopSpenders", mock.Anything, 5, domain.DateRange{}).
		Return([]domain.TopSpender{{CustomerID: 1, TotalSpent: decimal.NewFromInt(100)}}, nil).Once()
	suite.mockSpending.On("TopSpenders", mock.Anything, 2, domain.DateRange{}).
		Return([]domain.TopSpender{}, nil).Once()

	admin := suite.generateTestToken(domain.RoleAdmin, nil)

	w := suite.do(http.MethodGet, "/api/v1/customers/top-spenders", admin, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/customers/top-spenders?count=2", admin, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/customers/top-spenders?count=0", admin, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/customers/top-spenders", suite.generateTestToken(domain.RoleUser, customerPtr(1)), nil)
	suite.Equal(http.StatusForbidden, w.Code)

	suite.mockSpending.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestTopCategories() {
	suite.mockSpending.On("TopCategoriesForCustomer", mock.Anything, int64(1), 3, domain.DateRange{}).
		Return([]domain.TopCategory{{Category: domain.CategoryFood, TotalSpent: decimal.NewFromInt(30)}}, nil).Once()
	suite.mockSpending.On("TopCategoriesOverall", mock.Anything, 5, domain.DateRange{}).
		Return([]domain.TopCategory{}, nil).Once()

	user := suite.generateTestToken(domain.RoleUser, customerPtr(1))

	w := suite.do(http.MethodGet, "/api/v1/categories/top-categories?customerId=1&count=3", user, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/categories/top-categories?customerId=2", user, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/categories/top-categories", user, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/categories/top-categories", suite.generateTestToken(domain.RoleAdmin, nil), nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockSpending.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListCategories() {
	w := suite.do(http.MethodGet, "/api/v1/categories", suite.generateTestToken(domain.RoleUser, nil), nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListCategoriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Categories, len(domain.AllCategories))
}

func (suite *HandlerTestSuite) TestListCustomerTransactions() {
	next := "token-2"
	page := &domain.TransactionPage{
		Transactions: []domain.Transaction{{TransactionID: 7, CustomerID: 1, Amount: decimal.RequireFromString("4.50"), Category: domain.CategoryFood}},
		NextToken:    &next,
	}
	suite.mockSpending.On("ListCustomerTransactions", mock.Anything, int64(1), domain.DateRange{}, 1, (*string)(nil)).
		Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/customers/1/transactions?limit=1", suite.generateTestToken(domain.RoleUser, customerPtr(1)), nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Transactions, 1)
	suite.Equal(int64(7), body.Transactions[0].TransactionID)
	suite.Require().NotNil(body.NextToken)
	suite.Equal("token-2", *body.NextToken)
}

func (suite *HandlerTestSuite) TestRegister() {
	created := &domain.User{UserID: "u-1", Username: "alice", Name: "Alice", Role: domain.RoleUser}
	suite.mockUser.On("CreateUser", mock.Anything, mock.MatchedBy(func(r dto.CreateUserRequest) bool {
		return r.Username == "alice"
	})).Return(created, nil).Once()
	suite.mockUser.On("CreateUser", mock.Anything, mock.MatchedBy(func(r dto.CreateUserRequest) bool {
		return r.Username == "taken"
	})).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", "", []byte(`{"username":"alice","password":"s3cret!","name":"Alice"}`))
	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"userID":"u-1"`)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", "", []byte(`{"username":"taken","password":"s3cret!","name":"Taken"}`))
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", "", []byte(`{"username":"bob","password":"s3cret!","name":"Bob","role":"owner"}`))
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", "", []byte(`{"username":"bob"}`))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestLogin() {
	user := &domain.User{UserID: "u-1", Username: "alice", Role: domain.RoleUser}
	expiry := time.Now().Add(time.Hour).UTC()
	suite.mockUser.On("AuthenticateUser", mock.Anything, "alice", "s3cret!").Return(user, nil).Once()
	suite.mockUser.On("AuthenticateUser", mock.Anything, "alice", "wrong").Return(nil, apperrors.ErrUnauthorized).Once()
	suite.mockToken.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expiry, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", []byte(`{"username":"alice","password":"s3cret!"}`))
	suite.Equal(http.StatusOK, w.Code)
	var body dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("signed-token", body.Token)

	w = suite.do(http.MethodPost, "/api/v1/auth/login", "", []byte(`{"username":"alice","password":"wrong"}`))
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/login", "", []byte(`{}`))
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
