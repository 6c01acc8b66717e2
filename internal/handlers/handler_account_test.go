package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/budzetiranje/budget_tracking_app/internal/apperrors"
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
	"github.com/budzetiranje/budget_tracking_app/internal/middleware"
	"github.com/budzetiranje/budget_tracking_app/internal/utils"
)

func generateHandlerTestToken(userID string, role domain.UserRole, secret string) (string, error) {
	return utils.GenerateJWT(userID, string(role), secret, time.Hour, "test")
}

func performAuthedRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, p domain.Principal, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, p, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, p domain.Principal, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, p, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, p domain.Principal, params dto.ListAccountsParams) ([]domain.Account, int64, error) {
	args := m.Called(ctx, p, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, p domain.Principal, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, p, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, p domain.Principal, accountID string) error {
	args := m.Called(ctx, p, accountID)
	return args.Error(0)
}

// --- Test Suite ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAccounts    *MockAccountService
	mockTransaction *MockTransactionService
	jwtSecret       string
	userID          string
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockAccounts = new(MockAccountService)
	suite.mockTransaction = new(MockTransactionService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerAccountRoutes(v1, suite.mockAccounts, suite.mockTransaction)
}

func (suite *AccountHandlerTestSuite) TestListAccountTransactions_FiltersToAccount() {
	account := &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Checking",
		Balance:   decimal.RequireFromString("100.00"),
	}
	transactions := []domain.Transaction{{
		TransactionID: uuid.NewString(),
		AccountID:     account.AccountID,
		Amount:        decimal.RequireFromString("10.00"),
		Type:          domain.CategoryExpense,
	}}

	suite.mockAccounts.On("GetAccountByID", mock.Anything, mock.Anything, account.AccountID).
		Return(account, nil).Once()
	suite.mockTransaction.On("ListTransactions", mock.Anything, mock.Anything, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.AccountID == account.AccountID
	})).Return(transactions, int64(1), nil).Once()

	token, err := generateHandlerTestToken(suite.userID, domain.RoleUser, suite.jwtSecret)
	suite.Require().NoError(err)
	w := performAuthedRequest(suite.router, http.MethodGet, "/api/v1/accounts/"+account.AccountID+"/transactions", token)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Equal(int64(1), resp.Meta.Total)
	suite.mockAccounts.AssertExpectations(suite.T())
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccountTransactions_ForeignAccountForbidden() {
	accountID := uuid.NewString()
	suite.mockAccounts.On("GetAccountByID", mock.Anything, mock.Anything, accountID).
		Return(nil, apperrors.ErrForbidden).Once()

	token, err := generateHandlerTestToken(suite.userID, domain.RoleUser, suite.jwtSecret)
	suite.Require().NoError(err)
	w := performAuthedRequest(suite.router, http.MethodGet, "/api/v1/accounts/"+accountID+"/transactions", token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
