package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/budzetiranje/budget_tracking_app/internal/apperrors"
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portsrepo "github.com/budzetiranje/budget_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/core/services"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockAccountRepo     *MockAccountRepository
	mockCategoryRepo    *MockCategoryRepository
	service             portssvc.TransactionSvcFacade

	owner           domain.Principal
	otherUser       domain.Principal
	account         domain.Account
	incomeCategory  domain.Category
	expenseCategory domain.Category
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewLedgerService(
		suite.mockTransactionRepo,
		suite.mockAccountRepo,
		suite.mockCategoryRepo,
		services.NewAuthorizer(),
	)

	suite.owner = domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	suite.otherUser = domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}

	suite.account = domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.owner.UserID,
		Name:      "Checking",
		Balance:   decimal.RequireFromString("100.00"),
	}
	ownerID := suite.owner.UserID
	suite.incomeCategory = domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     &ownerID,
		Name:       "Salary",
		Type:       domain.CategoryIncome,
	}
	suite.expenseCategory = domain.Category{
		CategoryID: uuid.NewString(),
		Name:       "Groceries", // global
		Type:       domain.CategoryExpense,
	}
}

func (suite *LedgerServiceTestSuite) expectAccountLookup() {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.account.AccountID).
		Return(&suite.account, nil)
}

// --- CreateTransaction ---

func (suite *LedgerServiceTestSuite) TestCreateTransaction_IncomeDelta() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.incomeCategory.CategoryID,
		Amount:          decimal.RequireFromString("50.00"),
		TransactionDate: "2026-08-01",
	}

	suite.expectAccountLookup()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.incomeCategory.CategoryID).
		Return(&suite.incomeCategory, nil).Once()
	suite.mockTransactionRepo.On("CreateTransactionTx", ctx, mock.MatchedBy(func(m portsrepo.BalanceMutation) bool {
		return m.Delta.Equal(decimal.RequireFromString("50.00")) &&
			m.Audit.Action == domain.AuditInsert &&
			m.Audit.OldAmount == nil &&
			m.Audit.NewAmount != nil && m.Audit.NewAmount.Equal(req.Amount) &&
			m.Audit.ChangedBy != nil && *m.Audit.ChangedBy == suite.owner.UserID
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.TransactionID)
	suite.Equal(domain.CategoryIncome, created.Type)
	suite.True(created.Amount.Equal(req.Amount))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ExpenseDeltaIsNegative() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.expenseCategory.CategoryID,
		Amount:          decimal.RequireFromString("20.00"),
		TransactionDate: "2026-08-02",
	}

	suite.expectAccountLookup()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.expenseCategory.CategoryID).
		Return(&suite.expenseCategory, nil).Once()
	suite.mockTransactionRepo.On("CreateTransactionTx", ctx, mock.MatchedBy(func(m portsrepo.BalanceMutation) bool {
		return m.Delta.Equal(decimal.RequireFromString("-20.00")) &&
			m.Transaction.Type == domain.CategoryExpense
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().NoError(err)
	// The stored amount stays a positive magnitude; only the delta is signed.
	suite.True(created.Amount.Equal(decimal.RequireFromString("20.00")))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ForbiddenForNonOwner() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.incomeCategory.CategoryID,
		Amount:          decimal.RequireFromString("50.00"),
		TransactionDate: "2026-08-01",
	}

	suite.expectAccountLookup()

	_, err := suite.service.CreateTransaction(ctx, suite.otherUser, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "CreateTransactionTx", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_GuestReadOnly() {
	ctx := context.Background()
	guest := domain.Principal{UserID: suite.owner.UserID, Role: domain.RoleGuest}
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.incomeCategory.CategoryID,
		Amount:          decimal.RequireFromString("10.00"),
		TransactionDate: "2026-08-01",
	}

	suite.expectAccountLookup()

	_, err := suite.service.CreateTransaction(ctx, guest, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "CreateTransactionTx", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.incomeCategory.CategoryID,
		Amount:          decimal.Zero,
		TransactionDate: "2026-08-01",
	}

	suite.expectAccountLookup()

	_, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "CreateTransactionTx", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_DeletedCategory() {
	ctx := context.Background()
	deletedAt := time.Now()
	deleted := suite.expenseCategory
	deleted.DeletedAt = &deletedAt
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      deleted.CategoryID,
		Amount:          decimal.RequireFromString("5.00"),
		TransactionDate: "2026-08-01",
	}

	suite.expectAccountLookup()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, deleted.CategoryID).
		Return(&deleted, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ForeignCategory() {
	ctx := context.Background()
	strangerID := uuid.NewString()
	foreign := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     &strangerID,
		Name:       "Their category",
		Type:       domain.CategoryExpense,
	}
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      foreign.CategoryID,
		Amount:          decimal.RequireFromString("5.00"),
		TransactionDate: "2026-08-01",
	}

	suite.expectAccountLookup()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, foreign.CategoryID).
		Return(&foreign, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RetriesOnConflict() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.incomeCategory.CategoryID,
		Amount:          decimal.RequireFromString("50.00"),
		TransactionDate: "2026-08-01",
	}
	conflict := apperrors.NewAppError(409, "concurrent write conflict", apperrors.ErrConflict)

	suite.expectAccountLookup()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.incomeCategory.CategoryID).
		Return(&suite.incomeCategory, nil).Once()
	suite.mockTransactionRepo.On("CreateTransactionTx", ctx, mock.Anything).Return(conflict).Twice()
	suite.mockTransactionRepo.On("CreateTransactionTx", ctx, mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockTransactionRepo.AssertNumberOfCalls(suite.T(), "CreateTransactionTx", 3)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ConflictExhaustsRetries() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.incomeCategory.CategoryID,
		Amount:          decimal.RequireFromString("50.00"),
		TransactionDate: "2026-08-01",
	}
	conflict := apperrors.NewAppError(409, "concurrent write conflict", apperrors.ErrConflict)

	suite.expectAccountLookup()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.incomeCategory.CategoryID).
		Return(&suite.incomeCategory, nil).Once()
	suite.mockTransactionRepo.On("CreateTransactionTx", ctx, mock.Anything).Return(conflict)

	_, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTransactionRepo.AssertNumberOfCalls(suite.T(), "CreateTransactionTx", 3)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_DuplicateIsNotRetried() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.incomeCategory.CategoryID,
		Amount:          decimal.RequireFromString("50.00"),
		TransactionDate: "2026-08-01",
	}
	dup := apperrors.NewAppError(409, "duplicate key", apperrors.ErrDuplicate)

	suite.expectAccountLookup()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.incomeCategory.CategoryID).
		Return(&suite.incomeCategory, nil).Once()
	suite.mockTransactionRepo.On("CreateTransactionTx", ctx, mock.Anything).Return(dup).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockTransactionRepo.AssertNumberOfCalls(suite.T(), "CreateTransactionTx", 1)
}

// --- UpdateTransaction ---

func (suite *LedgerServiceTestSuite) existingIncomeTransaction(amount string) *domain.Transaction {
	return &domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.incomeCategory.CategoryID,
		Amount:          decimal.RequireFromString(amount),
		Type:            domain.CategoryIncome,
		TransactionDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_AmountDelta() {
	ctx := context.Background()
	existing := suite.existingIncomeTransaction("50.00")
	newAmount := decimal.RequireFromString("30.00")

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, existing.TransactionID).
		Return(existing, nil).Once()
	suite.expectAccountLookup()
	// 30 - 50: the balance sheds the difference.
	suite.mockTransactionRepo.On("UpdateTransactionTx", ctx, mock.MatchedBy(func(m portsrepo.BalanceMutation) bool {
		return m.Delta.Equal(decimal.RequireFromString("-20.00")) &&
			m.Audit.Action == domain.AuditUpdate &&
			m.Audit.OldAmount != nil && m.Audit.OldAmount.Equal(decimal.RequireFromString("50.00")) &&
			m.Audit.NewAmount != nil && m.Audit.NewAmount.Equal(newAmount)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.owner, existing.TransactionID, dto.UpdateTransactionRequest{
		Amount: &newAmount,
	})

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_CategoryFlipRecomputesType() {
	ctx := context.Background()
	existing := suite.existingIncomeTransaction("50.00")

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, existing.TransactionID).
		Return(existing, nil).Once()
	suite.expectAccountLookup()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.expenseCategory.CategoryID).
		Return(&suite.expenseCategory, nil).Once()
	// Income +50 becomes expense -50: the balance moves by -100.
	suite.mockTransactionRepo.On("UpdateTransactionTx", ctx, mock.MatchedBy(func(m portsrepo.BalanceMutation) bool {
		return m.Delta.Equal(decimal.RequireFromString("-100.00")) &&
			m.Transaction.Type == domain.CategoryExpense
	})).Return(nil).Once()

	newCategoryID := suite.expenseCategory.CategoryID
	updated, err := suite.service.UpdateTransaction(ctx, suite.owner, existing.TransactionID, dto.UpdateTransactionRequest{
		CategoryID: &newCategoryID,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryExpense, updated.Type)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_NoFieldsProvided() {
	ctx := context.Background()
	existing := suite.existingIncomeTransaction("50.00")

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, existing.TransactionID).
		Return(existing, nil).Once()
	suite.expectAccountLookup()

	_, err := suite.service.UpdateTransaction(ctx, suite.owner, existing.TransactionID, dto.UpdateTransactionRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "UpdateTransactionTx", mock.Anything, mock.Anything)
}

// --- DeleteTransaction ---

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_ReversesContribution() {
	ctx := context.Background()
	existing := suite.existingIncomeTransaction("50.00")

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, existing.TransactionID).
		Return(existing, nil).Once()
	suite.expectAccountLookup()
	suite.mockTransactionRepo.On("DeleteTransactionTx", ctx, mock.MatchedBy(func(m portsrepo.BalanceMutation) bool {
		return m.Delta.Equal(decimal.RequireFromString("-50.00")) &&
			m.Audit.Action == domain.AuditDelete &&
			m.Audit.OldAmount != nil && m.Audit.OldAmount.Equal(decimal.RequireFromString("50.00")) &&
			m.Audit.NewAmount == nil
	})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.owner, existing.TransactionID)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_ExpenseRestoresBalance() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       suite.account.AccountID,
		CategoryID:      suite.expenseCategory.CategoryID,
		Amount:          decimal.RequireFromString("20.00"),
		Type:            domain.CategoryExpense,
		TransactionDate: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
	}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, existing.TransactionID).
		Return(existing, nil).Once()
	suite.expectAccountLookup()
	suite.mockTransactionRepo.On("DeleteTransactionTx", ctx, mock.MatchedBy(func(m portsrepo.BalanceMutation) bool {
		return m.Delta.Equal(decimal.RequireFromString("20.00"))
	})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.owner, existing.TransactionID)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

// --- BatchUpdateAmounts ---

func (suite *LedgerServiceTestSuite) TestBatchUpdateAmounts_SingleAtomicCall() {
	ctx := context.Background()
	first := suite.existingIncomeTransaction("50.00")
	second := suite.existingIncomeTransaction("10.00")
	req := dto.BatchUpdateRequest{
		Transactions: []dto.BatchUpdateItem{
			{TransactionID: first.TransactionID, Amount: decimal.RequireFromString("60.00")},
			{TransactionID: second.TransactionID, Amount: decimal.RequireFromString("5.00")},
		},
	}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, first.TransactionID).
		Return(first, nil).Once()
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, second.TransactionID).
		Return(second, nil).Once()
	suite.expectAccountLookup()
	suite.mockTransactionRepo.On("BatchUpdateAmountsTx", ctx, mock.MatchedBy(func(ms []portsrepo.BalanceMutation) bool {
		return len(ms) == 2 &&
			ms[0].Delta.Equal(decimal.RequireFromString("10.00")) &&
			ms[1].Delta.Equal(decimal.RequireFromString("-5.00"))
	})).Return(nil).Once()

	resp, err := suite.service.BatchUpdateAmounts(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Equal(2, resp.UpdatedCount)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestBatchUpdateAmounts_DenialAbortsWholeBatch() {
	ctx := context.Background()
	mine := suite.existingIncomeTransaction("50.00")
	theirsAccount := domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.otherUser.UserID,
	}
	theirs := &domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     theirsAccount.AccountID,
		CategoryID:    suite.incomeCategory.CategoryID,
		Amount:        decimal.RequireFromString("10.00"),
		Type:          domain.CategoryIncome,
	}
	req := dto.BatchUpdateRequest{
		Transactions: []dto.BatchUpdateItem{
			{TransactionID: mine.TransactionID, Amount: decimal.RequireFromString("60.00")},
			{TransactionID: theirs.TransactionID, Amount: decimal.RequireFromString("5.00")},
		},
	}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, mine.TransactionID).
		Return(mine, nil).Once()
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, theirs.TransactionID).
		Return(theirs, nil).Once()
	suite.expectAccountLookup()
	suite.mockAccountRepo.On("FindAccountByID", ctx, theirsAccount.AccountID).
		Return(&theirsAccount, nil).Once()

	_, err := suite.service.BatchUpdateAmounts(ctx, suite.owner, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "BatchUpdateAmountsTx", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestBatchUpdateAmounts_DuplicateIDLastWins() {
	ctx := context.Background()
	existing := suite.existingIncomeTransaction("50.00")
	req := dto.BatchUpdateRequest{
		Transactions: []dto.BatchUpdateItem{
			{TransactionID: existing.TransactionID, Amount: decimal.RequireFromString("60.00")},
			{TransactionID: existing.TransactionID, Amount: decimal.RequireFromString("70.00")},
		},
	}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, existing.TransactionID).
		Return(existing, nil).Once()
	suite.expectAccountLookup()
	// The row ends at 70.00, so the balance must move by exactly 20.00: one
	// mutation for the id, never one per duplicate.
	suite.mockTransactionRepo.On("BatchUpdateAmountsTx", ctx, mock.MatchedBy(func(ms []portsrepo.BalanceMutation) bool {
		return len(ms) == 1 &&
			ms[0].Delta.Equal(decimal.RequireFromString("20.00")) &&
			ms[0].Transaction.Amount.Equal(decimal.RequireFromString("70.00")) &&
			ms[0].Audit.NewAmount != nil && ms[0].Audit.NewAmount.Equal(decimal.RequireFromString("70.00"))
	})).Return(nil).Once()

	resp, err := suite.service.BatchUpdateAmounts(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Equal(1, resp.UpdatedCount)
	suite.mockTransactionRepo.AssertNumberOfCalls(suite.T(), "FindTransactionByID", 1)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

// --- GetTransactionByID ---

func (suite *LedgerServiceTestSuite) TestGetTransactionByID_ForbiddenForNonOwner() {
	ctx := context.Background()
	existing := suite.existingIncomeTransaction("50.00")

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, existing.TransactionID).
		Return(existing, nil).Once()
	suite.expectAccountLookup()

	_, err := suite.service.GetTransactionByID(ctx, suite.otherUser, existing.TransactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *LedgerServiceTestSuite) TestGetTransactionByID_AdminSeesAll() {
	ctx := context.Background()
	admin := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	existing := suite.existingIncomeTransaction("50.00")

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, existing.TransactionID).
		Return(existing, nil).Once()
	suite.expectAccountLookup()

	got, err := suite.service.GetTransactionByID(ctx, admin, existing.TransactionID)

	suite.Require().NoError(err)
	suite.Equal(existing.TransactionID, got.TransactionID)
}

// --- SearchTransactions ---

func (suite *LedgerServiceTestSuite) TestSearchTransactions_PaginatesInMemory() {
	ctx := context.Background()
	results := make([]domain.Transaction, 4)
	for i := range results {
		results[i] = *suite.existingIncomeTransaction("100.00")
	}

	suite.mockTransactionRepo.On("SearchByMinAmount", ctx, &suite.owner.UserID, decimal.RequireFromString("50")).
		Return(results, nil).Once()

	page, total, err := suite.service.SearchTransactions(ctx, suite.owner, dto.SearchTransactionsParams{
		Page:      2,
		PerPage:   3,
		MinAmount: "50",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(page, 1)
}

func (suite *LedgerServiceTestSuite) TestSearchTransactions_QOverridesAlias() {
	ctx := context.Background()

	suite.mockTransactionRepo.On("SearchByMinAmount", ctx, &suite.owner.UserID, decimal.RequireFromString("25")).
		Return([]domain.Transaction{}, nil).Once()

	_, total, err := suite.service.SearchTransactions(ctx, suite.owner, dto.SearchTransactionsParams{
		Q:         "25",
		MinAmount: "999",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(0), total)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSearchTransactions_InvalidMinAmount() {
	ctx := context.Background()

	_, _, err := suite.service.SearchTransactions(ctx, suite.owner, dto.SearchTransactionsParams{
		MinAmount: "not-a-number",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SearchByMinAmount", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
