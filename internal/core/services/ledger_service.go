package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/apperrors"
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portsrepo "github.com/budzetiranje/budget_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxConflictRetries bounds how often a mutation is retried after the
// database reports a serialization or deadlock failure.
const maxConflictRetries = 3

// ledgerServiceImpl implements TransactionSvcFacade. It is the only write
// path for transactions: every create, update and delete computes the signed
// balance delta for the owning account and hands the repository a
// BalanceMutation so the row write, the balance adjustment and the audit
// record commit or roll back together.
type ledgerServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
	authorizer      portssvc.AuthorizerSvc
}

// NewLedgerService creates the transaction ledger service.
func NewLedgerService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	authorizer portssvc.AuthorizerSvc,
) portssvc.TransactionSvcFacade {
	return &ledgerServiceImpl{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		authorizer:      authorizer,
	}
}

var _ portssvc.TransactionSvcFacade = (*ledgerServiceImpl)(nil)

// withConflictRetry runs fn, retrying when the repository reports
// apperrors.ErrConflict. Any other error aborts immediately.
func (s *ledgerServiceImpl) withConflictRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		s.LogWarn(ctx, "Retrying conflicting balance mutation",
			slog.Int("attempt", attempt),
			slog.Int("max_retries", maxConflictRetries))
	}
	return err
}

// resolveCategory loads a category and checks it is usable for new writes by
// the given account owner: it must not be tombstoned and must be either
// global or owned by the same user.
func (s *ledgerServiceImpl) resolveCategory(ctx context.Context, categoryID, ownerID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.IsDeleted() {
		return nil, apperrors.NewAppError(422, "category has been deleted", apperrors.ErrValidation)
	}
	if category.UserID != nil && *category.UserID != ownerID {
		return nil, apperrors.NewAppError(422, "category does not belong to the account owner", apperrors.ErrValidation)
	}
	return category, nil
}

func (s *ledgerServiceImpl) CreateTransaction(ctx context.Context, p domain.Principal, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(account.UserID), portssvc.ActionWrite); err != nil {
		s.LogWarn(ctx, "Denied transaction creation",
			slog.String("user_id", p.UserID),
			slog.String("account_id", req.AccountID))
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(422, "amount must be greater than zero", apperrors.ErrValidation)
	}
	category, err := s.resolveCategory(ctx, req.CategoryID, account.UserID)
	if err != nil {
		return nil, err
	}
	txDate, err := time.Parse(dto.TransactionDateFormat, req.TransactionDate)
	if err != nil {
		return nil, apperrors.NewAppError(422, "invalid transaction date", apperrors.ErrValidation)
	}

	now := time.Now()
	transaction := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       account.AccountID,
		CategoryID:      category.CategoryID,
		Amount:          req.Amount,
		Type:            category.Type,
		Description:     req.Description,
		TransactionDate: txDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newAmount := req.Amount
	changedBy := p.UserID
	mutation := portsrepo.BalanceMutation{
		Transaction: transaction,
		Delta:       transaction.EffectiveAmount(),
		Audit: domain.TransactionAudit{
			TransactionID: transaction.TransactionID,
			Action:        domain.AuditInsert,
			NewAmount:     &newAmount,
			ChangedBy:     &changedBy,
			CreatedAt:     now,
		},
	}

	err = s.withConflictRetry(ctx, func() error {
		return s.transactionRepo.CreateTransactionTx(ctx, mutation)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction",
			slog.String("transaction_id", transaction.TransactionID),
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", transaction.TransactionID),
		slog.String("account_id", account.AccountID),
		slog.String("delta", mutation.Delta.String()))
	transaction.AccountName = account.Name
	transaction.CategoryName = category.Name
	return &transaction, nil
}

func (s *ledgerServiceImpl) GetTransactionByID(ctx context.Context, p domain.Principal, transactionID string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, transaction.AccountID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(account.UserID), portssvc.ActionRead); err != nil {
		s.LogWarn(ctx, "Denied transaction read",
			slog.String("user_id", p.UserID),
			slog.String("transaction_id", transactionID))
		return nil, err
	}
	return transaction, nil
}

func (s *ledgerServiceImpl) ListTransactions(ctx context.Context, p domain.Principal, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error) {
	filter := portsrepo.ListTransactionsFilter{
		OwnerID: s.authorizer.ScopeToOwner(p),
		Page:    pagination.Normalize(params.Page, params.PerPage),
	}
	if params.AccountID != "" {
		filter.AccountID = &params.AccountID
	}
	if params.CategoryID != "" {
		filter.CategoryID = &params.CategoryID
	}
	if params.Type != "" {
		t := domain.CategoryType(params.Type)
		filter.CategoryType = &t
	}
	var err error
	if filter.MinAmount, err = parseOptionalDecimal(params.MinAmount); err != nil {
		return nil, 0, err
	}
	if filter.MaxAmount, err = parseOptionalDecimal(params.MaxAmount); err != nil {
		return nil, 0, err
	}
	if filter.DateFrom, err = parseOptionalDate(params.DateFrom); err != nil {
		return nil, 0, err
	}
	if filter.DateTo, err = parseOptionalDate(params.DateTo); err != nil {
		return nil, 0, err
	}

	transactions, total, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", p.UserID))
		return nil, 0, err
	}
	return transactions, total, nil
}

func (s *ledgerServiceImpl) UpdateTransaction(ctx context.Context, p domain.Principal, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, transaction.AccountID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(account.UserID), portssvc.ActionWrite); err != nil {
		s.LogWarn(ctx, "Denied transaction update",
			slog.String("user_id", p.UserID),
			slog.String("transaction_id", transactionID))
		return nil, err
	}
	if req.Amount == nil && req.CategoryID == nil && req.Description == nil && req.TransactionDate == nil {
		return nil, apperrors.NewAppError(422, "no updatable fields provided", apperrors.ErrValidation)
	}

	// The reversal of the old contribution uses the values the balance was
	// built from, before any field changes.
	oldAmount := transaction.Amount
	oldEffective := transaction.EffectiveAmount()

	if req.CategoryID != nil && *req.CategoryID != transaction.CategoryID {
		category, err := s.resolveCategory(ctx, *req.CategoryID, account.UserID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = category.CategoryID
		transaction.Type = category.Type
		transaction.CategoryName = category.Name
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewAppError(422, "amount must be greater than zero", apperrors.ErrValidation)
		}
		transaction.Amount = *req.Amount
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.TransactionDate != nil {
		txDate, err := time.Parse(dto.TransactionDateFormat, *req.TransactionDate)
		if err != nil {
			return nil, apperrors.NewAppError(422, "invalid transaction date", apperrors.ErrValidation)
		}
		transaction.TransactionDate = txDate
	}
	transaction.LastUpdatedAt = time.Now()

	newAmount := transaction.Amount
	changedBy := p.UserID
	mutation := portsrepo.BalanceMutation{
		Transaction: *transaction,
		Delta:       transaction.EffectiveAmount().Sub(oldEffective),
		Audit: domain.TransactionAudit{
			TransactionID: transaction.TransactionID,
			Action:        domain.AuditUpdate,
			OldAmount:     &oldAmount,
			NewAmount:     &newAmount,
			ChangedBy:     &changedBy,
			CreatedAt:     transaction.LastUpdatedAt,
		},
	}

	err = s.withConflictRetry(ctx, func() error {
		return s.transactionRepo.UpdateTransactionTx(ctx, mutation)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("delta", mutation.Delta.String()))
	return transaction, nil
}

func (s *ledgerServiceImpl) DeleteTransaction(ctx context.Context, p domain.Principal, transactionID string) error {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, transaction.AccountID)
	if err != nil {
		return err
	}
	if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(account.UserID), portssvc.ActionWrite); err != nil {
		s.LogWarn(ctx, "Denied transaction deletion",
			slog.String("user_id", p.UserID),
			slog.String("transaction_id", transactionID))
		return err
	}

	oldAmount := transaction.Amount
	changedBy := p.UserID
	mutation := portsrepo.BalanceMutation{
		Transaction: *transaction,
		Delta:       transaction.EffectiveAmount().Neg(),
		Audit: domain.TransactionAudit{
			TransactionID: transaction.TransactionID,
			Action:        domain.AuditDelete,
			OldAmount:     &oldAmount,
			ChangedBy:     &changedBy,
			CreatedAt:     time.Now(),
		},
	}

	err = s.withConflictRetry(ctx, func() error {
		return s.transactionRepo.DeleteTransactionTx(ctx, mutation)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("delta", mutation.Delta.String()))
	return nil
}

func (s *ledgerServiceImpl) SearchTransactions(ctx context.Context, p domain.Principal, params dto.SearchTransactionsParams) ([]domain.Transaction, int64, error) {
	min, err := decimal.NewFromString(params.AmountQuery())
	if err != nil {
		return nil, 0, apperrors.NewAppError(422, "invalid search amount", apperrors.ErrValidation)
	}

	transactions, err := s.transactionRepo.SearchByMinAmount(ctx, s.authorizer.ScopeToOwner(p), min)
	if err != nil {
		s.LogError(ctx, err, "Failed to search transactions", slog.String("user_id", p.UserID))
		return nil, 0, err
	}

	// The search is bounded in practice; paginate in memory.
	page := pagination.Normalize(params.Page, params.PerPage)
	total := int64(len(transactions))
	start := page.Offset()
	if start >= len(transactions) {
		return []domain.Transaction{}, total, nil
	}
	end := start + page.PerPage
	if end > len(transactions) {
		end = len(transactions)
	}
	return transactions[start:end], total, nil
}

func (s *ledgerServiceImpl) BatchUpdateAmounts(ctx context.Context, p domain.Principal, req dto.BatchUpdateRequest) (*dto.BatchUpdateResponse, error) {
	// A transaction id may appear more than once in a batch. The last amount
	// wins, and its delta is computed once against the stored row; summing a
	// delta per duplicate would move the balance further than the row.
	items := make([]dto.BatchUpdateItem, 0, len(req.Transactions))
	seen := make(map[string]int, len(req.Transactions))
	for _, item := range req.Transactions {
		if !item.Amount.IsPositive() {
			return nil, apperrors.NewAppError(422,
				fmt.Sprintf("amount must be greater than zero for transaction %s", item.TransactionID),
				apperrors.ErrValidation)
		}
		if idx, ok := seen[item.TransactionID]; ok {
			items[idx].Amount = item.Amount
			continue
		}
		seen[item.TransactionID] = len(items)
		items = append(items, item)
	}

	mutations := make([]portsrepo.BalanceMutation, 0, len(items))
	now := time.Now()
	changedBy := p.UserID

	for _, item := range items {
		transaction, err := s.transactionRepo.FindTransactionByID(ctx, item.TransactionID)
		if err != nil {
			return nil, err
		}
		account, err := s.accountRepo.FindAccountByID(ctx, transaction.AccountID)
		if err != nil {
			return nil, err
		}
		if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(account.UserID), portssvc.ActionWrite); err != nil {
			s.LogWarn(ctx, "Denied batch transaction update",
				slog.String("user_id", p.UserID),
				slog.String("transaction_id", item.TransactionID))
			return nil, err
		}

		oldAmount := transaction.Amount
		oldEffective := transaction.EffectiveAmount()
		newAmount := item.Amount
		transaction.Amount = item.Amount
		transaction.LastUpdatedAt = now

		mutations = append(mutations, portsrepo.BalanceMutation{
			Transaction: *transaction,
			Delta:       transaction.EffectiveAmount().Sub(oldEffective),
			Audit: domain.TransactionAudit{
				TransactionID: transaction.TransactionID,
				Action:        domain.AuditUpdate,
				OldAmount:     &oldAmount,
				NewAmount:     &newAmount,
				ChangedBy:     &changedBy,
				CreatedAt:     now,
			},
		})
	}

	err := s.withConflictRetry(ctx, func() error {
		return s.transactionRepo.BatchUpdateAmountsTx(ctx, mutations)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to apply batch transaction update",
			slog.Int("count", len(mutations)))
		return nil, err
	}

	s.LogInfo(ctx, "Batch transaction update applied", slog.Int("count", len(mutations)))
	return &dto.BatchUpdateResponse{
		Message:      "transactions updated",
		UpdatedCount: len(mutations),
	}, nil
}

func parseOptionalDecimal(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperrors.NewAppError(422, "invalid amount filter", apperrors.ErrValidation)
	}
	return &d, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.TransactionDateFormat, raw)
	if err != nil {
		return nil, apperrors.NewAppError(422, "invalid date filter", apperrors.ErrValidation)
	}
	return &t, nil
}
