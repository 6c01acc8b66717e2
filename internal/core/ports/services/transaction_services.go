package services

import (
	"context"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
)

// TransactionSvcFacade is the ledger: the only write path for transactions,
// and through them for account balances. Every mutation also records an
// audit row, all within one database transaction.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, p domain.Principal, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, p domain.Principal, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, p domain.Principal, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error)
	UpdateTransaction(ctx context.Context, p domain.Principal, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, p domain.Principal, transactionID string) error
	SearchTransactions(ctx context.Context, p domain.Principal, params dto.SearchTransactionsParams) ([]domain.Transaction, int64, error)
	BatchUpdateAmounts(ctx context.Context, p domain.Principal, req dto.BatchUpdateRequest) (*dto.BatchUpdateResponse, error)
}
