package repositories

import (
	"context"
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ListTransactionsFilter narrows the transaction listing.
type ListTransactionsFilter struct {
	OwnerID      *string // nil = unscoped (admin)
	AccountID    *string
	CategoryID   *string
	CategoryType *domain.CategoryType
	MinAmount    *decimal.Decimal
	MaxAmount    *decimal.Decimal
	DateFrom     *time.Time
	DateTo       *time.Time
	Page         pagination.Params
}

// BalanceMutation bundles a transaction write with its effect on the owning
// account's balance and the audit row recording it. The repository applies all
// three in one database transaction.
type BalanceMutation struct {
	Transaction domain.Transaction
	Delta       decimal.Decimal
	Audit       domain.TransactionAudit
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with joined account and
	// category names. The account owner is resolvable via the account.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, paginated transaction list plus
	// the total count.
	ListTransactions(ctx context.Context, filter ListTransactionsFilter) ([]domain.Transaction, int64, error)

	// SearchByMinAmount returns all visible transactions with amount >= min.
	SearchByMinAmount(ctx context.Context, ownerID *string, min decimal.Decimal) ([]domain.Transaction, error)
}

// TransactionWriter is the storage side of the balance maintenance engine.
// Every method runs as a single database transaction: the transaction row
// write, the balance delta applied under a FOR UPDATE row lock on the account,
// and the audit insert commit or roll back together. Serialization and
// deadlock failures surface as apperrors.ErrConflict for the caller to retry.
type TransactionWriter interface {
	CreateTransactionTx(ctx context.Context, m BalanceMutation) error
	UpdateTransactionTx(ctx context.Context, m BalanceMutation) error
	DeleteTransactionTx(ctx context.Context, m BalanceMutation) error

	// BatchUpdateAmountsTx applies every mutation in one database transaction;
	// if any fails, none are applied.
	BatchUpdateAmountsTx(ctx context.Context, ms []BalanceMutation) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
