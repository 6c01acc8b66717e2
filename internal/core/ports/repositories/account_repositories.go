package repositories

import (
	"context"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated account list, scoped to ownerID when
	// non-nil (nil means unscoped, admin view), plus the total count.
	ListAccounts(ctx context.Context, ownerID *string, page pagination.Params) ([]domain.Account, int64, error)
}

// AccountWriter defines write operations for account data. Balance is NOT
// writable through this interface; only the transaction repository adjusts it,
// atomically with a transaction mutation.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates name and budget fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account; the database cascades to its transactions.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
