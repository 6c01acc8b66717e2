package services

import (
	"context"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
)

// AccountSvcFacade is the account management surface. Balances are read-only
// here; only the transaction ledger mutates them.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, p domain.Principal, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, p domain.Principal, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, p domain.Principal, params dto.ListAccountsParams) ([]domain.Account, int64, error)
	UpdateAccount(ctx context.Context, p domain.Principal, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, p domain.Principal, accountID string) error
}
