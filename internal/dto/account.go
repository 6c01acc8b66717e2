package dto

import (
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest creates an account for the caller, or for UserID when
// an admin creates one on behalf of another user.
type CreateAccountRequest struct {
	Name          string           `json:"name" binding:"required,max=255"`
	UserID        *string          `json:"userID" binding:"omitempty,uuid"`
	Balance       *decimal.Decimal `json:"balance"`
	MonthlyBudget *decimal.Decimal `json:"monthlyBudget"`
}

// UpdateAccountRequest updates account attributes. Balance is deliberately
// absent: it only moves through the ledger service.
type UpdateAccountRequest struct {
	Name          *string          `json:"name" binding:"omitempty,max=255"`
	MonthlyBudget *decimal.Decimal `json:"monthlyBudget"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"per_page,default=15"`
}

// AccountResponse is the public shape of an account.
type AccountResponse struct {
	AccountID        string          `json:"accountID"`
	UserID           string          `json:"userID"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	MonthlyBudget    decimal.Decimal `json:"monthlyBudget"`
	LastMonthBalance decimal.Decimal `json:"lastMonthBalance"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ListAccountsResponse wraps the paginated account list.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Meta     pagination.Meta   `json:"meta"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        a.AccountID,
		UserID:           a.UserID,
		Name:             a.Name,
		Balance:          a.Balance,
		MonthlyBudget:    a.MonthlyBudget,
		LastMonthBalance: a.LastMonthBalance,
		CreatedAt:        a.CreatedAt,
	}
}

// ToListAccountsResponse converts domain accounts plus meta to the list DTO.
func ToListAccountsResponse(accounts []domain.Account, meta pagination.Meta) ListAccountsResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: out, Meta: meta}
}
