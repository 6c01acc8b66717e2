package dto

import (
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// TransactionDateFormat is the wire format for transaction dates.
const TransactionDateFormat = "2006-01-02"

// CreateTransactionRequest creates a transaction. Amount is the magnitude;
// whether it adds to or subtracts from the balance follows from the category.
type CreateTransactionRequest struct {
	AccountID       string          `json:"accountID" binding:"required,uuid"`
	CategoryID      string          `json:"categoryID" binding:"required,uuid"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     string          `json:"description" binding:"omitempty,max=1000"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest updates amount, category, date or description.
// The owning account never changes; move money by delete and re-create.
type UpdateTransactionRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	CategoryID      *string          `json:"categoryID" binding:"omitempty,uuid"`
	Description     *string          `json:"description" binding:"omitempty,max=1000"`
	TransactionDate *string          `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Page       int    `form:"page,default=1"`
	PerPage    int    `form:"per_page,default=15"`
	AccountID  string `form:"account_id" binding:"omitempty,uuid"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	Type       string `form:"type" binding:"omitempty,oneof=income expense"`
	MinAmount  string `form:"min_amount" binding:"omitempty,numeric"`
	MaxAmount  string `form:"max_amount" binding:"omitempty,numeric"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

// SearchTransactionsParams defines the parameters of the amount search
// endpoint. q is the threshold; everything at or above it matches.
// min_amount is accepted as an alias for q.
type SearchTransactionsParams struct {
	Page      int    `form:"page,default=1"`
	PerPage   int    `form:"per_page,default=15"`
	Q         string `form:"q" binding:"required_without=MinAmount,omitempty,numeric"`
	MinAmount string `form:"min_amount" binding:"omitempty,numeric"`
}

// AmountQuery returns the effective search threshold.
func (p SearchTransactionsParams) AmountQuery() string {
	if p.Q != "" {
		return p.Q
	}
	return p.MinAmount
}

// TransactionResponse is the public shape of a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	CategoryID      string          `json:"categoryID"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Description     string          `json:"description,omitempty"`
	TransactionDate string          `json:"transactionDate"`
	AccountName     string          `json:"accountName,omitempty"`
	CategoryName    string          `json:"categoryName,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps the paginated transaction list.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Meta         pagination.Meta       `json:"meta"`
}

// BatchUpdateItem is one entry of a batch amount update.
type BatchUpdateItem struct {
	TransactionID string          `json:"transactionID" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// BatchUpdateRequest applies a list of amount updates as one atomic batch.
type BatchUpdateRequest struct {
	Transactions []BatchUpdateItem `json:"transactions" binding:"required,min=1,dive"`
}

// BatchUpdateResponse reports the applied batch.
type BatchUpdateResponse struct {
	Message      string `json:"message"`
	UpdatedCount int    `json:"updatedCount"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		Type:            string(t.Type),
		Description:     t.Description,
		TransactionDate: t.TransactionDate.Format(TransactionDateFormat),
		AccountName:     t.AccountName,
		CategoryName:    t.CategoryName,
		CreatedAt:       t.CreatedAt,
	}
}

// ToListTransactionsResponse converts domain transactions plus meta to the list DTO.
func ToListTransactionsResponse(transactions []domain.Transaction, meta pagination.Meta) ListTransactionsResponse {
	out := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		out[i] = ToTransactionResponse(&transactions[i])
	}
	return ListTransactionsResponse{Transactions: out, Meta: meta}
}
