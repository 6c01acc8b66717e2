package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry against an account.
// Amount holds the magnitude entered by the user; the sign of its
// contribution to the account balance is derived from the category type.
// Type mirrors the category's type at write time for cheap filtering and is
// recomputed by the ledger service whenever the category changes.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	CategoryID      string          `json:"categoryID"`
	Amount          decimal.Decimal `json:"amount"`
	Type            CategoryType    `json:"type"`
	Description     string          `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields

	// Denormalized for list/detail responses; populated by joined queries.
	AccountName  string `json:"accountName,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

// EffectiveAmount returns the signed contribution of the transaction to its
// account's balance: +amount for income, -|amount| for expense.
func (t Transaction) EffectiveAmount() decimal.Decimal {
	return EffectiveAmount(t.Amount, t.Type)
}

// EffectiveAmount computes the signed balance contribution of an amount under
// a category type.
func EffectiveAmount(amount decimal.Decimal, categoryType CategoryType) decimal.Decimal {
	if categoryType == CategoryIncome {
		return amount
	}
	return amount.Abs().Neg()
}
