package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a financial account owned by a single user.
// Balance is a persisted aggregate: it always equals the sum of the signed
// effective amounts of the account's transactions and is only ever adjusted
// by the ledger service, atomically with a transaction write.
type Account struct {
	AccountID        string          `json:"accountID"`
	UserID           string          `json:"userID"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	MonthlyBudget    decimal.Decimal `json:"monthlyBudget"`
	LastMonthBalance decimal.Decimal `json:"lastMonthBalance"`
	AuditFields
}
