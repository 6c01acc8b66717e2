package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a row of the accounts table.
type Account struct {
	AccountID        string          `db:"account_id"`
	UserID           string          `db:"user_id"`
	Name             string          `db:"name"`
	Balance          decimal.Decimal `db:"balance"`
	MonthlyBudget    decimal.Decimal `db:"monthly_budget"`
	LastMonthBalance decimal.Decimal `db:"last_month_balance"`
	AuditFields
}
