package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the transactions table. Type is the
// denormalized copy of the category's type taken at write time.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	CategoryID      string          `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	Type            string          `db:"type"`
	Description     sql.NullString  `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields

	// Joined columns, only populated by list/detail queries.
	AccountName  string `db:"account_name"`
	CategoryName string `db:"category_name"`
}
