package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionAudit represents a row of the append-only transaction_audit table.
type TransactionAudit struct {
	AuditID       int64               `db:"audit_id"`
	TransactionID string              `db:"transaction_id"`
	Action        string              `db:"action"`
	OldAmount     decimal.NullDecimal `db:"old_amount"`
	NewAmount     decimal.NullDecimal `db:"new_amount"`
	ChangedBy     sql.NullString      `db:"changed_by"`
	CreatedAt     time.Time           `db:"created_at"`
}
