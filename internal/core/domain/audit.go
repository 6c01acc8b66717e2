package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditAction identifies the kind of transaction mutation an audit row records.
type AuditAction string

const (
	AuditInsert AuditAction = "INSERT"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// TransactionAudit is one append-only row of the audit trail. Rows are written
// by the ledger service in the same database transaction as the mutation they
// record and are never updated or deleted by the application.
type TransactionAudit struct {
	AuditID       int64            `json:"auditID"`
	TransactionID string           `json:"transactionID"`
	Action        AuditAction      `json:"action"`
	OldAmount     *decimal.Decimal `json:"oldAmount,omitempty"`
	NewAmount     *decimal.Decimal `json:"newAmount,omitempty"`
	ChangedBy     *string          `json:"changedBy,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`

	// Joined display fields for the audit-log view.
	AccountName   string `json:"accountName,omitempty"`
	CategoryName  string `json:"categoryName,omitempty"`
	ChangedByName string `json:"changedByName,omitempty"`
}
