package mapping

import (
	"database/sql"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelAudit converts a domain.TransactionAudit to its DB representation.
func ToModelAudit(d domain.TransactionAudit) models.TransactionAudit {
	m := models.TransactionAudit{
		AuditID:       d.AuditID,
		TransactionID: d.TransactionID,
		Action:        string(d.Action),
		CreatedAt:     d.CreatedAt,
	}
	if d.OldAmount != nil {
		m.OldAmount = decimal.NullDecimal{Decimal: *d.OldAmount, Valid: true}
	}
	if d.NewAmount != nil {
		m.NewAmount = decimal.NullDecimal{Decimal: *d.NewAmount, Valid: true}
	}
	if d.ChangedBy != nil {
		m.ChangedBy = sql.NullString{String: *d.ChangedBy, Valid: true}
	}
	return m
}

// ToDomainAudit converts a models.TransactionAudit to its domain representation.
func ToDomainAudit(m models.TransactionAudit) domain.TransactionAudit {
	d := domain.TransactionAudit{
		AuditID:       m.AuditID,
		TransactionID: m.TransactionID,
		Action:        domain.AuditAction(m.Action),
		CreatedAt:     m.CreatedAt,
	}
	if m.OldAmount.Valid {
		v := m.OldAmount.Decimal
		d.OldAmount = &v
	}
	if m.NewAmount.Valid {
		v := m.NewAmount.Decimal
		d.NewAmount = &v
	}
	if m.ChangedBy.Valid {
		v := m.ChangedBy.String
		d.ChangedBy = &v
	}
	return d
}
