package mapping

import (
	"database/sql"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its database model.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		CategoryID:      d.CategoryID,
		Amount:          d.Amount,
		Type:            string(d.Type),
		TransactionDate: d.TransactionDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if d.Description != "" {
		m.Description = sql.NullString{String: d.Description, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a models.Transaction to its domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		CategoryID:      m.CategoryID,
		Amount:          m.Amount,
		Type:            domain.CategoryType(m.Type),
		TransactionDate: m.TransactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
		AccountName:  m.AccountName,
		CategoryName: m.CategoryName,
	}
	if m.Description.Valid {
		d.Description = m.Description.String
	}
	return d
}

// ToDomainTransactionSlice converts a slice of models.Transaction to domain transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
