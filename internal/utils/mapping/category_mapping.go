package mapping

import (
	"database/sql"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/models"
)

// ToModelCategory converts a domain.Category to its database model.
func ToModelCategory(d domain.Category) models.Category {
	m := models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		Type:       string(d.Type),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
		DeletedAt: d.DeletedAt,
	}
	if d.UserID != nil {
		m.UserID = sql.NullString{String: *d.UserID, Valid: true}
	}
	return m
}

// ToDomainCategory converts a models.Category to its domain representation.
func ToDomainCategory(m models.Category) domain.Category {
	d := domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Type:       domain.CategoryType(m.Type),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
		DeletedAt: m.DeletedAt,
	}
	if m.UserID.Valid {
		uid := m.UserID.String
		d.UserID = &uid
	}
	return d
}

// ToDomainCategorySlice converts a slice of models.Category to domain categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
