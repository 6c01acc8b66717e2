package mapping

import (
	"database/sql"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/models"
)

// ToModelUser converts a domain.User to its database model.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	if d.ResetTokenHash != "" {
		m.ResetTokenHash = sql.NullString{String: d.ResetTokenHash, Valid: true}
	}
	if d.ResetTokenExpiryTime != nil {
		m.ResetTokenExpiryTime = sql.NullTime{Time: *d.ResetTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUser converts a models.User to its domain representation.
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	if m.ResetTokenHash.Valid {
		d.ResetTokenHash = m.ResetTokenHash.String
	}
	if m.ResetTokenExpiryTime.Valid {
		t := m.ResetTokenExpiryTime.Time
		d.ResetTokenExpiryTime = &t
	}
	return d
}

// ToDomainUserSlice converts a slice of models.User to domain users.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
