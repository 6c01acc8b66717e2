package mapping

import (
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/models"
)

// ToModelAccount converts a domain.Account to its database model.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:        d.AccountID,
		UserID:           d.UserID,
		Name:             d.Name,
		Balance:          d.Balance,
		MonthlyBudget:    d.MonthlyBudget,
		LastMonthBalance: d.LastMonthBalance,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a models.Account to its domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        m.AccountID,
		UserID:           m.UserID,
		Name:             m.Name,
		Balance:          m.Balance,
		MonthlyBudget:    m.MonthlyBudget,
		LastMonthBalance: m.LastMonthBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainAccountSlice converts a slice of models.Account to domain accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
