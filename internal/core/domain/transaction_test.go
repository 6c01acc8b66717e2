package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
)

func TestEffectiveAmount(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		categoryType domain.CategoryType
		want         string
	}{
		{"income keeps sign", "50.00", domain.CategoryIncome, "50.00"},
		{"expense negates", "20.00", domain.CategoryExpense, "-20.00"},
		{"expense of negative magnitude still subtracts", "-20.00", domain.CategoryExpense, "-20.00"},
		{"zero stays zero", "0", domain.CategoryIncome, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.EffectiveAmount(decimal.RequireFromString(tt.amount), tt.categoryType)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestTransactionEffectiveAmount(t *testing.T) {
	tx := domain.Transaction{
		Amount: decimal.RequireFromString("12.34"),
		Type:   domain.CategoryExpense,
	}
	assert.True(t, tx.EffectiveAmount().Equal(decimal.RequireFromString("-12.34")))

	tx.Type = domain.CategoryIncome
	assert.True(t, tx.EffectiveAmount().Equal(decimal.RequireFromString("12.34")))
}

func TestCategoryTypeIsValid(t *testing.T) {
	assert.True(t, domain.CategoryIncome.IsValid())
	assert.True(t, domain.CategoryExpense.IsValid())
	assert.False(t, domain.CategoryType("transfer").IsValid())
}
