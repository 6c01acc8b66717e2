package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserOverview is one row of the financial overview: aggregate figures for a
// single user. Admins see one row per user, regular users only their own.
type UserOverview struct {
	UserID            string          `json:"userID"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	TotalAccounts     int64           `json:"totalAccounts"`
	TotalBalance      decimal.Decimal `json:"totalBalance"`
	TotalTransactions int64           `json:"totalTransactions"`
	QuarterlyIncome   decimal.Decimal `json:"quarterlyIncome"`
	QuarterlyExpenses decimal.Decimal `json:"quarterlyExpenses"`
	MostUsedCategory  *string         `json:"mostUsedCategory,omitempty"`
}

// MonthlyTrend is one month bucket of the trend series.
type MonthlyTrend struct {
	Month            string          `json:"month"` // YYYY-MM
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TransactionCount int64           `json:"transactionCount"`
	UniqueCategories int64           `json:"uniqueCategories"`
	AvgExpenseAmount decimal.Decimal `json:"avgExpenseAmount"`
	MaxIncomeAmount  decimal.Decimal `json:"maxIncomeAmount"`
}

// CategoryAnalysisRow aggregates all transactions of one category, with ranks
// computed over the visible set (amount rank by total, frequency rank by count).
type CategoryAnalysisRow struct {
	CategoryID       string          `json:"categoryID"`
	Name             string          `json:"name"`
	Type             CategoryType    `json:"type"`
	TransactionCount int64           `json:"transactionCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	AvgAmount        decimal.Decimal `json:"avgAmount"`
	FirstTransaction *time.Time      `json:"firstTransaction,omitempty"`
	LastTransaction  *time.Time      `json:"lastTransaction,omitempty"`
	AmountRank       int64           `json:"amountRank"`
	FrequencyRank    int64           `json:"frequencyRank"`
}

// SystemStats are the admin dashboard totals.
type SystemStats struct {
	TotalUsers        int64           `json:"totalUsers"`
	TotalAccounts     int64           `json:"totalAccounts"`
	TotalTransactions int64           `json:"totalTransactions"`
	TotalBalance      decimal.Decimal `json:"totalBalance"`
	TotalCategories   int64           `json:"totalCategories"`
}

// UserWithStatistics pairs a user with the aggregate figures shown on the
// admin user listing.
type UserWithStatistics struct {
	User       User
	Statistics UserStatistics
}

// UserStatistics are per-user figures attached to admin user listings.
type UserStatistics struct {
	TotalAccounts     int64           `json:"totalAccounts"`
	TotalCategories   int64           `json:"totalCategories"`
	TotalBalance      decimal.Decimal `json:"totalBalance"`
	TotalTransactions int64           `json:"totalTransactions"`
	MonthlyIncome     decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense    decimal.Decimal `json:"monthlyExpense"`
	MonthlyNet        decimal.Decimal `json:"monthlyNet"`
}
