package dto

import (
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

// FinancialOverviewResponse wraps the per-user overview rows.
type FinancialOverviewResponse struct {
	Data        []domain.UserOverview `json:"data"`
	IsAdminView bool                  `json:"isAdminView"`
	GeneratedAt time.Time             `json:"generatedAt"`
}

// MonthlyTrendsParams defines query parameters for the trend series.
type MonthlyTrendsParams struct {
	Months int `form:"months,default=12" binding:"omitempty,min=1,max=60"`
}

// MonthlyTrendsResponse wraps the month-bucketed trend series.
type MonthlyTrendsResponse struct {
	Trends      []domain.MonthlyTrend `json:"trends"`
	Period      string                `json:"period"`
	GeneratedAt time.Time             `json:"generatedAt"`
}

// CategoryAnalysisResponse wraps per-category aggregates.
type CategoryAnalysisResponse struct {
	Analysis    []domain.CategoryAnalysisRow `json:"analysis"`
	GeneratedAt time.Time                    `json:"generatedAt"`
}

// AuditLogParams defines query parameters for the audit-log view.
type AuditLogParams struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"per_page,default=20"`
}

// AuditLogResponse wraps the paginated audit trail.
type AuditLogResponse struct {
	Data []domain.TransactionAudit `json:"data"`
	Meta pagination.Meta           `json:"meta"`
}
