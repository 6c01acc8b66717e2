package services

import (
	"context"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
)

// ReportingSvcFacade serves the analytics and audit read models. All results
// are scoped through the authorizer: admins see everything, users only their
// own data.
type ReportingSvcFacade interface {
	GetFinancialOverview(ctx context.Context, p domain.Principal) ([]domain.UserOverview, error)
	GetMonthlyTrends(ctx context.Context, p domain.Principal, params dto.MonthlyTrendsParams) ([]domain.MonthlyTrend, error)
	GetCategoryAnalysis(ctx context.Context, p domain.Principal) ([]domain.CategoryAnalysisRow, error)
	ListAuditLog(ctx context.Context, p domain.Principal, params dto.AuditLogParams) ([]domain.TransactionAudit, int64, error)
	GetSystemStats(ctx context.Context, p domain.Principal) (*domain.SystemStats, error)
}
