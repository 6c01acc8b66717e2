package repositories

import (
	"context"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

// ReportingRepository serves the read-only analytics queries. All methods take
// an optional owner scope: nil means unscoped (admin view). Reads run outside
// the balance engine's locks; slightly stale aggregates are acceptable.
type ReportingRepository interface {
	GetFinancialOverview(ctx context.Context, ownerID *string) ([]domain.UserOverview, error)
	GetMonthlyTrends(ctx context.Context, ownerID *string, months int) ([]domain.MonthlyTrend, error)
	GetCategoryAnalysis(ctx context.Context, ownerID *string) ([]domain.CategoryAnalysisRow, error)
	ListAuditLog(ctx context.Context, ownerID *string, page pagination.Params) ([]domain.TransactionAudit, int64, error)
	GetSystemStats(ctx context.Context) (*domain.SystemStats, error)
	GetUserStatistics(ctx context.Context, userID string) (*domain.UserStatistics, error)
}
