package services

import (
	"context"
	"log/slog"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portsrepo "github.com/budzetiranje/budget_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

const (
	defaultTrendMonths = 12
	maxTrendMonths     = 60
)

// reportingServiceImpl implements ReportingSvcFacade. Every query is scoped
// through the authorizer before it reaches the repository, so the SQL never
// sees data the principal may not read.
type reportingServiceImpl struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	authorizer    portssvc.AuthorizerSvc
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository, authorizer portssvc.AuthorizerSvc) portssvc.ReportingSvcFacade {
	return &reportingServiceImpl{
		reportingRepo: repo,
		authorizer:    authorizer,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingServiceImpl)(nil)

func (s *reportingServiceImpl) GetFinancialOverview(ctx context.Context, p domain.Principal) ([]domain.UserOverview, error) {
	overview, err := s.reportingRepo.GetFinancialOverview(ctx, s.authorizer.ScopeToOwner(p))
	if err != nil {
		s.LogError(ctx, err, "Failed to load financial overview", slog.String("user_id", p.UserID))
		return nil, err
	}
	return overview, nil
}

func (s *reportingServiceImpl) GetMonthlyTrends(ctx context.Context, p domain.Principal, params dto.MonthlyTrendsParams) ([]domain.MonthlyTrend, error) {
	months := params.Months
	if months <= 0 {
		months = defaultTrendMonths
	}
	if months > maxTrendMonths {
		months = maxTrendMonths
	}

	trends, err := s.reportingRepo.GetMonthlyTrends(ctx, s.authorizer.ScopeToOwner(p), months)
	if err != nil {
		s.LogError(ctx, err, "Failed to load monthly trends", slog.String("user_id", p.UserID))
		return nil, err
	}
	return trends, nil
}

func (s *reportingServiceImpl) GetCategoryAnalysis(ctx context.Context, p domain.Principal) ([]domain.CategoryAnalysisRow, error) {
	rows, err := s.reportingRepo.GetCategoryAnalysis(ctx, s.authorizer.ScopeToOwner(p))
	if err != nil {
		s.LogError(ctx, err, "Failed to load category analysis", slog.String("user_id", p.UserID))
		return nil, err
	}
	return rows, nil
}

func (s *reportingServiceImpl) ListAuditLog(ctx context.Context, p domain.Principal, params dto.AuditLogParams) ([]domain.TransactionAudit, int64, error) {
	page := pagination.Normalize(params.Page, params.PerPage)

	entries, total, err := s.reportingRepo.ListAuditLog(ctx, s.authorizer.ScopeToOwner(p), page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit log", slog.String("user_id", p.UserID))
		return nil, 0, err
	}
	return entries, total, nil
}

func (s *reportingServiceImpl) GetSystemStats(ctx context.Context, p domain.Principal) (*domain.SystemStats, error) {
	if err := s.authorizer.CanAccess(p, portssvc.GlobalResource(), portssvc.ActionManage); err != nil {
		s.LogWarn(ctx, "Denied system stats", slog.String("user_id", p.UserID))
		return nil, err
	}

	stats, err := s.reportingRepo.GetSystemStats(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load system stats")
		return nil, err
	}
	return stats, nil
}
