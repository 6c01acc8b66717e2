package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/budzetiranje/budget_tracking_app/internal/apperrors"
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/core/services"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade

	user  domain.Principal
	admin domain.Principal
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo, services.NewAuthorizer())
	suite.user = domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	suite.admin = domain.Principal{UserID: uuid.NewString(), Role: domain.RoleAdmin}
}

func (suite *ReportingServiceTestSuite) TestGetFinancialOverview_ScopedForUser() {
	ctx := context.Background()
	rows := []domain.UserOverview{{UserID: suite.user.UserID}}

	suite.mockRepo.On("GetFinancialOverview", ctx, &suite.user.UserID).Return(rows, nil).Once()

	got, err := suite.service.GetFinancialOverview(ctx, suite.user)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetFinancialOverview_UnscopedForAdmin() {
	ctx := context.Background()

	suite.mockRepo.On("GetFinancialOverview", ctx, (*string)(nil)).Return([]domain.UserOverview{}, nil).Once()

	_, err := suite.service.GetFinancialOverview(ctx, suite.admin)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetMonthlyTrends_ClampsWindow() {
	ctx := context.Background()

	suite.mockRepo.On("GetMonthlyTrends", ctx, &suite.user.UserID, 12).Return([]domain.MonthlyTrend{}, nil).Once()
	_, err := suite.service.GetMonthlyTrends(ctx, suite.user, dto.MonthlyTrendsParams{Months: 0})
	suite.Require().NoError(err)

	suite.mockRepo.On("GetMonthlyTrends", ctx, &suite.user.UserID, 60).Return([]domain.MonthlyTrend{}, nil).Once()
	_, err = suite.service.GetMonthlyTrends(ctx, suite.user, dto.MonthlyTrendsParams{Months: 240})
	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestListAuditLog_NormalizesPagination() {
	ctx := context.Background()

	suite.mockRepo.On("ListAuditLog", ctx, &suite.user.UserID, pagination.Params{Page: 1, PerPage: pagination.DefaultPerPage}).
		Return([]domain.TransactionAudit{}, int64(0), nil).Once()

	_, _, err := suite.service.ListAuditLog(ctx, suite.user, dto.AuditLogParams{Page: -3, PerPage: 0})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetSystemStats_AdminOnly() {
	ctx := context.Background()

	_, err := suite.service.GetSystemStats(ctx, suite.user)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetSystemStats", mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGetSystemStats_Admin() {
	ctx := context.Background()
	stats := &domain.SystemStats{TotalUsers: 3}

	suite.mockRepo.On("GetSystemStats", ctx).Return(stats, nil).Once()

	got, err := suite.service.GetSystemStats(ctx, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(int64(3), got.TotalUsers)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
