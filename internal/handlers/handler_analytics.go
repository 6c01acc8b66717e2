package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

// analyticsHandler handles HTTP requests for the reporting read models, plus
// the batch amount update that the dashboard drives.
type analyticsHandler struct {
	reportingService   portssvc.ReportingSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

// registerAnalyticsRoutes registers the analytics and admin reporting routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := &analyticsHandler{
		reportingService:   reportingService,
		transactionService: transactionService,
	}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/financial-overview", h.financialOverview)
		analytics.GET("/monthly-trends", h.monthlyTrends)
		analytics.GET("/category-analysis", h.categoryAnalysis)
		analytics.GET("/audit-log", h.auditLog)
		analytics.POST("/batch-transaction-update", h.batchUpdateTransactions)
	}

	admin := rg.Group("/admin")
	{
		admin.GET("/system-stats", h.systemStats)
	}
}

// financialOverview godoc
// @Summary Financial overview
// @Description Aggregate figures per user: admins see every user, others only themselves.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.FinancialOverviewResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/financial-overview [get]
func (h *analyticsHandler) financialOverview(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	overview, err := h.reportingService.GetFinancialOverview(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FinancialOverviewResponse{
		Data:        overview,
		IsAdminView: p.IsAdmin(),
		GeneratedAt: time.Now(),
	})
}

// monthlyTrends godoc
// @Summary Monthly trend series
// @Description Month-bucketed income/expense aggregates over the requested window.
// @Tags analytics
// @Produce json
// @Param months query int false "Number of months" default(12) maximum(60)
// @Success 200 {object} dto.MonthlyTrendsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/monthly-trends [get]
func (h *analyticsHandler) monthlyTrends(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var params dto.MonthlyTrendsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	trends, err := h.reportingService.GetMonthlyTrends(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyTrendsResponse{
		Trends:      trends,
		Period:      fmt.Sprintf("last %d months", params.Months),
		GeneratedAt: time.Now(),
	})
}

// categoryAnalysis godoc
// @Summary Category analysis
// @Description Per-category aggregates with amount and frequency ranks over the visible set.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.CategoryAnalysisResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/category-analysis [get]
func (h *analyticsHandler) categoryAnalysis(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	analysis, err := h.reportingService.GetCategoryAnalysis(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryAnalysisResponse{
		Analysis:    analysis,
		GeneratedAt: time.Now(),
	})
}

// auditLog godoc
// @Summary Transaction audit trail
// @Description Lists audit rows newest first; non-admins see only their own activity.
// @Tags analytics
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(20)
// @Success 200 {object} dto.AuditLogResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/audit-log [get]
func (h *analyticsHandler) auditLog(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var params dto.AuditLogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	entries, total, err := h.reportingService.ListAuditLog(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}

	meta := pagination.NewMeta(pagination.Normalize(params.Page, params.PerPage), total)
	c.JSON(http.StatusOK, dto.AuditLogResponse{Data: entries, Meta: meta})
}

// batchUpdateTransactions godoc
// @Summary Batch update transaction amounts
// @Description Applies a list of amount updates as one atomic batch: either all succeed or none do.
// @Tags analytics
// @Accept json
// @Produce json
// @Param batch body dto.BatchUpdateRequest true "Amount updates"
// @Success 200 {object} dto.BatchUpdateResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/batch-transaction-update [post]
func (h *analyticsHandler) batchUpdateTransactions(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req dto.BatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.transactionService.BatchUpdateAmounts(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// systemStats godoc
// @Summary System statistics
// @Description Application-wide totals for the admin dashboard. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.SystemStats
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/system-stats [get]
func (h *analyticsHandler) systemStats(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	stats, err := h.reportingService.GetSystemStats(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
