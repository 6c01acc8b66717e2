package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/search", h.searchTransactions)
		transactions.POST("/search", h.searchTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a transaction and atomically applies its signed amount to the account balance.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions with optional filters; non-admins only see their own.
// @Tags transactions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(15)
// @Param account_id query string false "Filter by account"
// @Param category_id query string false "Filter by category"
// @Param type query string false "Filter by type (income|expense)"
// @Param min_amount query string false "Minimum amount"
// @Param max_amount query string false "Maximum amount"
// @Param date_from query string false "Start date (YYYY-MM-DD)"
// @Param date_to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	transactions, total, err := h.transactionService.ListTransactions(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}

	meta := pagination.NewMeta(pagination.Normalize(params.Page, params.PerPage), total)
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions, meta))
}

// searchTransactions godoc
// @Summary Search transactions by minimum amount
// @Description Returns transactions whose amount is at or above q. min_amount is accepted as an alias.
// @Tags transactions
// @Produce json
// @Param q query string false "Amount threshold"
// @Param min_amount query string false "Alias for q"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(15)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/search [get]
// @Router /transactions/search [post]
func (h *transactionHandler) searchTransactions(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var params dto.SearchTransactionsParams
	// ShouldBind reads the query string on GET and the form body on POST.
	if err := c.ShouldBind(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	transactions, total, err := h.transactionService.SearchTransactions(c.Request.Context(), p, params)
	if err != nil {
		respondError(c, err)
		return
	}

	meta := pagination.NewMeta(pagination.Normalize(params.Page, params.PerPage), total)
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions, meta))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Updates amount, category, date or description. The balance delta is applied atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), p, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction and reverses its effect on the account balance. The audit row survives.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), p, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}
