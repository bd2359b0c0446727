package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portssvc "github.com/SscSPs/transaction_insights_api/internal/core/ports/services"
	"github.com/SscSPs/transaction_insights_api/internal/dto"
	"github.com/SscSPs/transaction_insights_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// spendingHandler serves the aggregated spending endpoints.
type spendingHandler struct {
	spendingService portssvc.SpendingSvcFacade
}

func newSpendingHandler(ss portssvc.SpendingSvcFacade) *spendingHandler {
	return &spendingHandler{spendingService: ss}
}

// registerSpendingRoutes registers the summary, ranking and listing routes on an authenticated group.
func registerSpendingRoutes(rg *gin.RouterGroup, spendingService portssvc.SpendingSvcFacade) {
	h := newSpendingHandler(spendingService)

	customers := rg.Group("/customers")
	{
		customers.GET("/top-spenders", middleware.RequireAdmin(), h.topSpenders)
		customers.GET("/:customerID/summary", h.customerSummary)
		customers.GET("/:customerID/transactions", h.listCustomerTransactions)
	}

	rg.GET("/summary/overall", middleware.RequireAdmin(), h.overallSummary)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/top-categories", h.topCategories)
	}
}

// parseDateRange turns validated from/to strings into a domain.DateRange.
func parseDateRange(p dto.DateRangeParams) (domain.DateRange, error) {
	var rng domain.DateRange
	if p.From != "" {
		from, err := time.Parse(domain.DateLayout, p.From)
		if err != nil {
			return rng, err
		}
		rng.From = &from
	}
	if p.To != "" {
		to, err := time.Parse(domain.DateLayout, p.To)
		if err != nil {
			return rng, err
		}
		rng.To = &to
	}
	return rng, rng.Validate()
}

// rangeQuery is a query DTO that embeds dto.DateRangeParams.
type rangeQuery interface {
	Dates() dto.DateRangeParams
}

// bindRange binds the query into params and extracts its date range, answering 400 on failure.
func bindRange(c *gin.Context, params rangeQuery) (domain.DateRange, bool) {
	if err := c.ShouldBindQuery(params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return domain.DateRange{}, false
	}
	rng, err := parseDateRange(params.Dates())
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return domain.DateRange{}, false
	}
	return rng, true
}

// authorizeCustomer resolves the :customerID path parameter and checks the caller may read it.
func authorizeCustomer(c *gin.Context) (int64, bool) {
	customerID, err := strconv.ParseInt(c.Param("customerID"), 10, 64)
	if err != nil || customerID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid customer ID"})
		return 0, false
	}
	if !callerCanAccess(c, customerID) {
		return 0, false
	}
	return customerID, true
}

func callerCanAccess(c *gin.Context, customerID int64) bool {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return false
	}
	if !domain.CanAccessCustomer(principal.CustomerID, principal.IsAdmin, customerID) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Customer access denied")
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Access to this customer is not allowed"})
		return false
	}
	return true
}

// customerSummary godoc
// @Summary Customer spending summary
// @Description Total spend and per-category breakdown for one customer, optionally within a date range.
// @Tags spending
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {object} domain.CustomerSummary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{customerID}/summary [get]
func (h *spendingHandler) customerSummary(c *gin.Context) {
	customerID, ok := authorizeCustomer(c)
	if !ok {
		return
	}
	var params dto.DateRangeParams
	rng, ok := bindRange(c, &params)
	if !ok {
		return
	}

	summary, err := h.spendingService.CustomerSummary(c.Request.Context(), customerID, rng)
	if err != nil {
		respondServiceError(c, err, "Failed to build customer summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// overallSummary godoc
// @Summary Overall spending summary
// @Description Total spend and per-category breakdown across all customers. Admin only.
// @Tags spending
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {object} domain.OverallSummary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary/overall [get]
func (h *spendingHandler) overallSummary(c *gin.Context) {
	var params dto.DateRangeParams
	rng, ok := bindRange(c, &params)
	if !ok {
		return
	}

	summary, err := h.spendingService.OverallSummary(c.Request.Context(), rng)
	if err != nil {
		respondServiceError(c, err, "Failed to build overall summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// topSpenders godoc
// @Summary Top spenders
// @Description Customers ranked by total spend. Admin only.
// @Tags spending
// @Produce json
// @Param count query int false "Number of customers" default(5) minimum(1)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {array} domain.TopSpender
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/top-spenders [get]
func (h *spendingHandler) topSpenders(c *gin.Context) {
	var params dto.TopSpendersParams
	rng, ok := bindRange(c, &params)
	if !ok {
		return
	}

	spenders, err := h.spendingService.TopSpenders(c.Request.Context(), params.Count, rng)
	if err != nil {
		respondServiceError(c, err, "Failed to rank spenders")
		return
	}
	c.JSON(http.StatusOK, spenders)
}

// topCategories godoc
// @Summary Top categories
// @Description Categories ranked by total spend, across all customers (admin only) or for one customer.
// @Tags spending
// @Produce json
// @Param count query int false "Number of categories" default(5) minimum(1)
// @Param customerId query int false "Restrict to one customer"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {array} domain.TopCategory
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/top-categories [get]
func (h *spendingHandler) topCategories(c *gin.Context) {
	var params dto.TopCategoriesParams
	rng, ok := bindRange(c, &params)
	if !ok {
		return
	}

	var (
		categories []domain.TopCategory
		err        error
	)
	if params.CustomerID != nil {
		if !callerCanAccess(c, *params.CustomerID) {
			return
		}
		categories, err = h.spendingService.TopCategoriesForCustomer(c.Request.Context(), *params.CustomerID, params.Count, rng)
	} else {
		principal, _ := middleware.GetPrincipalFromContext(c)
		if !principal.IsAdmin {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin role required for overall rankings"})
			return
		}
		categories, err = h.spendingService.TopCategoriesOverall(c.Request.Context(), params.Count, rng)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to rank categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// listCustomerTransactions godoc
// @Summary List customer transactions
// @Description Raw transactions of one customer ordered by timestamp, with optional keyset pagination.
// @Tags spending
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Param limit query int false "Page size; 0 returns everything" minimum(0)
// @Param nextToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{customerID}/transactions [get]
func (h *spendingHandler) listCustomerTransactions(c *gin.Context) {
	customerID, ok := authorizeCustomer(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	rng, ok := bindRange(c, &params)
	if !ok {
		return
	}

	page, err := h.spendingService.ListCustomerTransactions(c.Request.Context(), customerID, rng, params.Limit, params.NextToken)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page))
}

// listCategories godoc
// @Summary List categories
// @Description All spending categories a transaction can be assigned.
// @Tags spending
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *spendingHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: domain.AllCategories})
}
