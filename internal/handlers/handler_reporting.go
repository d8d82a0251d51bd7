package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// reportingHandler handles HTTP requests for derived ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/categories", h.getCategoryBreakdown)
		reports.GET("/comparison", h.getPeriodComparison)
		reports.GET("/budgets", h.getBudgetStatus)
	}
}

// bindReportParams binds the shared report query parameters and resolves the
// reference date, defaulting to today. Returns false after writing the error
// response when the input is malformed.
func bindReportParams(c *gin.Context) (dto.ReportParams, time.Time, bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, time.Time{}, false
	}

	referenceDate := time.Now()
	if params.ReferenceDate != "" {
		parsed, err := time.Parse("2006-01-02", params.ReferenceDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "referenceDate must be in YYYY-MM-DD form"})
			return params, time.Time{}, false
		}
		referenceDate = parsed
	}

	return params, referenceDate, true
}

// getSummary godoc
// @Summary Income and expense totals
// @Description Returns total income, total expense and net for the calendar
// @Description window of the requested range containing the reference date.
// @Tags reports
// @Produce json
// @Param range query string false "WEEKLY, MONTHLY or YEARLY" default(MONTHLY)
// @Param referenceDate query string false "Date in YYYY-MM-DD form, defaults to today"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	params, referenceDate, ok := bindReportParams(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), userID, params.Range, referenceDate)
	if err != nil {
		respondWithError(c, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getCategoryBreakdown godoc
// @Summary Expense breakdown by category
// @Description Returns expense totals grouped by category for the window,
// @Description sorted largest first with stable palette color indices.
// @Tags reports
// @Produce json
// @Param range query string false "WEEKLY, MONTHLY or YEARLY" default(MONTHLY)
// @Param referenceDate query string false "Date in YYYY-MM-DD form, defaults to today"
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) getCategoryBreakdown(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	params, referenceDate, ok := bindReportParams(c)
	if !ok {
		return
	}

	breakdown, err := h.reportingService.GetCategoryBreakdown(c.Request.Context(), userID, params.Range, referenceDate)
	if err != nil {
		respondWithError(c, err, "Failed to compute category breakdown")
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// getPeriodComparison godoc
// @Summary Compare spending across periods
// @Description Returns expense totals for the current window and the
// @Description immediately preceding window of the same range.
// @Tags reports
// @Produce json
// @Param range query string false "WEEKLY, MONTHLY or YEARLY" default(MONTHLY)
// @Param referenceDate query string false "Date in YYYY-MM-DD form, defaults to today"
// @Success 200 {object} dto.PeriodComparisonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/comparison [get]
func (h *reportingHandler) getPeriodComparison(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	params, referenceDate, ok := bindReportParams(c)
	if !ok {
		return
	}

	comparison, err := h.reportingService.GetPeriodComparison(c.Request.Context(), userID, params.Range, referenceDate)
	if err != nil {
		respondWithError(c, err, "Failed to compute period comparison")
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// getBudgetStatus godoc
// @Summary Budget consumption for a month
// @Description Returns per-budget spending progress for the calendar month
// @Description containing the reference date.
// @Tags reports
// @Produce json
// @Param referenceDate query string false "Date in YYYY-MM-DD form, defaults to today"
// @Success 200 {object} dto.ListBudgetStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/budgets [get]
func (h *reportingHandler) getBudgetStatus(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	_, referenceDate, ok := bindReportParams(c)
	if !ok {
		return
	}

	status, err := h.reportingService.GetBudgetStatus(c.Request.Context(), userID, referenceDate)
	if err != nil {
		respondWithError(c, err, "Failed to compute budget status")
		return
	}

	c.JSON(http.StatusOK, status)
}
