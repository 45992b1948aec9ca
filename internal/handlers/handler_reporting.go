package handlers

import (
	"net/http"

	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived financial figures.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.summary)
		reports.GET("/account-balances", h.accountBalances)
		reports.GET("/category-breakdown", h.categoryBreakdown)
		reports.GET("/vehicle-profits", h.vehicleProfits)
		reports.GET("/monthly-trend", h.monthlyTrend)
		reports.GET("/month-balance", h.monthBalance)
		reports.GET("/dre", h.dre)
		reports.GET("/best-trips", h.bestTrips)
		reports.GET("/worst-trips", h.worstTrips)
	}
}

// summary godoc
// @Summary Overall financial summary
// @Description Paid balance plus pending income and expense totals
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.FinanceSummary
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// accountBalances godoc
// @Summary Current balance per account
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.AccountBalance
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Security BearerAuth
// @Router /reports/account-balances [get]
func (h *reportingHandler) accountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.reportingService.AccountBalances(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, balances)
}

// categoryBreakdown godoc
// @Summary Paid expense totals per category
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.CategoryTotal
// @Failure 500 {object} map[string]string "Failed to compute breakdown"
// @Security BearerAuth
// @Router /reports/category-breakdown [get]
func (h *reportingHandler) categoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	breakdown, err := h.reportingService.CategoryBreakdown(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute breakdown")
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// vehicleProfits godoc
// @Summary Income, expense and profit per vehicle
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.VehicleProfit
// @Failure 500 {object} map[string]string "Failed to compute vehicle profits"
// @Security BearerAuth
// @Router /reports/vehicle-profits [get]
func (h *reportingHandler) vehicleProfits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profits, err := h.reportingService.VehicleProfits(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute vehicle profits")
		return
	}
	c.JSON(http.StatusOK, profits)
}

// monthlyTrend godoc
// @Summary Paid income and expense totals per month
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.MonthlyTotal
// @Failure 500 {object} map[string]string "Failed to compute trend"
// @Security BearerAuth
// @Router /reports/monthly-trend [get]
func (h *reportingHandler) monthlyTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trend, err := h.reportingService.MonthlyTrend(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute trend")
		return
	}
	c.JSON(http.StatusOK, trend)
}

// monthBalance godoc
// @Summary Opening and closing balance of a month
// @Tags reports
// @Produce  json
// @Param   month query string true "Month in YYYY-MM format"
// @Success 200 {object} domain.MonthBalance
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to compute month balance"
// @Security BearerAuth
// @Router /reports/month-balance [get]
func (h *reportingHandler) monthBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.reportingService.MonthBalance(c.Request.Context(), c.Query("month"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute month balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

// dre godoc
// @Summary Income statement (DRE) for a month
// @Description Revenue, variable and fixed costs, contribution margin and net result
// @Tags reports
// @Produce  json
// @Param   month query string true "Month in YYYY-MM format"
// @Success 200 {object} domain.DREReport
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to build DRE"
// @Security BearerAuth
// @Router /reports/dre [get]
func (h *reportingHandler) dre(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.DRE(c.Request.Context(), c.Query("month"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build DRE")
		return
	}
	c.JSON(http.StatusOK, report)
}

// bestTrips godoc
// @Summary Most profitable completed trips
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.TripProfit
// @Failure 500 {object} map[string]string "Failed to rank trips"
// @Security BearerAuth
// @Router /reports/best-trips [get]
func (h *reportingHandler) bestTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trips, err := h.reportingService.BestTrips(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to rank trips")
		return
	}
	c.JSON(http.StatusOK, trips)
}

// worstTrips godoc
// @Summary Least profitable completed trips
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.TripProfit
// @Failure 500 {object} map[string]string "Failed to rank trips"
// @Security BearerAuth
// @Router /reports/worst-trips [get]
func (h *reportingHandler) worstTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trips, err := h.reportingService.WorstTrips(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to rank trips")
		return
	}
	c.JSON(http.StatusOK, trips)
}
