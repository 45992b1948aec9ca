package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/middleware"
	"github.com/frotaops/frota_backend/internal/utils/fleet"
	"github.com/gin-gonic/gin"
)

// driverHandler handles HTTP requests related to drivers.
type driverHandler struct {
	driverService    portssvc.DriverSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// registerDriverRoutes registers routes related to drivers, including the
// monthly statement.
func registerDriverRoutes(rg *gin.RouterGroup, driverService portssvc.DriverSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := &driverHandler{driverService: driverService, reportingService: reportingService}

	drivers := rg.Group("/drivers")
	{
		drivers.POST("", h.createDriver)
		drivers.GET("", h.listDrivers)
		drivers.GET("/:id", h.getDriver)
		drivers.PUT("/:id", h.updateDriver)
		drivers.DELETE("/:id", h.deleteDriver)
		drivers.GET("/:id/statement", h.getDriverStatement)
	}
}

// createDriver godoc
// @Summary Register a new driver
// @Tags drivers
// @Accept  json
// @Produce  json
// @Param   driver body dto.CreateDriverRequest true "Driver details"
// @Success 201 {object} dto.DriverResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "CPF already registered"
// @Failure 500 {object} map[string]string "Failed to create driver"
// @Security BearerAuth
// @Router /drivers [post]
func (h *driverHandler) createDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDriver", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create driver")
		return
	}

	logger.Info("Driver created", slog.String("driver_id", driver.DriverID))
	c.JSON(http.StatusCreated, dto.ToDriverResponse(driver, fleet.LicenseStatus(*driver, time.Now())))
}

// getDriver godoc
// @Summary Get a driver by ID
// @Tags drivers
// @Produce  json
// @Param   id path string true "Driver ID"
// @Success 200 {object} dto.DriverResponse
// @Failure 404 {object} map[string]string "Driver not found"
// @Failure 500 {object} map[string]string "Failed to retrieve driver"
// @Security BearerAuth
// @Router /drivers/{id} [get]
func (h *driverHandler) getDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	driver, err := h.driverService.GetDriverByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve driver")
		return
	}
	c.JSON(http.StatusOK, dto.ToDriverResponse(driver, fleet.LicenseStatus(*driver, time.Now())))
}

// listDrivers godoc
// @Summary List all drivers with their license status
// @Tags drivers
// @Produce  json
// @Success 200 {array} dto.DriverResponse
// @Failure 500 {object} map[string]string "Failed to list drivers"
// @Security BearerAuth
// @Router /drivers [get]
func (h *driverHandler) listDrivers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	drivers, err := h.driverService.ListDrivers(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list drivers")
		return
	}

	now := time.Now()
	res := make([]dto.DriverResponse, len(drivers))
	for i := range drivers {
		res[i] = dto.ToDriverResponse(&drivers[i], fleet.LicenseStatus(drivers[i], now))
	}
	c.JSON(http.StatusOK, res)
}

// updateDriver godoc
// @Summary Update a driver
// @Tags drivers
// @Accept  json
// @Produce  json
// @Param   id path string true "Driver ID"
// @Param   driver body dto.UpdateDriverRequest true "Fields to update"
// @Success 200 {object} dto.DriverResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Driver not found"
// @Failure 500 {object} map[string]string "Failed to update driver"
// @Security BearerAuth
// @Router /drivers/{id} [put]
func (h *driverHandler) updateDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDriver", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update driver")
		return
	}
	c.JSON(http.StatusOK, dto.ToDriverResponse(driver, fleet.LicenseStatus(*driver, time.Now())))
}

// deleteDriver godoc
// @Summary Delete a driver
// @Tags drivers
// @Produce  json
// @Param   id path string true "Driver ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Driver not found"
// @Failure 500 {object} map[string]string "Failed to delete driver"
// @Security BearerAuth
// @Router /drivers/{id} [delete]
func (h *driverHandler) deleteDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.driverService.DeleteDriver(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete driver")
		return
	}
	c.Status(http.StatusNoContent)
}

// getDriverStatement godoc
// @Summary Get a driver's monthly statement
// @Description All-time pending debt, month paid total and the month's transaction history
// @Tags drivers
// @Produce  json
// @Param   id path string true "Driver ID"
// @Param   month query string true "Month in YYYY-MM format"
// @Success 200 {object} domain.DriverStatement
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 404 {object} map[string]string "Driver not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /drivers/{id}/statement [get]
func (h *driverHandler) getDriverStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	month := c.Query("month")
	statement, err := h.reportingService.DriverStatement(c.Request.Context(), c.Param("id"), month)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}
