package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fuelHandler handles HTTP requests related to fuel entries.
type fuelHandler struct {
	fuelService portssvc.FuelSvcFacade
}

// registerFuelRoutes registers fuel entry routes.
func registerFuelRoutes(rg *gin.RouterGroup, fuelService portssvc.FuelSvcFacade) {
	h := &fuelHandler{fuelService: fuelService}

	entries := rg.Group("/fuel-entries")
	{
		entries.POST("", h.createFuelEntry)
		entries.GET("", h.listFuelEntries)
		entries.DELETE("/:id", h.deleteFuelEntry)
	}
}

// createFuelEntry godoc
// @Summary Record a fuel purchase
// @Description Optionally posts a paid FUEL expense and advances the truck odometer, atomically
// @Tags fuel
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateFuelEntryRequest true "Fuel entry details"
// @Success 201 {object} dto.FuelEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to create fuel entry"
// @Security BearerAuth
// @Router /fuel-entries [post]
func (h *fuelHandler) createFuelEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFuelEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFuelEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.fuelService.CreateFuelEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create fuel entry")
		return
	}

	logger.Info("Fuel entry created", slog.String("fuel_entry_id", entry.FuelEntryID), slog.String("vehicle_id", entry.VehicleID))
	c.JSON(http.StatusCreated, dto.ToFuelEntryResponse(entry))
}

// listFuelEntries godoc
// @Summary List all fuel entries
// @Tags fuel
// @Produce  json
// @Success 200 {array} dto.FuelEntryResponse
// @Failure 500 {object} map[string]string "Failed to list fuel entries"
// @Security BearerAuth
// @Router /fuel-entries [get]
func (h *fuelHandler) listFuelEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.fuelService.ListFuelEntries(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fuel entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFuelEntryResponse(entries))
}

// deleteFuelEntry godoc
// @Summary Delete a fuel entry
// @Tags fuel
// @Produce  json
// @Param   id path string true "Fuel entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Fuel entry not found"
// @Failure 500 {object} map[string]string "Failed to delete fuel entry"
// @Security BearerAuth
// @Router /fuel-entries/{id} [delete]
func (h *fuelHandler) deleteFuelEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.fuelService.DeleteFuelEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete fuel entry")
		return
	}
	c.Status(http.StatusNoContent)
}
