package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vehicleHandler handles HTTP requests related to vehicles.
type vehicleHandler struct {
	vehicleService   portssvc.VehicleSvcFacade
	checklistService portssvc.ChecklistSvcFacade
	fuelService      portssvc.FuelSvcFacade
}

// registerVehicleRoutes registers routes related to vehicles, including the
// per-vehicle checklist and fuel history.
func registerVehicleRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleSvcFacade, checklistService portssvc.ChecklistSvcFacade, fuelService portssvc.FuelSvcFacade) {
	h := &vehicleHandler{vehicleService: vehicleService, checklistService: checklistService, fuelService: fuelService}

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:id", h.getVehicle)
		vehicles.PUT("/:id", h.updateVehicle)
		vehicles.PATCH("/:id/km", h.updateTruckKm)
		vehicles.DELETE("/:id", h.deleteVehicle)
		vehicles.GET("/:id/checklists", h.listVehicleChecklists)
		vehicles.GET("/:id/fuel-entries", h.listVehicleFuelEntries)
	}
}

// createVehicle godoc
// @Summary Register a new vehicle
// @Description Registers a truck or trailer
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Plate already registered"
// @Failure 500 {object} map[string]string "Failed to create vehicle"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *vehicleHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVehicle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create vehicle")
		return
	}

	logger.Info("Vehicle created", slog.String("vehicle_id", vehicle.VehicleID), slog.String("plate", vehicle.Plate))
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// getVehicle godoc
// @Summary Get a vehicle by ID
// @Tags vehicles
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to retrieve vehicle"
// @Security BearerAuth
// @Router /vehicles/{id} [get]
func (h *vehicleHandler) getVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// listVehicles godoc
// @Summary List all vehicles
// @Tags vehicles
// @Produce  json
// @Success 200 {array} dto.VehicleResponse
// @Failure 500 {object} map[string]string "Failed to list vehicles"
// @Security BearerAuth
// @Router /vehicles [get]
func (h *vehicleHandler) listVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVehicleResponse(vehicles))
}

// updateVehicle godoc
// @Summary Update a vehicle
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Param   vehicle body dto.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to update vehicle"
// @Security BearerAuth
// @Router /vehicles/{id} [put]
func (h *vehicleHandler) updateVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVehicle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// updateTruckKm godoc
// @Summary Advance a truck's odometer
// @Description Updates the current km of a truck; the odometer never moves backwards
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Param   km body dto.UpdateTruckKmRequest true "New odometer value"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} map[string]string "Not a truck or odometer moving backwards"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to update odometer"
// @Security BearerAuth
// @Router /vehicles/{id}/km [patch]
func (h *vehicleHandler) updateTruckKm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTruckKmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTruckKm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.UpdateTruckKm(c.Request.Context(), c.Param("id"), req.CurrentKm, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update odometer")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// deleteVehicle godoc
// @Summary Delete a vehicle
// @Tags vehicles
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to delete vehicle"
// @Security BearerAuth
// @Router /vehicles/{id} [delete]
func (h *vehicleHandler) deleteVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete vehicle")
		return
	}
	c.Status(http.StatusNoContent)
}

// listVehicleChecklists godoc
// @Summary List checklists of a vehicle
// @Tags vehicles
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 200 {array} dto.ChecklistResponse
// @Failure 500 {object} map[string]string "Failed to list checklists"
// @Security BearerAuth
// @Router /vehicles/{id}/checklists [get]
func (h *vehicleHandler) listVehicleChecklists(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checklists, err := h.checklistService.ListChecklistsByVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list checklists")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChecklistResponse(checklists))
}

// listVehicleFuelEntries godoc
// @Summary List fuel entries of a vehicle
// @Tags vehicles
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 200 {array} dto.FuelEntryResponse
// @Failure 500 {object} map[string]string "Failed to list fuel entries"
// @Security BearerAuth
// @Router /vehicles/{id}/fuel-entries [get]
func (h *vehicleHandler) listVehicleFuelEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.fuelService.ListFuelEntriesByVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fuel entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFuelEntryResponse(entries))
}
