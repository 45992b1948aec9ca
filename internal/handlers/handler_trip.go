package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tripHandler handles HTTP requests related to trips.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

// registerTripRoutes registers trip lifecycle routes.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade) {
	h := &tripHandler{tripService: tripService}

	trips := rg.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/:id", h.getTrip)
		trips.POST("/:id/complete", h.completeTrip)
		trips.DELETE("/:id", h.deleteTrip)
	}
}

// createTrip godoc
// @Summary Start a trip
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to create trip"
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create trip")
		return
	}

	logger.Info("Trip started", slog.String("trip_id", trip.TripID), slog.String("vehicle_id", trip.VehicleID))
	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// getTrip godoc
// @Summary Get a trip by ID
// @Tags trips
// @Produce  json
// @Param   id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to retrieve trip"
// @Security BearerAuth
// @Router /trips/{id} [get]
func (h *tripHandler) getTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trip, err := h.tripService.GetTripByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// listTrips godoc
// @Summary List all trips
// @Tags trips
// @Produce  json
// @Success 200 {array} dto.TripResponse
// @Failure 500 {object} map[string]string "Failed to list trips"
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trips, err := h.tripService.ListTrips(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list trips")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTripResponse(trips))
}

// completeTrip godoc
// @Summary Complete a trip
// @Description Finishes an in-progress trip and posts the generated financial entries atomically
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   id path string true "Trip ID"
// @Param   completion body dto.CompleteTripRequest true "Completion details"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} map[string]string "Trip not in progress or invalid input"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to complete trip"
// @Security BearerAuth
// @Router /trips/{id}/complete [post]
func (h *tripHandler) completeTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CompleteTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CompleteTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	trip, err := h.tripService.CompleteTrip(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to complete trip")
		return
	}

	logger.Info("Trip completed", slog.String("trip_id", trip.TripID), slog.String("profit", trip.Profit().String()))
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// deleteTrip godoc
// @Summary Delete a trip
// @Tags trips
// @Produce  json
// @Param   id path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to delete trip"
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (h *tripHandler) deleteTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.tripService.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete trip")
		return
	}
	c.Status(http.StatusNoContent)
}
