package handlers

import (
	"log/slog"
	"net/http"

	"github.com/frotaops/frota_backend/internal/core/domain"
	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// checklistHandler handles HTTP requests related to checklists and corrective
// actions.
type checklistHandler struct {
	checklistService portssvc.ChecklistSvcFacade
}

// registerChecklistRoutes registers checklist, corrective action and template
// routes.
func registerChecklistRoutes(rg *gin.RouterGroup, checklistService portssvc.ChecklistSvcFacade) {
	h := &checklistHandler{checklistService: checklistService}

	checklists := rg.Group("/checklists")
	{
		checklists.POST("", h.createChecklist)
		checklists.GET("", h.listChecklists)
		checklists.GET("/:id", h.getChecklist)
		checklists.DELETE("/:id", h.deleteChecklist)
		checklists.GET("/:id/actions", h.listCorrectiveActions)
	}

	// Static path kept separate: gin cannot mix it with /checklists/:id.
	rg.GET("/checklist-definitions", h.listDefinitions)

	actions := rg.Group("/corrective-actions")
	{
		actions.POST("", h.createCorrectiveAction)
		actions.POST("/:id/verify", h.verifyCorrectiveAction)
	}
}

// createChecklist godoc
// @Summary Record a checklist
// @Description Records an inspection; the overall status is derived from the items
// @Tags checklists
// @Accept  json
// @Produce  json
// @Param   checklist body dto.CreateChecklistRequest true "Checklist details"
// @Success 201 {object} dto.ChecklistResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to create checklist"
// @Security BearerAuth
// @Router /checklists [post]
func (h *checklistHandler) createChecklist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChecklist", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	checklist, err := h.checklistService.CreateChecklist(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create checklist")
		return
	}

	logger.Info("Checklist created", slog.String("checklist_id", checklist.ChecklistID), slog.String("status", string(checklist.Status)))
	c.JSON(http.StatusCreated, dto.ToChecklistResponse(checklist))
}

// getChecklist godoc
// @Summary Get a checklist by ID
// @Tags checklists
// @Produce  json
// @Param   id path string true "Checklist ID"
// @Success 200 {object} dto.ChecklistResponse
// @Failure 404 {object} map[string]string "Checklist not found"
// @Failure 500 {object} map[string]string "Failed to retrieve checklist"
// @Security BearerAuth
// @Router /checklists/{id} [get]
func (h *checklistHandler) getChecklist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checklist, err := h.checklistService.GetChecklistByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve checklist")
		return
	}
	c.JSON(http.StatusOK, dto.ToChecklistResponse(checklist))
}

// listChecklists godoc
// @Summary List all checklists
// @Tags checklists
// @Produce  json
// @Success 200 {array} dto.ChecklistResponse
// @Failure 500 {object} map[string]string "Failed to list checklists"
// @Security BearerAuth
// @Router /checklists [get]
func (h *checklistHandler) listChecklists(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checklists, err := h.checklistService.ListChecklists(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list checklists")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChecklistResponse(checklists))
}

// deleteChecklist godoc
// @Summary Delete a checklist
// @Tags checklists
// @Produce  json
// @Param   id path string true "Checklist ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Checklist not found"
// @Failure 500 {object} map[string]string "Failed to delete checklist"
// @Security BearerAuth
// @Router /checklists/{id} [delete]
func (h *checklistHandler) deleteChecklist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.checklistService.DeleteChecklist(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete checklist")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCorrectiveActions godoc
// @Summary List corrective actions of a checklist
// @Tags checklists
// @Produce  json
// @Param   id path string true "Checklist ID"
// @Success 200 {array} dto.CorrectiveActionResponse
// @Failure 500 {object} map[string]string "Failed to list corrective actions"
// @Security BearerAuth
// @Router /checklists/{id}/actions [get]
func (h *checklistHandler) listCorrectiveActions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actions, err := h.checklistService.ListCorrectiveActions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list corrective actions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCorrectiveActionResponse(actions))
}

// listDefinitions godoc
// @Summary List checklist template items for a type
// @Tags checklists
// @Produce  json
// @Param   type query string true "Checklist type (MAINTENANCE or LOADING)"
// @Success 200 {array} domain.ChecklistDefinition
// @Failure 400 {object} map[string]string "Invalid type"
// @Failure 500 {object} map[string]string "Failed to list definitions"
// @Security BearerAuth
// @Router /checklist-definitions [get]
func (h *checklistHandler) listDefinitions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checklistType := domain.ChecklistType(c.Query("type"))
	if checklistType != domain.ChecklistMaintenance && checklistType != domain.ChecklistLoading {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be MAINTENANCE or LOADING"})
		return
	}

	definitions, err := h.checklistService.ListDefinitions(c.Request.Context(), checklistType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list definitions")
		return
	}
	c.JSON(http.StatusOK, definitions)
}

// createCorrectiveAction godoc
// @Summary Record a corrective action
// @Description Records a remediation for a PROBLEM item and recomputes the checklist status
// @Tags checklists
// @Accept  json
// @Produce  json
// @Param   action body dto.CreateCorrectiveActionRequest true "Corrective action details"
// @Success 201 {object} dto.CorrectiveActionResponse
// @Failure 400 {object} map[string]string "Invalid input or item has no problem"
// @Failure 404 {object} map[string]string "Checklist not found"
// @Failure 500 {object} map[string]string "Failed to create corrective action"
// @Security BearerAuth
// @Router /corrective-actions [post]
func (h *checklistHandler) createCorrectiveAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCorrectiveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCorrectiveAction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	action, err := h.checklistService.CreateCorrectiveAction(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create corrective action")
		return
	}

	logger.Info("Corrective action created", slog.String("action_id", action.ActionID))
	c.JSON(http.StatusCreated, dto.ToCorrectiveActionResponse(action))
}

// verifyCorrectiveAction godoc
// @Summary Verify a corrective action
// @Description Marks an action as independently verified and recomputes the checklist status
// @Tags checklists
// @Accept  json
// @Produce  json
// @Param   id path string true "Action ID"
// @Param   verification body dto.VerifyCorrectiveActionRequest true "Verification details"
// @Success 200 {object} dto.CorrectiveActionResponse
// @Failure 400 {object} map[string]string "Already verified"
// @Failure 404 {object} map[string]string "Action not found"
// @Failure 500 {object} map[string]string "Failed to verify corrective action"
// @Security BearerAuth
// @Router /corrective-actions/{id}/verify [post]
func (h *checklistHandler) verifyCorrectiveAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VerifyCorrectiveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for VerifyCorrectiveAction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	action, err := h.checklistService.VerifyCorrectiveAction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify corrective action")
		return
	}
	c.JSON(http.StatusOK, dto.ToCorrectiveActionResponse(action))
}
