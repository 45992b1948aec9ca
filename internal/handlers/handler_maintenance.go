package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maintenanceHandler handles HTTP requests related to maintenance tasks and
// the alert feed.
type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

// registerMaintenanceRoutes registers maintenance task and alert routes.
func registerMaintenanceRoutes(rg *gin.RouterGroup, maintenanceService portssvc.MaintenanceSvcFacade) {
	h := &maintenanceHandler{maintenanceService: maintenanceService}

	tasks := rg.Group("/maintenance-tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:id", h.getTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.POST("/:id/complete", h.completeTask)
		tasks.DELETE("/:id", h.deleteTask)
	}

	rg.GET("/alerts", h.listAlerts)
}

// createTask godoc
// @Summary Open a maintenance task
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   task body dto.CreateMaintenanceTaskRequest true "Task details"
// @Success 201 {object} dto.MaintenanceTaskResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to create task"
// @Security BearerAuth
// @Router /maintenance-tasks [post]
func (h *maintenanceHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMaintenanceTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.maintenanceService.CreateTask(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create task")
		return
	}

	logger.Info("Maintenance task created", slog.String("task_id", task.TaskID))
	c.JSON(http.StatusCreated, dto.ToMaintenanceTaskResponse(task))
}

// getTask godoc
// @Summary Get a maintenance task by ID
// @Tags maintenance
// @Produce  json
// @Param   id path string true "Task ID"
// @Success 200 {object} dto.MaintenanceTaskResponse
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Failed to retrieve task"
// @Security BearerAuth
// @Router /maintenance-tasks/{id} [get]
func (h *maintenanceHandler) getTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	task, err := h.maintenanceService.GetTaskByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve task")
		return
	}
	c.JSON(http.StatusOK, dto.ToMaintenanceTaskResponse(task))
}

// listTasks godoc
// @Summary List all maintenance tasks
// @Tags maintenance
// @Produce  json
// @Success 200 {array} dto.MaintenanceTaskResponse
// @Failure 500 {object} map[string]string "Failed to list tasks"
// @Security BearerAuth
// @Router /maintenance-tasks [get]
func (h *maintenanceHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tasks, err := h.maintenanceService.ListTasks(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMaintenanceTaskResponse(tasks))
}

// updateTask godoc
// @Summary Update a pending maintenance task
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   id path string true "Task ID"
// @Param   task body dto.UpdateMaintenanceTaskRequest true "Fields to update"
// @Success 200 {object} dto.MaintenanceTaskResponse
// @Failure 400 {object} map[string]string "Invalid input or task already completed"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Failed to update task"
// @Security BearerAuth
// @Router /maintenance-tasks/{id} [put]
func (h *maintenanceHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateMaintenanceTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.maintenanceService.UpdateTask(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToMaintenanceTaskResponse(task))
}

// completeTask godoc
// @Summary Complete a maintenance task
// @Description Flips the task to DONE; optionally posts the linked expense atomically
// @Tags maintenance
// @Accept  json
// @Produce  json
// @Param   id path string true "Task ID"
// @Param   completion body dto.CompleteMaintenanceTaskRequest true "Completion options"
// @Success 200 {object} dto.MaintenanceTaskResponse
// @Failure 400 {object} map[string]string "Task not pending or missing cost"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Failed to complete task"
// @Security BearerAuth
// @Router /maintenance-tasks/{id}/complete [post]
func (h *maintenanceHandler) completeTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CompleteMaintenanceTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CompleteTask", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.maintenanceService.CompleteTask(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to complete task")
		return
	}

	logger.Info("Maintenance task completed", slog.String("task_id", task.TaskID), slog.String("transaction_id", task.TransactionID))
	c.JSON(http.StatusOK, dto.ToMaintenanceTaskResponse(task))
}

// deleteTask godoc
// @Summary Delete a maintenance task
// @Tags maintenance
// @Produce  json
// @Param   id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Task not found"
// @Failure 500 {object} map[string]string "Failed to delete task"
// @Security BearerAuth
// @Router /maintenance-tasks/{id} [delete]
func (h *maintenanceHandler) deleteTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.maintenanceService.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete task")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAlerts godoc
// @Summary List the unified maintenance alert feed
// @Description Oil-change projections for trucks merged with pending tasks, URGENT first
// @Tags maintenance
// @Produce  json
// @Success 200 {array} domain.Alert
// @Failure 500 {object} map[string]string "Failed to list alerts"
// @Security BearerAuth
// @Router /alerts [get]
func (h *maintenanceHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	alerts, err := h.maintenanceService.ListAlerts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list alerts")
		return
	}
	c.JSON(http.StatusOK, alerts)
}
