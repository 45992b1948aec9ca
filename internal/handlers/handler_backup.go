package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/frotaops/frota_backend/internal/core/ports/services"
	"github.com/frotaops/frota_backend/internal/dto"
	"github.com/frotaops/frota_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// backupHandler handles full dataset export and restore.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

// registerBackupRoutes registers backup routes.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := &backupHandler{backupService: backupService}

	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.exportBackup)
		backup.POST("/import", h.importBackup)
	}
}

// exportBackup godoc
// @Summary Export the full dataset
// @Description Dumps every table as raw rows keyed by table name
// @Tags backup
// @Produce  json
// @Success 200 {object} dto.BackupDocument
// @Failure 500 {object} map[string]string "Failed to export"
// @Security BearerAuth
// @Router /backup/export [get]
func (h *backupHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to export")
		return
	}

	logger.Info("Backup exported")
	c.JSON(http.StatusOK, doc)
}

// importBackup godoc
// @Summary Restore a dataset export
// @Description Upserts every row by primary key, atomically; created_by is rewritten to the importing user
// @Tags backup
// @Accept  json
// @Produce  json
// @Param   backup body dto.BackupDocument true "Exported dataset"
// @Success 200 {object} dto.ImportSummary
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to import"
// @Security BearerAuth
// @Router /backup/import [post]
func (h *backupHandler) importBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var doc dto.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Warn("Failed to bind JSON for Import", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	summary, err := h.backupService.Import(c.Request.Context(), &doc, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to import")
		return
	}

	logger.Info("Backup imported", slog.Int("total_rows", summary.TotalRows))
	c.JSON(http.StatusOK, summary)
}
