package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/logger"
	"bookkeeper/internal/services"
)

// AdminHandler serves whole-store exports behind the admin token.
type AdminHandler struct {
	backupService services.BackupServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(backupService services.BackupServicer) *AdminHandler {
	return &AdminHandler{backupService: backupService}
}

// ExportJSON downloads every table as one JSON document
// @Summary     JSON backup
// @Tags        admin
// @Produce     json
// @Security    AdminToken
// @Success     200 {object} services.Backup
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/backup/json [get]
func (h *AdminHandler) ExportJSON(c *gin.Context) {
	backup, err := h.backupService.ExportJSON()
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Get().Infow("json backup exported",
		"users", len(backup.Users),
		"transactions", len(backup.Transactions),
		"debts", len(backup.Debts),
	)

	c.Header("Content-Disposition", `attachment; filename="backup.json"`)
	c.JSON(http.StatusOK, backup)
}

// ExportSQLite downloads a consistent copy of the sqlite database file
// @Summary     Raw sqlite backup
// @Tags        admin
// @Produce     application/octet-stream
// @Security    AdminToken
// @Success     200 {file} file
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     501 {object} ErrorResponse "Store is not sqlite"
// @Router      /admin/backup/sqlite [get]
func (h *AdminHandler) ExportSQLite(c *gin.Context) {
	dir, err := os.MkdirTemp("", "bookkeeper-backup-")
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.Get().Warnw("failed to remove backup snapshot", "error", err, "dir", dir)
		}
	}()

	dst := filepath.Join(dir, "data.db")
	if err := h.backupService.Snapshot(dst); err != nil {
		respondWithError(c, err)
		return
	}

	logger.Get().Infow("sqlite backup exported")
	c.FileAttachment(dst, "data.db")
}
