// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneytrail/backend/internal/application/usecase/backup"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/entrypoint/dto"
)

// maxRestorePayloadBytes caps the accepted restore document size.
const maxRestorePayloadBytes = 32 << 20

// BackupController handles backup export and restore endpoints.
type BackupController struct {
	createUseCase  *backup.CreateBackupUseCase
	restoreUseCase *backup.RestoreBackupUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	createUseCase *backup.CreateBackupUseCase,
	restoreUseCase *backup.RestoreBackupUseCase,
) *BackupController {
	return &BackupController{
		createUseCase:  createUseCase,
		restoreUseCase: restoreUseCase,
	}
}

// Export handles GET /backup requests. The response body is the backup
// document itself.
func (c *BackupController) Export(ctx *gin.Context) {
	output, err := c.createUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="moneytrail-backup.json"`)
	ctx.JSON(http.StatusOK, output.Document)
}

// Restore handles POST /backup/restore requests.
func (c *BackupController) Restore(ctx *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxRestorePayloadBytes))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read request body",
			Code:  string(domainerror.ErrCodeInvalidBackupPayload),
		})
		return
	}

	input := backup.RestoreBackupInput{
		Payload: payload,
		Mode:    ctx.Query("mode"),
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRestoreBackupResponse(output))
}

// handleBackupError handles backup errors and returns appropriate HTTP responses.
func (c *BackupController) handleBackupError(ctx *gin.Context, err error) {
	var backupErr *domainerror.BackupError
	if errors.As(err, &backupErr) {
		statusCode := c.getStatusCodeForBackupError(backupErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: backupErr.Message,
			Code:  string(backupErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBackupError maps backup error codes to HTTP status codes.
func (c *BackupController) getStatusCodeForBackupError(code domainerror.BackupErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnsupportedBackupVersion,
		domainerror.ErrCodeInvalidBackupPayload,
		domainerror.ErrCodeInvalidRestoreMode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
