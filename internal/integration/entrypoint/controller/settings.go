// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneytrail/backend/internal/application/usecase/settings"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles settings endpoints.
type SettingsController struct {
	getUseCase                 *settings.GetSettingsUseCase
	updateUseCase              *settings.UpdateSettingsUseCase
	getTagCategoriesUseCase    *settings.GetTagCategoriesUseCase
	updateTagCategoriesUseCase *settings.UpdateTagCategoriesUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	getTagCategoriesUseCase *settings.GetTagCategoriesUseCase,
	updateTagCategoriesUseCase *settings.UpdateTagCategoriesUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:                 getUseCase,
		updateUseCase:              updateUseCase,
		getTagCategoriesUseCase:    getTagCategoriesUseCase,
		updateTagCategoriesUseCase: updateTagCategoriesUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := settings.UpdateSettingsInput{
		Tags:   req.Tags,
		People: req.People,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// GetTagCategories handles GET /settings/tag-categories requests.
func (c *SettingsController) GetTagCategories(ctx *gin.Context) {
	output, err := c.getTagCategoriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagCategoriesResponse(output.Mappings))
}

// UpdateTagCategories handles PUT /settings/tag-categories requests.
func (c *SettingsController) UpdateTagCategories(ctx *gin.Context) {
	var req dto.UpdateTagCategoriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := settings.UpdateTagCategoriesInput{
		Mappings: dto.ToTagCategoryInputs(req),
	}

	output, err := c.updateTagCategoriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagCategoriesResponse(output.Mappings))
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		statusCode := c.getStatusCodeForSettingsError(settingsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSettingsError maps settings error codes to HTTP status codes.
func (c *SettingsController) getStatusCodeForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeTagMappingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptyTagName,
		domainerror.ErrCodeEmptyPersonName,
		domainerror.ErrCodeReservedTagRemoved,
		domainerror.ErrCodeSelfPersonRemoved,
		domainerror.ErrCodeDuplicateTagMapping,
		domainerror.ErrCodeInvalidTagCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
