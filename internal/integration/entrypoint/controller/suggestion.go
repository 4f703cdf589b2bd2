// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneytrail/backend/internal/application/usecase/suggestion"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/entrypoint/dto"
)

// SuggestionController handles tag suggestion endpoints.
type SuggestionController struct {
	suggestUseCase *suggestion.SuggestTagsUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(suggestUseCase *suggestion.SuggestTagsUseCase) *SuggestionController {
	return &SuggestionController{
		suggestUseCase: suggestUseCase,
	}
}

// SuggestTags handles POST /suggestions/tags requests.
func (c *SuggestionController) SuggestTags(ctx *gin.Context) {
	var req dto.SuggestTagsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyDescriptions),
		})
		return
	}

	input := suggestion.SuggestTagsInput{
		Descriptions: req.Descriptions,
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestTagsResponse(output))
}

// handleSuggestionError handles suggestion errors and returns appropriate HTTP responses.
func (c *SuggestionController) handleSuggestionError(ctx *gin.Context, err error) {
	var suggestionErr *domainerror.SuggestionError
	if errors.As(err, &suggestionErr) {
		statusCode := c.getStatusCodeForSuggestionError(suggestionErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: suggestionErr.Message,
			Code:  string(suggestionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSuggestionError maps suggestion error codes to HTTP status codes.
func (c *SuggestionController) getStatusCodeForSuggestionError(code domainerror.SuggestionErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyDescriptions,
		domainerror.ErrCodeTooManyDescriptions:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuggestionRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
