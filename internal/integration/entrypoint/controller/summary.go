// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moneytrail/backend/internal/application/usecase/summary"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles financial summary endpoints.
type SummaryController struct {
	snapshotUseCase  *summary.GetSnapshotUseCase
	seriesUseCase    *summary.GetTimeSeriesUseCase
	monthlyUseCase   *summary.GetMonthlyComparisonUseCase
	breakdownUseCase *summary.GetCategoryBreakdownUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	snapshotUseCase *summary.GetSnapshotUseCase,
	seriesUseCase *summary.GetTimeSeriesUseCase,
	monthlyUseCase *summary.GetMonthlyComparisonUseCase,
	breakdownUseCase *summary.GetCategoryBreakdownUseCase,
) *SummaryController {
	return &SummaryController{
		snapshotUseCase:  snapshotUseCase,
		seriesUseCase:    seriesUseCase,
		monthlyUseCase:   monthlyUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// Snapshot handles GET /summary/snapshot requests.
func (c *SummaryController) Snapshot(ctx *gin.Context) {
	var input summary.GetSnapshotInput

	switch ctx.DefaultQuery("settlement", "ledger") {
	case "ledger":
		input.SettlementFromLedger = true
	case "recompute":
		input.SettlementFromLedger = false
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Settlement mode must be 'ledger' or 'recompute'",
		})
		return
	}

	output, err := c.snapshotUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSnapshotResponse(output))
}

// Series handles GET /summary/series requests.
func (c *SummaryController) Series(ctx *gin.Context) {
	var input summary.GetTimeSeriesInput

	if windowStr := ctx.Query("window"); windowStr != "" && windowStr != "all" {
		days, err := strconv.Atoi(windowStr)
		if err != nil || days <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Window must be a positive number of days or 'all'",
			})
			return
		}
		input.WindowDays = days
	}

	output, err := c.seriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimeSeriesResponse(output))
}

// Monthly handles GET /summary/monthly requests.
func (c *SummaryController) Monthly(ctx *gin.Context) {
	var input summary.GetMonthlyComparisonInput

	if monthsStr := ctx.Query("months"); monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Months must be a number",
				Code:  string(domainerror.ErrCodeInvalidMonthCount),
			})
			return
		}
		input.Months = months
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyComparisonResponse(output))
}

// Categories handles GET /summary/categories requests.
func (c *SummaryController) Categories(ctx *gin.Context) {
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// handleSummaryError handles summary errors and returns appropriate HTTP responses.
func (c *SummaryController) handleSummaryError(ctx *gin.Context, err error) {
	var summaryErr *domainerror.SummaryError
	if errors.As(err, &summaryErr) {
		statusCode := c.getStatusCodeForSummaryError(summaryErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: summaryErr.Message,
			Code:  string(summaryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSummaryError maps summary error codes to HTTP status codes.
func (c *SummaryController) getStatusCodeForSummaryError(code domainerror.SummaryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidMonthCount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
