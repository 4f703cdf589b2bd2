// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/application/usecase/budget"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase            *budget.ListBudgetsUseCase
	createUseCase          *budget.CreateBudgetUseCase
	updateUseCase          *budget.UpdateBudgetUseCase
	deleteUseCase          *budget.DeleteBudgetUseCase
	progressUseCase        *budget.GetBudgetProgressUseCase
	categorySummaryUseCase *budget.GetCategorySummaryUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	progressUseCase *budget.GetBudgetProgressUseCase,
	categorySummaryUseCase *budget.GetCategorySummaryUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:            listUseCase,
		createUseCase:          createUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		progressUseCase:        progressUseCase,
		categorySummaryUseCase: categorySummaryUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	var input budget.ListBudgetsInput

	if month := ctx.Query("month"); month != "" {
		input.MonthFilter = &month
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.CreateBudgetInput{
		Name:     req.Name,
		Amount:   req.Amount,
		Type:     entity.BudgetType(req.Type),
		Category: entity.BudgetCategory(req.Category),
		Tags:     req.Tags,
		Month:    req.Month,
	}

	var ok bool
	if input.StartDate, ok = c.parseOptionalDate(ctx, req.StartDate, "start_date"); !ok {
		return
	}
	if input.EndDate, ok = c.parseOptionalDate(ctx, req.EndDate, "end_date"); !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID: budgetID,
		Name:     req.Name,
		Amount:   req.Amount,
		Tags:     req.Tags,
		Month:    req.Month,
	}

	if req.Category != nil {
		category := entity.BudgetCategory(*req.Category)
		input.Category = &category
	}

	var ok bool
	if input.StartDate, ok = c.parseOptionalDate(ctx, req.StartDate, "start_date"); !ok {
		return
	}
	if input.EndDate, ok = c.parseOptionalDate(ctx, req.EndDate, "end_date"); !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	input := budget.DeleteBudgetInput{
		BudgetID: budgetID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Progress handles GET /budgets/progress requests.
func (c *BudgetController) Progress(ctx *gin.Context) {
	output, err := c.progressUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetProgressListResponse(output))
}

// CategorySummary handles GET /budgets/category-summary requests.
func (c *BudgetController) CategorySummary(ctx *gin.Context) {
	output, err := c.categorySummaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySummaryResponse(output))
}

// parseOptionalDate parses a YYYY-MM-DD date when present, writing an error
// response and returning false on a malformed value.
func (c *BudgetController) parseOptionalDate(ctx *gin.Context, value *string, field string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	date, err := time.Parse("2006-01-02", *value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + field + " format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBudgetWindow),
		})
		return nil, false
	}
	return &date, true
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBudgetType,
		domainerror.ErrCodeInvalidBudgetCategory,
		domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeEmptyBudgetName,
		domainerror.ErrCodeEmptyBudgetTags,
		domainerror.ErrCodeInvalidBudgetMonth,
		domainerror.ErrCodeInvalidBudgetWindow:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
