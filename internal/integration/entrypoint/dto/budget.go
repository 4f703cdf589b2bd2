// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneytrail/backend/internal/application/usecase/budget"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=255"`
	Amount    int64    `json:"amount" binding:"required,gt=0"`
	Type      string   `json:"type" binding:"required,oneof=monthly custom"`
	Category  string   `json:"category" binding:"required,oneof=needs wants investment"`
	Tags      []string `json:"tags" binding:"required,min=1"`
	Month     *string  `json:"month,omitempty"`
	StartDate *string  `json:"start_date,omitempty"`
	EndDate   *string  `json:"end_date,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name      *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Amount    *int64   `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Category  *string  `json:"category,omitempty" binding:"omitempty,oneof=needs wants investment"`
	Tags      []string `json:"tags,omitempty"`
	Month     *string  `json:"month,omitempty"`
	StartDate *string  `json:"start_date,omitempty"`
	EndDate   *string  `json:"end_date,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Month     *string   `json:"month,omitempty"`
	StartDate *string   `json:"start_date,omitempty"`
	EndDate   *string   `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetProgressResponse represents one budget's progress in API responses.
// Rates are decimal strings; amounts are integers in the smallest unit.
type BudgetProgressResponse struct {
	Budget               BudgetResponse `json:"budget"`
	Spent                int64          `json:"spent"`
	Percentage           int            `json:"percentage"`
	IsOverBudget         bool           `json:"is_over_budget"`
	DaysLeft             int            `json:"days_left"`
	DailyBurnRate        string         `json:"daily_burn_rate"`
	PaceRatio            string         `json:"pace_ratio"`
	OverspendProbability int            `json:"overspend_probability"`
}

// BudgetProgressListResponse represents the response for budget progress.
type BudgetProgressListResponse struct {
	Items []BudgetProgressResponse `json:"items"`
}

// CategorySummaryLineResponse represents one category line in the needs/wants/investment summary.
type CategorySummaryLineResponse struct {
	Category   string `json:"category"`
	Spent      int64  `json:"spent"`
	Budget     int64  `json:"budget"`
	Percentage int    `json:"percentage"`
}

// CategorySummaryResponse represents the response for the category summary.
type CategorySummaryResponse struct {
	Lines []CategorySummaryLineResponse `json:"lines"`
}

// ToBudgetResponse converts a budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	response := BudgetResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		Amount:    b.Amount,
		Type:      string(b.Type),
		Category:  string(b.Category),
		Tags:      b.Tags,
		Month:     b.Month,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.StartDate != nil {
		start := b.StartDate.Format("2006-01-02")
		response.StartDate = &start
	}
	if b.EndDate != nil {
		end := b.EndDate.Format("2006-01-02")
		response.EndDate = &end
	}
	return response
}

// ToBudgetListResponse converts a ListBudgetsOutput to a BudgetListResponse DTO.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, 0, len(output.Budgets))
	for _, b := range output.Budgets {
		budgets = append(budgets, ToBudgetResponse(b))
	}
	return BudgetListResponse{Budgets: budgets}
}

// ToBudgetProgressListResponse converts a GetBudgetProgressOutput to its DTO.
func ToBudgetProgressListResponse(output *budget.GetBudgetProgressOutput) BudgetProgressListResponse {
	items := make([]BudgetProgressResponse, 0, len(output.Items))
	for _, item := range output.Items {
		items = append(items, BudgetProgressResponse{
			Budget:               ToBudgetResponse(item.Budget),
			Spent:                item.Spent,
			Percentage:           item.Percentage,
			IsOverBudget:         item.IsOverBudget,
			DaysLeft:             item.DaysLeft,
			DailyBurnRate:        item.DailyBurnRate.StringFixed(2),
			PaceRatio:            item.PaceRatio.StringFixed(2),
			OverspendProbability: item.OverspendProbability,
		})
	}
	return BudgetProgressListResponse{Items: items}
}

// ToCategorySummaryResponse converts a GetCategorySummaryOutput to its DTO.
func ToCategorySummaryResponse(output *budget.GetCategorySummaryOutput) CategorySummaryResponse {
	lines := make([]CategorySummaryLineResponse, 0, len(output.Lines))
	for _, line := range output.Lines {
		lines = append(lines, CategorySummaryLineResponse{
			Category:   string(line.Category),
			Spent:      line.Spent,
			Budget:     line.Budget,
			Percentage: line.Percentage,
		})
	}
	return CategorySummaryResponse{Lines: lines}
}
