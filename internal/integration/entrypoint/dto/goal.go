// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneytrail/backend/internal/application/usecase/goal"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for investment goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	TargetAmount int64   `json:"target_amount" binding:"required,gt=0"`
	TargetDate   *string `json:"target_date,omitempty"`
}

// UpdateGoalRequest represents the request body for investment goal update.
type UpdateGoalRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	TargetAmount    *int64  `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	TargetDate      *string `json:"target_date,omitempty"`
	ClearTargetDate bool    `json:"clear_target_date,omitempty"`
}

// GoalResponse represents a single investment goal in API responses.
type GoalResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TargetAmount int64     `json:"target_amount"`
	TargetDate   *string   `json:"target_date,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoalProgressResponse represents an investment goal with its computed progress.
type GoalProgressResponse struct {
	Goal           GoalResponse `json:"goal"`
	InvestedAmount int64        `json:"invested_amount"`
	Percentage     int          `json:"percentage"`
	Achieved       bool         `json:"achieved"`
}

// GoalListResponse represents the response for listing investment goals.
type GoalListResponse struct {
	Goals []GoalProgressResponse `json:"goals"`
}

// ToGoalResponse converts an investment goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.InvestmentGoal) GoalResponse {
	response := GoalResponse{
		ID:           g.ID.String(),
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
	if g.TargetDate != nil {
		date := g.TargetDate.Format("2006-01-02")
		response.TargetDate = &date
	}
	return response
}

// ToGoalProgressResponse converts an InvestmentGoalProgress to its DTO.
func ToGoalProgressResponse(progress entity.InvestmentGoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		Goal:           ToGoalResponse(progress.Goal),
		InvestedAmount: progress.InvestedAmount,
		Percentage:     progress.Percentage,
		Achieved:       progress.Achieved,
	}
}

// ToGoalListResponse converts a ListGoalsOutput to a GoalListResponse DTO.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalProgressResponse, 0, len(output.Goals))
	for _, progress := range output.Goals {
		goals = append(goals, ToGoalProgressResponse(progress))
	}
	return GoalListResponse{Goals: goals}
}
