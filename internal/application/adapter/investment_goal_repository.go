// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// InvestmentGoalRepository defines the interface for investment goal
// persistence operations.
type InvestmentGoalRepository interface {
	// Create creates a new investment goal in the database.
	Create(ctx context.Context, goal *entity.InvestmentGoal) error

	// FindByID retrieves an investment goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InvestmentGoal, error)

	// FindAll retrieves every investment goal ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.InvestmentGoal, error)

	// Update updates an existing investment goal in the database.
	Update(ctx context.Context, goal *entity.InvestmentGoal) error

	// Delete removes an investment goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every investment goal. Used by backup restore in replace mode.
	DeleteAll(ctx context.Context) error
}
