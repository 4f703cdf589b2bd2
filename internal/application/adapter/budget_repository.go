// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindAll retrieves every budget. When monthFilter is non-nil, monthly
	// budgets pinned to a different month are excluded; unpinned monthly
	// budgets and custom budgets are always returned.
	FindAll(ctx context.Context, monthFilter *string) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every budget. Used by backup restore in replace mode.
	DeleteAll(ctx context.Context) error
}
