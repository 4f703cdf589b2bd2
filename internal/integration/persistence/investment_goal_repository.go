// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/persistence/model"
)

// investmentGoalRepository implements the adapter.InvestmentGoalRepository interface.
type investmentGoalRepository struct {
	db *gorm.DB
}

// NewInvestmentGoalRepository creates a new investment goal repository instance.
func NewInvestmentGoalRepository(db *gorm.DB) adapter.InvestmentGoalRepository {
	return &investmentGoalRepository{
		db: db,
	}
}

// Create creates a new investment goal in the database.
func (r *investmentGoalRepository) Create(ctx context.Context, goal *entity.InvestmentGoal) error {
	goalModel := model.InvestmentGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an investment goal by its ID.
func (r *investmentGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InvestmentGoal, error) {
	var goalModel model.InvestmentGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindAll retrieves every investment goal ordered by creation time.
func (r *investmentGoalRepository) FindAll(ctx context.Context) ([]*entity.InvestmentGoal, error) {
	var goalModels []model.InvestmentGoalModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.InvestmentGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates an existing investment goal in the database.
func (r *investmentGoalRepository) Update(ctx context.Context, goal *entity.InvestmentGoal) error {
	goalModel := model.InvestmentGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an investment goal from the database.
func (r *investmentGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvestmentGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteAll removes every investment goal.
func (r *investmentGoalRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.InvestmentGoalModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
