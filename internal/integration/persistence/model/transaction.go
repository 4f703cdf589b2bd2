// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OccurredAt time.Time `gorm:"not null;index"`
	Amount     int64     `gorm:"not null"`
	Type       string    `gorm:"type:varchar(10);not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Tag        string    `gorm:"type:varchar(100);not null;index"`
	Person     string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		OccurredAt: m.OccurredAt,
		Amount:     m.Amount,
		Type:       entity.TransactionType(m.Type),
		Name:       m.Name,
		Tag:        m.Tag,
		Person:     m.Person,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		OccurredAt: transaction.OccurredAt,
		Amount:     transaction.Amount,
		Type:       string(transaction.Type),
		Name:       transaction.Name,
		Tag:        transaction.Tag,
		Person:     transaction.Person,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
	}
}
