// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Settings holds the single-user application settings: the tag vocabulary,
// the known counterparty names and the unlock passphrase hash. Exactly one
// row exists.
type Settings struct {
	Tags           []string
	People         []string
	PassphraseHash string
	UpdatedAt      time.Time
}

// DefaultSettings returns the settings seeded on first startup. The tag
// vocabulary always contains the engine-reserved tags.
func DefaultSettings() *Settings {
	return &Settings{
		Tags: []string{
			"Food",
			"Transport",
			"Rent",
			"Utilities",
			"Entertainment",
			"Shopping",
			"Health",
			TagInvestment,
			TagSettlement,
			"Salary",
			"Other",
		},
		People:    []string{SelfPerson},
		UpdatedAt: time.Now().UTC(),
	}
}

// HasTag reports whether the tag is part of the vocabulary.
func (s *Settings) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasPerson reports whether the person name is known.
func (s *Settings) HasPerson(person string) bool {
	for _, p := range s.People {
		if p == person {
			return true
		}
	}
	return false
}

// TagCategoryMapping assigns a budget category to a tag. It backs the
// needs/wants/investment breakdown for budgets that carry no explicit
// category.
type TagCategoryMapping struct {
	ID        uuid.UUID
	Tag       string
	Category  BudgetCategory
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTagCategoryMapping creates a new TagCategoryMapping entity.
func NewTagCategoryMapping(tag string, category BudgetCategory) *TagCategoryMapping {
	now := time.Now().UTC()

	return &TagCategoryMapping{
		ID:        uuid.New(),
		Tag:       tag,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
