// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// TagSuggestionRequest represents a request to suggest tags for descriptions.
type TagSuggestionRequest struct {
	Descriptions []string
	Vocabulary   []string
}

// TagSuggestionResult represents a suggested tag for one description.
type TagSuggestionResult struct {
	Description string
	Tag         string
	Confidence  float64
}

// TagSuggestionService defines the interface for tag suggestion operations.
type TagSuggestionService interface {
	// SuggestTags maps each description onto a tag from the vocabulary.
	SuggestTags(ctx context.Context, request *TagSuggestionRequest) ([]*TagSuggestionResult, error)

	// IsAvailable checks if the suggestion service is available and properly configured.
	IsAvailable() bool
}
