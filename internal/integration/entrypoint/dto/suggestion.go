// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/moneytrail/backend/internal/application/usecase/suggestion"
)

// SuggestTagsRequest represents the request body for tag suggestions.
type SuggestTagsRequest struct {
	Descriptions []string `json:"descriptions" binding:"required,min=1"`
}

// TagSuggestionResponse represents one suggested tag.
type TagSuggestionResponse struct {
	Description string  `json:"description"`
	Tag         string  `json:"tag"`
	Confidence  float64 `json:"confidence"`
}

// SuggestTagsResponse represents the response for tag suggestions.
type SuggestTagsResponse struct {
	Suggestions []TagSuggestionResponse `json:"suggestions"`
}

// ToSuggestTagsResponse converts a SuggestTagsOutput to its DTO.
func ToSuggestTagsResponse(output *suggestion.SuggestTagsOutput) SuggestTagsResponse {
	suggestions := make([]TagSuggestionResponse, 0, len(output.Suggestions))
	for _, result := range output.Suggestions {
		suggestions = append(suggestions, TagSuggestionResponse{
			Description: result.Description,
			Tag:         result.Tag,
			Confidence:  result.Confidence,
		})
	}
	return SuggestTagsResponse{Suggestions: suggestions}
}
