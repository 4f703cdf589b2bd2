// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneytrail/backend/internal/application/usecase/settings"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for updating the vocabularies.
type UpdateSettingsRequest struct {
	Tags   []string `json:"tags" binding:"required,min=1"`
	People []string `json:"people" binding:"required,min=1"`
}

// SettingsResponse represents the settings in API responses. The passphrase
// hash never leaves the server.
type SettingsResponse struct {
	Tags      []string  `json:"tags"`
	People    []string  `json:"people"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagCategoryMappingRequest represents one tag-to-category assignment.
type TagCategoryMappingRequest struct {
	Tag      string `json:"tag" binding:"required"`
	Category string `json:"category" binding:"required,oneof=needs wants investment"`
}

// UpdateTagCategoriesRequest represents the request body for replacing the tag
// category mappings.
type UpdateTagCategoriesRequest struct {
	Mappings []TagCategoryMappingRequest `json:"mappings" binding:"required"`
}

// TagCategoryMappingResponse represents one tag-to-category mapping.
type TagCategoryMappingResponse struct {
	Tag      string `json:"tag"`
	Category string `json:"category"`
}

// TagCategoriesResponse represents the response for listing tag category mappings.
type TagCategoriesResponse struct {
	Mappings []TagCategoryMappingResponse `json:"mappings"`
}

// ToSettingsResponse converts a settings entity to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.Settings) SettingsResponse {
	return SettingsResponse{
		Tags:      s.Tags,
		People:    s.People,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToTagCategoriesResponse converts tag category mappings to their DTO.
func ToTagCategoriesResponse(mappings []*entity.TagCategoryMapping) TagCategoriesResponse {
	response := make([]TagCategoryMappingResponse, 0, len(mappings))
	for _, mapping := range mappings {
		response = append(response, TagCategoryMappingResponse{
			Tag:      mapping.Tag,
			Category: string(mapping.Category),
		})
	}
	return TagCategoriesResponse{Mappings: response}
}

// ToTagCategoryInputs converts the request mappings to use case inputs.
func ToTagCategoryInputs(req UpdateTagCategoriesRequest) []settings.TagCategoryInput {
	inputs := make([]settings.TagCategoryInput, 0, len(req.Mappings))
	for _, mapping := range req.Mappings {
		inputs = append(inputs, settings.TagCategoryInput{
			Tag:      mapping.Tag,
			Category: entity.BudgetCategory(mapping.Category),
		})
	}
	return inputs
}
