// Package suggestion contains the tag suggestion use case.
package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

const (
	// MaxDescriptions is the number of descriptions accepted per request.
	// Keeping this small ensures Gemini can respond within the timeout.
	MaxDescriptions = 40

	// RequestTimeout bounds one suggestion round trip.
	RequestTimeout = 30 * time.Second
)

// SuggestTagsInput represents the input for tag suggestions.
type SuggestTagsInput struct {
	Descriptions []string
}

// SuggestTagsOutput represents the output of tag suggestions.
type SuggestTagsOutput struct {
	Suggestions []*adapter.TagSuggestionResult
}

// SuggestTagsUseCase maps free-form transaction descriptions onto the
// configured tag vocabulary through the suggestion service.
type SuggestTagsUseCase struct {
	settingsRepo      adapter.SettingsRepository
	suggestionService adapter.TagSuggestionService
}

// NewSuggestTagsUseCase creates a new SuggestTagsUseCase instance.
func NewSuggestTagsUseCase(
	settingsRepo adapter.SettingsRepository,
	suggestionService adapter.TagSuggestionService,
) *SuggestTagsUseCase {
	return &SuggestTagsUseCase{
		settingsRepo:      settingsRepo,
		suggestionService: suggestionService,
	}
}

// Execute requests a tag for each description. Suggestions always come from
// the current tag vocabulary.
func (uc *SuggestTagsUseCase) Execute(ctx context.Context, input SuggestTagsInput) (*SuggestTagsOutput, error) {
	descriptions := make([]string, 0, len(input.Descriptions))
	for _, description := range input.Descriptions {
		if trimmed := strings.TrimSpace(description); trimmed != "" {
			descriptions = append(descriptions, trimmed)
		}
	}

	// Validate descriptions
	if len(descriptions) == 0 {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeEmptyDescriptions,
			"at least one description is required",
			domainerror.ErrEmptyDescriptions,
		)
	}
	if len(descriptions) > MaxDescriptions {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeTooManyDescriptions,
			fmt.Sprintf("at most %d descriptions are accepted per request", MaxDescriptions),
			domainerror.ErrTooManyDescriptions,
		)
	}

	if !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"tag suggestions are not configured",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	requestCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	results, err := uc.suggestionService.SuggestTags(requestCtx, &adapter.TagSuggestionRequest{
		Descriptions: descriptions,
		Vocabulary:   settings.Tags,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrSuggestionRateLimited) {
			return nil, domainerror.NewSuggestionError(
				domainerror.ErrCodeSuggestionRateLimited,
				"tag suggestion service is rate limited",
				err,
			)
		}
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionServiceError,
			"tag suggestion service failed",
			err,
		)
	}

	// A suggestion outside the vocabulary is never surfaced
	suggestions := make([]*adapter.TagSuggestionResult, 0, len(results))
	for _, result := range results {
		if !settings.HasTag(result.Tag) {
			slog.Warn("Dropped suggestion with unknown tag",
				"tag", result.Tag,
				"description", result.Description,
			)
			continue
		}
		suggestions = append(suggestions, result)
	}

	return &SuggestTagsOutput{Suggestions: suggestions}, nil
}
