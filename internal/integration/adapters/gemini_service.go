// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/moneytrail/backend/internal/application/adapter"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// GeminiService implements the TagSuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestTags maps each description onto a tag from the vocabulary.
func (s *GeminiService) SuggestTags(ctx context.Context, request *adapter.TagSuggestionRequest) ([]*adapter.TagSuggestionResult, error) {
	if !s.IsAvailable() {
		return nil, domainerror.ErrSuggestionUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %w", domainerror.ErrSuggestionRateLimited, err)
		}
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	results, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return results, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.TagSuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You classify personal finance transaction descriptions. Assign each description exactly one tag from the allowed list.

RULES:
- Use ONLY tags from the allowed list below. Never invent a new tag.
- Pick the tag that best matches what the money was spent on or earned from.
- When nothing fits well, pick the closest tag and lower the confidence.

ALLOWED TAGS:
`)

	for _, tag := range request.Vocabulary {
		sb.WriteString("- " + tag + "\n")
	}

	sb.WriteString("\nDESCRIPTIONS TO CLASSIFY:\n")
	for _, description := range request.Descriptions {
		sb.WriteString(fmt.Sprintf("- %q\n", description))
	}

	sb.WriteString(`
Respond with a JSON array containing one object per description, in the same order:
{
  "description": "the description text",
  "tag": "a tag from the allowed list",
  "confidence": 0.0-1.0
}

RESPONSE FORMAT: Return only the JSON array, no additional text.
`)

	return sb.String()
}

// geminiTagSuggestion represents the raw response from Gemini.
type geminiTagSuggestion struct {
	Description string  `json:"description"`
	Tag         string  `json:"tag"`
	Confidence  float64 `json:"confidence"`
}

// parseResponse parses the Gemini response into TagSuggestionResults.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.TagSuggestionResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestions []geminiTagSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	results := make([]*adapter.TagSuggestionResult, 0, len(suggestions))
	for _, suggestion := range suggestions {
		if suggestion.Tag == "" {
			continue
		}
		results = append(results, &adapter.TagSuggestionResult{
			Description: suggestion.Description,
			Tag:         suggestion.Tag,
			Confidence:  suggestion.Confidence,
		})
	}

	return results, nil
}
