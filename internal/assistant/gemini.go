package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

const repliesPrompt = `You are a relationship expert specializing in empathetic communication.

Based on the sentiment expressed in the following note, suggest three different replies that are supportive, caring, and thoughtful.

Note: %s

Format your response as a JSON array of strings.`

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiSuggester suggests replies with a Gemini model.
type GeminiSuggester struct {
	models contentGenerator
	model  string
}

// NewGeminiSuggester creates a suggester using the Gemini API with apiKey.
func NewGeminiSuggester(ctx context.Context, apiKey, model string) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiSuggester{models: client.Models, model: model}, nil
}

// SuggestReplies asks the model for replies to note.
func (g *GeminiSuggester) SuggestReplies(ctx context.Context, note string) ([]string, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, ErrEmptyInput
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(fmt.Sprintf(repliesPrompt, note)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return parseReplies(resp.Text())
}

// parseReplies accepts either a bare JSON array of strings or an object with
// a "suggestedReplies" array.
func parseReplies(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMissingFields)
	}

	var replies []string
	if err := json.Unmarshal([]byte(text), &replies); err != nil {
		var wrapped struct {
			SuggestedReplies []string `json:"suggestedReplies"`
		}
		if err2 := json.Unmarshal([]byte(text), &wrapped); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
		}
		replies = wrapped.SuggestedReplies
	}

	out := replies[:0]
	for _, r := range replies {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no replies", ErrMissingFields)
	}
	return out, nil
}
