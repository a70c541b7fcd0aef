// Package gemini adapts the Google Gemini API to a free-text classifier.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/heartmarshall/tripmatch-backend/internal/provider"
)

// DefaultModel is used when neither config nor prompt names a model.
const DefaultModel = "gemini-2.0-flash"

// Classifier sends prompts to Gemini and returns the text reply.
type Classifier struct {
	client *genai.Client
	log    *slog.Logger
}

// NewClassifier creates a Classifier for the Gemini API. baseURL is empty
// in production and points at a test server in tests.
func NewClassifier(ctx context.Context, apiKey, baseURL string, logger *slog.Logger) (*Classifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Classifier{
		client: client,
		log:    logger.With("adapter", "gemini"),
	}, nil
}

// Classify performs one GenerateContent call and returns the reply text.
func (c *Classifier) Classify(ctx context.Context, req provider.ClassifyRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	c.log.DebugContext(ctx, "gemini request",
		slog.String("model", model),
		slog.Int("prompt_len", len(req.Prompt)),
	)

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxOutputTokens),
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	return resp.Text(), nil
}
