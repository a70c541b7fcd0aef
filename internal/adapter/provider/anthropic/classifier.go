// Package anthropic adapts the Anthropic Messages API to a free-text classifier.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/tripmatch-backend/internal/provider"
)

// DefaultModel is used when neither config nor prompt names a model.
const DefaultModel = "claude-3-5-haiku-latest"

// Classifier sends prompts to Claude and returns the text reply.
type Classifier struct {
	client sdk.Client
	log    *slog.Logger
}

// NewClassifier creates a Classifier authenticated with apiKey.
// Retries are disabled: a failed call is retried by the next scheduled run.
func NewClassifier(apiKey string, logger *slog.Logger, opts ...option.RequestOption) *Classifier {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Classifier{
		client: sdk.NewClient(opts...),
		log:    logger.With("adapter", "anthropic"),
	}
}

// Classify performs one Messages call and concatenates the text blocks of the reply.
func (c *Classifier) Classify(ctx context.Context, req provider.ClassifyRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	c.log.DebugContext(ctx, "anthropic request",
		slog.String("model", model),
		slog.Int("prompt_len", len(req.Prompt)),
	)

	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(model),
		MaxTokens:   int64(req.MaxOutputTokens),
		Temperature: sdk.Float(req.Temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages call: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	c.log.DebugContext(ctx, "anthropic response",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int("text_len", sb.Len()),
	)

	return sb.String(), nil
}
