// Package openaichat adapts the OpenAI chat completions API to the ChatClient
// port. The API key lives only inside the SDK client; it is never logged or
// written anywhere.
package openaichat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// Client talks to the OpenAI chat completions endpoint with function calling
// enabled.
type Client struct {
	api    openai.Client
	model  shared.ChatModel
	logger *slog.Logger
}

// New builds a chat client for the given model. apiKey is handed straight to
// the SDK and not retained here.
func New(apiKey, model string, logger *slog.Logger) *Client {
	return &Client{
		api:    openai.NewClient(option.WithAPIKey(apiKey)),
		model:  shared.ChatModel(model),
		logger: logger.With(slog.String("component", "openaichat")),
	}
}

// Complete sends the conversation and tool catalog to the model and returns
// its next turn.
func (c *Client) Complete(ctx context.Context, turns []domain.Turn, tools []domain.ToolDescriptor) (domain.Turn, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: toMessages(turns),
		Tools:    toTools(tools),
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return domain.Turn{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.Turn{}, fmt.Errorf("chat completion: empty choice list")
	}

	msg := resp.Choices[0].Message
	var calls []domain.ToolCall
	for _, tc := range msg.ToolCalls {
		calls = append(calls, domain.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	c.logger.Debug("Model turn received",
		slog.Int("tool_calls", len(calls)), slog.Bool("final", len(calls) == 0))
	return domain.AssistantTurn(msg.Content, calls), nil
}
