package usecase

import (
	"context"
	"errors"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// ChatClient is the boundary to the language model. Complete sends the
// conversation so far plus the tool catalog and returns the model's next
// turn, which either answers in Content or requests tool calls.
type ChatClient interface {
	Complete(ctx context.Context, turns []domain.Turn, tools []domain.ToolDescriptor) (domain.Turn, error)
}

// ToolDispatcher routes tool calls to the server fleet. Call never fails at
// the Go level: failures come back as serialized error envelopes for the
// model to read.
type ToolDispatcher interface {
	Catalog() []domain.ToolDescriptor
	Call(ctx context.Context, name string, args map[string]any) string
}

// Sentinel errors returned by the query use case.
var (
	// ErrEmptyPrompt is returned when a query is started with a blank prompt.
	ErrEmptyPrompt = errors.New("empty prompt")
)
