package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

const systemPrompt = "You are a helpful IT support assistant. You have access to various tools " +
	"to help answer questions about tickets, customers, billing, knowledge base articles, and " +
	"assets. Use the tools to gather information needed to answer the user's questions accurately."

// ceilingAnswer is returned when a query burns through its iteration budget
// without the model producing a final answer.
const ceilingAnswer = "I've reached the maximum number of tool calls. " +
	"Please try rephrasing your question or breaking it into smaller parts."

// DefaultMaxIterations bounds the tool-calling rounds of a single query.
const DefaultMaxIterations = 10

// queryState is the phase of a running query.
type queryState int

const (
	// awaitingModel: the next step is a model completion.
	awaitingModel queryState = iota
	// dispatchingTools: the model requested tool calls that must run before
	// the conversation can continue.
	dispatchingTools
	// done: the model produced a final answer.
	done
	// aborted: the iteration ceiling was hit before a final answer.
	aborted
)

// QueryUseCase drives the multi-turn function-calling loop: model completion,
// tool dispatch, repeat, until the model answers in plain text or the
// iteration ceiling aborts the run.
type QueryUseCase struct {
	chat          ChatClient
	tools         ToolDispatcher
	maxIterations int
	logger        *slog.Logger
	tracer        trace.Tracer
	queries       metric.Int64Counter
	toolCalls     metric.Int64Counter
}

// NewQueryUseCase creates the query loop. maxIterations <= 0 selects
// DefaultMaxIterations.
func NewQueryUseCase(chat ChatClient, tools ToolDispatcher, maxIterations int, logger *slog.Logger) *QueryUseCase {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	meter := otel.Meter("helpdesk/usecase")
	queries, _ := meter.Int64Counter("helpdesk.queries",
		metric.WithDescription("User queries processed"))
	toolCalls, _ := meter.Int64Counter("helpdesk.tool_calls",
		metric.WithDescription("Tool invocations dispatched to MCP servers"))
	return &QueryUseCase{
		chat:          chat,
		tools:         tools,
		maxIterations: maxIterations,
		logger:        logger.With("usecase", "Query"),
		tracer:        otel.Tracer("helpdesk/usecase"),
		queries:       queries,
		toolCalls:     toolCalls,
	}
}

// Execute answers one user prompt. The conversation state lives only for the
// duration of the call; consecutive queries share nothing.
func (uc *QueryUseCase) Execute(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	uc.queries.Add(ctx, 1)
	runID := uuid.NewString()
	log := uc.logger.With(slog.String("run_id", runID))
	ctx, span := uc.tracer.Start(ctx, "query",
		trace.WithAttributes(attribute.String("run_id", runID)))
	defer span.End()

	turns := []domain.Turn{
		{Role: domain.RoleSystem, Content: systemPrompt},
		domain.UserTurn(prompt),
	}

	var (
		state      = awaitingModel
		iterations = 0
		pending    []domain.ToolCall
		answer     string
	)
	for {
		switch state {
		case awaitingModel:
			if iterations == uc.maxIterations {
				state = aborted
				continue
			}
			iterations++
			log.Debug("Query iteration", slog.Int("iteration", iterations))

			// Re-read the catalog every turn: servers marked unavailable by
			// an earlier dispatch must not be offered to the model again.
			catalog := uc.tools.Catalog()
			reply, err := uc.chat.Complete(ctx, turns, catalog)
			if err != nil {
				log.Error("Model completion failed", slog.Any("error", err))
				return "", fmt.Errorf("model completion: %w", err)
			}
			if len(reply.ToolCalls) == 0 {
				answer = reply.Content
				state = done
				continue
			}
			turns = append(turns, reply)
			pending = reply.ToolCalls
			state = dispatchingTools

		case dispatchingTools:
			log.Info("Dispatching tool calls", slog.Int("count", len(pending)))
			for _, call := range pending {
				payload := uc.dispatch(ctx, call)
				turns = append(turns, domain.ToolResultTurn(call, payload))
			}
			pending = nil
			state = awaitingModel

		case done:
			log.Info("Query answered",
				slog.Int("iterations", iterations), slog.Int("turns", len(turns)))
			return answer, nil

		case aborted:
			log.Warn("Iteration ceiling reached", slog.Int("max_iterations", uc.maxIterations))
			span.SetAttributes(attribute.Bool("aborted", true))
			return ceilingAnswer, nil
		}
	}
}

// dispatch runs one tool call and always produces a payload for the model:
// malformed arguments and transport failures become error envelopes rather
// than aborting the query.
func (uc *QueryUseCase) dispatch(ctx context.Context, call domain.ToolCall) string {
	ctx, span := uc.tracer.Start(ctx, "dispatch",
		trace.WithAttributes(attribute.String("tool", call.Name)))
	defer span.End()
	uc.toolCalls.Add(ctx, 1, metric.WithAttributes(attribute.String("tool", call.Name)))

	args := map[string]any{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			uc.logger.Warn("Model produced malformed tool arguments",
				slog.String("tool", call.Name), slog.Any("error", err))
			return domain.Validation(
				fmt.Sprintf("Malformed arguments for tool %s", call.Name),
				"The tool call arguments were not a valid JSON object.",
				[]string{"Retry the call with a well-formed JSON argument object."},
			).WithContext("tool_name", call.Name).JSON()
		}
	}

	uc.logger.Debug("Calling tool", slog.String("tool", call.Name))
	return uc.tools.Call(ctx, call.Name, args)
}
