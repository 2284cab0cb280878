package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// fakeChat replays a scripted sequence of model turns and records every
// conversation snapshot it was handed.
type fakeChat struct {
	script   []domain.Turn
	err      error
	calls    int
	seen     [][]domain.Turn
	catalogs [][]string
}

func (f *fakeChat) Complete(_ context.Context, turns []domain.Turn, tools []domain.ToolDescriptor) (domain.Turn, error) {
	f.seen = append(f.seen, append([]domain.Turn(nil), turns...))
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	f.catalogs = append(f.catalogs, names)
	if f.err != nil {
		return domain.Turn{}, f.err
	}
	idx := f.calls
	f.calls++
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	return f.script[idx], nil
}

// fakeDispatcher answers tool calls from a canned payload table.
type fakeDispatcher struct {
	payloads map[string]string
	called   []string
	args     []map[string]any
}

func (f *fakeDispatcher) Catalog() []domain.ToolDescriptor {
	return []domain.ToolDescriptor{{Name: "search_tickets", Server: "ticket"}}
}

func (f *fakeDispatcher) Call(_ context.Context, name string, args map[string]any) string {
	f.called = append(f.called, name)
	f.args = append(f.args, args)
	if p, ok := f.payloads[name]; ok {
		return p
	}
	return domain.UnknownTool(name, []string{"search_tickets"}).JSON()
}

func newUC(chat ChatClient, tools ToolDispatcher, maxIter int) *QueryUseCase {
	return NewQueryUseCase(chat, tools, maxIter, slog.Default())
}

func TestExecuteImmediateAnswer(t *testing.T) {
	chat := &fakeChat{script: []domain.Turn{domain.AssistantTurn("All quiet.", nil)}}
	tools := &fakeDispatcher{}

	got, err := newUC(chat, tools, 0).Execute(context.Background(), "any open tickets?")
	require.NoError(t, err)
	assert.Equal(t, "All quiet.", got)
	assert.Empty(t, tools.called)
	assert.Equal(t, 1, chat.calls)
}

func TestExecuteDispatchLoop(t *testing.T) {
	calls := []domain.ToolCall{
		{ID: "call_1", Name: "search_tickets", Arguments: `{"priority":"critical"}`},
		{ID: "call_2", Name: "get_invoice", Arguments: `{"invoice_id":"INV-2025-001"}`},
	}
	chat := &fakeChat{script: []domain.Turn{
		domain.AssistantTurn("", calls),
		domain.AssistantTurn("Two things found.", nil),
	}}
	tools := &fakeDispatcher{payloads: map[string]string{
		"search_tickets": `{"total_count":3}`,
		"get_invoice":    `{"invoice_id":"INV-2025-001"}`,
	}}

	got, err := newUC(chat, tools, 0).Execute(context.Background(), "critical tickets and that invoice")
	require.NoError(t, err)
	assert.Equal(t, "Two things found.", got)

	require.Equal(t, []string{"search_tickets", "get_invoice"}, tools.called)
	assert.Equal(t, map[string]any{"priority": "critical"}, tools.args[0])

	// Second completion sees system, user, assistant, and both tool results.
	require.Len(t, chat.seen, 2)
	second := chat.seen[1]
	require.Len(t, second, 5)
	assert.Equal(t, domain.RoleAssistant, second[2].Role)
	assert.Equal(t, "call_1", second[3].ToolCallID)
	assert.Equal(t, `{"total_count":3}`, second[3].Content)
	assert.Equal(t, "call_2", second[4].ToolCallID)
}

func TestExecuteUnknownToolContinues(t *testing.T) {
	chat := &fakeChat{script: []domain.Turn{
		domain.AssistantTurn("", []domain.ToolCall{{ID: "c1", Name: "no_such_tool", Arguments: `{}`}}),
		domain.AssistantTurn("Recovered.", nil),
	}}
	tools := &fakeDispatcher{}

	got, err := newUC(chat, tools, 0).Execute(context.Background(), "do something odd")
	require.NoError(t, err)
	assert.Equal(t, "Recovered.", got)

	// The failure traveled back to the model as envelope data.
	second := chat.seen[1]
	assert.Contains(t, second[3].Content, "no_such_tool")
	assert.Contains(t, second[3].Content, `"retryable":true`)
}

func TestExecuteMalformedArguments(t *testing.T) {
	chat := &fakeChat{script: []domain.Turn{
		domain.AssistantTurn("", []domain.ToolCall{{ID: "c1", Name: "search_tickets", Arguments: `{not json`}}),
		domain.AssistantTurn("ok", nil),
	}}
	tools := &fakeDispatcher{}

	_, err := newUC(chat, tools, 0).Execute(context.Background(), "search")
	require.NoError(t, err)
	assert.Empty(t, tools.called, "malformed arguments never reach the dispatcher")
	assert.Contains(t, chat.seen[1][3].Content, "Malformed arguments")
}

func TestExecuteIterationCeiling(t *testing.T) {
	// The model keeps asking for tools forever.
	chat := &fakeChat{script: []domain.Turn{
		domain.AssistantTurn("", []domain.ToolCall{{ID: "c", Name: "search_tickets", Arguments: `{}`}}),
	}}
	tools := &fakeDispatcher{payloads: map[string]string{"search_tickets": `{}`}}

	got, err := newUC(chat, tools, 3).Execute(context.Background(), "loop forever")
	require.NoError(t, err)
	assert.Equal(t, ceilingAnswer, got)
	assert.Equal(t, 3, chat.calls, "completion rounds are bounded by the ceiling")
	assert.Len(t, tools.called, 3)
}

// failingDispatcher drops a server's tools from its catalog once a call to
// that server comes back as a transport envelope, mirroring the pool marking
// a server unavailable.
type failingDispatcher struct {
	billingDown bool
}

func (f *failingDispatcher) Catalog() []domain.ToolDescriptor {
	out := []domain.ToolDescriptor{{Name: "search_tickets", Server: "ticket"}}
	if !f.billingDown {
		out = append(out, domain.ToolDescriptor{Name: "get_invoice", Server: "billing"})
	}
	return out
}

func (f *failingDispatcher) Call(_ context.Context, name string, _ map[string]any) string {
	if name == "get_invoice" {
		f.billingDown = true
		return domain.Transport("billing", errors.New("broken pipe")).JSON()
	}
	return `{"total_count":0}`
}

func TestExecuteUnavailableServerLeavesToolSet(t *testing.T) {
	chat := &fakeChat{script: []domain.Turn{
		domain.AssistantTurn("", []domain.ToolCall{{ID: "c1", Name: "get_invoice", Arguments: `{}`}}),
		domain.AssistantTurn("Billing is unreachable.", nil),
	}}
	tools := &failingDispatcher{}

	got, err := newUC(chat, tools, 0).Execute(context.Background(), "what does CUST-001 owe?")
	require.NoError(t, err)
	assert.Equal(t, "Billing is unreachable.", got)

	require.Len(t, chat.catalogs, 2)
	assert.Contains(t, chat.catalogs[0], "get_invoice")
	assert.NotContains(t, chat.catalogs[1], "get_invoice",
		"a server marked unavailable must drop out of the next turn's tool set")
	assert.Contains(t, chat.catalogs[1], "search_tickets", "the query continues with the remaining servers")
}

func TestExecuteModelError(t *testing.T) {
	wantErr := errors.New("rate limited")
	chat := &fakeChat{err: wantErr}

	_, err := newUC(chat, &fakeDispatcher{}, 0).Execute(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestExecuteEmptyPrompt(t *testing.T) {
	_, err := newUC(&fakeChat{}, &fakeDispatcher{}, 0).Execute(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}
