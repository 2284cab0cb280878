package mcppool

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

func testPool() *Pool {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(nil, time.Second, logger)
}

// fakeSession stands in for a stdio server connection. It fails the first
// `failures` tool calls with a transport error and succeeds afterwards.
type fakeSession struct {
	tools    []mcp.Tool
	failures int
	calls    int
	closed   bool
}

func (f *fakeSession) Initialize(context.Context, mcp.InitializeRequest) (*mcp.InitializeResult, error) {
	return &mcp.InitializeResult{}, nil
}

func (f *fakeSession) ListTools(context.Context, mcp.ListToolsRequest) (*mcp.ListToolsResult, error) {
	return &mcp.ListToolsResult{Tools: f.tools}, nil
}

func (f *fakeSession) CallTool(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("broken pipe")
	}
	return mcp.NewToolResultText(`{"total_count":0}`), nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

// startPool wires the pool to fake sessions and runs Start plus Discover.
func startPool(t *testing.T, configs []ServerConfig, sessions map[string]*fakeSession) *Pool {
	t.Helper()
	orig := dial
	dial = func(cfg ServerConfig) (session, error) {
		s, ok := sessions[cfg.Name]
		if !ok {
			return nil, errors.New("no such server")
		}
		return s, nil
	}
	t.Cleanup(func() { dial = orig })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := New(configs, time.Second, logger)
	require.NoError(t, p.Start(context.Background()))
	_, err := p.Discover(context.Background())
	require.NoError(t, err)
	return p
}

func TestCall_RetriesOnceThenSucceeds(t *testing.T) {
	billing := &fakeSession{tools: []mcp.Tool{{Name: "get_invoice"}}, failures: 1}
	p := startPool(t,
		[]ServerConfig{{Name: "billing", Command: "helpdesk-billing-server"}},
		map[string]*fakeSession{"billing": billing})

	payload := p.Call(context.Background(), "get_invoice", nil)

	assert.Equal(t, `{"total_count":0}`, payload)
	assert.Equal(t, 2, billing.calls, "one failure triggers exactly one retry")
	assert.Len(t, p.Catalog(), 1, "a recovered server keeps its tools")
}

func TestCall_SecondFailureMarksServerUnavailable(t *testing.T) {
	ticket := &fakeSession{tools: []mcp.Tool{{Name: "search_tickets"}}}
	billing := &fakeSession{tools: []mcp.Tool{{Name: "get_invoice"}}, failures: 2}
	p := startPool(t,
		[]ServerConfig{
			{Name: "ticket", Command: "helpdesk-ticket-server"},
			{Name: "billing", Command: "helpdesk-billing-server"},
		},
		map[string]*fakeSession{"ticket": ticket, "billing": billing})

	payload := p.Call(context.Background(), "get_invoice", nil)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal([]byte(payload), &env))
	assert.False(t, env.Retryable)
	assert.Contains(t, env.Error, "billing")
	assert.Equal(t, 2, billing.calls)

	// The dead server's tools drop out of the catalog; the rest stay.
	names := make([]string, 0, 1)
	for _, d := range p.Catalog() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"search_tickets"}, names)

	// Further calls to the dead server short-circuit without touching it.
	payload = p.Call(context.Background(), "get_invoice", nil)
	require.NoError(t, json.Unmarshal([]byte(payload), &env))
	assert.False(t, env.Retryable)
	assert.Equal(t, 2, billing.calls)

	// Other servers keep serving.
	assert.Equal(t, `{"total_count":0}`, p.Call(context.Background(), "search_tickets", nil))
}

func TestStop_ClosesSessions(t *testing.T) {
	ticket := &fakeSession{tools: []mcp.Tool{{Name: "search_tickets"}}}
	p := startPool(t,
		[]ServerConfig{{Name: "ticket", Command: "helpdesk-ticket-server"}},
		map[string]*fakeSession{"ticket": ticket})

	p.Stop()
	p.Stop()

	assert.True(t, ticket.closed)
	assert.Empty(t, p.Catalog())
}

func TestCall_UnknownToolReturnsEnvelope(t *testing.T) {
	p := testPool()

	payload := p.Call(context.Background(), "reboot_datacenter", nil)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal([]byte(payload), &env))
	assert.True(t, env.Retryable)
	assert.Contains(t, env.Error, "reboot_datacenter")
	assert.NotEmpty(t, env.SuggestedActions)
}

func TestCatalog_EmptyBeforeStart(t *testing.T) {
	p := testPool()
	assert.Empty(t, p.Catalog())
}

func TestStop_Idempotent(t *testing.T) {
	p := testPool()

	p.Stop()
	p.Stop()

	assert.Empty(t, p.Catalog())
}
