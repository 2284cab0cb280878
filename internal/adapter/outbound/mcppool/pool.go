// Package mcppool manages the fleet of MCP tool servers: it launches each one
// as a stdio subprocess, discovers their tools into a single routing table,
// and dispatches tool calls to the owning server.
package mcppool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// ServerConfig describes one tool server to launch over stdio.
type ServerConfig struct {
	Name        string   `yaml:"name"`
	Command     string   `yaml:"command"`
	Args        []string `yaml:"args"`
	Description string   `yaml:"description"`
}

// session is the slice of the MCP client the pool uses. Satisfied by
// *client.Client; tests substitute fakes.
type session interface {
	Initialize(ctx context.Context, req mcp.InitializeRequest) (*mcp.InitializeResult, error)
	ListTools(ctx context.Context, req mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
	Close() error
}

// dial launches one server subprocess. Swapped out in tests.
var dial = func(cfg ServerConfig) (session, error) {
	return client.NewStdioMCPClient(cfg.Command, nil, cfg.Args...)
}

// Pool owns the stdio connections to every tool server. All methods are safe
// for concurrent use.
type Pool struct {
	configs     []ServerConfig
	callTimeout time.Duration
	logger      *slog.Logger

	failures metric.Int64Counter

	mu          sync.Mutex
	sessions    map[string]session
	routes      map[string]string
	tools       []domain.ToolDescriptor
	unavailable map[string]bool
	started     bool
}

// New creates a pool for the given server fleet. Servers are not launched
// until Start.
func New(configs []ServerConfig, callTimeout time.Duration, logger *slog.Logger) *Pool {
	failures, _ := otel.Meter("helpdesk/mcppool").Int64Counter("helpdesk.tool_failures",
		metric.WithDescription("Tool calls that produced an error envelope at the transport layer"))
	return &Pool{
		configs:     configs,
		callTimeout: callTimeout,
		logger:      logger.With(slog.String("component", "mcppool")),
		failures:    failures,
		sessions:    make(map[string]session),
		routes:      make(map[string]string),
		unavailable: make(map[string]bool),
	}
}

// Start launches every configured server and completes the MCP initialize
// handshake with each. Startup is all-or-nothing: if any server fails, the
// ones already running are shut down and the error is returned.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}

	for _, cfg := range p.configs {
		log := p.logger.With(slog.String("server", cfg.Name))
		log.Info("Starting tool server", slog.String("command", cfg.Command))

		c, err := dial(cfg)
		if err != nil {
			p.closeAllLocked()
			return fmt.Errorf("starting server %s: %w", cfg.Name, err)
		}

		initReq := mcp.InitializeRequest{}
		initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
		initReq.Params.ClientInfo = mcp.Implementation{Name: "helpdesk-orchestrator", Version: "0.1.0"}
		if _, err := c.Initialize(ctx, initReq); err != nil {
			c.Close()
			p.closeAllLocked()
			return fmt.Errorf("initializing server %s: %w", cfg.Name, err)
		}

		p.sessions[cfg.Name] = c
		log.Info("Tool server ready")
	}

	p.started = true
	return nil
}

// Discover collects tool inventories from every running server and builds the
// routing table. Duplicate tool names across servers are a configuration
// error and fail discovery.
func (p *Pool) Discover(ctx context.Context) ([]domain.ToolDescriptor, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return nil, errors.New("pool not started")
	}

	var groups []ServerTools
	for _, cfg := range p.configs {
		c := p.sessions[cfg.Name]
		resp, err := c.ListTools(ctx, mcp.ListToolsRequest{})
		if err != nil {
			return nil, fmt.Errorf("listing tools from %s: %w", cfg.Name, err)
		}

		g := ServerTools{Server: cfg.Name}
		for _, t := range resp.Tools {
			g.Tools = append(g.Tools, domain.ToolDescriptor{
				Name:        t.Name,
				Description: t.Description,
				InputSchema: map[string]any{
					"type":       t.InputSchema.Type,
					"properties": t.InputSchema.Properties,
					"required":   t.InputSchema.Required,
				},
			})
			p.logger.Debug("Discovered tool",
				slog.String("tool", t.Name), slog.String("server", cfg.Name))
		}
		groups = append(groups, g)
	}

	routes, tools, err := merge(groups)
	if err != nil {
		return nil, err
	}
	p.routes = routes
	p.tools = tools
	p.logger.Info("Tool discovery complete", slog.Int("tools", len(tools)))
	return tools, nil
}

// Catalog returns the discovered tools, excluding any hosted by a server that
// has been marked unavailable.
func (p *Pool) Catalog() []domain.ToolDescriptor {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ToolDescriptor, 0, len(p.tools))
	for _, t := range p.tools {
		if !p.unavailable[t.Server] {
			out = append(out, t)
		}
	}
	return out
}

// Call dispatches a tool call to the owning server and returns the raw text
// payload. Failures come back as serialized error envelopes, never as Go
// errors: the payload is data for the model to react to. A transport failure
// is retried once; a second failure marks the server unavailable.
func (p *Pool) Call(ctx context.Context, name string, args map[string]any) string {
	p.mu.Lock()
	server, known := p.routes[name]
	sess := p.sessions[server]
	down := p.unavailable[server]
	available := p.availableToolsLocked()
	p.mu.Unlock()

	if !known {
		p.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "unknown_tool")))
		return domain.UnknownTool(name, available).JSON()
	}
	if sess == nil || down {
		p.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "unavailable")))
		return domain.Transport(server, errors.New("no active session")).JSON()
	}

	text, err := p.callOnce(ctx, sess, name, args)
	if err == nil {
		return text
	}
	p.logger.Warn("Tool call failed, retrying",
		slog.String("tool", name), slog.String("server", server), slog.Any("error", err))

	text, err = p.callOnce(ctx, sess, name, args)
	if err == nil {
		return text
	}

	p.mu.Lock()
	p.unavailable[server] = true
	p.mu.Unlock()
	p.logger.Error("Server marked unavailable after repeated failures",
		slog.String("server", server), slog.Any("error", err))
	p.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "transport")))
	return domain.Transport(server, err).JSON()
}

func (p *Pool) callOnce(ctx context.Context, sess session, name string, args map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	result, err := sess.CallTool(ctx, req)
	if err != nil {
		return "", err
	}
	for _, content := range result.Content {
		if tc, ok := mcp.AsTextContent(content); ok {
			return tc.Text, nil
		}
	}
	return `{"result": "Tool executed successfully but returned no content"}`, nil
}

func (p *Pool) availableToolsLocked() []string {
	out := make([]string, 0, len(p.tools))
	for _, t := range p.tools {
		if !p.unavailable[t.Server] {
			out = append(out, t.Name)
		}
	}
	sort.Strings(out)
	return out
}

// Stop shuts down every server session. Safe to call repeatedly; calls after
// the first are no-ops.
func (p *Pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	p.closeAllLocked()
	p.started = false
	p.logger.Info("All tool servers stopped")
}

func (p *Pool) closeAllLocked() {
	for name, c := range p.sessions {
		if err := c.Close(); err != nil {
			p.logger.Warn("Error closing server session",
				slog.String("server", name), slog.Any("error", err))
		}
	}
	p.sessions = make(map[string]session)
	p.routes = make(map[string]string)
	p.tools = nil
	p.unavailable = make(map[string]bool)
}
