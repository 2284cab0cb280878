// Package toolserver holds the helpers shared by the five stdio tool servers.
// Each server lives in its own subpackage and registers a fixed catalog of
// read-only operations over a constant in-memory dataset.
package toolserver

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Version is reported by every tool server during MCP initialization.
const Version = "0.1.0"

// TextResult serializes v (a success payload or a domain.Envelope) as the
// text content of a tool result. Envelopes ride the same path as success
// payloads so the calling model consumes failures as ordinary data.
func TextResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
