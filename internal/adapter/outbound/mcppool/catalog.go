package mcppool

import (
	"fmt"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// ServerTools is the tool inventory announced by one server during discovery.
type ServerTools struct {
	Server string
	Tools  []domain.ToolDescriptor
}

// merge flattens per-server inventories into a single routing table. Tool
// names must be globally unique: a name announced by two servers makes
// routing ambiguous, so discovery fails rather than letting one server
// silently shadow the other.
func merge(groups []ServerTools) (map[string]string, []domain.ToolDescriptor, error) {
	routes := make(map[string]string)
	var tools []domain.ToolDescriptor
	for _, g := range groups {
		for _, t := range g.Tools {
			if prev, ok := routes[t.Name]; ok {
				return nil, nil, fmt.Errorf("tool %q announced by both %q and %q", t.Name, prev, g.Server)
			}
			t.Server = g.Server
			routes[t.Name] = g.Server
			tools = append(tools, t)
		}
	}
	return routes, tools, nil
}
