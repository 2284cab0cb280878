package customer

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/robertbarcik/mcp-helpdesk/internal/toolserver"
)

// New builds the customer-database MCP server with its four tools registered.
func New(logger *slog.Logger) *server.MCPServer {
	log := logger.With(slog.String("server", "customer"))
	s := server.NewMCPServer("customer-database-server", toolserver.Version)

	s.AddTool(mcp.NewTool("lookup_customer",
		mcp.WithDescription("Look up customer information by customer ID, email, or company name"),
		mcp.WithString("customer_id", mcp.Description("Unique customer identifier")),
		mcp.WithString("email", mcp.Description("Customer email address")),
		mcp.WithString("company_name", mcp.Description("Company name (partial match supported)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := Lookup(
			req.GetString("customer_id", ""),
			req.GetString("email", ""),
			req.GetString("company_name", ""),
		)
		log.Debug("lookup_customer")
		return toolserver.TextResult(result)
	})

	s.AddTool(mcp.NewTool("check_customer_status",
		mcp.WithDescription("Check the current status of a customer account (active, suspended, etc.)"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Unique customer identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(Status(req.GetString("customer_id", "")))
	})

	s.AddTool(mcp.NewTool("get_sla_terms",
		mcp.WithDescription("Retrieve Service Level Agreement terms and conditions for a customer"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Unique customer identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(SLA(req.GetString("customer_id", "")))
	})

	s.AddTool(mcp.NewTool("list_customer_contacts",
		mcp.WithDescription("Get a list of all contacts associated with a customer account"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Unique customer identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(Contacts(req.GetString("customer_id", "")))
	})

	return s
}
