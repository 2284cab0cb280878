package ticket

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/robertbarcik/mcp-helpdesk/internal/toolserver"
)

// New builds the ticket-management MCP server with its four tools registered.
func New(logger *slog.Logger) *server.MCPServer {
	log := logger.With(slog.String("server", "ticket"))
	s := server.NewMCPServer("ticket-management-server", toolserver.Version)

	s.AddTool(mcp.NewTool("search_tickets",
		mcp.WithDescription("Search for tickets by various criteria (status, priority, assignee, etc.)"),
		mcp.WithString("query", mcp.Description("Text search query (searches subject, description, tags)")),
		mcp.WithString("ticket_id", mcp.Description("Specific ticket ID")),
		mcp.WithString("customer_id", mcp.Description("Filter by customer ID")),
		mcp.WithString("status", mcp.Description("Ticket status (open, in_progress, resolved)")),
		mcp.WithString("priority", mcp.Description("Priority level (critical, high, medium, low)")),
		mcp.WithString("category", mcp.Description("Ticket category")),
		mcp.WithString("os", mcp.Description("Operating system (partial match)")),
		mcp.WithString("start_date", mcp.Description("Start date (YYYY-MM-DD)")),
		mcp.WithString("end_date", mcp.Description("End date (YYYY-MM-DD)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		f := SearchFilter{
			Query:      req.GetString("query", ""),
			TicketID:   req.GetString("ticket_id", ""),
			CustomerID: req.GetString("customer_id", ""),
			Status:     req.GetString("status", ""),
			Priority:   req.GetString("priority", ""),
			Category:   req.GetString("category", ""),
			OS:         req.GetString("os", ""),
			StartDate:  req.GetString("start_date", ""),
			EndDate:    req.GetString("end_date", ""),
		}
		result := Search(f)
		log.Debug("search_tickets", slog.Int("matches", result.TotalCount))
		return toolserver.TextResult(result)
	})

	s.AddTool(mcp.NewTool("get_ticket_details",
		mcp.WithDescription("Retrieve detailed information about a specific ticket by ID"),
		mcp.WithString("ticket_id", mcp.Required(), mcp.Description("Unique ticket identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(Details(req.GetString("ticket_id", "")))
	})

	s.AddTool(mcp.NewTool("get_ticket_metrics",
		mcp.WithDescription("Get metrics and statistics for tickets (resolution time, volume, etc.)"),
		mcp.WithString("time_period", mcp.Description("Time period (last_7_days, last_30_days, last_90_days)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(ComputeMetrics(req.GetString("time_period", "last_7_days")))
	})

	s.AddTool(mcp.NewTool("find_similar_tickets",
		mcp.WithDescription("Find tickets similar to a given ticket based on content and metadata"),
		mcp.WithString("ticket_id", mcp.Required(), mcp.Description("Reference ticket ID")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of similar tickets to return")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(FindSimilar(req.GetString("ticket_id", ""), req.GetInt("limit", 5)))
	})

	return s
}
