package asset

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/robertbarcik/mcp-helpdesk/internal/toolserver"
)

// New builds the asset-management MCP server with its four tools registered.
func New(logger *slog.Logger) *server.MCPServer {
	log := logger.With(slog.String("server", "asset"))
	s := server.NewMCPServer("asset-management-server", toolserver.Version)

	s.AddTool(mcp.NewTool("lookup_asset",
		mcp.WithDescription("Look up detailed information about an asset by asset ID, serial number, hostname, or customer ID"),
		mcp.WithString("asset_id", mcp.Description("Unique asset identifier")),
		mcp.WithString("serial_number", mcp.Description("Asset serial number")),
		mcp.WithString("hostname", mcp.Description("Asset hostname (partial match supported)")),
		mcp.WithString("customer_id", mcp.Description("Get all assets for a customer")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := Lookup(
			req.GetString("asset_id", ""),
			req.GetString("serial_number", ""),
			req.GetString("hostname", ""),
			req.GetString("customer_id", ""),
		)
		log.Debug("lookup_asset")
		return toolserver.TextResult(result)
	})

	s.AddTool(mcp.NewTool("check_warranty",
		mcp.WithDescription("Check warranty status and coverage details for an asset"),
		mcp.WithString("asset_id", mcp.Required(), mcp.Description("Unique asset identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(CheckWarranty(req.GetString("asset_id", "")))
	})

	s.AddTool(mcp.NewTool("get_software_licenses",
		mcp.WithDescription("Retrieve software license information for an asset or customer"),
		mcp.WithString("asset_id", mcp.Description("Asset identifier")),
		mcp.WithString("customer_id", mcp.Description("Customer identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(Licenses(
			req.GetString("asset_id", ""),
			req.GetString("customer_id", ""),
		))
	})

	s.AddTool(mcp.NewTool("get_asset_history",
		mcp.WithDescription("Get the complete history of an asset including maintenance, transfers, and related tickets"),
		mcp.WithString("asset_id", mcp.Required(), mcp.Description("Unique asset identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(History(req.GetString("asset_id", "")))
	})

	return s
}
