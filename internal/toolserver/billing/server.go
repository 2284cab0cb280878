package billing

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/robertbarcik/mcp-helpdesk/internal/toolserver"
)

// New builds the billing MCP server with its four tools registered.
func New(logger *slog.Logger) *server.MCPServer {
	log := logger.With(slog.String("server", "billing"))
	s := server.NewMCPServer("billing-server", toolserver.Version)

	s.AddTool(mcp.NewTool("get_invoice",
		mcp.WithDescription("Retrieve invoice details by invoice ID or search by customer ID"),
		mcp.WithString("invoice_id", mcp.Description("Unique invoice identifier")),
		mcp.WithString("customer_id", mcp.Description("Get all invoices for a customer")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := GetInvoice(req.GetString("invoice_id", ""), req.GetString("customer_id", ""))
		log.Debug("get_invoice")
		return toolserver.TextResult(result)
	})

	s.AddTool(mcp.NewTool("check_payment_status",
		mcp.WithDescription("Check the payment status of an invoice or customer account"),
		mcp.WithString("invoice_id", mcp.Description("Invoice identifier")),
		mcp.WithString("customer_id", mcp.Description("Customer identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(CheckPaymentStatus(
			req.GetString("invoice_id", ""),
			req.GetString("customer_id", ""),
		))
	})

	s.AddTool(mcp.NewTool("get_billing_history",
		mcp.WithDescription("Retrieve billing history for a customer over a specified time period"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Unique customer identifier")),
		mcp.WithString("start_date", mcp.Description("Start date for history (YYYY-MM-DD)")),
		mcp.WithString("end_date", mcp.Description("End date for history (YYYY-MM-DD)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(GetHistory(
			req.GetString("customer_id", ""),
			req.GetString("start_date", ""),
			req.GetString("end_date", ""),
		))
	})

	s.AddTool(mcp.NewTool("calculate_outstanding_balance",
		mcp.WithDescription("Calculate the total outstanding balance for a customer account"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Unique customer identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(OutstandingBalance(req.GetString("customer_id", "")))
	})

	return s
}
