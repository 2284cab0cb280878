package kb

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/robertbarcik/mcp-helpdesk/internal/toolserver"
)

// New builds the knowledge-base MCP server with its four tools registered.
func New(logger *slog.Logger) *server.MCPServer {
	log := logger.With(slog.String("server", "kb"))
	s := server.NewMCPServer("knowledge-base-server", toolserver.Version)

	s.AddTool(mcp.NewTool("search_solutions",
		mcp.WithDescription("Search knowledge base for solutions and articles by keyword or topic"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query or keywords")),
		mcp.WithString("category", mcp.Description("Article category filter")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results to return")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := Search(
			req.GetString("query", ""),
			req.GetString("category", ""),
			req.GetInt("limit", 10),
		)
		log.Debug("search_solutions", slog.Int("matches", result.TotalCount))
		return toolserver.TextResult(result)
	})

	s.AddTool(mcp.NewTool("get_article",
		mcp.WithDescription("Retrieve the full content of a knowledge base article by ID"),
		mcp.WithString("article_id", mcp.Required(), mcp.Description("Unique article identifier")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(GetArticle(req.GetString("article_id", "")))
	})

	s.AddTool(mcp.NewTool("find_related_articles",
		mcp.WithDescription("Find articles related to a given article or topic"),
		mcp.WithString("article_id", mcp.Description("Reference article ID")),
		mcp.WithString("topic", mcp.Description("Topic to find related articles for")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of related articles")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(FindRelated(
			req.GetString("article_id", ""),
			req.GetString("topic", ""),
			req.GetInt("limit", 5),
		))
	})

	s.AddTool(mcp.NewTool("get_common_fixes",
		mcp.WithDescription("Get a list of common fixes and solutions for a specific product or issue type"),
		mcp.WithString("product", mcp.Description("Product name or identifier")),
		mcp.WithString("issue_type", mcp.Description("Type of issue (e.g., 'bsod', 'network', 'performance')")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolserver.TextResult(CommonFixes(
			req.GetString("product", ""),
			req.GetString("issue_type", ""),
		))
	})

	return s
}
