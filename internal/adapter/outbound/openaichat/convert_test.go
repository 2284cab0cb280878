package openaichat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

func TestToToolsCarriesSchema(t *testing.T) {
	tools := []domain.ToolDescriptor{{
		Name:        "search_tickets",
		Description: "Search for tickets by various criteria",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"priority": map[string]any{"type": "string"},
			},
			"required": []string{},
		},
		Server: "ticket",
	}}

	got := toTools(tools)
	require.Len(t, got, 1)
	fn := got[0].OfFunction
	require.NotNil(t, fn)
	assert.Equal(t, "search_tickets", fn.Function.Name)
	assert.Equal(t, "Search for tickets by various criteria", fn.Function.Description.Value)
	assert.Equal(t, "object", fn.Function.Parameters["type"])
}

func TestToMessagesRoles(t *testing.T) {
	turns := []domain.Turn{
		{Role: domain.RoleSystem, Content: "You are a helpful IT support assistant."},
		domain.UserTurn("any critical tickets?"),
	}

	got := toMessages(turns)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].OfSystem)
	require.NotNil(t, got[1].OfUser)
	assert.Equal(t, "any critical tickets?", got[1].OfUser.Content.OfString.Value)
}

func TestToMessagesReplaysToolCalls(t *testing.T) {
	call := domain.ToolCall{ID: "call_9", Name: "get_invoice", Arguments: `{"invoice_id":"INV-2025-001"}`}
	turns := []domain.Turn{
		domain.AssistantTurn("", []domain.ToolCall{call}),
		domain.ToolResultTurn(call, `{"status":"paid"}`),
	}

	got := toMessages(turns)
	require.Len(t, got, 2)

	assistant := got[0].OfAssistant
	require.NotNil(t, assistant)
	require.Len(t, assistant.ToolCalls, 1)
	fn := assistant.ToolCalls[0].OfFunction
	require.NotNil(t, fn)
	assert.Equal(t, "call_9", fn.ID)
	assert.Equal(t, "get_invoice", fn.Function.Name)
	assert.Equal(t, `{"invoice_id":"INV-2025-001"}`, fn.Function.Arguments)

	tool := got[1].OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "call_9", tool.ToolCallID)
	assert.Equal(t, `{"status":"paid"}`, tool.Content.OfString.Value)
}

func TestToMessagesPlainAssistant(t *testing.T) {
	got := toMessages([]domain.Turn{domain.AssistantTurn("done", nil)})
	require.Len(t, got, 1)
	require.NotNil(t, got[0].OfAssistant)
	assert.Equal(t, "done", got[0].OfAssistant.Content.OfString.Value)
}
