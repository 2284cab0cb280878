package openaichat

import (
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// toTools converts discovered tool descriptors into the OpenAI function
// calling format. The MCP input schema is already a JSON-schema object and
// passes through untouched.
func toTools(tools []domain.ToolDescriptor) []openai.ChatCompletionToolUnionParam {
	out := make([]openai.ChatCompletionToolUnionParam, 0, len(tools))
	for _, t := range tools {
		out = append(out, openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        t.Name,
			Description: openai.String(t.Description),
			Parameters:  shared.FunctionParameters(t.InputSchema),
		}))
	}
	return out
}

// toMessages converts conversation turns into OpenAI message params.
// Assistant turns that carried tool calls must replay them so the paired
// tool messages remain valid.
func toMessages(turns []domain.Turn) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case domain.RoleSystem:
			out = append(out, openai.SystemMessage(turn.Content))
		case domain.RoleUser:
			out = append(out, openai.UserMessage(turn.Content))
		case domain.RoleAssistant:
			if len(turn.ToolCalls) == 0 {
				out = append(out, openai.AssistantMessage(turn.Content))
				continue
			}
			assistant := openai.ChatCompletionAssistantMessageParam{}
			if turn.Content != "" {
				assistant.Content.OfString = openai.String(turn.Content)
			}
			for _, call := range turn.ToolCalls {
				assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: call.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      call.Name,
							Arguments: call.Arguments,
						},
					},
				})
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
		case domain.RoleTool:
			out = append(out, openai.ToolMessage(turn.Content, turn.ToolCallID))
		}
	}
	return out
}
