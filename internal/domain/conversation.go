package domain

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a single tool invocation requested by the model.
type ToolCall struct {
	// ID correlates the invocation with its tool-result turn.
	ID string `json:"id"`

	// Name is the requested tool name.
	Name string `json:"name"`

	// Arguments is the raw JSON argument object as produced by the model.
	Arguments string `json:"arguments"`
}

// Turn is one entry in the conversation state. The state is append-only
// within a single query and discarded when the query completes; there is no
// cross-query memory.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content,omitempty"`

	// ToolCalls is set on assistant turns that request tool invocations.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID and ToolName are set on tool-result turns and echo the
	// originating ToolCall.
	ToolCallID string `json:"tool_call_id,omitempty"`
	ToolName   string `json:"tool_name,omitempty"`
}

// UserTurn builds a user message turn.
func UserTurn(text string) Turn {
	return Turn{Role: RoleUser, Content: text}
}

// AssistantTurn builds an assistant turn, optionally carrying tool calls.
func AssistantTurn(text string, calls []ToolCall) Turn {
	return Turn{Role: RoleAssistant, Content: text, ToolCalls: calls}
}

// ToolResultTurn builds the tool-result turn answering the given call.
// payload is the serialized tool output, either a success payload or an
// Envelope; the transport does not distinguish them.
func ToolResultTurn(call ToolCall, payload string) Turn {
	return Turn{Role: RoleTool, Content: payload, ToolCallID: call.ID, ToolName: call.Name}
}
