package domain

// ToolDescriptor describes a callable operation exposed by a tool server,
// compliant with the Model Context Protocol (MCP).
// Descriptors are collected once at discovery time and are immutable for the
// process lifetime.
type ToolDescriptor struct {
	// Name is the operation name. It MUST be unique across all servers;
	// collisions are rejected at discovery time.
	Name string `json:"name"`

	// Description is the natural-language explanation the model uses to
	// decide when to invoke the tool.
	Description string `json:"description"`

	// InputSchema is the JSON-Schema object describing the tool's
	// parameters, as published by the owning server.
	InputSchema map[string]any `json:"input_schema"`

	// Server is the name of the owning tool server.
	Server string `json:"server"`
}
