package domain

import "encoding/json"

// Envelope is the structured failure payload returned by tool servers and by
// the orchestrator itself. It is an ordinary return value, never a raised
// fault: the payload is fed back to the calling model as tool-result data so
// the model can self-correct (retry with different arguments, switch to one
// of the suggested follow-up tools, or give up gracefully).
type Envelope struct {
	// Error is the short human-readable failure message.
	Error string `json:"error"`

	// Reason explains why the call failed, in one sentence.
	Reason string `json:"reason,omitempty"`

	// SuggestedActions lists concrete next steps for the caller, in order.
	SuggestedActions []string `json:"suggested_actions,omitempty"`

	// Retryable reports whether the same tool may succeed with different
	// arguments or after corrective action.
	Retryable bool `json:"retryable"`

	// FollowUpTools names broader operations the caller can use to recover,
	// e.g. a search tool after a failed identifier lookup.
	FollowUpTools []string `json:"follow_up_tools,omitempty"`

	// Context carries extra key/value detail about the failure.
	Context map[string]any `json:"context,omitempty"`
}

// JSON serializes the envelope for use as a tool-result payload.
// Envelope contains no types that can fail to marshal.
func (e Envelope) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// NotFound builds the envelope for an identifier lookup that matched nothing.
// followUp names the broader search operation(s) the model should fall back to.
func NotFound(message, reason string, hints []string, followUp ...string) Envelope {
	return Envelope{
		Error:            message,
		Reason:           reason,
		SuggestedActions: hints,
		Retryable:        true,
		FollowUpTools:    followUp,
	}
}

// Validation builds the envelope for a request missing a required parameter
// or supplying a malformed one. followUp optionally names the operation to
// retry once the arguments are corrected.
func Validation(message, reason string, hints []string, followUp ...string) Envelope {
	return Envelope{
		Error:            message,
		Reason:           reason,
		SuggestedActions: hints,
		Retryable:        true,
		FollowUpTools:    followUp,
	}
}

// UnknownTool builds the envelope the orchestrator synthesizes when the model
// requests a tool name absent from the routing table. available lists the
// names the model may choose from instead.
func UnknownTool(name string, available []string) Envelope {
	followUp := available
	if len(followUp) > 5 {
		followUp = followUp[:5]
	}
	return Envelope{
		Error:  "Tool " + name + " not found",
		Reason: "The requested tool name is not registered with the active tool servers.",
		SuggestedActions: []string{
			"Select one of the tool names provided in the available tools list.",
		},
		Retryable:     true,
		FollowUpTools: followUp,
		Context:       map[string]any{"available_tools": available},
	}
}

// Transport builds the envelope for a channel-level failure talking to a
// tool server.
func Transport(server string, cause error) Envelope {
	return Envelope{
		Error:  "Server " + server + " is unavailable",
		Reason: cause.Error(),
		SuggestedActions: []string{
			"Answer from information already gathered, or use tools from other servers.",
		},
		Retryable: false,
		Context:   map[string]any{"server": server},
	}
}

// WithContext returns a copy of the envelope with an extra context entry.
func (e Envelope) WithContext(key string, value any) Envelope {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	e.Context = ctx
	return e
}
