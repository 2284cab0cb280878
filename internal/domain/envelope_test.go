package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

func TestNotFoundEnvelope(t *testing.T) {
	env := domain.NotFound(
		"Ticket TKT-9999 not found",
		"The ticket_id did not match any tickets in the dataset.",
		[]string{"Call search_tickets with customer_id or priority filters."},
		"search_tickets",
	)

	assert.True(t, env.Retryable)
	assert.NotEmpty(t, env.SuggestedActions)
	assert.Equal(t, []string{"search_tickets"}, env.FollowUpTools)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.JSON()), &decoded))
	assert.Equal(t, "Ticket TKT-9999 not found", decoded["error"])
	assert.Equal(t, true, decoded["retryable"])
	assert.NotContains(t, decoded, "context")
}

func TestUnknownToolEnvelope(t *testing.T) {
	available := []string{"a", "b", "c", "d", "e", "f", "g"}
	env := domain.UnknownTool("frobnicate", available)

	assert.True(t, env.Retryable)
	// Follow-up suggestions are capped; the full list rides in context.
	assert.Len(t, env.FollowUpTools, 5)
	assert.Equal(t, available, env.Context["available_tools"])
}

func TestValidationEnvelope(t *testing.T) {
	env := domain.Validation(
		"Missing invoice lookup criteria",
		"Neither invoice_id nor customer_id was supplied.",
		[]string{"Provide invoice_id to retrieve a single invoice."},
	)
	assert.True(t, env.Retryable)
	assert.Empty(t, env.FollowUpTools)

	withFollowUp := domain.Validation(
		"Missing invoice lookup criteria",
		"Neither invoice_id nor customer_id was supplied.",
		[]string{"Provide invoice_id to retrieve a single invoice."},
		"get_invoice",
	)
	assert.Equal(t, []string{"get_invoice"}, withFollowUp.FollowUpTools)
}

func TestTransportEnvelopeNotRetryable(t *testing.T) {
	env := domain.Transport("billing", assert.AnError)
	assert.False(t, env.Retryable)
	assert.Equal(t, "billing", env.Context["server"])
}

func TestWithContextDoesNotMutate(t *testing.T) {
	base := domain.UnknownTool("x", []string{"a"})
	extended := base.WithContext("run_id", "r-1")

	assert.NotContains(t, base.Context, "run_id")
	assert.Equal(t, "r-1", extended.Context["run_id"])
}
