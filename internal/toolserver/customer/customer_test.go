package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

func TestLookupByID(t *testing.T) {
	got := Lookup("CUST-003", "", "")
	c, ok := got.(Customer)
	require.True(t, ok, "expected a customer record, got %T", got)
	assert.Equal(t, "Global Enterprises Ltd", c.CompanyName)
	assert.Equal(t, "silver", c.SLATerms.Level)
}

func TestLookupByEmailCaseInsensitive(t *testing.T) {
	got := Lookup("", "IT@DATAFLOW.IO", "")
	c, ok := got.(Customer)
	require.True(t, ok, "expected a customer record, got %T", got)
	assert.Equal(t, "CUST-002", c.CustomerID)
}

func TestLookupByCompanyNamePartial(t *testing.T) {
	got := Lookup("", "", "cloud")
	c, ok := got.(Customer)
	require.True(t, ok, "expected a customer record, got %T", got)
	assert.Equal(t, "CUST-005", c.CustomerID, "first dataset-order match wins")
}

func TestLookupMiss(t *testing.T) {
	got := Lookup("CUST-999", "", "")
	env, ok := got.(domain.Envelope)
	require.True(t, ok, "expected an error envelope, got %T", got)
	assert.Equal(t, "Customer not found", env.Error)
	assert.True(t, env.Retryable)
	assert.Contains(t, env.FollowUpTools, "lookup_customer")
	criteria, ok := env.Context["search_criteria"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CUST-999", criteria["customer_id"])
	assert.NotContains(t, criteria, "email")
}

func TestStatus(t *testing.T) {
	got := Status("CUST-001")
	s, ok := got.(StatusSummary)
	require.True(t, ok, "expected a status summary, got %T", got)
	assert.Equal(t, "TechCorp Industries", s.CompanyName)
	assert.Equal(t, "active", s.Status)
	assert.Equal(t, "premium", s.Tier)
	assert.Equal(t, "Alice Johnson", s.AccountManager)
}

func TestStatusMiss(t *testing.T) {
	got := Status("CUST-404")
	env, ok := got.(domain.Envelope)
	require.True(t, ok, "expected an error envelope, got %T", got)
	assert.Contains(t, env.Error, "CUST-404")
	assert.Equal(t, "CUST-404", env.Context["customer_id"])
	assert.Contains(t, env.FollowUpTools, "lookup_customer")
}

func TestSLA(t *testing.T) {
	got := SLA("CUST-007")
	v, ok := got.(SLAView)
	require.True(t, ok, "expected an SLA view, got %T", got)
	assert.Equal(t, "gold", v.SLATerms.Level)
	assert.Equal(t, 2, v.SLATerms.ResponseTimeHours)
	assert.Equal(t, 12, v.SLATerms.ResolutionTimeHours)
	assert.True(t, v.SLATerms.DedicatedSupport)
}

func TestContacts(t *testing.T) {
	got := Contacts("CUST-007")
	l, ok := got.(ContactList)
	require.True(t, ok, "expected a contact list, got %T", got)
	require.Len(t, l.Contacts, 3)
	assert.Equal(t, 3, l.TotalContacts)
	assert.Equal(t, "Patricia Lee", l.Contacts[0].Name)
	assert.Equal(t, "Director of IT", l.Contacts[0].Role)
}

func TestContactsSingle(t *testing.T) {
	got := Contacts("CUST-008")
	l, ok := got.(ContactList)
	require.True(t, ok)
	assert.Equal(t, 1, l.TotalContacts)
	assert.Equal(t, "Alex Thompson", l.Contacts[0].Name)
}
