package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// pinClock fixes the wall clock so overdue math is stable.
func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestGetInvoiceByID(t *testing.T) {
	pinClock(t, time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC))

	got := GetInvoice("INV-2025-007", "")
	d, ok := got.(InvoiceDetail)
	require.True(t, ok, "expected an invoice detail, got %T", got)
	assert.Equal(t, "CUST-002", d.CustomerID)
	assert.Equal(t, "overdue", d.Status)
	assert.True(t, d.IsOverdue)
	assert.Equal(t, 1, d.DaysOverdue)
}

func TestGetInvoicePaidNeverOverdue(t *testing.T) {
	pinClock(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	got := GetInvoice("INV-2025-001", "")
	d := got.(InvoiceDetail)
	assert.False(t, d.IsOverdue)
	assert.Equal(t, 0, d.DaysOverdue)
}

func TestGetInvoiceByCustomer(t *testing.T) {
	got := GetInvoice("", "CUST-001")
	list, ok := got.(CustomerInvoices)
	require.True(t, ok, "expected a customer invoice list, got %T", got)
	require.Equal(t, 2, list.TotalInvoices)
	assert.Equal(t, "INV-2025-001", list.Invoices[0].InvoiceID)
	assert.Equal(t, "INV-2025-004", list.Invoices[1].InvoiceID)
}

func TestGetInvoiceMissingCriteria(t *testing.T) {
	got := GetInvoice("", "")
	env, ok := got.(domain.Envelope)
	require.True(t, ok, "expected an error envelope, got %T", got)
	assert.Equal(t, "Missing invoice lookup criteria", env.Error)
	assert.True(t, env.Retryable)
	assert.Equal(t, []string{"get_invoice"}, env.FollowUpTools)
	assert.Equal(t, []string{"invoice_id", "customer_id"}, env.Context["expected_arguments"])
}

func TestGetInvoiceUnknownID(t *testing.T) {
	got := GetInvoice("INV-9999-999", "")
	env, ok := got.(domain.Envelope)
	require.True(t, ok, "expected an error envelope, got %T", got)
	assert.Contains(t, env.Error, "INV-9999-999")
	assert.Contains(t, env.FollowUpTools, "calculate_outstanding_balance")
}

func TestCheckPaymentStatusSummary(t *testing.T) {
	pinClock(t, time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC))

	got := CheckPaymentStatus("", "CUST-002")
	s, ok := got.(PaymentSummary)
	require.True(t, ok, "expected a payment summary, got %T", got)
	assert.Equal(t, 3, s.Summary.TotalInvoices)
	assert.Equal(t, 0, s.Summary.Paid)
	assert.Equal(t, 1, s.Summary.Pending)
	assert.Equal(t, 2, s.Summary.Overdue)

	require.Len(t, s.OverdueInvoices, 2)
	assert.Equal(t, "INV-2025-007", s.OverdueInvoices[0].InvoiceID)
	assert.Equal(t, 1, s.OverdueInvoices[0].DaysOverdue)
	assert.Equal(t, "INV-2024-075", s.OverdueInvoices[1].InvoiceID)
	assert.Equal(t, 295, s.OverdueInvoices[1].DaysOverdue)
}

func TestCheckPaymentStatusMissingCriteria(t *testing.T) {
	got := CheckPaymentStatus("", "")
	env, ok := got.(domain.Envelope)
	require.True(t, ok)
	assert.Equal(t, "Missing payment status lookup criteria", env.Error)
	assert.True(t, env.Retryable)
	assert.Equal(t, []string{"check_payment_status"}, env.FollowUpTools)
}

func TestGetHistoryTotals(t *testing.T) {
	h := GetHistory("CUST-001", "", "")
	assert.Equal(t, 2, h.Summary.TotalInvoices)
	assert.InDelta(t, 1050.0, h.Summary.TotalBilled, 0.001)
	assert.InDelta(t, 450.0, h.Summary.TotalPaid, 0.001)
	assert.InDelta(t, 600.0, h.Summary.TotalPending, 0.001)
	assert.Equal(t, "USD", h.Summary.Currency)
}

func TestGetHistoryDateWindow(t *testing.T) {
	h := GetHistory("CUST-001", "2025-10-01", "")
	require.Len(t, h.Invoices, 1)
	assert.Equal(t, "INV-2025-004", h.Invoices[0].InvoiceID)

	h = GetHistory("CUST-002", "2025-01-01", "2025-12-31")
	require.Len(t, h.Invoices, 2)
	assert.InDelta(t, 1200.0, h.Summary.TotalBilled, 0.001)
}

func TestOutstandingBalance(t *testing.T) {
	pinClock(t, time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC))

	b := OutstandingBalance("CUST-002")
	assert.InDelta(t, 3000.0, b.OutstandingBalance, 0.001)
	assert.InDelta(t, 2150.0, b.OverdueAmount, 0.001)
	assert.Equal(t, 3, b.NumberOfUnpaidInvoices)
	assert.Equal(t, 2, b.NumberOfOverdueInvoices)
	require.Len(t, b.UnpaidInvoices, 3)
}

func TestOutstandingBalanceNoInvoices(t *testing.T) {
	b := OutstandingBalance("CUST-999")
	assert.Zero(t, b.OutstandingBalance)
	assert.Empty(t, b.UnpaidInvoices)
	assert.NotNil(t, b.UnpaidInvoices, "empty list serializes as [], not null")
}
