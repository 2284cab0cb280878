package billing

import (
	"fmt"
	"time"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

const dateLayout = "2006-01-02"

// now is swapped out in tests so overdue math stays deterministic.
var now = time.Now

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// isOverdue reports whether an unpaid invoice is past its due date.
func isOverdue(inv *Invoice) bool {
	if inv.Status == "paid" {
		return false
	}
	due, ok := parseDate(inv.DueDate)
	return ok && now().After(due)
}

// daysOverdue returns whole days past the due date, never negative.
func daysOverdue(inv *Invoice) int {
	if inv.Status == "paid" {
		return 0
	}
	due, ok := parseDate(inv.DueDate)
	if !ok {
		return 0
	}
	d := int(now().Sub(due).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func findInvoice(invoiceID string) *Invoice {
	for i := range invoices {
		if invoices[i].InvoiceID == invoiceID {
			return &invoices[i]
		}
	}
	return nil
}

func invoicesForCustomer(customerID string) []Invoice {
	var out []Invoice
	for _, inv := range invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out
}

// InvoiceDetail is a single invoice plus overdue status computed against the
// wall clock at call time.
type InvoiceDetail struct {
	Invoice
	IsOverdue   bool `json:"is_overdue"`
	DaysOverdue int  `json:"days_overdue"`
}

// CustomerInvoices is the multi-invoice result of a customer-scoped lookup.
type CustomerInvoices struct {
	CustomerID    string    `json:"customer_id"`
	Invoices      []Invoice `json:"invoices"`
	TotalInvoices int       `json:"total_invoices"`
}

// GetInvoice resolves a single invoice by ID or lists all invoices for a
// customer. Supplying neither criterion is a validation failure.
func GetInvoice(invoiceID, customerID string) any {
	switch {
	case invoiceID != "":
		inv := findInvoice(invoiceID)
		if inv == nil {
			return domain.NotFound(
				fmt.Sprintf("Invoice %s not found", invoiceID),
				"The provided invoice_id does not exist in the billing dataset.",
				[]string{
					"Call calculate_outstanding_balance to review invoices by customer.",
					"Use get_invoice with customer_id to browse available invoices.",
				},
				"calculate_outstanding_balance", "get_invoice",
			).WithContext("invoice_id", invoiceID)
		}
		return InvoiceDetail{Invoice: *inv, IsOverdue: isOverdue(inv), DaysOverdue: daysOverdue(inv)}
	case customerID != "":
		list := invoicesForCustomer(customerID)
		return CustomerInvoices{CustomerID: customerID, Invoices: list, TotalInvoices: len(list)}
	default:
		return domain.Validation(
			"Missing invoice lookup criteria",
			"Neither invoice_id nor customer_id was supplied.",
			[]string{
				"Provide invoice_id to retrieve a single invoice.",
				"Provide customer_id to list all invoices for that customer.",
			},
			"get_invoice",
		).WithContext("expected_arguments", []string{"invoice_id", "customer_id"})
	}
}

// PaymentStatus is the payment view of a single invoice.
type PaymentStatus struct {
	InvoiceID     string  `json:"invoice_id"`
	CustomerID    string  `json:"customer_id"`
	PaymentStatus string  `json:"payment_status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	IssueDate     string  `json:"issue_date"`
	DueDate       string  `json:"due_date"`
	PaidDate      string  `json:"paid_date,omitempty"`
	IsOverdue     bool    `json:"is_overdue"`
	DaysOverdue   int     `json:"days_overdue"`
}

// OverdueInvoice is one row in a customer payment summary.
type OverdueInvoice struct {
	InvoiceID   string  `json:"invoice_id"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"due_date"`
	DaysOverdue int     `json:"days_overdue"`
}

// PaymentSummary aggregates payment state across a customer's invoices.
type PaymentSummary struct {
	CustomerID string `json:"customer_id"`
	Summary    struct {
		TotalInvoices int `json:"total_invoices"`
		Paid          int `json:"paid"`
		Pending       int `json:"pending"`
		Overdue       int `json:"overdue"`
	} `json:"summary"`
	OverdueInvoices []OverdueInvoice `json:"overdue_invoices"`
}

// CheckPaymentStatus reports payment state for one invoice or summarizes a
// customer's account. Supplying neither criterion is a validation failure.
func CheckPaymentStatus(invoiceID, customerID string) any {
	switch {
	case invoiceID != "":
		inv := findInvoice(invoiceID)
		if inv == nil {
			return domain.NotFound(
				fmt.Sprintf("Invoice %s not found", invoiceID),
				"Payment details require a valid invoice_id.",
				[]string{
					"List invoices by passing customer_id to get_invoice.",
					"Double-check the invoice_id spelling (e.g., INV-2025-001).",
				},
				"get_invoice",
			).WithContext("invoice_id", invoiceID)
		}
		return PaymentStatus{
			InvoiceID:     inv.InvoiceID,
			CustomerID:    inv.CustomerID,
			PaymentStatus: inv.Status,
			Amount:        inv.Amount,
			Currency:      inv.Currency,
			IssueDate:     inv.IssueDate,
			DueDate:       inv.DueDate,
			PaidDate:      inv.PaidDate,
			IsOverdue:     isOverdue(inv),
			DaysOverdue:   daysOverdue(inv),
		}
	case customerID != "":
		list := invoicesForCustomer(customerID)
		out := PaymentSummary{CustomerID: customerID, OverdueInvoices: []OverdueInvoice{}}
		out.Summary.TotalInvoices = len(list)
		for i := range list {
			inv := &list[i]
			switch inv.Status {
			case "paid":
				out.Summary.Paid++
			case "pending":
				out.Summary.Pending++
			}
			if inv.Status == "overdue" || isOverdue(inv) {
				out.Summary.Overdue++
				out.OverdueInvoices = append(out.OverdueInvoices, OverdueInvoice{
					InvoiceID:   inv.InvoiceID,
					Amount:      inv.Amount,
					DueDate:     inv.DueDate,
					DaysOverdue: daysOverdue(inv),
				})
			}
		}
		return out
	default:
		return domain.Validation(
			"Missing payment status lookup criteria",
			"No invoice_id or customer_id was provided to scope the request.",
			[]string{
				"Use invoice_id for a specific invoice payment status.",
				"Use customer_id to summarise billing status across invoices.",
			},
			"check_payment_status",
		).WithContext("expected_arguments", []string{"invoice_id", "customer_id"})
	}
}

// History is a customer's billing history over an optional date window.
type History struct {
	CustomerID string    `json:"customer_id"`
	StartDate  string    `json:"start_date,omitempty"`
	EndDate    string    `json:"end_date,omitempty"`
	Invoices   []Invoice `json:"invoices"`
	Summary    struct {
		TotalInvoices int     `json:"total_invoices"`
		TotalBilled   float64 `json:"total_billed"`
		TotalPaid     float64 `json:"total_paid"`
		TotalPending  float64 `json:"total_pending"`
		Currency      string  `json:"currency"`
	} `json:"summary"`
}

// GetHistory lists a customer's invoices filtered by issue date, with
// billed/paid/pending totals.
func GetHistory(customerID, startDate, endDate string) History {
	list := invoicesForCustomer(customerID)
	if startDate != "" || endDate != "" {
		var filtered []Invoice
		for _, inv := range list {
			issued, ok := parseDate(inv.IssueDate)
			if !ok {
				continue
			}
			if startDate != "" {
				if from, ok := parseDate(startDate); ok && issued.Before(from) {
					continue
				}
			}
			if endDate != "" {
				if to, ok := parseDate(endDate); ok && issued.After(to) {
					continue
				}
			}
			filtered = append(filtered, inv)
		}
		list = filtered
	}

	h := History{CustomerID: customerID, StartDate: startDate, EndDate: endDate, Invoices: list}
	h.Summary.TotalInvoices = len(list)
	h.Summary.Currency = "USD"
	for _, inv := range list {
		h.Summary.TotalBilled += inv.Amount
		switch inv.Status {
		case "paid":
			h.Summary.TotalPaid += inv.Amount
		case "pending", "overdue":
			h.Summary.TotalPending += inv.Amount
		}
	}
	return h
}

// UnpaidInvoice is one row in an outstanding-balance report.
type UnpaidInvoice struct {
	InvoiceID   string  `json:"invoice_id"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
	IsOverdue   bool    `json:"is_overdue"`
	DaysOverdue int     `json:"days_overdue"`
}

// Balance is the outstanding-balance report for a customer.
type Balance struct {
	CustomerID              string          `json:"customer_id"`
	OutstandingBalance      float64         `json:"outstanding_balance"`
	Currency                string          `json:"currency"`
	OverdueAmount           float64         `json:"overdue_amount"`
	NumberOfUnpaidInvoices  int             `json:"number_of_unpaid_invoices"`
	NumberOfOverdueInvoices int             `json:"number_of_overdue_invoices"`
	UnpaidInvoices          []UnpaidInvoice `json:"unpaid_invoices"`
}

// OutstandingBalance sums every unpaid invoice for a customer and breaks out
// the overdue portion.
func OutstandingBalance(customerID string) Balance {
	b := Balance{CustomerID: customerID, Currency: "USD", UnpaidInvoices: []UnpaidInvoice{}}
	for i := range invoices {
		inv := &invoices[i]
		if inv.CustomerID != customerID || inv.Status == "paid" {
			continue
		}
		overdue := isOverdue(inv)
		b.OutstandingBalance += inv.Amount
		b.NumberOfUnpaidInvoices++
		if overdue {
			b.OverdueAmount += inv.Amount
			b.NumberOfOverdueInvoices++
		}
		b.UnpaidInvoices = append(b.UnpaidInvoices, UnpaidInvoice{
			InvoiceID:   inv.InvoiceID,
			Amount:      inv.Amount,
			Status:      inv.Status,
			DueDate:     inv.DueDate,
			IsOverdue:   overdue,
			DaysOverdue: daysOverdue(inv),
		})
	}
	return b
}
