package billing

// LineItem is one charge on an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice is one record in the billing dataset. TicketID is empty for
// retainer or review invoices not tied to a support ticket.
type Invoice struct {
	InvoiceID   string     `json:"invoice_id"`
	CustomerID  string     `json:"customer_id"`
	TicketID    string     `json:"ticket_id,omitempty"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	IssueDate   string     `json:"issue_date"`
	DueDate     string     `json:"due_date"`
	PaidDate    string     `json:"paid_date,omitempty"`
	Description string     `json:"description"`
	LineItems   []LineItem `json:"line_items"`
}

var invoices = []Invoice{
	{
		InvoiceID: "INV-2025-001", CustomerID: "CUST-001", TicketID: "TKT-1001",
		Amount: 450.00, Currency: "USD", Status: "paid",
		IssueDate: "2025-09-15", DueDate: "2025-10-15", PaidDate: "2025-09-20",
		Description: "Premium support - Windows BSOD investigation and resolution",
		LineItems: []LineItem{
			{Description: "Senior engineer hours (3h)", Amount: 450.00},
		},
	},
	{
		InvoiceID: "INV-2025-002", CustomerID: "CUST-002", TicketID: "TKT-1002",
		Amount: 850.00, Currency: "USD", Status: "pending",
		IssueDate: "2025-10-01", DueDate: "2025-10-31",
		Description: "Critical incident - Linux server disk space emergency response",
		LineItems: []LineItem{
			{Description: "Emergency response fee", Amount: 250.00},
			{Description: "Engineer hours (4h)", Amount: 600.00},
		},
	},
	{
		InvoiceID: "INV-2025-003", CustomerID: "CUST-003", TicketID: "TKT-1003",
		Amount: 300.00, Currency: "USD", Status: "paid",
		IssueDate: "2025-09-28", DueDate: "2025-10-28", PaidDate: "2025-10-02",
		Description: "macOS kernel panic diagnosis and fix",
		LineItems: []LineItem{
			{Description: "Standard support hours (2h)", Amount: 300.00},
		},
	},
	{
		InvoiceID: "INV-2025-004", CustomerID: "CUST-001", TicketID: "TKT-1004",
		Amount: 600.00, Currency: "USD", Status: "pending",
		IssueDate: "2025-10-03", DueDate: "2025-11-02",
		Description: "Network performance troubleshooting - Windows Server",
		LineItems: []LineItem{
			{Description: "Network analysis (4h)", Amount: 600.00},
		},
	},
	{
		InvoiceID: "INV-2025-005", CustomerID: "CUST-004", TicketID: "TKT-1005",
		Amount: 200.00, Currency: "USD", Status: "paid",
		IssueDate: "2025-09-30", DueDate: "2025-10-30", PaidDate: "2025-10-01",
		Description: "Ubuntu repository configuration fix",
		LineItems: []LineItem{
			{Description: "Standard support (1.5h)", Amount: 200.00},
		},
	},
	{
		InvoiceID: "INV-2025-006", CustomerID: "CUST-005", TicketID: "TKT-1006",
		Amount: 500.00, Currency: "USD", Status: "pending",
		IssueDate: "2025-10-04", DueDate: "2025-11-03",
		Description: "Windows filesystem troubleshooting - ongoing",
		LineItems: []LineItem{
			{Description: "Investigation and diagnostics (3h)", Amount: 500.00},
		},
	},
	{
		InvoiceID: "INV-2025-007", CustomerID: "CUST-002", TicketID: "TKT-1007",
		Amount: 350.00, Currency: "USD", Status: "overdue",
		IssueDate: "2025-09-05", DueDate: "2025-10-05",
		Description: "SSH performance optimization - Debian server",
		LineItems: []LineItem{
			{Description: "Performance tuning (2.5h)", Amount: 350.00},
		},
	},
	{
		InvoiceID: "INV-2025-008", CustomerID: "CUST-006", TicketID: "TKT-1008",
		Amount: 150.00, Currency: "USD", Status: "pending",
		IssueDate: "2025-10-01", DueDate: "2025-10-31",
		Description: "macOS Time Machine backup troubleshooting",
		LineItems: []LineItem{
			{Description: "Basic support (1h)", Amount: 150.00},
		},
	},
	{
		InvoiceID: "INV-2025-009", CustomerID: "CUST-007", TicketID: "TKT-1009",
		Amount: 750.00, Currency: "USD", Status: "pending",
		IssueDate: "2025-10-02", DueDate: "2025-11-01",
		Description: "Critical BitLocker recovery - Windows 11",
		LineItems: []LineItem{
			{Description: "Emergency support", Amount: 200.00},
			{Description: "Senior engineer (3.5h)", Amount: 550.00},
		},
	},
	{
		InvoiceID: "INV-2025-010", CustomerID: "CUST-003", TicketID: "TKT-1010",
		Amount: 1500.00, Currency: "USD", Status: "pending",
		IssueDate: "2025-09-25", DueDate: "2025-10-25",
		Description: "CentOS migration planning and consultation",
		LineItems: []LineItem{
			{Description: "Migration assessment", Amount: 500.00},
			{Description: "Planning consultation (6h)", Amount: 1000.00},
		},
	},
	{
		InvoiceID: "INV-2025-011", CustomerID: "CUST-008", TicketID: "TKT-1011",
		Amount: 900.00, Currency: "USD", Status: "paid",
		IssueDate: "2025-09-29", DueDate: "2025-10-29", PaidDate: "2025-09-30",
		Description: "Active Directory replication fix - critical",
		LineItems: []LineItem{
			{Description: "Emergency AD repair (5h)", Amount: 900.00},
		},
	},
	{
		InvoiceID: "INV-2025-012", CustomerID: "CUST-004", TicketID: "TKT-1012",
		Amount: 400.00, Currency: "USD", Status: "pending",
		IssueDate: "2025-10-04", DueDate: "2025-11-03",
		Description: "Ubuntu high CPU investigation - ongoing",
		LineItems: []LineItem{
			{Description: "System analysis (2.5h)", Amount: 400.00},
		},
	},
	{
		InvoiceID: "INV-2024-088", CustomerID: "CUST-005",
		Amount: 2500.00, Currency: "USD", Status: "paid",
		IssueDate: "2024-12-01", DueDate: "2024-12-31", PaidDate: "2024-12-15",
		Description: "Monthly premium support retainer - December 2024",
		LineItems: []LineItem{
			{Description: "Premium support package", Amount: 2500.00},
		},
	},
	{
		InvoiceID: "INV-2024-075", CustomerID: "CUST-002",
		Amount: 1800.00, Currency: "USD", Status: "overdue",
		IssueDate: "2024-11-15", DueDate: "2024-12-15",
		Description: "Quarterly infrastructure review - Q4 2024",
		LineItems: []LineItem{
			{Description: "Infrastructure audit", Amount: 1800.00},
		},
	},
	{
		InvoiceID: "INV-2025-013", CustomerID: "CUST-006", TicketID: "TKT-1014",
		Amount: 275.00, Currency: "USD", Status: "pending",
		IssueDate: "2025-10-05", DueDate: "2025-11-04",
		Description: "Windows 11 taskbar troubleshooting",
		LineItems: []LineItem{
			{Description: "Support hours (2h)", Amount: 275.00},
		},
	},
}
