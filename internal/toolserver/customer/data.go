package customer

// SLATerms captures the service-level agreement attached to an account.
type SLATerms struct {
	Level               string   `json:"level"`
	ResponseTimeHours   int      `json:"response_time_hours"`
	ResolutionTimeHours int      `json:"resolution_time_hours"`
	SupportHours        string   `json:"support_hours"`
	DedicatedSupport    bool     `json:"dedicated_support"`
	EscalationContacts  []string `json:"escalation_contacts"`
}

// Contact is one named contact on a customer account.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

// Customer is one account in the dataset.
type Customer struct {
	CustomerID     string    `json:"customer_id"`
	CompanyName    string    `json:"company_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Tier           string    `json:"tier"`
	Status         string    `json:"status"`
	AccountManager string    `json:"account_manager"`
	CreatedDate    string    `json:"created_date"`
	LastActivity   string    `json:"last_activity"`
	SLATerms       SLATerms  `json:"sla_terms"`
	Contacts       []Contact `json:"contacts"`
}

var customers = []Customer{
	{
		CustomerID:     "CUST-001",
		CompanyName:    "TechCorp Industries",
		Email:          "support@techcorp.com",
		Phone:          "+1-555-0101",
		Tier:           "premium",
		Status:         "active",
		AccountManager: "Alice Johnson",
		CreatedDate:    "2023-05-15",
		LastActivity:   "2025-10-05",
		SLATerms: SLATerms{
			Level:               "platinum",
			ResponseTimeHours:   1,
			ResolutionTimeHours: 8,
			SupportHours:        "24/7",
			DedicatedSupport:    true,
			EscalationContacts:  []string{"manager@techcorp.com", "cto@techcorp.com"},
		},
		Contacts: []Contact{
			{Name: "David Chen", Email: "david.chen@techcorp.com", Role: "IT Director", Phone: "+1-555-0102"},
			{Name: "Maria Garcia", Email: "maria.g@techcorp.com", Role: "Systems Administrator", Phone: "+1-555-0103"},
		},
	},
	{
		CustomerID:     "CUST-002",
		CompanyName:    "DataFlow Solutions",
		Email:          "it@dataflow.io",
		Phone:          "+1-555-0201",
		Tier:           "premium",
		Status:         "active",
		AccountManager: "Bob Martinez",
		CreatedDate:    "2022-11-20",
		LastActivity:   "2025-10-05",
		SLATerms: SLATerms{
			Level:               "gold",
			ResponseTimeHours:   2,
			ResolutionTimeHours: 16,
			SupportHours:        "24/7",
			DedicatedSupport:    true,
			EscalationContacts:  []string{"ops@dataflow.io"},
		},
		Contacts: []Contact{
			{Name: "Sarah Williams", Email: "sarah.w@dataflow.io", Role: "DevOps Lead", Phone: "+1-555-0202"},
			{Name: "James Liu", Email: "james.l@dataflow.io", Role: "Infrastructure Manager", Phone: "+1-555-0203"},
		},
	},
	{
		CustomerID:     "CUST-003",
		CompanyName:    "Global Enterprises Ltd",
		Email:          "helpdesk@globalent.com",
		Phone:          "+1-555-0301",
		Tier:           "standard",
		Status:         "active",
		AccountManager: "Carol White",
		CreatedDate:    "2024-01-10",
		LastActivity:   "2025-10-03",
		SLATerms: SLATerms{
			Level:               "silver",
			ResponseTimeHours:   4,
			ResolutionTimeHours: 24,
			SupportHours:        "Business hours (9-5 EST)",
			DedicatedSupport:    false,
			EscalationContacts:  []string{"it.manager@globalent.com"},
		},
		Contacts: []Contact{
			{Name: "Robert Taylor", Email: "robert.t@globalent.com", Role: "IT Manager", Phone: "+1-555-0302"},
		},
	},
	{
		CustomerID:     "CUST-004",
		CompanyName:    "Innovate Systems",
		Email:          "support@innovatesys.net",
		Phone:          "+1-555-0401",
		Tier:           "standard",
		Status:         "active",
		AccountManager: "Alice Johnson",
		CreatedDate:    "2023-08-22",
		LastActivity:   "2025-10-05",
		SLATerms: SLATerms{
			Level:               "silver",
			ResponseTimeHours:   4,
			ResolutionTimeHours: 24,
			SupportHours:        "Extended hours (7-9 EST)",
			DedicatedSupport:    false,
			EscalationContacts:  []string{"admin@innovatesys.net"},
		},
		Contacts: []Contact{
			{Name: "Emily Brown", Email: "emily.b@innovatesys.net", Role: "Systems Engineer", Phone: "+1-555-0402"},
			{Name: "Michael Davis", Email: "michael.d@innovatesys.net", Role: "Network Admin", Phone: "+1-555-0403"},
		},
	},
	{
		CustomerID:     "CUST-005",
		CompanyName:    "CloudFirst Inc",
		Email:          "tech@cloudfirst.cloud",
		Phone:          "+1-555-0501",
		Tier:           "premium",
		Status:         "active",
		AccountManager: "Bob Martinez",
		CreatedDate:    "2022-03-15",
		LastActivity:   "2025-10-05",
		SLATerms: SLATerms{
			Level:               "platinum",
			ResponseTimeHours:   1,
			ResolutionTimeHours: 8,
			SupportHours:        "24/7",
			DedicatedSupport:    true,
			EscalationContacts:  []string{"ceo@cloudfirst.cloud", "cto@cloudfirst.cloud"},
		},
		Contacts: []Contact{
			{Name: "Lisa Anderson", Email: "lisa.a@cloudfirst.cloud", Role: "CTO", Phone: "+1-555-0502"},
			{Name: "Tom Wilson", Email: "tom.w@cloudfirst.cloud", Role: "Senior DevOps", Phone: "+1-555-0503"},
		},
	},
	{
		CustomerID:     "CUST-006",
		CompanyName:    "SecureNet Partners",
		Email:          "info@securenet.biz",
		Phone:          "+1-555-0601",
		Tier:           "basic",
		Status:         "active",
		AccountManager: "Carol White",
		CreatedDate:    "2024-06-01",
		LastActivity:   "2025-10-02",
		SLATerms: SLATerms{
			Level:               "bronze",
			ResponseTimeHours:   8,
			ResolutionTimeHours: 48,
			SupportHours:        "Business hours (9-5 EST)",
			DedicatedSupport:    false,
			EscalationContacts:  []string{},
		},
		Contacts: []Contact{
			{Name: "Kevin Martinez", Email: "kevin.m@securenet.biz", Role: "IT Coordinator", Phone: "+1-555-0602"},
		},
	},
	{
		CustomerID:     "CUST-007",
		CompanyName:    "MegaCorp International",
		Email:          "itsupport@megacorp.com",
		Phone:          "+1-555-0701",
		Tier:           "premium",
		Status:         "active",
		AccountManager: "Alice Johnson",
		CreatedDate:    "2021-09-10",
		LastActivity:   "2025-10-05",
		SLATerms: SLATerms{
			Level:               "gold",
			ResponseTimeHours:   2,
			ResolutionTimeHours: 12,
			SupportHours:        "24/7",
			DedicatedSupport:    true,
			EscalationContacts:  []string{"director@megacorp.com"},
		},
		Contacts: []Contact{
			{Name: "Patricia Lee", Email: "patricia.l@megacorp.com", Role: "Director of IT", Phone: "+1-555-0702"},
			{Name: "Daniel Kim", Email: "daniel.k@megacorp.com", Role: "Senior SysAdmin", Phone: "+1-555-0703"},
			{Name: "Jennifer Park", Email: "jennifer.p@megacorp.com", Role: "Network Specialist", Phone: "+1-555-0704"},
		},
	},
	{
		CustomerID:     "CUST-008",
		CompanyName:    "StartupHub Ventures",
		Email:          "tech@startuphub.io",
		Phone:          "+1-555-0801",
		Tier:           "standard",
		Status:         "active",
		AccountManager: "Bob Martinez",
		CreatedDate:    "2024-02-28",
		LastActivity:   "2025-09-30",
		SLATerms: SLATerms{
			Level:               "silver",
			ResponseTimeHours:   4,
			ResolutionTimeHours: 24,
			SupportHours:        "Extended hours (7-9 EST)",
			DedicatedSupport:    false,
			EscalationContacts:  []string{"founder@startuphub.io"},
		},
		Contacts: []Contact{
			{Name: "Alex Thompson", Email: "alex.t@startuphub.io", Role: "Tech Lead", Phone: "+1-555-0802"},
		},
	},
}
