package ticket

// Ticket is one support ticket in the dataset.
type Ticket struct {
	TicketID    string   `json:"ticket_id"`
	CustomerID  string   `json:"customer_id"`
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Category    string   `json:"category"`
	OS          string   `json:"os"`
	Assignee    string   `json:"assignee"`
	CreatedDate string   `json:"created_date"`
	LastUpdated string   `json:"last_updated"`
	Resolution  string   `json:"resolution,omitempty"`
	Tags        []string `json:"tags"`
}

// tickets is the constant dataset. Read-only after process start; search
// results preserve this insertion order.
var tickets = []Ticket{
	{
		TicketID:    "TKT-1001",
		CustomerID:  "CUST-001",
		Subject:     "Windows 11 BSOD - DRIVER_IRQL_NOT_LESS_OR_EQUAL",
		Description: "User experiencing frequent blue screens with error DRIVER_IRQL_NOT_LESS_OR_EQUAL. Occurs during video calls and heavy multitasking.",
		Status:      "open",
		Priority:    "high",
		Category:    "OS Issues",
		OS:          "Windows 11",
		Assignee:    "John Doe",
		CreatedDate: "2025-10-01",
		LastUpdated: "2025-10-04",
		Tags:        []string{"bsod", "windows", "driver", "critical"},
	},
	{
		TicketID:    "TKT-1002",
		CustomerID:  "CUST-002",
		Subject:     "Linux server disk full - /var/log consuming 95% space",
		Description: "Production Ubuntu 22.04 server has /var/log partition at 95% capacity. Log rotation not working properly.",
		Status:      "in_progress",
		Priority:    "critical",
		Category:    "OS Issues",
		OS:          "Linux",
		Assignee:    "Jane Smith",
		CreatedDate: "2025-10-02",
		LastUpdated: "2025-10-05",
		Tags:        []string{"linux", "disk-space", "logs", "urgent"},
	},
	{
		TicketID:    "TKT-1003",
		CustomerID:  "CUST-003",
		Subject:     "macOS Sonoma kernel panic on wake from sleep",
		Description: "MacBook Pro experiencing kernel panics when waking from sleep mode. Issue started after Sonoma 14.6 update.",
		Status:      "resolved",
		Priority:    "medium",
		Category:    "OS Issues",
		OS:          "macOS",
		Assignee:    "Bob Wilson",
		CreatedDate: "2025-09-28",
		LastUpdated: "2025-10-03",
		Resolution:  "Reset SMC and NVRAM. Updated third-party kernel extensions.",
		Tags:        []string{"macos", "kernel-panic", "sleep", "resolved"},
	},
	{
		TicketID:    "TKT-1004",
		CustomerID:  "CUST-001",
		Subject:     "Windows Server 2022 slow network performance",
		Description: "File server experiencing degraded network throughput (10 Mbps instead of 1 Gbps). All hardware checks passed.",
		Status:      "open",
		Priority:    "high",
		Category:    "Network",
		OS:          "Windows Server 2022",
		Assignee:    "Sarah Lee",
		CreatedDate: "2025-10-03",
		LastUpdated: "2025-10-05",
		Tags:        []string{"windows-server", "network", "performance"},
	},
	{
		TicketID:    "TKT-1005",
		CustomerID:  "CUST-004",
		Subject:     "Ubuntu 24.04 apt update failing - repository errors",
		Description: "Cannot update packages. Getting 404 errors from archive.ubuntu.com repositories.",
		Status:      "resolved",
		Priority:    "medium",
		Category:    "Software",
		OS:          "Ubuntu 24.04",
		Assignee:    "Mike Chen",
		CreatedDate: "2025-09-30",
		LastUpdated: "2025-10-01",
		Resolution:  "Updated sources.list to use correct mirror. Refreshed package cache.",
		Tags:        []string{"linux", "apt", "package-management", "resolved"},
	},
	{
		TicketID:    "TKT-1006",
		CustomerID:  "CUST-005",
		Subject:     "Windows 10 constant freezing during file operations",
		Description: "System freezes for 30-60 seconds when copying large files or opening File Explorer. Event viewer shows ntfs errors.",
		Status:      "in_progress",
		Priority:    "high",
		Category:    "Storage",
		OS:          "Windows 10",
		Assignee:    "John Doe",
		CreatedDate: "2025-10-04",
		LastUpdated: "2025-10-05",
		Tags:        []string{"windows", "filesystem", "ntfs", "performance"},
	},
	{
		TicketID:    "TKT-1007",
		CustomerID:  "CUST-002",
		Subject:     "Debian server SSH authentication very slow (20+ seconds)",
		Description: "SSH login takes 20-30 seconds to authenticate. After login, everything is fast. No DNS issues detected.",
		Status:      "open",
		Priority:    "medium",
		Category:    "Network",
		OS:          "Debian 12",
		Assignee:    "Jane Smith",
		CreatedDate: "2025-10-05",
		LastUpdated: "2025-10-05",
		Tags:        []string{"linux", "ssh", "authentication", "performance"},
	},
	{
		TicketID:    "TKT-1008",
		CustomerID:  "CUST-006",
		Subject:     "macOS Time Machine backup failing to network drive",
		Description: "Time Machine backups to Synology NAS failing with error 'The backup disk image could not be accessed'.",
		Status:      "open",
		Priority:    "low",
		Category:    "Backup",
		OS:          "macOS Ventura",
		Assignee:    "Bob Wilson",
		CreatedDate: "2025-10-01",
		LastUpdated: "2025-10-02",
		Tags:        []string{"macos", "backup", "time-machine", "nas"},
	},
	{
		TicketID:    "TKT-1009",
		CustomerID:  "CUST-007",
		Subject:     "Windows 11 BitLocker recovery key prompt on every boot",
		Description: "After BIOS update, system prompts for BitLocker recovery key on every startup. TPM shows as enabled in BIOS.",
		Status:      "in_progress",
		Priority:    "critical",
		Category:    "Security",
		OS:          "Windows 11",
		Assignee:    "Sarah Lee",
		CreatedDate: "2025-10-02",
		LastUpdated: "2025-10-05",
		Tags:        []string{"windows", "bitlocker", "encryption", "tpm"},
	},
	{
		TicketID:    "TKT-1010",
		CustomerID:  "CUST-003",
		Subject:     "CentOS 7 EOL - migration planning assistance",
		Description: "Customer needs help planning migration from CentOS 7 (EOL June 2024) to Rocky Linux or AlmaLinux. 12 production servers affected.",
		Status:      "open",
		Priority:    "high",
		Category:    "Migration",
		OS:          "CentOS 7",
		Assignee:    "Mike Chen",
		CreatedDate: "2025-09-25",
		LastUpdated: "2025-10-04",
		Tags:        []string{"linux", "migration", "centos", "eol"},
	},
	{
		TicketID:    "TKT-1011",
		CustomerID:  "CUST-008",
		Subject:     "Windows Server 2019 Active Directory replication failing",
		Description: "AD replication between DC1 and DC2 showing errors. Event ID 2042 - It has been too long since this machine replicated.",
		Status:      "resolved",
		Priority:    "critical",
		Category:    "Active Directory",
		OS:          "Windows Server 2019",
		Assignee:    "Sarah Lee",
		CreatedDate: "2025-09-29",
		LastUpdated: "2025-09-30",
		Resolution:  "Forced replication sync. Fixed DNS entries for domain controllers. Replication now healthy.",
		Tags:        []string{"windows-server", "active-directory", "replication", "resolved"},
	},
	{
		TicketID:    "TKT-1012",
		CustomerID:  "CUST-004",
		Subject:     "Ubuntu server high CPU usage - unknown process",
		Description: "Server showing 90%+ CPU usage. Top shows process '[kworker/u8:2]'. System very slow to respond.",
		Status:      "in_progress",
		Priority:    "high",
		Category:    "Performance",
		OS:          "Ubuntu 22.04",
		Assignee:    "Mike Chen",
		CreatedDate: "2025-10-04",
		LastUpdated: "2025-10-05",
		Tags:        []string{"linux", "cpu", "performance", "kworker"},
	},
	{
		TicketID:    "TKT-1013",
		CustomerID:  "CUST-005",
		Subject:     "macOS Monterey unable to connect to VPN",
		Description: "IPSec VPN connection failing after macOS update. Error: 'The VPN connection failed due to unsuccessful domain name resolution'.",
		Status:      "open",
		Priority:    "medium",
		Category:    "Network",
		OS:          "macOS Monterey",
		Assignee:    "Bob Wilson",
		CreatedDate: "2025-10-03",
		LastUpdated: "2025-10-04",
		Tags:        []string{"macos", "vpn", "ipsec", "dns"},
	},
	{
		TicketID:    "TKT-1014",
		CustomerID:  "CUST-006",
		Subject:     "Windows 11 Start Menu and taskbar not responding",
		Description: "Start menu, taskbar, and system tray completely unresponsive. Explorer.exe restart provides only temporary fix (5-10 minutes).",
		Status:      "open",
		Priority:    "high",
		Category:    "OS Issues",
		OS:          "Windows 11",
		Assignee:    "John Doe",
		CreatedDate: "2025-10-05",
		LastUpdated: "2025-10-05",
		Tags:        []string{"windows", "explorer", "taskbar", "gui"},
	},
	{
		TicketID:    "TKT-1015",
		CustomerID:  "CUST-007",
		Subject:     "RHEL 9 - kernel update breaking NVIDIA drivers",
		Description: "After automatic kernel update, NVIDIA drivers fail to load. Display defaults to low resolution. DKMS rebuild failing.",
		Status:      "in_progress",
		Priority:    "medium",
		Category:    "Drivers",
		OS:          "RHEL 9",
		Assignee:    "Jane Smith",
		CreatedDate: "2025-10-02",
		LastUpdated: "2025-10-05",
		Tags:        []string{"linux", "nvidia", "drivers", "kernel", "dkms"},
	},
}
