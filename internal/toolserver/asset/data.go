package asset

// Warranty is the coverage record on an asset. RemainingDays is recomputed
// against the wall clock whenever a warranty is returned; the stored value is
// a snapshot.
type Warranty struct {
	Status        string `json:"status"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	CoverageType  string `json:"coverage_type"`
	RemainingDays int    `json:"remaining_days"`
}

// License is one software license attached to an asset. Expiration is a date
// or the literal "perpetual".
type License struct {
	Software   string `json:"software"`
	LicenseKey string `json:"license_key"`
	Expiration string `json:"expiration"`
	Type       string `json:"type"`
}

// Asset is one record in the asset inventory. Specs vary by asset type
// (compute, network, storage) so they stay schemaless.
type Asset struct {
	AssetID          string         `json:"asset_id"`
	SerialNumber     string         `json:"serial_number"`
	Hostname         string         `json:"hostname"`
	AssetType        string         `json:"asset_type"`
	CustomerID       string         `json:"customer_id"`
	Manufacturer     string         `json:"manufacturer"`
	Model            string         `json:"model"`
	Status           string         `json:"status"`
	Location         string         `json:"location"`
	PurchaseDate     string         `json:"purchase_date"`
	Warranty         Warranty       `json:"warranty"`
	Specs            map[string]any `json:"specs"`
	AssignedTo       string         `json:"assigned_to"`
	LastMaintenance  string         `json:"last_maintenance"`
	SoftwareLicenses []License      `json:"software_licenses,omitempty"`
}

var assets = []Asset{
	{
		AssetID: "AST-WKS-001", SerialNumber: "5CD23456ABC",
		Hostname: "wks-techcorp-01.techcorp.local", AssetType: "workstation",
		CustomerID: "CUST-001", Manufacturer: "Dell", Model: "OptiPlex 7090",
		Status: "active", Location: "TechCorp HQ - Floor 3", PurchaseDate: "2024-01-15",
		Warranty: Warranty{
			Status: "active", StartDate: "2024-01-15", EndDate: "2027-01-15",
			CoverageType: "ProSupport Plus", RemainingDays: 450,
		},
		Specs: map[string]any{
			"cpu": "Intel Core i7-11700", "ram_gb": 32,
			"storage": "512GB NVMe SSD", "os": "Windows 11 Pro",
		},
		AssignedTo: "david.chen@techcorp.com", LastMaintenance: "2025-08-10",
	},
	{
		AssetID: "AST-SRV-001", SerialNumber: "VMW-789-XYZ-456",
		Hostname: "sql-prod-01.dataflow.local", AssetType: "server",
		CustomerID: "CUST-002", Manufacturer: "HPE", Model: "ProLiant DL380 Gen10",
		Status: "active", Location: "DataFlow Data Center - Rack 12", PurchaseDate: "2023-06-20",
		Warranty: Warranty{
			Status: "active", StartDate: "2023-06-20", EndDate: "2026-06-20",
			CoverageType: "24x7 4-hour response", RemainingDays: 258,
		},
		Specs: map[string]any{
			"cpu": "2x Intel Xeon Gold 6226R", "ram_gb": 256,
			"storage": "8x 1.2TB SAS HDD (RAID 10)", "os": "Ubuntu Server 22.04 LTS",
		},
		AssignedTo: "Infrastructure Team", LastMaintenance: "2025-09-15",
		SoftwareLicenses: []License{
			{Software: "Microsoft SQL Server 2022 Enterprise", LicenseKey: "XXXXX-XXXXX-XXXXX-XXXXX", Expiration: "2026-06-01", Type: "perpetual"},
		},
	},
	{
		AssetID: "AST-WKS-002", SerialNumber: "C02YZ8JKLVCG",
		Hostname: "mbp-globalent-exec", AssetType: "laptop",
		CustomerID: "CUST-003", Manufacturer: "Apple", Model: "MacBook Pro 16-inch M3 Max",
		Status: "active", Location: "Remote - Executive", PurchaseDate: "2024-11-10",
		Warranty: Warranty{
			Status: "active", StartDate: "2024-11-10", EndDate: "2025-11-10",
			CoverageType: "AppleCare+", RemainingDays: 36,
		},
		Specs: map[string]any{
			"cpu": "Apple M3 Max", "ram_gb": 64,
			"storage": "2TB SSD", "os": "macOS Sonoma 14.6",
		},
		AssignedTo: "robert.t@globalent.com", LastMaintenance: "2025-09-01",
	},
	{
		AssetID: "AST-SRV-002", SerialNumber: "SRV-INV-2023-445",
		Hostname: "web-app-01.innovatesys.net", AssetType: "server",
		CustomerID: "CUST-004", Manufacturer: "Supermicro", Model: "SuperServer 1029P",
		Status: "active", Location: "AWS us-east-1 (Virtual)", PurchaseDate: "2023-08-22",
		Warranty: Warranty{
			Status: "active", StartDate: "2023-08-22", EndDate: "2025-08-22",
			CoverageType: "Standard support", RemainingDays: -45,
		},
		Specs: map[string]any{
			"cpu": "Intel Xeon Silver 4210R", "ram_gb": 64,
			"storage": "2TB NVMe SSD", "os": "Ubuntu 24.04 LTS",
		},
		AssignedTo: "DevOps Team", LastMaintenance: "2025-07-20",
		SoftwareLicenses: []License{
			{Software: "NGINX Plus", LicenseKey: "NGX-PLUS-2024-XXX", Expiration: "2025-12-31", Type: "subscription"},
		},
	},
	{
		AssetID: "AST-WKS-003", SerialNumber: "DT-CF-789-2022",
		Hostname: "dev-wks-cloudfirst-05", AssetType: "workstation",
		CustomerID: "CUST-005", Manufacturer: "Lenovo", Model: "ThinkStation P620",
		Status: "active", Location: "CloudFirst - Development Lab", PurchaseDate: "2022-11-05",
		Warranty: Warranty{
			Status: "expired", StartDate: "2022-11-05", EndDate: "2025-11-05",
			CoverageType: "Premier Support", RemainingDays: -31,
		},
		Specs: map[string]any{
			"cpu": "AMD Threadripper PRO 5975WX", "ram_gb": 128,
			"storage": "2TB NVMe SSD + 4TB HDD", "os": "Windows 11 Pro for Workstations",
		},
		AssignedTo: "tom.w@cloudfirst.cloud", LastMaintenance: "2025-06-15",
		SoftwareLicenses: []License{
			{Software: "VMware Workstation Pro", LicenseKey: "VMW-XXXXX-XXXXX", Expiration: "perpetual", Type: "perpetual"},
			{Software: "Visual Studio Enterprise 2022", LicenseKey: "VS-ENT-XXXXX", Expiration: "2026-01-15", Type: "subscription"},
		},
	},
	{
		AssetID: "AST-NET-001", SerialNumber: "CISCO-C9300-48P-SN123",
		Hostname: "sw-core-01.securenet.local", AssetType: "network",
		CustomerID: "CUST-006", Manufacturer: "Cisco", Model: "Catalyst 9300-48P",
		Status: "active", Location: "SecureNet - Main IDF", PurchaseDate: "2024-06-01",
		Warranty: Warranty{
			Status: "active", StartDate: "2024-06-01", EndDate: "2027-06-01",
			CoverageType: "SMARTnet 8x5xNBD", RemainingDays: 604,
		},
		Specs: map[string]any{
			"ports": "48x 1G PoE+", "uplinks": "4x 10G SFP+",
			"power": "Dual redundant PSU", "firmware": "IOS-XE 17.9.4",
		},
		AssignedTo: "Network Infrastructure", LastMaintenance: "2025-09-20",
	},
	{
		AssetID: "AST-SRV-003", SerialNumber: "HPE-DL360-G10-789456",
		Hostname: "dc01.megacorp.local", AssetType: "server",
		CustomerID: "CUST-007", Manufacturer: "HPE", Model: "ProLiant DL360 Gen10",
		Status: "active", Location: "MegaCorp HQ - Server Room A", PurchaseDate: "2022-03-10",
		Warranty: Warranty{
			Status: "active", StartDate: "2022-03-10", EndDate: "2027-03-10",
			CoverageType: "5-year 24x7 4-hour response", RemainingDays: 521,
		},
		Specs: map[string]any{
			"cpu": "2x Intel Xeon Gold 6230", "ram_gb": 192,
			"storage": "4x 900GB SAS (RAID 5)", "os": "Windows Server 2019 Standard",
		},
		AssignedTo: "IT Infrastructure", LastMaintenance: "2025-08-25",
		SoftwareLicenses: []License{
			{Software: "Windows Server 2019 Standard", LicenseKey: "WIN-SRV-2019-XXX", Expiration: "perpetual", Type: "perpetual"},
			{Software: "Veeam Backup & Replication", LicenseKey: "VEEAM-XXX-YYY", Expiration: "2026-03-01", Type: "subscription"},
		},
	},
	{
		AssetID: "AST-SRV-004", SerialNumber: "DELL-R740-XD-998877",
		Hostname: "docker-host-01.megacorp.local", AssetType: "server",
		CustomerID: "CUST-007", Manufacturer: "Dell", Model: "PowerEdge R740xd",
		Status: "active", Location: "MegaCorp HQ - Server Room B", PurchaseDate: "2023-07-15",
		Warranty: Warranty{
			Status: "active", StartDate: "2023-07-15", EndDate: "2026-07-15",
			CoverageType: "ProSupport Plus 24x7", RemainingDays: 283,
		},
		Specs: map[string]any{
			"cpu": "2x Intel Xeon Gold 6248R", "ram_gb": 384,
			"storage": "12x 4TB SATA (RAID 6)", "os": "Red Hat Enterprise Linux 9",
		},
		AssignedTo: "Container Platform Team", LastMaintenance: "2025-09-10",
		SoftwareLicenses: []License{
			{Software: "Red Hat Enterprise Linux", LicenseKey: "RHEL-SUB-XXXXX", Expiration: "2026-07-15", Type: "subscription"},
			{Software: "Docker Enterprise", LicenseKey: "DOCKER-EE-XXXXX", Expiration: "2026-01-01", Type: "subscription"},
		},
	},
	{
		AssetID: "AST-WKS-004", SerialNumber: "ASUS-PN64-456789",
		Hostname: "kiosk-startuphub-lobby", AssetType: "workstation",
		CustomerID: "CUST-008", Manufacturer: "ASUS", Model: "PN64 Mini PC",
		Status: "active", Location: "StartupHub - Lobby", PurchaseDate: "2024-02-28",
		Warranty: Warranty{
			Status: "active", StartDate: "2024-02-28", EndDate: "2027-02-28",
			CoverageType: "3-year on-site", RemainingDays: 511,
		},
		Specs: map[string]any{
			"cpu": "Intel Core i5-12500H", "ram_gb": 16,
			"storage": "256GB NVMe SSD", "os": "Ubuntu 22.04 LTS",
		},
		AssignedTo: "Public Kiosk", LastMaintenance: "2025-09-01",
	},
	{
		AssetID: "AST-SRV-005", SerialNumber: "SH-VM-CLUSTER-01",
		Hostname: "k8s-master-01.startuphub.local", AssetType: "server",
		CustomerID: "CUST-008", Manufacturer: "Dell", Model: "PowerEdge R650",
		Status: "active", Location: "Colocation - Digital Realty SJC", PurchaseDate: "2024-03-15",
		Warranty: Warranty{
			Status: "active", StartDate: "2024-03-15", EndDate: "2027-03-15",
			CoverageType: "ProSupport 24x7", RemainingDays: 526,
		},
		Specs: map[string]any{
			"cpu": "2x Intel Xeon Silver 4314", "ram_gb": 128,
			"storage": "4x 960GB SSD (RAID 10)", "os": "Ubuntu Server 22.04 LTS",
		},
		AssignedTo: "Platform Team", LastMaintenance: "2025-08-30",
		SoftwareLicenses: []License{
			{Software: "Rancher Enterprise", LicenseKey: "RANCHER-XXX-YYY", Expiration: "2026-03-15", Type: "subscription"},
		},
	},
	{
		AssetID: "AST-STOR-001", SerialNumber: "SYNOLOGY-RS2421-887654",
		Hostname: "nas-backup-01.dataflow.local", AssetType: "storage",
		CustomerID: "CUST-002", Manufacturer: "Synology", Model: "RackStation RS2421+",
		Status: "active", Location: "DataFlow - Backup Room", PurchaseDate: "2023-09-10",
		Warranty: Warranty{
			Status: "active", StartDate: "2023-09-10", EndDate: "2026-09-10",
			CoverageType: "3-year warranty", RemainingDays: 340,
		},
		Specs: map[string]any{
			"cpu": "AMD Ryzen V1500B", "ram_gb": 32, "bays": "12-bay",
			"capacity": "96TB usable (RAID 6)", "os": "DSM 7.2",
		},
		AssignedTo: "Backup Infrastructure", LastMaintenance: "2025-07-15",
	},
	{
		AssetID: "AST-WKS-005", SerialNumber: "FRAMEWORK-13-GEN3-55443",
		Hostname: "laptop-innovate-mobile", AssetType: "laptop",
		CustomerID: "CUST-004", Manufacturer: "Framework", Model: "Framework Laptop 13 (Intel 13th Gen)",
		Status: "active", Location: "Remote - Field Engineer", PurchaseDate: "2024-05-20",
		Warranty: Warranty{
			Status: "active", StartDate: "2024-05-20", EndDate: "2025-05-20",
			CoverageType: "Standard 1-year", RemainingDays: 7,
		},
		Specs: map[string]any{
			"cpu": "Intel Core i7-1370P", "ram_gb": 32,
			"storage": "1TB NVMe SSD", "os": "Fedora 40 Workstation",
		},
		AssignedTo: "michael.d@innovatesys.net", LastMaintenance: "2025-08-10",
		SoftwareLicenses: []License{
			{Software: "JetBrains All Products Pack", LicenseKey: "JETBRAINS-XXX", Expiration: "2026-05-20", Type: "subscription"},
		},
	},
}
