package kb

// Article is one knowledge-base entry. Content is plain-text resolution
// steps; search matches against it at the lowest weight.
type Article struct {
	ArticleID       string   `json:"article_id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Content         string   `json:"content"`
	Tags            []string `json:"tags"`
	RelatedProducts []string `json:"related_products"`
	LastUpdated     string   `json:"last_updated"`
	Views           int      `json:"views"`
	HelpfulCount    int      `json:"helpful_count"`
}

var articles = []Article{
	{
		ArticleID: "KB-001",
		Title:     "Resolving Windows BSOD DRIVER_IRQL_NOT_LESS_OR_EQUAL",
		Category:  "Windows Troubleshooting",
		Content: `Resolution steps: boot into Safe Mode, open Device Manager, update or
roll back recently updated drivers, run Windows Memory Diagnostic, check for
Windows Updates, and use Driver Verifier to identify problematic drivers.
Common causes: faulty RAM, outdated or incompatible drivers (especially
network and graphics), corrupted system files, hardware conflicts.
Prevention: keep drivers up to date, test RAM periodically, avoid installing
unsigned drivers.`,
		Tags:            []string{"windows", "bsod", "driver", "critical", "blue-screen"},
		RelatedProducts: []string{"Windows 10", "Windows 11", "Windows Server"},
		LastUpdated:     "2025-09-15",
		Views:           1523,
		HelpfulCount:    142,
	},
	{
		ArticleID: "KB-002",
		Title:     "Linux Disk Space Management - Cleaning /var/log",
		Category:  "Linux Administration",
		Content: `Quick fix for a full /var/log: check disk usage with df -h, find large
files with du -sh /var/log/* sorted, compress old logs with gzip, and clear
journal logs via journalctl --vacuum-time=7d. Configure log rotation in
/etc/logrotate.conf (daily, rotate 7, compress, delaycompress). Emergency
cleanup: truncate large log files to zero with caution, delete compressed
logs older than 30 days with find -mtime +30 -delete.`,
		Tags:            []string{"linux", "disk-space", "logs", "logrotate", "administration"},
		RelatedProducts: []string{"Ubuntu", "Debian", "CentOS", "RHEL"},
		LastUpdated:     "2025-10-01",
		Views:           2341,
		HelpfulCount:    203,
	},
	{
		ArticleID: "KB-003",
		Title:     "macOS Kernel Panic Troubleshooting Guide",
		Category:  "macOS Support",
		Content: `Diagnosing kernel panics: check panic logs in Console.app under System
Reports, identify the panic pattern (wake from sleep, specific app), note
error codes and responsible processes. Common solutions: reset the SMC
(System Management Controller) by holding Shift+Control+Option+Power for 10
seconds, reset NVRAM/PRAM by holding Command+Option+P+R at restart, and
remove stale kernel extensions with kextcache. Update macOS, third-party
kernel extensions, and security software.`,
		Tags:            []string{"macos", "kernel-panic", "troubleshooting", "smc", "nvram"},
		RelatedProducts: []string{"macOS Sonoma", "macOS Ventura", "macOS Monterey"},
		LastUpdated:     "2025-09-28",
		Views:           987,
		HelpfulCount:    88,
	},
	{
		ArticleID: "KB-004",
		Title:     "Network Performance Troubleshooting on Windows Server",
		Category:  "Network Issues",
		Content: `Diagnosing slow network performance: in Device Manager verify adapter
settings (Speed & Duplex on Auto Negotiation, Flow Control enabled, Jumbo
Frames matching the network config) and disable power management on the NIC.
Test throughput with Test-NetConnection and iperf3, and hunt bandwidth hogs
in Resource Monitor and Performance Monitor network counters. Common issues:
RSS (Receive Side Scaling) misconfiguration, antivirus scanning network
traffic, outdated NIC drivers, network cable faults.`,
		Tags:            []string{"windows-server", "network", "performance", "troubleshooting"},
		RelatedProducts: []string{"Windows Server 2019", "Windows Server 2022"},
		LastUpdated:     "2025-10-03",
		Views:           1654,
		HelpfulCount:    156,
	},
	{
		ArticleID: "KB-005",
		Title:     "Ubuntu APT Package Manager Issues and Solutions",
		Category:  "Linux Administration",
		Content: `Fixing APT update and upgrade errors. For 404 Not Found, point
sources.list at old-releases.ubuntu.com and run apt update. Fix broken
packages with apt --fix-broken install, dpkg --configure -a, and apt clean.
Reset the APT cache by removing /var/lib/apt/lists. Handle stale lock files
under /var/lib/dpkg and /var/cache/apt/archives. Disable problematic PPAs in
/etc/apt/sources.list.d and prefer official mirrors for stability.`,
		Tags:            []string{"linux", "ubuntu", "apt", "package-management", "troubleshooting"},
		RelatedProducts: []string{"Ubuntu 22.04", "Ubuntu 24.04", "Debian"},
		LastUpdated:     "2025-09-30",
		Views:           3210,
		HelpfulCount:    287,
	},
	{
		ArticleID: "KB-006",
		Title:     "Windows NTFS File System Corruption Repair",
		Category:  "Windows Troubleshooting",
		Content: `Fixing NTFS corruption and freezing: run chkdsk C: /f /r /x to fix
errors, recover bad sectors, and force a dismount. Check SMART status with
Get-PhysicalDisk and wmic diskdrive get status. Repair system files with
DISM /Online /Cleanup-Image /RestoreHealth followed by sfc /scannow. In
Event Viewer look for Disk errors (Event ID 7, 11, 15) and NTFS warnings
(Event ID 55). Prevention: monitor disk health, keep usage under 80%, enable
write caching properly, update storage controller drivers.`,
		Tags:            []string{"windows", "ntfs", "filesystem", "corruption", "chkdsk"},
		RelatedProducts: []string{"Windows 10", "Windows 11", "Windows Server"},
		LastUpdated:     "2025-10-04",
		Views:           1876,
		HelpfulCount:    165,
	},
	{
		ArticleID: "KB-007",
		Title:     "SSH Slow Authentication on Linux - Solutions",
		Category:  "Linux Administration",
		Content: `Fixing slow SSH login: set UseDNS no in /etc/ssh/sshd_config and
restart sshd, disable GSSAPIAuthentication on both server and client, and
check for slow DNS with timed nslookup and dig runs. Inspect /etc/pam.d/sshd
for slow PAM modules and debug the handshake with ssh -v to spot delays.
Common causes: reverse DNS timeout, GSSAPI/Kerberos timeout, slow PAM
modules, MTU issues.`,
		Tags:            []string{"linux", "ssh", "authentication", "performance", "network"},
		RelatedProducts: []string{"Debian", "Ubuntu", "CentOS", "RHEL"},
		LastUpdated:     "2025-10-05",
		Views:           1432,
		HelpfulCount:    128,
	},
	{
		ArticleID: "KB-008",
		Title:     "BitLocker Recovery Key Issues After BIOS Update",
		Category:  "Windows Security",
		Content: `Resolving the BitLocker recovery prompt: enter the recovery key from
the Microsoft account or a backup, then boot into Windows. Prevent future
prompts by suspending BitLocker before BIOS updates (Suspend-BitLocker
-MountPoint C: -RebootCount 1), clearing and reinitializing the TPM, and
re-sealing BitLocker to the new TPM state with manage-bde protector
commands. Back up recovery keys with manage-bde -protectors -get C: and
verify TPM state with Get-Tpm. Always suspend BitLocker before firmware
updates and keep recovery keys in multiple locations.`,
		Tags:            []string{"windows", "bitlocker", "encryption", "tpm", "security"},
		RelatedProducts: []string{"Windows 10", "Windows 11"},
		LastUpdated:     "2025-10-02",
		Views:           2103,
		HelpfulCount:    189,
	},
	{
		ArticleID: "KB-009",
		Title:     "Active Directory Replication Troubleshooting",
		Category:  "Active Directory",
		Content: `Fixing AD replication issues: check status with repadmin /replsummary
and repadmin /showrepl, force replication with repadmin /syncall /AdeP, and
verify DNS with dcdiag /test:dns plus SRV record lookups. Review replication
links with repadmin /bridgeheads and /kcc. Key event IDs: 2042 (long time
since replication), 1311 (Knowledge Consistency Checker errors), 1925
(failed replication attempt). Verify connectivity between domain
controllers, DNS pointing, time synchronization (w32tm /query /status), and
firewall rules for ports 389, 636, 3268, 88, 135, 445. Reset with repadmin
/removelingeringobjects and targeted repadmin /replicate runs.`,
		Tags:            []string{"active-directory", "windows-server", "replication", "dcdiag"},
		RelatedProducts: []string{"Windows Server 2016", "Windows Server 2019", "Windows Server 2022"},
		LastUpdated:     "2025-09-29",
		Views:           1765,
		HelpfulCount:    172,
	},
	{
		ArticleID: "KB-010",
		Title:     "Linux High CPU from kworker Processes",
		Category:  "Linux Administration",
		Content: `Diagnosing kworker high CPU: identify the culprit with top and ps,
then watch /proc/interrupts to see what it is servicing. Common causes: a
buggy kernel module (inspect with lsmod, remove with modprobe -r), broken
hardware or driver (dmesg, journalctl -xef), and I/O wait issues (iotop -o,
iostat -x 1). Solutions: update the kernel, disable problematic devices by
IRQ, and check filesystems with fsck. Workqueue analysis via the
debug_workqueue module parameter and dmesg can pinpoint the offending
workqueue.`,
		Tags:            []string{"linux", "cpu", "performance", "kworker", "kernel"},
		RelatedProducts: []string{"Ubuntu", "Debian", "CentOS", "RHEL"},
		LastUpdated:     "2025-10-04",
		Views:           1543,
		HelpfulCount:    134,
	},
}
