package patterns

// Built-in pattern sets, materialized to disk on first run so users can
// edit them. One regular expression per line in the files; matching is
// case-insensitive.

func defaultDangerous() []string {
	return []string{
		// System modification
		`\brm\s+(-[rf]+\s+)?(\/|~|\$HOME|\$\{HOME\}|\$USER|\$\{USER\})`,
		`\bmv\s+.+\s+(\/|~|\$HOME|\$\{HOME\}|\$USER|\$\{USER\})`,
		`\bdd\s+`,
		`\bformat\s+`,
		`\bmkfs\s+`,
		`del\s+.*\/[QqSs]`,
		`Remove-Item\s+.*\s+-Recurse`,
		`Remove-Item\s+.*\s+-Force`,

		// Privilege escalation
		`\bsudo\s+`,
		`\bsu\s+`,
		`\brunas\s+`,
		`Start-Process\s+.*\s+-Verb\s+RunAs`,
		`psexec\s+`,

		// Remote execution
		`\bssh\s+.+\s+-exec`,
		`\btelnet\s+`,
		`Invoke-Command\s+.*\s+-ComputerName`,
		`Enter-PSSession\s+`,

		// Network/firewall
		`\biptables\s+-(A|D|P|F|X|Z|I|R)\s+`,
		`\bnetsh\s+firewall\s+`,
		`\bnetsh\s+advfirewall\s+`,
		`\broute\s+add\s+`,
		`New-NetFirewallRule\s+`,
		`Set-NetFirewallRule\s+`,

		// File permissions
		`\bchmod\s+777\s+`,
		`\bchmod\s+[+]x\s+`,
		`\bicacls\s+.*\s+\/grant\s+`,
		`Set-Acl\s+`,
		`Set-ItemProperty\s+`,

		// Process management
		`\bkill\s+-9\s+`,
		`\bpkill\s+-9\s+`,
		`\btaskkill\s+\/F\s+`,
		`Stop-Process\s+.*\s+-Force`,

		// System configuration
		`\bsystemctl\s+(stop|disable|mask)\s+`,
		`\bservice\s+.+\s+stop\s+`,
		`\bsc\s+stop\s+`,
		`Stop-Service\s+`,
		`Set-Service\s+`,
		`Disable-ComputerRestore\s+`,

		// Registry modification (Windows)
		`reg\s+(add|delete)\s+`,
		`Set-ItemProperty\s+.*\s+HKLM:`,
		`New-ItemProperty\s+.*\s+HKLM:`,
		`Remove-ItemProperty\s+.*\s+HKLM:`,

		// Downloading/executing
		`curl\s+.+\s+\|\s+sh`,
		`wget\s+.+\s+\|\s+sh`,
		`curl\s+.+\s+\|\s+bash`,
		`wget\s+.+\s+\|\s+bash`,
		`powershell\s+-e\s+`,
		`powershell\s+.*\s+iex\s+`,
		`powershell\s+.*\s+downloadstring\s+`,
		`Invoke-Expression\s+`,
		`Invoke-WebRequest\s+.*\s+\|\s+Invoke-Expression`,
		`Start-BitsTransfer\s+`,

		// Data exposure
		`\bcat\s+.*\/(passwd|shadow|\.ssh\/|\.aws\/)`,
		`\btype\s+.*\/(passwd|shadow|\.ssh\/|\.aws\/)`,
		`\bgrep\s+.*\/(passwd|shadow|\.ssh\/|\.aws\/)`,
		`Get-Content\s+.*\s+(password|credential|secret)`,

		// System shutdown/restart
		`\bshutdown\b`,
		`\breboot\b`,
		`\bhalt\b`,
		`\bpoweroff\b`,
		`\binit\s+0\b`,
		`\binit\s+6\b`,
		`Stop-Computer\b`,
		`Restart-Computer\b`,

		// Disk operations
		`format\s+[a-zA-Z]:`,
		`diskpart\b`,
		`fdisk\b`,
		`Clear-Disk\b`,

		// User management
		`net\s+user\s+.*\s+\/add`,
		`net\s+localgroup\s+administrators\s+.*\s+\/add`,
		`New-LocalUser\b`,
		`Add-LocalGroupMember\b`,
		`Enable-LocalUser\b`,
		`Disable-LocalUser\b`,

		// Scheduled tasks
		`schtasks\s+\/create`,
		`New-ScheduledTask\b`,
		`Register-ScheduledTask\b`,

		// System state
		`wbadmin\s+start\s+`,
		`vssadmin\s+delete\s+`,
		`bcdedit\s+\/set\s+`,
	}
}

func defaultSafe() []string {
	return []string{
		// File listing and navigation
		`\bls\s+`,
		`\bdir\s+`,
		`Get-ChildItem\s+`,
		`\becho\s+`,
		`\bpwd\s*$`,
		`\bcd\s+`,
		`Set-Location\s+`,
		`Get-Location\b`,

		// System information
		`\bwhoami\s*$`,
		`\bdate\s*$`,
		`\btime\s*$`,
		`Get-Date\b`,
		`\bclear\s*$`,
		`\bcls\s*$`,
		`Clear-Host\b`,
		`\bhistory\s*$`,
		`Get-History\b`,

		// Help and documentation
		`\bhelp\s+`,
		`\bman\s+`,
		`Get-Help\b`,
		`Get-Command\b`,

		// File operations (read-only)
		`\bfind\s+`,
		`\bfindstr\s+`,
		`\bgrep\s+`,
		`Select-String\b`,
		`\bcat\s+`,
		`\btype\s+`,
		`Get-Content\b`,

		// Network diagnostics
		`\bping\s+`,
		`Test-Connection\b`,
		`Test-NetConnection\b`,
		`\bnetstat\s+`,
		`Get-NetTCPConnection\b`,
		`\bipconfig\s*$`,
		`\bifconfig\s*$`,
		`Get-NetIPAddress\b`,
		`Get-NetAdapter\b`,
		`\bnslookup\s+`,
		`Resolve-DnsName\b`,
		`\btracert\s+`,
		`Test-NetConnection\s+.*\s+-TraceRoute`,

		// Process information
		`\bps\s+`,
		`\btasklist\s*$`,
		`Get-Process\b`,
		`\btop\s*$`,
		`Get-Counter\b`,

		// Disk information
		`\bdf\s*$`,
		`\bdu\s+`,
		`Get-PSDrive\b`,
		`Get-Volume\b`,
		`\bfree\s*$`,

		// System information
		`\buname\s+`,
		`\bsysteminfo\s*$`,
		`Get-ComputerInfo\b`,
		`\bver\s*$`,
		`\$PSVersionTable\b`,
		`Get-Host\b`,
	}
}
