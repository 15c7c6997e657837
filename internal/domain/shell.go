package domain

// ShellKind enumerates the closed set of shell flavors the executor knows
// how to invoke and write native history for.
type ShellKind string

const (
	ShellBash       ShellKind = "bash"
	ShellZsh        ShellKind = "zsh"
	ShellFish       ShellKind = "fish"
	ShellUnixOther  ShellKind = "unix"
	ShellWindowsCmd ShellKind = "cmd"
	ShellPowerShell ShellKind = "powershell"
)
