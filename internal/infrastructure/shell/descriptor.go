// Package shell resolves which shell to execute through and how to append
// to that shell's native interactive history.
package shell

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/termai-cli/termai/internal/domain"
)

// Descriptor pins down the shell flavor and binary once at startup; all
// per-shell dispatch (invocation shape, history format) hangs off it.
type Descriptor struct {
	Kind domain.ShellKind
	// Path is the shell binary invoked for unix flavors and PowerShell;
	// cmd.exe for WindowsCmd.
	Path string
}

// Detect resolves the shell descriptor. An override (from config or flag)
// wins; "auto" or empty falls back to environment detection.
func Detect(override string) Descriptor {
	if override != "" && override != "auto" {
		return fromPath(override)
	}

	if runtime.GOOS == "windows" {
		comspec := os.Getenv("COMSPEC")
		if comspec == "" {
			comspec = "cmd.exe"
		}
		if strings.Contains(strings.ToLower(os.Getenv("PSModulePath")), "powershell") ||
			strings.Contains(strings.ToLower(comspec), "powershell") {
			return Descriptor{Kind: domain.ShellPowerShell, Path: "powershell"}
		}
		return Descriptor{Kind: domain.ShellWindowsCmd, Path: comspec}
	}

	path := os.Getenv("SHELL")
	if path == "" {
		path = "/bin/bash"
	}
	return fromPath(path)
}

func fromPath(path string) Descriptor {
	name := strings.ToLower(path)
	switch {
	case strings.Contains(name, "powershell"), strings.Contains(name, "pwsh"):
		return Descriptor{Kind: domain.ShellPowerShell, Path: path}
	case strings.HasSuffix(name, "cmd.exe"), strings.HasSuffix(name, "cmd"):
		return Descriptor{Kind: domain.ShellWindowsCmd, Path: path}
	case strings.Contains(name, "bash"):
		return Descriptor{Kind: domain.ShellBash, Path: path}
	case strings.Contains(name, "zsh"):
		return Descriptor{Kind: domain.ShellZsh, Path: path}
	case strings.Contains(name, "fish"):
		return Descriptor{Kind: domain.ShellFish, Path: path}
	default:
		return Descriptor{Kind: domain.ShellUnixOther, Path: path}
	}
}

// Command builds the exec invocation for one command string.
func (d Descriptor) Command(ctx context.Context, cmd string) *exec.Cmd {
	switch d.Kind {
	case domain.ShellPowerShell:
		return exec.CommandContext(ctx, d.Path, "-Command", cmd)
	case domain.ShellWindowsCmd:
		return exec.CommandContext(ctx, d.Path, "/C", cmd)
	default:
		return exec.CommandContext(ctx, d.Path, "-c", cmd)
	}
}
