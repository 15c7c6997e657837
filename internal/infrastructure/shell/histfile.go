package shell

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/pkg/filesystem"
)

// powerShellFallbackHistory is used when PSReadLine cannot tell us where it
// keeps its history.
const powerShellFallbackHistory = "AppData/Roaming/Microsoft/Windows/PowerShell/PSReadLine/ConsoleHost_history.txt"

// AppendHistory writes cmd to the shell's native interactive history file.
// Callers invoke this before executing, so the command is on record even if
// execution later fails or hangs. Unrecognized shells are skipped silently;
// any error is for the caller to log, never to act on.
func (d Descriptor) AppendHistory(cmd string) error {
	path, line := d.historyEntry(cmd)
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePermissions)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(line)
	return err
}

func (d Descriptor) historyEntry(cmd string) (path, line string) {
	switch d.Kind {
	case domain.ShellBash:
		return filepath.Join(filesystem.UserHomeDir(), ".bash_history"), cmd + "\n"
	case domain.ShellZsh:
		path := os.Getenv("HISTFILE")
		if path == "" {
			path = filepath.Join(filesystem.UserHomeDir(), ".zsh_history")
		}
		return path, fmt.Sprintf(": %d:0;%s\n", time.Now().Unix(), cmd)
	case domain.ShellFish:
		path := filepath.Join(filesystem.UserHomeDir(), ".local", "share", "fish", "fish_history")
		return path, fmt.Sprintf("- cmd: %s\n  when: %d\n", cmd, time.Now().Unix())
	case domain.ShellPowerShell:
		return d.powerShellHistoryPath(), cmd + "\r\n"
	default:
		// cmd.exe has no persistent history; unknown unix shells are skipped.
		return "", ""
	}
}

// powerShellHistoryPath asks PSReadLine for its save path, falling back to
// the conventional location when the lookup fails.
func (d Descriptor) powerShellHistoryPath() string {
	out, err := exec.Command(d.Path, "-NoProfile", "-Command", "(Get-PSReadlineOption).HistorySavePath").Output()
	if err == nil {
		if path := strings.TrimSpace(string(out)); path != "" {
			return path
		}
	}
	return filepath.Join(filesystem.UserHomeDir(), filepath.FromSlash(powerShellFallbackHistory))
}
