// Package security implements the command-safety classifier.
//
// Classification is a best-effort confirmation aid, not a sandbox: the
// safe-pattern list is checked before the dangerous one, so an explicitly
// whitelisted idiom is never flagged even when it overlaps a risky token.
// Obfuscated payloads can evade every check here; the interactive
// confirmation gate is the actual line of defense.
package security

import (
	"fmt"
	"strings"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/infrastructure/patterns"
	"github.com/termai-cli/termai/internal/ports"
)

// Verdict reasons. The dangerous-pattern reason embeds the matched
// expression; the rest are fixed strings.
const (
	reasonKnownSafe   = "Command appears to be safe (basic system information or navigation)"
	reasonPipeShell   = "Command pipes output to a shell, which could be dangerous"
	reasonRedirectSys = "Command redirects output to system directories"
	reasonDownload    = "Command downloads content from the internet"
	reasonDefaultSafe = "No obvious dangerous patterns detected"
)

var (
	shellTokens = []string{"sh", "bash", "powershell", "cmd", "invoke-expression", "iex"}
	systemDirs  = []string{"/etc", "/bin", "/sbin", "/usr", `c:\windows`, "%windir%", "system32"}
	downloaders = []string{"wget", "curl", "invoke-webrequest", "start-bitstransfer"}
)

// Classifier evaluates commands against the pattern store. Pure function of
// the command and the snapshot taken at construction.
type Classifier struct {
	store *patterns.Store
}

// NewClassifier builds a classifier over the given pattern snapshot.
func NewClassifier(store *patterns.Store) *Classifier {
	return &Classifier{store: store}
}

// Classify decides Safe/Unsafe for one command string. First match wins:
// safe patterns, then dangerous patterns, then the heuristic checks.
func (c *Classifier) Classify(cmd string) domain.Verdict {
	for _, p := range c.store.Safe() {
		if p.Matches(cmd) {
			return domain.Verdict{Safe: true, Reason: reasonKnownSafe}
		}
	}

	for _, p := range c.store.Dangerous() {
		if p.Matches(cmd) {
			return domain.Verdict{
				Safe:   false,
				Reason: fmt.Sprintf("Command contains potentially dangerous pattern: %s", p.Raw),
			}
		}
	}

	if pipesToShell(cmd) {
		return domain.Verdict{Safe: false, Reason: reasonPipeShell}
	}
	if redirectsToSystemDir(cmd) {
		return domain.Verdict{Safe: false, Reason: reasonRedirectSys}
	}
	if startsWithDownloader(cmd) {
		return domain.Verdict{Safe: false, Reason: reasonDownload}
	}

	return domain.Verdict{Safe: true, Reason: reasonDefaultSafe}
}

// pipesToShell flags commands whose pipe target mentions a shell-invocation
// token.
func pipesToShell(cmd string) bool {
	idx := strings.Index(cmd, "|")
	if idx < 0 {
		return false
	}
	rhs := strings.ToLower(cmd[idx+1:])
	for _, tok := range shellTokens {
		if strings.Contains(rhs, tok) {
			return true
		}
	}
	return false
}

// redirectsToSystemDir flags output redirection mentioning a known system
// directory.
func redirectsToSystemDir(cmd string) bool {
	if !strings.Contains(cmd, ">") {
		return false
	}
	lower := strings.ToLower(cmd)
	for _, dir := range systemDirs {
		if strings.Contains(lower, dir) {
			return true
		}
	}
	return false
}

// startsWithDownloader flags commands whose first token is a network
// download utility.
func startsWithDownloader(cmd string) bool {
	lower := strings.ToLower(strings.TrimSpace(cmd))
	for _, util := range downloaders {
		if strings.HasPrefix(lower, util) {
			return true
		}
	}
	return false
}

var _ ports.Classifier = (*Classifier)(nil)
