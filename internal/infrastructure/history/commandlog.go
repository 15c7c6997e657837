// Package history persists what termai has executed: a capped command log
// for replay/inspection plus a richer audit store behind the history
// subcommand.
package history

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"sync"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/pkg/filesystem"
	"github.com/termai-cli/termai/internal/ports"
)

// CommandLog is the append-only, most-recent-last list of successfully
// executed AI-chosen commands, persisted as a gob blob. The list is capped;
// the oldest entries are evicted first. Appending the same command twice in
// a row keeps a single entry.
type CommandLog struct {
	path string
	cap  int
	mu   sync.Mutex
}

// NewCommandLog creates a log stored at path. A non-positive cap falls back
// to the default.
func NewCommandLog(path string, capacity int) *CommandLog {
	if path == "" {
		path = filepath.Join(filesystem.DataDir(), "command_log")
	}
	if capacity <= 0 {
		capacity = domain.DefaultCommandLogCap
	}
	return &CommandLog{path: path, cap: capacity}
}

// Append records one successfully executed command.
func (l *CommandLog) Append(cmd string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load()
	if err != nil {
		return err
	}
	if n := len(entries); n > 0 && entries[n-1] == cmd {
		// Dedup against the immediately preceding entry only.
		return nil
	}
	entries = append(entries, cmd)
	if len(entries) > l.cap {
		entries = entries[len(entries)-l.cap:]
	}
	return l.save(entries)
}

// Entries returns the log, oldest first. A missing file is an empty log.
func (l *CommandLog) Entries() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Clear removes the log file.
func (l *CommandLog) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (l *CommandLog) Path() string {
	return l.path
}

func (l *CommandLog) load() ([]string, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	var entries []string
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		// A corrupt log is not worth failing an execution over.
		return nil, nil
	}
	return entries, nil
}

func (l *CommandLog) save(entries []string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePermissions)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(entries)
}

var _ ports.CommandLog = (*CommandLog)(nil)
