package history

import (
	"path/filepath"
	"testing"
)

func newTestLog(t *testing.T, capacity int) *CommandLog {
	t.Helper()
	return NewCommandLog(filepath.Join(t.TempDir(), "command_log"), capacity)
}

func mustAppend(t *testing.T, l *CommandLog, cmd string) {
	t.Helper()
	if err := l.Append(cmd); err != nil {
		t.Fatalf("Append(%q) error: %v", cmd, err)
	}
}

func entries(t *testing.T, l *CommandLog) []string {
	t.Helper()
	got, err := l.Entries()
	if err != nil {
		t.Fatalf("Entries error: %v", err)
	}
	return got
}

func TestCommandLogConsecutiveDedup(t *testing.T) {
	l := newTestLog(t, 10)

	mustAppend(t, l, "ls")
	mustAppend(t, l, "ls")

	if got := entries(t, l); len(got) != 1 || got[0] != "ls" {
		t.Fatalf("expected single deduped entry, got %v", got)
	}

	// The same command after a different one is a new entry.
	mustAppend(t, l, "pwd")
	mustAppend(t, l, "ls")

	if got := entries(t, l); len(got) != 3 || got[2] != "ls" {
		t.Fatalf("expected non-consecutive duplicate to append, got %v", got)
	}
}

func TestCommandLogCapEvictsOldestFirst(t *testing.T) {
	l := newTestLog(t, 3)

	for _, cmd := range []string{"a", "b", "c", "d", "e"} {
		mustAppend(t, l, cmd)
	}

	got := entries(t, l)
	if len(got) != 3 {
		t.Fatalf("cap exceeded: %v", got)
	}
	for i, want := range []string{"c", "d", "e"} {
		if got[i] != want {
			t.Fatalf("eviction order wrong: got %v", got)
		}
	}
}

func TestCommandLogPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "command_log")

	l := NewCommandLog(path, 10)
	mustAppend(t, l, "echo persisted")

	reopened := NewCommandLog(path, 10)
	if got := entries(t, reopened); len(got) != 1 || got[0] != "echo persisted" {
		t.Fatalf("log did not survive reopen: %v", got)
	}
}

func TestCommandLogMissingFileIsEmpty(t *testing.T) {
	l := newTestLog(t, 10)
	if got := entries(t, l); len(got) != 0 {
		t.Fatalf("expected empty log, got %v", got)
	}
}
