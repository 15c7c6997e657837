package contextcollector

import (
	"context"
	"os"
	"strings"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

func TestSourcesAreStable(t *testing.T) {
	c := NewCollector(nopLogger{})
	names := c.Sources()
	if len(names) != 7 {
		t.Fatalf("expected 7 sources, got %d", len(names))
	}
	if names[0] != "List of files in the current directory" {
		t.Fatalf("unexpected first source %q", names[0])
	}
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), "environment") {
			t.Fatal("environment variables must not be offered as context")
		}
	}
}

func TestCollectOutOfRange(t *testing.T) {
	c := NewCollector(nopLogger{})
	if _, err := c.Collect(context.Background(), -1); err == nil {
		t.Fatal("expected error for index -1")
	}
	if _, err := c.Collect(context.Background(), len(c.Sources())); err == nil {
		t.Fatal("expected error past registry end")
	}
}

func TestCollectFilesListsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/marker.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	t.Chdir(dir)

	c := NewCollector(nopLogger{})
	out, err := c.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !strings.Contains(out, "marker.txt") {
		t.Fatalf("file listing missing entry: %q", out)
	}
}

func TestTruncateCapsLength(t *testing.T) {
	long := strings.Repeat("x", 10000)
	if got := truncate(long, 3000); len(got) != 3000 {
		t.Fatalf("expected 3000 bytes, got %d", len(got))
	}
}

func TestParseOSRelease(t *testing.T) {
	fields := parseOSRelease("ID=ubuntu\nID_LIKE=debian\nNAME=\"Ubuntu\"\n")
	if fields["ID_LIKE"] != "debian" {
		t.Fatalf("ID_LIKE = %q", fields["ID_LIKE"])
	}
	if fields["NAME"] != "Ubuntu" {
		t.Fatalf("quotes not stripped: %q", fields["NAME"])
	}
}
