package shell

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/termai-cli/termai/internal/domain"
)

func TestDetectFromPath(t *testing.T) {
	cases := []struct {
		path string
		want domain.ShellKind
	}{
		{"/bin/bash", domain.ShellBash},
		{"/usr/bin/zsh", domain.ShellZsh},
		{"/usr/bin/fish", domain.ShellFish},
		{"/bin/dash", domain.ShellUnixOther},
		{`C:\Windows\system32\cmd.exe`, domain.ShellWindowsCmd},
		{"powershell", domain.ShellPowerShell},
	}
	for _, tc := range cases {
		if got := Detect(tc.path).Kind; got != tc.want {
			t.Errorf("Detect(%q) = %s, want %s", tc.path, got, tc.want)
		}
	}
}

func TestAppendHistoryBashPlainLine(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	d := Descriptor{Kind: domain.ShellBash, Path: "/bin/bash"}
	if err := d.AppendHistory("ls -la"); err != nil {
		t.Fatalf("AppendHistory error: %v", err)
	}
	if err := d.AppendHistory("pwd"); err != nil {
		t.Fatalf("AppendHistory error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".bash_history"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ls -la\npwd\n" {
		t.Fatalf("unexpected history content: %q", data)
	}
}

func TestAppendHistoryZshExtendedFormat(t *testing.T) {
	histfile := filepath.Join(t.TempDir(), "history")
	t.Setenv("HISTFILE", histfile)

	d := Descriptor{Kind: domain.ShellZsh, Path: "/bin/zsh"}
	if err := d.AppendHistory("echo hi"); err != nil {
		t.Fatalf("AppendHistory error: %v", err)
	}

	data, err := os.ReadFile(histfile)
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := regexp.MatchString(`^: \d+:0;echo hi\n$`, string(data)); !ok {
		t.Fatalf("unexpected zsh history line: %q", data)
	}
}

func TestAppendHistorySkipsUnrecognizedShells(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	d := Descriptor{Kind: domain.ShellUnixOther, Path: "/bin/dash"}
	if err := d.AppendHistory("echo hi"); err != nil {
		t.Fatalf("expected skip, got error: %v", err)
	}

	entries, err := os.ReadDir(home)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, found %d", len(entries))
	}
}

func TestCommandBuildsUnixInvocation(t *testing.T) {
	d := Descriptor{Kind: domain.ShellBash, Path: "/bin/bash"}
	c := d.Command(context.Background(), "echo hi")
	if !strings.HasSuffix(c.Path, "bash") || len(c.Args) != 3 || c.Args[1] != "-c" {
		t.Fatalf("unexpected invocation: %v", c.Args)
	}
}
