package executor

import (
	"context"
	"runtime"
	"testing"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/infrastructure/shell"
)

func shDescriptor(t *testing.T) shell.Descriptor {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("unix shell required")
	}
	return shell.Detect("/bin/sh")
}

func TestRunCapturesStdoutAndExitCode(t *testing.T) {
	e := New(shDescriptor(t), false, nil)

	res := e.Run(context.Background(), "echo hello")
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr = %q", res.ExitCode, res.Stderr)
	}
	if res.Stdout != "hello\n" {
		t.Fatalf("stdout = %q", res.Stdout)
	}
}

func TestRunReportsNonZeroExitAsValue(t *testing.T) {
	e := New(shDescriptor(t), false, nil)

	res := e.Run(context.Background(), "exit 3")
	if res.ExitCode != 3 {
		t.Fatalf("exit code = %d, want 3", res.ExitCode)
	}
}

func TestRunCapturesStderr(t *testing.T) {
	e := New(shDescriptor(t), false, nil)

	res := e.Run(context.Background(), "echo oops 1>&2; exit 1")
	if res.ExitCode != 1 || res.Stderr != "oops\n" {
		t.Fatalf("got code %d stderr %q", res.ExitCode, res.Stderr)
	}
}

func TestRunMissingShellIsCommandNotFound(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	e := New(shell.Detect("/nonexistent/shell"), false, nil)

	res := e.Run(context.Background(), "echo hi")
	if res.ExitCode != domain.ExitCommandNotFound {
		t.Fatalf("exit code = %d, want %d", res.ExitCode, domain.ExitCommandNotFound)
	}
	if res.Stdout != "" {
		t.Fatalf("expected empty stdout, got %q", res.Stdout)
	}
}
