// Package executor runs commands on the host shell.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/infrastructure/shell"
	"github.com/termai-cli/termai/internal/ports"
)

// LocalExecutor runs commands through a resolved shell descriptor and
// appends each command to the shell's native history before spawning it.
type LocalExecutor struct {
	shell        shell.Descriptor
	writeHistory bool
	log          ports.Logger
}

// New builds an executor. writeHistory mirrors the command into the shell's
// interactive history file; failures there are logged, never blocking.
func New(desc shell.Descriptor, writeHistory bool, log ports.Logger) *LocalExecutor {
	return &LocalExecutor{shell: desc, writeHistory: writeHistory, log: log}
}

// Run implements ports.CommandExecutor. Execution problems — including a
// missing shell binary — come back as ExecutionResult values, never as
// panics or error returns.
func (e *LocalExecutor) Run(ctx context.Context, cmd domain.CommandStep) domain.ExecutionResult {
	// History first: the command should be on record even if it hangs.
	if e.writeHistory {
		if err := e.shell.AppendHistory(string(cmd)); err != nil && e.log != nil {
			e.log.Warn("shell history write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	c := e.shell.Command(ctx, string(cmd))
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: time.Since(start).Milliseconds(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		// Shell binary missing or not startable.
		result.ExitCode = domain.ExitCommandNotFound
		if result.Stderr == "" {
			result.Stderr = err.Error()
		}
	}
	return result
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
