// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The sequence runner in
// internal/services depends only on these abstractions, so every flow —
// classification, confirmation, execution, auto-correction — can be tested
// with deterministic fakes and no network or subprocess involvement.
package ports

import (
	"context"

	"github.com/termai-cli/termai/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.termai/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Oracle is the external text-generation service converting natural language
// into shell command text. All operations block; callers substitute
// domain.PlaceholderCommand when an operation fails.
type Oracle interface {
	// GenerateCommand produces raw command text (possibly multi-line) for
	// the task, optionally enriched with collected context.
	GenerateCommand(ctx context.Context, task, contextPrompt string) (string, error)
	// GenerateAlternatives produces up to n independently sampled candidate
	// commands, de-duplicated, first appearance order preserved.
	GenerateAlternatives(ctx context.Context, task string, n int) ([]string, error)
	// GenerateFix asks for one corrected command given a failed command and
	// its standard error output.
	GenerateFix(ctx context.Context, failedCmd, stderr string) (string, error)
	// Explain describes what a command does, option by option.
	Explain(ctx context.Context, cmd string) (string, error)
	// PickContext selects which context source (by index into options) would
	// help with the task; -1 means none.
	PickContext(ctx context.Context, task string, options []string) (int, error)
	// Chat continues a free-form conversation.
	Chat(ctx context.Context, history []domain.ChatMessage) (string, error)
	// Endpoint describes the configured target for diagnostics.
	Endpoint() string
	// Model is the configured model identifier.
	Model() string
}

// Classifier decides whether a command is safe to auto-run. Pure; advisory
// only — a confirmation aid, not a security boundary.
type Classifier interface {
	Classify(cmd string) domain.Verdict
}

// CommandExecutor runs one shell command and reports the outcome as a value.
// Implementations never turn a non-zero exit or a missing shell into an
// error return.
type CommandExecutor interface {
	Run(ctx context.Context, cmd domain.CommandStep) domain.ExecutionResult
}

// CommandLog is the append-only, capped list of successfully executed
// AI-originated command strings.
type CommandLog interface {
	Append(cmd string) error
	Entries() ([]string, error)
	Clear() error
}

// AuditStore persists full run metadata for the history subcommand.
type AuditStore interface {
	Save(domain.RunRecord) error
	Records(limit int, search string) ([]domain.RunRecord, error)
	Clear() error
	ExportJSON(dest string) error
}

// ChatStore persists the chat-mode conversation between invocations.
type ChatStore interface {
	Load() ([]domain.ChatMessage, error)
	Save([]domain.ChatMessage) error
	Clear() error
}

// ContextCollector gathers environmental context (files, processes, users,
// network info) to enrich oracle prompts.
type ContextCollector interface {
	// Sources lists the available context kinds in selection order.
	Sources() []string
	// Collect captures the context at the given index.
	Collect(ctx context.Context, index int) (string, error)
}

// Prompter handles interactive keyboard input.
type Prompter interface {
	// Confirm asks a [Y/n] question. Only an explicit n/N answer declines.
	Confirm(question string) (bool, error)
	// Select asks for an index in [0, n). ok is false when the answer is
	// not a valid index.
	Select(question string, n int) (index int, ok bool, err error)
	// Input reads one free-form line.
	Input(question string) (string, error)
}

// Renderer displays commands, verdicts and results to the user.
type Renderer interface {
	ShowCommand(cmd domain.CommandStep, v domain.Verdict)
	ShowSteps(steps []domain.CommandStep, verdicts []domain.Verdict)
	ShowAlternatives(cmds []string, verdicts []domain.Verdict, explanations []string)
	ShowExplanation(cmd, explanation string)
	ShowExecution(res domain.ExecutionResult)
	Notice(msg string)
}

// CacheStore memoizes oracle responses on disk, keyed by a hash of the
// normalized request inputs.
type CacheStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
