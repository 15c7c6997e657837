package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/termai-cli/termai/internal/domain"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model.Name != "gpt-4o-mini" {
		t.Fatalf("unexpected default model %q", cfg.Model.Name)
	}
	if cfg.Safety.Mode != domain.SafetyConfirmAlways {
		t.Fatalf("fresh install must confirm every command, got mode %d", cfg.Safety.Mode)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "model:\n  name: llama3\nsafety:\n  mode: 1\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model.Name != "llama3" {
		t.Fatalf("explicit model lost: %q", cfg.Model.Name)
	}
	if cfg.Safety.Mode != domain.SafetyAutoRunSafe {
		t.Fatalf("explicit safety mode lost: %d", cfg.Safety.Mode)
	}
	if cfg.Model.MaxTokens != domain.DefaultMaxTokens {
		t.Fatalf("max_tokens not hydrated: %d", cfg.Model.MaxTokens)
	}
	if cfg.Execution.Alternatives != domain.DefaultAlternatives {
		t.Fatalf("alternatives not hydrated: %d", cfg.Execution.Alternatives)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg := DefaultConfig()
	cfg.Model.Name = "gpt-4o"
	cfg.Execution.NoShellHistory = true
	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Model.Name != "gpt-4o" || !got.Execution.NoShellHistory {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestEnvOverridePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alt.yaml")
	t.Setenv("TERMAI_CONFIG", path)

	loader := NewFileLoader("")
	if got := loader.Path(); got != path {
		t.Fatalf("expected %q, got %q", path, got)
	}
}
