package cache

import (
	"context"
	"testing"
	"time"

	"github.com/termai-cli/termai/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

type countingOracle struct {
	commandCalls int
	altCalls     int
}

func (o *countingOracle) GenerateCommand(_ context.Context, task, _ string) (string, error) {
	o.commandCalls++
	return "ls " + task, nil
}

func (o *countingOracle) GenerateAlternatives(_ context.Context, _ string, _ int) ([]string, error) {
	o.altCalls++
	return []string{"ls", "ls -la"}, nil
}

func (o *countingOracle) GenerateFix(_ context.Context, _, _ string) (string, error) {
	return "fixed", nil
}

func (o *countingOracle) Explain(_ context.Context, _ string) (string, error) {
	return "lists files", nil
}

func (o *countingOracle) PickContext(_ context.Context, _ string, _ []string) (int, error) {
	return 0, nil
}

func (o *countingOracle) Chat(_ context.Context, _ []domain.ChatMessage) (string, error) {
	return "hi", nil
}

func (o *countingOracle) Endpoint() string { return "Default (OpenAI)" }
func (o *countingOracle) Model() string    { return "gpt-4o-mini" }

func TestFileCacheRoundTrip(t *testing.T) {
	c := NewFileCacheAt(t.TempDir(), 10, time.Hour)

	if _, ok, err := c.Get(Key("missing")); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	key := Key("command", "m", "task")
	if err := c.Set(key, "echo hi"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if value != "echo hi" {
		t.Fatalf("got %q", value)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c := NewFileCacheAt(t.TempDir(), 10, time.Nanosecond)

	key := Key("x")
	if err := c.Set(key, "stale"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, ok, _ := c.Get(key); ok {
		t.Fatal("expired entry should miss")
	}
}

func TestFileCacheEviction(t *testing.T) {
	c := NewFileCacheAt(t.TempDir(), 2, time.Hour)

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(Key(k), k); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if n := c.Len(); n != 2 {
		t.Fatalf("expected 2 entries after eviction, got %d", n)
	}
}

func TestCachedOracleMemoizesCommand(t *testing.T) {
	inner := &countingOracle{}
	oracle := NewCachedOracle(inner, NewFileCacheAt(t.TempDir(), 10, time.Hour), nopLogger{})

	first, err := oracle.GenerateCommand(context.Background(), "task", "")
	if err != nil {
		t.Fatalf("GenerateCommand: %v", err)
	}
	second, err := oracle.GenerateCommand(context.Background(), "task", "")
	if err != nil {
		t.Fatalf("GenerateCommand: %v", err)
	}
	if first != second {
		t.Fatalf("cached value diverged: %q vs %q", first, second)
	}
	if inner.commandCalls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", inner.commandCalls)
	}
}

func TestCachedOracleMemoizesAlternatives(t *testing.T) {
	inner := &countingOracle{}
	oracle := NewCachedOracle(inner, NewFileCacheAt(t.TempDir(), 10, time.Hour), nopLogger{})

	first, _ := oracle.GenerateAlternatives(context.Background(), "task", 2)
	second, _ := oracle.GenerateAlternatives(context.Background(), "task", 2)
	if len(first) != 2 || len(second) != 2 || first[1] != second[1] {
		t.Fatalf("alternatives mismatch: %v vs %v", first, second)
	}
	if inner.altCalls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", inner.altCalls)
	}
}
