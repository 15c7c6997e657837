package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/ports"
)

// CachedOracle wraps an oracle and memoizes deterministic calls. Chat and
// fix generation are never cached: both depend on transient state.
type CachedOracle struct {
	inner ports.Oracle
	store ports.CacheStore
	log   ports.Logger
}

// NewCachedOracle decorates inner with store-backed memoization.
func NewCachedOracle(inner ports.Oracle, store ports.CacheStore, log ports.Logger) *CachedOracle {
	return &CachedOracle{inner: inner, store: store, log: log}
}

func (o *CachedOracle) GenerateCommand(ctx context.Context, task, contextPrompt string) (string, error) {
	key := Key("command", o.inner.Model(), task, contextPrompt)
	if value, ok := o.lookup(key); ok {
		return value, nil
	}
	value, err := o.inner.GenerateCommand(ctx, task, contextPrompt)
	if err != nil {
		return value, err
	}
	o.remember(key, value)
	return value, nil
}

func (o *CachedOracle) GenerateAlternatives(ctx context.Context, task string, n int) ([]string, error) {
	key := Key("alternatives", o.inner.Model(), task, strconv.Itoa(n))
	if value, ok := o.lookup(key); ok {
		return splitCached(value), nil
	}
	alts, err := o.inner.GenerateAlternatives(ctx, task, n)
	if err != nil {
		return alts, err
	}
	o.remember(key, strings.Join(alts, "\n"))
	return alts, nil
}

func (o *CachedOracle) Explain(ctx context.Context, cmd string) (string, error) {
	key := Key("explain", o.inner.Model(), cmd)
	if value, ok := o.lookup(key); ok {
		return value, nil
	}
	value, err := o.inner.Explain(ctx, cmd)
	if err != nil {
		return value, err
	}
	o.remember(key, value)
	return value, nil
}

func (o *CachedOracle) PickContext(ctx context.Context, task string, options []string) (int, error) {
	key := Key("pick", o.inner.Model(), task, strings.Join(options, "\n"))
	if value, ok := o.lookup(key); ok {
		if idx, err := strconv.Atoi(value); err == nil {
			return idx, nil
		}
	}
	idx, err := o.inner.PickContext(ctx, task, options)
	if err != nil {
		return idx, err
	}
	o.remember(key, strconv.Itoa(idx))
	return idx, nil
}

func (o *CachedOracle) GenerateFix(ctx context.Context, failedCmd, stderr string) (string, error) {
	return o.inner.GenerateFix(ctx, failedCmd, stderr)
}

func (o *CachedOracle) Chat(ctx context.Context, history []domain.ChatMessage) (string, error) {
	return o.inner.Chat(ctx, history)
}

func (o *CachedOracle) Endpoint() string { return o.inner.Endpoint() }

func (o *CachedOracle) Model() string { return o.inner.Model() }

func (o *CachedOracle) lookup(key string) (string, bool) {
	value, ok, err := o.store.Get(key)
	if err != nil {
		o.log.Warn("cache read failed", map[string]interface{}{"error": err.Error()})
		return "", false
	}
	return value, ok
}

func (o *CachedOracle) remember(key, value string) {
	if err := o.store.Set(key, value); err != nil {
		o.log.Warn("cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

func splitCached(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, "\n")
}

var _ ports.Oracle = (*CachedOracle)(nil)
