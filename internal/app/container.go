// Package app wires application services with infrastructure adapters.
package app

import (
	"context"
	"os"
	"time"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/infrastructure/ai"
	"github.com/termai-cli/termai/internal/infrastructure/cache"
	"github.com/termai-cli/termai/internal/infrastructure/config"
	contextcollector "github.com/termai-cli/termai/internal/infrastructure/context"
	"github.com/termai-cli/termai/internal/infrastructure/executor"
	"github.com/termai-cli/termai/internal/infrastructure/history"
	"github.com/termai-cli/termai/internal/infrastructure/patterns"
	"github.com/termai-cli/termai/internal/infrastructure/security"
	"github.com/termai-cli/termai/internal/infrastructure/shell"
	"github.com/termai-cli/termai/internal/pkg/logger"
	"github.com/termai-cli/termai/internal/ports"
)

// Container holds the wired dependency graph. Prompter and Renderer are
// assigned by the CLI layer after construction.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Log          ports.Logger
	Patterns     *patterns.Store
	Classifier   ports.Classifier
	Shell        shell.Descriptor
	Executor     ports.CommandExecutor
	CommandLog   *history.CommandLog
	Audit        ports.AuditStore
	ChatStore    ports.ChatStore
	Cache        *cache.FileCache
	Collector    ports.ContextCollector
	Prompter     ports.Prompter
	Renderer     ports.Renderer
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	patternStore := patterns.NewStore(cfg.Safety.PatternsDir, log)

	shellOverride := cfg.Execution.Shell
	if shellOverride == "auto" {
		shellOverride = ""
	}
	desc := shell.Detect(shellOverride)

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Log:          log,
		Patterns:     patternStore,
		Classifier:   security.NewClassifier(patternStore),
		Shell:        desc,
		Executor:     executor.New(desc, !cfg.Execution.NoShellHistory, log),
		CommandLog:   history.NewCommandLog("", cfg.History.CommandLogCap),
		Audit:        history.NewSQLiteStore(),
		ChatStore:    history.NewChatFile(""),
		Cache:        cache.NewFileCache(cfg.Cache.MaxEntries, time.Duration(cfg.Cache.TTLMinutes)*time.Minute),
		Collector:    contextcollector.NewCollector(log),
	}, nil
}

// BuildOracle resolves credentials and constructs the generation client,
// optionally wrapped with response memoization. Credential resolution may
// prompt interactively on first use.
func (c *Container) BuildOracle(modelOverride string, noCache bool) (ports.Oracle, error) {
	key, err := config.APIKey(c.Config, c.Prompter)
	if err != nil {
		return nil, err
	}

	model := c.Config.Model.Name
	if modelOverride != "" {
		model = modelOverride
	}
	client, err := ai.NewClient(ai.Options{
		APIKey:     key,
		BaseURL:    c.Config.Model.BaseURL,
		Model:      model,
		MaxTokens:  c.Config.Model.MaxTokens,
		SystemInfo: contextcollector.SystemDescription(),
	}, c.Log)
	if err != nil {
		return nil, err
	}

	if noCache || !c.Config.Cache.Enabled || os.Getenv("NOCACHE") != "" {
		return client, nil
	}
	return cache.NewCachedOracle(client, c.Cache, c.Log), nil
}
