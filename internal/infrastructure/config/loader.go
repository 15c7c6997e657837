// Package config loads and persists termai settings.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/pkg/filesystem"
	"github.com/termai-cli/termai/internal/ports"
)

// FileLoader loads YAML configuration from ~/.termai/config.yaml
// (overridable via TERMAI_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := writeConfig(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Save writes cfg back to the resolved config path.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	return writeConfig(path, cfg)
}

// Path reports where the config is read from and written to.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("TERMAI_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.DataDir(), "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func writeConfig(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// DefaultConfig is what a fresh install writes.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Model: domain.ModelSettings{
			Name:       "gpt-4o-mini",
			BaseURL:    "",
			AuthEnvVar: "OPENAI_API_KEY",
			MaxTokens:  domain.DefaultMaxTokens,
		},
		Safety: domain.SafetySettings{
			Mode:        domain.SafetyConfirmAlways,
			PatternsDir: "",
		},
		Execution: domain.ExecutionSettings{
			Shell:        "auto",
			AutoCorrect:  true,
			Alternatives: domain.DefaultAlternatives,
		},
		History: domain.HistorySettings{
			CommandLogCap: domain.DefaultCommandLogCap,
		},
		Cache: domain.CacheSettings{
			Enabled:    true,
			MaxEntries: domain.DefaultMaxCacheEntries,
			TTLMinutes: int(domain.DefaultCacheTTL.Minutes()),
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Model.Name == "" {
		cfg.Model.Name = "gpt-4o-mini"
	}
	if cfg.Model.AuthEnvVar == "" {
		cfg.Model.AuthEnvVar = "OPENAI_API_KEY"
	}
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = domain.DefaultMaxTokens
	}
	if cfg.Execution.Shell == "" {
		cfg.Execution.Shell = "auto"
	}
	if cfg.Execution.Alternatives == 0 {
		cfg.Execution.Alternatives = domain.DefaultAlternatives
	}
	if cfg.History.CommandLogCap == 0 {
		cfg.History.CommandLogCap = domain.DefaultCommandLogCap
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = domain.DefaultMaxCacheEntries
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = int(domain.DefaultCacheTTL.Minutes())
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
