package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/pkg/filesystem"
	"github.com/termai-cli/termai/internal/ports"
)

// CredentialsFileName is the key file under the data directory.
const CredentialsFileName = "credentials"

// ErrNoAPIKey is returned when no key could be resolved from any source.
var ErrNoAPIKey = errors.New("no API key configured")

// APIKey resolves the API key: the configured environment variable wins,
// then the credentials file, then an interactive one-time prompt whose
// answer is persisted for future runs.
func APIKey(cfg domain.Config, prompter ports.Prompter) (string, error) {
	envVar := cfg.Model.AuthEnvVar
	if envVar == "" {
		envVar = "OPENAI_API_KEY"
	}
	if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
		return key, nil
	}

	path := credentialsPath()
	if key, err := readCredentialsFile(path); err == nil && key != "" {
		return key, nil
	}

	if prompter == nil {
		return "", fmt.Errorf("%w: set %s or run `termai config`", ErrNoAPIKey, envVar)
	}
	key, err := prompter.Input(fmt.Sprintf("Enter your API key (stored in %s)", path))
	if err != nil {
		return "", err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%w: set %s or run `termai config`", ErrNoAPIKey, envVar)
	}
	if err := WriteAPIKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// WriteAPIKey persists the key to the credentials file with owner-only
// permissions.
func WriteAPIKey(key string) error {
	path := credentialsPath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.TrimSpace(key)+"\n"), domain.SecureFilePermissions)
}

// ClearAPIKey removes the stored key file.
func ClearAPIKey() error {
	err := os.Remove(credentialsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// HasStoredAPIKey reports whether a credentials file with content exists.
func HasStoredAPIKey() bool {
	key, err := readCredentialsFile(credentialsPath())
	return err == nil && key != ""
}

func credentialsPath() string {
	return filepath.Join(filesystem.DataDir(), CredentialsFileName)
}

func readCredentialsFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
