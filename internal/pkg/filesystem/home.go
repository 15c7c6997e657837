package filesystem

import (
	"os"
	"path/filepath"

	"github.com/termai-cli/termai/internal/domain"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// DataDir returns the termai data directory under the user's home.
func DataDir() string {
	return filepath.Join(UserHomeDir(), domain.DataDirName)
}
