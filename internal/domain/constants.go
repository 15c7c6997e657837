package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
	// FilePermissions is the default permission for data files (rw-r--r--)
	FilePermissions = 0o644
)

// Limit constants
const (
	// DefaultCommandLogCap bounds the persistent command log; oldest
	// entries are evicted first.
	DefaultCommandLogCap = 100
	// DefaultAlternatives is how many candidate commands the oracle is
	// asked for when the user declines the first suggestion.
	DefaultAlternatives = 5
	// DefaultMaxCacheEntries is the maximum number of cache entries.
	DefaultMaxCacheEntries = 128
	// DefaultMaxTokens caps command-generation responses.
	DefaultMaxTokens = 100
	// MaxContextBytes truncates collected context before it reaches the
	// oracle prompt.
	MaxContextBytes = 3000
	// ChatHistoryCap is the maximum number of persisted chat messages.
	ChatHistoryCap = 50
	// ChatHistoryWordBudget trims old chat messages beyond this many words.
	ChatHistoryWordBudget = 2000
)

// Timeout constants
const (
	// DefaultCacheTTL is how long cached oracle responses stay valid.
	DefaultCacheTTL = 24 * time.Hour
	// DefaultHTTPClientTimeout is the timeout for oracle requests.
	DefaultHTTPClientTimeout = 60 * time.Second
)

// DataDirName is the per-user directory (under $HOME) holding config,
// credentials, cache and history.
const DataDirName = ".termai"
