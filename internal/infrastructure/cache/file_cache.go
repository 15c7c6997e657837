// Package cache memoizes oracle responses on disk.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/pkg/filesystem"
	"github.com/termai-cli/termai/internal/ports"
)

// Entry is one cached oracle response.
type Entry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// FileCache stores responses as JSON blobs addressed by hash key, capped in
// size with oldest-entry-first eviction.
type FileCache struct {
	dir        string
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
}

// NewFileCache returns a cache rooted under ~/.termai/cache/responses.
func NewFileCache(maxEntries int, ttl time.Duration) *FileCache {
	return NewFileCacheAt(filepath.Join(filesystem.DataDir(), "cache", "responses"), maxEntries, ttl)
}

// NewFileCacheAt returns a cache rooted at dir.
func NewFileCacheAt(dir string, maxEntries int, ttl time.Duration) *FileCache {
	if maxEntries <= 0 {
		maxEntries = domain.DefaultMaxCacheEntries
	}
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &FileCache{dir: dir, maxEntries: maxEntries, ttl: ttl}
}

// Key derives a cache key from normalized request inputs.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}

// Get retrieves a cached value.
func (c *FileCache) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}
	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false, err
	}
	if c.ttl > 0 && time.Since(entry.CreatedAt) > c.ttl {
		_ = os.Remove(c.pathFor(key))
		return "", false, nil
	}
	return entry.Value, true, nil
}

// Set stores a value.
func (c *FileCache) Set(key, value string) error {
	if key == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	data, err := json.Marshal(Entry{Key: key, Value: value, CreatedAt: time.Now()})
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.pathFor(key), data, domain.FilePermissions); err != nil {
		return err
	}
	return c.evictIfNeeded()
}

// Dir exposes the cache directory path.
func (c *FileCache) Dir() string {
	return c.dir
}

// Clear removes all cached entries.
func (c *FileCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// Len counts cached entries (best-effort).
func (c *FileCache) Len() int {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, f := range files {
		if !f.IsDir() {
			n++
		}
	}
	return n
}

func (c *FileCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *FileCache) evictIfNeeded() error {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(files) <= c.maxEntries {
		return nil
	}
	type fileInfo struct {
		name string
		mod  time.Time
	}
	var infos []fileInfo
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		infos = append(infos, fileInfo{name: f.Name(), mod: info.ModTime()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].mod.Before(infos[j].mod) })
	for len(infos) > c.maxEntries {
		old := infos[0]
		_ = os.Remove(filepath.Join(c.dir, old.name))
		infos = infos[1:]
	}
	return nil
}

var _ ports.CacheStore = (*FileCache)(nil)
