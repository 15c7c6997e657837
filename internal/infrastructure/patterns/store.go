// Package patterns loads and persists the safe/dangerous command pattern
// lists backing the safety classifier.
package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/termai-cli/termai/internal/ports"
)

// Category names one of the two pattern lists.
type Category string

const (
	CategorySafe      Category = "safe"
	CategoryDangerous Category = "dangerous"
)

// File names, resolved relative to the store directory (the working
// directory by default).
const (
	SafeFileName      = "safe_patterns.txt"
	DangerousFileName = "dangerous_patterns.txt"
)

// Pattern is a single matchable rule: the raw expression as read from the
// file plus its case-insensitive compiled form.
type Pattern struct {
	Raw string
	re  *regexp.Regexp
}

// Matches reports whether the pattern matches anywhere in cmd.
func (p Pattern) Matches(cmd string) bool {
	return p.re.MatchString(cmd)
}

// Store holds an immutable snapshot of both pattern lists, in file order.
// It is constructed once at startup; pattern-file I/O problems downgrade to
// the built-in defaults and are never fatal.
type Store struct {
	dir       string
	safe      []Pattern
	dangerous []Pattern
	log       ports.Logger
}

// NewStore loads both categories from dir, materializing defaults for any
// list whose file is absent or unreadable. dir may be empty for the current
// working directory.
func NewStore(dir string, log ports.Logger) *Store {
	s := &Store{dir: dir, log: log}
	s.safe = s.loadCategory(CategorySafe, SafeFileName, defaultSafe())
	s.dangerous = s.loadCategory(CategoryDangerous, DangerousFileName, defaultDangerous())
	return s
}

// Safe returns the safe patterns in file order.
func (s *Store) Safe() []Pattern { return s.safe }

// Dangerous returns the dangerous patterns in file order.
func (s *Store) Dangerous() []Pattern { return s.dangerous }

// Dir returns the directory the pattern files live in.
func (s *Store) Dir() string {
	if s.dir == "" {
		return "."
	}
	return s.dir
}

func (s *Store) loadCategory(cat Category, fileName string, defaults []string) []Pattern {
	path := filepath.Join(s.Dir(), fileName)
	raw, err := readPatternFile(path)
	if err != nil {
		// Absent or unreadable behaves identically: fall back to the
		// defaults and write them out for the user to edit.
		s.warn("pattern file unavailable, using built-in defaults", path, err)
		if werr := EnsureDefaults(path, cat, defaults); werr != nil {
			s.warn("failed to materialize default patterns", path, werr)
		}
		raw = defaults
	}
	return s.compile(cat, raw)
}

func (s *Store) compile(cat Category, raw []string) []Pattern {
	compiled := make([]Pattern, 0, len(raw))
	for _, expr := range raw {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			s.warn("skipping invalid pattern", string(cat)+": "+expr, err)
			continue
		}
		compiled = append(compiled, Pattern{Raw: expr, re: re})
	}
	return compiled
}

func (s *Store) warn(msg, subject string, err error) {
	if s.log == nil {
		return
	}
	s.log.Warn(msg, map[string]interface{}{"subject": subject, "error": err.Error()})
}

// Defaults returns the built-in pattern list for a category.
func Defaults(cat Category) []string {
	if cat == CategorySafe {
		return defaultSafe()
	}
	return defaultDangerous()
}

// EnsureDefaults writes the default pattern set for a category to path.
// This is the explicit persistence-on-miss initialization step; callers
// treat its failure as a warning, never as fatal.
func EnsureDefaults(path string, cat Category, defaults []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# List of %s command patterns - one regex per line\n", cat)
	b.WriteString("# Lines starting with # are comments\n\n")
	for _, p := range defaults {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func readPatternFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no patterns in %s", path)
	}
	return out, nil
}
