package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/termai-cli/termai/internal/domain"
	"github.com/termai-cli/termai/internal/pkg/filesystem"
	"github.com/termai-cli/termai/internal/ports"
)

// SQLiteStore persists audit records in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.termai/history/history.db
// database, falling back to the jsonl store when SQLite is unavailable.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(filesystem.DataDir(), "history", "history.db")
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		prompt TEXT,
		command TEXT,
		model TEXT,
		executed INTEGER,
		success INTEGER,
		exit_code INTEGER,
		safe INTEGER,
		reason TEXT,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.RunRecord) error {
	if s.db == nil {
		return NewFileStore().Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO runs
		(timestamp, prompt, command, model, executed, success, exit_code, safe, reason, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Prompt,
		record.Command,
		record.Model,
		boolToInt(record.Executed),
		boolToInt(record.Success),
		record.ExitCode,
		boolToInt(record.Safe),
		record.Reason,
		record.DurationMS,
	)
	return err
}

// Records returns audit entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.RunRecord, error) {
	if s.db == nil {
		return NewFileStore().Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, prompt, command, model, executed, success, exit_code, safe, reason, duration_ms FROM runs")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE prompt LIKE ? OR command LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var ts string
		var executed, success, safe int
		if err := rows.Scan(&ts, &rec.Prompt, &rec.Command, &rec.Model, &executed, &success, &rec.ExitCode, &safe, &rec.Reason, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Executed = executed == 1
		rec.Success = success == 1
		rec.Safe = safe == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all audit entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return NewFileStore().Clear()
	}
	_, err := s.db.Exec("DELETE FROM runs")
	return err
}

// ExportJSON writes the runs table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	return writeJSONL(dest, records)
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.AuditStore = (*SQLiteStore)(nil)
