// Package state provides SQLite-based persistence for repair sessions.
// The store keeps the full attempt trace of every session so unresolved
// documents can be inspected after the fact.
package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ShayCichocki/concord/internal/conformance"
	"github.com/ShayCichocki/concord/internal/repair"
)

// Store wraps an SQLite database with repair-session operations.
type Store struct {
	conn *sql.DB
	path string
	mu   sync.Mutex
}

// DefaultPath returns the path to the default session database.
func DefaultPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "concord", "sessions.db")
}

// Open opens an SQLite database at the given path and applies the schema.
// It creates the parent directories if they don't exist.
// WAL mode is enabled for concurrent reads.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	store := &Store{conn: conn, path: path}
	if err := store.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

// Path returns the path to the database file.
func (s *Store) Path() string {
	return s.path
}

const schema = `
CREATE TABLE IF NOT EXISTS repair_sessions (
	id TEXT PRIMARY KEY,
	user_text TEXT NOT NULL,
	max_attempts INTEGER NOT NULL,
	state TEXT NOT NULL DEFAULT 'validating',
	attempts_used INTEGER NOT NULL DEFAULT 0,
	started_at DATETIME NOT NULL,
	finished_at DATETIME
);

CREATE TABLE IF NOT EXISTS repair_attempts (
	session_id TEXT NOT NULL REFERENCES repair_sessions(id),
	idx INTEGER NOT NULL,
	document TEXT NOT NULL,
	valid INTEGER NOT NULL,
	violations TEXT NOT NULL,
	terminal INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	PRIMARY KEY (session_id, idx)
);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY
);
`

const schemaVersion = 1

// migrate applies the schema. Idempotent.
func (s *Store) migrate() error {
	if _, err := s.conn.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := s.conn.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

// SessionStarted records a new repair session.
func (s *Store) SessionStarted(id, userText string, maxAttempts int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.conn.Exec(`
		INSERT INTO repair_sessions (id, user_text, max_attempts, started_at)
		VALUES (?, ?, ?, ?)
	`, id, userText, maxAttempts, formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// AttemptRecorded persists one attempt of a session, including its
// violation list as JSON.
func (s *Store) AttemptRecorded(sessionID string, attempt repair.Attempt) error {
	var violations []conformance.Violation
	if attempt.Report != nil {
		violations = attempt.Report.Violations
	}
	payload, err := json.Marshal(violations)
	if err != nil {
		return fmt.Errorf("marshal violations: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.conn.Exec(`
		INSERT INTO repair_attempts (session_id, idx, document, valid, violations, terminal, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sessionID, attempt.Index, attempt.Document,
		boolInt(len(violations) == 0), string(payload), boolInt(attempt.Terminal),
		formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("insert attempt %d: %w", attempt.Index, err)
	}
	return nil
}

// SessionFinished records a session's terminal state.
func (s *Store) SessionFinished(id string, state repair.State, attemptsUsed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.conn.Exec(`
		UPDATE repair_sessions
		SET state = ?, attempts_used = ?, finished_at = ?
		WHERE id = ?
	`, string(state), attemptsUsed, formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	return nil
}

// SessionRecord is one persisted repair session.
type SessionRecord struct {
	ID           string
	UserText     string
	MaxAttempts  int
	State        repair.State
	AttemptsUsed int
	StartedAt    time.Time
}

// Sessions returns all persisted sessions, most recent first.
func (s *Store) Sessions() ([]SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.conn.Query(`
		SELECT id, user_text, max_attempts, state, attempts_used, started_at
		FROM repair_sessions
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var state, startedAt string
		if err := rows.Scan(&rec.ID, &rec.UserText, &rec.MaxAttempts, &state, &rec.AttemptsUsed, &startedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.State = repair.State(state)
		rec.StartedAt = parseTime(startedAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// AttemptRecord is one persisted attempt.
type AttemptRecord struct {
	Index      int
	Document   string
	Valid      bool
	Violations []conformance.Violation
	Terminal   bool
}

// Attempts returns a session's attempt trace in order.
func (s *Store) Attempts(sessionID string) ([]AttemptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.conn.Query(`
		SELECT idx, document, valid, violations, terminal
		FROM repair_attempts
		WHERE session_id = ?
		ORDER BY idx
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var valid, terminal int
		var payload string
		if err := rows.Scan(&rec.Index, &rec.Document, &valid, &payload, &terminal); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.Valid = valid != 0
		rec.Terminal = terminal != 0
		if payload != "" && payload != "null" {
			if err := json.Unmarshal([]byte(payload), &rec.Violations); err != nil {
				return nil, fmt.Errorf("unmarshal violations: %w", err)
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// timeLayout is RFC 3339 with a fixed-width fractional second so stored
// timestamps sort chronologically under SQLite's lexical string ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Compile-time verification that Store implements repair.SessionStore.
var _ repair.SessionStore = (*Store)(nil)
