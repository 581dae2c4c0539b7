package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/abhisek/tutorstate/internal/resolve"
)

// SQLiteStore implements Archive using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS resolutions (
		id          TEXT PRIMARY KEY,
		caller_id   TEXT NOT NULL,
		resolved_at TEXT NOT NULL,
		state       TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_resolutions_caller ON resolutions(caller_id, id DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Save stores a resolved state as an immutable row.
func (s *SQLiteStore) Save(ctx context.Context, state *resolve.SessionState) (string, error) {
	body, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("marshal state: %w", err)
	}

	id := s.newID()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO resolutions (id, caller_id, resolved_at, state) VALUES (?, ?, ?, ?)`,
		id, state.CallerID, state.ResolvedAt.UTC().Format(time.RFC3339Nano), string(body))
	if err != nil {
		return "", fmt.Errorf("insert resolution: %w", err)
	}
	return id, nil
}

// Latest returns the most recent state for a caller, or nil if none
// exist. ULIDs sort chronologically, so the row ID is the recency order.
func (s *SQLiteStore) Latest(ctx context.Context, callerID string) (*resolve.SessionState, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM resolutions WHERE caller_id = ? ORDER BY id DESC LIMIT 1`,
		callerID).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest resolution: %w", err)
	}

	var state resolve.SessionState
	if err := json.Unmarshal([]byte(body), &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &state, nil
}

// List returns archive entries for a caller, newest first.
func (s *SQLiteStore) List(ctx context.Context, callerID string, limit int) ([]Entry, error) {
	q := `SELECT id, caller_id, resolved_at FROM resolutions WHERE caller_id = ? ORDER BY id DESC`
	args := []any{callerID}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query resolutions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var resolvedAt string
		if err := rows.Scan(&e.ID, &e.CallerID, &resolvedAt); err != nil {
			return nil, fmt.Errorf("scan resolution: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, resolvedAt)
		if err != nil {
			return nil, fmt.Errorf("parse resolved_at: %w", err)
		}
		e.ResolvedAt = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes all but the N most recent records for a caller.
func (s *SQLiteStore) Prune(ctx context.Context, callerID string, keep int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM resolutions WHERE caller_id = ? AND id NOT IN (
			SELECT id FROM resolutions WHERE caller_id = ? ORDER BY id DESC LIMIT ?
		)`, callerID, callerID, keep)
	if err != nil {
		return fmt.Errorf("prune resolutions: %w", err)
	}
	return nil
}
