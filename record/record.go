// Package record journals play sessions in a SQLite database.
package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

var ErrUnknownSession = errors.New("record: unknown session")

// Stats are the counters the shell keeps while a game runs.
type Stats struct {
	Ticks       int64
	Frames      int64
	MouseEvents int64
}

type Session struct {
	ID        string
	Game      string
	Title     string
	StartedAt time.Time
	EndedAt   time.Time // zero while the session is open
	EndReason string
	Stats
}

func (s Session) Open() bool {
	return s.EndedAt.IsZero()
}

func (s Session) Duration() time.Duration {
	if s.Open() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the database at path, creating parent directories.
// A leading ~ is expanded to the home directory.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("record: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("record: cannot create directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("record: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("record: cannot connect to database: %w", err)
	}
	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("record: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			game TEXT NOT NULL,
			title TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER,
			end_reason TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			mouse_events INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Begin opens a session and returns its id.
func (s *Store) Begin(ctx context.Context, game, title string) (string, error) {
	id := ulid.Make().String()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions(id, game, title, started_at) VALUES(?, ?, ?, ?)",
		id, game, title, s.now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("record: begin session: %w", err)
	}
	return id, nil
}

// Finish closes session id with the final counters.
func (s *Store) Finish(ctx context.Context, id string, stats Stats, reason string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE sessions
		SET ended_at = ?, end_reason = ?, ticks = ?, frames = ?, mouse_events = ?
		WHERE id = ?`,
		s.now().UnixMilli(), reason, stats.Ticks, stats.Frames, stats.MouseEvents, id)
	if err != nil {
		return fmt.Errorf("record: finish session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record: finish session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return nil
}

// Recent returns up to limit sessions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, game, title, started_at, ended_at, end_reason, ticks, frames, mouse_events
		FROM sessions
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("record: query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var (
			sess    Session
			started int64
			ended   sql.NullInt64
		)
		if err := rows.Scan(&sess.ID, &sess.Game, &sess.Title, &started, &ended,
			&sess.EndReason, &sess.Ticks, &sess.Frames, &sess.MouseEvents); err != nil {
			return nil, fmt.Errorf("record: scan session: %w", err)
		}
		sess.StartedAt = time.UnixMilli(started)
		if ended.Valid {
			sess.EndedAt = time.UnixMilli(ended.Int64)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}
