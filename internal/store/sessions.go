package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Sessions persists session tokens per profile in a small sqlite database
// under the config dir, so a login survives process restarts. Tokens never
// travel anywhere except the Authorization header built from them.
type Sessions struct {
	db *sql.DB
}

func sessionsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "sessions.db"), nil
}

func OpenSessions(ctx context.Context) (*Sessions, error) {
	path, err := sessionsPath()
	if err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL + busy_timeout: CLI and TUI may touch the file at the same time.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS sessions (
		profile TEXT PRIMARY KEY,
		token TEXT NOT NULL,
		saved_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Sessions{db: db}, nil
}

func (s *Sessions) Close() error { return s.db.Close() }

func (s *Sessions) Save(ctx context.Context, profile, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions(profile, token, saved_at_unixms) VALUES(?, ?, ?)
		 ON CONFLICT(profile) DO UPDATE SET token=excluded.token, saved_at_unixms=excluded.saved_at_unixms;`,
		profile, token, time.Now().UnixMilli())
	return err
}

// Token returns the stored token for a profile; ok is false when no session
// has been saved for it.
func (s *Sessions) Token(ctx context.Context, profile string) (string, bool, error) {
	var tok string
	err := s.db.QueryRowContext(ctx, `SELECT token FROM sessions WHERE profile = ?;`, profile).Scan(&tok)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return tok, true, nil
}

func (s *Sessions) Delete(ctx context.Context, profile string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE profile = ?;`, profile)
	return err
}
