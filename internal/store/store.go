// Package store is the local SQLite persistence layer: the stored credential,
// the in-progress draft, the completed-session log and the LLM call log. It
// is the client-side stand-in for what a browser would keep in localStorage,
// with real durability and queryability.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/prepdeck/prepdeck/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open connects to the SQLite database at dsn, tunes it, and brings the
// schema up to date.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := tune(db); err != nil {
		db.Close()
		return nil, err
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Repository accessors. Each is a thin view over the shared ent client, so
// holding several at once is fine.

func (s *Store) Credentials() CredentialRepo { return &credentialRepo{client: s.client} }
func (s *Store) Drafts() DraftRepo           { return &draftRepo{client: s.client} }
func (s *Store) Sessions() SessionRepo       { return &sessionRepo{client: s.client} }
func (s *Store) Settings() SettingRepo       { return &settingRepo{client: s.client} }
func (s *Store) LLMLog() LLMLogRepo          { return &llmLogRepo{client: s.client} }

// Local returns the finalizer-facing slice of this store.
func (s *Store) Local() *LocalState {
	return &LocalState{
		drafts:   s.Drafts(),
		sessions: s.Sessions(),
		settings: s.Settings(),
	}
}

// tune sets the pragmas a single-user desktop database wants: WAL so the
// TUI's reads don't block the finalizer's writes, and a busy timeout
// instead of immediate SQLITE_BUSY.
func tune(db *sql.DB) error {
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// DefaultDBPath picks the database location: PREPDECK_DB when set,
// otherwise the XDG data dir ($XDG_DATA_HOME or ~/.local/share) under
// prepdeck/. The parent directory is created as a side effect.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PREPDECK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	root := os.Getenv("XDG_DATA_HOME")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		root = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(root, "prepdeck", "prepdeck.db")
	return p, EnsureDir(p)
}

// EnsureDir creates path's parent directory when missing.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
