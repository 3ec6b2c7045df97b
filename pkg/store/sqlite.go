package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/goliatone/go-checkoutfields/pkg/profile"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
)

// SQLite persists settings options, customer/order metadata and customer
// identities in a single database file.
type SQLite struct {
	db   *sql.DB
	path string
}

var (
	_ settings.Store    = (*SQLite)(nil)
	_ settings.Writer   = (*SQLite)(nil)
	_ profile.Store     = (*SQLite)(nil)
	_ profile.Directory = (*SQLite)(nil)
)

// Open opens (creating when needed) the database at path. Use ":memory:" for
// a throwaway database.
func Open(ctx context.Context, path string) (*SQLite, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("store: database path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// a single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db, path: path}
	if err := s.initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) initialize(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS options (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS meta (
		scope TEXT NOT NULL,
		owner_id TEXT NOT NULL,
		meta_key TEXT NOT NULL,
		meta_value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (scope, owner_id, meta_key)
	);
	CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT ''
	);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: create schema: %w", err)
	}
	return nil
}

// Close releases the database.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *SQLite) Path() string {
	return s.path
}

// Option implements settings.Store.
func (s *SQLite) Option(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM options WHERE name = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: read option %s: %w", key, err)
	}
	return value, true, nil
}

// SetOption implements settings.Writer.
func (s *SQLite) SetOption(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return settings.ErrEmptyKey
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO options (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("store: write option %s: %w", key, err)
	}
	return nil
}

// Meta implements profile.MetaReader.
func (s *SQLite) Meta(ctx context.Context, ref profile.Ref, key string) (string, error) {
	if err := checkRef(ref, key); err != nil {
		return "", err
	}
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT meta_value FROM meta WHERE scope = ? AND owner_id = ? AND meta_key = ?`,
		string(ref.Scope), ref.ID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store: read meta %s %s: %w", ref, key, err)
	}
	return value, nil
}

// SetMeta implements profile.MetaWriter.
func (s *SQLite) SetMeta(ctx context.Context, ref profile.Ref, key, value string) error {
	if err := checkRef(ref, key); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO meta (scope, owner_id, meta_key, meta_value) VALUES (?, ?, ?, ?)
		ON CONFLICT(scope, owner_id, meta_key) DO UPDATE SET meta_value = excluded.meta_value, updated_at = CURRENT_TIMESTAMP`,
		string(ref.Scope), ref.ID, key, value)
	if err != nil {
		return fmt.Errorf("store: write meta %s %s: %w", ref, key, err)
	}
	return nil
}

// AllMeta returns every key/value stored for ref.
func (s *SQLite) AllMeta(ctx context.Context, ref profile.Ref) (map[string]string, error) {
	if !ref.Valid() {
		return nil, fmt.Errorf("%w: %s", profile.ErrInvalidRef, ref)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT meta_key, meta_value FROM meta WHERE scope = ? AND owner_id = ? ORDER BY meta_key`,
		string(ref.Scope), ref.ID)
	if err != nil {
		return nil, fmt.Errorf("store: list meta %s: %w", ref, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("store: scan meta %s: %w", ref, err)
		}
		out[key] = value
	}
	return out, rows.Err()
}

// PutIdentity inserts or replaces a customer.
func (s *SQLite) PutIdentity(ctx context.Context, identity profile.Identity) error {
	id := strings.TrimSpace(identity.ID)
	if id == "" {
		return fmt.Errorf("%w: identity id is required", profile.ErrInvalidRef)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO customers (id, first_name, last_name, email) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET first_name = excluded.first_name, last_name = excluded.last_name, email = excluded.email`,
		id, identity.FirstName, identity.LastName, identity.Email)
	if err != nil {
		return fmt.Errorf("store: write customer %s: %w", id, err)
	}
	return nil
}

// Identity implements profile.Directory.
func (s *SQLite) Identity(ctx context.Context, id string) (profile.Identity, error) {
	id = strings.TrimSpace(id)
	identity := profile.Identity{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT first_name, last_name, email FROM customers WHERE id = ?`, id).
		Scan(&identity.FirstName, &identity.LastName, &identity.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.Identity{}, fmt.Errorf("%w: %q", profile.ErrNotFound, id)
	}
	if err != nil {
		return profile.Identity{}, fmt.Errorf("store: read customer %s: %w", id, err)
	}
	return identity, nil
}

func checkRef(ref profile.Ref, key string) error {
	if !ref.Valid() {
		return fmt.Errorf("%w: %s", profile.ErrInvalidRef, ref)
	}
	if strings.TrimSpace(key) == "" {
		return profile.ErrEmptyKey
	}
	return nil
}
