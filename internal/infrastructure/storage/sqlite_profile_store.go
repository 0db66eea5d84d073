package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"AOSocial/internal/domain"
	"AOSocial/internal/ports"
)

const profilesTable = "profiles"

// SQLiteProfileStore keeps one profile blob per owner in a local SQLite file.
type SQLiteProfileStore struct {
	db *sql.DB
}

var _ ports.ProfileStore = (*SQLiteProfileStore)(nil)

// OpenSQLite creates the parent directory, opens path and migrates the schema.
func OpenSQLite(path string) (*SQLiteProfileStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	store, err := NewSQLiteProfileStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteProfileStore wires an open database and ensures the schema exists.
func NewSQLiteProfileStore(db *sql.DB) (*SQLiteProfileStore, error) {
	s := &SQLiteProfileStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate profiles: %w", err)
	}
	return s, nil
}

// Close releases the database handle.
func (s *SQLiteProfileStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteProfileStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS profiles (
		owner TEXT PRIMARY KEY,
		profile TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`)
	return err
}

// Get returns the stored profile of owner; ok is false when none exists.
func (s *SQLiteProfileStore) Get(ctx context.Context, owner string) (domain.Profile, bool, error) {
	query, args, err := sq.Select("profile").
		From(profilesTable).
		Where(sq.Eq{"owner": owner}).
		ToSql()
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("build select: %w", err)
	}

	var blob string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("query profile: %w", err)
	}

	p, err := decodeProfile(blob)
	if err != nil {
		return domain.Profile{}, false, err
	}
	return p, true, nil
}

// Set upserts the profile blob of owner.
func (s *SQLiteProfileStore) Set(ctx context.Context, owner string, profile domain.Profile) error {
	blob, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert(profilesTable).
		Columns("owner", "profile", "updated_at").
		Values(owner, blob, time.Now().UTC()).
		Suffix("ON CONFLICT(owner) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
