// Package sqlite is the single-file storage option for self-hosted,
// single-family deployments. Timestamps are stored as epoch milliseconds, the
// same representation the API uses on the wire.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("not found")

// Open opens or creates the SQLite database at path and bootstraps the
// schema.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS pets (
		id            TEXT PRIMARY KEY,
		owner_user_id TEXT NOT NULL,
		name          TEXT NOT NULL,
		species       TEXT NOT NULL DEFAULT 'cat',
		sex           TEXT NOT NULL DEFAULT 'unknown',
		birth_date    TEXT,
		timezone      TEXT NOT NULL DEFAULT 'UTC',
		notes         TEXT NOT NULL DEFAULT '',
		created_at    INTEGER NOT NULL,
		updated_at    INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_pets_owner ON pets(owner_user_id);

	CREATE TABLE IF NOT EXISTS caregivers (
		id         TEXT PRIMARY KEY,
		pet_id     TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		user_id    TEXT NOT NULL DEFAULT '',
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		UNIQUE(pet_id, name)
	);
	CREATE INDEX IF NOT EXISTS idx_caregivers_pet ON caregivers(pet_id);

	CREATE TABLE IF NOT EXISTS care_events (
		id           TEXT PRIMARY KEY,
		pet_id       TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		occurred_at  INTEGER NOT NULL,
		recorded_at  INTEGER NOT NULL,
		author       TEXT NOT NULL,
		food         INTEGER NOT NULL DEFAULT 0,
		water        INTEGER NOT NULL DEFAULT 0,
		litter       INTEGER NOT NULL DEFAULT 0,
		grooming     INTEGER NOT NULL DEFAULT 0,
		medication   INTEGER NOT NULL DEFAULT 0,
		supplements  INTEGER NOT NULL DEFAULT 0,
		deworming    INTEGER NOT NULL DEFAULT 0,
		bath         INTEGER NOT NULL DEFAULT 0,
		stool_type   TEXT NOT NULL DEFAULT '',
		urine_status TEXT NOT NULL DEFAULT '',
		litter_clean INTEGER NOT NULL DEFAULT 0,
		weight       TEXT,
		note         TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_care_events_pet_occurred
		ON care_events(pet_id, occurred_at DESC);
	`
	_, err := db.Exec(schema)
	return err
}
