// Package dataset supplies the pad's position grid from sqlite and records
// the active selection back into it.
package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"gridpad/pkg/nav"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
	id     TEXT PRIMARY KEY,
	h      INTEGER NOT NULL,
	v      INTEGER NOT NULL,
	rot    INTEGER NOT NULL,
	active INTEGER NOT NULL DEFAULT 0,
	UNIQUE (h, v, rot)
);
`

// Store wraps the sqlite database holding the position grid.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating the schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := ensureVersion(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func ensureVersion(db *sql.DB) error {
	var v int
	err := db.QueryRow(`SELECT version FROM schema_meta`).Scan(&v)
	switch {
	case err == sql.ErrNoRows:
		_, err = db.Exec(`INSERT INTO schema_meta (version) VALUES (?)`, schemaVersion)
		return err
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case v != schemaVersion:
		return fmt.Errorf("unsupported schema version %d (want %d)", v, schemaVersion)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Positions enumerates every valid combination in the grid, in a fixed
// order, for a wholesale table rebuild. An empty or missing grid simply
// yields no records.
func (s *Store) Positions(ctx context.Context) ([]nav.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, h, v, rot FROM positions ORDER BY h, v, rot`)
	if err != nil {
		return nil, fmt.Errorf("enumerate positions: %w", err)
	}
	defer rows.Close()

	var records []nav.Record
	for rows.Next() {
		var r nav.Record
		if err := rows.Scan(&r.ID, &r.H, &r.V, &r.Rot); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SetActive marks the record with the given identifier as the current
// selection, clearing any previous one. At most one row is active.
func (s *Store) SetActive(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE positions SET active = CASE WHEN id = ? THEN 1 ELSE 0 END`, id)
	if err != nil {
		return fmt.Errorf("set active selection: %w", err)
	}
	return nil
}

// ActiveID returns the identifier of the current selection, or "" when
// nothing has been selected yet.
func (s *Store) ActiveID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM positions WHERE active = 1 LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read active selection: %w", err)
	}
	return id, nil
}
