// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists analysis snapshots to a local SQLite
// database so a discovery run can be revisited without re-querying the
// external sources. The engine itself never reads the archive; it is a
// write-behind record keyed by run.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/interactome-engine/pkg/types"
)

const dbFile = "interactome.db"

// Snapshot kinds.
const (
	KindNetwork    = "network"
	KindValidation = "validation"
)

// Record is one archived snapshot. Payload is the snapshot's JSON as
// stored, decoded by the caller into the kind's concrete type.
type Record struct {
	ID        int64           `json:"id" yaml:"id"`
	Kind      string          `json:"kind" yaml:"kind"`
	Label     string          `json:"label" yaml:"label"`
	CreatedAt time.Time       `json:"created_at" yaml:"created_at"`
	Payload   json.RawMessage `json:"payload,omitempty" yaml:"-"`
}

// Store manages the snapshot archive SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the archive database at dir/interactome.db,
// creating the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "archive"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		label TEXT,
		created_at TEXT NOT NULL,
		payload TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save stores one snapshot and returns its archive ID. payload is
// marshaled to JSON as stored.
func (s *Store) Save(ctx context.Context, kind, label string, payload any) (int64, error) {
	if kind != KindNetwork && kind != KindValidation {
		return 0, fmt.Errorf("%w: unknown snapshot kind %q", types.ErrInvalidArgument, kind)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("encoding snapshot: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (kind, label, created_at, payload) VALUES (?, ?, ?, ?)`,
		kind, label, time.Now().UTC().Format(time.RFC3339Nano), string(data))
	if err != nil {
		return 0, fmt.Errorf("saving snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading snapshot id: %w", err)
	}
	return id, nil
}

// List returns all archived snapshots without payloads, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, label, created_at FROM snapshots ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec     Record
			created string
		)
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Label, &created); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parsing snapshot timestamp: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Show returns one snapshot with its payload.
func (s *Store) Show(ctx context.Context, id int64) (Record, error) {
	var (
		rec     Record
		created string
		payload string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, kind, label, created_at, payload FROM snapshots WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Kind, &rec.Label, &created, &payload)
	if err == sql.ErrNoRows {
		return Record{}, fmt.Errorf("%w: no snapshot with id %d", types.ErrInvalidArgument, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("loading snapshot %d: %w", id, err)
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Record{}, fmt.Errorf("parsing snapshot timestamp: %w", err)
	}
	rec.Payload = json.RawMessage(payload)
	return rec, nil
}
