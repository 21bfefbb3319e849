// Package store persists load and validation runs to SQLite, giving
// repeated analyses of the same documents a queryable history.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pflow-xyz/go-pnml/petri"
	"github.com/pflow-xyz/go-pnml/validation"
)

// Store handles SQLite database operations for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded load+validate pass over a PNML document.
type Run struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	CID         string    `json:"cid"`
	Places      int       `json:"places"`
	Transitions int       `json:"transitions"`
	Arcs        int       `json:"arcs"`
	Valid       bool      `json:"valid"`
	Defects     []string  `json:"defects,omitempty"`
	Marking     []int     `json:"marking"`
	CreatedAt   time.Time `json:"created_at"`
}

// Open creates a Store backed by the database at path. Use ":memory:"
// for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		cid TEXT NOT NULL,
		places INTEGER NOT NULL,
		transitions INTEGER NOT NULL,
		arcs INTEGER NOT NULL,
		valid INTEGER NOT NULL,
		defects TEXT,
		marking TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_path ON runs(path);
	CREATE INDEX IF NOT EXISTS idx_runs_cid ON runs(cid);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun saves one load+validate pass and returns the run id.
func (s *Store) RecordRun(ctx context.Context, path string, net *petri.Net, res *validation.Result) (string, error) {
	id := uuid.New().String()

	defects, err := json.Marshal(res.Defects())
	if err != nil {
		return "", fmt.Errorf("marshal defects: %w", err)
	}
	marking, err := json.Marshal(net.InitialMarking())
	if err != nil {
		return "", fmt.Errorf("marshal marking: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, path, cid, places, transitions, arcs, valid, defects, marking, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, path, net.CID(),
		len(net.Places), len(net.Transitions), len(net.Arcs),
		res.Valid, string(defects), string(marking),
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// Runs returns the most recent runs, newest first. limit <= 0 means
// no limit.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, path, cid, places, transitions, arcs, valid, defects, marking, created_at
		FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			defects sql.NullString
			marking sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.Path, &r.CID, &r.Places, &r.Transitions, &r.Arcs,
			&r.Valid, &defects, &marking, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if defects.Valid && defects.String != "" {
			if err := json.Unmarshal([]byte(defects.String), &r.Defects); err != nil {
				return nil, fmt.Errorf("decode defects: %w", err)
			}
		}
		if marking.Valid && marking.String != "" {
			if err := json.Unmarshal([]byte(marking.String), &r.Marking); err != nil {
				return nil, fmt.Errorf("decode marking: %w", err)
			}
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunsForPath returns recorded runs for one document path, newest first.
func (s *Store) RunsForPath(ctx context.Context, path string) ([]Run, error) {
	all, err := s.Runs(ctx, 0)
	if err != nil {
		return nil, err
	}
	var runs []Run
	for _, r := range all {
		if r.Path == path {
			runs = append(runs, r)
		}
	}
	return runs, nil
}
