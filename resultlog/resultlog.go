// SPDX-License-Identifier: MIT

// Package resultlog keeps an append-only log of timed MST runs in SQLite and
// renders it in the classic "file_name num_processes Time" text layout.
package resultlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Variants of a recorded run.
const (
	VariantSerial      = "serial"
	VariantDistributed = "distributed"
)

// ErrInvalidRecord indicates a record missing its file name or variant.
var ErrInvalidRecord = errors.New("resultlog: record needs a file name and a variant")

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id           TEXT PRIMARY KEY,
	variant      TEXT NOT NULL,
	file_name    TEXT NOT NULL,
	workers      INTEGER NOT NULL,
	strategy     TEXT NOT NULL,
	elapsed_sec  REAL NOT NULL,
	total_weight INTEGER NOT NULL,
	edges        INTEGER NOT NULL,
	spanning     INTEGER NOT NULL,
	created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS results_file ON results (file_name, created_at);
`

// Record is one timed run.
type Record struct {
	ID          string
	Variant     string
	FileName    string
	Workers     int
	Strategy    string
	Elapsed     time.Duration
	TotalWeight int64
	Edges       int
	Spanning    bool
	CreatedAt   time.Time
}

// Log is an open results database.
type Log struct {
	conn *sql.DB
}

// Open opens or creates the database at path, creating parent directories.
func Open(path string) (*Log, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("resultlog: %w", err)
		}
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Fail early if connection is bad
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	// Wait up to 5s on lock instead of failing immediately
	conn.Exec("PRAGMA busy_timeout=5000")

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Log{conn: conn}, nil
}

// Close closes the database.
func (l *Log) Close() error {
	return l.conn.Close()
}

// Append stores r. A missing ID or CreatedAt is filled in; the stored record
// is returned.
func (l *Log) Append(ctx context.Context, r Record) (Record, error) {
	if r.FileName == "" || r.Variant == "" {
		return r, ErrInvalidRecord
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := l.conn.ExecContext(ctx, `
		INSERT INTO results (id, variant, file_name, workers, strategy, elapsed_sec, total_weight, edges, spanning, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Variant, r.FileName, r.Workers, r.Strategy, r.Elapsed.Seconds(),
		r.TotalWeight, r.Edges, r.Spanning, r.CreatedAt.UnixNano())
	if err != nil {
		return r, fmt.Errorf("inserting result: %w", err)
	}

	return r, nil
}

// List returns records oldest first. An empty fileName lists everything.
func (l *Log) List(ctx context.Context, fileName string) ([]Record, error) {
	query := `SELECT id, variant, file_name, workers, strategy, elapsed_sec, total_weight, edges, spanning, created_at
		FROM results`
	var args []any
	if fileName != "" {
		query += ` WHERE file_name = ?`
		args = append(args, fileName)
	}
	query += ` ORDER BY created_at, id`

	rows, err := l.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r       Record
			elapsed float64
			created int64
		)
		if err := rows.Scan(&r.ID, &r.Variant, &r.FileName, &r.Workers, &r.Strategy,
			&elapsed, &r.TotalWeight, &r.Edges, &r.Spanning, &created); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Elapsed = time.Duration(elapsed * float64(time.Second))
		r.CreatedAt = time.Unix(0, created)
		out = append(out, r)
	}

	return out, rows.Err()
}

// WriteText renders records as a header line followed by one
// "<file_name> <num_processes> <seconds>" line per record.
func WriteText(w io.Writer, records []Record) error {
	if _, err := fmt.Fprintln(w, "file_name num_processes Time"); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s %d %f\n", r.FileName, r.Workers, r.Elapsed.Seconds()); err != nil {
			return err
		}
	}

	return nil
}
