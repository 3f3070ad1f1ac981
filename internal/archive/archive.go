// SPDX-License-Identifier: MIT

// Package archive persists shortest-path runs in SQLite.
//
// A run stores its source, strategy and one row per vertex in graph insertion
// order. Unreachable distances and missing predecessors are stored as NULL and
// come back as +Inf and absent map keys.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrRunNotFound indicates that no run has the requested ID.
var ErrRunNotFound = errors.New("archive: run not found")

// MemoryDSN opens a private in-memory archive.
const MemoryDSN = ":memory:"

const filePragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// Store wraps a SQLite database connection.
type Store struct {
	sql *sql.DB
}

// Run describes one archived computation.
type Run struct {
	ID        int64
	Source    string
	Strategy  string
	CreatedAt time.Time
	Vertices  int
	Reachable int
}

// Snapshot is a Run together with its per-vertex results.
type Snapshot struct {
	Run
	Order []string           // vertices in graph insertion order
	Dist  map[string]float64 // +Inf when unreachable
	Prev  map[string]string  // no entry for the source or unreachable vertices
}

// Open opens (or creates) the archive at dsn and runs migrations.
// dsn is a file path or MemoryDSN; a path may carry its own query parameters.
func Open(ctx context.Context, dsn string) (*Store, error) {
	source := dsn
	if dsn != MemoryDSN {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		source = dsn + sep + filePragmas
	}
	sqlDB, err := sql.Open("sqlite", source)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	// Every pooled connection to ":memory:" would see its own empty database.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping archive: %w", err)
	}
	s := &Store{sql: sqlDB}
	if err := s.migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	version := 0
	err := s.sql.QueryRowContext(ctx, "SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)
	// A fresh database has no schema_version table yet; version stays 0.
	if err != nil && !errors.Is(err, sql.ErrNoRows) && !strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version < 1 {
		_, err = s.sql.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS runs (
				id         INTEGER PRIMARY KEY AUTOINCREMENT,
				source     TEXT NOT NULL,
				strategy   TEXT NOT NULL,
				created_at TEXT NOT NULL,
				vertices   INTEGER NOT NULL,
				reachable  INTEGER NOT NULL
			);

			CREATE TABLE IF NOT EXISTS distances (
				run_id      INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
				position    INTEGER NOT NULL,
				vertex      TEXT NOT NULL,
				distance    REAL,
				predecessor TEXT,
				PRIMARY KEY (run_id, position)
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return err
		}
	}

	return nil
}

// Record stores one run. order lists every vertex of the graph in insertion
// order; dist and prev are the engine's outputs for source.
func (s *Store) Record(ctx context.Context, source, strategy string, order []string, dist map[string]float64, prev map[string]string) (Run, error) {
	run := Run{
		Source:    source,
		Strategy:  strategy,
		CreatedAt: time.Now().UTC(),
		Vertices:  len(order),
	}
	for _, v := range order {
		if d, ok := dist[v]; ok && !math.IsInf(d, 1) {
			run.Reachable++
		}
	}

	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("archive: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, strategy, created_at, vertices, reachable) VALUES (?, ?, ?, ?, ?)`,
		run.Source, run.Strategy, run.CreatedAt.Format(time.RFC3339Nano), run.Vertices, run.Reachable)
	if err != nil {
		return Run{}, fmt.Errorf("archive: insert run: %w", err)
	}
	if run.ID, err = res.LastInsertId(); err != nil {
		return Run{}, fmt.Errorf("archive: run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO distances (run_id, position, vertex, distance, predecessor) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("archive: prepare: %w", err)
	}
	defer stmt.Close()

	for i, v := range order {
		var d sql.NullFloat64
		if val, ok := dist[v]; ok && !math.IsInf(val, 1) {
			d = sql.NullFloat64{Float64: val, Valid: true}
		}
		var p sql.NullString
		if val, ok := prev[v]; ok {
			p = sql.NullString{String: val, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, run.ID, i, v, d, p); err != nil {
			return Run{}, fmt.Errorf("archive: insert %q: %w", v, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("archive: commit: %w", err)
	}

	return run, nil
}

// Runs lists up to limit runs, newest first. limit ≤ 0 lists all.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.sql.QueryContext(ctx,
		`SELECT id, source, strategy, created_at, vertices, reachable FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: list runs: %w", err)
	}

	return out, nil
}

// Load returns the run with the given ID and its per-vertex results.
func (s *Store) Load(ctx context.Context, id int64) (*Snapshot, error) {
	row := s.sql.QueryRowContext(ctx,
		`SELECT id, source, strategy, created_at, vertices, reachable FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.sql.QueryContext(ctx,
		`SELECT vertex, distance, predecessor FROM distances WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("archive: load run %d: %w", id, err)
	}
	defer rows.Close()

	snap := &Snapshot{
		Run:   run,
		Order: make([]string, 0, run.Vertices),
		Dist:  make(map[string]float64, run.Vertices),
		Prev:  make(map[string]string),
	}
	for rows.Next() {
		var (
			v string
			d sql.NullFloat64
			p sql.NullString
		)
		if err := rows.Scan(&v, &d, &p); err != nil {
			return nil, fmt.Errorf("archive: load run %d: %w", id, err)
		}
		snap.Order = append(snap.Order, v)
		snap.Dist[v] = math.Inf(1)
		if d.Valid {
			snap.Dist[v] = d.Float64
		}
		if p.Valid {
			snap.Prev[v] = p.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: load run %d: %w", id, err)
	}

	return snap, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r       Run
		created string
	)
	if err := sc.Scan(&r.ID, &r.Source, &r.Strategy, &created, &r.Vertices, &r.Reachable); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("archive: scan run: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("archive: run %d created_at %q: %w", r.ID, created, err)
	}
	r.CreatedAt = t

	return r, nil
}
