// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package audit keeps a SQLite history of build runs and their verdicts so
// authors can see how content edits moved pages across the index bar. The
// log is write-only with respect to scoring: nothing here feeds back into a
// verdict.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/sitegate/pkg/types"
)

const defaultMaxResults = 50

// timeFormat is fixed-width so started_at sorts lexically in time order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the audit SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int

	// fts is false when the sqlite3 driver was built without FTS5; text
	// queries then fall back to LIKE.
	fts bool
}

// NewStore opens or creates the audit database at cfg.DBPath and creates the
// schema if it does not exist.
func NewStore(cfg types.AuditConfig) (*Store, error) {
	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating audit directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, dir: dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			site_name TEXT,
			site_path TEXT,
			candidates INTEGER,
			generated INTEGER,
			indexed INTEGER,
			noindex INTEGER,
			skipped INTEGER,
			priority INTEGER,
			average_score REAL
		)`,
		`CREATE TABLE IF NOT EXISTS verdicts (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			route TEXT NOT NULL,
			type TEXT NOT NULL,
			service TEXT,
			area TEXT,
			generate INTEGER NOT NULL,
			indexed INTEGER NOT NULL,
			priority INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_score INTEGER NOT NULL,
			minimum INTEGER NOT NULL,
			reasons TEXT,
			warnings TEXT,
			suggestions TEXT,
			notes TEXT,
			UNIQUE(run_id, route)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_verdicts_run ON verdicts(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_verdicts_type ON verdicts(type)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table over warnings and suggestions, kept in sync by
	// triggers.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='verdicts_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists > 0 {
		s.fts = true
		return nil
	}

	if _, err := s.db.Exec(
		`CREATE VIRTUAL TABLE verdicts_fts USING fts5(notes, content=verdicts, content_rowid=rowid)`,
	); err != nil {
		if strings.Contains(err.Error(), "no such module") {
			return nil
		}
		return fmt.Errorf("creating FTS table: %w", err)
	}
	triggers := []string{
		`CREATE TRIGGER verdicts_ai AFTER INSERT ON verdicts BEGIN
			INSERT INTO verdicts_fts(rowid, notes) VALUES (new.rowid, new.notes);
		END`,
		`CREATE TRIGGER verdicts_ad AFTER DELETE ON verdicts BEGIN
			INSERT INTO verdicts_fts(verdicts_fts, rowid, notes) VALUES('delete', old.rowid, old.notes);
		END`,
	}
	for _, stmt := range triggers {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating FTS infrastructure: %w", err)
		}
	}
	s.fts = true
	return nil
}

// Run is one recorded build.
type Run struct {
	ID        string        `json:"id" yaml:"id"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	SiteName  string        `json:"site_name" yaml:"site_name"`
	SitePath  string        `json:"site_path" yaml:"site_path"`
	Summary   types.Summary `json:"summary" yaml:"summary"`
}

// RunInfo describes the build being recorded.
type RunInfo struct {
	SiteName  string
	SitePath  string
	StartedAt time.Time
}

// Record stores one run and all of its verdicts in a single transaction and
// returns the new run.
func (s *Store) Record(ctx context.Context, info RunInfo, verdicts []types.Verdict, sum types.Summary) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		StartedAt: info.StartedAt.UTC(),
		SiteName:  info.SiteName,
		SitePath:  info.SitePath,
		Summary:   sum,
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, site_name, site_path, candidates, generated,
			indexed, noindex, skipped, priority, average_score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.Format(timeFormat), run.SiteName, run.SitePath,
		sum.Candidates, sum.Generated, sum.Indexed, sum.NoIndex, sum.Skipped,
		sum.Priority, sum.AverageScore,
	)
	if err != nil {
		return Run{}, fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO verdicts (run_id, route, type, service, area, generate, indexed, priority,
			score, max_score, minimum, reasons, warnings, suggestions, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range verdicts {
		rec := v.Record()
		reasonsJSON, _ := json.Marshal(rec.Reasons)
		warningsJSON, _ := json.Marshal(rec.Warnings)
		suggestionsJSON, _ := json.Marshal(rec.Suggestions)
		notes := strings.Join(append(append([]string{}, rec.Warnings...), rec.Suggestions...), "\n")

		_, err := stmt.ExecContext(ctx,
			run.ID, rec.Route, string(rec.Type), rec.Service, rec.Area,
			rec.Generate, rec.Index, rec.Priority,
			rec.Score, rec.MaxScore, rec.Minimum,
			string(reasonsJSON), string(warningsJSON), string(suggestionsJSON), notes,
		)
		if err != nil {
			return Run{}, fmt.Errorf("inserting verdict %s: %w", rec.Route, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("committing run: %w", err)
	}
	return run, nil
}

// ListRuns returns recorded runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, site_name, site_path, candidates, generated,
			indexed, noindex, skipped, priority, average_score
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			startedAt string
			name      sql.NullString
			path      sql.NullString
		)
		if err := rows.Scan(&r.ID, &startedAt, &name, &path,
			&r.Summary.Candidates, &r.Summary.Generated, &r.Summary.Indexed,
			&r.Summary.NoIndex, &r.Summary.Skipped, &r.Summary.Priority,
			&r.Summary.AverageScore,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(timeFormat, startedAt)
		r.SiteName = name.String
		r.SitePath = path.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ResolveRun turns a run reference into a run ID. "latest" and "previous"
// name the newest and second-newest runs; anything else is matched as an ID
// prefix.
func (s *Store) ResolveRun(ctx context.Context, ref string) (string, error) {
	switch ref {
	case "latest", "previous":
		offset := 0
		if ref == "previous" {
			offset = 1
		}
		var id string
		err := s.db.QueryRowContext(ctx,
			`SELECT id FROM runs ORDER BY started_at DESC LIMIT 1 OFFSET ?`, offset,
		).Scan(&id)
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("no %s run recorded", ref)
		}
		if err != nil {
			return "", fmt.Errorf("resolving %s run: %w", ref, err)
		}
		return id, nil
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs WHERE id LIKE ? LIMIT 2`, ref+"%")
	if err != nil {
		return "", fmt.Errorf("resolving run %s: %w", ref, err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scanning run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("run %s not found", ref)
	case 1:
		return ids[0], nil
	}
	return "", fmt.Errorf("run reference %s is ambiguous", ref)
}
