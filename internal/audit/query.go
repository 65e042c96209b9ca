// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/pdiddy/sitegate/pkg/types"
)

// QueryOptions holds filters for verdict queries.
type QueryOptions struct {
	// RunID restricts results to one run. Empty searches every run.
	RunID string

	// Route is a glob over routes, e.g. "/locations/*/roof-repair".
	Route string

	// Type filters by page type.
	Type types.PageType

	// NoIndexOnly keeps only pages that were not indexed.
	NoIndexOnly bool

	// Text is a full-text search over warnings and suggestions.
	Text string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Entry is one stored verdict.
type Entry struct {
	RunID       string             `json:"run_id" yaml:"run_id"`
	Route       string             `json:"route" yaml:"route"`
	Type        types.PageType     `json:"type" yaml:"type"`
	Service     string             `json:"service,omitempty" yaml:"service,omitempty"`
	Area        string             `json:"area,omitempty" yaml:"area,omitempty"`
	Generate    bool               `json:"generate" yaml:"generate"`
	Index       bool               `json:"index" yaml:"index"`
	Priority    bool               `json:"priority" yaml:"priority"`
	Score       int                `json:"score" yaml:"score"`
	MaxScore    int                `json:"max_score" yaml:"max_score"`
	Minimum     int                `json:"minimum" yaml:"minimum"`
	Reasons     []types.ReasonCode `json:"reasons,omitempty" yaml:"reasons,omitempty"`
	Warnings    []string           `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Query returns stored verdicts matching opts. Full-text queries are ranked
// by relevance; others are ordered by run time and route.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var matcher glob.Glob
	if opts.Route != "" {
		g, err := glob.Compile(opts.Route, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid route pattern %q: %w", opts.Route, err)
		}
		matcher = g
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Text != "" && s.fts
	)
	const cols = `v.run_id, v.route, v.type, v.service, v.area, v.generate, v.indexed,
		v.priority, v.score, v.max_score, v.minimum, v.reasons, v.warnings, v.suggestions`

	if useFTS {
		qb.WriteString(`SELECT ` + cols + `
			FROM verdicts_fts
			JOIN verdicts v ON v.rowid = verdicts_fts.rowid
			JOIN runs r ON r.id = v.run_id
			WHERE verdicts_fts MATCH ?`)
		args = append(args, opts.Text)
	} else {
		qb.WriteString(`SELECT ` + cols + `
			FROM verdicts v
			JOIN runs r ON r.id = v.run_id
			WHERE 1=1`)
		if opts.Text != "" {
			qb.WriteString(` AND v.notes LIKE ?`)
			args = append(args, "%"+opts.Text+"%")
		}
	}

	if opts.RunID != "" {
		qb.WriteString(` AND v.run_id = ?`)
		args = append(args, opts.RunID)
	}
	if opts.Type != "" {
		qb.WriteString(` AND v.type = ?`)
		args = append(args, string(opts.Type))
	}
	if opts.NoIndexOnly {
		qb.WriteString(` AND v.indexed = 0`)
	}

	if useFTS {
		qb.WriteString(` ORDER BY verdicts_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY r.started_at DESC, v.rowid`)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var results []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		if matcher != nil && !matcher.Match(e.Route) {
			continue
		}
		results = append(results, e)
		if len(results) == maxResults {
			break
		}
	}
	return results, rows.Err()
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e           Entry
		typ         string
		service     sql.NullString
		area        sql.NullString
		reasons     sql.NullString
		warnings    sql.NullString
		suggestions sql.NullString
	)
	if err := rows.Scan(
		&e.RunID, &e.Route, &typ, &service, &area,
		&e.Generate, &e.Index, &e.Priority,
		&e.Score, &e.MaxScore, &e.Minimum,
		&reasons, &warnings, &suggestions,
	); err != nil {
		return Entry{}, fmt.Errorf("scanning verdict: %w", err)
	}
	e.Type = types.PageType(typ)
	e.Service = service.String
	e.Area = area.String
	if reasons.Valid {
		json.Unmarshal([]byte(reasons.String), &e.Reasons)
	}
	if warnings.Valid {
		json.Unmarshal([]byte(warnings.String), &e.Warnings)
	}
	if suggestions.Valid {
		json.Unmarshal([]byte(suggestions.String), &e.Suggestions)
	}
	return e, nil
}

// runEntries returns every verdict of one run keyed by route.
func (s *Store) runEntries(ctx context.Context, runID string) (map[string]Entry, []string, error) {
	entries, err := s.Query(ctx, QueryOptions{RunID: runID, MaxResults: exportLimit})
	if err != nil {
		return nil, nil, err
	}
	byRoute := make(map[string]Entry, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		byRoute[e.Route] = e
		order = append(order, e.Route)
	}
	return byRoute, order, nil
}
