// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package audit

import (
	"context"
	"fmt"
	"io"
)

// ChangeKind classifies how a page differs between two runs.
type ChangeKind string

const (
	ChangeAdded     ChangeKind = "added"
	ChangeRemoved   ChangeKind = "removed"
	ChangeIndexed   ChangeKind = "indexed"
	ChangeNoIndexed ChangeKind = "noindexed"
	ChangeScore     ChangeKind = "score"
)

// Change is one page-level difference between two runs.
type Change struct {
	Route  string     `json:"route" yaml:"route"`
	Kind   ChangeKind `json:"kind" yaml:"kind"`
	Before *Entry     `json:"before,omitempty" yaml:"before,omitempty"`
	After  *Entry     `json:"after,omitempty" yaml:"after,omitempty"`
}

// Diff compares the verdicts of two runs. Pages whose index decision flipped
// are reported as indexed or noindexed; otherwise a score change is reported.
// Unchanged pages are omitted.
func (s *Store) Diff(ctx context.Context, fromRun, toRun string) ([]Change, error) {
	before, beforeOrder, err := s.runEntries(ctx, fromRun)
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", fromRun, err)
	}
	after, afterOrder, err := s.runEntries(ctx, toRun)
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", toRun, err)
	}

	var changes []Change
	for _, route := range afterOrder {
		a := after[route]
		b, ok := before[route]
		switch {
		case !ok:
			changes = append(changes, Change{Route: route, Kind: ChangeAdded, After: &a})
		case !b.Index && a.Index:
			changes = append(changes, Change{Route: route, Kind: ChangeIndexed, Before: &b, After: &a})
		case b.Index && !a.Index:
			changes = append(changes, Change{Route: route, Kind: ChangeNoIndexed, Before: &b, After: &a})
		case b.Score != a.Score:
			changes = append(changes, Change{Route: route, Kind: ChangeScore, Before: &b, After: &a})
		}
	}
	for _, route := range beforeOrder {
		if _, ok := after[route]; !ok {
			b := before[route]
			changes = append(changes, Change{Route: route, Kind: ChangeRemoved, Before: &b})
		}
	}
	return changes, nil
}

// FormatDiff writes changes as one line each to w.
func FormatDiff(changes []Change, w io.Writer) {
	if len(changes) == 0 {
		fmt.Fprintln(w, "No changes.")
		return
	}
	for _, c := range changes {
		switch c.Kind {
		case ChangeAdded:
			fmt.Fprintf(w, "+ %-48s  score %d, index %t\n", c.Route, c.After.Score, c.After.Index)
		case ChangeRemoved:
			fmt.Fprintf(w, "- %-48s  score %d, index %t\n", c.Route, c.Before.Score, c.Before.Index)
		default:
			fmt.Fprintf(w, "~ %-48s  %s: score %d -> %d, index %t -> %t\n",
				c.Route, c.Kind, c.Before.Score, c.After.Score, c.Before.Index, c.After.Index)
		}
	}
	fmt.Fprintf(w, "\n%d changes\n", len(changes))
}
