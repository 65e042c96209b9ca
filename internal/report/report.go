// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders verdicts for people: a verdict table, per-page
// score breakdowns, run summaries, and the JSON record form.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/sitegate/pkg/types"
)

// FormatTable writes one row per verdict to w.
func FormatTable(verdicts []types.Verdict, w io.Writer) {
	if len(verdicts) == 0 {
		fmt.Fprintln(w, "No candidate pages.")
		return
	}

	fmt.Fprintf(w, "%-48s  %-8s  %-7s  %-3s  %-5s  %-3s  %s\n",
		"Route", "Type", "Score", "Gen", "Index", "Pri", "Reasons")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, v := range verdicts {
		fmt.Fprintf(w, "%-48s  %-8s  %-7s  %-3s  %-5s  %-3s  %s\n",
			truncate(v.Route(), 48),
			v.Candidate.Type,
			fmt.Sprintf("%d/%d", v.Score.Total, v.Score.MaxTotal),
			yesNo(v.Generate),
			yesNo(v.Index),
			yesNo(v.Priority),
			formatReasons(v.Reasons),
		)
	}

	fmt.Fprintf(w, "\n%d pages\n", len(verdicts))
}

// FormatBreakdown writes the line items, warnings, and suggestions of one
// verdict to w.
func FormatBreakdown(v types.Verdict, w io.Writer) {
	fmt.Fprintf(w, "%s (%s)\n", v.Route(), v.Candidate.Type)
	fmt.Fprintf(w, "score %d/%d, minimum %d, generate %s, index %s, priority %s\n",
		v.Score.Total, v.Score.MaxTotal, v.Score.Minimum,
		yesNo(v.Generate), yesNo(v.Index), yesNo(v.Priority))

	var category types.Category
	for _, item := range v.Score.Breakdown {
		if item.Category != category {
			category = item.Category
			pts, max := v.Score.CategoryTotal(category)
			fmt.Fprintf(w, "  %s %d/%d\n", category, pts, max)
		}
		mark := " "
		if item.Present {
			mark = "x"
		}
		fmt.Fprintf(w, "    [%s] %-52s %d/%d\n", mark, item.Description, item.Points, item.MaxPoints)
	}

	for _, warn := range v.Score.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warn)
	}
	for _, s := range v.Score.Suggestions {
		fmt.Fprintf(w, "  suggest: %s\n", s)
	}
	fmt.Fprintln(w)
}

// FormatSummary writes run totals and per-type counts to w.
func FormatSummary(sum types.Summary, w io.Writer) {
	fmt.Fprintf(w, "candidates: %d, generated: %d, indexed: %d, noindex: %d, skipped: %d, priority: %d\n",
		sum.Candidates, sum.Generated, sum.Indexed, sum.NoIndex, sum.Skipped, sum.Priority)
	fmt.Fprintf(w, "average score: %.1f\n", sum.AverageScore)
	for _, t := range types.PageTypes {
		ts, ok := sum.ByType[t]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-8s  %d candidates, %d generated, %d indexed\n",
			t, ts.Candidates, ts.Generated, ts.Indexed)
	}
}

// Output is the JSON shape of a scored run.
type Output struct {
	Pages   []types.VerdictRecord `json:"pages" yaml:"pages"`
	Summary types.Summary         `json:"summary" yaml:"summary"`
}

// NewOutput flattens verdicts into their serialized form.
func NewOutput(verdicts []types.Verdict, sum types.Summary) Output {
	out := Output{Pages: make([]types.VerdictRecord, len(verdicts)), Summary: sum}
	for i, v := range verdicts {
		out.Pages[i] = v.Record()
	}
	return out
}

// FormatJSON writes verdicts and their summary as indented JSON to w.
func FormatJSON(verdicts []types.Verdict, sum types.Summary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewOutput(verdicts, sum))
}

func formatReasons(reasons []types.ReasonCode) string {
	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
