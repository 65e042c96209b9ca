// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scoring turns predicate results into a weighted point breakdown per
// candidate page. Weights are fixed in a central table; only the index
// minimums can be tightened by the site's content requirements.
package scoring

import (
	"fmt"
	"sort"

	"github.com/pdiddy/sitegate/pkg/types"
)

const (
	// GenerateFloor is the do-not-generate bar: a page must score above it.
	GenerateFloor = 3

	// PriorityThreshold marks a page as priority at or above it.
	PriorityThreshold = 10

	// MaxSuggestions caps the suggestion list.
	MaxSuggestions = 5
)

// minimums are the per-page-type index thresholds.
var minimums = map[types.PageType]int{
	types.PageHome:     10,
	types.PageService:  8,
	types.PageLocation: 7,
	types.PageCombo:    7,
	types.PageAbout:    6,
	types.PageContact:  5,
}

// Minimum returns the index threshold for page type t. A configured
// minimum_index_score raises it but never lowers it.
func Minimum(t types.PageType, req types.ContentRequirements) int {
	m := minimums[t]
	if req.MinimumIndexScore > m {
		return req.MinimumIndexScore
	}
	return m
}

// Score computes the content score of one candidate page. It reads only the
// candidate's own entities and the profile, so calls are safe to run in
// parallel.
func Score(s *types.Site, c types.PageCandidate) types.ContentScore {
	subj := Subject{Site: s, Service: c.Service, Area: c.Area}

	var (
		breakdown []types.LineItem
		unmet     []Item
		total     int
		max       int
	)
	for _, it := range table {
		if !it.Applies(c.Type) {
			continue
		}
		present := it.Check(subj)
		li := types.LineItem{
			ID:          it.ID,
			Category:    it.Category,
			Description: it.Description,
			MaxPoints:   it.Points,
			Present:     present,
		}
		if present {
			li.Points = it.Points
			total += it.Points
		} else {
			unmet = append(unmet, it)
		}
		max += it.Points
		breakdown = append(breakdown, li)
	}

	minimum := Minimum(c.Type, s.ContentRequirements)
	cs := types.ContentScore{
		Total:          total,
		MaxTotal:       max,
		Minimum:        minimum,
		Breakdown:      breakdown,
		ShouldGenerate: total > GenerateFloor,
		ShouldIndex:    total >= minimum,
		IsPriority:     total >= PriorityThreshold,
		Warnings:       []string{},
		Suggestions:    suggestions(unmet),
	}

	if !cs.ShouldGenerate {
		cs.Warnings = append(cs.Warnings,
			fmt.Sprintf("score %d is at or below the do-not-generate floor of %d", total, GenerateFloor))
	}
	if !cs.ShouldIndex {
		cs.Warnings = append(cs.Warnings,
			fmt.Sprintf("score %d is below the %s minimum of %d", total, c.Type, minimum))
	}
	return cs
}

// suggestions lists the highest-value unmet items, table order breaking ties.
func suggestions(unmet []Item) []string {
	sort.SliceStable(unmet, func(i, j int) bool {
		return unmet[i].Points > unmet[j].Points
	})
	if len(unmet) > MaxSuggestions {
		unmet = unmet[:MaxSuggestions]
	}
	out := make([]string, 0, len(unmet))
	for _, it := range unmet {
		out = append(out, fmt.Sprintf("Add %s (+%d %s)", it.Description, it.Points, it.Category))
	}
	return out
}
