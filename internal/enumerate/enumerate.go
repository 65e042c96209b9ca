// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enumerate expands the catalogs into candidate pages and evaluates
// them. Every candidate depends only on its own entities and the read-only
// profile, so evaluation fans out across workers without coordination.
package enumerate

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/sitegate/internal/gate"
	"github.com/pdiddy/sitegate/pkg/types"
)

// Candidates returns every candidate page in a stable order: home, services,
// locations, combos (area-major), about, contact.
func Candidates(s *types.Site) []types.PageCandidate {
	out := make([]types.PageCandidate, 0, 3+len(s.Services)+len(s.ServiceAreas)*(1+len(s.Services)))
	out = append(out, types.PageCandidate{Type: types.PageHome})
	for i := range s.Services {
		out = append(out, types.PageCandidate{Type: types.PageService, Service: &s.Services[i]})
	}
	for i := range s.ServiceAreas {
		out = append(out, types.PageCandidate{Type: types.PageLocation, Area: &s.ServiceAreas[i]})
	}
	out = append(out, Combos(s)...)
	out = append(out,
		types.PageCandidate{Type: types.PageAbout},
		types.PageCandidate{Type: types.PageContact},
	)
	return out
}

// Combos returns one combo candidate per (area, service) pair.
func Combos(s *types.Site) []types.PageCandidate {
	out := make([]types.PageCandidate, 0, len(s.ServiceAreas)*len(s.Services))
	for i := range s.ServiceAreas {
		for j := range s.Services {
			out = append(out, types.PageCandidate{
				Type:    types.PageCombo,
				Area:    &s.ServiceAreas[i],
				Service: &s.Services[j],
			})
		}
	}
	return out
}

// Evaluate scores and gates every candidate using up to workers goroutines.
// The result is in candidate order regardless of scheduling. workers <= 0
// means runtime.NumCPU().
func Evaluate(s *types.Site, candidates []types.PageCandidate, workers int) []types.Verdict {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	verdicts := make([]types.Verdict, len(candidates))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			verdicts[i] = gate.Evaluate(s, c)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return verdicts
}

// All enumerates and evaluates every candidate of the site.
func All(s *types.Site, workers int) []types.Verdict {
	return Evaluate(s, Candidates(s), workers)
}

// Summarize reduces verdicts to counts and the average score.
func Summarize(verdicts []types.Verdict) types.Summary {
	sum := types.Summary{ByType: make(map[types.PageType]types.TypeSummary)}
	total := 0
	for _, v := range verdicts {
		sum.Candidates++
		total += v.Score.Total

		ts := sum.ByType[v.Candidate.Type]
		ts.Candidates++
		if v.Generate {
			sum.Generated++
			ts.Generated++
		} else {
			sum.Skipped++
		}
		if v.Index {
			sum.Indexed++
			ts.Indexed++
		} else {
			sum.NoIndex++
		}
		if v.Priority {
			sum.Priority++
		}
		sum.ByType[v.Candidate.Type] = ts
	}
	if sum.Candidates > 0 {
		sum.AverageScore = float64(int(float64(total)/float64(sum.Candidates)*10+0.5)) / 10
	}
	return sum
}
