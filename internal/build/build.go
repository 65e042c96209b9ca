// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build runs the batch pass over a loaded site: evaluate every
// candidate, assemble metadata for generated pages, project the sitemap and
// robots directives, and write the output tree.
package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pdiddy/sitegate/internal/enumerate"
	"github.com/pdiddy/sitegate/internal/jsonld"
	"github.com/pdiddy/sitegate/internal/logging"
	"github.com/pdiddy/sitegate/internal/site"
	"github.com/pdiddy/sitegate/internal/sitemap"
	"github.com/pdiddy/sitegate/pkg/types"
)

// Options controls a build.
type Options struct {
	types.BuildConfig

	// Now stamps sitemap lastmod; zero means time.Now().
	Now time.Time

	Logger *slog.Logger
}

// Page is one generated page with its metadata documents.
type Page struct {
	Key       string
	Route     string
	Documents []jsonld.Document
}

// Result is everything a build produces, before it is written.
type Result struct {
	Verdicts   []types.Verdict
	Summary    types.Summary
	Pages      []Page
	Sitemap    []sitemap.Entry
	Directives []sitemap.Directive

	// LintFailures counts documents that failed the publishing lint.
	LintFailures int

	// ConfigWarnings lists optional profile fields that failed their
	// constraints and were treated as absent.
	ConfigWarnings []string
}

// Evaluate computes a build result for s without touching the filesystem.
// Pages below the do-not-generate floor get no metadata.
func Evaluate(s *types.Site, opts Options) Result {
	log := logging.Or(opts.Logger)

	verdicts := enumerate.All(s, opts.Workers)
	res := Result{
		Verdicts:       verdicts,
		Summary:        enumerate.Summarize(verdicts),
		Sitemap:        sitemap.Project(s, verdicts),
		Directives:     sitemap.Directives(verdicts),
		ConfigWarnings: site.Check(s),
	}
	for _, w := range res.ConfigWarnings {
		log.Warn("ignoring malformed site field", "problem", w)
	}

	for _, v := range verdicts {
		if !v.Generate {
			log.Debug("skipping page below generate floor", "route", v.Route(), "score", v.Score.Total)
			continue
		}
		docs := jsonld.ForPage(s, v.Candidate, opts.PrimaryIdentityPage)
		for _, d := range docs {
			if err := jsonld.Lint(d); err != nil {
				res.LintFailures++
				log.Warn("metadata document failed lint", "route", v.Route(), "type", d.Type(), "error", err)
			}
		}
		res.Pages = append(res.Pages, Page{
			Key:       v.Candidate.Key(),
			Route:     v.Route(),
			Documents: docs,
		})
	}

	log.Info("evaluated site",
		"candidates", res.Summary.Candidates,
		"indexed", res.Summary.Indexed,
		"noindex", res.Summary.NoIndex,
		"skipped", res.Summary.Skipped,
		"lint_failures", res.LintFailures)
	return res
}

// Run loads the site at opts.SitePath, evaluates it, and writes the output
// tree to opts.OutputDir. Progress lines go to w. A *site.ConfigError aborts
// the run before anything is written.
func Run(ctx context.Context, opts Options, w io.Writer) (*types.Site, Result, error) {
	s, err := site.Load(opts.SitePath)
	if err != nil {
		return nil, Result{}, err
	}
	res := Evaluate(s, opts)
	if err := Write(ctx, s, res, opts, w); err != nil {
		return s, res, err
	}
	fmt.Fprintf(w, "\npages: %d, indexed: %d, noindex: %d, skipped: %d, lint failures: %d\n",
		res.Summary.Candidates, res.Summary.Indexed, res.Summary.NoIndex,
		res.Summary.Skipped, res.LintFailures)
	return s, res, nil
}
