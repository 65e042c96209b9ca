// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/sitegate/internal/report"
	"github.com/pdiddy/sitegate/internal/sitemap"
	"github.com/pdiddy/sitegate/pkg/types"
)

// Output file names inside the output directory.
const (
	VerdictsJSON = "verdicts.json"
	VerdictsYAML = "verdicts.yaml"
	SitemapXML   = "sitemap.xml"
	RobotsTxt    = "robots.txt"
	RobotsJSON   = "robots.json"
	JSONLDDir    = "jsonld"
)

// writeConcurrency bounds parallel metadata file writes.
const writeConcurrency = 8

// Write writes a build result under opts.OutputDir. The jsonld directory is
// replaced so pages that dropped below the floor leave no stale files.
func Write(ctx context.Context, s *types.Site, res Result, opts Options, w io.Writer) error {
	dir := opts.OutputDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	out := report.NewOutput(res.Verdicts, res.Summary)
	if err := writeJSON(filepath.Join(dir, VerdictsJSON), out); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", VerdictsJSON)

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshaling verdicts YAML: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, VerdictsYAML), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", VerdictsYAML, err)
	}
	fmt.Fprintf(w, "wrote %s\n", VerdictsYAML)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	var buf bytes.Buffer
	if err := sitemap.WriteXML(&buf, res.Sitemap, now); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, SitemapXML), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", SitemapXML, err)
	}
	fmt.Fprintf(w, "wrote %s (%d urls)\n", SitemapXML, len(res.Sitemap))

	buf.Reset()
	if err := sitemap.WriteRobotsTxt(&buf, s.BaseURL(), opts.Robots.Disallow); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, RobotsTxt), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", RobotsTxt, err)
	}
	fmt.Fprintf(w, "wrote %s\n", RobotsTxt)

	if err := writeJSON(filepath.Join(dir, RobotsJSON), res.Directives); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s (%d noindex routes)\n", RobotsJSON, len(res.Directives))

	n, err := writeDocuments(ctx, filepath.Join(dir, JSONLDDir), res.Pages)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s/ (%d pages)\n", JSONLDDir, n)
	return nil
}

// writeDocuments writes one file per page: a single document, or an array
// when the page carries several.
func writeDocuments(ctx context.Context, dir string, pages []Page) (int, error) {
	if err := os.RemoveAll(dir); err != nil {
		return 0, fmt.Errorf("clearing %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(writeConcurrency)
	written := 0
	for _, p := range pages {
		if len(p.Documents) == 0 {
			continue
		}
		written++
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var payload any = p.Documents
			if len(p.Documents) == 1 {
				payload = p.Documents[0]
			}
			return writeJSON(filepath.Join(dir, p.Key+".json"), payload)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return written, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
