// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sitemap projects gate verdicts onto the crawl surface: the ordered
// sitemap entries, sitemap.xml, per-route robots directives, and robots.txt.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/sitegate/pkg/types"
)

// Change frequencies used as fallbacks.
const (
	Weekly  = "weekly"
	Monthly = "monthly"
	Yearly  = "yearly"
)

var changeFrequencies = map[string]bool{
	"always": true, "hourly": true, "daily": true, Weekly: true,
	Monthly: true, Yearly: true, "never": true,
}

// Entry is one sitemap row.
type Entry struct {
	URL             string         `json:"url" yaml:"url"`
	Route           string         `json:"route" yaml:"route"`
	Type            types.PageType `json:"type" yaml:"type"`
	Priority        float64        `json:"priority" yaml:"priority"`
	ChangeFrequency string         `json:"change_frequency" yaml:"change_frequency"`
}

// Project builds the sitemap: home, about, and contact first, then every
// service, location, and combo page whose verdict is index, each group in
// verdict order. A fixed page is listed unless its verdict says noindex;
// one with no verdict is listed.
func Project(s *types.Site, verdicts []types.Verdict) []Entry {
	base := s.BaseURL()
	noindex := make(map[types.PageType]bool)
	for _, v := range verdicts {
		if v.Candidate.Type.Fixed() && !v.Index {
			noindex[v.Candidate.Type] = true
		}
	}

	var out []Entry
	for _, t := range []types.PageType{types.PageHome, types.PageAbout, types.PageContact} {
		if noindex[t] {
			continue
		}
		out = append(out, entry(s, base, types.PageCandidate{Type: t}))
	}
	for _, t := range []types.PageType{types.PageService, types.PageLocation, types.PageCombo} {
		for _, v := range verdicts {
			if v.Candidate.Type != t || !v.Index {
				continue
			}
			out = append(out, entry(s, base, v.Candidate))
		}
	}
	return out
}

func entry(s *types.Site, base string, c types.PageCandidate) Entry {
	route := c.Route()
	url := base + route
	if route == "/" {
		url = base + "/"
	}
	prio, freq := Settings(s.Sitemap, c.Type)
	return Entry{
		URL:             url,
		Route:           route,
		Type:            c.Type,
		Priority:        prio,
		ChangeFrequency: freq,
	}
}

// Settings returns the configured priority and change frequency for a page
// type, falling back to the built-in defaults when a setting is unset or
// out of range.
func Settings(cfg types.SitemapSettings, t types.PageType) (float64, string) {
	var (
		prio     *float64
		freq     string
		fallback float64
		fbFreq   string
	)
	p, f := cfg.Priorities, cfg.ChangeFrequency
	switch t {
	case types.PageHome:
		prio, freq, fallback, fbFreq = p.Homepage, f.Homepage, 1.0, Weekly
	case types.PageService:
		prio, freq, fallback, fbFreq = p.Services, f.Services, 0.9, Monthly
	case types.PageLocation:
		prio, freq, fallback, fbFreq = p.Locations, f.Locations, 0.8, Monthly
	case types.PageCombo:
		prio, freq, fallback, fbFreq = p.LocationService, f.LocationService, 0.7, Monthly
	case types.PageAbout:
		prio, freq, fallback, fbFreq = p.About, f.About, 0.6, Yearly
	case types.PageContact:
		prio, freq, fallback, fbFreq = p.Contact, f.Contact, 0.6, Yearly
	}
	if prio != nil && *prio >= 0 && *prio <= 1 {
		fallback = *prio
	}
	if changeFrequencies[freq] {
		fbFreq = freq
	}
	return fallback, fbFreq
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority"`
}

// WriteXML writes entries as a sitemaps.org urlset. A zero lastmod omits the
// lastmod element.
func WriteXML(w io.Writer, entries []Entry, lastmod time.Time) error {
	set := urlset{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	mod := ""
	if !lastmod.IsZero() {
		mod = lastmod.UTC().Format("2006-01-02")
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, xmlURL{
			Loc:        e.URL,
			LastMod:    mod,
			ChangeFreq: e.ChangeFrequency,
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing sitemap: %w", err)
	}
	return nil
}
