// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sitemap

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/sitegate/pkg/types"
)

// NoIndexFollow is the directive emitted for pages kept out of the index.
const NoIndexFollow = "noindex, follow"

// Directive is the robots rule for one route.
type Directive struct {
	Route    string             `json:"route" yaml:"route"`
	Robots   string             `json:"robots" yaml:"robots"`
	Generate bool               `json:"generate" yaml:"generate"`
	Reasons  []types.ReasonCode `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// Directives maps every verdict with index=false to a noindex rule, in
// verdict order.
func Directives(verdicts []types.Verdict) []Directive {
	out := []Directive{}
	for _, v := range verdicts {
		if v.Index {
			continue
		}
		out = append(out, Directive{
			Route:    v.Route(),
			Robots:   NoIndexFollow,
			Generate: v.Generate,
			Reasons:  v.Reasons,
		})
	}
	return out
}

// WriteRobotsTxt writes a robots.txt allowing everything except disallow and
// pointing crawlers at the sitemap.
func WriteRobotsTxt(w io.Writer, baseURL string, disallow []string) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, d := range disallow {
		if d = strings.TrimSpace(d); d != "" {
			fmt.Fprintf(&b, "Disallow: %s\n", d)
		}
	}
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", strings.TrimRight(baseURL, "/"))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing robots.txt: %w", err)
	}
	return nil
}
