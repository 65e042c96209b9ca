// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// PageType identifies the kind of candidate page.
type PageType string

const (
	PageHome     PageType = "home"
	PageService  PageType = "service"
	PageLocation PageType = "location"
	PageCombo    PageType = "combo"
	PageAbout    PageType = "about"
	PageContact  PageType = "contact"
)

// PageTypes lists every page type in candidate order.
var PageTypes = []PageType{PageHome, PageService, PageLocation, PageCombo, PageAbout, PageContact}

// Valid reports whether t is a known page type.
func (t PageType) Valid() bool {
	for _, p := range PageTypes {
		if p == t {
			return true
		}
	}
	return false
}

// Fixed reports whether t is a single site-wide page: home, about, or
// contact.
func (t PageType) Fixed() bool {
	return t == PageHome || t == PageAbout || t == PageContact
}

// PageCandidate is a page that could be generated. It is derived fresh each
// run and never persisted. Service is set for service and combo pages; Area
// is set for location and combo pages. Both point into the loaded Site.
type PageCandidate struct {
	Type    PageType
	Service *Service
	Area    *ServiceArea
}

// Route returns the site-relative URL path of the page.
func (c PageCandidate) Route() string {
	switch c.Type {
	case PageHome:
		return "/"
	case PageService:
		return "/services/" + c.Service.Slug
	case PageLocation:
		return "/locations/" + c.Area.Slug
	case PageCombo:
		return "/locations/" + c.Area.Slug + "/" + c.Service.Slug
	case PageAbout:
		return "/about"
	case PageContact:
		return "/contact"
	}
	return ""
}

// Key returns a filesystem-safe identifier, e.g. "combo--springfield--roof-repair".
func (c PageCandidate) Key() string {
	switch c.Type {
	case PageService:
		return fmt.Sprintf("%s--%s", c.Type, c.Service.Slug)
	case PageLocation:
		return fmt.Sprintf("%s--%s", c.Type, c.Area.Slug)
	case PageCombo:
		return fmt.Sprintf("%s--%s--%s", c.Type, c.Area.Slug, c.Service.Slug)
	}
	return string(c.Type)
}

// ServiceSlug returns the service slug or "".
func (c PageCandidate) ServiceSlug() string {
	if c.Service == nil {
		return ""
	}
	return c.Service.Slug
}

// AreaSlug returns the area slug or "".
func (c PageCandidate) AreaSlug() string {
	if c.Area == nil {
		return ""
	}
	return c.Area.Slug
}

// Category labels a group of score line items.
type Category string

const (
	CategoryHardTrust     Category = "Hard Trust"
	CategoryLocalProof    Category = "Local Proof"
	CategoryExpertise     Category = "Expertise"
	CategoryUniqueContent Category = "Unique Content"
	CategoryAICitation    Category = "AI-Citation Readiness"
	CategoryPageSpecific  Category = "Page-Specific"
)

// LineItem is one row of a score breakdown.
type LineItem struct {
	ID          string   `json:"id" yaml:"id"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Points      int      `json:"points" yaml:"points"`
	MaxPoints   int      `json:"max_points" yaml:"max_points"`
	Present     bool     `json:"present" yaml:"present"`
}

// ContentScore aggregates a breakdown into totals and the three decisions.
// ShouldIndex here is the score-threshold test only; the gate may still
// force noindex.
type ContentScore struct {
	Total          int        `json:"score" yaml:"score"`
	MaxTotal       int        `json:"max_score" yaml:"max_score"`
	Minimum        int        `json:"minimum" yaml:"minimum"`
	Breakdown      []LineItem `json:"breakdown" yaml:"breakdown"`
	ShouldGenerate bool       `json:"generate" yaml:"generate"`
	ShouldIndex    bool       `json:"index" yaml:"index"`
	IsPriority     bool       `json:"priority" yaml:"priority"`
	Warnings       []string   `json:"warnings" yaml:"warnings"`
	Suggestions    []string   `json:"suggestions" yaml:"suggestions"`
}

// CategoryTotal sums awarded and maximum points for one category.
func (s ContentScore) CategoryTotal(c Category) (points, max int) {
	for _, item := range s.Breakdown {
		if item.Category == c {
			points += item.Points
			max += item.MaxPoints
		}
	}
	return points, max
}

// ReasonCode explains why a page was not indexed or not generated.
type ReasonCode string

const (
	ReasonBelowMinimum      ReasonCode = "below_minimum"
	ReasonBelowFloor        ReasonCode = "below_generate_floor"
	ReasonNoLocalProof      ReasonCode = "no_local_proof"
	ReasonNoPricingDuration ReasonCode = "no_pricing_duration"
	ReasonServiceOptOut     ReasonCode = "service_opt_out"
	ReasonAreaOptOut        ReasonCode = "area_opt_out"
	ReasonComboRequirements ReasonCode = "combo_requirements"
)

// Verdict is the final decision for one candidate page.
type Verdict struct {
	Candidate PageCandidate `json:"-" yaml:"-"`
	Score     ContentScore  `json:"score" yaml:"score"`

	Generate bool         `json:"generate" yaml:"generate"`
	Index    bool         `json:"index" yaml:"index"`
	Priority bool         `json:"priority" yaml:"priority"`
	Reasons  []ReasonCode `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// Route is a shorthand for v.Candidate.Route().
func (v Verdict) Route() string {
	return v.Candidate.Route()
}

// VerdictRecord is the serialized form of a Verdict consumed by the page layer.
type VerdictRecord struct {
	Route       string       `json:"route" yaml:"route"`
	Type        PageType     `json:"type" yaml:"type"`
	Service     string       `json:"service,omitempty" yaml:"service,omitempty"`
	Area        string       `json:"area,omitempty" yaml:"area,omitempty"`
	Generate    bool         `json:"generate" yaml:"generate"`
	Index       bool         `json:"index" yaml:"index"`
	Priority    bool         `json:"priority" yaml:"priority"`
	Score       int          `json:"score" yaml:"score"`
	MaxScore    int          `json:"max_score" yaml:"max_score"`
	Minimum     int          `json:"minimum" yaml:"minimum"`
	Breakdown   []LineItem   `json:"breakdown" yaml:"breakdown"`
	Warnings    []string     `json:"warnings" yaml:"warnings"`
	Suggestions []string     `json:"suggestions" yaml:"suggestions"`
	Reasons     []ReasonCode `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// Record flattens the verdict for serialization.
func (v Verdict) Record() VerdictRecord {
	return VerdictRecord{
		Route:       v.Route(),
		Type:        v.Candidate.Type,
		Service:     v.Candidate.ServiceSlug(),
		Area:        v.Candidate.AreaSlug(),
		Generate:    v.Generate,
		Index:       v.Index,
		Priority:    v.Priority,
		Score:       v.Score.Total,
		MaxScore:    v.Score.MaxTotal,
		Minimum:     v.Score.Minimum,
		Breakdown:   v.Score.Breakdown,
		Warnings:    v.Score.Warnings,
		Suggestions: v.Score.Suggestions,
		Reasons:     v.Reasons,
	}
}

// TypeSummary counts verdicts of one page type.
type TypeSummary struct {
	Candidates int `json:"candidates" yaml:"candidates"`
	Generated  int `json:"generated" yaml:"generated"`
	Indexed    int `json:"indexed" yaml:"indexed"`
}

// Summary is the order-independent reduction over all verdicts of a run.
type Summary struct {
	Candidates   int                      `json:"candidates" yaml:"candidates"`
	Generated    int                      `json:"generated" yaml:"generated"`
	Indexed      int                      `json:"indexed" yaml:"indexed"`
	NoIndex      int                      `json:"noindex" yaml:"noindex"`
	Skipped      int                      `json:"skipped" yaml:"skipped"`
	Priority     int                      `json:"priority" yaml:"priority"`
	AverageScore float64                  `json:"average_score" yaml:"average_score"`
	ByType       map[PageType]TypeSummary `json:"by_type" yaml:"by_type"`
}
