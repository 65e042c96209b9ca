// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"strings"

	"github.com/pdiddy/sitegate/internal/predicate"
	"github.com/pdiddy/sitegate/pkg/types"
)

// Subject is what an item checks: the profile plus the page's own entities.
type Subject struct {
	Site    *types.Site
	Service *types.Service
	Area    *types.ServiceArea
}

// Item is one fixed row of the scoring table.
type Item struct {
	ID          string
	Category    types.Category
	Description string
	Points      int
	AppliesTo   []types.PageType
	Check       func(Subject) bool
}

// Applies reports whether the item counts toward pages of type t.
func (it Item) Applies(t types.PageType) bool {
	for _, p := range it.AppliesTo {
		if p == t {
			return true
		}
	}
	return false
}

var (
	allPages      = types.PageTypes
	locationPages = []types.PageType{types.PageLocation, types.PageCombo}
	servicePages  = []types.PageType{types.PageService, types.PageCombo}
	homePage      = []types.PageType{types.PageHome}
	aboutPage     = []types.PageType{types.PageAbout}
)

// table is the scoring contract. Order is significant: breakdowns follow it
// and ties among suggestions are broken by it.
var table = []Item{
	// Hard Trust, max 10, every page.
	{"trust.license", types.CategoryHardTrust, "License display", 2, allPages,
		func(s Subject) bool { return predicate.HasLicense(s.Site) }},
	{"trust.insurance", types.CategoryHardTrust, "Insurance coverage", 2, allPages,
		func(s Subject) bool { return predicate.HasInsurance(s.Site) }},
	{"trust.founded", types.CategoryHardTrust, "Founding year", 2, allPages,
		func(s Subject) bool { return predicate.HasFoundingYear(s.Site) }},
	{"trust.rating", types.CategoryHardTrust, "Valid aggregate rating (5+ reviews, 1-5 average)", 2, allPages,
		func(s Subject) bool { return predicate.HasValidAggregateRating(s.Site.Reviews) }},
	{"trust.owner", types.CategoryHardTrust, "Owner name", 2, allPages,
		func(s Subject) bool { return predicate.HasOwnerName(s.Site) }},

	// Local Proof, max 5.
	{"local.neighborhoods", types.CategoryLocalProof, "2+ neighborhoods", 1, locationPages,
		func(s Subject) bool { return s.Area != nil && predicate.NonBlank(s.Area.Neighborhoods) >= 2 }},
	{"local.landmarks", types.CategoryLocalProof, "2+ landmarks", 1, locationPages,
		func(s Subject) bool { return s.Area != nil && predicate.NonBlank(s.Area.Landmarks) >= 2 }},
	{"local.county", types.CategoryLocalProof, "County", 1, locationPages,
		func(s Subject) bool { return s.Area != nil && strings.TrimSpace(s.Area.County) != "" }},
	{"local.permits", types.CategoryLocalProof, "Permit note", 1, locationPages,
		func(s Subject) bool { return s.Area != nil && strings.TrimSpace(s.Area.Permits) != "" }},
	{"local.regional_issues", types.CategoryLocalProof, "1+ regional issue", 1, locationPages,
		func(s Subject) bool { return s.Area != nil && predicate.NonBlank(s.Area.RegionalIssues) >= 1 }},

	// Expertise, max 4.
	{"expertise.process", types.CategoryExpertise, "3+ process steps", 1, servicePages,
		func(s Subject) bool { return s.Service != nil && namedSteps(s.Service.Process) >= 3 }},
	{"expertise.issues", types.CategoryExpertise, "2+ common issues", 1, servicePages,
		func(s Subject) bool { return s.Service != nil && predicate.NonBlank(s.Service.CommonIssues) >= 2 }},
	{"expertise.materials", types.CategoryExpertise, "2+ materials", 1, servicePages,
		func(s Subject) bool { return s.Service != nil && predicate.NonBlank(s.Service.Materials) >= 2 }},
	{"expertise.features", types.CategoryExpertise, "3+ features", 1, servicePages,
		func(s Subject) bool { return s.Service != nil && predicate.NonBlank(s.Service.Features) >= 3 }},

	// Unique Content, max 3.
	{"unique.local_paragraph", types.CategoryUniqueContent, "Local paragraph of 50+ words", 1, locationPages,
		func(s Subject) bool {
			return s.Area != nil && predicate.WordCount(s.Area.LocalParagraph) >= predicate.MinLocalParagraphWords
		}},
	{"unique.faqs", types.CategoryUniqueContent, "2+ service FAQs", 1, servicePages,
		func(s Subject) bool { return s.Service != nil && answeredFAQs(s.Service.FAQs) >= 2 }},
	{"unique.long_description", types.CategoryUniqueContent, "Long description of 100+ characters", 1, servicePages,
		func(s Subject) bool { return s.Service != nil && predicate.CharCount(s.Service.LongDescription) >= 100 }},

	// AI-Citation Readiness, max 2.
	{"citation.pricing", types.CategoryAICitation, "Price range or minimum price", 1, servicePages,
		func(s Subject) bool { return predicate.HasPricing(s.Service) }},
	{"citation.duration", types.CategoryAICitation, "Duration estimate", 1, servicePages,
		func(s Subject) bool { return predicate.HasDuration(s.Service) }},

	// Page-specific extras.
	{"page.services", types.CategoryPageSpecific, "3+ services listed", 2, homePage,
		func(s Subject) bool { return len(s.Site.Services) >= 3 }},
	{"page.areas", types.CategoryPageSpecific, "3+ service areas listed", 2, homePage,
		func(s Subject) bool { return len(s.Site.ServiceAreas) >= 3 }},
	{"page.default_faqs", types.CategoryPageSpecific, "3+ default FAQs", 1, homePage,
		func(s Subject) bool { return answeredFAQs(s.Site.DefaultFAQs) >= 3 }},
	{"page.story", types.CategoryPageSpecific, "Company story of 100+ characters", 1, aboutPage,
		func(s Subject) bool { return predicate.CharCount(s.Site.About.Story) >= 100 }},
	{"page.owner_bio", types.CategoryPageSpecific, "Owner bio of 50+ characters", 1, aboutPage,
		func(s Subject) bool { return s.Site.About.Owner != nil && predicate.CharCount(s.Site.About.Owner.Bio) >= 50 }},
	{"page.certifications", types.CategoryPageSpecific, "1+ about-page certification", 1, aboutPage,
		func(s Subject) bool { return predicate.NonBlank(s.Site.About.Certifications) >= 1 }},
}

// Table returns a copy of the scoring table.
func Table() []Item {
	out := make([]Item, len(table))
	copy(out, table)
	return out
}

// CategoryMax returns the maximum points a category can award to page type t.
func CategoryMax(c types.Category, t types.PageType) int {
	max := 0
	for _, it := range table {
		if it.Category == c && it.Applies(t) {
			max += it.Points
		}
	}
	return max
}

func namedSteps(steps []types.ProcessStep) int {
	n := 0
	for _, st := range steps {
		if strings.TrimSpace(st.Name) != "" {
			n++
		}
	}
	return n
}

func answeredFAQs(faqs []types.FAQ) int {
	n := 0
	for _, f := range faqs {
		if strings.TrimSpace(f.Question) != "" && strings.TrimSpace(f.Answer) != "" {
			n++
		}
	}
	return n
}
