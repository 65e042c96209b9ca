// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sitetest builds business profiles for tests. Fixture returns a
// fresh copy on every call so tests may mutate it freely.
//
// The fixture is a roofing contractor with two services and two areas:
//
//	roof-repair          text price range, duration, 5 steps, 2 FAQs
//	gutter-installation  numeric price range, duration, no FAQs
//	springfield          full local proof (5 neighborhoods, 5 landmarks, 60-word paragraph)
//	chicopee             county only, no local proof
package sitetest

import (
	"strings"

	"github.com/pdiddy/sitegate/pkg/types"
)

// Slugs used by the fixture.
const (
	RoofRepair  = "roof-repair"
	Gutters     = "gutter-installation"
	Springfield = "springfield"
	Chicopee    = "chicopee"
)

var vocabulary = strings.Fields(`Springfield homes near the Connecticut River face
heavy snow loads, ice dams along the eaves, and summer storms that lift older
shingles. Many houses in Forest Park and the McKnight district are century-old
colonials with steep slate roofs, so our crews plan every repair around the
original materials and the city permit office on Court Street.`)

// Words returns a paragraph of exactly n words.
func Words(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = vocabulary[i%len(vocabulary)]
	}
	return strings.Join(words, " ")
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Fixture returns the reference profile.
func Fixture() *types.Site {
	return &types.Site{
		Business: types.Business{
			Name:         "Summit Roofing Co.",
			SchemaType:   "RoofingContractor",
			Description:  "Family-owned roofing contractor serving Hampden County.",
			Phone:        "(413) 555-0142",
			Email:        "office@summitroofing.example",
			URL:          "https://summitroofing.example",
			Logo:         "/images/logo.png",
			PriceRange:   "$$",
			FoundingDate: "2009",
		},
		TrustSignals: types.TrustSignals{
			License: &types.License{
				Number:  "CS-104512",
				State:   "MA",
				Display: "Licensed MA Contractor #CS-104512",
			},
			Insurance: &types.Insurance{
				Coverage: "$2,000,000 general liability",
				Provider: "Pioneer Mutual",
			},
			Certifications: []string{"GAF Master Elite"},
		},
		Address: types.Address{
			Street:  "12 Mill Street",
			City:    "Springfield",
			State:   "MA",
			Zip:     "01103",
			Country: "US",
		},
		Geo: &types.GeoCoordinates{Latitude: 42.1015, Longitude: -72.5898},
		Hours: &types.BusinessHours{
			Monday:    "07:00-17:00",
			Tuesday:   "07:00-17:00",
			Wednesday: "07:00-17:00",
			Thursday:  "07:00-17:00",
			Friday:    "07:00-17:00",
			Saturday:  "08:00-12:00",
			Sunday:    "Closed",
		},
		Services: []types.Service{
			{
				Name:            "Roof Repair",
				Slug:            RoofRepair,
				Description:     "Leak repair, flashing, and storm damage fixes.",
				LongDescription: "We repair asphalt, slate, and metal roofs, tracing each leak to its source before replacing flashing, shingles, or decking so the fix lasts.",
				PriceRange:      "$450-$1,200",
				Duration:        "1-2 days",
				Features: []string{
					"Free inspection", "Photo report", "Storm damage claims help",
					"10-year workmanship warranty", "Same-week scheduling",
				},
				Process: []types.ProcessStep{
					{Step: 1, Name: "Inspect", Description: "Walk the roof and attic."},
					{Step: 2, Name: "Quote", Description: "Written, itemized estimate."},
					{Step: 3, Name: "Protect", Description: "Tarp landscaping and siding."},
					{Step: 4, Name: "Repair", Description: "Replace damaged materials."},
					{Step: 5, Name: "Clean up", Description: "Magnet sweep for nails."},
				},
				Materials:    []string{"Asphalt shingles", "Slate", "Copper flashing", "Ice and water shield"},
				CommonIssues: []string{"Ice dams", "Lifted shingles", "Failed flashing", "Clogged valleys"},
				FAQs: []types.FAQ{
					{Question: "How fast can you repair a leak?", Answer: "Most leaks are fixed within a week of the inspection."},
					{Question: "Do you work with insurance?", Answer: "Yes, we document damage for your claim."},
				},
			},
			{
				Name:         "Gutter Installation",
				Slug:         Gutters,
				Description:  "Seamless aluminum gutters and guards.",
				PriceMin:     Float(800),
				PriceMax:     Float(2400),
				Duration:     "1 day",
				Features:     []string{"Seamless runs", "Leaf guards", "Downspout extensions"},
				Process:      []types.ProcessStep{{Step: 1, Name: "Measure"}, {Step: 2, Name: "Form"}, {Step: 3, Name: "Hang"}},
				Materials:    []string{"Aluminum", "Copper"},
				CommonIssues: []string{"Overflow", "Fascia rot"},
				ShowProjects: true,
			},
		},
		ServiceAreas: []types.ServiceArea{
			{
				City:           "Springfield",
				Slug:           Springfield,
				State:          "MA",
				County:         "Hampden",
				ZipCodes:       []string{"01103", "01108"},
				Neighborhoods:  []string{"Forest Park", "McKnight", "Sixteen Acres", "East Forest Park", "Pine Point"},
				Landmarks:      []string{"Forest Park", "Basketball Hall of Fame", "Springfield Armory", "Court Square", "Quadrangle"},
				LocalParagraph: Words(60),
				RegionalIssues: []string{"Ice dams on north-facing slopes"},
				Permits:        "Springfield requires a building permit for full re-roofs.",
			},
			{
				City:          "Chicopee",
				Slug:          Chicopee,
				State:         "MA",
				County:        "Hampden",
				Neighborhoods: []string{"Willimansett"},
			},
		},
		Social: types.SocialProfiles{
			Facebook: "https://facebook.com/summitroofing",
		},
		Reviews: types.Reviews{
			Google:   &types.ReviewPlatform{ReviewCount: 127, Rating: 4.9},
			Yelp:     &types.ReviewPlatform{ReviewCount: 43, Rating: 4.6},
			Facebook: &types.ReviewPlatform{ReviewCount: 38, Rating: 4.7},
		},
		About: types.About{
			Story: "Dana started Summit Roofing in 2009 after fifteen years on commercial crews, with one truck and a promise to answer every call the same day.",
			Owner: &types.Owner{
				Name:  "Dana Whitfield",
				Title: "Owner",
				Bio:   "Dana has installed and repaired roofs across western Massachusetts for over twenty years.",
			},
			Certifications: []string{"GAF Master Elite", "OSHA 30"},
		},
		DefaultFAQs: []types.FAQ{
			{Question: "Are you licensed?", Answer: "Yes, we hold a Massachusetts contractor license."},
			{Question: "Do you offer free estimates?", Answer: "Yes, every estimate is free."},
			{Question: "Which towns do you serve?", Answer: "Springfield, Chicopee, and nearby towns."},
		},
		Projects: map[string][]types.Project{
			Gutters: {
				{ID: "p1", Title: "Colonial gutter replacement", Location: "Forest Park", AfterImage: "/projects/p1-after.jpg", BeforeImage: "/projects/p1-before.jpg"},
			},
		},
	}
}
