// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsonld

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sitegate/internal/enumerate"
	"github.com/pdiddy/sitegate/internal/site"
	"github.com/pdiddy/sitegate/internal/sitetest"
	"github.com/pdiddy/sitegate/pkg/types"
)

func docTypes(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Type()
	}
	return out
}

func candidate(t *testing.T, s *types.Site, route string) types.PageCandidate {
	t.Helper()
	for _, c := range enumerate.Candidates(s) {
		if c.Route() == route {
			return c
		}
	}
	t.Fatalf("no candidate at %s", route)
	return types.PageCandidate{}
}

func TestForPageDocumentTypes(t *testing.T) {
	s := sitetest.Fixture()
	tests := []struct {
		route string
		want  []string
	}{
		{"/", []string{"RoofingContractor", "WebSite", "FAQPage"}},
		{"/services/roof-repair", []string{"Service", "HowTo", "FAQPage", "BreadcrumbList"}},
		{"/services/gutter-installation", []string{"Service", "HowTo", "ImageGallery", "BreadcrumbList"}},
		{"/locations/springfield", []string{"RoofingContractor", "BreadcrumbList"}},
		{"/locations/springfield/roof-repair", []string{"Service", "RoofingContractor", "FAQPage", "BreadcrumbList"}},
		{"/locations/chicopee/gutter-installation", []string{"Service", "RoofingContractor", "BreadcrumbList"}},
		{"/about", []string{"AboutPage", "RoofingContractor", "Person", "BreadcrumbList"}},
		{"/contact", []string{"ContactPage", "RoofingContractor", "BreadcrumbList"}},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			docs := ForPage(s, candidate(t, s, tt.route), types.PageHome)
			assert.Equal(t, tt.want, docTypes(docs))
		})
	}
}

func TestAggregateRatingOnlyOnPrimaryPage(t *testing.T) {
	s := sitetest.Fixture()

	for _, primary := range []types.PageType{types.PageHome, types.PageAbout, types.PageContact, types.PageCombo} {
		t.Run(string(primary), func(t *testing.T) {
			want := PrimaryIdentityPage(primary)
			rated := 0
			for _, c := range enumerate.Candidates(s) {
				for _, d := range ForPage(s, c, primary) {
					if _, ok := d["aggregateRating"]; ok {
						rated++
						assert.Equal(t, want, c.Type)
					}
				}
			}
			assert.Equal(t, 1, rated)
		})
	}
}

func TestAggregateRatingRequiresValidReviews(t *testing.T) {
	s := sitetest.Fixture()
	d := LocalBusiness(s, IdentityOptions{IncludeGlobalFacts: true})
	rating, ok := d["aggregateRating"].(Document)
	require.True(t, ok)
	assert.Equal(t, 4.8, rating["ratingValue"])
	assert.Equal(t, 208, rating["reviewCount"])

	s.Reviews = types.Reviews{Aggregate: &types.AggregateReview{TotalReviews: 3, AverageRating: 5}}
	d = LocalBusiness(s, IdentityOptions{IncludeGlobalFacts: true})
	assert.NotContains(t, d, "aggregateRating")
}

func TestLocalBusinessGeo(t *testing.T) {
	s := sitetest.Fixture()
	assert.Contains(t, LocalBusiness(s, IdentityOptions{}), "geo")

	s.Geo = &types.GeoCoordinates{}
	assert.NotContains(t, LocalBusiness(s, IdentityOptions{}), "geo")

	s.Geo = nil
	assert.NotContains(t, LocalBusiness(s, IdentityOptions{}), "geo")
}

func TestLocalBusinessLocalizedToArea(t *testing.T) {
	s := sitetest.Fixture()
	area := site.AreaBySlug(s, sitetest.Chicopee)
	d := LocalBusiness(s, IdentityOptions{Area: area})

	addr := d["address"].(Document)
	assert.Equal(t, "Chicopee", addr["addressLocality"])
	assert.Equal(t, "12 Mill Street", addr["streetAddress"])
	assert.Equal(t, []Document{{"@type": "City", "name": "Chicopee, MA"}}, d["areaServed"])
	assert.Equal(t, "https://summitroofing.example/#organization", d["@id"])
	assert.Equal(t, Document{"@type": "ImageObject", "url": "https://summitroofing.example/images/logo.png"}, d["logo"])
	assert.NotContains(t, d, "image")
}

func TestOfferForms(t *testing.T) {
	tests := []struct {
		name      string
		svc       types.Service
		wantNil   bool
		wantSpec  bool
		wantPrice string
	}{
		{"none", types.Service{Name: "Inspection"}, true, false, ""},
		{"text range", types.Service{PriceRange: "$450-$1,200"}, false, false, "$450-$1,200"},
		{"numeric range", types.Service{PriceMin: sitetest.Float(800), PriceMax: sitetest.Float(2400)}, false, true, ""},
		{"numeric wins over text", types.Service{PriceRange: "from $800", PriceMin: sitetest.Float(800), PriceMax: sitetest.Float(2400)}, false, true, ""},
		{"minimum only uses text", types.Service{PriceRange: "from $800", PriceMin: sitetest.Float(800)}, false, false, "from $800"},
		{"inverted range uses text", types.Service{PriceRange: "call us", PriceMin: sitetest.Float(900), PriceMax: sitetest.Float(100)}, false, false, "call us"},
		{"malformed currency", types.Service{PriceRange: "$450", PriceCurrency: "DOLLARS"}, false, false, "$450"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Offer(&tt.svc)
			if tt.wantNil {
				assert.Nil(t, o)
				return
			}
			require.NotNil(t, o)
			_, hasSpec := o["priceSpecification"]
			_, hasPrice := o["price"]
			assert.Equal(t, tt.wantSpec, hasSpec)
			assert.NotEqual(t, hasSpec, hasPrice, "exactly one price form")
			assert.Equal(t, DefaultCurrency, o["priceCurrency"])
			if tt.wantPrice != "" {
				assert.Equal(t, tt.wantPrice, o["price"])
			}
		})
	}
}

func TestOfferKeepsValidCurrency(t *testing.T) {
	o := Offer(&types.Service{PriceRange: "€400", PriceCurrency: "EUR"})
	assert.Equal(t, "EUR", o["priceCurrency"])
}

func TestLocalBusinessDropsMalformedContacts(t *testing.T) {
	s := sitetest.Fixture()
	s.Business.Email = "office"
	s.Social.Instagram = "summitroofing"
	s.Social.YouTube = "https://youtube.com/@summitroofing"

	d := LocalBusiness(s, IdentityOptions{})
	assert.NotContains(t, d, "email")
	assert.Equal(t, []string{"https://facebook.com/summitroofing", "https://youtube.com/@summitroofing"}, d["sameAs"])
	require.NoError(t, Lint(d))
}

func TestServiceProviderHasNoRating(t *testing.T) {
	s := sitetest.Fixture()
	svc := site.ServiceBySlug(s, sitetest.RoofRepair)
	d := Service(s, svc, site.AreaBySlug(s, sitetest.Springfield))

	assert.Equal(t, "https://summitroofing.example/locations/springfield/roof-repair", d["url"])
	provider := d["provider"].(Document)
	assert.NotContains(t, provider, "aggregateRating")
	assert.Equal(t, Document{"@type": "City", "name": "Springfield, MA"}, d["areaServed"])
}

func TestFAQ(t *testing.T) {
	_, ok := FAQ(nil)
	assert.False(t, ok)

	_, ok = FAQ([]types.FAQ{{Question: "Open on Sundays?", Answer: " "}})
	assert.False(t, ok)

	d, ok := FAQ([]types.FAQ{
		{Question: "Open on Sundays?", Answer: "No."},
		{Question: "", Answer: "Orphan answer."},
	})
	require.True(t, ok)
	assert.Len(t, d["mainEntity"], 1)
}

func TestHowTo(t *testing.T) {
	s := sitetest.Fixture()
	d, ok := HowTo(s, site.ServiceBySlug(s, sitetest.RoofRepair))
	require.True(t, ok)
	steps := d["step"].([]Document)
	require.Len(t, steps, 5)
	assert.Equal(t, 1, steps[0]["position"])
	assert.Equal(t, "Inspect", steps[0]["name"])
	assert.Len(t, d["supply"], 4)

	_, ok = HowTo(s, &types.Service{Name: "Cleanup", Process: []types.ProcessStep{{Step: 1}}})
	assert.False(t, ok)
}

func TestImageGallery(t *testing.T) {
	s := sitetest.Fixture()
	d, ok := ImageGallery(s, site.ServiceBySlug(s, sitetest.Gutters))
	require.True(t, ok)
	images := d["image"].([]Document)
	require.Len(t, images, 2)
	assert.Equal(t, "https://summitroofing.example/projects/p1-after.jpg", images[0]["url"])

	_, ok = ImageGallery(s, site.ServiceBySlug(s, sitetest.RoofRepair))
	assert.False(t, ok)
}

func TestOpeningHours(t *testing.T) {
	hours := OpeningHours(&types.BusinessHours{
		Monday:    "07:00-17:00",
		Tuesday:   "closed",
		Wednesday: "",
		Thursday:  "by appointment",
		Friday:    " 08:00 - 16:00 ",
		Saturday:  "08:00-",
	})
	require.Len(t, hours, 2)
	assert.Equal(t, "Monday", hours[0]["dayOfWeek"])
	assert.Equal(t, "Friday", hours[1]["dayOfWeek"])
	assert.Equal(t, "08:00", hours[1]["opens"])
	assert.Equal(t, "16:00", hours[1]["closes"])

	assert.Nil(t, OpeningHours(nil))
}

func TestCrumbs(t *testing.T) {
	s := sitetest.Fixture()
	crumbs := Crumbs(s, candidate(t, s, "/locations/springfield/roof-repair"))
	assert.Equal(t, []Crumb{
		{"Home", "https://summitroofing.example/"},
		{"Locations", "https://summitroofing.example/locations"},
		{"Springfield", "https://summitroofing.example/locations/springfield"},
		{"Roof Repair", "https://summitroofing.example/locations/springfield/roof-repair"},
	}, crumbs)

	assert.Nil(t, Crumbs(s, types.PageCandidate{Type: types.PageHome}))
	_, ok := Breadcrumb(nil)
	assert.False(t, ok)
}

func TestPerson(t *testing.T) {
	s := sitetest.Fixture()
	d, ok := Person(s)
	require.True(t, ok)
	assert.Equal(t, "Dana Whitfield", d["name"])

	s.About.Owner = nil
	_, ok = Person(s)
	assert.False(t, ok)
}

func TestLintAcceptsEveryPage(t *testing.T) {
	s := sitetest.Fixture()
	for _, c := range enumerate.Candidates(s) {
		for _, d := range ForPage(s, c, types.PageHome) {
			assert.NoError(t, Lint(d), "%s %s", c.Route(), d.Type())
			_, err := json.Marshal(d)
			assert.NoError(t, err)
		}
	}
}

func TestLintRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"missing type", Document{"@context": Context, "name": "Summit"}},
		{"placeholder", Document{"@context": Context, "@type": "LocalBusiness", "name": "TODO"}},
		{"blank string", Document{"@context": Context, "@type": "LocalBusiness", "name": "  "}},
		{"empty array", Document{"@context": Context, "@type": "LocalBusiness", "sameAs": []string{}}},
		{"empty object", Document{"@context": Context, "@type": "LocalBusiness", "geo": Document{}}},
		{"service without provider", Document{"@context": Context, "@type": "Service", "name": "Roof Repair"}},
		{"faq without questions", Document{"@context": Context, "@type": "FAQPage"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Lint(tt.doc)
			require.Error(t, err)
			var lerr *LintError
			require.True(t, errors.As(err, &lerr))
			assert.NotEmpty(t, lerr.Problems)
		})
	}
}

func TestPrimaryIdentityPage(t *testing.T) {
	assert.Equal(t, types.PageAbout, PrimaryIdentityPage(types.PageAbout))
	assert.Equal(t, types.PageHome, PrimaryIdentityPage(""))
	assert.Equal(t, types.PageHome, PrimaryIdentityPage(types.PageService))
}
