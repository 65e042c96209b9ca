// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sitegate/internal/site"
	"github.com/pdiddy/sitegate/internal/sitetest"
	"github.com/pdiddy/sitegate/pkg/types"
)

func TestCategoryMax(t *testing.T) {
	tests := []struct {
		category types.Category
		page     types.PageType
		want     int
	}{
		{types.CategoryHardTrust, types.PageContact, 10},
		{types.CategoryLocalProof, types.PageLocation, 5},
		{types.CategoryLocalProof, types.PageService, 0},
		{types.CategoryExpertise, types.PageCombo, 4},
		{types.CategoryUniqueContent, types.PageCombo, 3},
		{types.CategoryUniqueContent, types.PageLocation, 1},
		{types.CategoryAICitation, types.PageService, 2},
		{types.CategoryPageSpecific, types.PageHome, 5},
		{types.CategoryPageSpecific, types.PageAbout, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.category)+"/"+string(tt.page), func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryMax(tt.category, tt.page))
		})
	}
}

func TestTableIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, it := range Table() {
		assert.False(t, seen[it.ID], "duplicate item %s", it.ID)
		seen[it.ID] = true
		assert.NotEmpty(t, it.AppliesTo, it.ID)
		assert.Positive(t, it.Points, it.ID)
	}
}

func TestMinimum(t *testing.T) {
	assert.Equal(t, 10, Minimum(types.PageHome, types.ContentRequirements{}))
	assert.Equal(t, 7, Minimum(types.PageCombo, types.ContentRequirements{}))
	assert.Equal(t, 12, Minimum(types.PageCombo, types.ContentRequirements{MinimumIndexScore: 12}))
	// A lower configured minimum never loosens the bar.
	assert.Equal(t, 8, Minimum(types.PageService, types.ContentRequirements{MinimumIndexScore: 3}))
}

func TestScoreFixture(t *testing.T) {
	s := sitetest.Fixture()
	rr := site.ServiceBySlug(s, sitetest.RoofRepair)
	gutters := site.ServiceBySlug(s, sitetest.Gutters)
	spr := site.AreaBySlug(s, sitetest.Springfield)
	chi := site.AreaBySlug(s, sitetest.Chicopee)
	require.NotNil(t, rr)
	require.NotNil(t, spr)

	tests := []struct {
		name      string
		candidate types.PageCandidate
		total     int
		max       int
		index     bool
	}{
		{"home", types.PageCandidate{Type: types.PageHome}, 11, 15, true},
		{"roof repair", types.PageCandidate{Type: types.PageService, Service: rr}, 18, 18, true},
		{"gutters", types.PageCandidate{Type: types.PageService, Service: gutters}, 16, 18, true},
		{"springfield", types.PageCandidate{Type: types.PageLocation, Area: spr}, 16, 16, true},
		{"chicopee", types.PageCandidate{Type: types.PageLocation, Area: chi}, 11, 16, true},
		{"springfield roof repair", types.PageCandidate{Type: types.PageCombo, Area: spr, Service: rr}, 24, 24, true},
		{"chicopee gutters", types.PageCandidate{Type: types.PageCombo, Area: chi, Service: gutters}, 17, 24, true},
		{"about", types.PageCandidate{Type: types.PageAbout}, 13, 13, true},
		{"contact", types.PageCandidate{Type: types.PageContact}, 10, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := Score(s, tt.candidate)
			assert.Equal(t, tt.total, cs.Total)
			assert.Equal(t, tt.max, cs.MaxTotal)
			assert.Equal(t, tt.index, cs.ShouldIndex)
			assert.True(t, cs.ShouldGenerate)
			assert.True(t, cs.IsPriority)
			assert.NotNil(t, cs.Warnings)
		})
	}
}

func TestScoreComboCategories(t *testing.T) {
	s := sitetest.Fixture()
	c := types.PageCandidate{
		Type:    types.PageCombo,
		Area:    site.AreaBySlug(s, sitetest.Springfield),
		Service: site.ServiceBySlug(s, sitetest.RoofRepair),
	}
	cs := Score(s, c)

	for _, tt := range []struct {
		category types.Category
		points   int
		max      int
	}{
		{types.CategoryHardTrust, 10, 10},
		{types.CategoryLocalProof, 5, 5},
		{types.CategoryExpertise, 4, 4},
		{types.CategoryUniqueContent, 3, 3},
		{types.CategoryAICitation, 2, 2},
		{types.CategoryPageSpecific, 0, 0},
	} {
		points, max := cs.CategoryTotal(tt.category)
		assert.Equal(t, tt.points, points, tt.category)
		assert.Equal(t, tt.max, max, tt.category)
	}
	assert.Empty(t, cs.Suggestions)
}

func TestScoreBreakdownFollowsTableOrder(t *testing.T) {
	s := sitetest.Fixture()
	cs := Score(s, types.PageCandidate{Type: types.PageHome})

	var want []string
	for _, it := range Table() {
		if it.Applies(types.PageHome) {
			want = append(want, it.ID)
		}
	}
	var got []string
	for _, li := range cs.Breakdown {
		got = append(got, li.ID)
	}
	assert.Equal(t, want, got)
}

func TestAboutCertificationsComeFromAboutPage(t *testing.T) {
	s := sitetest.Fixture()
	s.About.Certifications = []string{" "}
	require.NotEmpty(t, s.TrustSignals.Certifications)

	cs := Score(s, types.PageCandidate{Type: types.PageAbout})
	var found bool
	for _, li := range cs.Breakdown {
		if li.ID == "page.certifications" {
			found = true
			assert.False(t, li.Present)
			assert.Zero(t, li.Points)
		}
	}
	assert.True(t, found)
	assert.Equal(t, 12, cs.Total)
}

func TestScoreThinPage(t *testing.T) {
	s := &types.Site{Business: types.Business{Name: "New Co"}}
	cs := Score(s, types.PageCandidate{Type: types.PageContact})

	assert.Equal(t, 0, cs.Total)
	assert.False(t, cs.ShouldGenerate)
	assert.False(t, cs.ShouldIndex)
	assert.False(t, cs.IsPriority)
	assert.Len(t, cs.Warnings, 2)
	assert.Len(t, cs.Suggestions, MaxSuggestions)
}

func TestScoreGenerateFloorIsExclusive(t *testing.T) {
	s := &types.Site{
		Business:     types.Business{Name: "New Co", FoundingDate: "2020"},
		TrustSignals: types.TrustSignals{License: &types.License{Display: "Lic #1"}},
	}
	cs := Score(s, types.PageCandidate{Type: types.PageContact})
	assert.Equal(t, 4, cs.Total)
	assert.True(t, cs.ShouldGenerate)

	s.Business.FoundingDate = ""
	s.About.Owner = &types.Owner{Name: "Sam"}
	s.TrustSignals.License = nil
	cs = Score(s, types.PageCandidate{Type: types.PageContact})
	assert.Equal(t, 2, cs.Total)
	assert.False(t, cs.ShouldGenerate)
}

func TestSuggestionsPreferHigherPoints(t *testing.T) {
	s := sitetest.Fixture()
	s.Services = s.Services[:1]
	s.ServiceAreas = s.ServiceAreas[:1]
	s.DefaultFAQs = nil

	cs := Score(s, types.PageCandidate{Type: types.PageHome})
	require.Len(t, cs.Suggestions, 3)
	assert.Contains(t, cs.Suggestions[0], "3+ services listed")
	assert.Contains(t, cs.Suggestions[1], "3+ service areas listed")
	assert.Contains(t, cs.Suggestions[2], "3+ default FAQs")
}

func TestScoreDeterministic(t *testing.T) {
	s := sitetest.Fixture()
	c := types.PageCandidate{Type: types.PageService, Service: site.ServiceBySlug(s, sitetest.Gutters)}
	assert.Equal(t, Score(s, c), Score(s, c))
}
