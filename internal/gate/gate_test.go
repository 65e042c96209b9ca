// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sitegate/internal/site"
	"github.com/pdiddy/sitegate/internal/sitetest"
	"github.com/pdiddy/sitegate/pkg/types"
)

func combo(s *types.Site, area, svc string) types.PageCandidate {
	return types.PageCandidate{
		Type:    types.PageCombo,
		Area:    site.AreaBySlug(s, area),
		Service: site.ServiceBySlug(s, svc),
	}
}

func TestEvaluateFixture(t *testing.T) {
	s := sitetest.Fixture()

	tests := []struct {
		name      string
		candidate types.PageCandidate
		index     bool
		reasons   []types.ReasonCode
	}{
		{"home", types.PageCandidate{Type: types.PageHome}, true, nil},
		{"springfield", types.PageCandidate{Type: types.PageLocation, Area: site.AreaBySlug(s, sitetest.Springfield)}, true, nil},
		{"chicopee", types.PageCandidate{Type: types.PageLocation, Area: site.AreaBySlug(s, sitetest.Chicopee)}, false,
			[]types.ReasonCode{types.ReasonNoLocalProof}},
		{"springfield gutters", combo(s, sitetest.Springfield, sitetest.Gutters), true, nil},
		{"chicopee roof repair", combo(s, sitetest.Chicopee, sitetest.RoofRepair), false,
			[]types.ReasonCode{types.ReasonNoLocalProof}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(s, tt.candidate)
			assert.True(t, v.Generate)
			assert.Equal(t, tt.index, v.Index)
			assert.Equal(t, tt.index, v.Score.ShouldIndex)
			assert.Equal(t, tt.reasons, v.Reasons)
		})
	}
}

func TestPriceWithoutDurationBlocksService(t *testing.T) {
	s := sitetest.Fixture()
	svc := site.ServiceBySlug(s, sitetest.RoofRepair)
	require.True(t, ShouldIndexService(s, svc))

	svc.Duration = ""
	v := Evaluate(s, types.PageCandidate{Type: types.PageService, Service: svc})
	// 17 points still clears the service minimum of 8.
	assert.Equal(t, 17, v.Score.Total)
	assert.False(t, v.Index)
	assert.False(t, ShouldIndexService(s, svc))
	assert.Equal(t, []types.ReasonCode{types.ReasonNoPricingDuration}, v.Reasons)
	assert.Contains(t, v.Score.Warnings[len(v.Score.Warnings)-1], "price signal and a duration")

	// The combo page inherits the same gate.
	assert.False(t, ShouldIndexCombo(s, site.AreaBySlug(s, sitetest.Springfield), svc))
}

func TestComboIndexMatchesScoreWhenGatesPass(t *testing.T) {
	s := sitetest.Fixture()
	s.ContentRequirements.MinimumIndexScore = 23

	assert.True(t, Evaluate(s, combo(s, sitetest.Springfield, sitetest.RoofRepair)).Index)

	v := Evaluate(s, combo(s, sitetest.Springfield, sitetest.Gutters))
	assert.Equal(t, 22, v.Score.Total)
	assert.False(t, v.Index)
	assert.Equal(t, []types.ReasonCode{types.ReasonBelowMinimum}, v.Reasons)
}

func TestOptOuts(t *testing.T) {
	s := sitetest.Fixture()
	site.ServiceBySlug(s, sitetest.RoofRepair).Index = sitetest.Bool(false)
	site.AreaBySlug(s, sitetest.Springfield).Index = sitetest.Bool(false)

	v := Evaluate(s, types.PageCandidate{Type: types.PageService, Service: site.ServiceBySlug(s, sitetest.RoofRepair)})
	assert.False(t, v.Index)
	assert.True(t, v.Generate)
	assert.Equal(t, []types.ReasonCode{types.ReasonServiceOptOut}, v.Reasons)

	assert.False(t, ShouldIndexLocation(s, site.AreaBySlug(s, sitetest.Springfield)))

	v = Evaluate(s, combo(s, sitetest.Springfield, sitetest.RoofRepair))
	assert.Equal(t, []types.ReasonCode{types.ReasonServiceOptOut, types.ReasonAreaOptOut}, v.Reasons)

	site.AreaBySlug(s, sitetest.Springfield).Index = sitetest.Bool(true)
	assert.True(t, ShouldIndexLocation(s, site.AreaBySlug(s, sitetest.Springfield)))
}

func TestComboRequirements(t *testing.T) {
	tests := []struct {
		name string
		req  types.ComboPageRequirements
		want bool
	}{
		{"none", types.ComboPageRequirements{}, true},
		{"neighborhoods met", types.ComboPageRequirements{MinNeighborhoods: 5}, true},
		{"neighborhoods short", types.ComboPageRequirements{MinNeighborhoods: 6}, false},
		{"landmarks satisfy either", types.ComboPageRequirements{MinNeighborhoods: 6, MinLandmarks: 5}, true},
		{"both short", types.ComboPageRequirements{MinNeighborhoods: 6, MinLandmarks: 6}, false},
		{"local paragraph present", types.ComboPageRequirements{RequireLocalParagraph: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sitetest.Fixture()
			s.ContentRequirements.ComboPage = tt.req
			v := Evaluate(s, combo(s, sitetest.Springfield, sitetest.RoofRepair))
			assert.Equal(t, tt.want, v.Index)
			if !tt.want {
				assert.Equal(t, []types.ReasonCode{types.ReasonComboRequirements}, v.Reasons)
			}
		})
	}
}

func TestComboRequirementsIgnoreBlankEntries(t *testing.T) {
	s := sitetest.Fixture()
	area := site.AreaBySlug(s, sitetest.Springfield)
	area.Neighborhoods = append(area.Neighborhoods, "", " ")
	s.ContentRequirements.ComboPage = types.ComboPageRequirements{MinNeighborhoods: 6}

	v := Evaluate(s, combo(s, sitetest.Springfield, sitetest.RoofRepair))
	assert.False(t, v.Index)
	assert.Equal(t, []types.ReasonCode{types.ReasonComboRequirements}, v.Reasons)
}

func TestBlankLocalEntriesAreNotProof(t *testing.T) {
	s := sitetest.Fixture()
	area := site.AreaBySlug(s, sitetest.Springfield)
	area.Neighborhoods = []string{"", " "}
	area.Landmarks = nil

	v := Evaluate(s, types.PageCandidate{Type: types.PageLocation, Area: area})
	assert.False(t, v.Index)
	assert.Contains(t, v.Reasons, types.ReasonNoLocalProof)
	assert.False(t, ShouldIndexCombo(s, area, site.ServiceBySlug(s, sitetest.RoofRepair)))
}

func TestComboRequirementsDoNotAffectLocationPages(t *testing.T) {
	s := sitetest.Fixture()
	s.ContentRequirements.ComboPage = types.ComboPageRequirements{MinNeighborhoods: 10, MinLandmarks: 10}
	assert.True(t, ShouldIndexLocation(s, site.AreaBySlug(s, sitetest.Springfield)))
	assert.False(t, ShouldIndexCombo(s, site.AreaBySlug(s, sitetest.Springfield), site.ServiceBySlug(s, sitetest.RoofRepair)))
}

func TestBelowFloorIsNeverIndexed(t *testing.T) {
	s := &types.Site{Business: types.Business{Name: "New Co"}}
	v := Evaluate(s, types.PageCandidate{Type: types.PageContact})
	assert.False(t, v.Generate)
	assert.False(t, v.Index)
	assert.False(t, v.Priority)
	assert.Equal(t, []types.ReasonCode{types.ReasonBelowFloor, types.ReasonBelowMinimum}, v.Reasons)
}

func TestApplyKeepsScoreWarnings(t *testing.T) {
	s := sitetest.Fixture()
	c := types.PageCandidate{Type: types.PageLocation, Area: site.AreaBySlug(s, sitetest.Chicopee)}
	score := types.ContentScore{
		Total: 11, MaxTotal: 16, Minimum: 7,
		ShouldGenerate: true, ShouldIndex: true,
		Warnings: []string{"existing"},
	}
	v := Apply(s, c, score)
	require.Len(t, v.Score.Warnings, 2)
	assert.Equal(t, "existing", v.Score.Warnings[0])
	assert.Equal(t, []string{"existing"}, score.Warnings)
	assert.Empty(t, HardRequirements(s, types.PageCandidate{Type: types.PageAbout}))
}
