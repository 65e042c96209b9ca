// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package predicate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/sitegate/internal/sitetest"
	"github.com/pdiddy/sitegate/pkg/types"
)

func TestHasValidGeo(t *testing.T) {
	tests := []struct {
		name string
		geo  *types.GeoCoordinates
		want bool
	}{
		{"nil", nil, false},
		{"zero placeholder", &types.GeoCoordinates{}, false},
		{"zero latitude", &types.GeoCoordinates{Latitude: 0, Longitude: -72.5}, false},
		{"NaN", &types.GeoCoordinates{Latitude: math.NaN(), Longitude: -72.5}, false},
		{"infinite", &types.GeoCoordinates{Latitude: 42.1, Longitude: math.Inf(1)}, false},
		{"latitude out of range", &types.GeoCoordinates{Latitude: 123, Longitude: -72.5}, false},
		{"longitude out of range", &types.GeoCoordinates{Latitude: 42.1, Longitude: -200}, false},
		{"real coordinates", &types.GeoCoordinates{Latitude: 42.1015, Longitude: -72.5898}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasValidGeo(tt.geo))
		})
	}
}

func TestValidAggregate(t *testing.T) {
	tests := []struct {
		name string
		agg  *types.AggregateReview
		want bool
	}{
		{"nil", nil, false},
		{"too few reviews", &types.AggregateReview{TotalReviews: 3, AverageRating: 4.9}, false},
		{"exactly five", &types.AggregateReview{TotalReviews: 5, AverageRating: 4.9}, true},
		{"zero average", &types.AggregateReview{TotalReviews: 10, AverageRating: 0}, false},
		{"above five", &types.AggregateReview{TotalReviews: 10, AverageRating: 5.1}, false},
		{"lower bound", &types.AggregateReview{TotalReviews: 10, AverageRating: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAggregate(tt.agg))
		})
	}
}

func TestHasValidAggregateRatingDerivesFromPlatforms(t *testing.T) {
	s := sitetest.Fixture()
	assert.True(t, HasValidAggregateRating(s.Reviews))

	agg := s.Reviews.Combined()
	assert.Equal(t, 208, agg.TotalReviews)
	assert.InDelta(t, 4.8, agg.AverageRating, 1e-9)

	s.Reviews = types.Reviews{Google: &types.ReviewPlatform{ReviewCount: 4, Rating: 5}}
	assert.False(t, HasValidAggregateRating(s.Reviews))

	// An out-of-range platform rating is left out of the derived aggregate.
	s.Reviews = types.Reviews{
		Google: &types.ReviewPlatform{ReviewCount: 10, Rating: 4.5},
		Yelp:   &types.ReviewPlatform{ReviewCount: 90, Rating: 9},
	}
	agg = s.Reviews.Combined()
	assert.Equal(t, 10, agg.TotalReviews)
	assert.InDelta(t, 4.5, agg.AverageRating, 1e-9)
}

func TestHasLocalProof(t *testing.T) {
	full := func() *types.ServiceArea {
		return &types.ServiceArea{
			County:         "Hampden",
			Neighborhoods:  []string{"Forest Park", "McKnight"},
			LocalParagraph: sitetest.Words(50),
		}
	}
	tests := []struct {
		name   string
		mutate func(a *types.ServiceArea)
		want   bool
	}{
		{"complete", func(a *types.ServiceArea) {}, true},
		{"49 words", func(a *types.ServiceArea) { a.LocalParagraph = sitetest.Words(49) }, false},
		{"no county", func(a *types.ServiceArea) { a.County = "  " }, false},
		{"one neighborhood", func(a *types.ServiceArea) { a.Neighborhoods = a.Neighborhoods[:1] }, false},
		{"landmarks instead", func(a *types.ServiceArea) {
			a.Neighborhoods = nil
			a.Landmarks = []string{"Armory", "Quadrangle"}
		}, true},
		{"blank entries", func(a *types.ServiceArea) {
			a.Neighborhoods = []string{"", " "}
			a.Landmarks = []string{"Armory", "\t"}
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := full()
			tt.mutate(a)
			assert.Equal(t, tt.want, HasLocalProof(a))
		})
	}
	assert.False(t, HasLocalProof(nil))
}

func TestPricingAndDuration(t *testing.T) {
	tests := []struct {
		name       string
		svc        *types.Service
		pricing    bool
		both       bool
		numericAll bool
	}{
		{"nil", nil, false, false, false},
		{"text range and duration", &types.Service{PriceRange: "$450-$1,200", Duration: "1 day"}, true, true, false},
		{"price without duration", &types.Service{PriceRange: "$450-$1,200"}, true, false, false},
		{"minimum only", &types.Service{PriceMin: sitetest.Float(100), Duration: "2 hours"}, true, true, false},
		{"numeric range", &types.Service{PriceMin: sitetest.Float(100), PriceMax: sitetest.Float(300)}, true, false, true},
		{"inverted range", &types.Service{PriceMin: sitetest.Float(300), PriceMax: sitetest.Float(100)}, true, false, false},
		{"negative minimum", &types.Service{PriceMin: sitetest.Float(-1), PriceMax: sitetest.Float(100), Duration: "1 day"}, false, false, false},
		{"duration only", &types.Service{Duration: "1 day"}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pricing, HasPricing(tt.svc))
			assert.Equal(t, tt.both, HasPricingAndDuration(tt.svc))
			assert.Equal(t, tt.numericAll, HasNumericPriceRange(tt.svc))
		})
	}
}

func TestTrustSignals(t *testing.T) {
	s := sitetest.Fixture()
	assert.Equal(t, 5, TrustSignalCount(s))
	assert.True(t, HasTrustSignals(s))

	s.TrustSignals.License = nil
	s.TrustSignals.Insurance = nil
	assert.Equal(t, 3, TrustSignalCount(s))
	assert.True(t, HasTrustSignals(s))

	s.Business.FoundingDate = ""
	assert.False(t, HasTrustSignals(s))
}

func TestWordAndCharCount(t *testing.T) {
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 3, WordCount(" ice  dams\nform "))
	assert.Equal(t, 50, WordCount(sitetest.Words(50)))
	assert.Equal(t, 4, CharCount("  café "))
}

func TestNonBlank(t *testing.T) {
	assert.Equal(t, 0, NonBlank(nil))
	assert.Equal(t, 0, NonBlank([]string{"", " ", "\t"}))
	assert.Equal(t, 2, NonBlank([]string{"Forest Park", "", "McKnight"}))
}

func TestValidEmailAndURL(t *testing.T) {
	assert.True(t, ValidEmail("office@summitroofing.example"))
	assert.False(t, ValidEmail("office"))
	assert.False(t, ValidEmail(""))

	assert.True(t, ValidURL("https://facebook.com/summitroofing"))
	assert.False(t, ValidURL("summitroofing"))
	assert.Equal(t,
		[]string{"https://facebook.com/summitroofing"},
		ValidURLs([]string{"summitroofing", "https://facebook.com/summitroofing", ""}))
	assert.Nil(t, ValidURLs(nil))
}
