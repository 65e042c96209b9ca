// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package predicate holds pure boolean tests over single facts of the
// business profile and its catalogs. Predicates never fail: missing or
// malformed data simply makes them false.
package predicate

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/sitegate/pkg/types"
)

var fields = validator.New()

const (
	// MinReviews is the smallest review count whose aggregate may be shown.
	MinReviews = 5

	// MinLocalParagraphWords is the local-paragraph length that counts as
	// real local detail.
	MinLocalParagraphWords = 50

	// MinLocalItems is how many neighborhoods or landmarks make local proof.
	MinLocalItems = 2

	// MinTrustSignals is how many hard-trust facts make a trustworthy profile.
	MinTrustSignals = 3
)

// HasValidGeo reports whether geo is set, finite, in range, and not the
// (0,0) placeholder. A single zero coordinate also counts as unset.
func HasValidGeo(geo *types.GeoCoordinates) bool {
	if geo == nil {
		return false
	}
	if !finite(geo.Latitude) || !finite(geo.Longitude) {
		return false
	}
	if math.Abs(geo.Latitude) > 90 || math.Abs(geo.Longitude) > 180 {
		return false
	}
	return geo.Latitude != 0 && geo.Longitude != 0
}

// HasValidAggregateRating reports whether the combined review aggregate has
// at least MinReviews reviews and an average in [1,5].
func HasValidAggregateRating(reviews types.Reviews) bool {
	return ValidAggregate(reviews.Combined())
}

// ValidAggregate applies the aggregate-rating rule to a single aggregate.
func ValidAggregate(agg *types.AggregateReview) bool {
	if agg == nil {
		return false
	}
	if !finite(agg.AverageRating) {
		return false
	}
	return agg.TotalReviews >= MinReviews && agg.AverageRating >= 1 && agg.AverageRating <= 5
}

// HasLocalProof reports whether an area carries enough local detail to be
// indexed: a county, 2+ neighborhoods or 2+ landmarks, and a local
// paragraph of 50+ words.
func HasLocalProof(area *types.ServiceArea) bool {
	if area == nil {
		return false
	}
	if strings.TrimSpace(area.County) == "" {
		return false
	}
	if NonBlank(area.Neighborhoods) < MinLocalItems && NonBlank(area.Landmarks) < MinLocalItems {
		return false
	}
	return WordCount(area.LocalParagraph) >= MinLocalParagraphWords
}

// HasPricing reports whether a service has any price signal.
func HasPricing(svc *types.Service) bool {
	if svc == nil {
		return false
	}
	return strings.TrimSpace(svc.PriceRange) != "" || validPrice(svc.PriceMin)
}

// HasDuration reports whether a service states a duration estimate.
func HasDuration(svc *types.Service) bool {
	return svc != nil && strings.TrimSpace(svc.Duration) != ""
}

// HasPricingAndDuration reports whether a service is ready for automated
// summarization: a price signal and a duration.
func HasPricingAndDuration(svc *types.Service) bool {
	return HasPricing(svc) && HasDuration(svc)
}

// HasNumericPriceRange reports whether both numeric price bounds are set,
// non-negative, and ordered.
func HasNumericPriceRange(svc *types.Service) bool {
	if svc == nil || !validPrice(svc.PriceMin) || !validPrice(svc.PriceMax) {
		return false
	}
	return *svc.PriceMin <= *svc.PriceMax
}

func validPrice(p *float64) bool {
	return p != nil && finite(*p) && *p >= 0
}

// ValidEmail reports whether s is a well-formed email address.
func ValidEmail(s string) bool {
	return fields.Var(s, "required,email") == nil
}

// ValidURL reports whether s is an absolute URL.
func ValidURL(s string) bool {
	return fields.Var(s, "required,url") == nil
}

// ValidURLs keeps the well-formed entries of urls, in order.
func ValidURLs(urls []string) []string {
	var out []string
	for _, u := range urls {
		if ValidURL(u) {
			out = append(out, u)
		}
	}
	return out
}

// HasLicense reports whether a license display string is configured.
func HasLicense(s *types.Site) bool {
	l := s.TrustSignals.License
	return l != nil && strings.TrimSpace(l.Display) != ""
}

// HasInsurance reports whether insurance coverage is configured.
func HasInsurance(s *types.Site) bool {
	ins := s.TrustSignals.Insurance
	return ins != nil && strings.TrimSpace(ins.Coverage) != ""
}

// HasFoundingYear reports whether a founding year is configured.
func HasFoundingYear(s *types.Site) bool {
	return strings.TrimSpace(s.Business.FoundingDate) != ""
}

// HasOwnerName reports whether the owner is named.
func HasOwnerName(s *types.Site) bool {
	o := s.About.Owner
	return o != nil && strings.TrimSpace(o.Name) != ""
}

// TrustSignalCount counts the hard-trust facts present on the profile.
func TrustSignalCount(s *types.Site) int {
	n := 0
	for _, ok := range []bool{
		HasLicense(s),
		HasInsurance(s),
		HasFoundingYear(s),
		HasValidAggregateRating(s.Reviews),
		HasOwnerName(s),
	} {
		if ok {
			n++
		}
	}
	return n
}

// HasTrustSignals reports whether at least 3 of license, insurance, founding
// year, valid aggregate rating, and owner name are present.
func HasTrustSignals(s *types.Site) bool {
	return TrustSignalCount(s) >= MinTrustSignals
}

// HasLogo reports whether a logo URL is configured.
func HasLogo(s *types.Site) bool {
	return strings.TrimSpace(s.Business.Logo) != ""
}

// HasImage reports whether a primary image is configured.
func HasImage(s *types.Site) bool {
	return strings.TrimSpace(s.Business.Image) != ""
}

// NonBlank counts the entries of list that are not empty or whitespace.
func NonBlank(list []string) int {
	n := 0
	for _, item := range list {
		if strings.TrimSpace(item) != "" {
			n++
		}
	}
	return n
}

// WordCount counts whitespace-delimited words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharCount counts characters (runes) after trimming surrounding space.
func CharCount(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
