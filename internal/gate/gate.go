// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gate turns a content score into a final generate/index/priority
// verdict. Hard requirements are ANDed with the score threshold: a page that
// scores well on generic trust signals is still noindexed when it lacks the
// page-specific detail that keeps it from being thin or duplicate.
package gate

import (
	"fmt"

	"github.com/pdiddy/sitegate/internal/predicate"
	"github.com/pdiddy/sitegate/internal/scoring"
	"github.com/pdiddy/sitegate/pkg/types"
)

// Evaluate scores a candidate and applies the gate.
func Evaluate(s *types.Site, c types.PageCandidate) types.Verdict {
	return Apply(s, c, scoring.Score(s, c))
}

// Apply applies the hard requirements for c's page type to an existing score.
func Apply(s *types.Site, c types.PageCandidate, score types.ContentScore) types.Verdict {
	warnings := append([]string{}, score.Warnings...)
	var reasons []types.ReasonCode

	if !score.ShouldGenerate {
		reasons = append(reasons, types.ReasonBelowFloor)
	}
	if !score.ShouldIndex {
		reasons = append(reasons, types.ReasonBelowMinimum)
	}

	hard := HardRequirements(s, c)
	for _, h := range hard {
		reasons = append(reasons, h.Reason)
		warnings = append(warnings, h.Message)
	}

	score.Warnings = warnings
	index := score.ShouldGenerate && score.ShouldIndex && len(hard) == 0
	score.ShouldIndex = index

	return types.Verdict{
		Candidate: c,
		Score:     score,
		Generate:  score.ShouldGenerate,
		Index:     index,
		Priority:  score.IsPriority,
		Reasons:   reasons,
	}
}

// Failure is one unmet hard requirement.
type Failure struct {
	Reason  types.ReasonCode
	Message string
}

// HardRequirements returns the hard requirements c fails, independent of its
// score. An empty result means the hard gate passes.
func HardRequirements(s *types.Site, c types.PageCandidate) []Failure {
	var out []Failure

	if c.Service != nil && !c.Service.Indexable() {
		out = append(out, Failure{types.ReasonServiceOptOut,
			fmt.Sprintf("service %q is marked index: false", c.Service.Slug)})
	}
	if c.Area != nil && !c.Area.Indexable() {
		out = append(out, Failure{types.ReasonAreaOptOut,
			fmt.Sprintf("area %q is marked index: false", c.Area.Slug)})
	}

	switch c.Type {
	case types.PageLocation:
		out = append(out, localProof(c.Area)...)
	case types.PageService:
		out = append(out, pricing(c.Service)...)
	case types.PageCombo:
		out = append(out, localProof(c.Area)...)
		out = append(out, pricing(c.Service)...)
		out = append(out, comboRequirements(c.Area, s.ContentRequirements.ComboPage)...)
	}
	return out
}

func localProof(area *types.ServiceArea) []Failure {
	if predicate.HasLocalProof(area) {
		return nil
	}
	slug := ""
	if area != nil {
		slug = area.Slug
	}
	return []Failure{{types.ReasonNoLocalProof,
		fmt.Sprintf("area %q lacks local proof (county, 2+ neighborhoods or landmarks, %d+ word local paragraph)",
			slug, predicate.MinLocalParagraphWords)}}
}

func pricing(svc *types.Service) []Failure {
	if predicate.HasPricingAndDuration(svc) {
		return nil
	}
	slug := ""
	if svc != nil {
		slug = svc.Slug
	}
	return []Failure{{types.ReasonNoPricingDuration,
		fmt.Sprintf("service %q needs both a price signal and a duration", slug)}}
}

func comboRequirements(area *types.ServiceArea, req types.ComboPageRequirements) []Failure {
	if area == nil {
		return nil
	}
	if req.MinNeighborhoods > 0 || req.MinLandmarks > 0 {
		ok := (req.MinNeighborhoods > 0 && predicate.NonBlank(area.Neighborhoods) >= req.MinNeighborhoods) ||
			(req.MinLandmarks > 0 && predicate.NonBlank(area.Landmarks) >= req.MinLandmarks)
		if !ok {
			return []Failure{{types.ReasonComboRequirements,
				fmt.Sprintf("area %q has fewer than %d neighborhoods and %d landmarks required for combo pages",
					area.Slug, req.MinNeighborhoods, req.MinLandmarks)}}
		}
	}
	if req.RequireLocalParagraph && predicate.WordCount(area.LocalParagraph) < predicate.MinLocalParagraphWords {
		return []Failure{{types.ReasonComboRequirements,
			fmt.Sprintf("area %q needs a local paragraph for combo pages", area.Slug)}}
	}
	return nil
}

// ShouldIndexService reports the final index decision for a service page.
func ShouldIndexService(s *types.Site, svc *types.Service) bool {
	return Evaluate(s, types.PageCandidate{Type: types.PageService, Service: svc}).Index
}

// ShouldIndexLocation reports the final index decision for a location page.
func ShouldIndexLocation(s *types.Site, area *types.ServiceArea) bool {
	return Evaluate(s, types.PageCandidate{Type: types.PageLocation, Area: area}).Index
}

// ShouldIndexCombo reports the final index decision for a combo page.
func ShouldIndexCombo(s *types.Site, area *types.ServiceArea, svc *types.Service) bool {
	return Evaluate(s, types.PageCandidate{Type: types.PageCombo, Area: area, Service: svc}).Index
}
