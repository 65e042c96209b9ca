// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import "github.com/pdiddy/sitegate/pkg/types"

// ServiceBySlug returns the catalog entry with the given slug, or nil.
func ServiceBySlug(s *types.Site, slug string) *types.Service {
	for i := range s.Services {
		if s.Services[i].Slug == slug {
			return &s.Services[i]
		}
	}
	return nil
}

// AreaBySlug returns the service area with the given slug, or nil.
func AreaBySlug(s *types.Site, slug string) *types.ServiceArea {
	for i := range s.ServiceAreas {
		if s.ServiceAreas[i].Slug == slug {
			return &s.ServiceAreas[i]
		}
	}
	return nil
}

// TotalPages returns the candidate cardinality:
// home + services + areas + areas×services + about + contact.
func TotalPages(s *types.Site) int {
	nS, nA := len(s.Services), len(s.ServiceAreas)
	return 1 + nS + nA + nA*nS + 2
}

// Certifications returns trust-signal and about-page certifications,
// de-duplicated, trust signals first.
func Certifications(s *types.Site) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range [][]string{s.TrustSignals.Certifications, s.About.Certifications} {
		for _, c := range list {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Projects returns the gallery projects of a service, or nil when the
// service is not gallery-eligible.
func Projects(s *types.Site, svc *types.Service) []types.Project {
	if svc == nil || !svc.ShowProjects {
		return nil
	}
	return s.Projects[svc.Slug]
}
