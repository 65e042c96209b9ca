// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsonld

import (
	"strings"

	"github.com/pdiddy/sitegate/pkg/types"
)

// FAQ builds an FAQ collection. Entries missing a question or an answer are
// dropped; with nothing left it reports false and no document.
func FAQ(faqs []types.FAQ) (Document, bool) {
	var questions []Document
	for _, f := range faqs {
		if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
			continue
		}
		questions = append(questions, Document{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": Document{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	if len(questions) == 0 {
		return nil, false
	}
	return Document{
		"@context":   Context,
		"@type":      "FAQPage",
		"mainEntity": questions,
	}, true
}

// Crumb is one breadcrumb step. URL is absolute.
type Crumb struct {
	Name string
	URL  string
}

// Breadcrumb builds a breadcrumb trail. An empty trail reports false.
func Breadcrumb(items []Crumb) (Document, bool) {
	if len(items) == 0 {
		return nil, false
	}
	list := make([]Document, 0, len(items))
	for i, it := range items {
		list = append(list, Document{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.URL,
		})
	}
	return Document{
		"@context":        Context,
		"@type":           "BreadcrumbList",
		"itemListElement": list,
	}, true
}

// Crumbs returns the breadcrumb trail of a candidate page. The home page has
// no trail.
func Crumbs(s *types.Site, c types.PageCandidate) []Crumb {
	base := s.BaseURL()
	home := Crumb{"Home", base + "/"}
	switch c.Type {
	case types.PageService:
		return []Crumb{home,
			{"Services", base + "/services"},
			{c.Service.Name, PageURL(s, c)},
		}
	case types.PageLocation:
		return []Crumb{home,
			{"Locations", base + "/locations"},
			{c.Area.City, PageURL(s, c)},
		}
	case types.PageCombo:
		loc := types.PageCandidate{Type: types.PageLocation, Area: c.Area}
		return []Crumb{home,
			{"Locations", base + "/locations"},
			{c.Area.City, PageURL(s, loc)},
			{c.Service.Name, PageURL(s, c)},
		}
	case types.PageAbout:
		return []Crumb{home, {"About", PageURL(s, c)}}
	case types.PageContact:
		return []Crumb{home, {"Contact", PageURL(s, c)}}
	}
	return nil
}

// Person builds the owner's person document. It reports false when the
// owner is not named.
func Person(s *types.Site) (Document, bool) {
	o := s.About.Owner
	if o == nil || strings.TrimSpace(o.Name) == "" {
		return nil, false
	}
	d := Document{
		"@context": Context,
		"@type":    "Person",
		"name":     o.Name,
		"worksFor": Document{
			"@type": "Organization",
			"@id":   orgID(s),
			"name":  s.Business.Name,
		},
	}
	put(d, "jobTitle", o.Title)
	put(d, "description", o.Bio)
	put(d, "telephone", s.Business.Phone)
	if strings.TrimSpace(o.Image) != "" {
		d["image"] = absURL(s.BaseURL(), o.Image)
	}

	var creds []Document
	for _, c := range o.Credentials {
		if strings.TrimSpace(c) != "" {
			creds = append(creds, Document{"@type": "EducationalOccupationalCredential", "name": c})
		}
	}
	if len(creds) > 0 {
		d["hasCredential"] = creds
	}
	return d, true
}
