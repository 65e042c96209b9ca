// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsonld

import "github.com/pdiddy/sitegate/pkg/types"

// PrimaryIdentityPage normalizes the configured primary identity page. Only
// single-instance pages qualify; anything else falls back to home.
func PrimaryIdentityPage(t types.PageType) types.PageType {
	switch t {
	case types.PageHome, types.PageAbout, types.PageContact:
		return t
	}
	return types.PageHome
}

// ForPage assembles every document published on a candidate page, in the
// order the page layer embeds them. primary names the page type that carries
// the site-wide facts.
func ForPage(s *types.Site, c types.PageCandidate, primary types.PageType) []Document {
	global := c.Type == PrimaryIdentityPage(primary)
	var docs []Document
	add := func(d Document, ok bool) {
		if ok {
			docs = append(docs, d)
		}
	}

	switch c.Type {
	case types.PageHome:
		docs = append(docs,
			LocalBusiness(s, IdentityOptions{IncludeGlobalFacts: global}),
			WebSite(s),
		)
		add(FAQ(s.DefaultFAQs))

	case types.PageService:
		docs = append(docs, Service(s, c.Service, nil))
		add(HowTo(s, c.Service))
		add(ImageGallery(s, c.Service))
		add(FAQ(c.Service.FAQs))

	case types.PageLocation:
		docs = append(docs, LocalBusiness(s, IdentityOptions{Area: c.Area}))

	case types.PageCombo:
		docs = append(docs,
			Service(s, c.Service, c.Area),
			LocalBusiness(s, IdentityOptions{Area: c.Area}),
		)
		add(FAQ(c.Service.FAQs))

	case types.PageAbout:
		docs = append(docs,
			WebPage(s, c),
			LocalBusiness(s, IdentityOptions{IncludeGlobalFacts: global}),
		)
		add(Person(s))

	case types.PageContact:
		docs = append(docs,
			WebPage(s, c),
			LocalBusiness(s, IdentityOptions{IncludeGlobalFacts: global}),
		)
	}

	add(Breadcrumb(Crumbs(s, c)))
	return docs
}
