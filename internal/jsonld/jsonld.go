// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsonld assembles schema.org linked-data documents for candidate
// pages. Builders only emit a field when the predicate behind it holds, so a
// missing or placeholder fact is omitted rather than published.
//
// The aggregate rating is a site-wide fact. It is emitted only when the
// caller passes IncludeGlobalFacts, which ForPage sets on the one primary
// identity page of the site.
package jsonld

import (
	"strings"

	"github.com/pdiddy/sitegate/internal/predicate"
	"github.com/pdiddy/sitegate/pkg/types"
)

// Context is the linked-data vocabulary every document declares.
const Context = "https://schema.org"

// DefaultCurrency is used when a service does not name a valid one.
const DefaultCurrency = "USD"

// Document is one linked-data tree, ready for JSON encoding.
type Document map[string]any

// Type returns the document's @type, or "".
func (d Document) Type() string {
	t, _ := d["@type"].(string)
	return t
}

// IdentityOptions control the business-identity builder.
type IdentityOptions struct {
	// IncludeGlobalFacts adds site-wide facts (the aggregate rating).
	IncludeGlobalFacts bool

	// Area localizes the identity to a service area: the address carries the
	// area's city and state, and areaServed is narrowed to that area.
	Area *types.ServiceArea
}

// LocalBusiness builds the business-identity document.
func LocalBusiness(s *types.Site, opts IdentityOptions) Document {
	base := s.BaseURL()
	d := Document{
		"@context": Context,
		"@type":    schemaType(s),
		"@id":      orgID(s),
		"name":     s.Business.Name,
		"url":      base,
	}
	put(d, "description", s.Business.Description)
	put(d, "telephone", s.Business.Phone)
	if predicate.ValidEmail(s.Business.Email) {
		d["email"] = s.Business.Email
	}
	put(d, "legalName", s.Business.LegalName)
	put(d, "priceRange", s.Business.PriceRange)
	put(d, "foundingDate", s.Business.FoundingDate)

	if addr := postalAddress(s.Address, opts.Area); len(addr) > 1 {
		d["address"] = addr
	}
	if predicate.HasLogo(s) {
		d["logo"] = Document{"@type": "ImageObject", "url": absURL(base, s.Business.Logo)}
	}
	if predicate.HasImage(s) {
		d["image"] = absURL(base, s.Business.Image)
	}
	if predicate.HasValidGeo(s.Geo) {
		d["geo"] = Document{
			"@type":     "GeoCoordinates",
			"latitude":  s.Geo.Latitude,
			"longitude": s.Geo.Longitude,
		}
	}
	if hours := OpeningHours(s.Hours); len(hours) > 0 {
		d["openingHoursSpecification"] = hours
	}
	if urls := predicate.ValidURLs(s.Social.URLs()); len(urls) > 0 {
		d["sameAs"] = urls
	}
	if opts.IncludeGlobalFacts {
		if agg := s.Reviews.Combined(); predicate.ValidAggregate(agg) {
			d["aggregateRating"] = Document{
				"@type":       "AggregateRating",
				"ratingValue": agg.AverageRating,
				"reviewCount": agg.TotalReviews,
				"bestRating":  5,
				"worstRating": 1,
			}
		}
	}

	areas := s.ServiceAreas
	if opts.Area != nil {
		areas = []types.ServiceArea{*opts.Area}
	}
	if served := citiesServed(areas); len(served) > 0 {
		d["areaServed"] = served
	}
	return d
}

// WebSite builds the site document published on the home page.
func WebSite(s *types.Site) Document {
	d := Document{
		"@context":  Context,
		"@type":     "WebSite",
		"@id":       s.BaseURL() + "/#website",
		"url":       s.BaseURL(),
		"name":      s.Business.Name,
		"publisher": Document{"@id": orgID(s)},
	}
	put(d, "description", s.Business.Description)
	return d
}

// WebPage builds the page wrapper. About and contact pages use the
// AboutPage and ContactPage subtypes.
func WebPage(s *types.Site, c types.PageCandidate) Document {
	typ := "WebPage"
	switch c.Type {
	case types.PageAbout:
		typ = "AboutPage"
	case types.PageContact:
		typ = "ContactPage"
	}
	url := PageURL(s, c)
	d := Document{
		"@context": Context,
		"@type":    typ,
		"@id":      url,
		"url":      url,
		"name":     PageName(s, c),
		"isPartOf": Document{"@id": s.BaseURL() + "/#website"},
		"about":    Document{"@id": orgID(s)},
	}
	put(d, "description", pageDescription(s))
	return d
}

// PageURL returns the absolute URL of a candidate page.
func PageURL(s *types.Site, c types.PageCandidate) string {
	route := c.Route()
	if route == "/" {
		return s.BaseURL() + "/"
	}
	return s.BaseURL() + route
}

// PageName returns the human-readable page name used in wrappers and crumbs.
func PageName(s *types.Site, c types.PageCandidate) string {
	switch c.Type {
	case types.PageService:
		return c.Service.Name
	case types.PageLocation:
		return cityState(c.Area.City, c.Area.State)
	case types.PageCombo:
		return c.Service.Name + " in " + cityState(c.Area.City, c.Area.State)
	case types.PageAbout:
		return "About " + s.Business.Name
	case types.PageContact:
		return "Contact " + s.Business.Name
	}
	return s.Business.Name
}

func pageDescription(s *types.Site) string {
	if s.SEO.DefaultDescription != "" {
		return s.SEO.DefaultDescription
	}
	return s.Business.Description
}

func schemaType(s *types.Site) string {
	if s.Business.SchemaType != "" {
		return s.Business.SchemaType
	}
	return "LocalBusiness"
}

func orgID(s *types.Site) string {
	return s.BaseURL() + "/#organization"
}

func providerRef(s *types.Site) Document {
	return Document{
		"@type": schemaType(s),
		"@id":   orgID(s),
		"name":  s.Business.Name,
	}
}

func postalAddress(a types.Address, area *types.ServiceArea) Document {
	city, state := a.City, a.State
	if area != nil {
		city, state = area.City, area.State
	}
	street := a.Street
	if street != "" && a.Suite != "" {
		street += ", " + a.Suite
	}
	d := Document{"@type": "PostalAddress"}
	put(d, "streetAddress", street)
	put(d, "addressLocality", city)
	put(d, "addressRegion", state)
	put(d, "postalCode", a.Zip)
	put(d, "addressCountry", a.Country)
	return d
}

func citiesServed(areas []types.ServiceArea) []Document {
	var out []Document
	for _, a := range areas {
		if name := cityState(a.City, a.State); name != "" {
			out = append(out, Document{"@type": "City", "name": name})
		}
	}
	return out
}

func cityState(city, state string) string {
	city, state = strings.TrimSpace(city), strings.TrimSpace(state)
	switch {
	case city == "":
		return ""
	case state == "":
		return city
	}
	return city + ", " + state
}

// absURL resolves a site-relative reference against base.
func absURL(base, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return base + ref
}

// put sets key only for a non-blank value.
func put(d Document, key, value string) {
	if strings.TrimSpace(value) != "" {
		d[key] = value
	}
}
