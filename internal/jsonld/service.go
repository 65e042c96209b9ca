// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsonld

import (
	"strings"

	"github.com/pdiddy/sitegate/internal/predicate"
	"github.com/pdiddy/sitegate/internal/site"
	"github.com/pdiddy/sitegate/pkg/types"
)

// maxGalleryProjects caps how many projects feed one gallery.
const maxGalleryProjects = 6

// Service builds the service-offering document. When area is set the
// document describes the service as offered in that area.
func Service(s *types.Site, svc *types.Service, area *types.ServiceArea) Document {
	c := types.PageCandidate{Type: types.PageService, Service: svc}
	served := cityState(s.Address.City, s.Address.State)
	if area != nil {
		c = types.PageCandidate{Type: types.PageCombo, Service: svc, Area: area}
		served = cityState(area.City, area.State)
	}
	url := PageURL(s, c)

	d := Document{
		"@context": Context,
		"@type":    "Service",
		"@id":      url,
		"url":      url,
		"name":     svc.Name,
		"provider": providerRef(s),
	}
	put(d, "description", svc.Description)
	if served != "" {
		d["areaServed"] = Document{"@type": "City", "name": served}
	}
	if offer := Offer(svc); offer != nil {
		d["offers"] = offer
	}
	return d
}

// Offer returns the price offer of a service: a numeric price
// specification when both bounds are set, otherwise the free-text range.
// It returns nil when neither form is available.
func Offer(svc *types.Service) Document {
	currency := currencyCode(svc.PriceCurrency)
	switch {
	case predicate.HasNumericPriceRange(svc):
		return Document{
			"@type":         "Offer",
			"priceCurrency": currency,
			"priceSpecification": Document{
				"@type":         "PriceSpecification",
				"priceCurrency": currency,
				"minPrice":      *svc.PriceMin,
				"maxPrice":      *svc.PriceMax,
			},
		}
	case strings.TrimSpace(svc.PriceRange) != "":
		return Document{
			"@type":         "Offer",
			"priceCurrency": currency,
			"price":         svc.PriceRange,
		}
	}
	return nil
}

// currencyCode returns code when it is a three-letter ISO 4217 form,
// otherwise DefaultCurrency.
func currencyCode(code string) string {
	if len(code) != 3 {
		return DefaultCurrency
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return DefaultCurrency
		}
	}
	return code
}

// HowTo builds the step-by-step procedure of a service. It reports false
// when the service has no named process steps.
func HowTo(s *types.Site, svc *types.Service) (Document, bool) {
	var steps []Document
	for _, st := range svc.Process {
		if strings.TrimSpace(st.Name) == "" {
			continue
		}
		step := Document{
			"@type":    "HowToStep",
			"position": len(steps) + 1,
			"name":     st.Name,
		}
		put(step, "text", st.Description)
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, false
	}

	d := Document{
		"@context": Context,
		"@type":    "HowTo",
		"name":     "How We " + svc.Name,
		"step":     steps,
	}
	desc := "Our step-by-step " + strings.ToLower(svc.Name) + " process"
	if where := cityState(s.Address.City, s.Address.State); where != "" {
		desc += " in " + where
	}
	d["description"] = desc + "."

	var supply []Document
	for _, m := range svc.Materials {
		if strings.TrimSpace(m) != "" {
			supply = append(supply, Document{"@type": "HowToSupply", "name": m})
		}
	}
	if len(supply) > 0 {
		d["supply"] = supply
	}
	return d, true
}

// ImageGallery builds the project gallery of a gallery-eligible service.
// It reports false when there are no project images.
func ImageGallery(s *types.Site, svc *types.Service) (Document, bool) {
	projects := site.Projects(s, svc)
	if len(projects) > maxGalleryProjects {
		projects = projects[:maxGalleryProjects]
	}
	base := s.BaseURL()

	var images []Document
	for _, p := range projects {
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		for _, img := range []struct{ url, label string }{
			{p.AfterImage, "After"},
			{p.BeforeImage, "Before"},
		} {
			if strings.TrimSpace(img.url) == "" {
				continue
			}
			obj := Document{
				"@type": "ImageObject",
				"url":   absURL(base, img.url),
				"name":  p.Title + " - " + img.label,
			}
			put(obj, "description", p.Description)
			if strings.TrimSpace(p.Location) != "" {
				obj["contentLocation"] = Document{"@type": "Place", "name": p.Location}
			}
			images = append(images, obj)
		}
	}
	if len(images) == 0 {
		return nil, false
	}
	return Document{
		"@context": Context,
		"@type":    "ImageGallery",
		"name":     svc.Name + " Projects",
		"about":    Document{"@type": "Organization", "name": s.Business.Name},
		"image":    images,
	}, true
}
