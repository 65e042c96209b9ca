// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Site is the business profile and its catalogs, loaded once from site.yaml
// and treated as read-only for the rest of the run.
type Site struct {
	Business     Business     `json:"business" yaml:"business"`
	TrustSignals TrustSignals `json:"trust_signals" yaml:"trust_signals"`
	Address      Address      `json:"address" yaml:"address"`

	// Geo is optional. Coordinates of exactly (0,0) count as unset.
	Geo *GeoCoordinates `json:"geo,omitempty" yaml:"geo,omitempty"`

	// Hours is optional; days without an open/close pair are skipped.
	Hours *BusinessHours `json:"hours,omitempty" yaml:"hours,omitempty"`

	GBPCategories GBPCategories `json:"gbp_categories" yaml:"gbp_categories"`

	Services     []Service     `json:"services" yaml:"services" validate:"dive"`
	ServiceAreas []ServiceArea `json:"service_areas" yaml:"service_areas" validate:"dive"`

	Social  SocialProfiles `json:"social" yaml:"social"`
	Reviews Reviews        `json:"reviews" yaml:"reviews"`
	About   About          `json:"about" yaml:"about"`

	// DefaultFAQs are the site-wide questions shown on the home page.
	DefaultFAQs []FAQ `json:"default_faqs,omitempty" yaml:"default_faqs,omitempty" validate:"dive"`

	SEO                 SEOSettings         `json:"seo" yaml:"seo"`
	Sitemap             SitemapSettings     `json:"sitemap" yaml:"sitemap"`
	ContentRequirements ContentRequirements `json:"content_requirements" yaml:"content_requirements"`

	// Projects holds before/after galleries keyed by service slug.
	Projects map[string][]Project `json:"projects,omitempty" yaml:"projects,omitempty" validate:"dive,dive"`
}

// BaseURL returns the canonical site origin without a trailing slash.
// seo.site_url wins over business.url when both are set.
func (s *Site) BaseURL() string {
	u := s.SEO.SiteURL
	if u == "" {
		u = s.Business.URL
	}
	return strings.TrimRight(u, "/")
}

// Business holds the identity fields of the business.
type Business struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	LegalName string `json:"legal_name,omitempty" yaml:"legal_name,omitempty"`

	// SchemaType is the linked-data type, e.g. "Plumber" or "RoofingContractor".
	// Empty falls back to "LocalBusiness".
	SchemaType string `json:"schema_type,omitempty" yaml:"schema_type,omitempty"`

	Tagline     string `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Phone       string `json:"phone" yaml:"phone" validate:"required"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	URL         string `json:"url" yaml:"url" validate:"required,url"`
	Logo        string `json:"logo,omitempty" yaml:"logo,omitempty"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`

	// PriceRange is the coarse "$".."$$$$" indicator.
	PriceRange string `json:"price_range,omitempty" yaml:"price_range,omitempty"`

	// FoundingDate is the founding year as a string (e.g. "2010").
	FoundingDate string `json:"founding_date,omitempty" yaml:"founding_date,omitempty"`
}

// License describes the contractor license shown on every page.
type License struct {
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	State  string `json:"state,omitempty" yaml:"state,omitempty"`

	// Display is the formatted string, e.g. "Licensed MA Contractor #12345".
	Display string `json:"display,omitempty" yaml:"display,omitempty"`
}

// Insurance describes liability coverage.
type Insurance struct {
	Coverage string `json:"coverage,omitempty" yaml:"coverage,omitempty"`
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Bonded   bool   `json:"bonded,omitempty" yaml:"bonded,omitempty"`
}

// TrustSignals groups license, insurance, and credential data.
type TrustSignals struct {
	License        *License   `json:"license,omitempty" yaml:"license,omitempty"`
	Insurance      *Insurance `json:"insurance,omitempty" yaml:"insurance,omitempty"`
	Certifications []string   `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	Affiliations   []string   `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// Address is the business's postal address.
type Address struct {
	Street  string `json:"street,omitempty" yaml:"street,omitempty"`
	Suite   string `json:"suite,omitempty" yaml:"suite,omitempty"`
	City    string `json:"city" yaml:"city" validate:"required"`
	State   string `json:"state" yaml:"state" validate:"required"`
	Zip     string `json:"zip,omitempty" yaml:"zip,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// GeoCoordinates is a latitude/longitude pair.
type GeoCoordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
}

// BusinessHours holds one "HH:MM-HH:MM" or "Closed" string per weekday.
type BusinessHours struct {
	Monday    string `json:"monday,omitempty" yaml:"monday,omitempty"`
	Tuesday   string `json:"tuesday,omitempty" yaml:"tuesday,omitempty"`
	Wednesday string `json:"wednesday,omitempty" yaml:"wednesday,omitempty"`
	Thursday  string `json:"thursday,omitempty" yaml:"thursday,omitempty"`
	Friday    string `json:"friday,omitempty" yaml:"friday,omitempty"`
	Saturday  string `json:"saturday,omitempty" yaml:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty" yaml:"sunday,omitempty"`
}

// DayHours pairs a weekday name with its raw hours string.
type DayHours struct {
	Day   string
	Hours string
}

// Days returns the week in Monday-first order.
func (h BusinessHours) Days() []DayHours {
	return []DayHours{
		{"Monday", h.Monday},
		{"Tuesday", h.Tuesday},
		{"Wednesday", h.Wednesday},
		{"Thursday", h.Thursday},
		{"Friday", h.Friday},
		{"Saturday", h.Saturday},
		{"Sunday", h.Sunday},
	}
}

// GBPCategories mirrors the Google Business Profile category setup.
type GBPCategories struct {
	Primary   string   `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary []string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// ProcessStep is one ordered step of how a service is performed.
type ProcessStep struct {
	Step        int    `json:"step" yaml:"step"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Service is one entry of the service catalog. Slug is its identity.
type Service struct {
	Name            string `json:"name" yaml:"name" validate:"required"`
	Slug            string `json:"slug" yaml:"slug" validate:"required,slug"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	LongDescription string `json:"long_description,omitempty" yaml:"long_description,omitempty"`

	// PriceRange is free text ("$450-$1,200"); PriceMin/PriceMax are the
	// numeric form. Either counts as a price signal.
	PriceRange    string   `json:"price_range,omitempty" yaml:"price_range,omitempty"`
	PriceMin      *float64 `json:"price_min,omitempty" yaml:"price_min,omitempty" validate:"omitempty,gte=0"`
	PriceMax      *float64 `json:"price_max,omitempty" yaml:"price_max,omitempty" validate:"omitempty,gte=0"`
	PriceCurrency string   `json:"price_currency,omitempty" yaml:"price_currency,omitempty" validate:"omitempty,len=3"`

	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`

	Features     []string      `json:"features,omitempty" yaml:"features,omitempty"`
	Process      []ProcessStep `json:"process,omitempty" yaml:"process,omitempty"`
	Materials    []string      `json:"materials,omitempty" yaml:"materials,omitempty"`
	CommonIssues []string      `json:"common_issues,omitempty" yaml:"common_issues,omitempty"`
	FAQs         []FAQ         `json:"faqs,omitempty" yaml:"faqs,omitempty"`

	// Index is the author's explicit index flag; nil means allowed.
	Index *bool `json:"index,omitempty" yaml:"index,omitempty"`

	// ShowProjects marks the service as eligible for an image gallery.
	ShowProjects bool `json:"show_projects,omitempty" yaml:"show_projects,omitempty"`
}

// Indexable reports whether the author allows this service to be indexed.
func (s Service) Indexable() bool {
	return s.Index == nil || *s.Index
}

// ServiceArea is one entry of the service-area catalog. Slug is its identity.
type ServiceArea struct {
	City     string   `json:"city" yaml:"city" validate:"required"`
	Slug     string   `json:"slug" yaml:"slug" validate:"required,slug"`
	State    string   `json:"state" yaml:"state" validate:"required"`
	County   string   `json:"county,omitempty" yaml:"county,omitempty"`
	ZipCodes []string `json:"zip_codes,omitempty" yaml:"zip_codes,omitempty"`

	Neighborhoods []string `json:"neighborhoods,omitempty" yaml:"neighborhoods,omitempty"`
	Landmarks     []string `json:"landmarks,omitempty" yaml:"landmarks,omitempty"`

	// LocalParagraph is author-written local detail; 50+ words to count.
	LocalParagraph string `json:"local_paragraph,omitempty" yaml:"local_paragraph,omitempty"`

	RegionalIssues []string `json:"regional_issues,omitempty" yaml:"regional_issues,omitempty"`
	HousingTypes   []string `json:"housing_types,omitempty" yaml:"housing_types,omitempty"`
	Permits        string   `json:"permits,omitempty" yaml:"permits,omitempty"`

	Index *bool `json:"index,omitempty" yaml:"index,omitempty"`
}

// Indexable reports whether the author allows this area to be indexed.
func (a ServiceArea) Indexable() bool {
	return a.Index == nil || *a.Index
}

// SocialProfiles holds profile URLs; empty fields are unused.
type SocialProfiles struct {
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty" validate:"omitempty,url"`
	YouTube   string `json:"youtube,omitempty" yaml:"youtube,omitempty" validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin,omitempty" validate:"omitempty,url"`
	TikTok    string `json:"tiktok,omitempty" yaml:"tiktok,omitempty" validate:"omitempty,url"`
	Pinterest string `json:"pinterest,omitempty" yaml:"pinterest,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty" validate:"omitempty,url"`
	Nextdoor  string `json:"nextdoor,omitempty" yaml:"nextdoor,omitempty" validate:"omitempty,url"`
	Houzz     string `json:"houzz,omitempty" yaml:"houzz,omitempty" validate:"omitempty,url"`
}

// URLs returns the configured profile URLs in a fixed order.
func (p SocialProfiles) URLs() []string {
	var urls []string
	for _, u := range []string{
		p.Facebook, p.Instagram, p.YouTube, p.LinkedIn, p.TikTok,
		p.Pinterest, p.Twitter, p.Nextdoor, p.Houzz,
	} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// ReviewPlatform holds per-platform review numbers.
type ReviewPlatform struct {
	URL         string  `json:"url,omitempty" yaml:"url,omitempty"`
	PlaceID     string  `json:"place_id,omitempty" yaml:"place_id,omitempty"`
	ReviewCount int     `json:"review_count" yaml:"review_count" validate:"gte=0"`
	Rating      float64 `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
}

// AggregateReview is the cross-platform aggregate surfaced in metadata.
type AggregateReview struct {
	TotalReviews  int     `json:"total_reviews" yaml:"total_reviews" validate:"gte=0"`
	AverageRating float64 `json:"average_rating" yaml:"average_rating" validate:"gte=0,lte=5"`
}

// Reviews groups platform numbers and the aggregate.
type Reviews struct {
	Google    *ReviewPlatform  `json:"google,omitempty" yaml:"google,omitempty"`
	Yelp      *ReviewPlatform  `json:"yelp,omitempty" yaml:"yelp,omitempty"`
	Facebook  *ReviewPlatform  `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Aggregate *AggregateReview `json:"aggregate,omitempty" yaml:"aggregate,omitempty"`
}

// Combined returns the configured aggregate. When none is configured it
// derives a count-weighted aggregate from the platforms with an in-range
// rating, rounded to one decimal. It returns nil when there is nothing to
// aggregate.
func (r Reviews) Combined() *AggregateReview {
	if r.Aggregate != nil {
		return r.Aggregate
	}
	total := 0
	weighted := 0.0
	for _, p := range []*ReviewPlatform{r.Google, r.Yelp, r.Facebook} {
		if p == nil || p.ReviewCount <= 0 || !(p.Rating >= 0 && p.Rating <= 5) {
			continue
		}
		total += p.ReviewCount
		weighted += float64(p.ReviewCount) * p.Rating
	}
	if total == 0 {
		return nil
	}
	avg := float64(int(weighted/float64(total)*10+0.5)) / 10
	return &AggregateReview{TotalReviews: total, AverageRating: avg}
}

// Owner describes the owner shown on the about page.
type Owner struct {
	Name        string   `json:"name" yaml:"name"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Bio         string   `json:"bio,omitempty" yaml:"bio,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	Credentials []string `json:"credentials,omitempty" yaml:"credentials,omitempty"`
}

// About holds about-page content.
type About struct {
	Story                string   `json:"story,omitempty" yaml:"story,omitempty"`
	Owner                *Owner   `json:"owner,omitempty" yaml:"owner,omitempty"`
	Certifications       []string `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	Awards               []string `json:"awards,omitempty" yaml:"awards,omitempty"`
	CommunityInvolvement string   `json:"community_involvement,omitempty" yaml:"community_involvement,omitempty"`
	WhyFounded           string   `json:"why_founded,omitempty" yaml:"why_founded,omitempty"`
}

// SEOSettings holds site-wide SEO defaults.
type SEOSettings struct {
	SiteURL            string `json:"site_url,omitempty" yaml:"site_url,omitempty" validate:"omitempty,url"`
	DefaultTitle       string `json:"default_title,omitempty" yaml:"default_title,omitempty"`
	DefaultDescription string `json:"default_description,omitempty" yaml:"default_description,omitempty"`
	OGImage            string `json:"og_image,omitempty" yaml:"og_image,omitempty"`
}

// SitemapPriorities overrides per-page-type sitemap priorities.
// Nil entries use the built-in fallbacks.
type SitemapPriorities struct {
	Homepage        *float64 `json:"homepage,omitempty" yaml:"homepage,omitempty" validate:"omitempty,gte=0,lte=1"`
	Services        *float64 `json:"services,omitempty" yaml:"services,omitempty" validate:"omitempty,gte=0,lte=1"`
	Locations       *float64 `json:"locations,omitempty" yaml:"locations,omitempty" validate:"omitempty,gte=0,lte=1"`
	LocationService *float64 `json:"location_service,omitempty" yaml:"location_service,omitempty" validate:"omitempty,gte=0,lte=1"`
	About           *float64 `json:"about,omitempty" yaml:"about,omitempty" validate:"omitempty,gte=0,lte=1"`
	Contact         *float64 `json:"contact,omitempty" yaml:"contact,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// SitemapChangeFrequency overrides per-page-type change frequencies.
type SitemapChangeFrequency struct {
	Homepage        string `json:"homepage,omitempty" yaml:"homepage,omitempty" validate:"omitempty,changefreq"`
	Services        string `json:"services,omitempty" yaml:"services,omitempty" validate:"omitempty,changefreq"`
	Locations       string `json:"locations,omitempty" yaml:"locations,omitempty" validate:"omitempty,changefreq"`
	LocationService string `json:"location_service,omitempty" yaml:"location_service,omitempty" validate:"omitempty,changefreq"`
	About           string `json:"about,omitempty" yaml:"about,omitempty" validate:"omitempty,changefreq"`
	Contact         string `json:"contact,omitempty" yaml:"contact,omitempty" validate:"omitempty,changefreq"`
}

// SitemapSettings groups the sitemap overrides.
type SitemapSettings struct {
	Priorities      SitemapPriorities      `json:"priorities" yaml:"priorities"`
	ChangeFrequency SitemapChangeFrequency `json:"change_frequency" yaml:"change_frequency"`
}

// ComboPageRequirements adds stricter combo-page gates on top of local proof.
// Zero values add nothing.
type ComboPageRequirements struct {
	MinNeighborhoods      int  `json:"min_neighborhoods,omitempty" yaml:"min_neighborhoods,omitempty" validate:"gte=0"`
	MinLandmarks          int  `json:"min_landmarks,omitempty" yaml:"min_landmarks,omitempty" validate:"gte=0"`
	RequireLocalParagraph bool `json:"require_local_paragraph,omitempty" yaml:"require_local_paragraph,omitempty"`
}

// ContentRequirements lets an author tighten, never loosen, the index bar.
type ContentRequirements struct {
	// MinimumIndexScore raises every page-type minimum below it.
	MinimumIndexScore int                   `json:"minimum_index_score,omitempty" yaml:"minimum_index_score,omitempty" validate:"gte=0"`
	ComboPage         ComboPageRequirements `json:"combo_page_requirements" yaml:"combo_page_requirements"`
}

// Project is one before/after gallery entry.
type Project struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
	BeforeImage string `json:"before_image,omitempty" yaml:"before_image,omitempty"`
	AfterImage  string `json:"after_image,omitempty" yaml:"after_image,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
