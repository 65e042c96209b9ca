// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site loads and validates the business profile and exposes catalog
// lookups over it. A loaded Site is immutable for the rest of the run.
package site

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sitegate/pkg/types"
)

// slugPattern matches lowercase URL slugs: "roof-repair", "st-louis-2".
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var changeFrequencies = map[string]bool{
	"always": true, "hourly": true, "daily": true, "weekly": true,
	"monthly": true, "yearly": true, "never": true,
}

// ConfigError reports a fatal problem with the business profile: a
// duplicate slug or a missing or malformed identity field. The build must
// stop on it; scoring never produces one.
type ConfigError struct {
	Path     string
	Problems []string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "invalid site config %s:", e.Path)
	} else {
		b.WriteString("invalid site config:")
	}
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		b.WriteString(p)
	}
	return b.String()
}

// Load reads and validates a site profile YAML file.
func Load(path string) (*types.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site config: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return nil, err
	}
	return s, nil
}

// Parse decodes and validates site profile YAML.
func Parse(data []byte) (*types.Site, error) {
	var s types.Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing site config: %w", err)
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// identityFields are the fields every route, name, and URL is built from.
// A failing constraint on one of them is fatal; anything else is advisory.
var identityFields = regexp.MustCompile(
	`^(business\.(name|url)|seo\.site_url|services\[\d+\]\.(name|slug)|service_areas\[\d+\]\.(city|slug))$`)

// Validate checks the identity fields and slug uniqueness. All fatal
// problems are collected into a single *ConfigError. Malformed optional
// data is not an error here; see Check.
func Validate(s *types.Site) error {
	fatal, _, err := inspect(s)
	if err != nil {
		return err
	}
	if len(fatal) > 0 {
		return &ConfigError{Problems: fatal}
	}
	return nil
}

// Check returns the non-fatal problems in s: optional fields that fail
// their constraints. Such fields count as absent downstream and are never
// surfaced in output.
func Check(s *types.Site) []string {
	_, advisory, _ := inspect(s)
	return advisory
}

func inspect(s *types.Site) (fatal, advisory []string, err error) {
	if verr := newValidator().Struct(s); verr != nil {
		var verrs validator.ValidationErrors
		if !errors.As(verr, &verrs) {
			return nil, nil, fmt.Errorf("validating site config: %w", verr)
		}
		for _, fe := range verrs {
			msg := describeFieldError(fe)
			if identityFields.MatchString(fieldName(fe)) {
				fatal = append(fatal, msg)
			} else {
				advisory = append(advisory, msg)
			}
		}
	}
	fatal = append(fatal, duplicateSlugs("service", serviceSlugs(s.Services))...)
	fatal = append(fatal, duplicateSlugs("service area", areaSlugs(s.ServiceAreas))...)
	return fatal, advisory, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("changefreq", func(fl validator.FieldLevel) bool {
		return changeFrequencies[fl.Field().String()]
	})
	return v
}

func fieldName(fe validator.FieldError) string {
	return strings.TrimPrefix(fe.Namespace(), "Site.")
}

func describeFieldError(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "slug":
		return fmt.Sprintf("%s %q is not a lowercase slug", field, fe.Value())
	case "changefreq":
		return fmt.Sprintf("%s %q is not a sitemap change frequency", field, fe.Value())
	case "url", "email":
		return fmt.Sprintf("%s %q is not a valid %s", field, fe.Value(), fe.Tag())
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s fails %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s fails %s (got %v)", field, fe.Tag(), fe.Value())
}

func duplicateSlugs(kind string, slugs []string) []string {
	seen := make(map[string]int)
	var problems []string
	for i, slug := range slugs {
		if first, ok := seen[slug]; ok {
			problems = append(problems, fmt.Sprintf("duplicate %s slug %q (entries %d and %d)", kind, slug, first, i))
			continue
		}
		seen[slug] = i
	}
	return problems
}

func serviceSlugs(services []types.Service) []string {
	slugs := make([]string, len(services))
	for i, s := range services {
		slugs[i] = s.Slug
	}
	return slugs
}

func areaSlugs(areas []types.ServiceArea) []string {
	slugs := make([]string, len(areas))
	for i, a := range areas {
		slugs[i] = a.Slug
	}
	return slugs
}
