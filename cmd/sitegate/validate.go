// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sitegate/internal/enumerate"
	"github.com/pdiddy/sitegate/internal/predicate"
	"github.com/pdiddy/sitegate/internal/site"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the business profile",
	Long: `Validate parses site.yaml, checks field constraints and slug
uniqueness, and prints catalog sizes with the number of candidate pages and
how many of them would be indexed. It exits non-zero on any configuration
error.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := loadSite()
	if err != nil {
		return err
	}

	verdicts := enumerate.All(s, cfg.Build.Workers)
	sum := enumerate.Summarize(verdicts)

	w := os.Stdout
	fmt.Fprintf(w, "%s is valid\n", cfg.Build.SitePath)
	fmt.Fprintf(w, "  business:      %s\n", s.Business.Name)
	fmt.Fprintf(w, "  services:      %d\n", len(s.Services))
	fmt.Fprintf(w, "  service areas: %d\n", len(s.ServiceAreas))
	fmt.Fprintf(w, "  combo pages:   %d\n", len(enumerate.Combos(s)))
	fmt.Fprintf(w, "  total pages:   %d\n", site.TotalPages(s))
	fmt.Fprintf(w, "  trust signals: %d of 5\n", predicate.TrustSignalCount(s))
	fmt.Fprintf(w, "  certifications: %d\n", len(site.Certifications(s)))
	fmt.Fprintf(w, "  indexable:     %d (%d noindex, %d below generate floor)\n",
		sum.Indexed, sum.NoIndex, sum.Skipped)

	if !predicate.HasTrustSignals(s) {
		fmt.Fprintf(w, "\nwarning: fewer than %d trust signals; every page scores low on Hard Trust\n",
			predicate.MinTrustSignals)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
