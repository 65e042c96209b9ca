// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/pdiddy/sitegate/internal/enumerate"
	"github.com/pdiddy/sitegate/internal/report"
	"github.com/pdiddy/sitegate/pkg/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score every candidate page and print the verdicts",
	Long: `Score evaluates every candidate page (home, services, locations,
location+service combos, about, contact) and prints its score, the
generate/index/priority decisions, and the reasons a page was held back.

Filter with --route (a glob such as '/locations/*/roof-repair'), --type, or
--noindex. Use --breakdown for per-item points, warnings, and suggestions.`,
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	routePattern, _ := cmd.Flags().GetString("route")
	pageType, _ := cmd.Flags().GetString("type")
	noindexOnly, _ := cmd.Flags().GetBool("noindex")
	breakdown, _ := cmd.Flags().GetBool("breakdown")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if pageType != "" && !types.PageType(pageType).Valid() {
		return fmt.Errorf("unknown page type %q: use home, service, location, combo, about, or contact", pageType)
	}
	var matcher glob.Glob
	if routePattern != "" {
		g, err := glob.Compile(routePattern, '/')
		if err != nil {
			return fmt.Errorf("invalid route pattern %q: %w", routePattern, err)
		}
		matcher = g
	}

	s, err := loadSite()
	if err != nil {
		return err
	}

	all := enumerate.All(s, cfg.Build.Workers)
	var verdicts []types.Verdict
	for _, v := range all {
		if matcher != nil && !matcher.Match(v.Route()) {
			continue
		}
		if pageType != "" && v.Candidate.Type != types.PageType(pageType) {
			continue
		}
		if noindexOnly && v.Index {
			continue
		}
		verdicts = append(verdicts, v)
	}
	sum := enumerate.Summarize(verdicts)

	if jsonOutput {
		return report.FormatJSON(verdicts, sum, os.Stdout)
	}
	if breakdown {
		for _, v := range verdicts {
			report.FormatBreakdown(v, os.Stdout)
		}
	} else {
		report.FormatTable(verdicts, os.Stdout)
	}
	fmt.Fprintln(os.Stdout)
	report.FormatSummary(sum, os.Stdout)
	return nil
}

func init() {
	scoreCmd.Flags().String("route", "", "only pages whose route matches this glob")
	scoreCmd.Flags().String("type", "", "only pages of this type: home, service, location, combo, about, contact")
	scoreCmd.Flags().Bool("noindex", false, "only pages that will not be indexed")
	scoreCmd.Flags().Bool("breakdown", false, "print per-item points, warnings, and suggestions")
	scoreCmd.Flags().Bool("json", false, "output verdicts as JSON")

	rootCmd.AddCommand(scoreCmd)
}
