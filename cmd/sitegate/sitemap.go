// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sitegate/internal/enumerate"
	"github.com/pdiddy/sitegate/internal/sitemap"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Print the sitemap entries for indexable pages",
	Long: `Sitemap prints the fixed pages (home, about, contact) that are not
marked noindex, followed by every service, location, and combo page whose
verdict is index, with the
priority and change frequency each will carry. Use --xml to print the
sitemap.xml document instead.`,
	RunE: runSitemap,
}

func runSitemap(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	xmlOutput, _ := cmd.Flags().GetBool("xml")

	s, err := loadSite()
	if err != nil {
		return err
	}
	entries := sitemap.Project(s, enumerate.All(s, cfg.Build.Workers))

	switch {
	case jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case xmlOutput:
		return sitemap.WriteXML(os.Stdout, entries, time.Now())
	}

	fmt.Fprintf(os.Stdout, "%-60s  %-8s  %-8s  %s\n", "URL", "Type", "Priority", "Changefreq")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 92))
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-60s  %-8s  %-8.1f  %s\n", e.URL, e.Type, e.Priority, e.ChangeFrequency)
	}
	fmt.Fprintf(os.Stdout, "\n%d urls\n", len(entries))
	return nil
}

func init() {
	sitemapCmd.Flags().Bool("json", false, "output entries as JSON")
	sitemapCmd.Flags().Bool("xml", false, "output sitemap.xml")

	rootCmd.AddCommand(sitemapCmd)
}
