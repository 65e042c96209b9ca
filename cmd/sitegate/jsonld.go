// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sitegate/internal/enumerate"
	"github.com/pdiddy/sitegate/internal/jsonld"
)

var jsonldCmd = &cobra.Command{
	Use:   "jsonld ROUTE",
	Short: "Print the schema.org documents for one page",
	Long: `Jsonld assembles and prints the linked-data documents published on the
page at ROUTE (for example /locations/springfield/roof-repair). With --lint
each document is also checked against the publishing rules.`,
	Args: cobra.ExactArgs(1),
	RunE: runJSONLD,
}

func runJSONLD(cmd *cobra.Command, args []string) error {
	route := args[0]
	lint, _ := cmd.Flags().GetBool("lint")

	s, err := loadSite()
	if err != nil {
		return err
	}

	for _, c := range enumerate.Candidates(s) {
		if c.Route() != route {
			continue
		}
		docs := jsonld.ForPage(s, c, cfg.Build.PrimaryIdentityPage)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(docs); err != nil {
			return err
		}

		if lint {
			failed := 0
			for _, d := range docs {
				if err := jsonld.Lint(d); err != nil {
					fmt.Fprintf(os.Stderr, "lint: %v\n", err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d document(s) failed lint", failed)
			}
		}
		return nil
	}
	return fmt.Errorf("no candidate page at route %s", route)
}

func init() {
	jsonldCmd.Flags().Bool("lint", false, "check each document against the publishing rules")

	rootCmd.AddCommand(jsonldCmd)
}
