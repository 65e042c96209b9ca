// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sitegate/internal/audit"
	"github.com/pdiddy/sitegate/internal/enumerate"
	"github.com/pdiddy/sitegate/pkg/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Manage the audit log of scored runs (record, list, query, diff, export)",
	Long: `Audit keeps a local SQLite history of scoring runs so you can see how
edits to site.yaml moved pages across the index bar. The log is never read
back into scoring.`,
}

// --- record subcommand ---

var auditRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Score the current profile and record the run",
	RunE:  runAuditRecord,
}

func runAuditRecord(cmd *cobra.Command, args []string) error {
	started := time.Now()
	s, err := loadSite()
	if err != nil {
		return err
	}
	verdicts := enumerate.All(s, cfg.Build.Workers)
	sum := enumerate.Summarize(verdicts)

	store, err := openAudit(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Record(context.Background(), audit.RunInfo{
		SiteName:  s.Business.Name,
		SitePath:  cfg.Build.SitePath,
		StartedAt: started,
	}, verdicts, sum)
	if err != nil {
		return err
	}
	fmt.Printf("recorded run %s (%d pages, %d indexed)\n", run.ID, sum.Candidates, sum.Indexed)
	return nil
}

// --- list subcommand ---

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	RunE:  runAuditList,
}

func runAuditList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openAudit(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-5s  %-7s  %-7s  %s\n",
		"Run", "Started", "Pages", "Indexed", "NoIndex", "Avg")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 96))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-5d  %-7d  %-7d  %.1f\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Summary.Candidates, r.Summary.Indexed, r.Summary.NoIndex, r.Summary.AverageScore)
	}
	return nil
}

// --- query subcommand ---

var auditQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search recorded verdicts by route, type, index state, or text",
	Long: `Query searches stored verdicts. Text arguments run a full-text search
over warnings and suggestions ("local proof", "duration"). Combine with
--run, --route (glob), --type, and --noindex.`,
	RunE: runAuditQuery,
}

func runAuditQuery(cmd *cobra.Command, args []string) error {
	store, err := openAudit(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts, err := auditQueryOpts(cmd, store, args)
	if err != nil {
		return err
	}
	entries, err := store.Query(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%-8s  %-48s  %-8s  %-7s  %-5s  %s\n",
		"Run", "Route", "Type", "Score", "Index", "Reasons")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for _, e := range entries {
		reasons := make([]string, len(e.Reasons))
		for i, r := range e.Reasons {
			reasons[i] = string(r)
		}
		fmt.Fprintf(os.Stdout, "%-8s  %-48s  %-8s  %-7s  %-5t  %s\n",
			e.RunID[:8], e.Route, e.Type, fmt.Sprintf("%d/%d", e.Score, e.MaxScore),
			e.Index, strings.Join(reasons, ","))
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(entries))
	return nil
}

// --- diff subcommand ---

var auditDiffCmd = &cobra.Command{
	Use:   "diff [FROM] [TO]",
	Short: "Compare the verdicts of two runs",
	Long: `Diff lists pages added, removed, newly indexed, newly noindexed, or
rescored between two runs. Runs are named by ID prefix, "latest", or
"previous"; the default compares previous to latest.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runAuditDiff,
}

func runAuditDiff(cmd *cobra.Command, args []string) error {
	fromRef, toRef := "previous", "latest"
	if len(args) > 0 {
		fromRef = args[0]
	}
	if len(args) > 1 {
		toRef = args[1]
	}

	store, err := openAudit(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	from, err := store.ResolveRun(ctx, fromRef)
	if err != nil {
		return err
	}
	to, err := store.ResolveRun(ctx, toRef)
	if err != nil {
		return err
	}
	changes, err := store.Diff(ctx, from, to)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(changes)
	}
	audit.FormatDiff(changes, os.Stdout)
	return nil
}

// --- export subcommand ---

var auditExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded verdicts to YAML or JSON",
	Long: `Export writes stored verdicts (or a filtered subset) to export.yaml or
export.json next to the audit database. Supports the same filter flags as
query.`,
	RunE: runAuditExport,
}

func runAuditExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openAudit(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts, err := auditQueryOpts(cmd, store, args)
	if err != nil {
		return err
	}

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func openAudit(cmd *cobra.Command) (*audit.Store, error) {
	auditCfg := cfg.Audit
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		auditCfg.DBPath = db
	}
	return audit.NewStore(auditCfg)
}

func auditQueryOpts(cmd *cobra.Command, store *audit.Store, args []string) (audit.QueryOptions, error) {
	runRef, _ := cmd.Flags().GetString("run")
	route, _ := cmd.Flags().GetString("route")
	pageType, _ := cmd.Flags().GetString("type")
	noindex, _ := cmd.Flags().GetBool("noindex")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := audit.QueryOptions{
		Route:       route,
		Type:        types.PageType(pageType),
		NoIndexOnly: noindex,
		Text:        strings.Join(args, " "),
		MaxResults:  limit,
	}
	if runRef != "" {
		id, err := store.ResolveRun(context.Background(), runRef)
		if err != nil {
			return opts, err
		}
		opts.RunID = id
	}
	return opts, nil
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	auditCmd.PersistentFlags().String("db", "", "audit database path (default from config: .sitegate/audit.db)")

	auditListCmd.Flags().Int("limit", 0, "maximum runs (0 = use default)")

	for _, c := range []*cobra.Command{auditQueryCmd, auditExportCmd} {
		c.Flags().String("run", "", "restrict to a run: ID prefix, latest, or previous")
		c.Flags().String("route", "", "filter by route glob")
		c.Flags().String("type", "", "filter by page type")
		c.Flags().Bool("noindex", false, "only pages that were not indexed")
		c.Flags().Int("limit", 0, "maximum results (0 = use default)")
	}
	auditQueryCmd.Flags().Bool("json", false, "output results as JSON")
	auditDiffCmd.Flags().Bool("json", false, "output changes as JSON")
	auditExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	// Wire subcommands.
	auditCmd.AddCommand(auditRecordCmd)
	auditCmd.AddCommand(auditListCmd)
	auditCmd.AddCommand(auditQueryCmd)
	auditCmd.AddCommand(auditDiffCmd)
	auditCmd.AddCommand(auditExportCmd)

	rootCmd.AddCommand(auditCmd)
}
