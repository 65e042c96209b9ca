// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sitegate/internal/audit"
	"github.com/pdiddy/sitegate/internal/build"
	"github.com/pdiddy/sitegate/internal/site"
	"github.com/pdiddy/sitegate/internal/watch"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write verdicts, metadata, sitemap, and robots files",
	Long: `Build evaluates every candidate page and writes the output tree:

  verdicts.json, verdicts.yaml   per-page decisions with score breakdowns
  sitemap.xml                    indexable pages only
  robots.txt, robots.json        crawl rules and per-route noindex directives
  jsonld/<page>.json             schema.org documents for every generated page

Pages below the do-not-generate floor get no metadata. With --record the run
is also stored in the audit log. With --watch the build re-runs whenever the
business profile changes.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	watchMode, _ := cmd.Flags().GetBool("watch")
	record, _ := cmd.Flags().GetBool("record")

	opts := build.Options{BuildConfig: cfg.Build, Logger: logger}
	once := func(ctx context.Context) error {
		started := time.Now()
		s, res, err := build.Run(ctx, opts, os.Stdout)
		if err != nil {
			return err
		}
		if !record {
			return nil
		}
		store, err := audit.NewStore(cfg.Audit)
		if err != nil {
			return err
		}
		defer store.Close()
		run, err := store.Record(ctx, audit.RunInfo{
			SiteName:  s.Business.Name,
			SitePath:  cfg.Build.SitePath,
			StartedAt: started,
		}, res.Verdicts, res.Summary)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "recorded run %s\n", run.ID)
		return nil
	}

	if !watchMode {
		return once(cmd.Context())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := once(ctx); err != nil {
		var cerr *site.ConfigError
		if !errors.As(err, &cerr) {
			return err
		}
		logger.Error("initial build failed; waiting for changes", "error", err)
	}
	return watch.Run(ctx, watch.Options{
		Paths:  []string{cfg.Build.SitePath},
		Logger: logger,
	}, once)
}

func init() {
	buildCmd.Flags().String("output", "dist", "output directory")
	buildCmd.Flags().Int("workers", 0, "parallel evaluation workers (0 = number of CPUs)")
	buildCmd.Flags().Bool("watch", false, "rebuild when the business profile changes")
	buildCmd.Flags().Bool("record", false, "record the run in the audit log")
	viper.BindPFlag("output_dir", buildCmd.Flags().Lookup("output"))
	viper.BindPFlag("workers", buildCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(buildCmd)
}
