// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sitegate CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sitegate/internal/logging"
	"github.com/pdiddy/sitegate/internal/site"
	"github.com/pdiddy/sitegate/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg holds tool settings resolved in PersistentPreRunE.
	cfg types.Config

	logger *slog.Logger
)

// rootCmd is the base command for the sitegate CLI.
var rootCmd = &cobra.Command{
	Use:   "sitegate",
	Short: "Score and gate local-business marketing pages before they are built",
	Long: `sitegate reads a business profile (site.yaml) and decides, for every
page a local-business site could generate, whether the page has enough real
content to be built and whether it should be indexed.

It scores home, service, location, location+service, about, and contact pages
against a fixed content table, applies hard requirements (local proof for
location pages, pricing and duration for service pages), and emits verdicts,
schema.org metadata, a sitemap restricted to indexable pages, and robots
directives for the rest.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
		l, err := logging.New(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(l)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sitegate.yaml or ~/.config/sitegate/sitegate.yaml)")
	rootCmd.PersistentFlags().String("site", "site.yaml", "business profile YAML")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	viper.BindPFlag("site", rootCmd.PersistentFlags().Lookup("site"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("site", "site.yaml")
	viper.SetDefault("output_dir", "dist")
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("primary_identity_page", string(types.PageHome))
	viper.SetDefault("robots.disallow", []string{"/admin/", "/api/", "/private/"})
	viper.SetDefault("audit.db_path", filepath.Join(".sitegate", "audit.db"))
	viper.SetDefault("audit.max_results", 50)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sitegate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sitegate"))
		}
	}

	viper.SetEnvPrefix("SITEGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadSite loads the configured business profile.
func loadSite() (*types.Site, error) {
	s, err := site.Load(cfg.Build.SitePath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded site", "path", cfg.Build.SitePath,
		"services", len(s.Services), "areas", len(s.ServiceAreas))
	for _, w := range site.Check(s) {
		logger.Warn("ignoring malformed site field", "problem", w)
	}
	return s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
