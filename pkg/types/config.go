// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LogConfig selects the slog level and handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// RobotsConfig holds the static part of robots.txt.
type RobotsConfig struct {
	// Disallow lists path prefixes blocked for every user agent
	// (default /admin/, /api/, /private/).
	Disallow []string `json:"disallow" yaml:"disallow" mapstructure:"disallow"`
}

// BuildConfig holds settings for a build run.
type BuildConfig struct {
	// SitePath is the business profile YAML (default site.yaml).
	SitePath string `json:"site" yaml:"site" mapstructure:"site"`

	// OutputDir receives verdicts, sitemap, robots, and jsonld/ (default dist).
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Workers bounds parallel candidate evaluation (default NumCPU).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`

	// PrimaryIdentityPage is the one page type whose business-identity
	// document carries site-wide facts such as the aggregate rating
	// (default home).
	PrimaryIdentityPage PageType `json:"primary_identity_page" yaml:"primary_identity_page" mapstructure:"primary_identity_page"`

	Robots RobotsConfig `json:"robots" yaml:"robots" mapstructure:"robots"`
}

// AuditConfig holds settings for the audit log.
type AuditConfig struct {
	// DBPath is the SQLite database file (default .sitegate/audit.db).
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`

	// MaxResults is the default query limit (default 50).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all tool settings read from sitegate.yaml and SITEGATE_* env.
type Config struct {
	Build BuildConfig `json:"build" yaml:"build" mapstructure:",squash"`
	Audit AuditConfig `json:"audit" yaml:"audit" mapstructure:"audit"`
	Log   LogConfig   `json:"log" yaml:"log" mapstructure:"log"`
}
