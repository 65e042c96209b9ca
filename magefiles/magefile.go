// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build mage

// Package main contains Mage build targets for sitegate developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories a site project expects.
var projectDirs = []string{
	"dist",
	".sitegate",
}

const (
	binDir  = "bin"
	binName = "sitegate"
	cmdPkg  = "./cmd/sitegate"

	// buildTags enables FTS5 in go-sqlite3 for audit text queries.
	buildTags = "sqlite_fts5"

	siteFile    = "site.yaml"
	siteExample = "site.example.yaml"
	configFile  = "sitegate.yaml"
)

const starterConfig = `# sitegate tool configuration
site: site.yaml
output_dir: dist
primary_identity_page: home
robots:
  disallow:
    - /admin/
    - /api/
    - /private/
audit:
  db_path: .sitegate/audit.db
log:
  level: info
  format: text
`

// Init creates the working directories, a starter sitegate.yaml, and a
// site.yaml copied from the example profile. Existing files are kept.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	if err := writeIfMissing(configFile, []byte(starterConfig)); err != nil {
		return err
	}
	example, err := os.ReadFile(siteExample)
	if err != nil {
		return fmt.Errorf("reading %s: %w", siteExample, err)
	}
	if err := writeIfMissing(siteFile, example); err != nil {
		return err
	}
	fmt.Println("Project initialized.")
	return nil
}

func writeIfMissing(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Println("   kept", path)
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Println("  ", path)
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-tags", buildTags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the test suite with the same build tags as Build.
func Test() error {
	if err := sh.RunV("go", "test", "-tags", buildTags, "./..."); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Check builds the CLI and validates the example profile with it.
func Check() error {
	mg.Deps(Build)
	if err := sh.RunV(filepath.Join(binDir, binName), "validate", "--site", siteExample); err != nil {
		return fmt.Errorf("validating %s: %w", siteExample, err)
	}
	return nil
}
