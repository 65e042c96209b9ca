// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch re-runs a callback when the site configuration changes on
// disk. Editors often save through rename or several writes, so events are
// debounced and the parent directory is watched instead of the file.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/pdiddy/sitegate/internal/logging"
)

// DefaultDebounce is the quiet period after the last event before a rebuild.
const DefaultDebounce = 200 * time.Millisecond

// DefaultIgnore lists editor scratch files that never trigger a rebuild.
var DefaultIgnore = []string{"*.swp", "*.swx", "*~", ".#*", "#*#", "*.tmp"}

// ErrNoPath indicates no file was given to watch.
var ErrNoPath = errors.New("no file configured for watching")

// Options configures a watch.
type Options struct {
	// Paths are the files to watch. Their directories are watched and events
	// are filtered by base name.
	Paths []string

	// Ignore are glob patterns over base names to drop.
	Ignore []string

	Debounce time.Duration
	Logger   *slog.Logger
}

// Run blocks until ctx is done, calling onChange after each debounced burst
// of changes to a watched file. Errors from onChange are logged and the
// watch continues.
func Run(ctx context.Context, opts Options, onChange func(context.Context) error) error {
	if len(opts.Paths) == 0 {
		return ErrNoPath
	}
	log := logging.Or(opts.Logger)
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ignores, err := compile(append(append([]string{}, DefaultIgnore...), opts.Ignore...))
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	names := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range opts.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		names[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		log.Info("watching for changes", "dir", dir)
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !Relevant(ev, names, ignores) {
				continue
			}
			log.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				log.Error("rebuild failed", "error", err)
			}
		}
	}
}

// Relevant reports whether an event touches a watched file and is not
// ignored. Chmod-only events are dropped.
func Relevant(ev fsnotify.Event, names map[string]bool, ignores []glob.Glob) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(ev.Name)
	for _, g := range ignores {
		if g.Match(base) {
			return false
		}
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return names[abs]
}

func compile(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}
