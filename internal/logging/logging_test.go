// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sitegate/pkg/types"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(types.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("metadata document failed lint", "route", "/about")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "/about", rec["route"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(types.LogConfig{}, &buf)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("evaluated site", "candidates", 11)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "candidates=11")
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New(types.LogConfig{Format: "xml"}, &bytes.Buffer{})
	assert.EqualError(t, err, `unknown log format "xml" (want text or json)`)
}

func TestOr(t *testing.T) {
	assert.Same(t, slog.Default(), Or(nil))
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, l, Or(l))
}
