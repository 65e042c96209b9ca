// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsonld

import (
	"strings"

	"github.com/pdiddy/sitegate/pkg/types"
)

// OpeningHours converts weekday strings like "08:00-17:00" into opening-hours
// specifications. Days that are blank, marked closed, or lack an open/close
// pair are skipped.
func OpeningHours(h *types.BusinessHours) []Document {
	if h == nil {
		return nil
	}
	var out []Document
	for _, day := range h.Days() {
		opens, closes, ok := parseRange(day.Hours)
		if !ok {
			continue
		}
		out = append(out, Document{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": day.Day,
			"opens":     opens,
			"closes":    closes,
		})
	}
	return out
}

func parseRange(raw string) (opens, closes string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "closed") {
		return "", "", false
	}
	opens, closes, found := strings.Cut(raw, "-")
	if !found {
		return "", "", false
	}
	opens, closes = strings.TrimSpace(opens), strings.TrimSpace(closes)
	if opens == "" || closes == "" {
		return "", "", false
	}
	return opens, closes, true
}
