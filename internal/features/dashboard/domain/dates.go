package domain

import (
	"strings"
	"time"

	"dispatch-board/internal/core/docstore"
)

// displayLayout renders dates at minute precision: "2026-08-20 10:30".
const displayLayout = "2006-01-02 15:04"

// dateLayouts are the ISO-like string shapes seen in drifted records.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// AnyDateFrom tries each candidate key and returns the first resolvable
// date: either a store timestamp value or an ISO-like string. A value
// that fails to parse is skipped and the next key tried. The second
// return reports whether anything resolved.
func AnyDateFrom(rec docstore.Record, keys []string) (time.Time, bool) {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok {
			continue
		}
		switch v.Kind {
		case docstore.KindTime:
			if !v.Time.IsZero() {
				return v.Time, true
			}
		case docstore.KindString:
			s := strings.TrimSpace(v.Str)
			if s == "" {
				continue
			}
			for _, layout := range dateLayouts {
				if t, err := time.Parse(layout, s); err == nil {
					return t, true
				}
			}
		}
	}
	return time.Time{}, false
}

// FormatDateLike renders a single value for display. Timestamps format
// at minute precision, strings are returned verbatim, anything else
// yields an empty string.
func FormatDateLike(v docstore.Value) string {
	switch v.Kind {
	case docstore.KindTime:
		if v.Time.IsZero() {
			return ""
		}
		return v.Time.Format(displayLayout)
	case docstore.KindString:
		return v.Str
	default:
		return ""
	}
}

// FormatAnyDate tries each candidate key and returns the first non-empty
// rendering, or an empty string when no key resolves.
func FormatAnyDate(rec docstore.Record, keys []string) string {
	for _, k := range keys {
		v, ok := rec[k]
		if !ok {
			continue
		}
		if s := FormatDateLike(v); s != "" {
			return s
		}
	}
	return ""
}
