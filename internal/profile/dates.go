package profile

import (
	"strings"
	"time"
)

// dateLayouts are tried in order: full date, year-month, bare year.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ParseDate turns a vendor date value into a calendar point. Vendors
// send full dates, year-months, bare years, and the occasional
// timestamp with a trailing Z. Anything unparseable reads as "no date".
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		s := strings.TrimSpace(d)
		s = strings.TrimSuffix(s, "Z")
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		// Extended fallback for full timestamps.
		if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
			return t, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// FormatDateRange renders a human period like "Jan 2020 - Present".
// Only sides with a parseable date contribute; an ongoing span always
// ends in "Present". No dates, no period.
func FormatDateRange(start, end *time.Time, current bool) string {
	var startStr string
	if start != nil {
		startStr = formatMonthYear(*start)
	}

	var endStr string
	switch {
	case current:
		endStr = "Present"
	case end != nil:
		endStr = formatMonthYear(*end)
	}

	if startStr != "" && endStr != "" {
		return startStr + " - " + endStr
	}
	if startStr != "" {
		return startStr
	}
	return endStr
}

func formatMonthYear(t time.Time) string {
	return t.Format("Jan 2006")
}
