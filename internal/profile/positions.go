package profile

import (
	"sort"
	"strings"
	"time"
)

// fallbackTitle is used when an experience entry names no role at all.
const fallbackTitle = "Role"

// ParseExperience converts vendor experience entries into work periods.
// Entries that are not objects are skipped rather than treated as
// errors.
func ParseExperience(entries []any) []WorkPeriod {
	periods := make([]WorkPeriod, 0, len(entries))

	for _, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		r := Raw(m)

		p := WorkPeriod{
			Title:       r.FirstString("title", "position"),
			Company:     r.FirstString("company_name", "company"),
			Location:    r.FirstString("location"),
			Description: r.FirstString("description"),
			Current:     isCurrent(r),
		}
		if p.Title == "" {
			p.Title = fallbackTitle
		}
		if t, ok := ParseDate(r["date_from"]); ok {
			p.Start = &t
		}
		if t, ok := ParseDate(r["date_to"]); ok {
			p.End = &t
		}
		periods = append(periods, p)
	}

	return periods
}

// isCurrent applies the three-way "still there" rule: an explicit
// current flag, a missing or empty end date, or a "present" token.
func isCurrent(r Raw) bool {
	if r.Bool("current") {
		return true
	}
	switch v := r["date_to"].(type) {
	case nil:
		return true
	case string:
		return v == "" || strings.EqualFold(v, "present")
	default:
		return false
	}
}

type datedPosition struct {
	Position
	start time.Time // zero when unknown, which sorts last
}

// Positions builds the display-ready history: formatted period strings,
// duplicate roles collapsed, most recent first.
func Positions(periods []WorkPeriod) []Position {
	dated := make([]datedPosition, 0, len(periods))
	seen := make(map[[3]string]struct{}, len(periods))

	for _, p := range periods {
		period := FormatDateRange(p.Start, p.End, p.Current)

		// Vendors frequently repeat the same role across list entries;
		// the first occurrence wins.
		key := [3]string{
			strings.ToLower(strings.TrimSpace(p.Title)),
			strings.ToLower(strings.TrimSpace(p.Company)),
			strings.ToLower(strings.TrimSpace(period)),
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		dp := datedPosition{
			Position: Position{
				Title:       p.Title,
				Company:     p.Company,
				Period:      period,
				Location:    p.Location,
				Description: p.Description,
			},
		}
		if p.Start != nil {
			dp.start = *p.Start
		}
		dated = append(dated, dp)
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].start.After(dated[j].start)
	})

	out := make([]Position, len(dated))
	for i, dp := range dated {
		out[i] = dp.Position
	}
	return out
}
