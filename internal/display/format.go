// Package display renders canonical profiles for the API and CLI.
package display

import (
	"fmt"

	"github.com/sells-group/people-search/internal/profile"
)

// DefaultVisibleSkills is how many skills show before the fold.
const DefaultVisibleSkills = 5

// SkillGroups splits a skill list for progressive disclosure.
type SkillGroups struct {
	Visible []string `json:"visible" yaml:"visible"`
	Hidden  []string `json:"hidden" yaml:"hidden"`
}

// Record is the caller-facing result shape.
type Record struct {
	Name        string             `json:"name" yaml:"name"`
	Title       string             `json:"title" yaml:"title"`
	Company     string             `json:"company" yaml:"company"`
	Location    string             `json:"location" yaml:"location"`
	Experience  string             `json:"experience" yaml:"experience"`
	Skills      SkillGroups        `json:"skills" yaml:"skills"`
	Education   []string           `json:"education" yaml:"education"`
	LinkedInURL string             `json:"linkedin_url" yaml:"linkedin_url"`
	PhotoURL    string             `json:"photo_url" yaml:"photo_url"`
	Summary     string             `json:"summary" yaml:"summary"`
	Positions   []profile.Position `json:"positions" yaml:"positions"`
	Source      string             `json:"source" yaml:"source"`
}

// FromProfile converts a canonical profile into a display record.
func FromProfile(p profile.Profile) Record {
	return Record{
		Name:        p.Name,
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Experience:  Experience(p.ExperienceMonths),
		Skills:      Skills(p.Skills, DefaultVisibleSkills),
		Education:   Education(p.Education),
		LinkedInURL: p.LinkedInURL,
		PhotoURL:    p.PhotoURL,
		Summary:     p.Summary,
		Positions:   p.Positions,
		Source:      p.Source,
	}
}

// Experience renders a month count as "2 years 3 months", "1 year", or
// "6 months".
func Experience(months int) string {
	if months < 12 {
		return plural(months, "month")
	}

	years := months / 12
	remainder := months % 12
	if remainder == 0 {
		return plural(years, "year")
	}
	return plural(years, "year") + " " + plural(remainder, "month")
}

// Skills splits a skill list into the first max visible entries and the
// hidden remainder.
func Skills(skills []string, max int) SkillGroups {
	groups := SkillGroups{Visible: []string{}, Hidden: []string{}}
	if len(skills) == 0 {
		return groups
	}
	if max < 0 {
		max = 0
	}
	if len(skills) <= max {
		groups.Visible = skills
		return groups
	}
	groups.Visible = skills[:max]
	groups.Hidden = skills[max:]
	return groups
}

// Education renders entries like "BSc from MIT", or the lone side when
// school or degree is missing.
func Education(entries []profile.Education) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.School != "" && e.Degree != "":
			out = append(out, fmt.Sprintf("%s from %s", e.Degree, e.School))
		case e.School != "":
			out = append(out, e.School)
		case e.Degree != "":
			out = append(out, e.Degree)
		}
	}
	return out
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
