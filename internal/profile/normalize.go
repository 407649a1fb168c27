package profile

import (
	"fmt"
	"strings"
	"time"
)

// placeholder stands in for display fields that cannot be derived.
const placeholder = "N/A"

// Normalize converts one raw vendor record into the canonical profile.
// source tags the vendor; now anchors open-ended experience spans.
func Normalize(r Raw, source string, now time.Time) Profile {
	experience := r.List("experience")
	periods := ParseExperience(experience)

	// The current employer comes from the vendor's own ordering of the
	// experience list, before any re-sort of the history.
	company := placeholder
	if len(experience) > 0 {
		if m, ok := experience[0].(map[string]any); ok {
			company = Raw(m).StringOr("company_name", placeholder)
		}
	}

	summary := r.FirstString("summary", "about")

	return Profile{
		Name:             r.StringOr("full_name", placeholder),
		Title:            r.StringOr("headline", placeholder),
		Company:          company,
		Location:         locationOf(r),
		ExperienceMonths: TotalMonths(periods, now),
		Skills:           skillNames(r.List("skills")),
		Education:        educationEntries(r.List("education")),
		LinkedInURL:      LinkedInURL(r),
		Summary:          strings.TrimSpace(summary),
		Positions:        Positions(periods),
		PhotoURL:         PhotoURL(r),
		Source:           source,
	}
}

func locationOf(r Raw) string {
	if loc := r.FirstString("location", "city", "country"); loc != "" {
		return loc
	}
	return placeholder
}

// skillNames coerces skill entries to plain strings. Entries may be
// bare strings, objects with a name field, or stray scalars.
func skillNames(list []any) []string {
	skills := make([]string, 0, len(list))
	for _, v := range list {
		switch s := v.(type) {
		case string:
			skills = append(skills, s)
		case map[string]any:
			if name := Raw(s).FirstString("name"); name != "" {
				skills = append(skills, name)
			}
		default:
			skills = append(skills, fmt.Sprintf("%v", v))
		}
	}
	return skills
}

// educationEntries accepts objects with school/degree fields or bare
// strings (treated as a school name). Entries empty on both sides are
// dropped.
func educationEntries(list []any) []Education {
	out := make([]Education, 0, len(list))
	for _, v := range list {
		switch e := v.(type) {
		case map[string]any:
			r := Raw(e)
			school := r.FirstString("school")
			degree := r.FirstString("degree")
			if school != "" || degree != "" {
				out = append(out, Education{School: school, Degree: degree})
			}
		case string:
			if e != "" {
				out = append(out, Education{School: e})
			}
		}
	}
	return out
}
