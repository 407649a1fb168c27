// Package profile normalizes vendor-shaped people records into one
// canonical profile. Vendors disagree on field names, field types, and
// date formats, so everything here is best-effort: malformed data reads
// as missing, never as an error.
package profile

import "time"

// Education is one schooling entry on a profile.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
}

// Position is a display-ready experience entry. The parsed dates used
// for ordering are not part of the output shape.
type Position struct {
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Period      string `json:"period" yaml:"period"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
}

// WorkPeriod is one experience span extracted from a vendor record.
// Current covers the three spellings vendors use for "still there": an
// explicit current flag, a missing or empty end date, or a literal
// "present" token.
type WorkPeriod struct {
	Title       string
	Company     string
	Location    string
	Description string
	Start       *time.Time
	End         *time.Time
	Current     bool
}

// Profile is the canonical, vendor-independent record. It is pure
// derived data: built once from a raw vendor record and never mutated.
type Profile struct {
	Name             string      `json:"name"`
	Title            string      `json:"title"`
	Company          string      `json:"company"`
	Location         string      `json:"location"`
	ExperienceMonths int         `json:"experience_months"`
	Skills           []string    `json:"skills"`
	Education        []Education `json:"education"`
	LinkedInURL      string      `json:"linkedin_url"`
	Summary          string      `json:"summary"`
	Positions        []Position  `json:"positions"`
	PhotoURL         string      `json:"photo_url"`
	Source           string      `json:"source"`
}
