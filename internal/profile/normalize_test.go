package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Raw {
	return Raw{
		"full_name": "Jane Doe",
		"headline":  "Staff Engineer",
		"location":  "Berlin, Germany",
		"summary":   "  Builds data platforms.  ",
		"experience": []any{
			map[string]any{
				"title":        "Staff Engineer",
				"company_name": "Acme",
				"date_from":    "2021-03",
				"date_to":      "Present",
			},
			map[string]any{
				"title":        "Engineer",
				"company_name": "Globex",
				"date_from":    "2018-01",
				"date_to":      "2021-02",
			},
		},
		"skills": []any{
			"Go",
			map[string]any{"name": "Kubernetes"},
			map[string]any{"endorsements": 12.0},
		},
		"education": []any{
			map[string]any{"school": "MIT", "degree": "BSc"},
			map[string]any{"school": "", "degree": ""},
			"Stanford",
		},
		"profile_url":       "linkedin.com/in/janedoe",
		"profile_image_url": "cdn.example.com/jane.jpg",
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	now := date(2022, time.March, 15)
	p := Normalize(sampleRecord(), "CoreSignal", now)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "Staff Engineer", p.Title)
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "Berlin, Germany", p.Location)
	assert.Equal(t, "Builds data platforms.", p.Summary)
	assert.Equal(t, "https://linkedin.com/in/janedoe", p.LinkedInURL)
	assert.Equal(t, "https://cdn.example.com/jane.jpg", p.PhotoURL)
	assert.Equal(t, "CoreSignal", p.Source)

	// Jan 2018 through Mar 2022, contiguous.
	assert.Equal(t, 51, p.ExperienceMonths)

	assert.Equal(t, []string{"Go", "Kubernetes"}, p.Skills)

	require.Len(t, p.Education, 2)
	assert.Equal(t, Education{School: "MIT", Degree: "BSc"}, p.Education[0])
	assert.Equal(t, Education{School: "Stanford"}, p.Education[1])

	require.Len(t, p.Positions, 2)
	assert.Equal(t, "Staff Engineer", p.Positions[0].Title)
	assert.Equal(t, "Mar 2021 - Present", p.Positions[0].Period)
	assert.Equal(t, "Jan 2018 - Feb 2021", p.Positions[1].Period)
}

func TestNormalize_CompanyFromVendorOrder(t *testing.T) {
	t.Parallel()

	// The vendor's first entry is the older role here. Company still
	// comes from it, while the position list is re-sorted.
	r := Raw{
		"experience": []any{
			map[string]any{"title": "Old", "company_name": "FirstListed", "date_from": "2010-01", "date_to": "2012-01"},
			map[string]any{"title": "New", "company_name": "Recent", "date_from": "2020-01", "date_to": "Present"},
		},
	}

	p := Normalize(r, "CoreSignal", date(2024, time.January, 1))
	assert.Equal(t, "FirstListed", p.Company)
	require.NotEmpty(t, p.Positions)
	assert.Equal(t, "New", p.Positions[0].Title)
}

func TestNormalize_Placeholders(t *testing.T) {
	t.Parallel()

	p := Normalize(Raw{}, "CoreSignal", date(2024, time.January, 1))

	assert.Equal(t, "N/A", p.Name)
	assert.Equal(t, "N/A", p.Title)
	assert.Equal(t, "N/A", p.Company)
	assert.Equal(t, "N/A", p.Location)
	assert.Zero(t, p.ExperienceMonths)
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.Education)
	assert.Empty(t, p.Positions)
	assert.Empty(t, p.LinkedInURL)
	assert.Empty(t, p.PhotoURL)
	assert.Empty(t, p.Summary)
}

func TestNormalize_LocationCascade(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Berlin", Normalize(Raw{"location": "Berlin"}, "x", date(2024, time.January, 1)).Location)
	assert.Equal(t, "Munich", Normalize(Raw{"city": "Munich"}, "x", date(2024, time.January, 1)).Location)
	assert.Equal(t, "Germany", Normalize(Raw{"country": "Germany"}, "x", date(2024, time.January, 1)).Location)
}

func TestNormalize_SummaryFallsBackToAbout(t *testing.T) {
	t.Parallel()

	p := Normalize(Raw{"about": "About text"}, "x", date(2024, time.January, 1))
	assert.Equal(t, "About text", p.Summary)
}

func TestNormalize_WrongTypedFieldsDoNotPanic(t *testing.T) {
	t.Parallel()

	r := Raw{
		"full_name":  7.0,
		"experience": "not a list",
		"skills":     map[string]any{"oops": true},
		"education":  42.0,
	}

	p := Normalize(r, "x", date(2024, time.January, 1))
	assert.Equal(t, "N/A", p.Name)
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.Education)
	assert.Empty(t, p.Positions)
}

func TestNormalize_NonObjectFirstExperienceEntry(t *testing.T) {
	t.Parallel()

	r := Raw{
		"experience": []any{
			"garbage",
			map[string]any{"title": "Engineer", "company_name": "Acme", "date_from": "2020-01", "date_to": "Present"},
		},
	}

	p := Normalize(r, "x", date(2024, time.January, 1))
	// First entry is unusable, so the company placeholder applies; the
	// valid entry still feeds the position history.
	assert.Equal(t, "N/A", p.Company)
	require.Len(t, p.Positions, 1)
	assert.Equal(t, "Engineer", p.Positions[0].Title)
}
