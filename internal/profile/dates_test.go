package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  time.Time
		ok    bool
	}{
		{"full date", "2021-07-15", date(2021, time.July, 15), true},
		{"year month", "2021-07", date(2021, time.July, 1), true},
		{"year only", "2021", date(2021, time.January, 1), true},
		{"trailing zone marker", "2021-07-15Z", date(2021, time.July, 15), true},
		{"full timestamp", "2021-07-15T10:30:00Z", date(2021, time.July, 15).Add(10*time.Hour + 30*time.Minute), true},
		{"surrounding whitespace", " 2020-03 ", date(2020, time.March, 1), true},
		{"garbage", "not-a-date", time.Time{}, false},
		{"empty string", "", time.Time{}, false},
		{"nil", nil, time.Time{}, false},
		{"wrong type", 2021.0, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDate_TimePassthrough(t *testing.T) {
	t.Parallel()

	want := date(2019, time.May, 2)
	got, ok := ParseDate(want)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFormatDateRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		start   *time.Time
		end     *time.Time
		current bool
		want    string
	}{
		{"both sides", datePtr(2020, time.January, 1), datePtr(2021, time.June, 1), false, "Jan 2020 - Jun 2021"},
		{"ongoing", datePtr(2020, time.January, 1), nil, true, "Jan 2020 - Present"},
		{"ongoing trumps end date", datePtr(2020, time.January, 1), datePtr(2021, time.June, 1), true, "Jan 2020 - Present"},
		{"start only", datePtr(2020, time.January, 1), nil, false, "Jan 2020"},
		{"end only", nil, datePtr(2021, time.June, 1), false, "Jun 2021"},
		{"no dates", nil, nil, false, ""},
		{"no dates but current", nil, nil, true, "Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatDateRange(tt.start, tt.end, tt.current))
		})
	}
}
