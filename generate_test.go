package holidays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// d is a test helper to construct UTC midnights.
func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustRule(t *testing.T, s string) Rule {
	t.Helper()
	r, ok := ParseRule(s)
	require.True(t, ok, "rule %q should parse", s)
	return r
}

func TestEvaluate_Fixed(t *testing.T) {
	t.Parallel()

	for _, year := range []int{1999, 2023, 2024, 2100} {
		occs := Evaluate(Fixed{Month: time.December, Day: 25}, year, time.UTC)
		require.Len(t, occs, 1)
		assert.Equal(t, d(year, time.December, 25), occs[0].Start)
		assert.Equal(t, d(year, time.December, 26), occs[0].End)
		assert.False(t, occs[0].Substitute)
	}
}

func TestEvaluate_LeapDay(t *testing.T) {
	t.Parallel()

	r := Fixed{Month: time.February, Day: 29}
	assert.Len(t, Evaluate(r, 2024, time.UTC), 1)
	assert.Empty(t, Evaluate(r, 2023, time.UTC))
}

func TestEvaluate_FixedOnce(t *testing.T) {
	t.Parallel()

	r := mustRule(t, "2024-05-08")
	occs := Evaluate(r, 2024, time.UTC)
	require.Len(t, occs, 1)
	assert.Equal(t, d(2024, time.May, 8), occs[0].Start)
	assert.Empty(t, Evaluate(r, 2025, time.UTC))
	assert.Empty(t, Evaluate(r, 2023, time.UTC))
}

func TestEvaluate_EasterRelative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule string
		year int
		want time.Time
	}{
		{"easter", 2024, d(2024, time.March, 31)},
		{"easter", 2023, d(2023, time.April, 9)},
		{"easter -2", 2024, d(2024, time.March, 29)},
		{"easter 1", 2025, d(2025, time.April, 21)},
		{"easter 39", 2024, d(2024, time.May, 9)},
		{"easter 50", 2024, d(2024, time.May, 20)},
		{"easter -47", 2024, d(2024, time.February, 13)},
	}
	for _, tt := range tests {
		occs := Evaluate(mustRule(t, tt.rule), tt.year, time.UTC)
		require.Len(t, occs, 1, tt.rule)
		assert.Equal(t, tt.want, occs[0].Start, "%s in %d", tt.rule, tt.year)
	}
}

func TestEvaluate_NthWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule string
		year int
		want time.Time
	}{
		{"thanksgiving 2024", "last thu in nov", 2024, d(2024, time.November, 28)},
		{"last thursday 2023", "last thu in nov", 2023, d(2023, time.November, 30)},
		{"4th thursday 2023", "4th thu in nov", 2023, d(2023, time.November, 23)},
		{"martin luther king day", "3rd mon in jan", 2024, d(2024, time.January, 15)},
		{"labor day", "1st mon in sep", 2024, d(2024, time.September, 2)},
		{"memorial day", "last mon in may", 2024, d(2024, time.May, 27)},
		{"second to last sunday", "-2nd sun in oct", 2024, d(2024, time.October, 20)},
		{"fifth thursday exists", "5th thu in feb", 2024, d(2024, time.February, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occs := Evaluate(mustRule(t, tt.rule), tt.year, time.UTC)
			require.Len(t, occs, 1)
			assert.Equal(t, tt.want, occs[0].Start)
		})
	}
}

func TestEvaluate_NthWeekdayMissing(t *testing.T) {
	t.Parallel()

	// February 2024 has only four Mondays.
	assert.Empty(t, Evaluate(mustRule(t, "5th mon in feb"), 2024, time.UTC))
	assert.Empty(t, Evaluate(mustRule(t, "-5th mon in feb"), 2024, time.UTC))
}

func TestEvaluate_WeekdayRelative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule string
		year int
		want time.Time
	}{
		{"victoria day", "mon before 05-25", 2024, d(2024, time.May, 20)},
		{"anchor on weekday is skipped", "mon before 05-25", 2020, d(2020, time.May, 18)},
		{"after", "tue after 11-01", 2024, d(2024, time.November, 5)},
		{"after skips anchor", "fri after 11-01", 2024, d(2024, time.November, 8)},
		{"inclusive hits anchor", "sat on or after 06-20", 2020, d(2020, time.June, 20)},
		{"inclusive walks", "sat on or after 06-20", 2024, d(2024, time.June, 22)},
		{"crosses into next year", "sun after 12-31", 2023, d(2024, time.January, 7)},
		{"crosses into previous year", "fri before 01-01", 2025, d(2024, time.December, 27)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occs := Evaluate(mustRule(t, tt.rule), tt.year, time.UTC)
			require.Len(t, occs, 1)
			assert.Equal(t, tt.want, occs[0].Start)
			assert.Equal(t, tt.want.AddDate(0, 0, 1), occs[0].End)
		})
	}
}

func TestEvaluate_Span(t *testing.T) {
	t.Parallel()

	occs := Evaluate(mustRule(t, "12-24 3d"), 2024, time.UTC)
	require.Len(t, occs, 1)
	assert.Equal(t, d(2024, time.December, 24), occs[0].Start)
	assert.Equal(t, d(2024, time.December, 27), occs[0].End)

	// Spans may run into the next year.
	occs = Evaluate(mustRule(t, "12-30 4d"), 2024, time.UTC)
	require.Len(t, occs, 1)
	assert.Equal(t, d(2025, time.January, 3), occs[0].End)
}

func TestEvaluate_Timezone(t *testing.T) {
	t.Parallel()

	berlin := time.FixedZone("CET", 60*60)
	occs := Evaluate(Fixed{Month: time.December, Day: 25}, 2024, berlin)
	require.Len(t, occs, 1)
	assert.Equal(t, time.Date(2024, time.December, 25, 0, 0, 0, 0, berlin), occs[0].Start)
	assert.Equal(t, d(2024, time.December, 24).Add(23*time.Hour), occs[0].Start.UTC())

	occs = Evaluate(Fixed{Month: time.December, Day: 25}, 2024, nil)
	require.Len(t, occs, 1)
	assert.Equal(t, time.Local, occs[0].Start.Location())
}

func TestEvaluate_DSTDayStaysCalendarDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 2024-03-31 is both Easter Sunday and the spring DST switch in Berlin.
	occs := Evaluate(EasterRelative{}, 2024, loc)
	require.Len(t, occs, 1)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, loc), occs[0].End)
	assert.Equal(t, 23*time.Hour, occs[0].End.Sub(occs[0].Start))
}
