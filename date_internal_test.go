package holidays

import (
	"testing"
	"time"
)

func TestDateBefore_EqualDates(t *testing.T) {
	t.Parallel()

	d1 := date{year: 2026, month: time.January, day: 1}
	if d1.before(d1) {
		t.Error("equal dates: d.before(d) should be false")
	}
	if d1.after(d1) {
		t.Error("equal dates: d.after(d) should be false")
	}
}

func TestDateBefore_DifferentYear(t *testing.T) {
	t.Parallel()

	d1 := date{year: 2025, month: time.December, day: 31}
	d2 := date{year: 2026, month: time.January, day: 1}
	if !d1.before(d2) {
		t.Error("2025-12-31 should be before 2026-01-01")
	}
	if !d2.after(d1) {
		t.Error("2026-01-01 should be after 2025-12-31")
	}
}

func TestDateAddDays_CrossesYear(t *testing.T) {
	t.Parallel()

	got := date{year: 2024, month: time.December, day: 30}.addDays(4)
	want := date{year: 2025, month: time.January, day: 3}
	if got != want {
		t.Errorf("addDays(4) = %v, want %v", got, want)
	}
	if back := got.addDays(-4); back != (date{year: 2024, month: time.December, day: 30}) {
		t.Errorf("addDays(-4) = %v", back)
	}
}

func TestDateValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    date
		want bool
	}{
		{date{2024, time.February, 29}, true},
		{date{2023, time.February, 29}, false},
		{date{2023, time.April, 31}, false},
		{date{2023, time.December, 31}, true},
		{date{2023, 13, 1}, false},
		{date{2023, time.January, 0}, false},
		{date{}, false},
	}
	for _, tt := range tests {
		if got := tt.d.valid(); got != tt.want {
			t.Errorf("%+v.valid() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDateToTime_NilLocationIsLocal(t *testing.T) {
	t.Parallel()

	got := date{year: 2024, month: time.March, day: 31}.toTime(nil)
	if got.Location() != time.Local {
		t.Errorf("location = %v, want Local", got.Location())
	}
	if got.Hour() != 0 || got.Day() != 31 {
		t.Errorf("toTime = %v, want local midnight", got)
	}
}

func TestDateOf_NormalizesLocation(t *testing.T) {
	t.Parallel()

	jst := time.FixedZone("JST", 9*60*60)
	// 2026-01-01 15:00 UTC is already 2026-01-02 in JST.
	instant := time.Date(2026, time.January, 1, 15, 0, 0, 0, time.UTC)
	if got := dateOf(instant, jst); got != (date{2026, time.January, 2}) {
		t.Errorf("dateOf in JST = %v, want 2026-01-02", got)
	}
	if got := dateOf(instant, nil); got != (date{2026, time.January, 1}) {
		t.Errorf("dateOf without location = %v, want 2026-01-01", got)
	}
}

func TestEaster_ReferenceDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{1818, time.March, 22},
		{2000, time.April, 23},
		{2019, time.April, 21},
		{2023, time.April, 9},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2038, time.April, 25},
		{2285, time.March, 22},
	}
	for _, tt := range tests {
		want := date{year: tt.year, month: tt.month, day: tt.day}
		if got := easter(tt.year); got != want {
			t.Errorf("easter(%d) = %v, want %v", tt.year, got, want)
		}
	}
}
