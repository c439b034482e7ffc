package holidays

import "time"

// date is a calendar day without time-of-day or location.
// Rules are evaluated on dates and only turned into instants at the end.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateOf returns the calendar day of t as seen in loc.
// A nil loc keeps t's own location.
func dateOf(t time.Time, loc *time.Location) date {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

// valid reports whether d names a real day of the Gregorian calendar.
func (d date) valid() bool {
	if d.month < time.January || d.month > time.December || d.day < 1 {
		return false
	}
	return d.day <= daysIn(d.year, d.month)
}

// toTime returns local midnight of d in loc (time.Local when loc is nil).
func (d date) toTime(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d date) addDays(n int) date {
	t := time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC)
	return date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d date) weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d date) after(other date) bool {
	return other.before(d)
}

func (d date) String() string {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

// daysIn returns the number of days in month m of year y.
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// maxDaysIn is the longest the month can be in any year, so Feb 29 is
// accepted by annual rules.
func maxDaysIn(m time.Month) int {
	return daysIn(2000, m)
}
