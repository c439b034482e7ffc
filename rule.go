package holidays

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Rule is a compiled holiday rule. The set of implementations is closed:
// Fixed, FixedOnce, NthWeekday, WeekdayRelative, EasterRelative and Span.
type Rule interface {
	fmt.Stringer
	rule()
}

// Fixed is a date that recurs every year, e.g. "12-25".
type Fixed struct {
	Month time.Month
	Day   int
}

// FixedOnce is a single date that never recurs, e.g. "2024-05-08".
type FixedOnce struct {
	Year  int
	Month time.Month
	Day   int
}

// NthWeekday is the Ordinal-th Weekday of Month. Negative ordinals count from
// the end of the month, so -1 is the last one.
type NthWeekday struct {
	Ordinal int
	Weekday time.Weekday
	Month   time.Month
}

// Direction is the walking direction of a WeekdayRelative rule.
type Direction int

const (
	Before Direction = iota
	After
)

func (d Direction) String() string {
	if d == After {
		return "after"
	}
	return "before"
}

// WeekdayRelative is the nearest Weekday before or after an anchor date.
// The anchor itself only counts when Inclusive is set ("on or before").
type WeekdayRelative struct {
	Weekday   time.Weekday
	Month     time.Month
	Day       int
	Direction Direction
	Inclusive bool
}

// EasterRelative is Offset days from Gregorian Easter Sunday.
type EasterRelative struct {
	Offset int
}

// Span stretches the date computed by Base over Days days.
type Span struct {
	Base Rule
	Days int
}

func (Fixed) rule()           {}
func (FixedOnce) rule()       {}
func (NthWeekday) rule()      {}
func (WeekdayRelative) rule() {}
func (EasterRelative) rule()  {}
func (Span) rule()            {}

func (r Fixed) String() string {
	return fmt.Sprintf("%02d-%02d", int(r.Month), r.Day)
}

func (r FixedOnce) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", r.Year, int(r.Month), r.Day)
}

func (r NthWeekday) String() string {
	ord := "last"
	if r.Ordinal != -1 {
		ord = strconv.Itoa(r.Ordinal) + ordinalSuffix(abs(r.Ordinal))
	}
	return fmt.Sprintf("%s %s in %s", ord, weekdayToken(r.Weekday), monthToken(r.Month))
}

func (r WeekdayRelative) String() string {
	rel := r.Direction.String()
	if r.Inclusive {
		rel = "on or " + rel
	}
	return fmt.Sprintf("%s %s %02d-%02d", weekdayToken(r.Weekday), rel, int(r.Month), r.Day)
}

func (r EasterRelative) String() string {
	if r.Offset == 0 {
		return "easter"
	}
	return fmt.Sprintf("easter %+d", r.Offset)
}

func (r Span) String() string {
	return fmt.Sprintf("%s %dd", r.Base, r.Days)
}

func weekdayToken(wd time.Weekday) string {
	return strings.ToLower(wd.String()[:3])
}

func monthToken(m time.Month) string {
	return strings.ToLower(m.String()[:3])
}

// ParseRule compiles a rule string. It never panics; ok is false when the
// string does not match any supported form.
//
// Supported forms, case-insensitive:
//
//	MM-DD                          12-25
//	YYYY-MM-DD                     2024-05-08
//	<ordinal> <weekday> in <month> 3rd mon in may, last thu in nov
//	<weekday> before|after MM-DD   mon before 05-25
//	<weekday> on or after MM-DD    sat on or after 06-20
//	easter [<offset>]              easter -2
//
// Any form may end in "<N>d" to last N days, e.g. "12-24 3d".
func ParseRule(s string) (Rule, bool) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return nil, false
	}

	if days, ok := parseSpanSuffix(fields[len(fields)-1]); ok && len(fields) > 1 {
		base, ok := parseBase(fields[:len(fields)-1])
		if !ok {
			return nil, false
		}
		return Span{Base: base, Days: days}, true
	}
	return parseBase(fields)
}

func parseSpanSuffix(tok string) (int, bool) {
	digits, ok := strings.CutSuffix(tok, "d")
	if !ok || !isDigits(digits, 1, 3) {
		return 0, false
	}
	n, _ := strconv.Atoi(digits)
	return n, n >= 1
}

func parseBase(fields []string) (Rule, bool) {
	switch {
	case len(fields) == 1:
		if fields[0] == "easter" {
			return EasterRelative{}, true
		}
		if m, d, ok := parseMonthDay(fields[0]); ok {
			return Fixed{Month: m, Day: d}, true
		}
		if dt, ok := parseDate(fields[0]); ok {
			return FixedOnce{Year: dt.year, Month: dt.month, Day: dt.day}, true
		}
	case len(fields) == 2 && fields[0] == "easter":
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, false
		}
		return EasterRelative{Offset: n}, true
	case len(fields) == 4 && fields[2] == "in":
		return parseNthWeekday(fields)
	case len(fields) == 3 || len(fields) == 5:
		return parseWeekdayRelative(fields)
	}
	return nil, false
}

func parseNthWeekday(fields []string) (Rule, bool) {
	ord, ok := parseOrdinal(fields[0])
	if !ok {
		return nil, false
	}
	wd, ok := weekdayTokens[fields[1]]
	if !ok {
		return nil, false
	}
	m, ok := parseMonth(fields[3])
	if !ok {
		return nil, false
	}
	return NthWeekday{Ordinal: ord, Weekday: wd, Month: m}, true
}

func parseWeekdayRelative(fields []string) (Rule, bool) {
	wd, ok := weekdayTokens[fields[0]]
	if !ok {
		return nil, false
	}
	rel := fields[1 : len(fields)-1]
	r := WeekdayRelative{Weekday: wd}
	if len(rel) == 3 {
		if rel[0] != "on" || rel[1] != "or" {
			return nil, false
		}
		r.Inclusive = true
		rel = rel[2:]
	}
	switch rel[0] {
	case "before":
		r.Direction = Before
	case "after":
		r.Direction = After
	default:
		return nil, false
	}
	m, d, ok := parseMonthDay(fields[len(fields)-1])
	if !ok {
		return nil, false
	}
	r.Month, r.Day = m, d
	return r, true
}
