package holidays

import "time"

// occurrence is one concrete instance of a rule: the days [start, end).
type occurrence struct {
	start date
	end   date
}

// evaluate computes the occurrences of r in year. It never fails: rules that
// have no date in year yield nil. Results may fall into an adjacent year.
func evaluate(r Rule, year int) []occurrence {
	switch r := r.(type) {
	case Fixed:
		return single(date{year: year, month: r.Month, day: r.Day})
	case FixedOnce:
		if r.Year != year {
			return nil
		}
		return single(date{year: r.Year, month: r.Month, day: r.Day})
	case NthWeekday:
		return single(nthWeekday(year, r))
	case WeekdayRelative:
		return single(weekdayRelative(year, r))
	case EasterRelative:
		return single(easter(year).addDays(r.Offset))
	case Span:
		base := evaluate(r.Base, year)
		for i := range base {
			base[i].end = base[i].start.addDays(r.Days)
		}
		return base
	default:
		return nil
	}
}

// spanDays is the length in days of every occurrence produced by r.
func spanDays(r Rule) int {
	if s, ok := r.(Span); ok {
		return s.Days
	}
	return 1
}

func single(d date) []occurrence {
	if !d.valid() {
		return nil
	}
	return []occurrence{{start: d, end: d.addDays(1)}}
}

func nthWeekday(year int, r NthWeekday) date {
	var matches []date
	for day := 1; day <= daysIn(year, r.Month); day++ {
		d := date{year: year, month: r.Month, day: day}
		if d.weekday() == r.Weekday {
			matches = append(matches, d)
		}
	}

	idx := r.Ordinal - 1
	if r.Ordinal < 0 {
		idx = len(matches) + r.Ordinal
	}
	if r.Ordinal == 0 || idx < 0 || idx >= len(matches) {
		return date{}
	}
	return matches[idx]
}

func weekdayRelative(year int, r WeekdayRelative) date {
	anchor := date{year: year, month: r.Month, day: r.Day}
	if !anchor.valid() {
		return date{}
	}
	step := 1
	if r.Direction == Before {
		step = -1
	}

	d := anchor
	if !r.Inclusive {
		d = d.addDays(step)
	}
	for range 7 {
		if d.weekday() == r.Weekday {
			return d
		}
		d = d.addDays(step)
	}
	return date{}
}

// span converts an occurrence to instants at local midnight in loc.
func (o occurrence) span(loc *time.Location) (time.Time, time.Time) {
	return o.start.toTime(loc), o.end.toTime(loc)
}

// Occurrence is a concrete instance of a rule, the half-open interval
// [Start, End) of local midnights.
type Occurrence struct {
	Start      time.Time
	End        time.Time
	Substitute bool
}

// Evaluate computes the occurrences of r in year with instants localized to
// loc. A nil loc yields naive local dates in time.Local.
func Evaluate(r Rule, year int, loc *time.Location) []Occurrence {
	occs := evaluate(r, year)
	if len(occs) == 0 {
		return nil
	}
	out := make([]Occurrence, 0, len(occs))
	for _, o := range occs {
		start, end := o.span(loc)
		out = append(out, Occurrence{Start: start, End: end})
	}
	return out
}
