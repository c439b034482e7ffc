package holidays

import (
	"sort"
	"time"
)

// HolidaysInMonth returns the holidays starting in the given year and month,
// sorted by start.
func (h *Holidays) HolidaysInMonth(year int, month time.Month, lang string) []Holiday {
	var result []Holiday
	for _, hd := range h.holidaysAround(year, year, lang) {
		if d := dateOf(hd.Start, h.zone()); d.year == year && d.month == month {
			result = append(result, hd)
		}
	}
	return result
}

// HolidaysBetween returns the holidays starting in [from, to] by calendar
// date, sorted by start. If from is after to, returns nil.
func (h *Holidays) HolidaysBetween(from, to time.Time, lang string) []Holiday {
	fromD := dateOf(from, h.zone())
	toD := dateOf(to, h.zone())
	if toD.before(fromD) {
		return nil
	}

	var result []Holiday
	for _, hd := range h.holidaysAround(fromD.year, toD.year, lang) {
		d := dateOf(hd.Start, h.zone())
		if !d.before(fromD) && !d.after(toD) {
			result = append(result, hd)
		}
	}
	return result
}

// NextHoliday returns the first holiday starting on a date strictly after t.
// The year of t and the following year are searched.
func (h *Holidays) NextHoliday(t time.Time) (Holiday, bool) {
	d := dateOf(t, h.zone())
	for _, hd := range h.holidaysAround(d.year, d.year+1, "") {
		if dateOf(hd.Start, h.zone()).after(d) {
			return hd, true
		}
	}
	return Holiday{}, false
}

// PreviousHoliday returns the last holiday starting on a date strictly before
// t. The year of t and the preceding year are searched.
func (h *Holidays) PreviousHoliday(t time.Time) (Holiday, bool) {
	d := dateOf(t, h.zone())
	list := h.holidaysAround(d.year-1, d.year, "")
	for i := len(list) - 1; i >= 0; i-- {
		if dateOf(list[i].Start, h.zone()).before(d) {
			return list[i], true
		}
	}
	return Holiday{}, false
}

// holidaysAround returns the holidays of years from-1 through to+1 sorted by
// start. A rule evaluated for one year may yield a date in the next or previous.
func (h *Holidays) holidaysAround(from, to int, lang string) []Holiday {
	var all []Holiday
	for year := from - 1; year <= to+1; year++ {
		all = append(all, h.HolidaysInYear(year, lang)...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start.Before(all[j].Start)
	})
	return all
}

// IsWorkingDay reports whether t falls on neither a weekend day nor a public
// holiday. Other holiday types do not close the day.
func (h *Holidays) IsWorkingDay(t time.Time) bool {
	if h.weekend[t.In(h.zone()).Weekday()] {
		return false
	}
	for _, hd := range h.HolidaysInDateYear(t, "") {
		if hd.Type == Public && hd.Contains(t) {
			return false
		}
	}
	return true
}

// NextWorkingDay returns local midnight of the first working day on or after
// t. Returns the zero time if none is found within 366 days.
func (h *Holidays) NextWorkingDay(t time.Time) time.Time {
	cur := dateOf(t, h.zone())
	for i := 0; i < 366; i++ {
		day := cur.toTime(h.zone())
		if h.IsWorkingDay(day) {
			return day
		}
		cur = cur.addDays(1)
	}
	return time.Time{}
}
