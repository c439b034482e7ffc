package holidays

import (
	"strconv"
	"strings"
	"time"
)

var weekdayTokens = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

var monthTokens = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"last": -1,
}

// ParseWeekday resolves an English weekday name or abbreviation.
func ParseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdayTokens[strings.ToLower(strings.TrimSpace(s))]
	return wd, ok
}

func parseMonth(s string) (time.Month, bool) {
	m, ok := monthTokens[s]
	return m, ok
}

// parseOrdinal accepts "1st".."5th", "-1st".."-5th", "first".."fifth" and "last".
func parseOrdinal(s string) (int, bool) {
	if n, ok := ordinalWords[s]; ok {
		return n, true
	}
	if len(s) < 3 {
		return 0, false
	}
	digits, suffix := s[:len(s)-2], s[len(s)-2:]
	n, err := strconv.Atoi(digits)
	if err != nil || n == 0 || n > 5 || n < -5 {
		return 0, false
	}
	if suffix != ordinalSuffix(abs(n)) {
		return 0, false
	}
	return n, true
}

func ordinalSuffix(n int) string {
	switch n {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// parseMonthDay parses "MM-DD" into a month and day valid in at least one year.
func parseMonthDay(s string) (time.Month, int, bool) {
	mm, dd, ok := strings.Cut(s, "-")
	if !ok || !isDigits(mm, 1, 2) || !isDigits(dd, 1, 2) {
		return 0, 0, false
	}
	m, _ := strconv.Atoi(mm)
	d, _ := strconv.Atoi(dd)
	if m < 1 || m > 12 || d < 1 || d > maxDaysIn(time.Month(m)) {
		return 0, 0, false
	}
	return time.Month(m), d, true
}

// parseDate parses "YYYY-MM-DD" into a date that exists in that year.
func parseDate(s string) (date, bool) {
	yyyy, rest, ok := strings.Cut(s, "-")
	if !ok || !isDigits(yyyy, 4, 4) {
		return date{}, false
	}
	m, d, ok := parseMonthDay(rest)
	if !ok {
		return date{}, false
	}
	y, _ := strconv.Atoi(yyyy)
	dt := date{year: y, month: m, day: d}
	if !dt.valid() {
		return date{}, false
	}
	return dt, true
}

func isDigits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
