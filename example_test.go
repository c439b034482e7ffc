package holidays_test

import (
	"fmt"
	"time"

	holidays "github.com/rabitt1ove/date-holidays"
)

func exampleLocale() holidays.Locale {
	return holidays.Locale{
		Languages:       []string{"en"},
		SubstituteNames: map[string]string{"en": "substitute day"},
		Rules: map[string]*holidays.RuleOptions{
			"01-01":           {Type: holidays.Public, Name: map[string]string{"en": "New Year's Day"}},
			"3rd mon in jan":  {Type: holidays.Public, Name: map[string]string{"en": "Martin Luther King Jr. Day"}},
			"last mon in may": {Type: holidays.Public, Name: map[string]string{"en": "Memorial Day"}},
			"07-04":           {Type: holidays.Public, Name: map[string]string{"en": "Independence Day"}, Substitute: true},
			"4th thu in nov":  {Type: holidays.Public, Name: map[string]string{"en": "Thanksgiving Day"}},
			"easter":          {Type: holidays.Observance, Name: map[string]string{"en": "Easter Sunday"}},
		},
	}
}

func ExampleHolidays_HolidaysInYear() {
	hd, err := holidays.New(exampleLocale(), holidays.WithTimezone(time.UTC))
	if err != nil {
		panic(err)
	}
	for _, h := range hd.HolidaysInYear(2026, "") {
		fmt.Printf("%s %-10s %s\n", h.Date, h.Type, h.Name)
	}
	// Output:
	// 2026-01-01 public     New Year's Day
	// 2026-01-19 public     Martin Luther King Jr. Day
	// 2026-04-05 observance Easter Sunday
	// 2026-05-25 public     Memorial Day
	// 2026-07-06 public     Independence Day (substitute day)
	// 2026-11-26 public     Thanksgiving Day
}

func ExampleHolidays_IsHoliday() {
	hd, _ := holidays.New(exampleLocale(), holidays.WithTimezone(time.UTC))

	h, ok := hd.IsHoliday(time.Date(2024, time.November, 28, 18, 0, 0, 0, time.UTC))
	fmt.Println(ok, h.Name)

	_, ok = hd.IsHoliday(time.Date(2024, time.November, 29, 0, 0, 0, 0, time.UTC))
	fmt.Println(ok)
	// Output:
	// true Thanksgiving Day
	// false
}

func ExampleParseRule() {
	r, ok := holidays.ParseRule("Last Monday in May")
	fmt.Println(ok, r)

	occ := holidays.Evaluate(r, 2024, time.UTC)
	fmt.Println(occ[0].Start.Format(time.DateOnly))

	_, ok = holidays.ParseRule("3rd funday in may")
	fmt.Println(ok)
	// Output:
	// true last mon in may
	// 2024-05-27
	// false
}

func ExampleHolidays_SetRule() {
	hd, _ := holidays.New(exampleLocale(), holidays.WithTimezone(time.UTC))

	hd.SetRule("easter", nil)
	fmt.Println(len(hd.HolidaysInYear(2026, "")))

	hd.SetRule("12-24 3d", &holidays.RuleOptions{
		Type: holidays.School,
		Name: map[string]string{"en": "Christmas Break"},
	})
	h, _ := hd.IsHoliday(time.Date(2026, time.December, 26, 9, 0, 0, 0, time.UTC))
	fmt.Println(h.Name, h.End.Format(time.DateOnly))
	// Output:
	// 5
	// Christmas Break 2026-12-27
}
