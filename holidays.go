// Package holidays computes the holidays of a locale from compact calendar
// rules.
//
// A locale is a flat set of rules keyed by rule text, each with translated
// names and a type:
//
//	loc := holidays.Locale{
//		Languages: []string{"de"},
//		Rules: map[string]*holidays.RuleOptions{
//			"12-25":     {Type: holidays.Public, Name: map[string]string{"de": "Weihnachten", "en": "Christmas Day"}},
//			"easter -2": {Type: holidays.Public, Name: map[string]string{"de": "Karfreitag", "en": "Good Friday"}},
//		},
//	}
//	hd, err := holidays.New(loc, holidays.WithTimezone(berlin))
//	list := hd.HolidaysInYear(2024, "en")
//	h, ok := hd.IsHoliday(time.Now())
//
// See [ParseRule] for the rule grammar. The package does no I/O and no
// locking; a Holidays value may be shared by readers once it is built.
package holidays

import (
	"slices"
	"sort"
	"time"
)

// Locale is the already merged rule set of one country, state or region.
type Locale struct {
	Rules           map[string]*RuleOptions `yaml:"days" json:"days"`
	Languages       []string                `yaml:"langs" json:"langs,omitempty"`
	Timezones       []string                `yaml:"zones" json:"zones,omitempty"`
	DayOff          string                  `yaml:"dayoff" json:"dayoff,omitempty"`
	SubstituteNames map[string]string       `yaml:"substitute" json:"substitute,omitempty"`
}

// Holiday is one holiday occurrence with its name resolved.
type Holiday struct {
	Date       string    `json:"date"` // local start date, YYYY-MM-DD
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"` // exclusive
	Name       string    `json:"name"`
	Type       Type      `json:"type"`
	Substitute bool      `json:"substitute,omitempty"`
	Rule       string    `json:"rule"`
}

// Contains reports whether t lies in [Start, End).
func (h Holiday) Contains(t time.Time) bool {
	return !t.Before(h.Start) && t.Before(h.End)
}

// Holidays is a locale session: a registry of rules plus the settings used to
// evaluate and translate them.
type Holidays struct {
	registry        *Registry
	languages       []string
	timezones       []string
	loc             *time.Location
	dayOff          time.Weekday
	hasDayOff       bool
	substituteNames map[string]string
	weekend         map[time.Weekday]bool
	now             func() time.Time
}

// New builds a session for locale. Rules that cannot be used (unknown type,
// unparsable rule text) are logged and skipped. A malformed active range or
// override aborts construction.
func New(locale Locale, opts ...Option) (*Holidays, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	h := &Holidays{
		registry:        NewRegistry(cfg.types, cfg.logger),
		timezones:       slices.Clone(locale.Timezones),
		loc:             cfg.loc,
		substituteNames: normalizeNames(locale.SubstituteNames),
		weekend:         make(map[time.Weekday]bool, len(cfg.weekend)),
		now:             cfg.now,
	}
	for _, wd := range cfg.weekend {
		h.weekend[wd] = true
	}

	if len(cfg.languages) > 0 {
		h.SetLanguages(cfg.languages...)
	} else {
		h.SetLanguages(locale.Languages...)
	}

	if locale.DayOff != "" {
		if wd, ok := ParseWeekday(locale.DayOff); ok {
			h.dayOff, h.hasDayOff = wd, true
		} else {
			cfg.logger.Warn("holidays: unknown day off", "dayoff", locale.DayOff)
		}
	}

	keys := make([]string, 0, len(locale.Rules))
	for key := range locale.Rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		opts := locale.Rules[key]
		if opts == nil {
			continue
		}
		if _, err := h.registry.Set(key, opts); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// SetRule registers or replaces the rule key. A nil opts disables the rule
// instead. It reports false when the rule was rejected, or when disabling a
// rule that does not exist.
func (h *Holidays) SetRule(key string, opts *RuleOptions) (bool, error) {
	return h.registry.Set(key, opts)
}

// AddRule registers key as a public holiday named name in the first
// preferred language.
func (h *Holidays) AddRule(key, name string) bool {
	if name == "" {
		name = key
	}
	ok, _ := h.registry.Set(key, &RuleOptions{
		Type: Public,
		Name: map[string]string{h.primaryLanguage(): name},
	})
	return ok
}

// DisableRule disables the rule key. Re-register it with SetRule to undo.
func (h *Holidays) DisableRule(key string) bool {
	return h.registry.Disable(key)
}

// Rules returns the keys of all enabled rules in registration order.
func (h *Holidays) Rules() []string {
	return h.registry.Keys()
}

// HolidaysInYear returns the holidays of year sorted by start, with names in
// lang when available. An empty lang uses the session languages; a year of
// zero or less means the current year.
func (h *Holidays) HolidaysInYear(year int, lang string) []Holiday {
	if year <= 0 {
		year = dateOf(h.now(), h.zone()).year
	}
	chain := languageChain(lang, h.languages)

	var list []Holiday
	for _, e := range h.registry.active() {
		for _, o := range h.occurrences(e, year) {
			list = append(list, h.holiday(e, o, chain))
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Start.Before(list[j].Start)
	})
	return dedupe(list)
}

// HolidaysInDateYear returns the holidays of the calendar year containing t.
func (h *Holidays) HolidaysInDateYear(t time.Time, lang string) []Holiday {
	return h.HolidaysInYear(dateOf(t, h.zone()).year, lang)
}

// IsHoliday returns the first holiday whose [Start, End) contains t.
//
// Only the calendar year of t is evaluated, so a multi-day holiday that starts
// in the previous year is not found on its days in t's year.
func (h *Holidays) IsHoliday(t time.Time) (Holiday, bool) {
	for _, hd := range h.HolidaysInDateYear(t, "") {
		if hd.Contains(t) {
			return hd, true
		}
	}
	return Holiday{}, false
}

// Languages returns the session's language chain, ending in "en".
func (h *Holidays) Languages() []string {
	return languageChain("", h.languages)
}

// SetLanguages replaces the preferred languages for holiday names.
func (h *Holidays) SetLanguages(langs ...string) {
	out := make([]string, 0, len(langs))
	seen := make(map[string]struct{}, len(langs))
	for _, l := range langs {
		code := normalizeLanguage(l)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	h.languages = out
}

func (h *Holidays) primaryLanguage() string {
	return h.Languages()[0]
}

// Timezones returns the locale's timezone candidates.
func (h *Holidays) Timezones() []string {
	return slices.Clone(h.timezones)
}

// SetTimezone changes the location holidays are computed in. A nil loc means
// naive local dates.
func (h *Holidays) SetTimezone(loc *time.Location) {
	h.loc = loc
}

// Location returns the session location, or nil for naive local dates.
func (h *Holidays) Location() *time.Location {
	return h.loc
}

// zone is the location dates are read in; naive local dates use time.Local.
func (h *Holidays) zone() *time.Location {
	if h.loc == nil {
		return time.Local
	}
	return h.loc
}

// DayOff returns the locale's default weekly day off. It is informational:
// substitution moves holidays off the days given by WithWeekend, not off it.
func (h *Holidays) DayOff() (time.Weekday, bool) {
	return h.dayOff, h.hasDayOff
}

// resolved is an occurrence after overrides, filtering and substitution.
type resolved struct {
	occurrence
	substitute bool
}

func (h *Holidays) occurrences(e entry, year int) []resolved {
	var occs []occurrence
	if ov, ok := e.meta.overrides[year]; ok {
		if ov.disabled {
			return nil
		}
		occs = []occurrence{{start: ov.date, end: ov.date.addDays(spanDays(e.rule))}}
	} else {
		occs = evaluate(e.rule, year)
	}

	out := make([]resolved, 0, len(occs))
	for _, o := range occs {
		if !e.meta.activeOn(o.start) {
			continue
		}
		r := resolved{occurrence: o}
		if e.meta.substitute {
			r = h.substitute(o)
		}
		out = append(out, r)
	}
	return out
}

// substitute moves o forward past weekend days.
func (h *Holidays) substitute(o occurrence) resolved {
	shift := 0
	for shift < 7 && h.weekend[o.start.addDays(shift).weekday()] {
		shift++
	}
	if shift == 0 || shift == 7 {
		return resolved{occurrence: o}
	}
	return resolved{
		occurrence: occurrence{start: o.start.addDays(shift), end: o.end.addDays(shift)},
		substitute: true,
	}
}

func (h *Holidays) holiday(e entry, r resolved, chain []string) Holiday {
	start, end := r.span(h.loc)
	name := translateName(e.meta.names, chain, e.key)
	if r.substitute {
		name += substituteSuffix(h.substituteNames, chain)
	}
	return Holiday{
		Date:       r.start.String(),
		Start:      start,
		End:        end,
		Name:       name,
		Type:       e.meta.typ,
		Substitute: r.substitute,
		Rule:       e.key,
	}
}

// dedupe drops a holiday when its next neighbour has the same name and
// start, handing the neighbour the higher-priority type. Only adjacent
// entries are compared, so equal holidays separated by another name survive.
func dedupe(list []Holiday) []Holiday {
	if len(list) < 2 {
		return list
	}
	out := make([]Holiday, 0, len(list))
	for i := range list {
		if i+1 < len(list) && list[i].Name == list[i+1].Name && list[i].Start.Equal(list[i+1].Start) {
			list[i+1].Type = preferredType(list[i].Type, list[i+1].Type)
			continue
		}
		out = append(out, list[i])
	}
	return out
}
