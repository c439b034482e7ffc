package holidays

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// RuleOptions describes a holiday rule as delivered by the locale data.
type RuleOptions struct {
	Type       Type              `yaml:"type" json:"type"`
	Name       map[string]string `yaml:"name" json:"name"`
	Substitute bool              `yaml:"substitute" json:"substitute,omitempty"`
	Active     []ActiveRange     `yaml:"active" json:"active,omitempty"`
	Overrides  map[int]Override  `yaml:"overrides" json:"overrides,omitempty"`
}

// ActiveRange limits a rule to the dates in [From, To). Either side may be
// empty, but not both. Boundaries are "YYYY", "YYYY-MM" or "YYYY-MM-DD".
type ActiveRange struct {
	From string `yaml:"from" json:"from,omitempty"`
	To   string `yaml:"to" json:"to,omitempty"`
}

// Override replaces a rule's computed date for a single year. Disabled drops
// the rule for that year; otherwise Date ("YYYY-MM-DD" or "MM-DD") is used.
type Override struct {
	Date     string `yaml:"date" json:"date,omitempty"`
	Disabled bool   `yaml:"disabled" json:"disabled,omitempty"`
}

// window is an ActiveRange resolved to dates; nil means unbounded.
type window struct {
	from *date
	to   *date
}

func (w window) contains(d date) bool {
	if w.from != nil && d.before(*w.from) {
		return false
	}
	if w.to != nil && !d.before(*w.to) {
		return false
	}
	return true
}

type override struct {
	date     date
	disabled bool
}

// metadata is the mutable per-rule state. The compiled Rule lives in a
// separate map of the Registry under the same key.
type metadata struct {
	typ        Type
	names      map[string]string
	substitute bool
	windows    []window
	overrides  map[int]override
	disabled   bool
}

func (m *metadata) activeOn(d date) bool {
	if len(m.windows) == 0 {
		return true
	}
	for _, w := range m.windows {
		if w.contains(d) {
			return true
		}
	}
	return false
}

// entry is an active registry row handed to the aggregator.
type entry struct {
	key  string
	rule Rule
	meta *metadata
}

// Registry maps rule keys to compiled rules and their metadata for one locale
// session. It does no locking: build it once, then query it, and serialize any
// later Set calls against readers.
type Registry struct {
	types  TypeSet
	logger *slog.Logger
	rules  map[string]Rule
	meta   map[string]*metadata
	order  []string
}

// NewRegistry returns an empty registry accepting the given holiday types.
// A nil or empty set accepts every type.
func NewRegistry(types TypeSet, logger *slog.Logger) *Registry {
	if len(types) == 0 {
		types = AllTypes()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		types:  types,
		logger: logger,
		rules:  make(map[string]Rule),
		meta:   make(map[string]*metadata),
	}
}

// Set registers the rule key with opts, replacing any previous entry.
// A nil opts disables an existing entry instead.
//
// Set returns false when the rule is rejected: its type is not accepted or the
// key does not parse. A rejected rule leaves the previous entry untouched.
// Malformed active ranges or overrides are reported as an error.
func (r *Registry) Set(key string, opts *RuleOptions) (bool, error) {
	if opts == nil {
		return r.Disable(key), nil
	}

	windows, err := compileWindows(opts.Active)
	if err != nil {
		return false, fmt.Errorf("rule %q: %w", key, err)
	}
	overrides, err := compileOverrides(opts.Overrides)
	if err != nil {
		return false, fmt.Errorf("rule %q: %w", key, err)
	}

	typ := Type(strings.ToLower(strings.TrimSpace(string(opts.Type))))
	if typ == "" {
		typ = Public
	}
	if !typ.Valid() {
		r.logger.Warn("holidays: rejected rule", slog.String("rule", key), slog.String("reason", "unknown type "+strconv.Quote(string(typ))))
		return false, nil
	}
	if !r.types.Has(typ) {
		r.logger.Debug("holidays: skipped rule", slog.String("rule", key), slog.String("type", string(typ)))
		return false, nil
	}

	compiled, ok := ParseRule(key)
	if !ok {
		r.logger.Warn("holidays: could not parse rule", slog.String("rule", key))
		return false, nil
	}

	if _, exists := r.meta[key]; !exists {
		r.order = append(r.order, key)
	}
	r.rules[key] = compiled
	r.meta[key] = &metadata{
		typ:        typ,
		names:      normalizeNames(opts.Name),
		substitute: opts.Substitute,
		windows:    windows,
		overrides:  overrides,
	}
	return true, nil
}

// Disable tombstones the entry for key. It reports false when the key is
// unknown or already disabled. Setting the key again re-enables it.
func (r *Registry) Disable(key string) bool {
	m, ok := r.meta[key]
	if !ok || m.disabled {
		return false
	}
	m.disabled = true
	return true
}

// Rule returns the compiled rule registered under key, disabled or not.
func (r *Registry) Rule(key string) (Rule, bool) {
	rule, ok := r.rules[key]
	return rule, ok
}

// Len returns the number of enabled entries.
func (r *Registry) Len() int {
	n := 0
	for _, m := range r.meta {
		if !m.disabled {
			n++
		}
	}
	return n
}

// Keys returns the enabled rule keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.order))
	for _, e := range r.active() {
		keys = append(keys, e.key)
	}
	return keys
}

// active lists the enabled entries in registration order.
func (r *Registry) active() []entry {
	out := make([]entry, 0, len(r.order))
	for _, key := range r.order {
		m := r.meta[key]
		if m.disabled {
			continue
		}
		out = append(out, entry{key: key, rule: r.rules[key], meta: m})
	}
	return out
}

func compileWindows(ranges []ActiveRange) ([]window, error) {
	if len(ranges) == 0 {
		return nil, nil
	}
	windows := make([]window, 0, len(ranges))
	for i, ar := range ranges {
		from, err := parseBoundary(ar.From)
		if err != nil {
			return nil, fmt.Errorf("%w: active[%d].from: %v", ErrInvalidActiveRange, i, err)
		}
		to, err := parseBoundary(ar.To)
		if err != nil {
			return nil, fmt.Errorf("%w: active[%d].to: %v", ErrInvalidActiveRange, i, err)
		}
		if from == nil && to == nil {
			return nil, fmt.Errorf("%w: active[%d] needs from or to", ErrInvalidActiveRange, i)
		}
		windows = append(windows, window{from: from, to: to})
	}
	return windows, nil
}

// parseBoundary reads "YYYY", "YYYY-MM" or "YYYY-MM-DD". Empty means unbounded.
func parseBoundary(s string) (*date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if isDigits(s, 4, 4) {
		y, _ := strconv.Atoi(s)
		return &date{year: y, month: 1, day: 1}, nil
	}
	if d, ok := parseDate(s); ok {
		return &d, nil
	}
	if d, ok := parseDate(s + "-01"); ok {
		return &d, nil
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}

func compileOverrides(in map[int]Override) (map[int]override, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[int]override, len(in))
	for year, o := range in {
		if o.Disabled {
			out[year] = override{disabled: true}
			continue
		}
		d, ok := parseDate(o.Date)
		if !ok {
			m, day, ok := parseMonthDay(o.Date)
			d = date{year: year, month: m, day: day}
			if !ok || !d.valid() {
				return nil, fmt.Errorf("%w: %d: %q", ErrInvalidOverride, year, o.Date)
			}
		}
		out[year] = override{date: d}
	}
	return out, nil
}

func normalizeNames(names map[string]string) map[string]string {
	out := make(map[string]string, len(names))
	for lang, name := range names {
		if name == "" {
			continue
		}
		out[normalizeLanguage(lang)] = name
	}
	return out
}
