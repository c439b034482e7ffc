package holidays

import (
	"fmt"
	"log/slog"
	"time"
)

type config struct {
	languages []string
	loc       *time.Location
	types     TypeSet
	weekend   []time.Weekday
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Holidays session during construction.
type Option func(*config) error

func defaultConfig() *config {
	return &config{
		weekend: []time.Weekday{time.Saturday, time.Sunday},
		logger:  slog.Default(),
		now:     time.Now,
	}
}

// WithLanguages sets the preferred languages for holiday names, replacing the
// locale's own list.
func WithLanguages(langs ...string) Option {
	return func(c *config) error {
		c.languages = append(c.languages, langs...)
		return nil
	}
}

// WithTimezone localizes all holiday instants to loc. Without it dates are
// naive local dates in time.Local.
func WithTimezone(loc *time.Location) Option {
	return func(c *config) error {
		c.loc = loc
		return nil
	}
}

// WithTypes restricts the session to the given holiday types. Rules of any
// other type are rejected at registration.
func WithTypes(types ...Type) Option {
	return func(c *config) error {
		for _, t := range types {
			if !t.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidType, t)
			}
		}
		if len(types) > 0 {
			c.types = NewTypeSet(types...)
		}
		return nil
	}
}

// WithWeekend sets the non-working weekdays that substitute rules move away
// from. The default is Saturday and Sunday.
func WithWeekend(days ...time.Weekday) Option {
	return func(c *config) error {
		for _, d := range days {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("holidays: invalid weekday %d", d)
			}
		}
		c.weekend = days
		return nil
	}
}

// WithLogger sets the logger that receives rule rejections.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithClock replaces time.Now, which resolves the current year.
func WithClock(now func() time.Time) Option {
	return func(c *config) error {
		if now != nil {
			c.now = now
		}
		return nil
	}
}
