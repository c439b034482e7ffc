// Command holidays prints the holidays of a locale as JSON.
//
// The locale is a YAML document in the shape of holidays.Locale, read from
// a local file or fetched over HTTPS. Settings come from flags, falling back
// to HOLIDAYS_* environment variables and an optional .env file.
//
// Usage:
//
//	holidays -locale testdata/de.yaml -year 2024 -lang en
//	holidays -locale https://example.org/de.yaml -at 2024-12-25
//
// With -at, the holiday covering that instant is printed and the exit status
// is 1 when there is none.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	holidays "github.com/rabitt1ove/date-holidays"
)

const (
	exitOK        = 0
	exitNoHoliday = 1
	exitError     = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "holidays: reading .env: %v\n", err)
		return exitError
	}

	cfg, err := loadConfig(args, nil, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "holidays: %v\n", err)
		return exitError
	}

	logger, err := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "holidays: %v\n", err)
		return exitError
	}

	code, err := execute(ctx, cfg, logger, stdout)
	if err != nil {
		logger.Error("holidays failed", "error", err)
		return exitError
	}
	return code
}

func execute(ctx context.Context, cfg config, logger *slog.Logger, stdout io.Writer) (int, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	locale, err := loadLocale(ctx, client, cfg.Locale, logger)
	if err != nil {
		return exitError, err
	}

	hd, err := newSession(cfg, locale, logger)
	if err != nil {
		return exitError, err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	if cfg.At != "" {
		loc := hd.Location()
		if loc == nil {
			loc = time.Local
		}
		at, err := parseInstant(cfg.At, loc)
		if err != nil {
			return exitError, err
		}
		h, ok := hd.IsHoliday(at)
		if !ok {
			logger.Info("no holiday", "at", at.Format(time.RFC3339))
			return exitNoHoliday, nil
		}
		return exitOK, enc.Encode(h)
	}

	list := hd.HolidaysInYear(cfg.Year, cfg.Language)
	if list == nil {
		list = []holidays.Holiday{}
	}
	return exitOK, enc.Encode(list)
}

// newSession builds the holidays session for cfg. The timezone flag wins
// over the locale's first zone.
func newSession(cfg config, locale holidays.Locale, logger *slog.Logger) (*holidays.Holidays, error) {
	opts := []holidays.Option{holidays.WithLogger(logger)}

	tz := cfg.Timezone
	if tz == "" && len(locale.Timezones) > 0 {
		tz = locale.Timezones[0]
	}
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("loading timezone %q: %w", tz, err)
		}
		opts = append(opts, holidays.WithTimezone(loc))
	}

	if len(cfg.Types) > 0 {
		types := make([]holidays.Type, 0, len(cfg.Types))
		for _, s := range cfg.Types {
			t, err := holidays.ParseType(s)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		opts = append(opts, holidays.WithTypes(types...))
	}

	if cfg.Language != "" {
		opts = append(opts, holidays.WithLanguages(append([]string{cfg.Language}, locale.Languages...)...))
	}

	return holidays.New(locale, opts...)
}

// parseInstant accepts RFC 3339 or a bare date, which is read as midnight
// in loc.
func parseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -at %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}
