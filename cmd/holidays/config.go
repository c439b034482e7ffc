package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// config holds the command settings. Environment variables provide the
// defaults that flags override.
type config struct {
	Locale    string        `env:"HOLIDAYS_LOCALE"`
	Year      int           `env:"HOLIDAYS_YEAR"`
	Language  string        `env:"HOLIDAYS_LANGUAGE"`
	Timezone  string        `env:"HOLIDAYS_TIMEZONE"`
	Types     []string      `env:"HOLIDAYS_TYPES" envSeparator:","`
	At        string        `env:"HOLIDAYS_AT"`
	Timeout   time.Duration `env:"HOLIDAYS_FETCH_TIMEOUT" envDefault:"30s"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"LOG_FORMAT" envDefault:"text"`
}

// loadConfig reads the environment, or environ when it is non-nil, and then
// applies args.
func loadConfig(args []string, environ map[string]string, output io.Writer) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}

	fs := flag.NewFlagSet("holidays", flag.ContinueOnError)
	fs.SetOutput(output)

	types := strings.Join(cfg.Types, ",")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale YAML file or https URL")
	fs.IntVar(&cfg.Year, "year", cfg.Year, "year to list; 0 means the current year")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "language for holiday names")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "IANA timezone; defaults to the locale's first zone")
	fs.StringVar(&types, "types", types, "comma separated holiday types to include")
	fs.StringVar(&cfg.At, "at", cfg.At, "print the holiday at this date or RFC 3339 instant")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP timeout for remote locales")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg.Types = splitList(types)
	if cfg.Locale == "" {
		return cfg, errors.New("no locale: set -locale or HOLIDAYS_LOCALE")
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
