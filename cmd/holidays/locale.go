package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	holidays "github.com/rabitt1ove/date-holidays"
)

// loadLocale reads the locale at src, a file path or an HTTPS URL.
func loadLocale(ctx context.Context, client *http.Client, src string, logger *slog.Logger) (holidays.Locale, error) {
	if isRemote(src) {
		if err := validateLocaleURL(src); err != nil {
			return holidays.Locale{}, err
		}
		r, err := fetchWithRetry(ctx, client, src, logger)
		if err != nil {
			return holidays.Locale{}, err
		}
		return decodeLocale(r)
	}

	f, err := os.Open(src)
	if err != nil {
		return holidays.Locale{}, err
	}
	defer f.Close()
	return decodeLocale(io.LimitReader(f, maxLocaleSize))
}

// decodeLocale parses a YAML locale. Unknown keys are an error.
func decodeLocale(r io.Reader) (holidays.Locale, error) {
	var locale holidays.Locale
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&locale); err != nil {
		if errors.Is(err, io.EOF) {
			return locale, errors.New("decoding locale: empty document")
		}
		return locale, fmt.Errorf("decoding locale: %w", err)
	}
	return locale, nil
}
