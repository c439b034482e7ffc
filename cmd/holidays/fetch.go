package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

const (
	maxRetries = 3

	// Maximum locale size to prevent memory exhaustion.
	maxLocaleSize = 1 * 1024 * 1024

	userAgent = "date-holidays/1.0 (https://github.com/rabitt1ove/date-holidays)"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

func isRemote(src string) bool {
	return strings.HasPrefix(src, "https://") || strings.HasPrefix(src, "http://")
}

// validateLocaleURL only lets HTTPS URLs through.
func validateLocaleURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL %q: missing host", rawURL)
	}
	return nil
}

// fetchWithRetry fetches a URL with exponential backoff retries. The body is
// decoded to UTF-8 according to the charset of its Content-Type.
func fetchWithRetry(ctx context.Context, client *http.Client, url string, logger *slog.Logger) (io.Reader, error) {
	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			logger.Info("retrying", "url", url, "delay", delay, "attempt", attempt+1, "max", maxRetries)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		logger.Debug("fetching locale", "url", url)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("GET %s: %w", url, err)
			logger.Warn("fetch failed", "url", url, "error", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
			logger.Warn("fetch failed", "url", url, "status", resp.StatusCode, "retryable", true)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxLocaleSize+1))
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("GET %s: reading body: %w", url, err)
			continue
		}
		if len(data) > maxLocaleSize {
			return nil, fmt.Errorf("GET %s: locale exceeds %d bytes", url, maxLocaleSize)
		}
		return decodeCharset(data, resp.Header.Get("Content-Type"))
	}
	return nil, lastErr
}

// decodeCharset wraps data in a UTF-8 decoder for the charset named in
// contentType. Without a charset the data is returned as is.
func decodeCharset(data []byte, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil || params["charset"] == "" {
		return bytes.NewReader(data), nil
	}
	enc, err := htmlindex.Get(params["charset"])
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", params["charset"], err)
	}
	return transform.NewReader(bytes.NewReader(data), enc.NewDecoder()), nil
}
