// Package source opens dataset files from disk or over HTTP.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Config controls remote fetches.
type Config struct {
	Timeout  time.Duration
	RetryMax int
}

// Opener opens local paths directly and fetches http(s) URLs with retries.
type Opener struct {
	client *retryablehttp.Client
}

// New creates an Opener. Zero values fall back to a 30s timeout and 3 retries.
func New(cfg Config) *Opener {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryMax < 0 {
		cfg.RetryMax = 0
	} else if cfg.RetryMax == 0 {
		cfg.RetryMax = 3
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.Logger = nil
	client.CheckRetry = retryPolicy()
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = cfg.Timeout

	return &Opener{client: client}
}

// Default returns an Opener with default settings.
func Default() *Opener {
	return New(Config{})
}

// retryPolicy retries transport errors and 5xx/429 responses, and fails fast
// on other non-200 statuses.
func retryPolicy() retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err == nil && resp != nil && resp.StatusCode != http.StatusOK &&
			resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return false, nil
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open returns a reader for location, which is either a file path or an
// http(s) URL. The caller must close it.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !IsRemote(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", location, err)
		}
		return f, nil
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", location, err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %d", location, resp.StatusCode)
	}
	return resp.Body, nil
}
