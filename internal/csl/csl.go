// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csl resolves a template's citation style reference to a local
// file. Remote styles are downloaded once and cached so repeated
// conversions do not refetch them; anything that is not an http(s) URL
// passes through untouched.
package csl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// retryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var retryBaseDelay = 10 * time.Second

const defaultMaxRetries = 3

// Fetcher downloads and caches CSL style sheets.
type Fetcher struct {
	// Client defaults to http.DefaultClient.
	Client *http.Client

	// CacheDir is where downloaded styles are stored. Empty disables
	// caching and Resolve passes URLs through.
	CacheDir string

	// MaxRetries bounds retry attempts on 429. Zero means the default.
	MaxRetries int

	// Out receives progress reporting. Nil discards it.
	Out io.Writer
}

func (f *Fetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func (f *Fetcher) out() io.Writer {
	if f.Out == nil {
		return io.Discard
	}
	return f.Out
}

// Resolve returns a local path for the style reference. Local paths and
// bare style names are returned as-is. Remote styles come from the cache
// when present, otherwise they are fetched; when the fetch fails the URL
// is returned unchanged so the downstream tool can try it itself.
func (f *Fetcher) Resolve(ctx context.Context, style string) string {
	if style == "" || f.CacheDir == "" {
		return style
	}
	if !strings.HasPrefix(style, "http://") && !strings.HasPrefix(style, "https://") {
		return style
	}

	cached := filepath.Join(f.CacheDir, cacheName(style))
	if _, err := os.Stat(cached); err == nil {
		return cached
	}

	if err := f.fetch(ctx, style, cached); err != nil {
		fmt.Fprintf(f.out(), "citation style download failed, using URL directly: %v\n", err)
		return style
	}
	return cached
}

// fetch downloads the style to dest, retrying on 429 with exponential
// backoff. The write goes through a temp file so a partial download never
// poisons the cache.
func (f *Fetcher) fetch(ctx context.Context, styleURL, dest string) error {
	if err := os.MkdirAll(f.CacheDir, 0o755); err != nil {
		return fmt.Errorf("creating style cache: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, styleURL, nil)
	if err != nil {
		return err
	}

	resp, err := f.doWithRetry(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: HTTP %d", styleURL, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(f.CacheDir, ".fetch-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("downloading %s: %w", styleURL, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dest)
}

// doWithRetry executes the request and retries on HTTP 429 with
// exponential backoff, draining each rejected response before sleeping.
// After exhausting retries the last 429 response is returned so the
// caller can inspect it.
func (f *Fetcher) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	maxRetries := f.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := f.client().Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * retryBaseDelay
		fmt.Fprintf(f.out(), "rate limited, retrying in %v (attempt %d/%d)\n", backoff, attempt+1, maxRetries)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// cacheName derives a stable filename for a style URL: the URL's base
// name when it looks like one, qualified with a short content hash of the
// full URL to keep same-named styles from different hosts apart.
func cacheName(styleURL string) string {
	sum := sha256.Sum256([]byte(styleURL))
	short := hex.EncodeToString(sum[:6])

	base := "style"
	if u, err := url.Parse(styleURL); err == nil {
		if b := path.Base(u.Path); b != "" && b != "/" && b != "." {
			base = strings.TrimSuffix(b, ".csl")
		}
	}
	return base + "-" + short + ".csl"
}
