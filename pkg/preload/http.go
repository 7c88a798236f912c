package preload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"golang.org/x/time/rate"
)

// HTTPConfig defines HTTPPrefetcher settings
type HTTPConfig struct {
	Timeout    time.Duration // per request
	RateLimit  time.Duration // minimal interval between requests, 0 disables limiting
	UserAgent  string
	MaxEntries int           // cached images
	TTL        time.Duration // how long a cached image is kept
	MaxBytes   int64         // larger bodies are rejected
}

// HTTPPrefetcher downloads images into a bounded in-memory cache.
// Prefetching a cached url is a no-op.
type HTTPPrefetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	maxBytes  int64
	images    cache.Cache[string, []byte]
}

// NewHTTPPrefetcher makes a prefetcher, zero config fields get defaults
func NewHTTPPrefetcher(cfg HTTPConfig) *HTTPPrefetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "swipefeed/1.0"
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 64
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 10 * 1024 * 1024
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.RateLimit), 1)
	}

	return &HTTPPrefetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   limiter,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBytes,
		images:    cache.NewCache[string, []byte]().WithMaxKeys(cfg.MaxEntries).WithTTL(cfg.TTL).WithLRU(),
	}
}

// Prefetch downloads url unless it is cached already
func (p *HTTPPrefetcher) Prefetch(ctx context.Context, url string) error {
	if p.images.Contains(url) {
		return nil
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("make request: %w", err)
	}
	addImageHeaders(req, p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBytes+1))
	if err != nil {
		return fmt.Errorf("read %s: %w", url, err)
	}
	if int64(len(body)) > p.maxBytes {
		return fmt.Errorf("image %s is larger than %d bytes", url, p.maxBytes)
	}

	p.images.Add(url, body)
	return nil
}

// Get returns a cached image
func (p *HTTPPrefetcher) Get(url string) ([]byte, bool) {
	return p.images.Get(url)
}
