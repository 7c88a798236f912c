package preload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPPrefetcher_Prefetch(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "image", r.Header.Get("Sec-Fetch-Dest"))
		assert.Contains(t, r.Header.Get("Accept"), "image/")
		switch r.URL.Path {
		case "/cover.png":
			_, _ = w.Write([]byte("png-bytes"))
		case "/big.png":
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	p := NewHTTPPrefetcher(HTTPConfig{UserAgent: "test-agent", MaxBytes: 50})

	t.Run("fetch and cache", func(t *testing.T) {
		require.NoError(t, p.Prefetch(context.Background(), ts.URL+"/cover.png"))
		data, ok := p.Get(ts.URL + "/cover.png")
		require.True(t, ok)
		assert.Equal(t, "png-bytes", string(data))

		before := hits.Load()
		require.NoError(t, p.Prefetch(context.Background(), ts.URL+"/cover.png"))
		assert.Equal(t, before, hits.Load(), "cached url not fetched again")
	})

	t.Run("not found", func(t *testing.T) {
		err := p.Prefetch(context.Background(), ts.URL+"/missing.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 404")
		_, ok := p.Get(ts.URL + "/missing.png")
		assert.False(t, ok)
	})

	t.Run("too large", func(t *testing.T) {
		err := p.Prefetch(context.Background(), ts.URL+"/big.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "larger than 50 bytes")
	})

	t.Run("bad url", func(t *testing.T) {
		require.Error(t, p.Prefetch(context.Background(), "://bad"))
	})
}

func TestHTTPPrefetcher_RateLimitHonorsContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	p := NewHTTPPrefetcher(HTTPConfig{RateLimit: time.Hour})
	require.NoError(t, p.Prefetch(context.Background(), ts.URL+"/a.png")) // uses the single burst token

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Prefetch(ctx, ts.URL+"/b.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
}
