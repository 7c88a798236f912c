package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	Commits.WithLabelValues("left").Inc()
	SyncAttempts.WithLabelValues("like", "ok").Inc()

	ts := httptest.NewServer(Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `swipefeed_commits_total{direction="left"}`)
	assert.Contains(t, string(body), `swipefeed_sync_attempts_total{kind="like",outcome="ok"}`)
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(DroppedCommits)
	DroppedCommits.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(DroppedCommits), 0.0001)
}
