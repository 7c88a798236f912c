package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/repository"
	"github.com/umputun/swipefeed/server/mocks"
)

func newTestRouter(t *testing.T, games *mocks.GameStoreMock, inter *mocks.InteractionStoreMock) *httptest.Server {
	t.Helper()
	srv := New(testConfig(":0"), games, inter, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, method, url, user, body string) (status int, respBody string) {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestRest_ListGames(t *testing.T) {
	games := &mocks.GameStoreMock{
		ListGamesFunc: func(ctx context.Context) ([]domain.Item, error) {
			return []domain.Item{{ID: "g1", Title: "One"}, {ID: "", Title: "broken"}, {ID: "g1", Title: "dup"}}, nil
		},
	}
	ts := newTestRouter(t, games, &mocks.InteractionStoreMock{})

	code, body := doRequest(t, "GET", ts.URL+"/api/v1/games", "", "")
	assert.Equal(t, http.StatusOK, code)
	var res []domain.Item
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, []domain.Item{{ID: "g1", Title: "One"}}, res)

	games.ListGamesFunc = func(ctx context.Context) ([]domain.Item, error) { return nil, errors.New("db down") }
	code, body = doRequest(t, "GET", ts.URL+"/api/v1/games", "", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotContains(t, body, "db down")
}

func TestRest_RSS(t *testing.T) {
	games := &mocks.GameStoreMock{
		ListGamesFunc: func(ctx context.Context) ([]domain.Item, error) {
			return []domain.Item{{ID: "g1", Title: "One", PrimaryImageRef: "http://img/1.png", Genre: "arcade"}}, nil
		},
	}
	ts := newTestRouter(t, games, &mocks.InteractionStoreMock{})

	resp, err := http.Get(ts.URL + "/api/v1/games.rss")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/rss+xml; charset=utf-8", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<category>arcade</category>")
	assert.Contains(t, string(body), "http://games.example.com/api/v1/games.rss")
}

func TestRest_RequireUser(t *testing.T) {
	ts := newTestRouter(t, &mocks.GameStoreMock{}, &mocks.InteractionStoreMock{})
	tbl := []struct{ method, path, body string }{
		{"POST", "/api/v1/games/g1/like", ""},
		{"DELETE", "/api/v1/games/g1/like", ""},
		{"POST", "/api/v1/games/g1/bookmark", ""},
		{"DELETE", "/api/v1/games/g1/bookmark", ""},
		{"POST", "/api/v1/games/g1/rate", `{"rating":3}`},
		{"POST", "/api/v1/games/g1/comments", `{"text":"hi"}`},
		{"POST", "/api/v1/games/g1/play", ""},
	}
	for _, tt := range tbl {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			code, body := doRequest(t, tt.method, ts.URL+tt.path, "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, code)
			assert.Contains(t, body, "X-User-ID")
		})
	}
}

func TestRest_LikeAndBookmark(t *testing.T) {
	var likes, bookmarks []bool
	inter := &mocks.InteractionStoreMock{
		SetLikeFunc: func(ctx context.Context, gameID, userID string, liked bool) error {
			if gameID == "missing" {
				return fmt.Errorf("game %s: %w", gameID, repository.ErrGameNotFound)
			}
			likes = append(likes, liked)
			return nil
		},
		SetBookmarkFunc: func(ctx context.Context, gameID, userID string, bookmarked bool) error {
			bookmarks = append(bookmarks, bookmarked)
			return nil
		},
	}
	ts := newTestRouter(t, &mocks.GameStoreMock{}, inter)

	code, _ := doRequest(t, "POST", ts.URL+"/api/v1/games/g1/like", "u1", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, "DELETE", ts.URL+"/api/v1/games/g1/like", "u1", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, "POST", ts.URL+"/api/v1/games/g1/bookmark", "u1", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, "POST", ts.URL+"/api/v1/games/missing/like", "u1", "")
	assert.Equal(t, http.StatusNotFound, code)

	assert.Equal(t, []bool{true, false}, likes)
	assert.Equal(t, []bool{true}, bookmarks)
	require.Len(t, inter.SetLikeCalls(), 3)
	assert.Equal(t, "u1", inter.SetLikeCalls()[0].UserID)
	assert.Equal(t, "g1", inter.SetLikeCalls()[0].GameID)
}

func TestRest_Rate(t *testing.T) {
	inter := &mocks.InteractionStoreMock{
		RateFunc: func(ctx context.Context, gameID, userID string, rating int) error { return nil },
	}
	ts := newTestRouter(t, &mocks.GameStoreMock{}, inter)

	tbl := []struct {
		body string
		code int
	}{
		{`{"rating":1}`, http.StatusOK},
		{`{"rating":5}`, http.StatusOK},
		{`{"rating":0}`, http.StatusBadRequest},
		{`{"rating":6}`, http.StatusBadRequest},
		{`{"rating":-2}`, http.StatusBadRequest},
		{`{"rating":"five"}`, http.StatusBadRequest},
		{`not json`, http.StatusBadRequest},
	}
	for _, tt := range tbl {
		t.Run(tt.body, func(t *testing.T) {
			code, _ := doRequest(t, "POST", ts.URL+"/api/v1/games/g1/rate", "u1", tt.body)
			assert.Equal(t, tt.code, code)
		})
	}
	assert.Len(t, inter.RateCalls(), 2)

	inter.RateFunc = func(ctx context.Context, gameID, userID string, rating int) error { return errors.New("disk full") }
	code, body := doRequest(t, "POST", ts.URL+"/api/v1/games/g1/rate", "u1", `{"rating":3}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, body, "failed to rate")
}

func TestRest_Comment(t *testing.T) {
	inter := &mocks.InteractionStoreMock{
		AddCommentFunc: func(ctx context.Context, gameID, userID, text string) (domain.Comment, error) {
			return domain.Comment{ID: 7, GameID: gameID, UserID: userID, Text: text, CreatedAt: time.Now()}, nil
		},
	}
	ts := newTestRouter(t, &mocks.GameStoreMock{}, inter)

	code, body := doRequest(t, "POST", ts.URL+"/api/v1/games/g1/comments", "u1", `{"text":"<script>alert(1)</script>really <i>good</i>"}`)
	assert.Equal(t, http.StatusCreated, code)
	var c domain.Comment
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "really good", c.Text)

	code, _ = doRequest(t, "POST", ts.URL+"/api/v1/games/g1/comments", "u1", `{"text":"  <b></b> "}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = doRequest(t, "POST", ts.URL+"/api/v1/games/g1/comments", "u1", `{"text":"`+strings.Repeat("x", maxCommentLen+1)+`"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = doRequest(t, "POST", ts.URL+"/api/v1/games/g1/comments", "u1", `{`)
	assert.Equal(t, http.StatusBadRequest, code)

	assert.Len(t, inter.AddCommentCalls(), 1)
}

func TestRest_ListComments(t *testing.T) {
	games := &mocks.GameStoreMock{
		GetGameFunc: func(ctx context.Context, id string) (domain.Item, error) {
			if id != "g1" {
				return domain.Item{}, repository.ErrGameNotFound
			}
			return domain.Item{ID: id}, nil
		},
	}
	inter := &mocks.InteractionStoreMock{
		ListCommentsFunc: func(ctx context.Context, gameID string, limit int) ([]domain.Comment, error) {
			return []domain.Comment{{ID: 1, GameID: gameID, Text: "first"}}, nil
		},
	}
	ts := newTestRouter(t, games, inter)

	code, body := doRequest(t, "GET", ts.URL+"/api/v1/games/g1/comments?limit=5", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "first")
	assert.Equal(t, 5, inter.ListCommentsCalls()[0].Limit)

	code, _ = doRequest(t, "GET", ts.URL+"/api/v1/games/g1/comments", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, defaultCommentsLimit, inter.ListCommentsCalls()[1].Limit)

	code, _ = doRequest(t, "GET", ts.URL+"/api/v1/games/g1/comments?limit=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = doRequest(t, "GET", ts.URL+"/api/v1/games/nope/comments", "", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRest_StatsAndPlay(t *testing.T) {
	inter := &mocks.InteractionStoreMock{
		StatsFunc: func(ctx context.Context, gameID, userID string) (domain.GameStats, error) {
			return domain.GameStats{GameID: gameID, LikeCount: 2, Liked: userID == "u1"}, nil
		},
		AddPlayFunc: func(ctx context.Context, gameID, userID string) error { return nil },
	}
	ts := newTestRouter(t, &mocks.GameStoreMock{}, inter)

	code, body := doRequest(t, "GET", ts.URL+"/api/v1/games/g1/stats", "u1", "")
	assert.Equal(t, http.StatusOK, code)
	var st domain.GameStats
	require.NoError(t, json.Unmarshal([]byte(body), &st))
	assert.Equal(t, domain.GameStats{GameID: "g1", LikeCount: 2, Liked: true}, st)

	code, _ = doRequest(t, "GET", ts.URL+"/api/v1/games/g1/stats?user=u1", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "u1", inter.StatsCalls()[1].UserID)

	code, _ = doRequest(t, "GET", ts.URL+"/api/v1/games/g1/stats", "", "")
	assert.Equal(t, http.StatusOK, code, "anonymous stats allowed")

	code, _ = doRequest(t, "POST", ts.URL+"/api/v1/games/g1/play", "u1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, inter.AddPlayCalls(), 1)
}
