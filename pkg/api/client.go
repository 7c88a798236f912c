// Package api is the http client of the interaction service. It implements interaction.Client
// and catalog.Provider. Requests are sent once, non-2xx responses are errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/swipefeed/pkg/domain"
)

// UserHeader carries the user identity
const UserHeader = "X-User-ID"

// Client talks to the interaction service
type Client struct {
	baseURL string
	userID  string
	client  *http.Client
}

// NewClient makes a client for the service at baseURL acting as userID
func NewClient(baseURL, userID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		userID:  userID,
		client:  &http.Client{Timeout: timeout},
	}
}

// Like likes the game
func (c *Client) Like(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodPost, gamePath(itemID, "like"), nil, nil)
}

// Unlike removes the like
func (c *Client) Unlike(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, gamePath(itemID, "like"), nil, nil)
}

// Bookmark bookmarks the game
func (c *Client) Bookmark(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodPost, gamePath(itemID, "bookmark"), nil, nil)
}

// Unbookmark removes the bookmark
func (c *Client) Unbookmark(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, gamePath(itemID, "bookmark"), nil, nil)
}

// Rate sends the user's rating
func (c *Client) Rate(ctx context.Context, itemID string, rating int) error {
	return c.do(ctx, http.MethodPost, gamePath(itemID, "rate"), RateRequest{Rating: rating}, nil)
}

// Comment posts a comment
func (c *Client) Comment(ctx context.Context, itemID, text string) error {
	return c.do(ctx, http.MethodPost, gamePath(itemID, "comments"), CommentRequest{Text: text}, nil)
}

// Play records that the game was opened
func (c *Client) Play(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodPost, gamePath(itemID, "play"), nil, nil)
}

// Games returns the catalog
func (c *Client) Games(ctx context.Context) ([]domain.Item, error) {
	var res []domain.Item
	if err := c.do(ctx, http.MethodGet, "/games", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Stats returns server-side counts of the game for the current user
func (c *Client) Stats(ctx context.Context, itemID string) (domain.GameStats, error) {
	var res domain.GameStats
	if err := c.do(ctx, http.MethodGet, gamePath(itemID, "stats"), nil, &res); err != nil {
		return domain.GameStats{}, err
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(UserHeader, c.userID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&errResp)
		if errResp.Error != "" {
			return fmt.Errorf("%s %s: status %d, %s", method, path, resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func gamePath(itemID, action string) string {
	return "/games/" + url.PathEscape(itemID) + "/" + action
}

// RateRequest is the body of the rate endpoint
type RateRequest struct {
	Rating int `json:"rating"`
}

// CommentRequest is the body of the comments endpoint
type CommentRequest struct {
	Text string `json:"text"`
}
