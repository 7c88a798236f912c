package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/swipefeed/pkg/api"
	"github.com/umputun/swipefeed/pkg/catalog"
	"github.com/umputun/swipefeed/pkg/repository"
)

const (
	maxCommentLen        = 2000
	defaultCommentsLimit = 50
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listGamesHandler returns the catalog in feed order
func (s *Server) listGamesHandler(w http.ResponseWriter, r *http.Request) {
	games, err := s.games.ListGames(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list games: %v", err)
		renderError(w, r, errors.New("failed to list games"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, catalog.Normalize(games))
}

// rssHandler serves the catalog as RSS feed
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	games, err := s.games.ListGames(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get games for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := catalog.NewGenerator(s.config.GetBaseURL()).GenerateRSS(catalog.Normalize(games))
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// statsHandler returns server-side counts of a game, user flags are filled when the user is known
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(api.UserHeader)
	if userID == "" {
		userID = r.URL.Query().Get("user")
	}
	stats, err := s.interactions.Stats(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		s.storeError(w, r, "get stats", err)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// listCommentsHandler returns the latest comments of a game
func (s *Server) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultCommentsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = n
	}

	gameID := r.PathValue("id")
	if _, err := s.games.GetGame(r.Context(), gameID); err != nil {
		s.storeError(w, r, "get game", err)
		return
	}
	comments, err := s.interactions.ListComments(r.Context(), gameID, limit)
	if err != nil {
		s.storeError(w, r, "list comments", err)
		return
	}
	renderJSON(w, r, http.StatusOK, comments)
}

// likeHandler sets or removes the like of the user
func (s *Server) likeHandler(liked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.interactions.SetLike(r.Context(), r.PathValue("id"), userFrom(r), liked); err != nil {
			s.storeError(w, r, "update like", err)
			return
		}
		renderJSON(w, r, http.StatusOK, map[string]any{"status": "ok", "liked": liked})
	}
}

// bookmarkHandler sets or removes the bookmark of the user
func (s *Server) bookmarkHandler(bookmarked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.interactions.SetBookmark(r.Context(), r.PathValue("id"), userFrom(r), bookmarked); err != nil {
			s.storeError(w, r, "update bookmark", err)
			return
		}
		renderJSON(w, r, http.StatusOK, map[string]any{"status": "ok", "bookmarked": bookmarked})
	}
}

// rateHandler stores the user's rating, 1..5
func (s *Server) rateHandler(w http.ResponseWriter, r *http.Request) {
	var req api.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		renderError(w, r, fmt.Errorf("rating %d out of range 1..5", req.Rating), http.StatusBadRequest)
		return
	}
	if err := s.interactions.Rate(r.Context(), r.PathValue("id"), userFrom(r), req.Rating); err != nil {
		s.storeError(w, r, "rate", err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"status": "ok", "rating": req.Rating})
}

// commentHandler sanitizes and stores a comment
func (s *Server) commentHandler(w http.ResponseWriter, r *http.Request) {
	var req api.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(s.sanitizer.Sanitize(req.Text))
	if text == "" {
		renderError(w, r, errors.New("empty comment"), http.StatusBadRequest)
		return
	}
	if len([]rune(text)) > maxCommentLen {
		renderError(w, r, fmt.Errorf("comment longer than %d characters", maxCommentLen), http.StatusBadRequest)
		return
	}

	comment, err := s.interactions.AddComment(r.Context(), r.PathValue("id"), userFrom(r), text)
	if err != nil {
		s.storeError(w, r, "add comment", err)
		return
	}
	renderJSON(w, r, http.StatusCreated, comment)
}

// playHandler records that the user opened the game
func (s *Server) playHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.interactions.AddPlay(r.Context(), r.PathValue("id"), userFrom(r)); err != nil {
		s.storeError(w, r, "add play", err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// storeError maps store errors to responses, unknown games are 404
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, repository.ErrGameNotFound) {
		renderError(w, r, fmt.Errorf("game %q not found", r.PathValue("id")), http.StatusNotFound)
		return
	}
	lgr.Printf("[ERROR] failed to %s for game %s: %v", op, r.PathValue("id"), err)
	renderError(w, r, fmt.Errorf("failed to %s", op), http.StatusInternalServerError)
}

// requireUser rejects requests without user identity
func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(r.Header.Get(api.UserHeader)) == "" {
			renderError(w, r, errors.New("missing "+api.UserHeader+" header"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userFrom(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(api.UserHeader))
}
