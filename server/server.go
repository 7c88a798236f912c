package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/metrics"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/games.go -pkg mocks -skip-ensure -fmt goimports . GameStore
//go:generate moq -out mocks/interactions.go -pkg mocks -skip-ensure -fmt goimports . InteractionStore

// Server is the reference interaction service backing the feed client
type Server struct {
	config       ConfigProvider
	games        GameStore
	interactions InteractionStore
	version      string
	debug        bool
	sanitizer    *bluemonday.Policy

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// GameStore provides the catalog
type GameStore interface {
	ListGames(ctx context.Context) ([]domain.Item, error)
	GetGame(ctx context.Context, id string) (domain.Item, error)
}

// InteractionStore persists user interactions
type InteractionStore interface {
	SetLike(ctx context.Context, gameID, userID string, liked bool) error
	SetBookmark(ctx context.Context, gameID, userID string, bookmarked bool) error
	Rate(ctx context.Context, gameID, userID string, rating int) error
	AddComment(ctx context.Context, gameID, userID, text string) (domain.Comment, error)
	ListComments(ctx context.Context, gameID string, limit int) ([]domain.Comment, error)
	AddPlay(ctx context.Context, gameID, userID string) error
	Stats(ctx context.Context, gameID, userID string) (domain.GameStats, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, games GameStore, interactions InteractionStore, version string, debug bool) *Server {
	s := &Server{
		config:       cfg,
		games:        games,
		interactions: interactions,
		version:      version,
		debug:        debug,
		sanitizer:    bluemonday.StrictPolicy(),
		router:       routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("swipefeed", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Handle("GET /metrics", metrics.Handler())

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /games", s.listGamesHandler)
		r.HandleFunc("GET /games.rss", s.rssHandler)
		r.HandleFunc("GET /games/{id}/stats", s.statsHandler)
		r.HandleFunc("GET /games/{id}/comments", s.listCommentsHandler)

		r.Group().Route(func(u *routegroup.Bundle) {
			u.Use(requireUser)
			u.HandleFunc("POST /games/{id}/like", s.likeHandler(true))
			u.HandleFunc("DELETE /games/{id}/like", s.likeHandler(false))
			u.HandleFunc("POST /games/{id}/bookmark", s.bookmarkHandler(true))
			u.HandleFunc("DELETE /games/{id}/bookmark", s.bookmarkHandler(false))
			u.HandleFunc("POST /games/{id}/rate", s.rateHandler)
			u.HandleFunc("POST /games/{id}/comments", s.commentHandler)
			u.HandleFunc("POST /games/{id}/play", s.playHandler)
		})
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
