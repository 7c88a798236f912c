package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// catalog sources
const (
	SourceAPI = "api"
	SourceRSS = "rss"
	SourceDB  = "db"
)

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server" jsonschema:"description=Interaction service configuration"`
	Database  DatabaseConfig  `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Feed      FeedConfig      `yaml:"feed" json:"feed" jsonschema:"description=Swipe navigation parameters"`
	Animation AnimationConfig `yaml:"animation" json:"animation" jsonschema:"description=Transition animation parameters"`
	Sync      SyncConfig      `yaml:"sync" json:"sync" jsonschema:"description=Interaction sync to the remote service"`
	Prefetch  PrefetchConfig  `yaml:"prefetch" json:"prefetch" jsonschema:"description=Media prefetch parameters"`
	Catalog   CatalogConfig   `yaml:"catalog" json:"catalog" jsonschema:"description=Catalog source"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in RSS links"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:swipefeed.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,minimum=1,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,minimum=0,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,minimum=0,description=Connection maximum lifetime in seconds"`
}

// FeedConfig holds swipe decision and preload settings
type FeedConfig struct {
	ThresholdRatio    float64 `yaml:"threshold_ratio" json:"threshold_ratio" jsonschema:"default=0.25,minimum=0,maximum=1,description=Share of screen width a drag must travel to commit"`
	VelocityThreshold float64 `yaml:"velocity_threshold" json:"velocity_threshold" jsonschema:"default=0.5,minimum=0,description=Release velocity in px/ms committing regardless of distance"`
	CandidateMinDX    float64 `yaml:"candidate_min_dx" json:"candidate_min_dx" jsonschema:"default=5,minimum=0,description=Horizontal travel in px before a drag becomes a swipe"`
	ScreenWidth       float64 `yaml:"screen_width" json:"screen_width" jsonschema:"default=390,minimum=1,description=Screen width in px"`
	PreloadWindow     int     `yaml:"preload_window" json:"preload_window" jsonschema:"default=2,minimum=0,maximum=20,description=Number of upcoming items to preload"`
}

// AnimationConfig holds transition timing and spring physics
type AnimationConfig struct {
	Duration    time.Duration `yaml:"duration" json:"duration" jsonschema:"default=250ms,description=Fly-out duration"`
	GuardBuffer time.Duration `yaml:"guard_buffer" json:"guard_buffer" jsonschema:"default=100ms,description=Extra wait before the guard timer completes a transition"`
	FPS         int           `yaml:"fps" json:"fps" jsonschema:"default=60,minimum=1,maximum=240,description=Animation frame rate"`
	Frequency   float64       `yaml:"frequency" json:"frequency" jsonschema:"default=12,minimum=0,description=Spring angular frequency"`
	Damping     float64       `yaml:"damping" json:"damping" jsonschema:"default=0.9,minimum=0,description=Spring damping ratio"`
}

// SyncConfig holds interaction delivery settings
type SyncConfig struct {
	APIURL         string        `yaml:"api_url" json:"api_url" jsonschema:"description=Base URL of the interaction service"`
	UserID         string        `yaml:"user_id" json:"user_id" jsonschema:"default=anonymous,description=User identity sent with every request"`
	Workers        int           `yaml:"workers" json:"workers" jsonschema:"default=2,minimum=1,description=Concurrent delivery workers"`
	QueueSize      int           `yaml:"queue_size" json:"queue_size" jsonschema:"default=256,minimum=1,description=Pending deliveries kept before dropping"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout" jsonschema:"default=10s,description=Timeout of a single delivery"`
}

// PrefetchConfig holds media prefetch settings
type PrefetchConfig struct {
	Concurrency int           `yaml:"concurrency" json:"concurrency" jsonschema:"default=4,minimum=1,description=Concurrent prefetch requests"`
	RateLimit   float64       `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=0,minimum=0,description=Prefetch requests per second, 0 is unlimited"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Prefetch request timeout"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=swipefeed/1.0,description=User agent of prefetch requests"`
	MaxEntries  int           `yaml:"max_entries" json:"max_entries" jsonschema:"default=64,minimum=1,description=Media cache size"`
	TTL         time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=30m,description=Media cache entry lifetime"`
}

// CatalogConfig selects where the games come from
type CatalogConfig struct {
	Source  string        `yaml:"source" json:"source" jsonschema:"default=api,enum=api,enum=rss,enum=db,description=Catalog source"`
	RSSURL  string        `yaml:"rss_url" json:"rss_url" jsonschema:"description=Catalog feed URL for the rss source"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Catalog load timeout"`

	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=30m,description=How often the server refreshes stored games from the feed"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:swipefeed.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// feed
	if cfg.Feed.ThresholdRatio == 0 {
		cfg.Feed.ThresholdRatio = 0.25
	}
	if cfg.Feed.VelocityThreshold == 0 {
		cfg.Feed.VelocityThreshold = 0.5
	}
	if cfg.Feed.CandidateMinDX == 0 {
		cfg.Feed.CandidateMinDX = 5
	}
	if cfg.Feed.ScreenWidth == 0 {
		cfg.Feed.ScreenWidth = 390
	}
	if cfg.Feed.PreloadWindow == 0 {
		cfg.Feed.PreloadWindow = 2
	}

	// animation
	if cfg.Animation.Duration == 0 {
		cfg.Animation.Duration = 250 * time.Millisecond
	}
	if cfg.Animation.GuardBuffer == 0 {
		cfg.Animation.GuardBuffer = 100 * time.Millisecond
	}
	if cfg.Animation.FPS == 0 {
		cfg.Animation.FPS = 60
	}
	if cfg.Animation.Frequency == 0 {
		cfg.Animation.Frequency = 12
	}
	if cfg.Animation.Damping == 0 {
		cfg.Animation.Damping = 0.9
	}

	// sync
	if cfg.Sync.UserID == "" {
		cfg.Sync.UserID = "anonymous"
	}
	if cfg.Sync.Workers == 0 {
		cfg.Sync.Workers = 2
	}
	if cfg.Sync.QueueSize == 0 {
		cfg.Sync.QueueSize = 256
	}
	if cfg.Sync.RequestTimeout == 0 {
		cfg.Sync.RequestTimeout = 10 * time.Second
	}

	// prefetch
	if cfg.Prefetch.Concurrency == 0 {
		cfg.Prefetch.Concurrency = 4
	}
	if cfg.Prefetch.Timeout == 0 {
		cfg.Prefetch.Timeout = 10 * time.Second
	}
	if cfg.Prefetch.UserAgent == "" {
		cfg.Prefetch.UserAgent = "swipefeed/1.0"
	}
	if cfg.Prefetch.MaxEntries == 0 {
		cfg.Prefetch.MaxEntries = 64
	}
	if cfg.Prefetch.TTL == 0 {
		cfg.Prefetch.TTL = 30 * time.Minute
	}

	// catalog
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = SourceAPI
	}
	if cfg.Catalog.Timeout == 0 {
		cfg.Catalog.Timeout = 30 * time.Second
	}
	if cfg.Catalog.RefreshInterval == 0 {
		cfg.Catalog.RefreshInterval = 30 * time.Minute
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Feed.ThresholdRatio <= 0 || cfg.Feed.ThresholdRatio > 1 {
		return fmt.Errorf("feed.threshold_ratio must be in (0, 1]")
	}
	if cfg.Feed.VelocityThreshold <= 0 {
		return fmt.Errorf("feed.velocity_threshold must be positive")
	}
	if cfg.Feed.CandidateMinDX < 0 {
		return fmt.Errorf("feed.candidate_min_dx must be non-negative")
	}
	if cfg.Feed.ScreenWidth <= 0 {
		return fmt.Errorf("feed.screen_width must be positive")
	}
	if cfg.Feed.PreloadWindow < 0 {
		return fmt.Errorf("feed.preload_window must be non-negative")
	}

	if cfg.Animation.Duration <= 0 || cfg.Animation.GuardBuffer <= 0 {
		return fmt.Errorf("animation duration and guard_buffer must be positive")
	}

	if cfg.Sync.Workers < 1 || cfg.Sync.QueueSize < 1 {
		return fmt.Errorf("sync.workers and sync.queue_size must be at least 1")
	}

	if cfg.Prefetch.RateLimit < 0 {
		return fmt.Errorf("prefetch.rate_limit must be non-negative")
	}

	switch cfg.Catalog.Source {
	case SourceAPI:
		if cfg.Sync.APIURL == "" {
			return fmt.Errorf("sync.api_url is required for the api catalog source")
		}
	case SourceRSS:
		if cfg.Catalog.RSSURL == "" {
			return fmt.Errorf("catalog.rss_url is required for the rss catalog source")
		}
	case SourceDB:
	default:
		return fmt.Errorf("unknown catalog.source %q", cfg.Catalog.Source)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base url of the server
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
