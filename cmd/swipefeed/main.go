package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/swipefeed/pkg/catalog"
	"github.com/umputun/swipefeed/pkg/config"
	"github.com/umputun/swipefeed/pkg/repository"
	"github.com/umputun/swipefeed/pkg/scheduler"
	"github.com/umputun/swipefeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"swipefeed.yml" description:"configuration file"`

	Server ServerCmd `command:"server" description:"run the interaction service"`
	Replay ReplayCmd `command:"replay" description:"run the feed engine headless from a script"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

// ServerCmd options of the server command
type ServerCmd struct {
	Seed string `long:"seed" env:"SEED" description:"keep the catalog in sync with this RSS feed"`
}

// ReplayCmd options of the replay command
type ReplayCmd struct {
	Script string `short:"s" long:"script" env:"SCRIPT" description:"replay script file"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = true
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	command := "server"
	if parser.Active != nil {
		command = parser.Active.Name
	}

	color.NoColor = color.NoColor || opts.NoColor
	SetupLog(opts.Debug)
	log.Printf("[INFO] starting swipefeed %s, version %s", command, revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts, command)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %s failed: %v", command, err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts, command string) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch command {
	case "server":
		return runServer(ctx, cfg, opts)
	case "replay":
		if opts.Replay.Script == "" {
			return errors.New("replay script is required")
		}
		return runReplay(ctx, cfg, opts.Replay.Script, os.Stdout)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runServer(ctx context.Context, cfg *config.Config, opts Opts) error {
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	seedURL := opts.Server.Seed
	if seedURL == "" && cfg.Catalog.Source == config.SourceRSS {
		seedURL = cfg.Catalog.RSSURL
	}
	if seedURL != "" {
		provider := catalog.RSSProvider{URL: seedURL, Timeout: cfg.Catalog.Timeout, UserAgent: cfg.Prefetch.UserAgent}
		sched := scheduler.NewScheduler(provider, repos.Game, scheduler.Config{UpdateInterval: cfg.Catalog.RefreshInterval})
		sched.Start(ctx)
		defer sched.Stop()
		log.Printf("[INFO] catalog refreshed from %s every %v", seedURL, cfg.Catalog.RefreshInterval)
	}

	srv := server.New(cfg, repos.Game, repos.Interaction, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repository.Repositories, error) {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return repos, nil
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
