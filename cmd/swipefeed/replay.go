package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/swipefeed/pkg/animator"
	"github.com/umputun/swipefeed/pkg/api"
	"github.com/umputun/swipefeed/pkg/catalog"
	"github.com/umputun/swipefeed/pkg/config"
	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/interaction"
	"github.com/umputun/swipefeed/pkg/orchestrator"
	"github.com/umputun/swipefeed/pkg/preload"
	"github.com/umputun/swipefeed/pkg/swipe"
)

// script is a sequence of user actions replayed against the feed
type script struct {
	Steps []step `yaml:"steps"`
}

// step is one user action, exactly one field is expected to be set
type step struct {
	Swipe    *swipeStep    `yaml:"swipe"`
	Like     bool          `yaml:"like"`
	Bookmark bool          `yaml:"bookmark"`
	Rate     int           `yaml:"rate"`
	Comment  string        `yaml:"comment"`
	Wait     time.Duration `yaml:"wait"`
}

// swipeStep is a drag to dx,dy released with velocity vx
type swipeStep struct {
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
	VX     float64 `yaml:"vx"`
	Moves  int     `yaml:"moves"`
	NoWait bool    `yaml:"no_wait"` // don't wait for the transition to settle
}

// samples returns start, intermediate moves and release of the drag
func (s swipeStep) samples() []domain.GestureSample {
	moves := s.Moves
	if moves <= 0 {
		moves = 5
	}
	res := []domain.GestureSample{{Phase: domain.PhaseStart}}
	for i := 1; i <= moves; i++ {
		f := float64(i) / float64(moves)
		res = append(res, domain.GestureSample{DX: s.DX * f, DY: s.DY * f, Phase: domain.PhaseMove})
	}
	return append(res, domain.GestureSample{DX: s.DX, DY: s.DY, VX: s.VX, Phase: domain.PhaseEnd})
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var res script
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &res, nil
}

func runReplay(ctx context.Context, cfg *config.Config, scriptPath string, out io.Writer) error {
	sc, err := loadScript(scriptPath)
	if err != nil {
		return err
	}

	items, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	log.Printf("[INFO] loaded %d games from %s catalog", len(items), cfg.Catalog.Source)

	// interactions stay local when no service is configured
	var client interaction.Client
	var apiClient *api.Client
	if cfg.Sync.APIURL != "" {
		apiClient = api.NewClient(cfg.Sync.APIURL, cfg.Sync.UserID, cfg.Sync.RequestTimeout)
		client = apiClient
	}
	store := interaction.NewStore(client, interaction.Config{
		Workers:        cfg.Sync.Workers,
		QueueSize:      cfg.Sync.QueueSize,
		RequestTimeout: cfg.Sync.RequestTimeout,
	})
	if apiClient != nil {
		seedRecords(ctx, apiClient, store, items)
	}
	store.Start(ctx)
	defer store.Stop()

	prefetcher := preload.NewHTTPPrefetcher(preload.HTTPConfig{
		Timeout:    cfg.Prefetch.Timeout,
		RateLimit:  rateInterval(cfg.Prefetch.RateLimit),
		UserAgent:  cfg.Prefetch.UserAgent,
		MaxEntries: cfg.Prefetch.MaxEntries,
		TTL:        cfg.Prefetch.TTL,
	})
	scheduler := preload.NewScheduler(prefetcher, cfg.Prefetch.Concurrency)
	defer scheduler.Close()

	feed, err := orchestrator.New(items, orchestrator.Deps{
		Interactions: store,
		Preloader:    scheduler,
		Haptics:      logHaptics{},
	}, orchestrator.Config{
		ScreenWidth:    cfg.Feed.ScreenWidth,
		Policy:         swipe.NewPolicy(cfg.Feed.ThresholdRatio, cfg.Feed.VelocityThreshold),
		CandidateMinDX: cfg.Feed.CandidateMinDX,
		PreloadWindow:  cfg.Feed.PreloadWindow,
		Animation:      animator.Config{Duration: cfg.Animation.Duration, GuardBuffer: cfg.Animation.GuardBuffer},
		Spring: animator.SpringConfig{
			FPS:       cfg.Animation.FPS,
			Frequency: cfg.Animation.Frequency,
			Damping:   cfg.Animation.Damping,
		},
	})
	if err != nil {
		return fmt.Errorf("make feed: %w", err)
	}
	defer feed.Close()

	rp := &replayer{
		feed:    feed,
		out:     &lockedWriter{w: out},
		changed: make(chan struct{}, 1),
		settle:  cfg.Animation.Duration + cfg.Animation.GuardBuffer,
	}
	feed.OnCurrentItemChanged(rp.itemChanged)
	feed.OnSpringBack(func(frames []float64) {
		log.Printf("[DEBUG] spring back in %d frames", len(frames))
	})

	rp.printf("current %s %q\n", feed.CurrentItem().ID, feed.CurrentItem().Title)
	for i, st := range sc.Steps {
		if err := rp.step(ctx, st); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	// let the last view and pending deliveries go out
	drainCtx, cancel := context.WithTimeout(ctx, cfg.Sync.RequestTimeout+time.Second)
	defer cancel()
	if err := store.Drain(drainCtx); err != nil {
		log.Printf("[WARN] %d interactions not delivered: %v", store.Pending(), err)
	}

	cur := feed.CurrentItem()
	rec := store.Record(cur.ID)
	rp.printf("final %s liked=%t bookmarked=%t likes=%d rating=%.1f comments=%d\n",
		cur.ID, rec.Liked, rec.Bookmarked, rec.LikeCount, rec.AverageRating(), rec.CommentCount)
	return nil
}

// replayer feeds script steps to the feed and reports what happened
type replayer struct {
	feed    *orchestrator.Orchestrator
	out     *lockedWriter
	changed chan struct{} // signaled on each current item change
	settle  time.Duration // fly-out duration plus guard buffer
}

func (r *replayer) itemChanged(it domain.Item) {
	r.printf("current %s %q\n", it.ID, it.Title)
	select {
	case r.changed <- struct{}{}:
	default:
	}
}

func (r *replayer) step(ctx context.Context, st step) error {
	switch {
	case st.Swipe != nil:
		return r.swipe(ctx, *st.Swipe)
	case st.Like:
		rec := r.feed.OnLikePress()
		r.printf("like %s liked=%t likes=%d\n", r.feed.CurrentItem().ID, rec.Liked, rec.LikeCount)
	case st.Bookmark:
		rec := r.feed.OnBookmarkPress()
		r.printf("bookmark %s bookmarked=%t\n", r.feed.CurrentItem().ID, rec.Bookmarked)
	case st.Rate != 0:
		rec, err := r.feed.OnRatePress(st.Rate)
		if err != nil {
			// invalid ratings are reported and skipped
			r.printf("rate rejected: %v\n", err)
			return nil
		}
		r.printf("rate %s average=%.1f\n", r.feed.CurrentItem().ID, rec.AverageRating())
	case st.Comment != "":
		rec := r.feed.OnCommentPress(st.Comment)
		r.printf("comment %s comments=%d\n", r.feed.CurrentItem().ID, rec.CommentCount)
	case st.Wait > 0:
		select {
		case <-time.After(st.Wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	default:
		return errors.New("empty step")
	}
	return nil
}

// swipe sends the drag samples and, for a committed swipe, waits for the item change.
// The guard timer bounds the wait by the settle duration.
func (r *replayer) swipe(ctx context.Context, s swipeStep) error {
	select {
	case <-r.changed: // left over from a no_wait swipe
	default:
	}
	for _, sample := range s.samples() {
		r.feed.OnGestureEvent(sample)
	}
	if s.NoWait || !r.feed.State().IsTransitioning {
		return nil
	}

	select {
	case <-r.changed:
		return nil
	case <-time.After(r.settle + time.Second):
		return errors.New("transition did not settle")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *replayer) printf(format string, args ...any) {
	r.out.mu.Lock()
	defer r.out.mu.Unlock()
	fmt.Fprintf(r.out.w, format, args...) //nolint:errcheck // best effort output
}

// lockedWriter serializes output of the replay loop and settle callbacks
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func loadCatalog(ctx context.Context, cfg *config.Config) ([]domain.Item, error) {
	var provider catalog.Provider
	switch cfg.Catalog.Source {
	case config.SourceRSS:
		provider = catalog.RSSProvider{URL: cfg.Catalog.RSSURL, Timeout: cfg.Catalog.Timeout, UserAgent: cfg.Prefetch.UserAgent}
	case config.SourceDB:
		repos, err := openRepositories(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer repos.Close() //nolint:errcheck // read only use
		provider = catalog.StoreProvider{Store: repos.Game}
	default:
		provider = api.NewClient(cfg.Sync.APIURL, cfg.Sync.UserID, cfg.Catalog.Timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Catalog.Timeout)
	defer cancel()
	items, err := provider.Games(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	items = catalog.Normalize(items)
	if len(items) == 0 {
		return nil, orchestrator.ErrEmptyFeed
	}
	return items, nil
}

// seedRecords loads server-side counts so optimistic updates start from the server truth
func seedRecords(ctx context.Context, client *api.Client, store *interaction.Store, items []domain.Item) {
	for _, it := range items {
		st, err := client.Stats(ctx, it.ID)
		if err != nil {
			log.Printf("[WARN] failed to load stats of %s: %v", it.ID, err)
			continue
		}
		store.Seed(it.ID, st.Record())
	}
}

// rateInterval converts requests per second into the minimal interval between requests
func rateInterval(perSecond float64) time.Duration {
	if perSecond <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / perSecond)
}

// logHaptics reports feedback events to the debug log
type logHaptics struct{}

func (logHaptics) GestureGrant() { log.Print("[DEBUG] haptic gesture grant") }
func (logHaptics) SwipeCommit()  { log.Print("[DEBUG] haptic swipe commit") }
func (logHaptics) LikeToggle()   { log.Print("[DEBUG] haptic like toggle") }
func (logHaptics) RatingSubmit() { log.Print("[DEBUG] haptic rating submit") }
