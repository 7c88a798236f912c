// Package preload warms media of the items ahead of the current one
package preload

import (
	"context"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/swipefeed/pkg/carousel"
	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/metrics"
)

//go:generate moq -out mocks/prefetcher.go -pkg mocks -skip-ensure -fmt goimports . Prefetcher

// Prefetcher fetches one media reference. Errors are reported but never acted upon.
type Prefetcher interface {
	Prefetch(ctx context.Context, url string) error
}

// DefaultConcurrency limits parallel prefetches of one schedule run
const DefaultConcurrency = 4

// Scheduler requests prefetch for a sliding window of items. Every Schedule call supersedes the
// previous one, prefetches of the old window still running are canceled.
type Scheduler struct {
	prefetcher  Prefetcher
	concurrency int

	mu     sync.Mutex
	items  []domain.Item
	ctx    context.Context
	cancel context.CancelFunc // cancels the current run
	stop   context.CancelFunc // cancels everything, set by Close
	wg     sync.WaitGroup
}

// NewScheduler makes a scheduler. Zero concurrency means DefaultConcurrency.
func NewScheduler(prefetcher Prefetcher, concurrency int) *Scheduler {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Scheduler{prefetcher: prefetcher, concurrency: concurrency, ctx: ctx, stop: stop}
}

// SetItems replaces the item list used to resolve indices
func (s *Scheduler) SetItems(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

// Schedule requests prefetch of primary then secondary media for the count items following
// fromIndex, wrapping around the list. It returns immediately.
func (s *Scheduler) Schedule(fromIndex, count int) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return // closed
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	refs := Window(s.items, fromIndex, count)
	if len(refs) == 0 {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		g := errgroup.Group{}
		g.SetLimit(s.concurrency)
		for _, url := range refs {
			if ctx.Err() != nil {
				break // superseded
			}
			g.Go(func() error {
				s.prefetch(ctx, url)
				return nil
			})
		}
		_ = g.Wait()
	}()
}

// Close cancels running prefetches and waits for them to stop
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.stop()
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Scheduler) prefetch(ctx context.Context, url string) {
	if err := s.prefetcher.Prefetch(ctx, url); err != nil {
		// failure is fine, the image loads on demand later
		lgr.Printf("[DEBUG] prefetch %s failed: %v", url, err)
		metrics.Prefetches.WithLabelValues("failed").Inc()
		return
	}
	metrics.Prefetches.WithLabelValues("ok").Inc()
}

// Window returns media references of the count items after fromIndex, wrapped around the list,
// primary before secondary, without duplicates
func Window(items []domain.Item, fromIndex, count int) []string {
	if len(items) == 0 || count <= 0 {
		return nil
	}
	seen := make(map[string]bool)
	var refs []string
	for i := 1; i <= count; i++ {
		item := items[carousel.Wrap(fromIndex+i, len(items))]
		for _, ref := range item.ImageRefs() {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			refs = append(refs, ref)
		}
	}
	return refs
}
