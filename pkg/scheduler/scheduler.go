// Package scheduler keeps the stored catalog in sync with an upstream catalog source
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/swipefeed/pkg/catalog"
	"github.com/umputun/swipefeed/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports ../catalog Provider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . CatalogStore

// CatalogStore persists the catalog
type CatalogStore interface {
	UpsertGames(ctx context.Context, games []domain.Item) error
}

// Config holds scheduler configuration
type Config struct {
	UpdateInterval time.Duration
}

// Scheduler periodically pulls the catalog from the provider into the store
type Scheduler struct {
	provider       catalog.Provider
	store          CatalogStore
	updateInterval time.Duration
	wg             sync.WaitGroup
	cancel         context.CancelFunc
}

// NewScheduler creates a new scheduler instance
func NewScheduler(provider catalog.Provider, store CatalogStore, cfg Config) *Scheduler {
	if cfg.UpdateInterval <= 0 {
		cfg.UpdateInterval = 30 * time.Minute
	}
	return &Scheduler{provider: provider, store: store, updateInterval: cfg.UpdateInterval}
}

// Start runs the update worker, the first update happens immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.updateWorker(ctx)
	lgr.Printf("[INFO] catalog scheduler started with update interval %v", s.updateInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] catalog scheduler stopped")
}

// UpdateNow pulls the catalog once and stores it
func (s *Scheduler) UpdateNow(ctx context.Context) (int, error) {
	games, err := s.provider.Games(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}
	games = catalog.Normalize(games)
	if len(games) == 0 {
		// empty upstream keeps the stored catalog
		return 0, nil
	}
	if err := s.store.UpsertGames(ctx, games); err != nil {
		return 0, fmt.Errorf("store catalog: %w", err)
	}
	return len(games), nil
}

func (s *Scheduler) updateWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	s.update(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.update(ctx)
		}
	}
}

func (s *Scheduler) update(ctx context.Context) {
	n, err := s.UpdateNow(ctx)
	if err != nil {
		if ctx.Err() == nil {
			lgr.Printf("[WARN] catalog update failed: %v", err)
		}
		return
	}
	lgr.Printf("[INFO] catalog updated, %d games", n)
}
