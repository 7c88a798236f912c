// Package interaction keeps optimistic per-item interaction state (likes, bookmarks, ratings,
// comments) and delivers every mutation to the remote service in the background.
//
// Local state changes synchronously and is never rolled back. Each mutation enqueues exactly one
// delivery attempt; failed deliveries are logged and dropped, nothing is retried or coalesced.
package interaction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/metrics"
)

//go:generate moq -out mocks/client.go -pkg mocks -skip-ensure -fmt goimports . Client

// Client delivers interactions to the remote service
type Client interface {
	Like(ctx context.Context, itemID string) error
	Unlike(ctx context.Context, itemID string) error
	Bookmark(ctx context.Context, itemID string) error
	Unbookmark(ctx context.Context, itemID string) error
	Rate(ctx context.Context, itemID string, rating int) error
	Comment(ctx context.Context, itemID, text string) error
	Play(ctx context.Context, itemID string) error
}

// rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// ErrInvalidRating returned for ratings outside [MinRating, MaxRating]
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Config defines store settings
type Config struct {
	Workers        int           // concurrent deliveries
	QueueSize      int           // pending deliveries buffered before new ones are dropped
	RequestTimeout time.Duration // per delivery
}

// Store holds interaction records keyed by item id
type Store struct {
	client Client
	cfg    Config

	mu      sync.RWMutex
	records map[string]*domain.InteractionRecord

	queue   chan domain.PendingSync
	pending atomic.Int64
	cancel  context.CancelFunc
	done    chan struct{}
	now     func() time.Time
}

// NewStore makes a store delivering to client. A nil client keeps interactions local only.
func NewStore(client Client, cfg Config) *Store {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	return &Store{
		client:  client,
		cfg:     cfg,
		records: make(map[string]*domain.InteractionRecord),
		queue:   make(chan domain.PendingSync, cfg.QueueSize),
		now:     time.Now,
	}
}

// Start runs delivery workers until ctx is canceled or Stop is called
func (s *Store) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < s.cfg.Workers; i++ {
		g.Go(func() error {
			s.deliveryWorker(ctx)
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(s.done)
	}()
	lgr.Printf("[INFO] interaction sync started with %d workers", s.cfg.Workers)
}

// Stop stops delivery workers. Mutations still queued are discarded.
func (s *Store) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	lgr.Printf("[INFO] interaction sync stopped, %d deliveries discarded", s.pending.Load())
}

// Drain waits until all queued deliveries were attempted or ctx is done
func (s *Store) Drain(ctx context.Context) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for s.pending.Load() > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("drain interrupted with %d pending: %w", s.pending.Load(), ctx.Err())
		case <-ticker.C:
		}
	}
	return nil
}

// Pending returns the number of deliveries not attempted yet
func (s *Store) Pending() int {
	return int(s.pending.Load())
}

// Record returns a snapshot of the item's record, all-zero for an item never touched
func (s *Store) Record(itemID string) domain.InteractionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[itemID]; ok {
		return *rec
	}
	return domain.InteractionRecord{}
}

// Seed sets the initial record of an item, typically counts loaded from the server
func (s *Store) Seed(itemID string, rec domain.InteractionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.LikeCount = max(rec.LikeCount, 0)
	s.records[itemID] = &rec
}

// ToggleLike flips the liked flag and adjusts like count, never below zero
func (s *Store) ToggleLike(itemID string) domain.InteractionRecord {
	s.mu.Lock()
	rec := s.record(itemID)
	rec.Liked = !rec.Liked
	kind := domain.SyncUnlike
	if rec.Liked {
		rec.LikeCount++
		kind = domain.SyncLike
	} else {
		rec.LikeCount = max(rec.LikeCount-1, 0)
	}
	res := *rec
	s.mu.Unlock()

	s.enqueue(domain.PendingSync{Kind: kind, ItemID: itemID})
	return res
}

// ToggleBookmark flips the bookmarked flag
func (s *Store) ToggleBookmark(itemID string) domain.InteractionRecord {
	s.mu.Lock()
	rec := s.record(itemID)
	rec.Bookmarked = !rec.Bookmarked
	kind := domain.SyncUnbookmark
	if rec.Bookmarked {
		kind = domain.SyncBookmark
	}
	res := *rec
	s.mu.Unlock()

	s.enqueue(domain.PendingSync{Kind: kind, ItemID: itemID})
	return res
}

// SubmitRating adds a 1..5 rating to the running average. Invalid ratings change nothing,
// enqueue nothing and return ErrInvalidRating.
func (s *Store) SubmitRating(itemID string, rating int) (domain.InteractionRecord, error) {
	if rating < MinRating || rating > MaxRating {
		return s.Record(itemID), fmt.Errorf("rating %d for %s: %w", rating, itemID, ErrInvalidRating)
	}

	s.mu.Lock()
	rec := s.record(itemID)
	rec.RatingSum += float64(rating)
	rec.RatingCount++
	res := *rec
	s.mu.Unlock()

	s.enqueue(domain.PendingSync{Kind: domain.SyncRate, ItemID: itemID, Rating: rating})
	return res, nil
}

// AddComment bumps the displayed comment count and sends the text to the comment service
func (s *Store) AddComment(itemID, text string) domain.InteractionRecord {
	s.mu.Lock()
	rec := s.record(itemID)
	rec.CommentCount++
	res := *rec
	s.mu.Unlock()

	s.enqueue(domain.PendingSync{Kind: domain.SyncComment, ItemID: itemID, Text: text})
	return res
}

// RecordView reports the item was shown. It has no local state.
func (s *Store) RecordView(itemID string) {
	s.enqueue(domain.PendingSync{Kind: domain.SyncPlay, ItemID: itemID})
}

// record returns the mutable record, creating it on first reference. Caller holds the lock.
func (s *Store) record(itemID string) *domain.InteractionRecord {
	rec, ok := s.records[itemID]
	if !ok {
		rec = &domain.InteractionRecord{}
		s.records[itemID] = rec
	}
	return rec
}

// enqueue never blocks, a full queue drops the delivery
func (s *Store) enqueue(p domain.PendingSync) {
	if s.client == nil {
		return
	}
	p.ID = uuid.New().String()
	p.CreatedAt = s.now()

	s.pending.Add(1)
	select {
	case s.queue <- p:
	default:
		s.pending.Add(-1)
		lgr.Printf("[WARN] sync queue full, %s for %s dropped", p.Kind, p.ItemID)
		metrics.SyncAttempts.WithLabelValues(string(p.Kind), "dropped").Inc()
	}
}

func (s *Store) deliveryWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case p := <-s.queue:
			s.deliver(ctx, p)
			s.pending.Add(-1)
		}
	}
}

// deliver makes one attempt. The outcome is logged only, local state stays as it is.
func (s *Store) deliver(ctx context.Context, p domain.PendingSync) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	var err error
	switch p.Kind {
	case domain.SyncLike:
		err = s.client.Like(ctx, p.ItemID)
	case domain.SyncUnlike:
		err = s.client.Unlike(ctx, p.ItemID)
	case domain.SyncBookmark:
		err = s.client.Bookmark(ctx, p.ItemID)
	case domain.SyncUnbookmark:
		err = s.client.Unbookmark(ctx, p.ItemID)
	case domain.SyncRate:
		err = s.client.Rate(ctx, p.ItemID, p.Rating)
	case domain.SyncComment:
		err = s.client.Comment(ctx, p.ItemID, p.Text)
	case domain.SyncPlay:
		err = s.client.Play(ctx, p.ItemID)
	default:
		err = fmt.Errorf("unknown sync kind %q", p.Kind)
	}

	if err != nil {
		lgr.Printf("[WARN] sync %s for %s failed (id %s): %v", p.Kind, p.ItemID, p.ID, err)
		metrics.SyncAttempts.WithLabelValues(string(p.Kind), "failed").Inc()
		return
	}
	lgr.Printf("[DEBUG] sync %s for %s delivered in %v", p.Kind, p.ItemID, s.now().Sub(p.CreatedAt))
	metrics.SyncAttempts.WithLabelValues(string(p.Kind), "ok").Inc()
}
