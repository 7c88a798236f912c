// Package orchestrator composes the swipe engine: it feeds gesture samples to the tracker, asks the
// decision policy on release, drives the transition animator, advances the circular index on
// settle, schedules media preloading and exposes interaction callbacks to the presentation layer.
package orchestrator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/swipefeed/pkg/animator"
	"github.com/umputun/swipefeed/pkg/carousel"
	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/metrics"
	"github.com/umputun/swipefeed/pkg/swipe"
)

//go:generate moq -out mocks/haptics.go -pkg mocks -skip-ensure -fmt goimports . Haptics
//go:generate moq -out mocks/preloader.go -pkg mocks -skip-ensure -fmt goimports . Preloader

// errors returned by the orchestrator
var (
	ErrEmptyFeed          = errors.New("feed has no items")
	ErrTransitionInFlight = errors.New("transition in flight")
)

// DefaultPreloadWindow is the number of items ahead of the current one to preload
const DefaultPreloadWindow = 2

// maxRotation is the card rotation in degrees at full screen width displacement
const maxRotation = 15.0

// Haptics receives best-effort feedback notifications
type Haptics interface {
	GestureGrant()
	SwipeCommit()
	LikeToggle()
	RatingSubmit()
}

// Interactions is the optimistic interaction store used by the orchestrator
type Interactions interface {
	Record(itemID string) domain.InteractionRecord
	ToggleLike(itemID string) domain.InteractionRecord
	ToggleBookmark(itemID string) domain.InteractionRecord
	SubmitRating(itemID string, rating int) (domain.InteractionRecord, error)
	AddComment(itemID, text string) domain.InteractionRecord
	RecordView(itemID string)
}

// Preloader warms media of upcoming items
type Preloader interface {
	SetItems(items []domain.Item)
	Schedule(fromIndex, count int)
}

// Config defines orchestrator parameters
type Config struct {
	ScreenWidth    float64
	Policy         swipe.Policy
	CandidateMinDX float64
	PreloadWindow  int
	Animation      animator.Config
	Spring         animator.SpringConfig
}

// Deps are the collaborators of the orchestrator. Interactions is required, Driver defaults to
// the spring driver, Preloader and Haptics are optional.
type Deps struct {
	Interactions Interactions
	Preloader    Preloader
	Haptics      Haptics
	Driver       animator.Driver
}

// Snapshot is what the presentation layer renders
type Snapshot struct {
	State    domain.FeedState
	DX       float64 // live horizontal displacement of the current card
	Rotation float64 // card rotation in degrees, proportional to DX
	Values   animator.Values
	Record   domain.InteractionRecord
}

// Orchestrator owns FeedState. Its lock is never held while calling the animator or any
// listener, so callbacks may call back into the orchestrator.
type Orchestrator struct {
	cfg          Config
	interactions Interactions
	preloader    Preloader
	haptics      Haptics
	anim         *animator.Animator
	tracker      *swipe.Tracker
	gesture      *gestureListener

	mu            sync.Mutex
	items         []domain.Item
	indexer       *carousel.Indexer
	transitioning bool
	dx            float64
	itemListeners []func(domain.Item)
	backListeners []func([]float64)
}

// New makes an orchestrator for a non-empty item list and schedules the initial preload
func New(items []domain.Item, deps Deps, cfg Config) (*Orchestrator, error) {
	if len(items) == 0 {
		return nil, ErrEmptyFeed
	}
	if deps.Interactions == nil {
		return nil, errors.New("interactions store is required")
	}
	if cfg.ScreenWidth <= 0 {
		return nil, fmt.Errorf("invalid screen width %v", cfg.ScreenWidth)
	}
	if cfg.Policy == (swipe.Policy{}) {
		cfg.Policy = swipe.NewPolicy(0, 0)
	}
	if cfg.PreloadWindow <= 0 {
		cfg.PreloadWindow = DefaultPreloadWindow
	}
	driver := deps.Driver
	if driver == nil {
		driver = animator.NewSpringDriver(cfg.ScreenWidth, cfg.Animation.Duration, cfg.Spring)
	}

	res := &Orchestrator{
		cfg:          cfg,
		interactions: deps.Interactions,
		preloader:    deps.Preloader,
		haptics:      deps.Haptics,
		items:        append([]domain.Item(nil), items...),
		indexer:      carousel.NewIndexer(len(items)),
		gesture:      &gestureListener{},
	}
	res.tracker = swipe.NewTracker(cfg.CandidateMinDX, res.gesture)
	res.anim = animator.New(driver, cfg.Animation, res.settled)
	res.preload(res.items, 0)
	return res, nil
}

// CurrentItem returns the item at the current index
func (o *Orchestrator) CurrentItem() domain.Item {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.items[o.indexer.Current()]
}

// State returns a copy of the feed state
func (o *Orchestrator) State() domain.FeedState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stateLocked()
}

// Snapshot returns the feed state with the live visual values
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	st := o.stateLocked()
	dx := o.dx
	o.mu.Unlock()

	cur, _ := st.Current()
	return Snapshot{
		State:    st,
		DX:       dx,
		Rotation: dx / o.cfg.ScreenWidth * maxRotation,
		Values:   o.anim.Values(),
		Record:   o.interactions.Record(cur.ID),
	}
}

// OnCurrentItemChanged subscribes fn to current item changes
func (o *Orchestrator) OnCurrentItemChanged(fn func(domain.Item)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.itemListeners = append(o.itemListeners, fn)
}

// OnSpringBack subscribes fn to cancelled swipes. fn gets displacement frames returning the card
// to rest, the last frame is 0.
func (o *Orchestrator) OnSpringBack(fn func(frames []float64)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.backListeners = append(o.backListeners, fn)
}

// OnGestureEvent consumes one pointer sample
func (o *Orchestrator) OnGestureEvent(s domain.GestureSample) {
	o.mu.Lock()
	o.gesture.reset()
	o.tracker.Handle(s)
	ev := *o.gesture
	transitioning := o.transitioning
	if ev.moved && !transitioning {
		o.dx = ev.dx
	}
	o.mu.Unlock()

	if ev.granted {
		o.haptic(Haptics.GestureGrant)
	}
	if !ev.released {
		return
	}

	decision := o.cfg.Policy.Decide(ev.dx, ev.vx, o.cfg.ScreenWidth)
	dir, commit := decision.Direction()
	switch {
	case !commit && transitioning:
		return
	case !commit:
		o.springBack(ev.dx)
	case transitioning:
		lgr.Printf("[DEBUG] %s dropped, transition in flight", decision)
		metrics.DroppedCommits.Inc()
	default:
		o.commit(dir)
	}
}

// OnLikePress toggles like of the current item
func (o *Orchestrator) OnLikePress() domain.InteractionRecord {
	rec := o.interactions.ToggleLike(o.CurrentItem().ID)
	o.haptic(Haptics.LikeToggle)
	return rec
}

// OnBookmarkPress toggles bookmark of the current item
func (o *Orchestrator) OnBookmarkPress() domain.InteractionRecord {
	return o.interactions.ToggleBookmark(o.CurrentItem().ID)
}

// OnRatePress rates the current item. Invalid ratings change nothing and return an error.
func (o *Orchestrator) OnRatePress(rating int) (domain.InteractionRecord, error) {
	id := o.CurrentItem().ID
	rec, err := o.interactions.SubmitRating(id, rating)
	if err != nil {
		return rec, fmt.Errorf("rate %s: %w", id, err)
	}
	o.haptic(Haptics.RatingSubmit)
	return rec, nil
}

// OnCommentPress adds a comment to the current item
func (o *Orchestrator) OnCommentPress(text string) domain.InteractionRecord {
	return o.interactions.AddComment(o.CurrentItem().ID, text)
}

// Replace swaps the item list and resets the index to 0. It is rejected while a transition
// is in flight.
func (o *Orchestrator) Replace(items []domain.Item) error {
	if len(items) == 0 {
		return ErrEmptyFeed
	}
	o.mu.Lock()
	if o.transitioning {
		o.mu.Unlock()
		return ErrTransitionInFlight
	}
	o.items = append([]domain.Item(nil), items...)
	o.indexer.Reset(len(o.items))
	o.dx = 0
	cur := o.items[0]
	listeners := append(([]func(domain.Item))(nil), o.itemListeners...)
	newItems := o.items
	o.mu.Unlock()

	lgr.Printf("[INFO] feed replaced, %d items", len(items))
	o.preload(newItems, 0)
	o.interactions.RecordView(cur.ID)
	for _, fn := range listeners {
		fn(cur)
	}
	return nil
}

// Close abandons the in-flight transition, the settle callback will not fire for it
func (o *Orchestrator) Close() {
	o.anim.Close()
	o.mu.Lock()
	o.transitioning = false
	o.dx = 0
	o.mu.Unlock()
}

func (o *Orchestrator) commit(dir domain.Direction) {
	o.mu.Lock()
	if o.transitioning {
		o.mu.Unlock()
		lgr.Printf("[DEBUG] commit %s dropped, transition in flight", dir)
		metrics.DroppedCommits.Inc()
		return
	}
	o.transitioning = true
	o.dx = 0
	o.mu.Unlock()

	o.haptic(Haptics.SwipeCommit)
	if !o.anim.BeginCommit(dir) {
		o.mu.Lock()
		o.transitioning = false
		o.mu.Unlock()
	}
}

// settled is the animator completion callback, the only place advancing the index
func (o *Orchestrator) settled(dir domain.Direction) {
	o.mu.Lock()
	if !o.transitioning {
		o.mu.Unlock()
		return
	}
	idx := o.indexer.Advance(dir)
	o.transitioning = false
	o.dx = 0
	cur := o.items[idx]
	items := o.items
	listeners := append(([]func(domain.Item))(nil), o.itemListeners...)
	o.mu.Unlock()

	lgr.Printf("[DEBUG] settled %s, current %d %q", dir, idx, cur.ID)
	o.preload(items, idx)
	o.interactions.RecordView(cur.ID)
	for _, fn := range listeners {
		fn(cur)
	}
}

func (o *Orchestrator) springBack(dx float64) {
	o.mu.Lock()
	o.dx = 0
	listeners := append(([]func([]float64))(nil), o.backListeners...)
	o.mu.Unlock()

	metrics.Cancels.Inc()
	if len(listeners) == 0 {
		return
	}
	frames := o.cfg.Spring.SpringBackPath(dx, 0)
	for _, fn := range listeners {
		fn(frames)
	}
}

func (o *Orchestrator) preload(items []domain.Item, from int) {
	if o.preloader == nil {
		return
	}
	o.preloader.SetItems(items)
	o.preloader.Schedule(from, o.cfg.PreloadWindow)
}

// haptic calls the sink ignoring a missing sink and panics inside it
func (o *Orchestrator) haptic(fn func(Haptics)) {
	if o.haptics == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[WARN] haptics failed, %v", r)
		}
	}()
	fn(o.haptics)
}

func (o *Orchestrator) stateLocked() domain.FeedState {
	return domain.FeedState{
		Items:           append([]domain.Item(nil), o.items...),
		CurrentIndex:    o.indexer.Current(),
		IsTransitioning: o.transitioning,
	}
}

// gestureListener collects tracker events of a single sample
type gestureListener struct {
	granted  bool
	moved    bool
	released bool
	dx, vx   float64
}

func (g *gestureListener) reset() { *g = gestureListener{} }

func (g *gestureListener) OnStart() { g.granted = true }

func (g *gestureListener) OnMove(dx, _ float64) {
	g.moved = true
	g.dx = dx
}

func (g *gestureListener) OnRelease(dx, _, vx, _ float64) {
	g.released = true
	g.dx, g.vx = dx, vx
}
