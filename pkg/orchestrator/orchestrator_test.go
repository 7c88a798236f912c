package orchestrator

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/swipefeed/pkg/animator"
	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/interaction"
	"github.com/umputun/swipefeed/pkg/orchestrator/mocks"
)

const screenWidth = 400.0

type instantDriver struct{}

func (instantDriver) FlyOut(_ domain.Direction, update func(animator.Values), done func()) {
	update(animator.Values{TranslateX: -screenWidth, Opacity: 0})
	done()
}

type stallDriver struct{}

func (stallDriver) FlyOut(domain.Direction, func(animator.Values), func()) {}

type manualDriver struct {
	mu   sync.Mutex
	done func()
}

func (d *manualDriver) FlyOut(_ domain.Direction, _ func(animator.Values), done func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.done = done
}

func (d *manualDriver) finish() {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	done()
}

type itemRecorder struct {
	mu  sync.Mutex
	ids []string
}

func (r *itemRecorder) onChange(it domain.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, it.ID)
}

func (r *itemRecorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func testItems(ids ...string) []domain.Item {
	res := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		res = append(res, domain.Item{ID: id, Title: "game " + id, PrimaryImageRef: "http://img/" + id + ".png"})
	}
	return res
}

func newHaptics() *mocks.HapticsMock {
	return &mocks.HapticsMock{
		GestureGrantFunc: func() {},
		SwipeCommitFunc:  func() {},
		LikeToggleFunc:   func() {},
		RatingSubmitFunc: func() {},
	}
}

func newTestOrchestrator(t *testing.T, items []domain.Item, deps Deps) (*Orchestrator, *itemRecorder) {
	t.Helper()
	if deps.Interactions == nil {
		deps.Interactions = interaction.NewStore(nil, interaction.Config{})
	}
	if deps.Driver == nil {
		deps.Driver = instantDriver{}
	}
	o, err := New(items, deps, Config{ScreenWidth: screenWidth})
	require.NoError(t, err)
	t.Cleanup(o.Close)
	rec := &itemRecorder{}
	o.OnCurrentItemChanged(rec.onChange)
	return o, rec
}

// swipeGesture sends a full gesture: start, one move to dx and release with velocity vx
func swipeGesture(o *Orchestrator, dx, vx float64) {
	o.OnGestureEvent(domain.GestureSample{Phase: domain.PhaseStart})
	o.OnGestureEvent(domain.GestureSample{Phase: domain.PhaseMove, DX: dx})
	o.OnGestureEvent(domain.GestureSample{Phase: domain.PhaseEnd, DX: dx, VX: vx})
}

func TestNew(t *testing.T) {
	store := interaction.NewStore(nil, interaction.Config{})

	_, err := New(nil, Deps{Interactions: store}, Config{ScreenWidth: screenWidth})
	require.ErrorIs(t, err, ErrEmptyFeed)

	_, err = New(testItems("a"), Deps{}, Config{ScreenWidth: screenWidth})
	require.Error(t, err)

	_, err = New(testItems("a"), Deps{Interactions: store}, Config{})
	require.Error(t, err)

	o, err := New(testItems("a", "b"), Deps{Interactions: store}, Config{ScreenWidth: screenWidth})
	require.NoError(t, err)
	defer o.Close()
	assert.Equal(t, "a", o.CurrentItem().ID)
	assert.Equal(t, DefaultPreloadWindow, o.cfg.PreloadWindow)
}

func TestOrchestrator_CircularNavigation(t *testing.T) {
	o, rec := newTestOrchestrator(t, testItems("a", "b", "c"), Deps{})

	swipeGesture(o, -200, 0)
	assert.Equal(t, "b", o.CurrentItem().ID)
	swipeGesture(o, -200, 0)
	assert.Equal(t, "c", o.CurrentItem().ID)
	swipeGesture(o, -200, 0)
	assert.Equal(t, "a", o.CurrentItem().ID)
	assert.Equal(t, []string{"b", "c", "a"}, rec.list())

	swipeGesture(o, 200, 0)
	assert.Equal(t, "c", o.CurrentItem().ID, "right swipe from 0 wraps to the last item")

	st := o.State()
	assert.Equal(t, 2, st.CurrentIndex)
	assert.False(t, st.IsTransitioning)
}

func TestOrchestrator_SingleItem(t *testing.T) {
	o, rec := newTestOrchestrator(t, testItems("only"), Deps{})
	for range 3 {
		swipeGesture(o, -300, 0)
	}
	assert.Equal(t, "only", o.CurrentItem().ID)
	assert.Equal(t, []string{"only", "only", "only"}, rec.list())
}

func TestOrchestrator_VelocityCommit(t *testing.T) {
	o, rec := newTestOrchestrator(t, testItems("a", "b", "c"), Deps{})
	swipeGesture(o, -30, -0.8)
	assert.Equal(t, "b", o.CurrentItem().ID)
	assert.Len(t, rec.list(), 1)
}

func TestOrchestrator_Cancel(t *testing.T) {
	haptics := newHaptics()
	o, rec := newTestOrchestrator(t, testItems("a", "b", "c"), Deps{Haptics: haptics})

	var frames [][]float64
	o.OnSpringBack(func(f []float64) { frames = append(frames, f) })

	for range 5 {
		swipeGesture(o, -40, -0.1)
	}
	assert.Equal(t, "a", o.CurrentItem().ID)
	assert.Empty(t, rec.list())
	require.Len(t, frames, 5)
	for _, f := range frames {
		require.NotEmpty(t, f)
		assert.InDelta(t, 0, f[len(f)-1], 1e-9, "spring back ends at rest")
	}
	assert.Len(t, haptics.GestureGrantCalls(), 5)
	assert.Empty(t, haptics.SwipeCommitCalls())
	assert.InDelta(t, 0, o.Snapshot().DX, 1e-9)
}

func TestOrchestrator_VerticalScrollIgnored(t *testing.T) {
	haptics := newHaptics()
	o, rec := newTestOrchestrator(t, testItems("a", "b"), Deps{Haptics: haptics})

	o.OnGestureEvent(domain.GestureSample{Phase: domain.PhaseStart})
	o.OnGestureEvent(domain.GestureSample{Phase: domain.PhaseMove, DX: -10, DY: 150})
	o.OnGestureEvent(domain.GestureSample{Phase: domain.PhaseEnd, DX: -10, DY: 300, VY: 2})

	assert.Equal(t, "a", o.CurrentItem().ID)
	assert.Empty(t, rec.list())
	assert.Empty(t, haptics.GestureGrantCalls())
}

func TestOrchestrator_DropWhileTransitioning(t *testing.T) {
	driver := &manualDriver{}
	haptics := newHaptics()
	o, rec := newTestOrchestrator(t, testItems("a", "b", "c"), Deps{Driver: driver, Haptics: haptics})

	swipeGesture(o, -200, 0)
	assert.True(t, o.State().IsTransitioning)
	assert.Equal(t, "a", o.CurrentItem().ID, "index changes only on settle")

	swipeGesture(o, -200, 0)
	swipeGesture(o, 250, 1)
	assert.Len(t, haptics.SwipeCommitCalls(), 1, "dropped commits have no effect")

	driver.finish()
	driver.finish() // late duplicate completion
	assert.Equal(t, "b", o.CurrentItem().ID)
	assert.Equal(t, []string{"b"}, rec.list())
	assert.False(t, o.State().IsTransitioning)

	swipeGesture(o, -200, 0)
	driver.finish()
	assert.Equal(t, "c", o.CurrentItem().ID)
}

func TestOrchestrator_GuardTimer(t *testing.T) {
	o, err := New(testItems("a", "b"), Deps{
		Interactions: interaction.NewStore(nil, interaction.Config{}),
		Driver:       stallDriver{},
	}, Config{ScreenWidth: screenWidth, Animation: animator.Config{Duration: 10 * time.Millisecond, GuardBuffer: 10 * time.Millisecond}})
	require.NoError(t, err)
	defer o.Close()
	rec := &itemRecorder{}
	o.OnCurrentItemChanged(rec.onChange)

	swipeGesture(o, -200, 0)
	require.Eventually(t, func() bool { return !o.State().IsTransitioning }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "b", o.CurrentItem().ID)
	assert.Equal(t, []string{"b"}, rec.list())
}

func TestOrchestrator_ListenerReentry(t *testing.T) {
	o, _ := newTestOrchestrator(t, testItems("a", "b", "c"), Deps{})
	var seen []string
	o.OnCurrentItemChanged(func(it domain.Item) {
		seen = append(seen, it.ID)
		_ = o.State()
		if len(seen) == 1 {
			swipeGesture(o, -200, 0) // commit from inside settle is dropped, the animator is still settling
		}
	})

	swipeGesture(o, -200, 0)
	assert.Equal(t, []string{"b"}, seen)
	assert.Equal(t, "b", o.CurrentItem().ID)
	assert.False(t, o.State().IsTransitioning)
}

func TestOrchestrator_Interactions(t *testing.T) {
	haptics := newHaptics()
	o, _ := newTestOrchestrator(t, testItems("a", "b"), Deps{Haptics: haptics})

	rec := o.OnLikePress()
	assert.True(t, rec.Liked)
	assert.Equal(t, 1, rec.LikeCount)
	assert.Len(t, haptics.LikeToggleCalls(), 1)

	rec = o.OnBookmarkPress()
	assert.True(t, rec.Bookmarked)

	_, err := o.OnRatePress(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interaction.ErrInvalidRating))
	assert.Empty(t, haptics.RatingSubmitCalls())

	rec, err = o.OnRatePress(4)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.RatingCount)
	assert.InDelta(t, 4.0, rec.AverageRating(), 1e-9)
	assert.Len(t, haptics.RatingSubmitCalls(), 1)

	rec = o.OnCommentPress("nice")
	assert.Equal(t, 1, rec.CommentCount)

	swipeGesture(o, -200, 0)
	assert.Equal(t, domain.InteractionRecord{}, o.Snapshot().Record, "new current item starts clean")
	rec = o.OnLikePress()
	assert.Equal(t, 1, rec.LikeCount)
}

func TestOrchestrator_PanickingHaptics(t *testing.T) {
	haptics := &mocks.HapticsMock{
		GestureGrantFunc: func() { panic("no vibrator") },
		SwipeCommitFunc:  func() { panic("no vibrator") },
		LikeToggleFunc:   func() { panic("no vibrator") },
		RatingSubmitFunc: func() { panic("no vibrator") },
	}
	o, rec := newTestOrchestrator(t, testItems("a", "b"), Deps{Haptics: haptics})

	swipeGesture(o, -200, 0)
	assert.Equal(t, []string{"b"}, rec.list())
	assert.Equal(t, 1, o.OnLikePress().LikeCount)
	_, err := o.OnRatePress(5)
	require.NoError(t, err)
}

func TestOrchestrator_Preload(t *testing.T) {
	var mu sync.Mutex
	var schedules [][2]int
	preloader := &mocks.PreloaderMock{
		SetItemsFunc: func([]domain.Item) {},
		ScheduleFunc: func(fromIndex, count int) {
			mu.Lock()
			defer mu.Unlock()
			schedules = append(schedules, [2]int{fromIndex, count})
		},
	}
	o, _ := newTestOrchestrator(t, testItems("a", "b", "c"), Deps{Preloader: preloader})

	swipeGesture(o, -200, 0)
	swipeGesture(o, 200, 0)
	swipeGesture(o, 200, 0)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, [][2]int{{0, 2}, {1, 2}, {0, 2}, {2, 2}}, schedules)
	require.NotEmpty(t, preloader.SetItemsCalls())
	assert.Len(t, preloader.SetItemsCalls()[0].Items, 3)
}

func TestOrchestrator_Replace(t *testing.T) {
	driver := &manualDriver{}
	o, rec := newTestOrchestrator(t, testItems("a", "b", "c"), Deps{Driver: driver})

	require.ErrorIs(t, o.Replace(nil), ErrEmptyFeed)

	swipeGesture(o, -200, 0)
	require.ErrorIs(t, o.Replace(testItems("x")), ErrTransitionInFlight)
	driver.finish()
	swipeGesture(o, -200, 0)
	driver.finish()
	assert.Equal(t, "c", o.CurrentItem().ID)

	require.NoError(t, o.Replace(testItems("x", "y")))
	st := o.State()
	assert.Equal(t, 0, st.CurrentIndex)
	assert.Len(t, st.Items, 2)
	assert.Equal(t, []string{"b", "c", "x"}, rec.list())

	swipeGesture(o, 200, 0)
	driver.finish()
	assert.Equal(t, "y", o.CurrentItem().ID)
}

func TestOrchestrator_Snapshot(t *testing.T) {
	driver := &manualDriver{}
	o, _ := newTestOrchestrator(t, testItems("a", "b"), Deps{Driver: driver})

	o.OnGestureEvent(domain.GestureSample{Phase: domain.PhaseStart})
	o.OnGestureEvent(domain.GestureSample{Phase: domain.PhaseMove, DX: -100, DY: 3})
	snap := o.Snapshot()
	assert.InDelta(t, -100, snap.DX, 1e-9)
	assert.InDelta(t, -3.75, snap.Rotation, 1e-9)
	assert.Equal(t, animator.Neutral, snap.Values)
	assert.Equal(t, 0, snap.State.CurrentIndex)

	o.OnGestureEvent(domain.GestureSample{Phase: domain.PhaseEnd, DX: -150})
	snap = o.Snapshot()
	assert.True(t, snap.State.IsTransitioning)
	assert.InDelta(t, 0, snap.DX, 1e-9, "displacement handed over to the animator")

	driver.finish()
	snap = o.Snapshot()
	assert.Equal(t, 1, snap.State.CurrentIndex)
	assert.Equal(t, animator.Neutral, snap.Values)
}

func TestOrchestrator_CloseAbandonsTransition(t *testing.T) {
	driver := &manualDriver{}
	o, rec := newTestOrchestrator(t, testItems("a", "b"), Deps{Driver: driver})

	swipeGesture(o, -200, 0)
	o.Close()
	driver.finish()
	assert.Equal(t, "a", o.CurrentItem().ID)
	assert.Empty(t, rec.list())
	assert.False(t, o.State().IsTransitioning)
}
