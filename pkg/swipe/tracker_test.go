package swipe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/swipefeed/pkg/domain"
)

type recorder struct {
	events []string
}

func (r *recorder) OnStart()              { r.events = append(r.events, "start") }
func (r *recorder) OnMove(dx, dy float64) { r.events = append(r.events, fmt.Sprintf("move %.0f,%.0f", dx, dy)) }
func (r *recorder) OnRelease(dx, dy, vx, vy float64) {
	r.events = append(r.events, fmt.Sprintf("release %.0f,%.0f %.1f", dx, dy, vx))
}

func sample(phase domain.Phase, dx, dy, vx float64) domain.GestureSample {
	return domain.GestureSample{Phase: phase, DX: dx, DY: dy, VX: vx}
}

func TestTracker_HorizontalSwipe(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(0, rec)

	tr.Handle(sample(domain.PhaseStart, 0, 0, 0))
	tr.Handle(sample(domain.PhaseMove, 3, 1, 0)) // below 5px, not yet a swipe
	assert.False(t, tr.Active())
	tr.Handle(sample(domain.PhaseMove, 20, 4, 0))
	assert.True(t, tr.Active())
	tr.Handle(sample(domain.PhaseMove, 60, 30, 0)) // once granted, stays a swipe
	tr.Handle(sample(domain.PhaseEnd, 120, 10, 0.7))

	assert.Equal(t, []string{"start", "move 20,4", "move 60,30", "release 120,10 0.7"}, rec.events)
	assert.False(t, tr.Active())
}

func TestTracker_VerticalScrollIgnored(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(5, rec)

	tr.Handle(sample(domain.PhaseStart, 0, 0, 0))
	tr.Handle(sample(domain.PhaseMove, 4, 30, 0))
	tr.Handle(sample(domain.PhaseMove, 10, 80, 0))
	tr.Handle(sample(domain.PhaseEnd, 12, 120, 0.1))

	assert.Empty(t, rec.events)
}

func TestTracker_TapIgnored(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(5, rec)

	tr.Handle(sample(domain.PhaseStart, 0, 0, 0))
	tr.Handle(sample(domain.PhaseEnd, 1, 0, 0))
	assert.Empty(t, rec.events)
}

func TestTracker_FlickWithoutMove(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(5, rec)

	tr.Handle(sample(domain.PhaseStart, 0, 0, 0))
	tr.Handle(sample(domain.PhaseEnd, -40, 2, -1.5))
	assert.Equal(t, []string{"start", "release -40,2 -1.5"}, rec.events)
}

func TestTracker_EndWithoutStart(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(5, rec)

	tr.Handle(sample(domain.PhaseEnd, -40, 2, -1.5))
	assert.Empty(t, rec.events)
}

func TestTracker_GestureLifecyclesIndependent(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(5, rec)

	tr.Handle(sample(domain.PhaseStart, 0, 0, 0))
	tr.Handle(sample(domain.PhaseMove, 30, 0, 0))
	tr.Handle(sample(domain.PhaseEnd, 30, 0, 0.1))

	tr.Handle(sample(domain.PhaseStart, 0, 0, 0))
	tr.Handle(sample(domain.PhaseMove, 1, 20, 0))
	tr.Handle(sample(domain.PhaseEnd, 1, 40, 0))

	assert.Equal(t, []string{"start", "move 30,0", "release 30,0 0.1"}, rec.events)
}

func TestIsSwipeCandidate(t *testing.T) {
	assert.True(t, IsSwipeCandidate(6, 0, 5))
	assert.True(t, IsSwipeCandidate(-6, 5, 5))
	assert.False(t, IsSwipeCandidate(5, 0, 5))
	assert.False(t, IsSwipeCandidate(10, 10, 5))
	assert.False(t, IsSwipeCandidate(10, -11, 5))
}
