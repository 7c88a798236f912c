package swipe

import (
	"math"

	"github.com/umputun/swipefeed/pkg/domain"
)

// DefaultCandidateMinDX is the horizontal travel required before a drag is treated as a swipe
const DefaultCandidateMinDX = 5.0

// Listener receives gesture events from Tracker
type Listener interface {
	OnStart()
	OnMove(dx, dy float64)
	OnRelease(dx, dy, vx, vy float64)
}

// Tracker classifies a stream of pointer samples. A drag becomes a swipe candidate once it moves
// mostly horizontally and further than minDX, everything else (taps, vertical scroll) is ignored.
// Tracker has no timers and is not safe for concurrent use.
type Tracker struct {
	minDX     float64
	listener  Listener
	active    bool
	candidate bool
}

// NewTracker makes a tracker reporting to the listener
func NewTracker(minDX float64, listener Listener) *Tracker {
	if minDX <= 0 {
		minDX = DefaultCandidateMinDX
	}
	return &Tracker{minDX: minDX, listener: listener}
}

// Handle consumes one sample
func (t *Tracker) Handle(s domain.GestureSample) {
	switch s.Phase {
	case domain.PhaseStart:
		t.active, t.candidate = true, false
	case domain.PhaseMove:
		if !t.active {
			// move without start, the runtime lost the start event
			t.active = true
		}
		if !t.grant(s) {
			return
		}
		t.listener.OnMove(s.DX, s.DY)
	case domain.PhaseEnd:
		if !t.active {
			return
		}
		if t.grant(s) {
			t.listener.OnRelease(s.DX, s.DY, s.VX, s.VY)
		}
		t.active, t.candidate = false, false
	}
}

// Active reports whether a swipe candidate is in progress
func (t *Tracker) Active() bool {
	return t.active && t.candidate
}

// grant promotes the gesture to a swipe candidate when the sample qualifies,
// emitting OnStart exactly once per gesture
func (t *Tracker) grant(s domain.GestureSample) bool {
	if t.candidate {
		return true
	}
	if !IsSwipeCandidate(s.DX, s.DY, t.minDX) {
		return false
	}
	t.candidate = true
	t.listener.OnStart()
	return true
}

// IsSwipeCandidate reports whether displacement is horizontal enough to be a swipe
func IsSwipeCandidate(dx, dy, minDX float64) bool {
	return math.Abs(dx) > math.Abs(dy) && math.Abs(dx) > minDX
}
