// Package animator owns the single in-flight swipe transition. A commit drives the fly-out
// animation through a Driver, a guard timer forces completion if the driver never reports back,
// and completion is delivered exactly once per accepted commit.
package animator

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/metrics"
)

// State of the animator
type State int

// animator states, idle -> committing -> settling -> idle
const (
	StateIdle State = iota
	StateCommitting
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCommitting:
		return "committing"
	case StateSettling:
		return "settling"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Values are the transient animated values of the card in flight
type Values struct {
	TranslateX float64
	Opacity    float64
}

// Neutral is the resting value set
var Neutral = Values{TranslateX: 0, Opacity: 1}

// Driver plays the fly-out animation. FlyOut must not block; it reports intermediate values
// through update and calls done once the animation finished. Drivers may call done late,
// twice or never, the animator tolerates all of it.
type Driver interface {
	FlyOut(dir domain.Direction, update func(Values), done func())
}

// defaults for Config
const (
	DefaultDuration    = 250 * time.Millisecond
	DefaultGuardBuffer = 100 * time.Millisecond
)

// Config defines transition timing
type Config struct {
	Duration    time.Duration // nominal fly-out duration
	GuardBuffer time.Duration // extra wait before the guard timer forces completion
}

// Animator runs at most one transition at a time
type Animator struct {
	driver    Driver
	cfg       Config
	onSettled func(domain.Direction)

	mu     sync.Mutex
	state  State
	values Values
	gen    uint64 // identifies the current transition, stale completions are ignored
	guard  *time.Timer
}

// New makes an animator. onSettled is called once per accepted commit, after the transient
// values were reset, while the animator is still in settling state.
func New(driver Driver, cfg Config, onSettled func(domain.Direction)) *Animator {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.GuardBuffer <= 0 {
		cfg.GuardBuffer = DefaultGuardBuffer
	}
	return &Animator{driver: driver, cfg: cfg, onSettled: onSettled, values: Neutral}
}

// BeginCommit starts the fly-out in the given direction. It returns false and does nothing
// if another transition is in flight.
func (a *Animator) BeginCommit(dir domain.Direction) bool {
	a.mu.Lock()
	if a.state != StateIdle {
		st := a.state
		a.mu.Unlock()
		lgr.Printf("[DEBUG] commit %s ignored, animator is %s", dir, st)
		metrics.DroppedCommits.Inc()
		return false
	}
	a.state = StateCommitting
	a.gen++
	gen := a.gen
	a.guard = time.AfterFunc(a.cfg.Duration+a.cfg.GuardBuffer, func() { a.complete(gen, dir, true) })
	a.mu.Unlock()

	metrics.Commits.WithLabelValues(dir.String()).Inc()
	lgr.Printf("[DEBUG] transition %d started, direction %s", gen, dir)
	a.driver.FlyOut(dir, func(v Values) { a.update(gen, v) }, func() { a.complete(gen, dir, false) })
	return true
}

// State returns the current state
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Values returns the current transient values
func (a *Animator) Values() Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.values
}

// Close abandons the in-flight transition, if any. Completions arriving later are ignored.
func (a *Animator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.guard != nil {
		a.guard.Stop()
		a.guard = nil
	}
	a.gen++
	a.state = StateIdle
	a.values = Neutral
}

func (a *Animator) update(gen uint64, v Values) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen || a.state != StateCommitting {
		return
	}
	a.values = v
}

// complete moves committing -> settling -> idle. Only the first call for a transition does
// anything, whether it came from the driver or the guard timer.
func (a *Animator) complete(gen uint64, dir domain.Direction, byGuard bool) {
	a.mu.Lock()
	if gen != a.gen || a.state != StateCommitting {
		a.mu.Unlock()
		return
	}
	a.state = StateSettling
	if a.guard != nil {
		a.guard.Stop()
		a.guard = nil
	}
	a.values = Neutral
	a.mu.Unlock()

	if byGuard {
		lgr.Printf("[WARN] transition %d (%s) not reported by driver, completed by guard timer", gen, dir)
		metrics.GuardCompletions.Inc()
	}

	defer func() {
		a.mu.Lock()
		if gen == a.gen {
			a.state = StateIdle
		}
		a.mu.Unlock()
	}()

	if a.onSettled != nil {
		a.onSettled(dir)
	}
}
