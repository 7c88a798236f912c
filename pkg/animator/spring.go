package animator

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/umputun/swipefeed/pkg/domain"
)

// SpringConfig defines spring physics for card motion
type SpringConfig struct {
	FPS       int
	Frequency float64 // angular frequency, higher is faster
	Damping   float64 // damping ratio, 1 is critically damped
}

// defaults for SpringConfig
const (
	DefaultFPS       = 60
	DefaultFrequency = 12.0
	DefaultDamping   = 0.9
)

// flyOutFactor is how far past the screen edge, in screen widths, the card flies
const flyOutFactor = 1.5

func (c SpringConfig) withDefaults() SpringConfig {
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Frequency <= 0 {
		c.Frequency = DefaultFrequency
	}
	if c.Damping <= 0 {
		c.Damping = DefaultDamping
	}
	return c
}

// FlyOutPath returns frames of a card flying off screen in dir, translating past the edge and
// fading out. The path is deterministic for given inputs.
func (c SpringConfig) FlyOutPath(dir domain.Direction, width float64, frames int) []Values {
	c = c.withDefaults()
	if frames < 1 {
		frames = 1
	}
	target := width * flyOutFactor
	if dir == domain.DirectionLeft {
		target = -target
	}

	spring := harmonica.NewSpring(harmonica.FPS(c.FPS), c.Frequency, c.Damping)
	var x, vx, vo float64
	opacity := 1.0
	res := make([]Values, 0, frames)
	for i := 0; i < frames; i++ {
		x, vx = spring.Update(x, vx, target)
		opacity, vo = spring.Update(opacity, vo, 0)
		res = append(res, Values{TranslateX: x, Opacity: clamp(opacity, 0, 1)})
	}
	return res
}

// SpringBackPath returns displacement frames returning a released card from dx to rest.
// The last frame is always exactly 0.
func (c SpringConfig) SpringBackPath(dx float64, maxFrames int) []float64 {
	c = c.withDefaults()
	if maxFrames < 1 {
		maxFrames = c.FPS
	}
	spring := harmonica.NewSpring(harmonica.FPS(c.FPS), c.Frequency, c.Damping)
	var v float64
	res := make([]float64, 0, maxFrames)
	for i := 0; i < maxFrames-1; i++ {
		if math.Abs(dx) < 0.5 && math.Abs(v) < 0.5 {
			break
		}
		dx, v = spring.Update(dx, v, 0)
		res = append(res, dx)
	}
	return append(res, 0)
}

// SpringDriver plays fly-out paths in real time on its own goroutine
type SpringDriver struct {
	spring   SpringConfig
	width    float64
	duration time.Duration
}

// NewSpringDriver makes a driver for a screen of the given width
func NewSpringDriver(width float64, duration time.Duration, spring SpringConfig) *SpringDriver {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &SpringDriver{spring: spring.withDefaults(), width: width, duration: duration}
}

// FlyOut implements Driver
func (d *SpringDriver) FlyOut(dir domain.Direction, update func(Values), done func()) {
	frames := int(d.duration.Seconds() * float64(d.spring.FPS))
	path := d.spring.FlyOutPath(dir, d.width, frames)
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(d.spring.FPS))
		defer ticker.Stop()
		for _, v := range path {
			<-ticker.C
			update(v)
		}
		done()
	}()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
