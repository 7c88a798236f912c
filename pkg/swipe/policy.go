// Package swipe turns raw pointer samples into swipe gestures and decides whether a
// released swipe commits a navigation step.
package swipe

import (
	"math"

	"github.com/umputun/swipefeed/pkg/domain"
)

// defaults for the decision policy
const (
	DefaultThresholdRatio    = 0.25 // share of screen width a drag must cross
	DefaultVelocityThreshold = 0.5  // px/ms
)

// Policy decides the outcome of a released swipe. It holds no state and is safe to copy.
type Policy struct {
	ThresholdRatio    float64
	VelocityThreshold float64
}

// NewPolicy makes a policy, zero values replaced by defaults
func NewPolicy(thresholdRatio, velocityThreshold float64) Policy {
	if thresholdRatio <= 0 {
		thresholdRatio = DefaultThresholdRatio
	}
	if velocityThreshold <= 0 {
		velocityThreshold = DefaultVelocityThreshold
	}
	return Policy{ThresholdRatio: thresholdRatio, VelocityThreshold: velocityThreshold}
}

// Decide returns commit-left, commit-right or cancel for a release at dx with horizontal
// velocity vx. A swipe commits if it travelled past ThresholdRatio of the screen width or was
// flung faster than VelocityThreshold. Zero displacement always cancels.
func (p Policy) Decide(dx, vx, screenWidth float64) domain.Decision {
	if dx == 0 || math.IsNaN(dx) || math.IsNaN(vx) {
		return domain.DecisionCancel
	}

	threshold := screenWidth * p.ThresholdRatio
	if math.Abs(dx) <= threshold && math.Abs(vx) <= p.VelocityThreshold {
		return domain.DecisionCancel
	}

	if dx < 0 {
		return domain.DecisionCommitLeft
	}
	return domain.DecisionCommitRight
}
