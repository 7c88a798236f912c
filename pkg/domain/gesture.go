package domain

import "fmt"

// Phase of a gesture sample
type Phase int

// gesture phases
const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// GestureSample is one pointer sample. Displacement is in pixels relative to the
// gesture origin, velocity in pixels per millisecond.
type GestureSample struct {
	DX, DY float64
	VX, VY float64
	Phase  Phase
}

// Direction of a committed swipe. Left moves to the next item, right to the previous one.
type Direction int

// swipe directions
const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Decision is the outcome of a released swipe
type Decision int

// swipe decisions
const (
	DecisionCancel Decision = iota
	DecisionCommitLeft
	DecisionCommitRight
)

// Direction returns commit direction, false for cancel
func (d Decision) Direction() (Direction, bool) {
	switch d {
	case DecisionCommitLeft:
		return DirectionLeft, true
	case DecisionCommitRight:
		return DirectionRight, true
	default:
		return DirectionLeft, false
	}
}

func (d Decision) String() string {
	switch d {
	case DecisionCommitLeft:
		return "commit-left"
	case DecisionCommitRight:
		return "commit-right"
	default:
		return "cancel"
	}
}
