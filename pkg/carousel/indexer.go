// Package carousel implements circular navigation over a fixed-size item list
package carousel

import "github.com/umputun/swipefeed/pkg/domain"

// Indexer tracks the current position in a circular list of size items.
// It is owned by a single caller and is not safe for concurrent use.
type Indexer struct {
	current int
	size    int
}

// NewIndexer makes an indexer positioned at 0
func NewIndexer(size int) *Indexer {
	return &Indexer{size: size}
}

// Advance moves one step and returns the new index. Left moves forward, right moves back,
// both wrap around. Callers must not advance an empty list; doing so leaves the index at 0.
func (x *Indexer) Advance(dir domain.Direction) int {
	if x.size <= 0 {
		return 0
	}
	switch dir {
	case domain.DirectionLeft:
		x.current = (x.current + 1) % x.size
	case domain.DirectionRight:
		x.current = (x.current - 1 + x.size) % x.size
	}
	return x.current
}

// Current returns the current index
func (x *Indexer) Current() int {
	return x.current
}

// Size returns the list size
func (x *Indexer) Size() int {
	return x.size
}

// Peek returns the index offset steps away from the current one, wrapped into [0, size)
func (x *Indexer) Peek(offset int) int {
	return Wrap(x.current+offset, x.size)
}

// Reset sets a new size and moves back to index 0
func (x *Indexer) Reset(size int) {
	x.size, x.current = size, 0
}

// Wrap maps any index into [0, size), 0 for an empty list
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	return ((index % size) + size) % size
}
