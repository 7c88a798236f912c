package animator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/swipefeed/pkg/domain"
)

func TestSpringConfig_FlyOutPath(t *testing.T) {
	cfg := SpringConfig{}
	left := cfg.FlyOutPath(domain.DirectionLeft, 400, 15)
	require.Len(t, left, 15)

	for i := 1; i < len(left); i++ {
		assert.LessOrEqual(t, left[i].TranslateX, left[i-1].TranslateX+0.001, "left path moves left, frame %d", i)
		assert.GreaterOrEqual(t, left[i].Opacity, 0.0)
		assert.LessOrEqual(t, left[i].Opacity, 1.0)
	}
	assert.Less(t, left[len(left)-1].TranslateX, -200.0, "travels well towards the left edge")
	assert.Less(t, left[len(left)-1].Opacity, left[0].Opacity)

	right := cfg.FlyOutPath(domain.DirectionRight, 400, 15)
	for i := range right {
		assert.InDelta(t, -left[i].TranslateX, right[i].TranslateX, 0.0001, "paths mirror each other")
	}

	assert.Len(t, cfg.FlyOutPath(domain.DirectionLeft, 400, 0), 1)
}

func TestSpringConfig_SpringBackPath(t *testing.T) {
	cfg := SpringConfig{}
	path := cfg.SpringBackPath(80, 120)
	require.NotEmpty(t, path)
	assert.LessOrEqual(t, len(path), 120)
	assert.InDelta(t, 0.0, path[len(path)-1], 0.0001)
	assert.Less(t, path[0], 80.0)

	atRest := cfg.SpringBackPath(0, 120)
	assert.Equal(t, []float64{0}, atRest)

	short := cfg.SpringBackPath(300, 3)
	assert.Len(t, short, 3)
	assert.InDelta(t, 0.0, short[2], 0.0001)
}
