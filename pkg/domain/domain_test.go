package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_ImageRefs(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want []string
	}{
		{name: "both", item: Item{PrimaryImageRef: "a.png", SecondaryImageRef: "b.png"}, want: []string{"a.png", "b.png"}},
		{name: "primary only", item: Item{PrimaryImageRef: "a.png"}, want: []string{"a.png"}},
		{name: "secondary only", item: Item{SecondaryImageRef: "b.png"}, want: []string{"b.png"}},
		{name: "same ref twice", item: Item{PrimaryImageRef: "a.png", SecondaryImageRef: "a.png"}, want: []string{"a.png"}},
		{name: "none", item: Item{}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.ImageRefs())
		})
	}
}

func TestFeedState_Current(t *testing.T) {
	st := FeedState{Items: []Item{{ID: "g1"}, {ID: "g2"}}, CurrentIndex: 1}
	it, ok := st.Current()
	assert.True(t, ok)
	assert.Equal(t, "g2", it.ID)

	_, ok = FeedState{}.Current()
	assert.False(t, ok)

	_, ok = FeedState{Items: []Item{{ID: "g1"}}, CurrentIndex: 3}.Current()
	assert.False(t, ok)
}

func TestInteractionRecord_AverageRating(t *testing.T) {
	assert.InDelta(t, 0.0, InteractionRecord{}.AverageRating(), 0.0001)
	assert.InDelta(t, 3.5, InteractionRecord{RatingSum: 7, RatingCount: 2}.AverageRating(), 0.0001)
}

func TestDecision_Direction(t *testing.T) {
	dir, ok := DecisionCommitLeft.Direction()
	assert.True(t, ok)
	assert.Equal(t, DirectionLeft, dir)

	dir, ok = DecisionCommitRight.Direction()
	assert.True(t, ok)
	assert.Equal(t, DirectionRight, dir)

	_, ok = DecisionCancel.Direction()
	assert.False(t, ok)

	assert.Equal(t, "commit-left", DecisionCommitLeft.String())
	assert.Equal(t, "cancel", DecisionCancel.String())
	assert.Equal(t, "move", PhaseMove.String())
}

func TestGameStats_Record(t *testing.T) {
	st := GameStats{GameID: "g1", LikeCount: 3, RatingAverage: 4.5, RatingCount: 2, CommentCount: 7, Liked: true}
	rec := st.Record()
	assert.Equal(t, InteractionRecord{Liked: true, LikeCount: 3, RatingSum: 9, RatingCount: 2, CommentCount: 7}, rec)
	assert.InDelta(t, 4.5, rec.AverageRating(), 1e-9)
}
