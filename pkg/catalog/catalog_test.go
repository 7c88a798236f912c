package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/swipefeed/pkg/domain"
)

type listerFunc func(ctx context.Context) ([]domain.Item, error)

func (f listerFunc) ListGames(ctx context.Context) ([]domain.Item, error) { return f(ctx) }

func TestNormalize(t *testing.T) {
	items := []domain.Item{
		{ID: "g1", Title: "first"},
		{ID: "", Title: "no id"},
		{ID: " g2 ", Title: "second"},
		{ID: "g1", Title: "dup"},
		{ID: "   ", Title: "blank"},
		{ID: "g3", Title: "third"},
	}
	res := Normalize(items)
	require.Len(t, res, 3)
	assert.Equal(t, "first", res[0].Title)
	assert.Equal(t, "g2", res[1].ID)
	assert.Equal(t, "g3", res[2].ID)

	assert.Empty(t, Normalize(nil))
}

func TestStoreProvider(t *testing.T) {
	t.Run("normalized", func(t *testing.T) {
		p := StoreProvider{Store: listerFunc(func(context.Context) ([]domain.Item, error) {
			return []domain.Item{{ID: "a"}, {ID: "a"}, {ID: "b"}}, nil
		})}
		res, err := p.Games(context.Background())
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("error", func(t *testing.T) {
		p := StoreProvider{Store: listerFunc(func(context.Context) ([]domain.Item, error) {
			return nil, errors.New("db is gone")
		})}
		_, err := p.Games(context.Background())
		require.EqualError(t, err, "list games: db is gone")
	})
}
