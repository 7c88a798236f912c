// Package catalog loads the item list shown by the feed. Providers return items in display order,
// Normalize drops items without id and keeps the first item of every duplicate id.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/swipefeed/pkg/domain"
)

// Provider returns the catalog of games
type Provider interface {
	Games(ctx context.Context) ([]domain.Item, error)
}

// GameLister is a storage listing games
type GameLister interface {
	ListGames(ctx context.Context) ([]domain.Item, error)
}

// StoreProvider serves the catalog from local storage
type StoreProvider struct {
	Store GameLister
}

// Games returns normalized games from the store
func (p StoreProvider) Games(ctx context.Context) ([]domain.Item, error) {
	items, err := p.Store.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return Normalize(items), nil
}

// Normalize trims ids, skips items with empty id and drops duplicates keeping the first one
func Normalize(items []domain.Item) []domain.Item {
	seen := make(map[string]bool, len(items))
	res := make([]domain.Item, 0, len(items))
	for _, it := range items {
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			lgr.Printf("[DEBUG] catalog item %q without id skipped", it.Title)
			continue
		}
		if seen[it.ID] {
			lgr.Printf("[DEBUG] duplicate catalog item %s skipped", it.ID)
			continue
		}
		seen[it.ID] = true
		res = append(res, it)
	}
	return res
}
