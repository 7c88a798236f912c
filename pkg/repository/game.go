package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/swipefeed/pkg/domain"
)

// GameRepository handles the games catalog
type GameRepository struct {
	db *sqlx.DB
}

// gameSQL represents a game row
type gameSQL struct {
	ID             string `db:"id"`
	Title          string `db:"title"`
	PrimaryImage   string `db:"primary_image"`
	SecondaryImage string `db:"secondary_image"`
	Genre          string `db:"genre"`
	Position       int    `db:"position"`
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

// UpsertGames inserts or updates games, their order in the slice becomes the feed order.
// Games missing from the slice are kept, with their previous position.
func (r *GameRepository) UpsertGames(ctx context.Context, games []domain.Item) error {
	if len(games) == 0 {
		return nil
	}
	return withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		query := `
			INSERT INTO games (id, title, primary_image, secondary_image, genre, position)
			VALUES (:id, :title, :primary_image, :secondary_image, :genre, :position)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				primary_image = excluded.primary_image,
				secondary_image = excluded.secondary_image,
				genre = excluded.genre,
				position = excluded.position,
				updated_at = CURRENT_TIMESTAMP
		`
		for i, g := range games {
			row := gameSQL{ID: g.ID, Title: g.Title, PrimaryImage: g.PrimaryImageRef,
				SecondaryImage: g.SecondaryImageRef, Genre: g.Genre, Position: i}
			if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
				return fmt.Errorf("upsert game %s: %w", g.ID, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

// ListGames returns all games in feed order
func (r *GameRepository) ListGames(ctx context.Context) ([]domain.Item, error) {
	var rows []gameSQL
	query := `SELECT id, title, primary_image, secondary_image, genre, position FROM games ORDER BY position, id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	res := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// GetGame returns a game by id
func (r *GameRepository) GetGame(ctx context.Context, id string) (domain.Item, error) {
	var row gameSQL
	query := `SELECT id, title, primary_image, secondary_image, genre, position FROM games WHERE id = ?`
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, fmt.Errorf("get game %s: %w", id, ErrGameNotFound)
	}
	if err != nil {
		return domain.Item{}, fmt.Errorf("get game %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// DeleteGame removes a game with all its interactions
func (r *GameRepository) DeleteGame(ctx context.Context, id string) error {
	return withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		for _, table := range []string{"likes", "bookmarks", "ratings", "comments", "plays"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE game_id = ?", id); err != nil { //nolint:gosec // fixed table names
				return fmt.Errorf("delete %s of %s: %w", table, id, err)
			}
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM games WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("delete game %s: %w", id, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("delete game %s: %w", id, ErrGameNotFound)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

func (g gameSQL) toDomain() domain.Item {
	return domain.Item{
		ID:                g.ID,
		Title:             g.Title,
		PrimaryImageRef:   g.PrimaryImage,
		SecondaryImageRef: g.SecondaryImage,
		Genre:             g.Genre,
	}
}
