package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/swipefeed/pkg/domain"
)

// InteractionRepository stores likes, bookmarks, ratings, comments and plays per user
type InteractionRepository struct {
	db *sqlx.DB
}

// commentSQL represents a comment row
type commentSQL struct {
	ID        int64     `db:"id"`
	GameID    string    `db:"game_id"`
	UserID    string    `db:"user_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

// statsSQL is the aggregated stats row
type statsSQL struct {
	LikeCount     int     `db:"like_count"`
	RatingAverage float64 `db:"rating_average"`
	RatingCount   int     `db:"rating_count"`
	CommentCount  int     `db:"comment_count"`
	PlayCount     int     `db:"play_count"`
	Liked         bool    `db:"liked"`
	Bookmarked    bool    `db:"bookmarked"`
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *sqlx.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// SetLike adds or removes the user's like, repeated calls are no-ops
func (r *InteractionRepository) SetLike(ctx context.Context, gameID, userID string, liked bool) error {
	return r.setMembership(ctx, "likes", gameID, userID, liked)
}

// SetBookmark adds or removes the user's bookmark, repeated calls are no-ops
func (r *InteractionRepository) SetBookmark(ctx context.Context, gameID, userID string, bookmarked bool) error {
	return r.setMembership(ctx, "bookmarks", gameID, userID, bookmarked)
}

// Rate sets the user's rating of the game, replacing the previous one
func (r *InteractionRepository) Rate(ctx context.Context, gameID, userID string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rate %s: rating %d out of range", gameID, rating)
	}
	if err := r.ensureGame(ctx, gameID); err != nil {
		return err
	}
	return withRetry(ctx, func() error {
		query := `
			INSERT INTO ratings (game_id, user_id, rating) VALUES (?, ?, ?)
			ON CONFLICT(game_id, user_id) DO UPDATE SET rating = excluded.rating, updated_at = CURRENT_TIMESTAMP
		`
		if _, err := r.db.ExecContext(ctx, query, gameID, userID, rating); err != nil {
			return fmt.Errorf("rate %s: %w", gameID, err)
		}
		return nil
	})
}

// AddComment stores a comment and returns it with id and creation time
func (r *InteractionRepository) AddComment(ctx context.Context, gameID, userID, text string) (domain.Comment, error) {
	if err := r.ensureGame(ctx, gameID); err != nil {
		return domain.Comment{}, err
	}
	res := domain.Comment{GameID: gameID, UserID: userID, Text: text, CreatedAt: time.Now().UTC()}
	err := withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "INSERT INTO comments (game_id, user_id, text, created_at) VALUES (?, ?, ?, ?)",
			gameID, userID, text, res.CreatedAt)
		if err != nil {
			return fmt.Errorf("add comment to %s: %w", gameID, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}
		res.ID = id
		return nil
	})
	if err != nil {
		return domain.Comment{}, err
	}
	return res, nil
}

// ListComments returns the latest comments of the game, newest first
func (r *InteractionRepository) ListComments(ctx context.Context, gameID string, limit int) ([]domain.Comment, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []commentSQL
	query := `SELECT id, game_id, user_id, text, created_at FROM comments WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &rows, query, gameID, limit); err != nil {
		return nil, fmt.Errorf("list comments of %s: %w", gameID, err)
	}
	res := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Comment(row))
	}
	return res, nil
}

// AddPlay records that the user opened the game
func (r *InteractionRepository) AddPlay(ctx context.Context, gameID, userID string) error {
	if err := r.ensureGame(ctx, gameID); err != nil {
		return err
	}
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "INSERT INTO plays (game_id, user_id) VALUES (?, ?)", gameID, userID); err != nil {
			return fmt.Errorf("add play to %s: %w", gameID, err)
		}
		return nil
	})
}

// Stats returns aggregated counts of the game and the user's like and bookmark flags
func (r *InteractionRepository) Stats(ctx context.Context, gameID, userID string) (domain.GameStats, error) {
	if err := r.ensureGame(ctx, gameID); err != nil {
		return domain.GameStats{}, err
	}
	query := `
		SELECT
			(SELECT COUNT(*) FROM likes WHERE game_id = ?) AS like_count,
			(SELECT COALESCE(AVG(rating), 0) FROM ratings WHERE game_id = ?) AS rating_average,
			(SELECT COUNT(*) FROM ratings WHERE game_id = ?) AS rating_count,
			(SELECT COUNT(*) FROM comments WHERE game_id = ?) AS comment_count,
			(SELECT COUNT(*) FROM plays WHERE game_id = ?) AS play_count,
			EXISTS(SELECT 1 FROM likes WHERE game_id = ? AND user_id = ?) AS liked,
			EXISTS(SELECT 1 FROM bookmarks WHERE game_id = ? AND user_id = ?) AS bookmarked
	`
	var row statsSQL
	err := r.db.GetContext(ctx, &row, query, gameID, gameID, gameID, gameID, gameID, gameID, userID, gameID, userID)
	if err != nil {
		return domain.GameStats{}, fmt.Errorf("stats of %s: %w", gameID, err)
	}
	return domain.GameStats{
		GameID:        gameID,
		LikeCount:     row.LikeCount,
		RatingAverage: row.RatingAverage,
		RatingCount:   row.RatingCount,
		CommentCount:  row.CommentCount,
		PlayCount:     row.PlayCount,
		Liked:         row.Liked,
		Bookmarked:    row.Bookmarked,
	}, nil
}

func (r *InteractionRepository) setMembership(ctx context.Context, table, gameID, userID string, on bool) error {
	if err := r.ensureGame(ctx, gameID); err != nil {
		return err
	}
	query := "DELETE FROM " + table + " WHERE game_id = ? AND user_id = ?" //nolint:gosec // fixed table names
	if on {
		query = "INSERT OR IGNORE INTO " + table + " (game_id, user_id) VALUES (?, ?)" //nolint:gosec // fixed table names
	}
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, gameID, userID); err != nil {
			return fmt.Errorf("update %s of %s: %w", table, gameID, err)
		}
		return nil
	})
}

// ensureGame returns ErrGameNotFound for unknown games
func (r *InteractionRepository) ensureGame(ctx context.Context, gameID string) error {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM games WHERE id = ?)", gameID); err != nil {
		return fmt.Errorf("check game %s: %w", gameID, err)
	}
	if !exists {
		return fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	return nil
}
