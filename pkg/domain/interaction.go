package domain

import "time"

// InteractionRecord holds per-item counts and the current user's memberships
type InteractionRecord struct {
	Liked        bool
	Bookmarked   bool
	LikeCount    int
	RatingSum    float64
	RatingCount  int
	CommentCount int
}

// AverageRating returns ratingSum / max(ratingCount, 1)
func (r InteractionRecord) AverageRating() float64 {
	return r.RatingSum / float64(max(r.RatingCount, 1))
}

// SyncKind is the type of interaction mutation delivered to the remote service
type SyncKind string

// sync kinds
const (
	SyncLike       SyncKind = "like"
	SyncUnlike     SyncKind = "unlike"
	SyncBookmark   SyncKind = "bookmark"
	SyncUnbookmark SyncKind = "unbookmark"
	SyncRate       SyncKind = "rate"
	SyncComment    SyncKind = "comment"
	SyncPlay       SyncKind = "play"
)

// PendingSync describes one queued interaction mutation. It lives in memory only
// and is discarded after a single delivery attempt.
type PendingSync struct {
	ID        string
	Kind      SyncKind
	ItemID    string
	Rating    int
	Text      string
	CreatedAt time.Time
}

// GameStats is the server-side view of a game's interactions
type GameStats struct {
	GameID        string  `json:"game_id"`
	LikeCount     int     `json:"like_count"`
	RatingAverage float64 `json:"rating_average"`
	RatingCount   int     `json:"rating_count"`
	CommentCount  int     `json:"comment_count"`
	PlayCount     int     `json:"play_count"`
	Liked         bool    `json:"liked"`
	Bookmarked    bool    `json:"bookmarked"`
}

// Record converts server stats into the local interaction record used as a seed
func (s GameStats) Record() InteractionRecord {
	return InteractionRecord{
		Liked:        s.Liked,
		Bookmarked:   s.Bookmarked,
		LikeCount:    s.LikeCount,
		RatingSum:    s.RatingAverage * float64(s.RatingCount),
		RatingCount:  s.RatingCount,
		CommentCount: s.CommentCount,
	}
}

// Comment is a stored user comment
type Comment struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"game_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
