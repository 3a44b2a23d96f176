package domain

import "time"

// Comment is a mirrored media comment. MediaID is the surrogate key of
// the owning media row, zero until the link pass runs.
type Comment struct {
	ID        int64
	CommentID string
	Text      string
	Username  string
	LikeCount int
	Timestamp string
	MediaID   int64
	CreatedAt time.Time
}
