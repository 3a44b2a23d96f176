package domain

import "time"

type Story struct {
	ID        int64
	StoryID   string
	MediaType string
	MediaURL  string
	Timestamp string
	AccountID int64
	CreatedAt time.Time
}
