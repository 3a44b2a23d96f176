package domain

import "time"

// Page is a mirrored Facebook page. AccountID and UserID are surrogate
// keys of the linked rows, zero when the link is not resolved.
type Page struct {
	ID          int64
	PageID      string
	Name        string
	AccessToken string
	Tasks       []string
	AccountID   int64
	UserID      int64
	CreatedAt   time.Time
}
