package domain

import "time"

// Account is a mirrored Instagram business account.
type Account struct {
	ID                int64
	AccountID         string
	Username          string
	FollowsCount      int
	FollowersCount    int
	MediaCount        int
	ProfilePictureURL string
	Website           string
	Biography         string
	CreatedAt         time.Time
}
