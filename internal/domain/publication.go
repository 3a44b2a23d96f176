package domain

import (
	"strings"
	"time"
)

// Publication intents are locally authored content waiting to be pushed
// out through the Graph API. They are consumed once, never synced back.

type PostPublication struct {
	ID       int64
	UserID   int64
	FileURL  string
	Caption  string
	Kind     MediaKind
	Carousel bool

	CreatedAt time.Time
}

// CarouselURLs splits the comma-joined FileURL into the list of item
// URLs for a carousel publish.
func (p PostPublication) CarouselURLs() []string {
	return strings.Split(p.FileURL, ",")
}

type StoryPublication struct {
	ID      int64
	UserID  int64
	FileURL string
	Kind    MediaKind

	CreatedAt time.Time
}

type CommentPublication struct {
	ID     int64
	UserID int64
	Text   string

	// MediaExternalID is the Graph media id of the owning media row,
	// resolved by the repository when the intent is listed.
	MediaExternalID string

	CreatedAt time.Time
}

// PendingPublications groups unpublished intents of all kinds.
type PendingPublications struct {
	Posts    []PostPublication
	Stories  []StoryPublication
	Comments []CommentPublication
}

type PublicationKind string

const (
	PublicationKindPost    PublicationKind = "post"
	PublicationKindStory   PublicationKind = "story"
	PublicationKindComment PublicationKind = "comment"
)
