package domain

import "time"

// MediaKind discriminates mirrored media content.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// MediaKindFromType maps a Graph API media_type to a MediaKind.
func MediaKindFromType(mediaType string) MediaKind {
	if mediaType == "IMAGE" {
		return MediaKindImage
	}
	return MediaKindVideo
}

type Media struct {
	ID            int64
	MediaID       string
	Username      string
	Caption       string
	Kind          MediaKind
	MediaURL      string
	Timestamp     string
	LikeCount     int
	CommentsCount int
	AccountID     int64
	CreatedAt     time.Time
}
