package publication

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var (
	ErrNotFound      = errors.New("publication not found")
	ErrMediaNotFound = errors.New("publication media not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=publication.go -destination=mocks/mock.go

// Repository stores locally authored publish intents until the
// publisher consumes them.
type Repository interface {
	CreatePost(ctx context.Context, p domain.PostPublication) (int64, error)
	CreateStory(ctx context.Context, s domain.StoryPublication) (int64, error)
	// CreateComment resolves the owning media row by its external id;
	// ErrMediaNotFound when it is not mirrored yet.
	CreateComment(ctx context.Context, userID int64, mediaExternalID string, text string) (int64, error)

	ListPending(ctx context.Context) (*domain.PendingPublications, error)
	MarkPublished(ctx context.Context, kind domain.PublicationKind, id int64) error
}
