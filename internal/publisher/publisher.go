package publisher

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var (
	// ErrInvalidIntent flags a submitted intent that breaks the content
	// rules: unknown kind, carousel on a non-image post, empty body.
	ErrInvalidIntent = errors.New("invalid publication intent")
	// ErrMediaNotFound flags a comment intent whose target media has no
	// local mirror row yet.
	ErrMediaNotFound = errors.New("target media not mirrored")
)

//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=mocks/mock.go

// Report counts the intents pushed out by one PublishPending run.
type Report struct {
	Posts    int `json:"posts"`
	Stories  int `json:"stories"`
	Comments int `json:"comments"`
}

// Client pushes locally authored publication intents out through the
// Graph API.
type Client interface {
	// Submit* validate and store an intent for a later PublishPending
	// run, returning its id.
	SubmitPost(ctx context.Context, p domain.PostPublication) (int64, error)
	SubmitStory(ctx context.Context, s domain.StoryPublication) (int64, error)
	SubmitComment(ctx context.Context, userID int64, mediaExternalID string, text string) (int64, error)

	PublishPost(ctx context.Context, p domain.PostPublication) error
	PublishStory(ctx context.Context, s domain.StoryPublication) error
	PublishComment(ctx context.Context, c domain.CommentPublication) error

	// PublishPending drains the stored intents in creation order and
	// marks each one published as it goes. The first failure stops the
	// run; already published intents stay published.
	PublishPending(ctx context.Context) (*Report, error)
}
