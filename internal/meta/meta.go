package meta

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var (
	ErrUnauthorized = errors.New("graph api token rejected")
	ErrRateLimited  = errors.New("graph api rate limit reached")
)

//go:generate go run go.uber.org/mock/mockgen -source=meta.go -destination=mocks/mock.go

// Client is the Meta Graph API facade. Fetch operations return typed
// immutable records; publish operations push locally authored content.
type Client interface {
	GetAccounts(ctx context.Context) ([]domain.RemotePage, error)
	GetCurrentUser(ctx context.Context) (*domain.RemoteUser, error)
	GetMedia(ctx context.Context, accountID string) ([]domain.RemoteMedia, error)
	GetComments(ctx context.Context, mediaID string) ([]domain.RemoteComment, error)
	GetStories(ctx context.Context, accountID string) ([]domain.RemoteStory, error)
	GetAccountInsights(ctx context.Context, accountID string) ([]domain.RemoteInsight, error)
	GetMediaInsights(ctx context.Context, mediaID string) ([]domain.RemoteInsight, error)

	PublishPhoto(ctx context.Context, url string, caption string) error
	PublishCarousel(ctx context.Context, urls []string, caption string) error
	PublishVideo(ctx context.Context, url string, caption string) error
	PublishStory(ctx context.Context, url string) error
	PutComment(ctx context.Context, mediaID string, text string) error
}
