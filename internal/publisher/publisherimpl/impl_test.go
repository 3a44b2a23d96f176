package publisherimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	mock_meta "github.com/orgball2608/meta-graph-sync/internal/meta/mocks"
	"github.com/orgball2608/meta-graph-sync/internal/publisher"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/publication"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePublicationRepo struct {
	pending   domain.PendingPublications
	published []string
	listErr   error

	posts        []domain.PostPublication
	stories      []domain.StoryPublication
	comments     []string
	missingMedia bool
}

func (f *fakePublicationRepo) CreatePost(_ context.Context, p domain.PostPublication) (int64, error) {
	f.posts = append(f.posts, p)
	return int64(len(f.posts)), nil
}

func (f *fakePublicationRepo) CreateStory(_ context.Context, s domain.StoryPublication) (int64, error) {
	f.stories = append(f.stories, s)
	return int64(len(f.stories)), nil
}

func (f *fakePublicationRepo) CreateComment(_ context.Context, _ int64, mediaExternalID string, _ string) (int64, error) {
	if f.missingMedia {
		return 0, publication.ErrMediaNotFound
	}
	f.comments = append(f.comments, mediaExternalID)
	return int64(len(f.comments)), nil
}

func (f *fakePublicationRepo) ListPending(context.Context) (*domain.PendingPublications, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &f.pending, nil
}

func (f *fakePublicationRepo) MarkPublished(_ context.Context, kind domain.PublicationKind, id int64) error {
	f.published = append(f.published, string(kind))
	return nil
}

func newPublisher(t *testing.T, repo *fakePublicationRepo) (*PublisherImpl, *mock_meta.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock_meta.NewMockClient(ctrl)
	p := New(Opts{
		Meta:            client,
		PublicationRepo: repo,
		Logger:          logger.New(logger.Opts{}),
	})
	return p, client
}

func TestPublishPostSingleImage(t *testing.T) {
	t.Parallel()

	p, client := newPublisher(t, &fakePublicationRepo{})
	client.EXPECT().
		PublishPhoto(gomock.Any(), "https://cdn/img.jpg", "hello").
		Return(nil)

	err := p.PublishPost(context.Background(), domain.PostPublication{
		FileURL: "https://cdn/img.jpg",
		Caption: "hello",
		Kind:    domain.MediaKindImage,
	})
	require.NoError(t, err)
}

func TestPublishPostCarousel(t *testing.T) {
	t.Parallel()

	p, client := newPublisher(t, &fakePublicationRepo{})
	client.EXPECT().
		PublishCarousel(gomock.Any(), []string{"https://cdn/1.jpg", "https://cdn/2.jpg"}, "set").
		Return(nil)

	err := p.PublishPost(context.Background(), domain.PostPublication{
		FileURL:  "https://cdn/1.jpg,https://cdn/2.jpg",
		Caption:  "set",
		Kind:     domain.MediaKindImage,
		Carousel: true,
	})
	require.NoError(t, err)
}

func TestPublishPostVideoForwardsCaption(t *testing.T) {
	t.Parallel()

	p, client := newPublisher(t, &fakePublicationRepo{})
	client.EXPECT().
		PublishVideo(gomock.Any(), "https://cdn/clip.mp4", "watch this").
		Return(nil)

	err := p.PublishPost(context.Background(), domain.PostPublication{
		FileURL: "https://cdn/clip.mp4",
		Caption: "watch this",
		Kind:    domain.MediaKindVideo,
	})
	require.NoError(t, err)
}

func TestPublishPostVideoIgnoresCarouselFlag(t *testing.T) {
	t.Parallel()

	p, client := newPublisher(t, &fakePublicationRepo{})
	client.EXPECT().
		PublishVideo(gomock.Any(), "https://cdn/clip.mp4", "cap").
		Return(nil)

	err := p.PublishPost(context.Background(), domain.PostPublication{
		FileURL:  "https://cdn/clip.mp4",
		Caption:  "cap",
		Kind:     domain.MediaKindVideo,
		Carousel: true,
	})
	require.NoError(t, err)
}

func TestPublishStory(t *testing.T) {
	t.Parallel()

	p, client := newPublisher(t, &fakePublicationRepo{})
	client.EXPECT().
		PublishStory(gomock.Any(), "https://cdn/story.jpg").
		Return(nil)

	err := p.PublishStory(context.Background(), domain.StoryPublication{
		FileURL: "https://cdn/story.jpg",
	})
	require.NoError(t, err)
}

func TestPublishComment(t *testing.T) {
	t.Parallel()

	p, client := newPublisher(t, &fakePublicationRepo{})
	client.EXPECT().
		PutComment(gomock.Any(), "media-9", "nice").
		Return(nil)

	err := p.PublishComment(context.Background(), domain.CommentPublication{
		MediaExternalID: "media-9",
		Text:            "nice",
	})
	require.NoError(t, err)
}

func TestSubmitPostStoresIntent(t *testing.T) {
	t.Parallel()

	repo := &fakePublicationRepo{}
	p, _ := newPublisher(t, repo)

	id, err := p.SubmitPost(context.Background(), domain.PostPublication{
		UserID:   1,
		FileURL:  "https://cdn/a.jpg,https://cdn/b.jpg",
		Caption:  "set",
		Kind:     domain.MediaKindImage,
		Carousel: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, repo.posts, 1)
	assert.True(t, repo.posts[0].Carousel)
}

func TestSubmitPostRejectsVideoCarousel(t *testing.T) {
	t.Parallel()

	repo := &fakePublicationRepo{}
	p, _ := newPublisher(t, repo)

	_, err := p.SubmitPost(context.Background(), domain.PostPublication{
		FileURL:  "https://cdn/clip.mp4",
		Kind:     domain.MediaKindVideo,
		Carousel: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, publisher.ErrInvalidIntent)
	assert.Empty(t, repo.posts)
}

func TestSubmitPostRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	p, _ := newPublisher(t, &fakePublicationRepo{})

	_, err := p.SubmitPost(context.Background(), domain.PostPublication{
		FileURL: "https://cdn/a.gif",
		Kind:    domain.MediaKind("gif"),
	})
	assert.ErrorIs(t, err, publisher.ErrInvalidIntent)
}

func TestSubmitStoryRejectsMissingURL(t *testing.T) {
	t.Parallel()

	p, _ := newPublisher(t, &fakePublicationRepo{})

	_, err := p.SubmitStory(context.Background(), domain.StoryPublication{
		Kind: domain.MediaKindImage,
	})
	assert.ErrorIs(t, err, publisher.ErrInvalidIntent)
}

func TestSubmitCommentMapsUnknownMedia(t *testing.T) {
	t.Parallel()

	repo := &fakePublicationRepo{missingMedia: true}
	p, _ := newPublisher(t, repo)

	_, err := p.SubmitComment(context.Background(), 1, "m-404", "nice")
	require.Error(t, err)
	assert.ErrorIs(t, err, publisher.ErrMediaNotFound)
}

func TestSubmitCommentStoresIntent(t *testing.T) {
	t.Parallel()

	repo := &fakePublicationRepo{}
	p, _ := newPublisher(t, repo)

	id, err := p.SubmitComment(context.Background(), 1, "m-1", "nice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, []string{"m-1"}, repo.comments)
}

func TestPublishPendingDrainsAllKinds(t *testing.T) {
	t.Parallel()

	repo := &fakePublicationRepo{
		pending: domain.PendingPublications{
			Posts: []domain.PostPublication{
				{ID: 1, FileURL: "https://cdn/a.jpg", Kind: domain.MediaKindImage},
			},
			Stories: []domain.StoryPublication{
				{ID: 2, FileURL: "https://cdn/b.jpg"},
			},
			Comments: []domain.CommentPublication{
				{ID: 3, MediaExternalID: "m-1", Text: "hey"},
			},
		},
	}
	p, client := newPublisher(t, repo)

	client.EXPECT().PublishPhoto(gomock.Any(), "https://cdn/a.jpg", "").Return(nil)
	client.EXPECT().PublishStory(gomock.Any(), "https://cdn/b.jpg").Return(nil)
	client.EXPECT().PutComment(gomock.Any(), "m-1", "hey").Return(nil)

	report, err := p.PublishPending(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Posts)
	assert.Equal(t, 1, report.Stories)
	assert.Equal(t, 1, report.Comments)
	assert.Equal(t, []string{"post", "story", "comment"}, repo.published)
}

func TestPublishPendingStopsOnFirstFailure(t *testing.T) {
	t.Parallel()

	repo := &fakePublicationRepo{
		pending: domain.PendingPublications{
			Posts: []domain.PostPublication{
				{ID: 1, FileURL: "https://cdn/a.jpg", Kind: domain.MediaKindImage},
				{ID: 2, FileURL: "https://cdn/b.jpg", Kind: domain.MediaKindImage},
			},
		},
	}
	p, client := newPublisher(t, repo)

	boom := errors.New("graph api down")
	client.EXPECT().PublishPhoto(gomock.Any(), "https://cdn/a.jpg", "").Return(nil)
	client.EXPECT().PublishPhoto(gomock.Any(), "https://cdn/b.jpg", "").Return(boom)

	report, err := p.PublishPending(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// The first post stays published, the failed one is retried next run.
	assert.Equal(t, 1, report.Posts)
	assert.Equal(t, []string{"post"}, repo.published)
}
