package publisherimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/meta"
	"github.com/orgball2608/meta-graph-sync/internal/publisher"
	publicationRepo "github.com/orgball2608/meta-graph-sync/internal/repositories/publication"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Meta            meta.Client
	PublicationRepo publicationRepo.Repository
	Logger          logger.Logger
}

type PublisherImpl struct {
	Meta            meta.Client
	PublicationRepo publicationRepo.Repository
	Logger          logger.Logger
}

func New(opts Opts) *PublisherImpl {
	return &PublisherImpl{
		Meta:            opts.Meta,
		PublicationRepo: opts.PublicationRepo,
		Logger:          opts.Logger.WithComponent("Publisher"),
	}
}

var _ publisher.Client = (*PublisherImpl)(nil)

// PublishPost dispatches on the media kind. The carousel flag only
// matters for image intents; a video intent is always a single video
// publish. The caption rides along for every shape.
func (p *PublisherImpl) PublishPost(ctx context.Context, post domain.PostPublication) error {
	switch {
	case post.Kind == domain.MediaKindVideo:
		return p.Meta.PublishVideo(ctx, post.FileURL, post.Caption)
	case post.Carousel:
		return p.Meta.PublishCarousel(ctx, post.CarouselURLs(), post.Caption)
	default:
		return p.Meta.PublishPhoto(ctx, post.FileURL, post.Caption)
	}
}

func (p *PublisherImpl) PublishStory(ctx context.Context, story domain.StoryPublication) error {
	return p.Meta.PublishStory(ctx, story.FileURL)
}

func (p *PublisherImpl) PublishComment(ctx context.Context, comment domain.CommentPublication) error {
	return p.Meta.PutComment(ctx, comment.MediaExternalID, comment.Text)
}

func (p *PublisherImpl) PublishPending(ctx context.Context) (*publisher.Report, error) {
	pending, err := p.PublicationRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending publications: %w", err)
	}

	report := &publisher.Report{}

	for _, post := range pending.Posts {
		if err := p.PublishPost(ctx, post); err != nil {
			return report, fmt.Errorf("failed to publish post %d: %w", post.ID, err)
		}
		if err := p.PublicationRepo.MarkPublished(ctx, domain.PublicationKindPost, post.ID); err != nil {
			return report, fmt.Errorf("failed to mark post %d published: %w", post.ID, err)
		}
		p.Logger.Info("Published post", "id", post.ID, "carousel", post.Carousel)
		report.Posts++
	}

	for _, story := range pending.Stories {
		if err := p.PublishStory(ctx, story); err != nil {
			return report, fmt.Errorf("failed to publish story %d: %w", story.ID, err)
		}
		if err := p.PublicationRepo.MarkPublished(ctx, domain.PublicationKindStory, story.ID); err != nil {
			return report, fmt.Errorf("failed to mark story %d published: %w", story.ID, err)
		}
		p.Logger.Info("Published story", "id", story.ID)
		report.Stories++
	}

	for _, comment := range pending.Comments {
		if err := p.PublishComment(ctx, comment); err != nil {
			return report, fmt.Errorf("failed to publish comment %d: %w", comment.ID, err)
		}
		if err := p.PublicationRepo.MarkPublished(ctx, domain.PublicationKindComment, comment.ID); err != nil {
			return report, fmt.Errorf("failed to mark comment %d published: %w", comment.ID, err)
		}
		p.Logger.Info("Published comment", "id", comment.ID, "media", comment.MediaExternalID)
		report.Comments++
	}

	return report, nil
}
