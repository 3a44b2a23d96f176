package publisherimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/publisher"
	publicationRepo "github.com/orgball2608/meta-graph-sync/internal/repositories/publication"
)

func validKind(kind domain.MediaKind) bool {
	return kind == domain.MediaKindImage || kind == domain.MediaKindVideo
}

func (p *PublisherImpl) SubmitPost(ctx context.Context, post domain.PostPublication) (int64, error) {
	if post.FileURL == "" {
		return 0, fmt.Errorf("%w: missing file url", publisher.ErrInvalidIntent)
	}
	if !validKind(post.Kind) {
		return 0, fmt.Errorf("%w: unknown kind %q", publisher.ErrInvalidIntent, post.Kind)
	}
	if post.Carousel && post.Kind != domain.MediaKindImage {
		return 0, fmt.Errorf("%w: carousel requires image kind", publisher.ErrInvalidIntent)
	}

	id, err := p.PublicationRepo.CreatePost(ctx, post)
	if err != nil {
		return 0, fmt.Errorf("failed to store post intent: %w", err)
	}
	p.Logger.Info("Stored post intent", "id", id, "kind", post.Kind, "carousel", post.Carousel)
	return id, nil
}

func (p *PublisherImpl) SubmitStory(ctx context.Context, story domain.StoryPublication) (int64, error) {
	if story.FileURL == "" {
		return 0, fmt.Errorf("%w: missing file url", publisher.ErrInvalidIntent)
	}
	if !validKind(story.Kind) {
		return 0, fmt.Errorf("%w: unknown kind %q", publisher.ErrInvalidIntent, story.Kind)
	}

	id, err := p.PublicationRepo.CreateStory(ctx, story)
	if err != nil {
		return 0, fmt.Errorf("failed to store story intent: %w", err)
	}
	p.Logger.Info("Stored story intent", "id", id, "kind", story.Kind)
	return id, nil
}

func (p *PublisherImpl) SubmitComment(ctx context.Context, userID int64, mediaExternalID string, text string) (int64, error) {
	if mediaExternalID == "" {
		return 0, fmt.Errorf("%w: missing media id", publisher.ErrInvalidIntent)
	}
	if text == "" {
		return 0, fmt.Errorf("%w: empty comment text", publisher.ErrInvalidIntent)
	}

	id, err := p.PublicationRepo.CreateComment(ctx, userID, mediaExternalID, text)
	if err != nil {
		if errors.Is(err, publicationRepo.ErrMediaNotFound) {
			return 0, fmt.Errorf("%w: %s", publisher.ErrMediaNotFound, mediaExternalID)
		}
		return 0, fmt.Errorf("failed to store comment intent: %w", err)
	}
	p.Logger.Info("Stored comment intent", "id", id, "media", mediaExternalID)
	return id, nil
}
