package publication

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/repositories"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("PublicationRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) CreatePost(ctx context.Context, p domain.PostPublication) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Insert("post_publications").
		Columns("user_id", "file_url", "caption", "kind", "carousel").
		Values(repositories.NullableID(p.UserID), p.FileURL, p.Caption, string(p.Kind), p.Carousel).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var id int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create post publication: %w", err)
	}
	return id, nil
}

func (r *PgxRepository) CreateStory(ctx context.Context, s domain.StoryPublication) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Insert("story_publications").
		Columns("user_id", "file_url", "kind").
		Values(repositories.NullableID(s.UserID), s.FileURL, string(s.Kind)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var id int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create story publication: %w", err)
	}
	return id, nil
}

func (r *PgxRepository) CreateComment(ctx context.Context, userID int64, mediaExternalID string, text string) (int64, error) {
	mediaQuery, mediaArgs, err := repositories.SqBuilder.
		Select("id").
		From("media").
		Where(sq.Eq{"media_id": mediaExternalID}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var mediaID int64
	if err := r.pool.QueryRow(ctx, mediaQuery, mediaArgs...).Scan(&mediaID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrMediaNotFound
		}
		return 0, fmt.Errorf("failed to resolve media %s: %w", mediaExternalID, err)
	}

	query, args, err := repositories.SqBuilder.
		Insert("comment_publications").
		Columns("user_id", "media_id", "text").
		Values(repositories.NullableID(userID), mediaID, text).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var id int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create comment publication: %w", err)
	}
	return id, nil
}

func (r *PgxRepository) ListPending(ctx context.Context) (*domain.PendingPublications, error) {
	pending := &domain.PendingPublications{}

	if err := r.listPendingPosts(ctx, pending); err != nil {
		return nil, err
	}
	if err := r.listPendingStories(ctx, pending); err != nil {
		return nil, err
	}
	if err := r.listPendingComments(ctx, pending); err != nil {
		return nil, err
	}

	return pending, nil
}

func (r *PgxRepository) listPendingPosts(ctx context.Context, pending *domain.PendingPublications) error {
	query, args, err := repositories.SqBuilder.
		Select("id", "COALESCE(user_id, 0)", "file_url", "caption", "kind", "carousel", "created_at").
		From("post_publications").
		Where("published_at IS NULL").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query pending posts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.PostPublication
		if err := rows.Scan(&p.ID, &p.UserID, &p.FileURL, &p.Caption, &p.Kind, &p.Carousel, &p.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan post publication row: %w", err)
		}
		pending.Posts = append(pending.Posts, p)
	}
	return rows.Err()
}

func (r *PgxRepository) listPendingStories(ctx context.Context, pending *domain.PendingPublications) error {
	query, args, err := repositories.SqBuilder.
		Select("id", "COALESCE(user_id, 0)", "file_url", "kind", "created_at").
		From("story_publications").
		Where("published_at IS NULL").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query pending stories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.StoryPublication
		if err := rows.Scan(&s.ID, &s.UserID, &s.FileURL, &s.Kind, &s.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan story publication row: %w", err)
		}
		pending.Stories = append(pending.Stories, s)
	}
	return rows.Err()
}

func (r *PgxRepository) listPendingComments(ctx context.Context, pending *domain.PendingPublications) error {
	query, args, err := repositories.SqBuilder.
		Select("cp.id", "COALESCE(cp.user_id, 0)", "cp.text", "m.media_id", "cp.created_at").
		From("comment_publications cp").
		Join("media m ON m.id = cp.media_id").
		Where("cp.published_at IS NULL").
		OrderBy("cp.id ASC").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query pending comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.CommentPublication
		if err := rows.Scan(&c.ID, &c.UserID, &c.Text, &c.MediaExternalID, &c.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan comment publication row: %w", err)
		}
		pending.Comments = append(pending.Comments, c)
	}
	return rows.Err()
}

func (r *PgxRepository) MarkPublished(ctx context.Context, kind domain.PublicationKind, id int64) error {
	var table string
	switch kind {
	case domain.PublicationKindPost:
		table = "post_publications"
	case domain.PublicationKindStory:
		table = "story_publications"
	case domain.PublicationKindComment:
		table = "comment_publications"
	default:
		return fmt.Errorf("unknown publication kind %q", kind)
	}

	query, args, err := repositories.SqBuilder.
		Update(table).
		Set("published_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark %s publication %d published: %w", kind, id, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
