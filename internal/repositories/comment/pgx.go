package comment

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/repositories"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/bulkops"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
)

type PgxRepository struct {
	pool    *pgxpool.Pool
	gateway *bulkops.Gateway
	logger  logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, gateway *bulkops.Gateway, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:    pool,
		gateway: gateway,
		logger:  logger.WithComponent("CommentRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) IndexByExternalID(ctx context.Context) (map[string]*domain.Comment, error) {
	query, args, err := repositories.SqBuilder.
		Select(
			"id", "comment_id", "text", "username", "like_count",
			"timestamp", "COALESCE(media_id, 0)", "created_at",
		).
		From("comments").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	index := make(map[string]*domain.Comment)
	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(
			&c.ID, &c.CommentID, &c.Text, &c.Username, &c.LikeCount,
			&c.Timestamp, &c.MediaID, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		index[c.CommentID] = &c
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return index, nil
}

func (r *PgxRepository) SyncBatch(ctx context.Context, toInsert []*domain.Comment, toUpdate []*domain.Comment) error {
	inserts := make([]bulkops.Statement, 0, len(toInsert))
	for _, c := range toInsert {
		stmt, err := insertStatement(c)
		if err != nil {
			return err
		}
		inserts = append(inserts, stmt)
	}

	updates := make([]bulkops.Statement, 0, len(toUpdate))
	for _, c := range toUpdate {
		stmt, err := updateStatement(c)
		if err != nil {
			return err
		}
		updates = append(updates, stmt)
	}

	return r.gateway.Apply(ctx, "comments", inserts, updates)
}

func (r *PgxRepository) LinkMedia(ctx context.Context, commentID string, mediaID int64) error {
	query, args, err := repositories.SqBuilder.
		Update("comments").
		Set("media_id", mediaID).
		Where(sq.Eq{"comment_id": commentID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to link comment %s to media %d: %w", commentID, mediaID, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func insertStatement(c *domain.Comment) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Insert("comments").
		Columns("comment_id", "text", "username", "like_count", "timestamp", "media_id").
		Values(
			c.CommentID, c.Text, c.Username, c.LikeCount, c.Timestamp,
			repositories.NullableID(c.MediaID),
		).
		Suffix("ON CONFLICT (comment_id) DO NOTHING").
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}

func updateStatement(c *domain.Comment) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Update("comments").
		Set("text", c.Text).
		Set("username", c.Username).
		Set("like_count", c.LikeCount).
		Set("timestamp", c.Timestamp).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}
