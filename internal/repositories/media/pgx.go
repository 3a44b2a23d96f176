package media

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/repositories"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/bulkops"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
)

var columns = []string{
	"id", "media_id", "username", "caption", "kind", "media_url",
	"timestamp", "like_count", "comments_count", "account_id", "created_at",
}

type PgxRepository struct {
	pool    *pgxpool.Pool
	gateway *bulkops.Gateway
	logger  logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, gateway *bulkops.Gateway, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:    pool,
		gateway: gateway,
		logger:  logger.WithComponent("MediaRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) IndexByExternalID(ctx context.Context) (map[string]*domain.Media, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From("media").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query media: %w", err)
	}
	defer rows.Close()

	index := make(map[string]*domain.Media)
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		index[m.MediaID] = m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media rows: %w", err)
	}

	return index, nil
}

func (r *PgxRepository) GetByExternalID(ctx context.Context, mediaID string) (*domain.Media, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From("media").
		Where(sq.Eq{"media_id": mediaID}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query media by external id: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get media %s: %w", mediaID, err)
		}
		return nil, ErrNotFound
	}
	return scanMedia(rows)
}

func (r *PgxRepository) SyncBatch(ctx context.Context, toInsert []*domain.Media, toUpdate []*domain.Media) error {
	inserts := make([]bulkops.Statement, 0, len(toInsert))
	for _, m := range toInsert {
		stmt, err := insertStatement(m)
		if err != nil {
			return err
		}
		inserts = append(inserts, stmt)
	}

	updates := make([]bulkops.Statement, 0, len(toUpdate))
	for _, m := range toUpdate {
		stmt, err := updateStatement(m)
		if err != nil {
			return err
		}
		updates = append(updates, stmt)
	}

	return r.gateway.Apply(ctx, "media", inserts, updates)
}

func scanMedia(rows pgx.Rows) (*domain.Media, error) {
	var m domain.Media
	err := rows.Scan(
		&m.ID, &m.MediaID, &m.Username, &m.Caption, &m.Kind, &m.MediaURL,
		&m.Timestamp, &m.LikeCount, &m.CommentsCount, &m.AccountID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan media row: %w", err)
	}
	return &m, nil
}

func insertStatement(m *domain.Media) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Insert("media").
		Columns(
			"media_id", "username", "caption", "kind", "media_url",
			"timestamp", "like_count", "comments_count", "account_id",
		).
		Values(
			m.MediaID, m.Username, m.Caption, string(m.Kind), m.MediaURL,
			m.Timestamp, m.LikeCount, m.CommentsCount, m.AccountID,
		).
		Suffix("ON CONFLICT (media_id) DO NOTHING").
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}

func updateStatement(m *domain.Media) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Update("media").
		Set("username", m.Username).
		Set("caption", m.Caption).
		Set("kind", string(m.Kind)).
		Set("media_url", m.MediaURL).
		Set("timestamp", m.Timestamp).
		Set("like_count", m.LikeCount).
		Set("comments_count", m.CommentsCount).
		Set("account_id", m.AccountID).
		Where(sq.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}
