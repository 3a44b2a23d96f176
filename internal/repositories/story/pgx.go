package story

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
		logger:  logger.WithComponent("StoryRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) IndexByExternalID(ctx context.Context) (map[string]*domain.Story, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "story_id", "media_type", "media_url", "timestamp", "account_id", "created_at").
		From("stories").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stories: %w", err)
	}
	defer rows.Close()

	index := make(map[string]*domain.Story)
	for rows.Next() {
		var s domain.Story
		err := rows.Scan(
			&s.ID, &s.StoryID, &s.MediaType, &s.MediaURL,
			&s.Timestamp, &s.AccountID, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan story row: %w", err)
		}
		index[s.StoryID] = &s
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating story rows: %w", err)
	}

	return index, nil
}

func (r *PgxRepository) SyncBatch(ctx context.Context, toInsert []*domain.Story, toUpdate []*domain.Story) error {
	inserts := make([]bulkops.Statement, 0, len(toInsert))
	for _, s := range toInsert {
		stmt, err := insertStatement(s)
		if err != nil {
			return err
		}
		inserts = append(inserts, stmt)
	}

	updates := make([]bulkops.Statement, 0, len(toUpdate))
	for _, s := range toUpdate {
		stmt, err := updateStatement(s)
		if err != nil {
			return err
		}
		updates = append(updates, stmt)
	}

	return r.gateway.Apply(ctx, "stories", inserts, updates)
}

func insertStatement(s *domain.Story) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Insert("stories").
		Columns("story_id", "media_type", "media_url", "timestamp", "account_id").
		Values(s.StoryID, s.MediaType, s.MediaURL, s.Timestamp, s.AccountID).
		Suffix("ON CONFLICT (story_id) DO NOTHING").
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}

func updateStatement(s *domain.Story) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Update("stories").
		Set("media_type", s.MediaType).
		Set("media_url", s.MediaURL).
		Set("timestamp", s.Timestamp).
		Where(sq.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}
