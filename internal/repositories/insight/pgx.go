package insight

import (
	"context"
	"encoding/json"
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
		logger:  logger.WithComponent("InsightRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) IndexByExternalID(ctx context.Context) (map[string]*domain.Insight, error) {
	query, args, err := repositories.SqBuilder.
		Select(
			"id", "insight_id", "name", "period", "metric_values", "title", "description",
			"kind", "COALESCE(account_id, 0)", "COALESCE(media_id, 0)", "created_at",
		).
		From("insights").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}
	defer rows.Close()

	index := make(map[string]*domain.Insight)
	for rows.Next() {
		var i domain.Insight
		var valuesJSON []byte
		err := rows.Scan(
			&i.ID, &i.InsightID, &i.Name, &i.Period, &valuesJSON, &i.Title,
			&i.Description, &i.Kind, &i.AccountID, &i.MediaID, &i.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan insight row: %w", err)
		}
		if len(valuesJSON) > 0 {
			if err := json.Unmarshal(valuesJSON, &i.Values); err != nil {
				return nil, fmt.Errorf("failed to decode insight values: %w", err)
			}
		}
		index[i.InsightID] = &i
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating insight rows: %w", err)
	}

	return index, nil
}

func (r *PgxRepository) SyncBatch(ctx context.Context, toInsert []*domain.Insight, toUpdate []*domain.Insight) error {
	inserts := make([]bulkops.Statement, 0, len(toInsert))
	for _, i := range toInsert {
		stmt, err := insertStatement(i)
		if err != nil {
			return err
		}
		inserts = append(inserts, stmt)
	}

	updates := make([]bulkops.Statement, 0, len(toUpdate))
	for _, i := range toUpdate {
		stmt, err := updateStatement(i)
		if err != nil {
			return err
		}
		updates = append(updates, stmt)
	}

	return r.gateway.Apply(ctx, "insights", inserts, updates)
}

func insertStatement(i *domain.Insight) (bulkops.Statement, error) {
	valuesJSON, err := json.Marshal(i.Values)
	if err != nil {
		return bulkops.Statement{}, fmt.Errorf("failed to encode insight values: %w", err)
	}

	query, args, err := repositories.SqBuilder.
		Insert("insights").
		Columns(
			"insight_id", "name", "period", "metric_values", "title",
			"description", "kind", "account_id", "media_id",
		).
		Values(
			i.InsightID, i.Name, i.Period, valuesJSON, i.Title,
			i.Description, string(i.Kind),
			repositories.NullableID(i.AccountID), repositories.NullableID(i.MediaID),
		).
		Suffix("ON CONFLICT (insight_id) DO NOTHING").
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}

func updateStatement(i *domain.Insight) (bulkops.Statement, error) {
	valuesJSON, err := json.Marshal(i.Values)
	if err != nil {
		return bulkops.Statement{}, fmt.Errorf("failed to encode insight values: %w", err)
	}

	query, args, err := repositories.SqBuilder.
		Update("insights").
		Set("name", i.Name).
		Set("period", i.Period).
		Set("metric_values", valuesJSON).
		Set("title", i.Title).
		Set("description", i.Description).
		Where(sq.Eq{"id": i.ID}).
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}
