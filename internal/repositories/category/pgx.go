package category

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
		logger:  logger.WithComponent("CategoryRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) IndexByExternalID(ctx context.Context) (map[string]*domain.Category, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "category_id", "name", "created_at").
		From("categories").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	index := make(map[string]*domain.Category)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.CategoryID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		index[c.CategoryID] = &c
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return index, nil
}

func (r *PgxRepository) SyncBatch(ctx context.Context, toInsert []*domain.Category, toUpdate []*domain.Category) error {
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

	return r.gateway.Apply(ctx, "categories", inserts, updates)
}

func insertStatement(c *domain.Category) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Insert("categories").
		Columns("category_id", "name").
		Values(c.CategoryID, c.Name).
		Suffix("ON CONFLICT (category_id) DO NOTHING").
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}

func updateStatement(c *domain.Category) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Update("categories").
		Set("name", c.Name).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}
