package page

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
		logger:  logger.WithComponent("PageRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) IndexByExternalID(ctx context.Context) (map[string]*domain.Page, error) {
	query, args, err := repositories.SqBuilder.
		Select(
			"id", "page_id", "name", "access_token", "tasks",
			"COALESCE(account_id, 0)", "COALESCE(user_id, 0)", "created_at",
		).
		From("pages").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	index := make(map[string]*domain.Page)
	for rows.Next() {
		var p domain.Page
		var tasksJSON []byte
		err := rows.Scan(
			&p.ID, &p.PageID, &p.Name, &p.AccessToken, &tasksJSON,
			&p.AccountID, &p.UserID, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page row: %w", err)
		}
		if len(tasksJSON) > 0 {
			if err := json.Unmarshal(tasksJSON, &p.Tasks); err != nil {
				return nil, fmt.Errorf("failed to decode page tasks: %w", err)
			}
		}
		index[p.PageID] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating page rows: %w", err)
	}

	return index, nil
}

func (r *PgxRepository) SyncBatch(ctx context.Context, toInsert []*domain.Page, toUpdate []*domain.Page) error {
	inserts := make([]bulkops.Statement, 0, len(toInsert))
	for _, p := range toInsert {
		stmt, err := insertStatement(p)
		if err != nil {
			return err
		}
		inserts = append(inserts, stmt)
	}

	updates := make([]bulkops.Statement, 0, len(toUpdate))
	for _, p := range toUpdate {
		stmt, err := updateStatement(p)
		if err != nil {
			return err
		}
		updates = append(updates, stmt)
	}

	return r.gateway.Apply(ctx, "pages", inserts, updates)
}

func (r *PgxRepository) ReplaceCategories(ctx context.Context, pageID int64, categoryIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	delQuery, delArgs, err := repositories.SqBuilder.
		Delete("page_categories").
		Where(sq.Eq{"page_id": pageID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}
	if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("failed to clear page categories: %w", err)
	}

	for _, categoryID := range categoryIDs {
		insQuery, insArgs, err := repositories.SqBuilder.
			Insert("page_categories").
			Columns("page_id", "category_id").
			Values(pageID, categoryID).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return repositories.ErrBadQuery
		}
		if _, err := tx.Exec(ctx, insQuery, insArgs...); err != nil {
			return fmt.Errorf("failed to link page %d to category %d: %w", pageID, categoryID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit page categories: %w", err)
	}
	return nil
}

func insertStatement(p *domain.Page) (bulkops.Statement, error) {
	tasksJSON, err := json.Marshal(p.Tasks)
	if err != nil {
		return bulkops.Statement{}, fmt.Errorf("failed to encode page tasks: %w", err)
	}

	query, args, err := repositories.SqBuilder.
		Insert("pages").
		Columns("page_id", "name", "access_token", "tasks", "account_id", "user_id").
		Values(
			p.PageID, p.Name, p.AccessToken, tasksJSON,
			repositories.NullableID(p.AccountID), repositories.NullableID(p.UserID),
		).
		Suffix("ON CONFLICT (page_id) DO NOTHING").
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}

func updateStatement(p *domain.Page) (bulkops.Statement, error) {
	tasksJSON, err := json.Marshal(p.Tasks)
	if err != nil {
		return bulkops.Statement{}, fmt.Errorf("failed to encode page tasks: %w", err)
	}

	query, args, err := repositories.SqBuilder.
		Update("pages").
		Set("name", p.Name).
		Set("access_token", p.AccessToken).
		Set("tasks", tasksJSON).
		Set("account_id", repositories.NullableID(p.AccountID)).
		Set("user_id", repositories.NullableID(p.UserID)).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}
