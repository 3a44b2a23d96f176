package account

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
		logger:  logger.WithComponent("AccountRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) IndexByExternalID(ctx context.Context) (map[string]*domain.Account, error) {
	query, args, err := repositories.SqBuilder.
		Select(
			"id", "account_id", "username", "follows_count", "followers_count",
			"media_count", "profile_picture_url", "website", "biography", "created_at",
		).
		From("accounts").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	index := make(map[string]*domain.Account)
	for rows.Next() {
		var a domain.Account
		err := rows.Scan(
			&a.ID, &a.AccountID, &a.Username, &a.FollowsCount, &a.FollowersCount,
			&a.MediaCount, &a.ProfilePictureURL, &a.Website, &a.Biography, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		index[a.AccountID] = &a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return index, nil
}

func (r *PgxRepository) SyncBatch(ctx context.Context, toInsert []*domain.Account, toUpdate []*domain.Account) error {
	inserts := make([]bulkops.Statement, 0, len(toInsert))
	for _, a := range toInsert {
		stmt, err := insertStatement(a)
		if err != nil {
			return err
		}
		inserts = append(inserts, stmt)
	}

	updates := make([]bulkops.Statement, 0, len(toUpdate))
	for _, a := range toUpdate {
		stmt, err := updateStatement(a)
		if err != nil {
			return err
		}
		updates = append(updates, stmt)
	}

	return r.gateway.Apply(ctx, "accounts", inserts, updates)
}

func insertStatement(a *domain.Account) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Insert("accounts").
		Columns(
			"account_id", "username", "follows_count", "followers_count",
			"media_count", "profile_picture_url", "website", "biography",
		).
		Values(
			a.AccountID, a.Username, a.FollowsCount, a.FollowersCount,
			a.MediaCount, a.ProfilePictureURL, a.Website, a.Biography,
		).
		Suffix("ON CONFLICT (account_id) DO NOTHING").
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}

func updateStatement(a *domain.Account) (bulkops.Statement, error) {
	query, args, err := repositories.SqBuilder.
		Update("accounts").
		Set("username", a.Username).
		Set("follows_count", a.FollowsCount).
		Set("followers_count", a.FollowersCount).
		Set("media_count", a.MediaCount).
		Set("profile_picture_url", a.ProfilePictureURL).
		Set("website", a.Website).
		Set("biography", a.Biography).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return bulkops.Statement{}, repositories.ErrBadQuery
	}
	return bulkops.Statement{SQL: query, Args: args}, nil
}
