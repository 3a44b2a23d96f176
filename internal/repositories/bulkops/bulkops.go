// Package bulkops is the bulk persistence gateway. It applies the
// insert and update sets produced by a sync phase in fixed-size batches
// inside a single transaction per entity type.
package bulkops

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"github.com/samber/lo"
)

// BatchSize bounds per-operation memory and lock duration.
const BatchSize = 1000

// Statement is one prepared SQL command with its arguments.
type Statement struct {
	SQL  string
	Args []any
}

// Runner executes batches of statements atomically. All batches commit
// or none do.
type Runner interface {
	RunInTx(ctx context.Context, batches [][]Statement) error
}

type PgxRunner struct {
	pool *pgxpool.Pool
}

func NewPgxRunner(pool *pgxpool.Pool) *PgxRunner {
	return &PgxRunner{pool: pool}
}

func (r *PgxRunner) RunInTx(ctx context.Context, batches [][]Statement) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmts := range batches {
		batch := &pgx.Batch{}
		for _, s := range stmts {
			batch.Queue(s.SQL, s.Args...)
		}

		results := tx.SendBatch(ctx, batch)
		var execErr error
		for range stmts {
			if _, err := results.Exec(); err != nil {
				execErr = err
				break
			}
		}
		if closeErr := results.Close(); execErr == nil && closeErr != nil {
			execErr = closeErr
		}
		if execErr != nil {
			return fmt.Errorf("failed to apply batch: %w", execErr)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

var _ Runner = (*PgxRunner)(nil)

// Gateway partitions insert and update statement sets into BatchSize
// chunks and runs them through a Runner.
type Gateway struct {
	runner Runner
	logger logger.Logger
}

func New(runner Runner, log logger.Logger) *Gateway {
	return &Gateway{
		runner: runner,
		logger: log.WithComponent("BulkGateway"),
	}
}

// Apply persists one entity type's insert and update sets atomically.
// Insert statements carry conflict-absorbing suffixes built by the
// repositories, so a duplicate external id is dropped, not raised.
func (g *Gateway) Apply(ctx context.Context, entity string, inserts []Statement, updates []Statement) error {
	if len(inserts) == 0 && len(updates) == 0 {
		return nil
	}

	batches := lo.Chunk(inserts, BatchSize)
	batches = append(batches, lo.Chunk(updates, BatchSize)...)

	if err := g.runner.RunInTx(ctx, batches); err != nil {
		return fmt.Errorf("bulk sync of %s failed: %w", entity, err)
	}

	g.logger.Debug("Applied bulk sync",
		"entity", entity,
		"inserts", len(inserts),
		"updates", len(updates),
	)
	return nil
}
