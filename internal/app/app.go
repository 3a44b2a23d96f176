package app

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/orgball2608/meta-graph-sync/internal/meta"
	"github.com/orgball2608/meta-graph-sync/internal/meta/graphimpl"
	_ "github.com/orgball2608/meta-graph-sync/internal/migrations"
	"github.com/orgball2608/meta-graph-sync/internal/notifier"
	"github.com/orgball2608/meta-graph-sync/internal/notifier/telegramimpl"
	"github.com/orgball2608/meta-graph-sync/internal/publisher"
	"github.com/orgball2608/meta-graph-sync/internal/publisher/publisherimpl"
	"github.com/orgball2608/meta-graph-sync/internal/ratelimit"
	repositories "github.com/orgball2608/meta-graph-sync/internal/repositories/fx"
	"github.com/orgball2608/meta-graph-sync/internal/server"
	"github.com/orgball2608/meta-graph-sync/internal/syncer"
	"github.com/orgball2608/meta-graph-sync/internal/syncer/syncerimpl"
	"github.com/orgball2608/meta-graph-sync/pkg/config"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"github.com/orgball2608/meta-graph-sync/pkg/pgx"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			func(cfg *config.Config) *ratelimit.APILimiter {
				return ratelimit.NewAPILimiter(cfg.Meta.RequestsPerSecond, 2)
			},
			fx.As(new(ratelimit.Limiter)),
		),
		fx.Annotate(
			graphimpl.New,
			fx.As(new(meta.Client)),
		),
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(notifier.Client)),
		),
		fx.Annotate(
			syncerimpl.New,
			fx.As(new(syncer.Client)),
		),
		fx.Annotate(
			publisherimpl.New,
			fx.As(new(publisher.Client)),
		),
		server.New,
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(cfg *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	return goose.Up(db, filepath.Join(wd, "internal", "migrations"))
}

func run(lc fx.Lifecycle, log logger.Logger, srv *server.Server, syncClient syncer.Client) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					log.Error("Server failed", "error", err)
				}
			}()

			if err := syncClient.ScheduleSync(context.Background()); err != nil {
				log.Error("Failed to schedule sync", "error", err)
				return err
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := syncClient.StopScheduler(); err != nil {
				log.Error("Failed to stop sync scheduler", "error", err)
			}
			return srv.Stop(ctx)
		},
	})
}
