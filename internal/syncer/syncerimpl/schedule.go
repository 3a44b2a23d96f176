package syncerimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/meta-graph-sync/pkg/formatter"
)

// ScheduleSync sets up the periodic full sync job. The interval comes
// from configuration; each run gets its own timeout so a hung Graph API
// call cannot wedge the scheduler.
func (s *SyncerImpl) ScheduleSync(ctx context.Context) error {
	if s.Scheduler == nil {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("failed to create sync scheduler: %w", err)
		}
		s.Scheduler = scheduler
	}

	interval := time.Duration(s.Config.Sync.IntervalMinutes) * time.Minute
	s.Logger.Info("Setting up sync interval", "interval", interval.String())

	_, err := s.Scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				s.Logger.Info("Context cancelled, stopping sync schedule")
				return
			}

			syncCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
			defer cancel()

			report, err := s.SyncAll(syncCtx)
			if err != nil {
				s.Logger.Error("Scheduled sync failed", "error", err)
				return
			}

			inserted, updated, skipped := report.Totals()
			s.Notifier.Notify(fmt.Sprintf(
				"Sync finished: %s inserted, %s updated, %s skipped",
				formatter.FormatNumber(inserted),
				formatter.FormatNumber(updated),
				formatter.FormatNumber(skipped),
			))
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}

	s.Scheduler.Start()
	return nil
}

// StopScheduler shuts the scheduler down, waiting for a running job.
func (s *SyncerImpl) StopScheduler() error {
	if s.Scheduler == nil {
		return nil
	}
	return s.Scheduler.Shutdown()
}
