package syncer

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

// ErrUnknownEntity is returned by SyncEntity for a name outside the
// supported set.
var ErrUnknownEntity = errors.New("unknown sync entity")

//go:generate go run go.uber.org/mock/mockgen -source=syncer.go -destination=mocks/mock.go

// Client mirrors the remote Graph API state into local storage. A full
// pass runs the entity phases in dependency order; a single-entity pass
// runs one phase against whatever local rows already exist.
type Client interface {
	SyncAll(ctx context.Context) (*domain.SyncReport, error)
	SyncEntity(ctx context.Context, entity string) (*domain.SyncReport, error)
	ScheduleSync(ctx context.Context) error
	StopScheduler() error
}
