package insight

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var ErrNotFound = errors.New("insight not found")

//go:generate go run go.uber.org/mock/mockgen -source=insight.go -destination=mocks/mock.go

type Repository interface {
	IndexByExternalID(ctx context.Context) (map[string]*domain.Insight, error)
	SyncBatch(ctx context.Context, toInsert []*domain.Insight, toUpdate []*domain.Insight) error
}
