package media

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var ErrNotFound = errors.New("media not found")

//go:generate go run go.uber.org/mock/mockgen -source=media.go -destination=mocks/mock.go

type Repository interface {
	IndexByExternalID(ctx context.Context) (map[string]*domain.Media, error)
	GetByExternalID(ctx context.Context, mediaID string) (*domain.Media, error)
	SyncBatch(ctx context.Context, toInsert []*domain.Media, toUpdate []*domain.Media) error
}
