package comment

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var ErrNotFound = errors.New("comment not found")

//go:generate go run go.uber.org/mock/mockgen -source=comment.go -destination=mocks/mock.go

type Repository interface {
	IndexByExternalID(ctx context.Context) (map[string]*domain.Comment, error)
	SyncBatch(ctx context.Context, toInsert []*domain.Comment, toUpdate []*domain.Comment) error

	// LinkMedia sets the owning media row for one comment. Both sides
	// must already be persisted.
	LinkMedia(ctx context.Context, commentID string, mediaID int64) error
}
