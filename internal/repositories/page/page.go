package page

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var ErrNotFound = errors.New("page not found")

//go:generate go run go.uber.org/mock/mockgen -source=page.go -destination=mocks/mock.go

type Repository interface {
	IndexByExternalID(ctx context.Context) (map[string]*domain.Page, error)
	SyncBatch(ctx context.Context, toInsert []*domain.Page, toUpdate []*domain.Page) error

	// ReplaceCategories rewrites the page's category set. Both sides
	// must already be persisted.
	ReplaceCategories(ctx context.Context, pageID int64, categoryIDs []int64) error
}
