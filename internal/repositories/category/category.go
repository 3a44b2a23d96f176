package category

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var ErrNotFound = errors.New("category not found")

//go:generate go run go.uber.org/mock/mockgen -source=category.go -destination=mocks/mock.go

type Repository interface {
	IndexByExternalID(ctx context.Context) (map[string]*domain.Category, error)
	SyncBatch(ctx context.Context, toInsert []*domain.Category, toUpdate []*domain.Category) error
}
