package user

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var ErrNotFound = errors.New("user not found")

//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=mocks/mock.go

type Repository interface {
	IndexByExternalID(ctx context.Context) (map[string]*domain.User, error)
	SyncBatch(ctx context.Context, toInsert []*domain.User, toUpdate []*domain.User) error
}
