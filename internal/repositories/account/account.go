package account

import (
	"context"
	"errors"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
)

var ErrNotFound = errors.New("account not found")

//go:generate go run go.uber.org/mock/mockgen -source=account.go -destination=mocks/mock.go

type Repository interface {
	IndexByExternalID(ctx context.Context) (map[string]*domain.Account, error)
	SyncBatch(ctx context.Context, toInsert []*domain.Account, toUpdate []*domain.Account) error
}
