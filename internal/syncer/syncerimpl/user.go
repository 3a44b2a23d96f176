package syncerimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/reconcile"
)

// syncUsers mirrors the user that owns the access token.
func (s *SyncerImpl) syncUsers(ctx context.Context) (domain.PhaseReport, error) {
	report := domain.PhaseReport{Phase: "users"}

	current, err := s.Meta.GetCurrentUser(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to fetch current user: %w", err)
	}

	index, err := s.UserRepo.IndexByExternalID(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to index users: %w", err)
	}

	plan := reconcile.Reconcile([]domain.RemoteUser{*current}, reconcile.Spec[domain.RemoteUser, domain.User]{
		Key: func(r domain.RemoteUser) string { return r.ID },
		Lookup: func(key string) (*domain.User, bool) {
			local, ok := index[key]
			return local, ok
		},
		Build: func(r domain.RemoteUser) (*domain.User, error) {
			return &domain.User{UserID: r.ID, Name: r.Name, Email: r.Email}, nil
		},
		Apply: func(r domain.RemoteUser, local *domain.User) (bool, error) {
			if local.Name == r.Name && local.Email == r.Email {
				return false, nil
			}
			local.Name = r.Name
			local.Email = r.Email
			return true, nil
		},
	})

	if err := s.UserRepo.SyncBatch(ctx, plan.Inserts, plan.Updates); err != nil {
		return report, err
	}

	s.logSkips(report.Phase, plan.Skips)
	report.Inserted = len(plan.Inserts)
	report.Updated = len(plan.Updates)
	report.Skipped = len(plan.Skips)
	return report, nil
}
