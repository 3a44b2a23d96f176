package syncerimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/reconcile"
)

// syncAccounts mirrors the Instagram business accounts linked to the
// token's pages.
func (s *SyncerImpl) syncAccounts(ctx context.Context) (domain.PhaseReport, error) {
	report := domain.PhaseReport{Phase: "accounts"}

	pages, err := s.Meta.GetAccounts(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	var remotes []domain.RemoteAccount
	for _, page := range pages {
		if page.InstagramBusinessAccount != nil {
			remotes = append(remotes, *page.InstagramBusinessAccount)
		}
	}

	index, err := s.AccountRepo.IndexByExternalID(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to index accounts: %w", err)
	}

	plan := reconcile.Reconcile(remotes, reconcile.Spec[domain.RemoteAccount, domain.Account]{
		Key: func(r domain.RemoteAccount) string { return r.ID },
		Lookup: func(key string) (*domain.Account, bool) {
			local, ok := index[key]
			return local, ok
		},
		Build: func(r domain.RemoteAccount) (*domain.Account, error) {
			return &domain.Account{
				AccountID:         r.ID,
				Username:          r.Username,
				FollowsCount:      r.FollowsCount,
				FollowersCount:    r.FollowersCount,
				MediaCount:        r.MediaCount,
				ProfilePictureURL: r.ProfilePictureURL,
				Website:           r.Website,
				Biography:         r.Biography,
			}, nil
		},
		Apply: func(r domain.RemoteAccount, local *domain.Account) (bool, error) {
			changed := local.Username != r.Username ||
				local.FollowsCount != r.FollowsCount ||
				local.FollowersCount != r.FollowersCount ||
				local.MediaCount != r.MediaCount ||
				local.ProfilePictureURL != r.ProfilePictureURL ||
				local.Website != r.Website ||
				local.Biography != r.Biography
			if !changed {
				return false, nil
			}
			local.Username = r.Username
			local.FollowsCount = r.FollowsCount
			local.FollowersCount = r.FollowersCount
			local.MediaCount = r.MediaCount
			local.ProfilePictureURL = r.ProfilePictureURL
			local.Website = r.Website
			local.Biography = r.Biography
			return true, nil
		},
	})

	if err := s.AccountRepo.SyncBatch(ctx, plan.Inserts, plan.Updates); err != nil {
		return report, err
	}

	s.logSkips(report.Phase, plan.Skips)
	report.Inserted = len(plan.Inserts)
	report.Updated = len(plan.Updates)
	report.Skipped = len(plan.Skips)
	return report, nil
}
