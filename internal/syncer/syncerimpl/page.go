package syncerimpl

import (
	"context"
	"fmt"
	"slices"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/reconcile"
)

// syncPages mirrors the token's Facebook pages and rewrites their
// category sets. A page whose linked Instagram account has no local row
// yet is skipped and picked up on the next pass.
func (s *SyncerImpl) syncPages(ctx context.Context) (domain.PhaseReport, error) {
	report := domain.PhaseReport{Phase: "pages"}

	remotes, err := s.Meta.GetAccounts(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	index, err := s.PageRepo.IndexByExternalID(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to index pages: %w", err)
	}
	accountIndex, err := s.AccountRepo.IndexByExternalID(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to index accounts: %w", err)
	}

	ownerID, err := s.resolveOwner(ctx)
	if err != nil {
		return report, err
	}

	resolveAccount := func(r domain.RemotePage) (int64, error) {
		if r.InstagramBusinessAccount == nil {
			return 0, nil
		}
		account, ok := accountIndex[r.InstagramBusinessAccount.ID]
		if !ok {
			return 0, fmt.Errorf("account %s not mirrored yet", r.InstagramBusinessAccount.ID)
		}
		return account.ID, nil
	}

	plan := reconcile.Reconcile(remotes, reconcile.Spec[domain.RemotePage, domain.Page]{
		Key: func(r domain.RemotePage) string { return r.ID },
		Lookup: func(key string) (*domain.Page, bool) {
			local, ok := index[key]
			return local, ok
		},
		Build: func(r domain.RemotePage) (*domain.Page, error) {
			accountID, err := resolveAccount(r)
			if err != nil {
				return nil, err
			}
			return &domain.Page{
				PageID:      r.ID,
				Name:        r.Name,
				AccessToken: r.AccessToken,
				Tasks:       r.Tasks,
				AccountID:   accountID,
				UserID:      ownerID,
			}, nil
		},
		Apply: func(r domain.RemotePage, local *domain.Page) (bool, error) {
			accountID, err := resolveAccount(r)
			if err != nil {
				return false, err
			}
			changed := local.Name != r.Name ||
				local.AccessToken != r.AccessToken ||
				!slices.Equal(local.Tasks, r.Tasks) ||
				local.AccountID != accountID ||
				local.UserID != ownerID
			if !changed {
				return false, nil
			}
			local.Name = r.Name
			local.AccessToken = r.AccessToken
			local.Tasks = r.Tasks
			local.AccountID = accountID
			local.UserID = ownerID
			return true, nil
		},
	})

	if err := s.PageRepo.SyncBatch(ctx, plan.Inserts, plan.Updates); err != nil {
		return report, err
	}

	if err := s.relinkCategories(ctx, remotes); err != nil {
		return report, err
	}

	s.logSkips(report.Phase, plan.Skips)
	report.Inserted = len(plan.Inserts)
	report.Updated = len(plan.Updates)
	report.Skipped = len(plan.Skips)
	return report, nil
}

// resolveOwner returns the surrogate id of the token owner's user row,
// zero when the user has not been mirrored yet.
func (s *SyncerImpl) resolveOwner(ctx context.Context) (int64, error) {
	current, err := s.Meta.GetCurrentUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch current user: %w", err)
	}

	userIndex, err := s.UserRepo.IndexByExternalID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to index users: %w", err)
	}

	owner, ok := userIndex[current.ID]
	if !ok {
		s.Logger.Warn("Token owner not mirrored yet, pages stay unlinked", "user", current.ID)
		return 0, nil
	}
	return owner.ID, nil
}

// relinkCategories rewrites every mirrored page's category set from the
// freshly fetched records. Runs after persistence so inserted pages and
// categories have surrogate ids.
func (s *SyncerImpl) relinkCategories(ctx context.Context, remotes []domain.RemotePage) error {
	index, err := s.PageRepo.IndexByExternalID(ctx)
	if err != nil {
		return fmt.Errorf("failed to reindex pages: %w", err)
	}
	categoryIndex, err := s.CategoryRepo.IndexByExternalID(ctx)
	if err != nil {
		return fmt.Errorf("failed to index categories: %w", err)
	}

	for _, remote := range remotes {
		page, ok := index[remote.ID]
		if !ok {
			continue
		}

		categoryIDs := make([]int64, 0, len(remote.CategoryList))
		for _, rc := range remote.CategoryList {
			category, ok := categoryIndex[rc.ID]
			if !ok {
				s.Logger.Warn("Category not mirrored yet", "page", remote.ID, "category", rc.ID)
				continue
			}
			categoryIDs = append(categoryIDs, category.ID)
		}

		if err := s.PageRepo.ReplaceCategories(ctx, page.ID, categoryIDs); err != nil {
			return fmt.Errorf("failed to relink categories for page %s: %w", remote.ID, err)
		}
	}
	return nil
}
