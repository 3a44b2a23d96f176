package syncerimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/reconcile"
)

// syncCategories mirrors the category taxonomy referenced by the pages
// of the current business account. Categories carry no references, so
// the phase runs first.
func (s *SyncerImpl) syncCategories(ctx context.Context) (domain.PhaseReport, error) {
	report := domain.PhaseReport{Phase: "categories"}

	pages, err := s.Meta.GetAccounts(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	var remotes []domain.RemoteCategory
	for _, page := range pages {
		remotes = append(remotes, page.CategoryList...)
	}

	index, err := s.CategoryRepo.IndexByExternalID(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to index categories: %w", err)
	}

	plan := reconcile.Reconcile(remotes, reconcile.Spec[domain.RemoteCategory, domain.Category]{
		Key: func(r domain.RemoteCategory) string { return r.ID },
		Lookup: func(key string) (*domain.Category, bool) {
			local, ok := index[key]
			return local, ok
		},
		Build: func(r domain.RemoteCategory) (*domain.Category, error) {
			return &domain.Category{CategoryID: r.ID, Name: r.Name}, nil
		},
		Apply: func(r domain.RemoteCategory, local *domain.Category) (bool, error) {
			if local.Name == r.Name {
				return false, nil
			}
			local.Name = r.Name
			return true, nil
		},
	})

	if err := s.CategoryRepo.SyncBatch(ctx, plan.Inserts, plan.Updates); err != nil {
		return report, err
	}

	s.logSkips(report.Phase, plan.Skips)
	report.Inserted = len(plan.Inserts)
	report.Updated = len(plan.Updates)
	report.Skipped = len(plan.Skips)
	return report, nil
}
