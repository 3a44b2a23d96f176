package syncerimpl

import (
	"context"
	"fmt"
	"slices"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/reconcile"
)

// syncInsights mirrors the account-level insight series. Media-level
// series are handled inside the media phase, where their owners are
// fetched.
func (s *SyncerImpl) syncInsights(ctx context.Context) (domain.PhaseReport, error) {
	report := domain.PhaseReport{Phase: "insights"}

	accountIndex, err := s.AccountRepo.IndexByExternalID(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to index accounts: %w", err)
	}

	var (
		remotes        []domain.RemoteInsight
		insightAccount = make(map[string]int64)
	)
	for _, account := range accountIndex {
		insights, err := s.Meta.GetAccountInsights(ctx, account.AccountID)
		if err != nil {
			return report, fmt.Errorf("failed to fetch insights for account %s: %w", account.AccountID, err)
		}
		for _, in := range insights {
			remotes = append(remotes, in)
			insightAccount[in.ID] = account.ID
		}
	}

	plan, err := s.reconcileInsights(ctx, remotes, func(r domain.RemoteInsight) (*domain.Insight, error) {
		accountID, ok := insightAccount[r.ID]
		if !ok {
			return nil, fmt.Errorf("owning account for insight %s unknown", r.ID)
		}
		insight := buildInsight(r)
		insight.Kind = domain.InsightKindAccount
		insight.AccountID = accountID
		return insight, nil
	})
	if err != nil {
		return report, err
	}

	if err := s.InsightRepo.SyncBatch(ctx, plan.Inserts, plan.Updates); err != nil {
		return report, err
	}

	s.logSkips(report.Phase, plan.Skips)
	report.Inserted = len(plan.Inserts)
	report.Updated = len(plan.Updates)
	report.Skipped = len(plan.Skips)
	return report, nil
}

// reconcileInsights diffs remote insight series against the local index
// with a caller-supplied builder for owner resolution.
func (s *SyncerImpl) reconcileInsights(
	ctx context.Context,
	remotes []domain.RemoteInsight,
	build func(r domain.RemoteInsight) (*domain.Insight, error),
) (reconcile.Plan[domain.Insight], error) {
	index, err := s.InsightRepo.IndexByExternalID(ctx)
	if err != nil {
		return reconcile.Plan[domain.Insight]{}, fmt.Errorf("failed to index insights: %w", err)
	}

	plan := reconcile.Reconcile(remotes, reconcile.Spec[domain.RemoteInsight, domain.Insight]{
		Key: func(r domain.RemoteInsight) string { return r.ID },
		Lookup: func(key string) (*domain.Insight, bool) {
			local, ok := index[key]
			return local, ok
		},
		Build: build,
		Apply: func(r domain.RemoteInsight, local *domain.Insight) (bool, error) {
			changed := !slices.Equal(local.Values, r.Values) ||
				local.Title != r.Title ||
				local.Description != r.Description
			if !changed {
				return false, nil
			}
			local.Values = r.Values
			local.Title = r.Title
			local.Description = r.Description
			return true, nil
		},
	})
	return plan, nil
}

func buildInsight(r domain.RemoteInsight) *domain.Insight {
	return &domain.Insight{
		InsightID:   r.ID,
		Name:        r.Name,
		Period:      r.Period,
		Values:      r.Values,
		Title:       r.Title,
		Description: r.Description,
	}
}
