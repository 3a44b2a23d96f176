package syncerimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/reconcile"
)

// syncStories mirrors the currently live stories of every account.
// Expired stories are kept; the Graph API stops returning them but
// local history is never pruned.
func (s *SyncerImpl) syncStories(ctx context.Context) (domain.PhaseReport, error) {
	report := domain.PhaseReport{Phase: "stories"}

	accountIndex, err := s.AccountRepo.IndexByExternalID(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to index accounts: %w", err)
	}

	var (
		remotes      []domain.RemoteStory
		storyAccount = make(map[string]int64)
	)
	for _, account := range accountIndex {
		stories, err := s.Meta.GetStories(ctx, account.AccountID)
		if err != nil {
			return report, fmt.Errorf("failed to fetch stories for account %s: %w", account.AccountID, err)
		}
		for _, st := range stories {
			remotes = append(remotes, st)
			storyAccount[st.ID] = account.ID
		}
	}

	index, err := s.StoryRepo.IndexByExternalID(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to index stories: %w", err)
	}

	plan := reconcile.Reconcile(remotes, reconcile.Spec[domain.RemoteStory, domain.Story]{
		Key: func(r domain.RemoteStory) string { return r.ID },
		Lookup: func(key string) (*domain.Story, bool) {
			local, ok := index[key]
			return local, ok
		},
		Build: func(r domain.RemoteStory) (*domain.Story, error) {
			accountID, ok := storyAccount[r.ID]
			if !ok {
				return nil, fmt.Errorf("owning account for story %s unknown", r.ID)
			}
			return &domain.Story{
				StoryID:   r.ID,
				MediaType: r.MediaType,
				MediaURL:  r.MediaURL,
				Timestamp: r.Timestamp,
				AccountID: accountID,
			}, nil
		},
		Apply: func(r domain.RemoteStory, local *domain.Story) (bool, error) {
			if local.MediaURL == r.MediaURL {
				return false, nil
			}
			local.MediaURL = r.MediaURL
			return true, nil
		},
	})

	if err := s.StoryRepo.SyncBatch(ctx, plan.Inserts, plan.Updates); err != nil {
		return report, err
	}

	s.logSkips(report.Phase, plan.Skips)
	report.Inserted = len(plan.Inserts)
	report.Updated = len(plan.Updates)
	report.Skipped = len(plan.Skips)
	return report, nil
}
