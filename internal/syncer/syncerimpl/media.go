package syncerimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/reconcile"
)

// syncMedia mirrors every account's media together with the comments
// and per-media insight series nested under them. Comments are inserted
// unlinked and attached to their media rows in a relink pass once both
// sides are persisted.
func (s *SyncerImpl) syncMedia(ctx context.Context) (domain.PhaseReport, error) {
	report := domain.PhaseReport{Phase: "media"}

	accountIndex, err := s.AccountRepo.IndexByExternalID(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to index accounts: %w", err)
	}

	var (
		remoteMedia    []domain.RemoteMedia
		remoteComments []domain.RemoteComment
		remoteInsights []domain.RemoteInsight

		mediaAccount = make(map[string]int64)
		commentMedia = make(map[string]string)
		insightMedia = make(map[string]string)
	)

	for _, account := range accountIndex {
		media, err := s.Meta.GetMedia(ctx, account.AccountID)
		if err != nil {
			return report, fmt.Errorf("failed to fetch media for account %s: %w", account.AccountID, err)
		}

		for _, m := range media {
			remoteMedia = append(remoteMedia, m)
			mediaAccount[m.ID] = account.ID

			comments, err := s.Meta.GetComments(ctx, m.ID)
			if err != nil {
				return report, fmt.Errorf("failed to fetch comments for media %s: %w", m.ID, err)
			}
			for _, c := range comments {
				remoteComments = append(remoteComments, c)
				commentMedia[c.ID] = m.ID
			}

			insights, err := s.Meta.GetMediaInsights(ctx, m.ID)
			if err != nil {
				return report, fmt.Errorf("failed to fetch insights for media %s: %w", m.ID, err)
			}
			for _, in := range insights {
				remoteInsights = append(remoteInsights, in)
				insightMedia[in.ID] = m.ID
			}
		}
	}

	mediaPlan, err := s.persistMedia(ctx, remoteMedia, mediaAccount)
	if err != nil {
		return report, err
	}

	commentPlan, err := s.persistComments(ctx, remoteComments, commentMedia)
	if err != nil {
		return report, err
	}

	insightPlan, err := s.persistMediaInsights(ctx, remoteInsights, insightMedia)
	if err != nil {
		return report, err
	}

	report.Inserted = len(mediaPlan.Inserts) + len(commentPlan.Inserts) + len(insightPlan.Inserts)
	report.Updated = len(mediaPlan.Updates) + len(commentPlan.Updates) + len(insightPlan.Updates)
	report.Skipped = len(mediaPlan.Skips) + len(commentPlan.Skips) + len(insightPlan.Skips)
	return report, nil
}

func (s *SyncerImpl) persistMedia(
	ctx context.Context,
	remotes []domain.RemoteMedia,
	mediaAccount map[string]int64,
) (reconcile.Plan[domain.Media], error) {
	index, err := s.MediaRepo.IndexByExternalID(ctx)
	if err != nil {
		return reconcile.Plan[domain.Media]{}, fmt.Errorf("failed to index media: %w", err)
	}

	plan := reconcile.Reconcile(remotes, reconcile.Spec[domain.RemoteMedia, domain.Media]{
		Key: func(r domain.RemoteMedia) string { return r.ID },
		Lookup: func(key string) (*domain.Media, bool) {
			local, ok := index[key]
			return local, ok
		},
		Build: func(r domain.RemoteMedia) (*domain.Media, error) {
			accountID, ok := mediaAccount[r.ID]
			if !ok {
				return nil, fmt.Errorf("owning account for media %s not mirrored yet", r.ID)
			}
			return &domain.Media{
				MediaID:       r.ID,
				Username:      r.Username,
				Caption:       r.Caption,
				Kind:          domain.MediaKindFromType(r.MediaType),
				MediaURL:      r.MediaURL,
				Timestamp:     r.Timestamp,
				LikeCount:     r.LikeCount,
				CommentsCount: r.CommentsCount,
				AccountID:     accountID,
			}, nil
		},
		Apply: func(r domain.RemoteMedia, local *domain.Media) (bool, error) {
			accountID, ok := mediaAccount[r.ID]
			if !ok {
				return false, fmt.Errorf("owning account for media %s not mirrored yet", r.ID)
			}
			kind := domain.MediaKindFromType(r.MediaType)
			changed := local.Username != r.Username ||
				local.Caption != r.Caption ||
				local.Kind != kind ||
				local.MediaURL != r.MediaURL ||
				local.Timestamp != r.Timestamp ||
				local.LikeCount != r.LikeCount ||
				local.CommentsCount != r.CommentsCount ||
				local.AccountID != accountID
			if !changed {
				return false, nil
			}
			local.Username = r.Username
			local.Caption = r.Caption
			local.Kind = kind
			local.MediaURL = r.MediaURL
			local.Timestamp = r.Timestamp
			local.LikeCount = r.LikeCount
			local.CommentsCount = r.CommentsCount
			local.AccountID = accountID
			return true, nil
		},
	})

	if err := s.MediaRepo.SyncBatch(ctx, plan.Inserts, plan.Updates); err != nil {
		return plan, err
	}
	s.logSkips("media", plan.Skips)
	return plan, nil
}

func (s *SyncerImpl) persistComments(
	ctx context.Context,
	remotes []domain.RemoteComment,
	commentMedia map[string]string,
) (reconcile.Plan[domain.Comment], error) {
	index, err := s.CommentRepo.IndexByExternalID(ctx)
	if err != nil {
		return reconcile.Plan[domain.Comment]{}, fmt.Errorf("failed to index comments: %w", err)
	}

	plan := reconcile.Reconcile(remotes, reconcile.Spec[domain.RemoteComment, domain.Comment]{
		Key: func(r domain.RemoteComment) string { return r.ID },
		Lookup: func(key string) (*domain.Comment, bool) {
			local, ok := index[key]
			return local, ok
		},
		Build: func(r domain.RemoteComment) (*domain.Comment, error) {
			return &domain.Comment{
				CommentID: r.ID,
				Text:      r.Text,
				Username:  r.Username,
				LikeCount: r.LikeCount,
				Timestamp: r.Timestamp,
			}, nil
		},
		Apply: func(r domain.RemoteComment, local *domain.Comment) (bool, error) {
			changed := local.Text != r.Text ||
				local.Username != r.Username ||
				local.LikeCount != r.LikeCount ||
				local.Timestamp != r.Timestamp
			if !changed {
				return false, nil
			}
			local.Text = r.Text
			local.Username = r.Username
			local.LikeCount = r.LikeCount
			local.Timestamp = r.Timestamp
			return true, nil
		},
	})

	if err := s.CommentRepo.SyncBatch(ctx, plan.Inserts, plan.Updates); err != nil {
		return plan, err
	}

	if err := s.relinkComments(ctx, commentMedia); err != nil {
		return plan, err
	}

	s.logSkips("comments", plan.Skips)
	return plan, nil
}

// relinkComments attaches each fetched comment to its media row. Pairs
// whose sides are missing are left for the next pass; already linked
// pairs are untouched.
func (s *SyncerImpl) relinkComments(ctx context.Context, commentMedia map[string]string) error {
	commentIndex, err := s.CommentRepo.IndexByExternalID(ctx)
	if err != nil {
		return fmt.Errorf("failed to reindex comments: %w", err)
	}
	mediaIndex, err := s.MediaRepo.IndexByExternalID(ctx)
	if err != nil {
		return fmt.Errorf("failed to reindex media: %w", err)
	}

	for commentID, mediaID := range commentMedia {
		local, ok := commentIndex[commentID]
		if !ok {
			s.Logger.Warn("Comment not mirrored, link deferred", "comment", commentID)
			continue
		}
		media, ok := mediaIndex[mediaID]
		if !ok {
			s.Logger.Warn("Media not mirrored, link deferred", "media", mediaID)
			continue
		}
		if local.MediaID == media.ID {
			continue
		}
		if err := s.CommentRepo.LinkMedia(ctx, commentID, media.ID); err != nil {
			return fmt.Errorf("failed to link comment %s: %w", commentID, err)
		}
	}
	return nil
}

func (s *SyncerImpl) persistMediaInsights(
	ctx context.Context,
	remotes []domain.RemoteInsight,
	insightMedia map[string]string,
) (reconcile.Plan[domain.Insight], error) {
	mediaIndex, err := s.MediaRepo.IndexByExternalID(ctx)
	if err != nil {
		return reconcile.Plan[domain.Insight]{}, fmt.Errorf("failed to reindex media: %w", err)
	}

	resolveMedia := func(insightID string) (int64, error) {
		mediaID, ok := insightMedia[insightID]
		if !ok {
			return 0, fmt.Errorf("owning media for insight %s unknown", insightID)
		}
		media, ok := mediaIndex[mediaID]
		if !ok {
			return 0, fmt.Errorf("media %s not mirrored yet", mediaID)
		}
		return media.ID, nil
	}

	plan, err := s.reconcileInsights(ctx, remotes, func(r domain.RemoteInsight) (*domain.Insight, error) {
		mediaRowID, err := resolveMedia(r.ID)
		if err != nil {
			return nil, err
		}
		insight := buildInsight(r)
		insight.Kind = domain.InsightKindMedia
		insight.MediaID = mediaRowID
		return insight, nil
	})
	if err != nil {
		return plan, err
	}

	if err := s.InsightRepo.SyncBatch(ctx, plan.Inserts, plan.Updates); err != nil {
		return plan, err
	}
	s.logSkips("media insights", plan.Skips)
	return plan, nil
}
