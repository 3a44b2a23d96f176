package syncerimpl

import (
	"context"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/media"
)

// In-memory repositories with the same conflict-absorbing semantics as
// the pgx ones: inserts drop on an existing external id, updates keep
// the surrogate id. Indexes hand out copies so nothing persists without
// a SyncBatch call.

type fakeCategoryRepo struct {
	rows   map[string]domain.Category
	nextID int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[string]domain.Category{}}
}

func (f *fakeCategoryRepo) IndexByExternalID(context.Context) (map[string]*domain.Category, error) {
	index := make(map[string]*domain.Category, len(f.rows))
	for k, v := range f.rows {
		row := v
		index[k] = &row
	}
	return index, nil
}

func (f *fakeCategoryRepo) SyncBatch(_ context.Context, toInsert []*domain.Category, toUpdate []*domain.Category) error {
	for _, c := range toInsert {
		if _, exists := f.rows[c.CategoryID]; exists {
			continue
		}
		f.nextID++
		c.ID = f.nextID
		f.rows[c.CategoryID] = *c
	}
	for _, c := range toUpdate {
		f.rows[c.CategoryID] = *c
	}
	return nil
}

type fakeUserRepo struct {
	rows   map[string]domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: map[string]domain.User{}}
}

func (f *fakeUserRepo) IndexByExternalID(context.Context) (map[string]*domain.User, error) {
	index := make(map[string]*domain.User, len(f.rows))
	for k, v := range f.rows {
		row := v
		index[k] = &row
	}
	return index, nil
}

func (f *fakeUserRepo) SyncBatch(_ context.Context, toInsert []*domain.User, toUpdate []*domain.User) error {
	for _, u := range toInsert {
		if _, exists := f.rows[u.UserID]; exists {
			continue
		}
		f.nextID++
		u.ID = f.nextID
		f.rows[u.UserID] = *u
	}
	for _, u := range toUpdate {
		f.rows[u.UserID] = *u
	}
	return nil
}

type fakeAccountRepo struct {
	rows   map[string]domain.Account
	nextID int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{rows: map[string]domain.Account{}}
}

func (f *fakeAccountRepo) IndexByExternalID(context.Context) (map[string]*domain.Account, error) {
	index := make(map[string]*domain.Account, len(f.rows))
	for k, v := range f.rows {
		row := v
		index[k] = &row
	}
	return index, nil
}

func (f *fakeAccountRepo) SyncBatch(_ context.Context, toInsert []*domain.Account, toUpdate []*domain.Account) error {
	for _, a := range toInsert {
		if _, exists := f.rows[a.AccountID]; exists {
			continue
		}
		f.nextID++
		a.ID = f.nextID
		f.rows[a.AccountID] = *a
	}
	for _, a := range toUpdate {
		f.rows[a.AccountID] = *a
	}
	return nil
}

type fakePageRepo struct {
	rows       map[string]domain.Page
	categories map[int64][]int64
	nextID     int64
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{
		rows:       map[string]domain.Page{},
		categories: map[int64][]int64{},
	}
}

func (f *fakePageRepo) IndexByExternalID(context.Context) (map[string]*domain.Page, error) {
	index := make(map[string]*domain.Page, len(f.rows))
	for k, v := range f.rows {
		row := v
		index[k] = &row
	}
	return index, nil
}

func (f *fakePageRepo) SyncBatch(_ context.Context, toInsert []*domain.Page, toUpdate []*domain.Page) error {
	for _, p := range toInsert {
		if _, exists := f.rows[p.PageID]; exists {
			continue
		}
		f.nextID++
		p.ID = f.nextID
		f.rows[p.PageID] = *p
	}
	for _, p := range toUpdate {
		f.rows[p.PageID] = *p
	}
	return nil
}

func (f *fakePageRepo) ReplaceCategories(_ context.Context, pageID int64, categoryIDs []int64) error {
	f.categories[pageID] = categoryIDs
	return nil
}

type fakeMediaRepo struct {
	rows   map[string]domain.Media
	nextID int64
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{rows: map[string]domain.Media{}}
}

func (f *fakeMediaRepo) IndexByExternalID(context.Context) (map[string]*domain.Media, error) {
	index := make(map[string]*domain.Media, len(f.rows))
	for k, v := range f.rows {
		row := v
		index[k] = &row
	}
	return index, nil
}

func (f *fakeMediaRepo) GetByExternalID(_ context.Context, mediaID string) (*domain.Media, error) {
	if row, ok := f.rows[mediaID]; ok {
		return &row, nil
	}
	return nil, media.ErrNotFound
}

func (f *fakeMediaRepo) SyncBatch(_ context.Context, toInsert []*domain.Media, toUpdate []*domain.Media) error {
	for _, m := range toInsert {
		if _, exists := f.rows[m.MediaID]; exists {
			continue
		}
		f.nextID++
		m.ID = f.nextID
		f.rows[m.MediaID] = *m
	}
	for _, m := range toUpdate {
		f.rows[m.MediaID] = *m
	}
	return nil
}

type fakeCommentRepo struct {
	rows   map[string]domain.Comment
	nextID int64
	links  int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{rows: map[string]domain.Comment{}}
}

func (f *fakeCommentRepo) IndexByExternalID(context.Context) (map[string]*domain.Comment, error) {
	index := make(map[string]*domain.Comment, len(f.rows))
	for k, v := range f.rows {
		row := v
		index[k] = &row
	}
	return index, nil
}

func (f *fakeCommentRepo) SyncBatch(_ context.Context, toInsert []*domain.Comment, toUpdate []*domain.Comment) error {
	for _, c := range toInsert {
		if _, exists := f.rows[c.CommentID]; exists {
			continue
		}
		f.nextID++
		c.ID = f.nextID
		f.rows[c.CommentID] = *c
	}
	for _, c := range toUpdate {
		f.rows[c.CommentID] = *c
	}
	return nil
}

func (f *fakeCommentRepo) LinkMedia(_ context.Context, commentID string, mediaID int64) error {
	row := f.rows[commentID]
	row.MediaID = mediaID
	f.rows[commentID] = row
	f.links++
	return nil
}

type fakeStoryRepo struct {
	rows   map[string]domain.Story
	nextID int64
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{rows: map[string]domain.Story{}}
}

func (f *fakeStoryRepo) IndexByExternalID(context.Context) (map[string]*domain.Story, error) {
	index := make(map[string]*domain.Story, len(f.rows))
	for k, v := range f.rows {
		row := v
		index[k] = &row
	}
	return index, nil
}

func (f *fakeStoryRepo) SyncBatch(_ context.Context, toInsert []*domain.Story, toUpdate []*domain.Story) error {
	for _, s := range toInsert {
		if _, exists := f.rows[s.StoryID]; exists {
			continue
		}
		f.nextID++
		s.ID = f.nextID
		f.rows[s.StoryID] = *s
	}
	for _, s := range toUpdate {
		f.rows[s.StoryID] = *s
	}
	return nil
}

type fakeInsightRepo struct {
	rows   map[string]domain.Insight
	nextID int64
}

func newFakeInsightRepo() *fakeInsightRepo {
	return &fakeInsightRepo{rows: map[string]domain.Insight{}}
}

func (f *fakeInsightRepo) IndexByExternalID(context.Context) (map[string]*domain.Insight, error) {
	index := make(map[string]*domain.Insight, len(f.rows))
	for k, v := range f.rows {
		row := v
		index[k] = &row
	}
	return index, nil
}

func (f *fakeInsightRepo) SyncBatch(_ context.Context, toInsert []*domain.Insight, toUpdate []*domain.Insight) error {
	for _, i := range toInsert {
		if _, exists := f.rows[i.InsightID]; exists {
			continue
		}
		f.nextID++
		i.ID = f.nextID
		f.rows[i.InsightID] = *i
	}
	for _, i := range toUpdate {
		f.rows[i.InsightID] = *i
	}
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(msg string) {
	f.messages = append(f.messages, msg)
}
