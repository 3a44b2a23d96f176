package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/publisher"
	"github.com/orgball2608/meta-graph-sync/internal/syncer"
	"github.com/orgball2608/meta-graph-sync/pkg/config"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSyncer struct {
	lastEntity string
	err        error
}

func (f *fakeSyncer) SyncAll(context.Context) (*domain.SyncReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SyncReport{
		Phases:     []domain.PhaseReport{{Phase: "categories", Inserted: 2}},
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
	}, nil
}

func (f *fakeSyncer) SyncEntity(_ context.Context, entity string) (*domain.SyncReport, error) {
	f.lastEntity = entity
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SyncReport{
		Phases: []domain.PhaseReport{{Phase: entity, Inserted: 1}},
	}, nil
}

func (f *fakeSyncer) ScheduleSync(context.Context) error { return nil }

func (f *fakeSyncer) StopScheduler() error { return nil }

type fakePublisher struct {
	report    publisher.Report
	err       error
	submitErr error

	lastPost    domain.PostPublication
	lastComment string
}

func (f *fakePublisher) SubmitPost(_ context.Context, p domain.PostPublication) (int64, error) {
	if f.submitErr != nil {
		return 0, f.submitErr
	}
	f.lastPost = p
	return 7, nil
}

func (f *fakePublisher) SubmitStory(context.Context, domain.StoryPublication) (int64, error) {
	if f.submitErr != nil {
		return 0, f.submitErr
	}
	return 8, nil
}

func (f *fakePublisher) SubmitComment(_ context.Context, _ int64, mediaID string, _ string) (int64, error) {
	if f.submitErr != nil {
		return 0, f.submitErr
	}
	f.lastComment = mediaID
	return 9, nil
}

func (f *fakePublisher) PublishPost(context.Context, domain.PostPublication) error   { return nil }
func (f *fakePublisher) PublishStory(context.Context, domain.StoryPublication) error { return nil }
func (f *fakePublisher) PublishComment(context.Context, domain.CommentPublication) error {
	return nil
}

func (f *fakePublisher) PublishPending(context.Context) (*publisher.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.report, nil
}

func newTestServer(t *testing.T, sy syncer.Client, pub publisher.Client) *httptest.Server {
	t.Helper()

	srv := New(Opts{
		Syncer:    sy,
		Publisher: pub,
		Logger:    logger.New(logger.Opts{}),
		Config:    &config.Config{},
	})

	ts := httptest.NewServer(srv.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, &fakeSyncer{}, &fakePublisher{})

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSyncAllEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, &fakeSyncer{}, &fakePublisher{})

	resp, err := http.Post(ts.URL+"/sync", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report domain.SyncReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	require.Len(t, report.Phases, 1)
	assert.Equal(t, 2, report.Phases[0].Inserted)
}

func TestSyncEntityEndpoint(t *testing.T) {
	t.Parallel()

	sy := &fakeSyncer{}
	ts := newTestServer(t, sy, &fakePublisher{})

	resp, err := http.Post(ts.URL+"/sync/media", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "media", sy.lastEntity)
}

func TestSyncEntityUnknownReturns404(t *testing.T) {
	t.Parallel()

	sy := &fakeSyncer{err: syncer.ErrUnknownEntity}
	ts := newTestServer(t, sy, &fakePublisher{})

	resp, err := http.Post(ts.URL+"/sync/widgets", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSyncFailureReturns502(t *testing.T) {
	t.Parallel()

	sy := &fakeSyncer{err: errors.New("graph api down")}
	ts := newTestServer(t, sy, &fakePublisher{})

	resp, err := http.Post(ts.URL+"/sync", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "graph api down")
}

func TestSubmitPostEndpoint(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	ts := newTestServer(t, &fakeSyncer{}, pub)

	body := strings.NewReader(`{"user_id":1,"file_url":"https://cdn/a.jpg,https://cdn/b.jpg","caption":"set","kind":"image","carousel":true}`)
	resp, err := http.Post(ts.URL+"/publish/post", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(7), created["id"])

	assert.Equal(t, domain.MediaKindImage, pub.lastPost.Kind)
	assert.True(t, pub.lastPost.Carousel)
}

func TestSubmitPostInvalidReturns400(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{submitErr: publisher.ErrInvalidIntent}
	ts := newTestServer(t, &fakeSyncer{}, pub)

	body := strings.NewReader(`{"file_url":"https://cdn/clip.mp4","kind":"gif"}`)
	resp, err := http.Post(ts.URL+"/publish/post", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitCommentEndpoint(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	ts := newTestServer(t, &fakeSyncer{}, pub)

	body := strings.NewReader(`{"user_id":1,"media_id":"m-1","text":"nice"}`)
	resp, err := http.Post(ts.URL+"/publish/comment", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "m-1", pub.lastComment)
}

func TestSubmitCommentUnknownMediaReturns404(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{submitErr: publisher.ErrMediaNotFound}
	ts := newTestServer(t, &fakeSyncer{}, pub)

	body := strings.NewReader(`{"media_id":"m-404","text":"nice"}`)
	resp, err := http.Post(ts.URL+"/publish/comment", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitStoryEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, &fakeSyncer{}, &fakePublisher{})

	body := strings.NewReader(`{"user_id":1,"file_url":"https://cdn/s.jpg","kind":"image"}`)
	resp, err := http.Post(ts.URL+"/publish/story", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(8), created["id"])
}

func TestPublishPendingEndpoint(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{report: publisher.Report{Posts: 2, Comments: 1}}
	ts := newTestServer(t, &fakeSyncer{}, pub)

	resp, err := http.Post(ts.URL+"/publish/pending", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report publisher.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 2, report.Posts)
	assert.Equal(t, 1, report.Comments)
}
