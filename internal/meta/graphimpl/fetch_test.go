package graphimpl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/orgball2608/meta-graph-sync/internal/meta"
	"github.com/orgball2608/meta-graph-sync/internal/ratelimit"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"github.com/orgball2608/meta-graph-sync/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *GraphImpl {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &GraphImpl{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		token:      "test-token",
		accountID:  "acc-1",
		limiter:    ratelimit.NewAPILimiter(1000, 1000),
		retryCfg: retry.Config{
			MaxRetries:      1,
			InitialInterval: 1,
			MaxInterval:     1,
			Multiplier:      1,
		},
		Logger: logger.New(logger.Opts{}),
	}
}

func TestGetMediaFollowsPaging(t *testing.T) {
	t.Parallel()

	var baseURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/acc-1/media", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))

		page := map[string]any{
			"data": []map[string]any{
				{"id": "m-1", "media_type": "IMAGE", "like_count": 10},
			},
			"paging": map[string]any{"next": baseURL + "/acc-1/media/page2"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(page))
	})
	mux.HandleFunc("/acc-1/media/page2", func(w http.ResponseWriter, r *http.Request) {
		page := map[string]any{
			"data": []map[string]any{
				{"id": "m-2", "media_type": "VIDEO"},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(page))
	})

	g := newTestClient(t, mux)
	baseURL = g.baseURL

	media, err := g.GetMedia(context.Background(), "acc-1")
	require.NoError(t, err)

	require.Len(t, media, 2)
	assert.Equal(t, "m-1", media[0].ID)
	assert.Equal(t, 10, media[0].LikeCount)
	assert.Equal(t, "m-2", media[1].ID)
}

func TestGetCurrentUserMapsTokenRejection(t *testing.T) {
	t.Parallel()

	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "Invalid OAuth access token.",
				"type":    "OAuthException",
				"code":    190,
			},
		})
	})

	g := newTestClient(t, mux)

	_, err := g.GetCurrentUser(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, meta.ErrUnauthorized)
	assert.Equal(t, 1, calls, "token rejection must not be retried")
}

func TestGetAccountsMapsRateLimit(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/me/accounts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "Application request limit reached",
				"type":    "OAuthException",
				"code":    4,
			},
		})
	})

	g := newTestClient(t, mux)

	_, err := g.GetAccounts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, meta.ErrRateLimited)
}

func TestPublishPhotoUsesContainerFlow(t *testing.T) {
	t.Parallel()

	var publishedCreation string
	mux := http.NewServeMux()
	mux.HandleFunc("/acc-1/media", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "https://cdn/img.jpg", r.URL.Query().Get("image_url"))
		assert.Equal(t, "hi", r.URL.Query().Get("caption"))
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "container-1"})
	})
	mux.HandleFunc("/acc-1/media_publish", func(w http.ResponseWriter, r *http.Request) {
		publishedCreation = r.URL.Query().Get("creation_id")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "post-1"})
	})

	g := newTestClient(t, mux)

	err := g.PublishPhoto(context.Background(), "https://cdn/img.jpg", "hi")
	require.NoError(t, err)
	assert.Equal(t, "container-1", publishedCreation)
}

func TestBuildURLCarriesToken(t *testing.T) {
	t.Parallel()

	g := &GraphImpl{baseURL: "https://graph.example.com/v19.0", token: "tok"}
	raw := g.buildURL("/me", url.Values{"fields": {"id,name"}})

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "tok", parsed.Query().Get("access_token"))
	assert.Equal(t, "id,name", parsed.Query().Get("fields"))
}
