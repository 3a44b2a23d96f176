package graphimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/meta"
	"github.com/orgball2608/meta-graph-sync/pkg/retry"
)

// Graph API response shapes. Fields mirror the JSON keys of the
// endpoints this client reads.

type categoryPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type accountPayload struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	FollowsCount      int    `json:"follows_count"`
	FollowersCount    int    `json:"followers_count"`
	MediaCount        int    `json:"media_count"`
	ProfilePictureURL string `json:"profile_picture_url"`
	Website           string `json:"website"`
	Biography         string `json:"biography"`
}

type pagePayload struct {
	ID                       string            `json:"id"`
	Name                     string            `json:"name"`
	Category                 string            `json:"category"`
	CategoryList             []categoryPayload `json:"category_list"`
	AccessToken              string            `json:"access_token"`
	Tasks                    []string          `json:"tasks"`
	InstagramBusinessAccount *accountPayload   `json:"instagram_business_account"`
}

type mediaPayload struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Caption       string `json:"caption"`
	MediaType     string `json:"media_type"`
	MediaURL      string `json:"media_url"`
	Timestamp     string `json:"timestamp"`
	LikeCount     int    `json:"like_count"`
	CommentsCount int    `json:"comments_count"`
}

type commentPayload struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	LikeCount int    `json:"like_count"`
	Timestamp string `json:"timestamp"`
}

type storyPayload struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	MediaType string `json:"media_type"`
	MediaURL  string `json:"media_url"`
	Timestamp string `json:"timestamp"`
}

type insightPayload struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Period      string                `json:"period"`
	Values      []domain.InsightValue `json:"values"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
}

// envelope is the standard Graph API list response.
type envelope[T any] struct {
	Data   []T `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// mapGraphError translates a Graph API error payload into the facade's
// sentinel errors where one applies.
func mapGraphError(ge graphError) error {
	err := fmt.Errorf("graph api error %d (%s): %s", ge.Error.Code, ge.Error.Type, ge.Error.Message)
	switch ge.Error.Code {
	case 102, 190:
		return fmt.Errorf("%w: %v", meta.ErrUnauthorized, err)
	case 4, 17, 32, 613:
		return fmt.Errorf("%w: %v", meta.ErrRateLimited, err)
	}
	return err
}

func (g *GraphImpl) buildURL(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", g.token)
	return g.baseURL + path + "?" + params.Encode()
}

// getJSON performs one GET with rate limiting and retry. Token
// rejections are permanent and never retried.
func (g *GraphImpl) getJSON(ctx context.Context, operation string, rawURL string, out any) error {
	attempt := func() error {
		if err := g.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			var ge graphError
			if err := json.Unmarshal(body, &ge); err != nil {
				return fmt.Errorf("unexpected status %d", resp.StatusCode)
			}
			mapped := mapGraphError(ge)
			if errors.Is(mapped, meta.ErrUnauthorized) {
				return backoff.Permanent(mapped)
			}
			return mapped
		}

		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	}

	return retry.Do(ctx, g.Logger, operation, attempt, g.retryCfg)
}

// fetchAll walks the paging cursor until the endpoint is exhausted.
func fetchAll[T any](ctx context.Context, g *GraphImpl, operation string, path string, params url.Values) ([]T, error) {
	var all []T

	next := g.buildURL(path, params)
	for next != "" {
		var page envelope[T]
		if err := g.getJSON(ctx, operation, next, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Data...)
		next = page.Paging.Next
	}
	return all, nil
}

const (
	pageFields = "id,name,category,category_list{id,name},access_token,tasks," +
		"instagram_business_account{id,username,follows_count,followers_count,media_count,profile_picture_url,website,biography}"
	mediaFields   = "id,username,caption,media_type,media_url,timestamp,like_count,comments_count"
	commentFields = "id,text,username,like_count,timestamp"
	storyFields   = "id,username,media_type,media_url,timestamp"

	accountMetrics = "impressions,reach,profile_views"
	mediaMetrics   = "impressions,reach,saved"
)

func (g *GraphImpl) GetAccounts(ctx context.Context) ([]domain.RemotePage, error) {
	payloads, err := fetchAll[pagePayload](ctx, g, "GetAccounts", "/me/accounts", url.Values{
		"fields": {pageFields},
	})
	if err != nil {
		return nil, err
	}

	pages := make([]domain.RemotePage, 0, len(payloads))
	for _, p := range payloads {
		page := domain.RemotePage{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			AccessToken: p.AccessToken,
			Tasks:       p.Tasks,
		}
		for _, c := range p.CategoryList {
			page.CategoryList = append(page.CategoryList, domain.RemoteCategory(c))
		}
		if p.InstagramBusinessAccount != nil {
			account := domain.RemoteAccount(*p.InstagramBusinessAccount)
			page.InstagramBusinessAccount = &account
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (g *GraphImpl) GetCurrentUser(ctx context.Context) (*domain.RemoteUser, error) {
	var payload userPayload
	rawURL := g.buildURL("/me", url.Values{"fields": {"id,name,email"}})
	if err := g.getJSON(ctx, "GetCurrentUser", rawURL, &payload); err != nil {
		return nil, err
	}
	user := domain.RemoteUser(payload)
	return &user, nil
}

func (g *GraphImpl) GetMedia(ctx context.Context, accountID string) ([]domain.RemoteMedia, error) {
	payloads, err := fetchAll[mediaPayload](ctx, g, "GetMedia", "/"+accountID+"/media", url.Values{
		"fields": {mediaFields},
	})
	if err != nil {
		return nil, err
	}

	media := make([]domain.RemoteMedia, 0, len(payloads))
	for _, p := range payloads {
		media = append(media, domain.RemoteMedia(p))
	}
	return media, nil
}

func (g *GraphImpl) GetComments(ctx context.Context, mediaID string) ([]domain.RemoteComment, error) {
	payloads, err := fetchAll[commentPayload](ctx, g, "GetComments", "/"+mediaID+"/comments", url.Values{
		"fields": {commentFields},
	})
	if err != nil {
		return nil, err
	}

	comments := make([]domain.RemoteComment, 0, len(payloads))
	for _, p := range payloads {
		comments = append(comments, domain.RemoteComment(p))
	}
	return comments, nil
}

func (g *GraphImpl) GetStories(ctx context.Context, accountID string) ([]domain.RemoteStory, error) {
	payloads, err := fetchAll[storyPayload](ctx, g, "GetStories", "/"+accountID+"/stories", url.Values{
		"fields": {storyFields},
	})
	if err != nil {
		return nil, err
	}

	stories := make([]domain.RemoteStory, 0, len(payloads))
	for _, p := range payloads {
		stories = append(stories, domain.RemoteStory(p))
	}
	return stories, nil
}

func (g *GraphImpl) GetAccountInsights(ctx context.Context, accountID string) ([]domain.RemoteInsight, error) {
	return g.getInsights(ctx, "GetAccountInsights", accountID, accountMetrics, "day")
}

func (g *GraphImpl) GetMediaInsights(ctx context.Context, mediaID string) ([]domain.RemoteInsight, error) {
	return g.getInsights(ctx, "GetMediaInsights", mediaID, mediaMetrics, "lifetime")
}

func (g *GraphImpl) getInsights(ctx context.Context, operation, ownerID, metrics, period string) ([]domain.RemoteInsight, error) {
	payloads, err := fetchAll[insightPayload](ctx, g, operation, "/"+ownerID+"/insights", url.Values{
		"metric": {metrics},
		"period": {period},
	})
	if err != nil {
		return nil, err
	}

	insights := make([]domain.RemoteInsight, 0, len(payloads))
	for _, p := range payloads {
		insights = append(insights, domain.RemoteInsight(p))
	}
	return insights, nil
}
