package graphimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Publishing follows the Graph API container flow: create a media
// container, then publish it. Posts are never retried; a duplicate
// publish is worse than a missed one.

type containerPayload struct {
	ID string `json:"id"`
}

func (g *GraphImpl) postJSON(ctx context.Context, path string, params url.Values) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	rawURL := g.buildURL(path, params)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ge graphError
		if err := json.Unmarshal(body, &ge); err != nil {
			return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return "", mapGraphError(ge)
	}

	var payload containerPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return payload.ID, nil
}

func (g *GraphImpl) createContainer(ctx context.Context, params url.Values) (string, error) {
	return g.postJSON(ctx, "/"+g.accountID+"/media", params)
}

func (g *GraphImpl) publishContainer(ctx context.Context, containerID string) error {
	_, err := g.postJSON(ctx, "/"+g.accountID+"/media_publish", url.Values{
		"creation_id": {containerID},
	})
	return err
}

func (g *GraphImpl) PublishPhoto(ctx context.Context, imageURL string, caption string) error {
	containerID, err := g.createContainer(ctx, url.Values{
		"image_url": {imageURL},
		"caption":   {caption},
	})
	if err != nil {
		return fmt.Errorf("failed to create photo container: %w", err)
	}
	return g.publishContainer(ctx, containerID)
}

func (g *GraphImpl) PublishVideo(ctx context.Context, videoURL string, caption string) error {
	containerID, err := g.createContainer(ctx, url.Values{
		"media_type": {"VIDEO"},
		"video_url":  {videoURL},
		"caption":    {caption},
	})
	if err != nil {
		return fmt.Errorf("failed to create video container: %w", err)
	}
	return g.publishContainer(ctx, containerID)
}

func (g *GraphImpl) PublishCarousel(ctx context.Context, imageURLs []string, caption string) error {
	children := make([]string, 0, len(imageURLs))
	for _, imageURL := range imageURLs {
		childID, err := g.createContainer(ctx, url.Values{
			"image_url":        {imageURL},
			"is_carousel_item": {"true"},
		})
		if err != nil {
			return fmt.Errorf("failed to create carousel item: %w", err)
		}
		children = append(children, childID)
	}

	containerID, err := g.createContainer(ctx, url.Values{
		"media_type": {"CAROUSEL"},
		"children":   {strings.Join(children, ",")},
		"caption":    {caption},
	})
	if err != nil {
		return fmt.Errorf("failed to create carousel container: %w", err)
	}
	return g.publishContainer(ctx, containerID)
}

func (g *GraphImpl) PublishStory(ctx context.Context, imageURL string) error {
	containerID, err := g.createContainer(ctx, url.Values{
		"media_type": {"STORIES"},
		"image_url":  {imageURL},
	})
	if err != nil {
		return fmt.Errorf("failed to create story container: %w", err)
	}
	return g.publishContainer(ctx, containerID)
}

func (g *GraphImpl) PutComment(ctx context.Context, mediaID string, text string) error {
	_, err := g.postJSON(ctx, "/"+mediaID+"/comments", url.Values{
		"message": {text},
	})
	if err != nil {
		return fmt.Errorf("failed to put comment: %w", err)
	}
	return nil
}
