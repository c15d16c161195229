package igclient

import (
	"context"
	"fmt"

	igdomain "github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
)

// SearchHashtag resolve o nome da hashtag para o id da Graph API
func (c *InstagramClient) SearchHashtag(ctx context.Context, userID, name string) (string, error) {
	params := NewParams().
		AddIf("user_id", userID).
		Add("q", name)

	body, err := c.get(ctx, "ig_hashtag_search", params)
	if err != nil {
		return "", err
	}

	var resp igdomain.HashtagSearchResponse
	if err := decode(body, &resp); err != nil {
		return "", err
	}

	if len(resp.Data) == 0 || resp.Data[0].ID == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrHashtagNotFound, name)
	}

	return resp.Data[0].ID, nil
}

func (c *InstagramClient) GetHashtagRecentMedia(ctx context.Context, hashtagID, userID string, limit int) ([]igdomain.Media, error) {
	if limit <= 0 {
		return []igdomain.Media{}, nil
	}

	path := objectPath(hashtagID, "recent_media")
	params := NewParams().
		AddIf("user_id", userID).
		Add("fields", hashtagMediaFields).
		Add("limit", pageSize(limit))

	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	return c.collectPages(ctx, path, body, limit)
}
