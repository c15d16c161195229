package igclient

import (
	"context"
	"strconv"
	"strings"

	igdomain "github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

const (
	mediaFields        = "id,caption,media_type,media_url,permalink,thumbnail_url,timestamp,username,children{media_url,media_type}"
	hashtagMediaFields = "id,caption,media_type,media_url,permalink,timestamp,username"
)

func pageSize(limit int) string {
	return strconv.Itoa(min(limit, maxPageSize))
}

// GetMedia busca até limit mídias da conta seguindo paging.next
func (c *InstagramClient) GetMedia(ctx context.Context, limit int) ([]igdomain.Media, error) {
	if limit <= 0 {
		return []igdomain.Media{}, nil
	}

	params := NewParams().
		Add("fields", mediaFields).
		Add("limit", pageSize(limit))

	body, err := c.get(ctx, "me/media", params)
	if err != nil {
		return nil, err
	}

	return c.collectPages(ctx, "me/media", body, limit)
}

func (c *InstagramClient) GetMediaType(ctx context.Context, mediaID string) (string, error) {
	body, err := c.get(ctx, objectPath(mediaID), NewParams().Add("fields", "media_type"))
	if err != nil {
		return "", err
	}

	var media igdomain.Media
	if err := decode(body, &media); err != nil {
		return "", err
	}

	return media.MediaType, nil
}

func (c *InstagramClient) GetMediaInsights(ctx context.Context, mediaID string, metrics []string) (*igdomain.InsightsResponse, error) {
	body, err := c.get(ctx, objectPath(mediaID, "insights"), NewParams().Add("metric", strings.Join(metrics, ",")))
	if err != nil {
		return nil, err
	}

	var insights igdomain.InsightsResponse
	if err := decode(body, &insights); err != nil {
		return nil, err
	}

	return &insights, nil
}

// collectPages acumula as páginas até atingir o limite ou acabar o cursor.
// A URL de paging.next já traz o token e os demais parâmetros.
func (c *InstagramClient) collectPages(ctx context.Context, op string, body []byte, limit int) ([]igdomain.Media, error) {
	items := make([]igdomain.Media, 0, limit)

	for page := 1; ; page++ {
		var mediaPage igdomain.MediaPage
		if err := decode(body, &mediaPage); err != nil {
			return nil, err
		}

		items = append(items, mediaPage.Data...)

		if len(items) >= limit || len(mediaPage.Data) == 0 ||
			mediaPage.Paging == nil || mediaPage.Paging.Next == "" {
			break
		}

		log.ForContext(ctx).Debugf("igclient: %s fetching page %d", op, page+1)

		var err error
		body, err = c.do(ctx, "GET "+op+" (next page)", mediaPage.Paging.Next)
		if err != nil {
			return nil, err
		}
	}

	if len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
