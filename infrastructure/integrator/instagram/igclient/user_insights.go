package igclient

import (
	"context"

	igdomain "github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/domain"
)

const userInsightMetrics = "audience_gender_age,audience_locale,audience_country,online_followers"

func (c *InstagramClient) GetUserInsights(ctx context.Context) (*igdomain.InsightsResponse, error) {
	params := NewParams().
		Add("metric", userInsightMetrics).
		Add("period", "lifetime")

	body, err := c.get(ctx, "me/insights", params)
	if err != nil {
		return nil, err
	}

	var insights igdomain.InsightsResponse
	if err := decode(body, &insights); err != nil {
		return nil, err
	}

	return &insights, nil
}
