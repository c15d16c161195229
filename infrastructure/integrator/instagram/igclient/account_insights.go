package igclient

import (
	"context"

	"github.com/vfg2006/instagram-insights-api/internal/domain"
)

// GetAccountInsights repassa a consulta para {account_id}/insights sem retry
func (c *InstagramClient) GetAccountInsights(ctx context.Context, accountID string, params *Params) (domain.Document, error) {
	body, err := c.get(ctx, objectPath(accountID, "insights"), params)
	if err != nil {
		return nil, err
	}

	return decodeDocument(body)
}
