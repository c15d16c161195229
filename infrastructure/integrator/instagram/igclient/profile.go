package igclient

import (
	"context"

	igdomain "github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/domain"
)

const profileFields = "id,username,account_type,media_count"

func (c *InstagramClient) GetProfile(ctx context.Context) (*igdomain.Profile, error) {
	body, err := c.get(ctx, "me", NewParams().Add("fields", profileFields))
	if err != nil {
		return nil, err
	}

	var profile igdomain.Profile
	if err := decode(body, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// RefreshAccessToken renova o token de longa duração configurado
func (c *InstagramClient) RefreshAccessToken(ctx context.Context) (*igdomain.TokenResponse, error) {
	params := NewParams().
		Add("grant_type", "ig_refresh_token").
		Add("access_token", c.Cfg.Instagram.AccessToken)

	// refresh_access_token não é versionado
	body, err := c.do(ctx, "GET refresh_access_token", c.Cfg.Instagram.BaseURL+"/refresh_access_token?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var token igdomain.TokenResponse
	if err := decode(body, &token); err != nil {
		return nil, err
	}

	return &token, nil
}
