package igclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	igdomain "github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

type Client interface {
	GetAccountInsights(ctx context.Context, accountID string, params *Params) (domain.Document, error)
	GetProfile(ctx context.Context) (*igdomain.Profile, error)
	GetMedia(ctx context.Context, limit int) ([]igdomain.Media, error)
	GetMediaType(ctx context.Context, mediaID string) (string, error)
	GetMediaInsights(ctx context.Context, mediaID string, metrics []string) (*igdomain.InsightsResponse, error)
	GetUserInsights(ctx context.Context) (*igdomain.InsightsResponse, error)
	SearchHashtag(ctx context.Context, userID, name string) (string, error)
	GetHashtagRecentMedia(ctx context.Context, hashtagID, userID string, limit int) ([]igdomain.Media, error)
	RefreshAccessToken(ctx context.Context) (*igdomain.TokenResponse, error)
}

// Tamanho máximo de página aceito pela Graph API
const maxPageSize = 100

type InstagramClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &InstagramClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Instagram.Timeout},
	}
}

func (c *InstagramClient) endpoint(path string) string {
	return fmt.Sprintf("%s/%s", c.Cfg.Instagram.URL, strings.TrimLeft(path, "/"))
}

// objectPath escapa o id recebido de fora para que ele ocupe um único segmento do caminho
func objectPath(id string, edges ...string) string {
	return strings.Join(append([]string{url.PathEscape(id)}, edges...), "/")
}

// get monta a URL do endpoint e anexa o token padrão quando a chamada não trouxer um
func (c *InstagramClient) get(ctx context.Context, path string, params *Params) ([]byte, error) {
	if params == nil {
		params = NewParams()
	}
	if !params.Has("access_token") {
		params.Add("access_token", c.Cfg.Instagram.AccessToken)
	}

	return c.do(ctx, "GET "+path, c.endpoint(path)+"?"+params.Encode())
}

// do executa a requisição e normaliza os erros em UpstreamError e NetworkError
func (c *InstagramClient) do(ctx context.Context, op, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "igclient: build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warnf("igclient: %s failed", op)
		return nil, &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamErr := newUpstreamError(resp.StatusCode, body)
		log.ForContext(ctx).WithFields(log.Fields{
			"status_code": resp.StatusCode,
			"error":       upstreamErr.Message,
		}).Warnf("igclient: %s returned an error", op)
		return nil, upstreamErr
	}

	return body, nil
}

func newUpstreamError(status int, body []byte) *domain.UpstreamError {
	upstreamErr := &domain.UpstreamError{StatusCode: status}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		upstreamErr.Body = string(body)
		upstreamErr.Message = http.StatusText(status)
		return upstreamErr
	}
	upstreamErr.Body = decoded

	upstreamErr.Message = http.StatusText(status)

	var errResp igdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == nil {
		return upstreamErr
	}
	if errResp.Error.Message != "" {
		upstreamErr.Message = errResp.Error.Message
	}
	if errResp.IsTokenExpired() {
		upstreamErr.TokenExpired = true
		upstreamErr.Message = "Instagram access token is invalid or expired: " + upstreamErr.Message
	}

	return upstreamErr
}

// decode converte um corpo 2xx; JSON inválido vira erro de upstream (502)
func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &domain.UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    "invalid JSON from Instagram API",
			Body:       string(body),
		}
	}
	return nil
}

// decodeDocument preserva os números como json.Number para repassar sem perda
func decodeDocument(body []byte) (domain.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc domain.Document
	if err := dec.Decode(&doc); err != nil || doc == nil {
		return nil, &domain.UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    "invalid JSON from Instagram API",
			Body:       string(body),
		}
	}
	return doc, nil
}
