package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	igdomain "github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/domain"
	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/instagram-insights-api/internal/catalog"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks

// InstagramIntegrator é a fonte de dados usada pelo agregador.
// As chamadas são repetidas com backoff exponencial em falhas transitórias.
type InstagramIntegrator interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	GetMedia(ctx context.Context, limit int) ([]domain.Media, error)
	GetMediaInsights(ctx context.Context, mediaID, mediaType string) (*domain.MediaInsights, error)
	GetUserInsights(ctx context.Context) (*domain.UserInsights, error)
	SearchHashtag(ctx context.Context, userID, name string) (*domain.Hashtag, error)
	GetHashtagMedia(ctx context.Context, hashtagID, userID string, limit int) ([]domain.Media, error)
}

type Integrator struct {
	cfg    *config.Config
	Client igclient.Client
}

func New(cfg *config.Config, client igclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// retry executa op com backoff; erros não transitórios encerram na hora
func retry[T any](ctx context.Context, cfg *config.Config, op string, fn func() (T, error)) (T, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = cfg.Instagram.RetryInitialInterval
	exp.MaxInterval = cfg.Instagram.RetryMaxInterval
	exp.MaxElapsedTime = 0

	attempts := max(cfg.Instagram.RetryMaxAttempts, 1)
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)

	attempt := 0
	return backoff.RetryNotifyWithData[T](func() (T, error) {
		attempt++
		result, err := fn()
		if err != nil && !isRetryable(err) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}, policy, func(err error, wait time.Duration) {
		log.ForContext(ctx).WithFields(log.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warnf("instagram: %s failed, retrying in %s", op, wait)
	})
}

func isRetryable(err error) bool {
	var networkErr *domain.NetworkError
	if errors.As(err, &networkErr) {
		return true
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Temporary()
	}

	return false
}

func (s *Integrator) GetProfile(ctx context.Context) (*domain.Profile, error) {
	profile, err := retry(ctx, s.cfg, "get profile", func() (*igdomain.Profile, error) {
		return s.Client.GetProfile(ctx)
	})
	if err != nil {
		return nil, err
	}

	return &domain.Profile{
		ID:          profile.ID,
		Username:    profile.Username,
		AccountType: profile.AccountType,
		MediaCount:  profile.MediaCount,
	}, nil
}

func (s *Integrator) GetMedia(ctx context.Context, limit int) ([]domain.Media, error) {
	media, err := retry(ctx, s.cfg, "get media", func() ([]igdomain.Media, error) {
		return s.Client.GetMedia(ctx, limit)
	})
	if err != nil {
		return nil, err
	}

	return factoryMedia(media), nil
}

// GetMediaInsights consulta as métricas do tipo da mídia.
// Sem mediaType informado, o tipo é buscado na Graph API.
func (s *Integrator) GetMediaInsights(ctx context.Context, mediaID, mediaType string) (*domain.MediaInsights, error) {
	if mediaType == "" {
		var err error
		mediaType, err = retry(ctx, s.cfg, "get media type", func() (string, error) {
			return s.Client.GetMediaType(ctx, mediaID)
		})
		if err != nil {
			return nil, err
		}
	}

	metrics, ok := catalog.MediaMetrics(mediaType)
	if !ok {
		return nil, &domain.ValidationError{
			Field:   "media_type",
			Message: fmt.Sprintf("unsupported media type %q", mediaType),
			Details: map[string]any{"allowed": catalog.MediaTypes()},
		}
	}
	resp, err := retry(ctx, s.cfg, "get media insights", func() (*igdomain.InsightsResponse, error) {
		return s.Client.GetMediaInsights(ctx, mediaID, metrics)
	})
	if err != nil {
		return nil, err
	}

	insights := &domain.MediaInsights{
		MediaID:   mediaID,
		MediaType: mediaType,
	}

	for _, metric := range resp.Data {
		value := rawToInt64(metric.FirstValue())
		if value == nil {
			continue
		}

		switch catalog.NormalizeMediaMetric(metric.Name) {
		case "engagement":
			insights.Engagement = value
		case "impressions":
			insights.Impressions = value
		case "reach":
			insights.Reach = value
		case "saved":
			insights.Saved = value
		case "video_views":
			insights.VideoViews = value
		}
	}

	return insights, nil
}

func (s *Integrator) GetUserInsights(ctx context.Context) (*domain.UserInsights, error) {
	resp, err := retry(ctx, s.cfg, "get user insights", func() (*igdomain.InsightsResponse, error) {
		return s.Client.GetUserInsights(ctx)
	})
	if err != nil {
		return nil, err
	}

	insights := &domain.UserInsights{}
	for _, metric := range resp.Data {
		value := metric.FirstValue()
		switch metric.Name {
		case "audience_gender_age":
			insights.AudienceGenderAge = value
		case "audience_locale":
			insights.AudienceLocale = value
		case "audience_country":
			insights.AudienceCountry = value
		case "online_followers":
			insights.OnlineFollowers = value
		}
	}

	return insights, nil
}

func (s *Integrator) SearchHashtag(ctx context.Context, userID, name string) (*domain.Hashtag, error) {
	id, err := retry(ctx, s.cfg, "search hashtag", func() (string, error) {
		return s.Client.SearchHashtag(ctx, userID, name)
	})
	if err != nil {
		return nil, err
	}

	return &domain.Hashtag{ID: id, Name: name}, nil
}

func (s *Integrator) GetHashtagMedia(ctx context.Context, hashtagID, userID string, limit int) ([]domain.Media, error) {
	media, err := retry(ctx, s.cfg, "get hashtag media", func() ([]igdomain.Media, error) {
		return s.Client.GetHashtagRecentMedia(ctx, hashtagID, userID, limit)
	})
	if err != nil {
		return nil, err
	}

	return factoryMedia(media), nil
}

func factoryMedia(items []igdomain.Media) []domain.Media {
	out := make([]domain.Media, 0, len(items))
	for _, m := range items {
		out = append(out, domain.Media{
			ID:           m.ID,
			Caption:      m.Caption,
			MediaType:    m.MediaType,
			MediaURL:     m.MediaURL,
			Permalink:    m.Permalink,
			ThumbnailURL: m.ThumbnailURL,
			Timestamp:    m.Timestamp,
			Username:     m.Username,
			Children:     m.Children,
		})
	}
	return out
}

// rawToInt64 aceita apenas valores numéricos inteiros
func rawToInt64(raw json.RawMessage) *int64 {
	if len(raw) == 0 {
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return nil
	}

	if v, err := strconv.ParseInt(number.String(), 10, 64); err == nil {
		return &v
	}

	if f, err := number.Float64(); err == nil {
		v := int64(f)
		return &v
	}

	return nil
}
