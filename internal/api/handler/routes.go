package handler

import (
	"net/http"

	"github.com/vfg2006/instagram-insights-api/internal/api/handler/router"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/instagram-insights-api/pkg/middleware"
)

func Healthcheck(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(cfg),
		},
	}
}

func Instagram(prefix string, service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    prefix + "/instagram/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    prefix + "/instagram/sample-requests",
			Method:  http.MethodGet,
			Handler: GetSampleRequests(service),
		},
		{
			Path:    prefix + "/instagram/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    prefix + "/instagram/breakdowns",
			Method:  http.MethodGet,
			Handler: GetBreakdowns(service),
		},
	}
}

// Aggregator registra as rotas que buscam e gravam dados; todas exigem token quando AUTH_SECRET existe
func Aggregator(prefix string, service aggregating.Aggregator, authenticator authenticating.Authenticator) []router.Route {
	requireToken := []func(http.Handler) http.Handler{middleware.RequireToken(authenticator)}

	return []router.Route{
		{
			Path:        prefix + "/aggregator/aggregate",
			Method:      http.MethodPost,
			Handler:     Aggregate(service),
			Middlewares: requireToken,
		},
		{
			Path:        prefix + "/aggregator/profile",
			Method:      http.MethodGet,
			Handler:     FetchProfile(service),
			Middlewares: requireToken,
		},
		{
			Path:        prefix + "/aggregator/media",
			Method:      http.MethodGet,
			Handler:     FetchMedia(service),
			Middlewares: requireToken,
		},
		{
			Path:        prefix + "/aggregator/media/:media_id/insights",
			Method:      http.MethodGet,
			Handler:     FetchMediaInsights(service),
			Middlewares: requireToken,
		},
		{
			Path:        prefix + "/aggregator/user/insights",
			Method:      http.MethodGet,
			Handler:     FetchUserInsights(service),
			Middlewares: requireToken,
		},
		{
			Path:        prefix + "/aggregator/hashtag/:hashtag_name/media",
			Method:      http.MethodGet,
			Handler:     FetchHashtagMedia(service),
			Middlewares: requireToken,
		},
	}
}

func Records(prefix string, service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    prefix + "/aggregator/records",
			Method:  http.MethodGet,
			Handler: ListRecords(service),
		},
		{
			Path:    prefix + "/aggregator/records/:id",
			Method:  http.MethodGet,
			Handler: GetRecord(service),
		},
	}
}

func AggregationSync(prefix string, syncer AggregationSyncer, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        prefix + "/aggregator/sync/run",
			Method:      http.MethodPost,
			Handler:     RunAggregationSync(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireToken(authenticator)},
		},
		{
			Path:    prefix + "/aggregator/sync/status",
			Method:  http.MethodGet,
			Handler: GetAggregationSyncStatus(syncer),
		},
	}
}
