package handler

import (
	"net/http"

	"github.com/vfg2006/instagram-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/instagram-insights-api/pkg/apiErrors"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

// GetInsights repassa a resposta da Graph API sem envelope
func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, err := insighting.RequestFromQuery(r.URL.Query())
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		doc, err := service.GetInsights(r.Context(), req)
		if err != nil {
			logger.WithError(err).Warn("insights: query failed")
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, doc)
	})
}

func GetSampleRequests(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"samples": service.SampleRequests(),
		})
	})
}

func GetMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, "Available metrics information", service.Metrics())
	})
}

func GetBreakdowns(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, "Available breakdowns information", service.Breakdowns())
	})
}
