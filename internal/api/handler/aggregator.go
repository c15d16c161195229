package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/instagram-insights-api/pkg/apiErrors"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

// Limite do corpo de POST aggregate
const maxAggregateBody = 1 << 20

func Aggregate(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.AggregationRequest
		err := json.NewDecoder(io.LimitReader(r.Body, maxAggregateBody)).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			logger.WithError(err).Warn("aggregator: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}

		summary, err := service.AggregateAll(r.Context(), req)
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		writeSuccess(w, r, "Data aggregation completed", summary)
	})
}

func FetchProfile(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, err := service.FetchAndStoreProfile(r.Context())
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		writeSuccess(w, r, "Profile data fetched and stored", record)
	})
}

func FetchMedia(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", domain.DefaultMediaLimit)
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		records, err := service.FetchAndStoreMedia(r.Context(), limit)
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		writeSuccess(w, r, fmt.Sprintf("Fetched and stored %d media items", len(records)), records)
	})
}

func FetchMediaInsights(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaID := httprouter.ParamsFromContext(r.Context()).ByName("media_id")
		mediaType := r.URL.Query().Get("media_type")

		record, err := service.FetchAndStoreMediaInsights(r.Context(), mediaID, mediaType)
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		writeSuccess(w, r, "Insights fetched and stored for media "+mediaID, record)
	})
}

func FetchUserInsights(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, err := service.FetchAndStoreUserInsights(r.Context())
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		writeSuccess(w, r, "User insights fetched and stored", record)
	})
}

func FetchHashtagMedia(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hashtag := httprouter.ParamsFromContext(r.Context()).ByName("hashtag_name")

		limit, err := queryInt(r, "limit", domain.DefaultMediaLimit)
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		records, err := service.FetchAndStoreHashtagMedia(r.Context(), hashtag, limit)
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		writeSuccess(w, r, fmt.Sprintf("Fetched and stored %d media items for hashtag", len(records)), records)
	})
}
