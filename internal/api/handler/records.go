package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/instagram-insights-api/pkg/apiErrors"
	"github.com/vfg2006/instagram-insights-api/pkg/utils"
)

func GetRecord(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		record, err := service.GetRecord(r.Context(), id)
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		writeSuccess(w, r, "Record found", record)
	})
}

// ListRecords aceita since/until como data, RFC3339 ou Unix
func ListRecords(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		since, err := utils.ParseDate(query.Get("since"))
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, domain.NewValidationError("since", "since must be a date, RFC3339 timestamp or Unix timestamp"))
			return
		}

		until, err := utils.ParseDate(query.Get("until"))
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, domain.NewValidationError("until", "until must be a date, RFC3339 timestamp or Unix timestamp"))
			return
		}

		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		records, err := service.ListRecords(r.Context(), domain.RecordFilter{
			DataType: domain.DataType(query.Get("data_type")),
			Username: query.Get("username"),
			Hashtag:  query.Get("hashtag"),
			Since:    since,
			Until:    until,
			Limit:    limit,
		})
		if err != nil {
			apiErrors.WriteFromError(r.Context(), w, err)
			return
		}

		writeSuccess(w, r, "Records found", records)
	})
}
