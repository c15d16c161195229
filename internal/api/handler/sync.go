package handler

import (
	"net/http"

	"github.com/vfg2006/instagram-insights-api/internal/scheduler"
	"github.com/vfg2006/instagram-insights-api/pkg/apiErrors"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
	"github.com/vfg2006/instagram-insights-api/pkg/middleware"
)

// AggregationSyncer é a parte do agendador usada pelas rotas de sync
type AggregationSyncer interface {
	TriggerManualSync() bool
	GetStatus() scheduler.SyncStatus
}

// RunAggregationSync dispara manualmente a agregação agendada
func RunAggregationSync(syncer AggregationSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("subject", claims.Subject)
		}

		if !syncer.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Aggregation sync is already running", nil)
			return
		}

		logger.Info("sync: manual aggregation triggered")
		writeJSON(w, r, http.StatusAccepted, Response{
			Status:  "accepted",
			Message: "Aggregation sync started",
			Data:    syncer.GetStatus(),
		})
	})
}

func GetAggregationSyncStatus(syncer AggregationSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, "Aggregation sync status", syncer.GetStatus())
	})
}
