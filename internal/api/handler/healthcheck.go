package handler

import (
	"net/http"

	"github.com/vfg2006/instagram-insights-api/internal/config"
)

// HealthcheckHandler não depende da Graph API nem do armazenamento
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
	})
}

func RootHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{
			"name":       cfg.App.ProjectName,
			"version":    cfg.App.Version,
			"api_prefix": cfg.App.APIPrefix,
			"health":     "/health",
		})
	})
}
