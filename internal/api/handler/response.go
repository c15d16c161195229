package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response é o envelope padrão das rotas de catálogo e do agregador
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: failed to encode response")
	}
}

func writeSuccess(w http.ResponseWriter, r *http.Request, message string, data any) {
	writeJSON(w, r, http.StatusOK, Response{
		Status:  domain.StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// queryInt lê um inteiro opcional da query string
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, name+" must be an integer")
	}
	return value, nil
}
