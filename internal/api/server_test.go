package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/scheduler"
	aggmocks "github.com/vfg2006/instagram-insights-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/authenticating"
	insmocks "github.com/vfg2006/instagram-insights-api/internal/usecases/insighting/mocks"
)

type idleSyncer struct{}

func (idleSyncer) TriggerManualSync() bool { return false }
func (idleSyncer) GetStatus() scheduler.SyncStatus { return scheduler.SyncStatus{} }

func newTestHandler(t *testing.T, cfg *config.Config) http.Handler {
	ctrl := gomock.NewController(t)
	return NewHandler(
		cfg,
		insmocks.NewMockInsighter(ctrl),
		aggmocks.NewMockAggregator(ctrl),
		authenticating.NewService(cfg),
		idleSyncer{},
	)
}

func TestNewHandler_MiddlewareChain(t *testing.T) {
	cfg := &config.Config{
		App:       config.App{APIPrefix: "/api/v1"},
		Cors:      config.Cors{AllowedOrigins: []string{"http://dashboard.local"}},
		RateLimit: config.RateLimit{RequestsPerSecond: 1, Burst: 1},
	}
	h := newTestHandler(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://dashboard.local", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	// segunda requisição do mesmo IP estoura o burst
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestNewHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &config.Config{App: config.App{APIPrefix: "/api/v1"}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
