package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/instagram-insights-api/internal/api/handler/router"
	"github.com/vfg2006/instagram-insights-api/internal/catalog"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/internal/scheduler"
	aggmocks "github.com/vfg2006/instagram-insights-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/authenticating"
	insmocks "github.com/vfg2006/instagram-insights-api/internal/usecases/insighting/mocks"
)

const prefix = "/api/v1"

func stringPtr(s string) *string {
	return &s
}

type fakeSyncer struct {
	started bool
	status  scheduler.SyncStatus
}

func (f *fakeSyncer) TriggerManualSync() bool {
	return f.started
}

func (f *fakeSyncer) GetStatus() scheduler.SyncStatus {
	return f.status
}

type testDeps struct {
	insighter  *insmocks.MockInsighter
	aggregator *aggmocks.MockAggregator
	syncer     *fakeSyncer
	auth       authenticating.Authenticator
}

func newTestRouter(t *testing.T, secret string) (http.Handler, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		App:  config.App{ProjectName: "Instagram Insights API", Version: "1.0.0", APIPrefix: prefix},
		Auth: config.Auth{Secret: secret},
	}

	deps := &testDeps{
		insighter:  insmocks.NewMockInsighter(ctrl),
		aggregator: aggmocks.NewMockAggregator(ctrl),
		syncer:     &fakeSyncer{},
		auth:       authenticating.NewService(cfg),
	}

	rt := router.New(
		router.WithRoutes(Healthcheck(cfg)...),
		router.WithRoutes(Instagram(prefix, deps.insighter)...),
		router.WithRoutes(Aggregator(prefix, deps.aggregator, deps.auth)...),
		router.WithRoutes(Records(prefix, deps.aggregator)...),
		router.WithRoutes(AggregationSync(prefix, deps.syncer, deps.auth)...),
	)
	return rt, deps
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthAndRoot(t *testing.T) {
	h, _ := newTestRouter(t, "")

	rec := do(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decodeBody(t, rec)["status"])

	rec = do(h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Instagram Insights API", decodeBody(t, rec)["name"])

	rec = do(h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RES_001", decodeBody(t, rec)["code"])
}

func TestGetInsights(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(d *testDeps)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "repassa o documento da Graph API",
			target: prefix + "/instagram/insights?instagram_account_id=123&metrics=reach&metrics=likes&period=day&metric_type=total_value&since=1685991600",
			setup: func(d *testDeps) {
				d.insighter.EXPECT().GetInsights(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *domain.InsightsRequest) (domain.Document, error) {
						assert.Equal(t, "123", req.AccountID)
						assert.Equal(t, []string{"reach", "likes"}, req.Metrics)
						assert.Equal(t, int64(1685991600), *req.Since)
						return domain.Document{"data": []any{map[string]any{"name": "reach"}}}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"data":[{"name":"reach"}]}`, rec.Body.String())
			},
		},
		{
			name:   "erro de validação",
			target: prefix + "/instagram/insights?instagram_account_id=123&metrics=follower_demographics&period=lifetime&metric_type=total_value",
			setup: func(d *testDeps) {
				d.insighter.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return(nil, &domain.ValidationError{
					Field:   "timeframe",
					Message: "timeframe is required",
					Details: map[string]any{"metrics": []string{"follower_demographics"}},
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				body := decodeBody(t, rec)
				assert.Equal(t, "error", body["status"])
				assert.Equal(t, "VAL_001", body["code"])
				assert.NotNil(t, body["details"])
			},
		},
		{
			name:   "status da Graph API é repassado",
			target: prefix + "/instagram/insights?instagram_account_id=123&metrics=reach&period=day&metric_type=total_value",
			setup: func(d *testDeps) {
				d.insighter.EXPECT().GetInsights(gomock.Any(), gomock.Any()).Return(nil, &domain.UpstreamError{
					StatusCode: http.StatusForbidden,
					Message:    "permission denied",
					Body:       map[string]any{"error": map[string]any{"message": "permission denied"}},
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
				body := decodeBody(t, rec)
				assert.Equal(t, "permission denied", body["message"])
				assert.Contains(t, body["details"], "error")
			},
		},
		{
			name:   "since inválido não chega ao serviço",
			target: prefix + "/instagram/insights?instagram_account_id=123&metrics=reach&period=day&metric_type=total_value&since=ontem",
			setup:  func(d *testDeps) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestRouter(t, "")
			tt.setup(deps)

			tt.validate(t, do(h, http.MethodGet, tt.target, ""))
		})
	}
}

func TestCatalogRoutes(t *testing.T) {
	h, deps := newTestRouter(t, "")
	deps.insighter.EXPECT().Metrics().Return(catalog.MetricsByCategory()).Times(2)
	deps.insighter.EXPECT().Breakdowns().Return(catalog.Breakdowns())
	deps.insighter.EXPECT().SampleRequests().Return(map[string]domain.SampleRequest{
		"reach": {URL: prefix + "/instagram/insights?metrics=reach", Description: "reach"},
	})

	first := do(h, http.MethodGet, prefix+"/instagram/metrics", "")
	second := do(h, http.MethodGet, prefix+"/instagram/metrics", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())

	body := decodeBody(t, first)
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body["data"], "interaction_metrics")
	assert.Contains(t, body["data"], "demographic_metrics")

	rec := do(h, http.MethodGet, prefix+"/instagram/breakdowns", "")
	assert.Contains(t, decodeBody(t, rec)["data"], "media_product_type")

	rec = do(h, http.MethodGet, prefix+"/instagram/sample-requests", "")
	assert.Contains(t, decodeBody(t, rec)["samples"], "reach")
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(d *testDeps)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "corpo vazio usa os padrões",
			body: "",
			setup: func(d *testDeps) {
				d.aggregator.EXPECT().AggregateAll(gomock.Any(), domain.AggregationRequest{}).Return(&domain.AggregationSummary{
					Profile: domain.ProfileStatus{Username: "acme", Status: domain.StatusSuccess},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				body := decodeBody(t, rec)
				assert.Equal(t, "success", body["status"])
				profile := body["data"].(map[string]any)["profile"].(map[string]any)
				assert.Equal(t, "acme", profile["username"])
			},
		},
		{
			name: "hashtags e limite",
			body: `{"media_limit":0,"hashtags":["golang"]}`,
			setup: func(d *testDeps) {
				d.aggregator.EXPECT().AggregateAll(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.AggregationRequest) (*domain.AggregationSummary, error) {
						assert.Equal(t, 0, req.Limit())
						assert.Equal(t, []string{"golang"}, req.Hashtags)
						return &domain.AggregationSummary{}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:  "json inválido",
			body:  `{"media_limit":`,
			setup: func(d *testDeps) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "VAL_003", decodeBody(t, rec)["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestRouter(t, "")
			tt.setup(deps)

			tt.validate(t, do(h, http.MethodPost, prefix+"/aggregator/aggregate", tt.body))
		})
	}
}

func TestAggregatorRequiresTokenWhenSecretIsSet(t *testing.T) {
	h, deps := newTestRouter(t, "secret")

	rec := do(h, http.MethodGet, prefix+"/aggregator/profile", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := deps.auth.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	deps.aggregator.EXPECT().FetchAndStoreProfile(gomock.Any()).Return(&domain.StoredRecord{
		ID:       "r1",
		DataType: domain.DataTypeProfile,
		Username: stringPtr("acme"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, prefix+"/aggregator/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "profile", data["data_type"])
	assert.Equal(t, "acme", data["username"])
	assert.Nil(t, data["caption"])
}

func TestAggregatorFetchRoutes(t *testing.T) {
	h, deps := newTestRouter(t, "")

	deps.aggregator.EXPECT().FetchAndStoreMedia(gomock.Any(), 25).Return([]*domain.StoredRecord{{ID: "1"}}, nil)
	deps.aggregator.EXPECT().FetchAndStoreMedia(gomock.Any(), 3).Return([]*domain.StoredRecord{}, nil)
	deps.aggregator.EXPECT().FetchAndStoreMediaInsights(gomock.Any(), "m1", "VIDEO").Return(&domain.StoredRecord{ID: "2"}, nil)
	deps.aggregator.EXPECT().FetchAndStoreUserInsights(gomock.Any()).Return(nil, &domain.NetworkError{Op: "GET me/insights"})
	deps.aggregator.EXPECT().FetchAndStoreHashtagMedia(gomock.Any(), "unknown", 25).Return(nil, domain.ErrHashtagNotFound)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, prefix+"/aggregator/media", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, prefix+"/aggregator/media?limit=3", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, prefix+"/aggregator/media?limit=abc", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, prefix+"/aggregator/media/m1/insights?media_type=VIDEO", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(h, http.MethodGet, prefix+"/aggregator/user/insights", "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, prefix+"/aggregator/hashtag/unknown/media", "").Code)
}

func TestRecordRoutes(t *testing.T) {
	h, deps := newTestRouter(t, "")

	deps.aggregator.EXPECT().GetRecord(gomock.Any(), "missing").Return(nil, domain.ErrRecordNotFound)
	deps.aggregator.EXPECT().ListRecords(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter domain.RecordFilter) ([]*domain.StoredRecord, error) {
			assert.Equal(t, domain.DataTypeMedia, filter.DataType)
			assert.Equal(t, 10, filter.Limit)
			require.NotNil(t, filter.Since)
			assert.Equal(t, 2024, filter.Since.Year())
			return []*domain.StoredRecord{{ID: "a"}}, nil
		})
	deps.aggregator.EXPECT().ListRecords(gomock.Any(), gomock.Any()).Return(nil, &domain.StorageError{Op: "read"})

	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, prefix+"/aggregator/records/missing", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, prefix+"/aggregator/records?data_type=media&since=2024-01-01&limit=10", "").Code)

	rec := do(h, http.MethodGet, prefix+"/aggregator/records", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "SRV_002", decodeBody(t, rec)["code"])

	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, prefix+"/aggregator/records?since=tomorrow", "").Code)
}

func TestSyncRoutes(t *testing.T) {
	h, deps := newTestRouter(t, "")
	deps.syncer.status = scheduler.SyncStatus{SyncEnabled: true, SyncCron: "0 3 * * *"}

	deps.syncer.started = true
	rec := do(h, http.MethodPost, prefix+"/aggregator/sync/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	deps.syncer.started = false
	rec = do(h, http.MethodPost, prefix+"/aggregator/sync/run", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(h, http.MethodGet, prefix+"/aggregator/sync/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "0 3 * * *", data["sync_cron"])
}
