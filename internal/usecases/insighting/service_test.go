package insighting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

// newTestService sobe um servidor fake da Graph API e conta as chamadas recebidas
func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *int32) {
	t.Helper()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		App: config.App{APIPrefix: "/api/v1"},
		Instagram: config.Instagram{
			URL:         server.URL + "/v22.0",
			AccessToken: "default-token",
			Timeout:     2 * time.Second,
		},
	}
	return NewService(cfg, igclient.NewClient(cfg)), &calls
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"data":[{"name":"reach","period":"day","total_value":{"value":1234}}]}`))
}

func TestGetInsights_QueryString(t *testing.T) {
	var gotPath, gotQuery string
	s, calls := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		okHandler(w, r)
	})

	doc, err := s.GetInsights(context.Background(), &domain.InsightsRequest{
		AccountID:  "123",
		Metrics:    []string{"reach"},
		Period:     domain.PeriodDay,
		MetricType: domain.MetricTypeTotalValue,
		Since:      int64Ptr(1685991600),
		Until:      int64Ptr(1686077999),
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Equal(t, "/v22.0/123/insights", gotPath)
	assert.Equal(t, "metric=reach&period=day&metric_type=total_value&since=1685991600&until=1686077999&access_token=default-token", gotQuery)
	assert.Contains(t, doc, "data")
}

func TestBuildParams(t *testing.T) {
	s, _ := newTestService(t, okHandler)

	tests := []struct {
		name     string
		req      *domain.InsightsRequest
		expected string
	}{
		{
			name: "metricas unidas por vírgula sem opcionais",
			req: &domain.InsightsRequest{
				AccountID:  "1",
				Metrics:    []string{"likes", "comments", "likes", " "},
				Period:     domain.PeriodDay,
				MetricType: domain.MetricTypeTotalValue,
			},
			expected: "metric=likes,comments&period=day&metric_type=total_value&access_token=default-token",
		},
		{
			name: "breakdown e token da requisição",
			req: &domain.InsightsRequest{
				AccountID:   "1",
				Metrics:     []string{"reach"},
				Period:      domain.PeriodDay,
				MetricType:  domain.MetricTypeTotalValue,
				Breakdowns:  []string{"media_product_type"},
				AccessToken: "mine",
			},
			expected: "metric=reach&period=day&metric_type=total_value&breakdown=media_product_type&access_token=mine",
		},
		{
			name: "demográfica com timeframe",
			req: &domain.InsightsRequest{
				AccountID:  "1",
				Metrics:    []string{"follower_demographics"},
				Period:     domain.PeriodLifetime,
				MetricType: domain.MetricTypeTotalValue,
				Breakdowns: []string{"age", "gender"},
				Timeframe:  domain.TimeframeLast30Days,
			},
			expected: "metric=follower_demographics&period=lifetime&metric_type=total_value&breakdown=age,gender&timeframe=last_30_days&access_token=default-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := s.BuildParams(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params.Encode())
		})
	}
}

func TestGetInsights_MissingFieldsAreMarked(t *testing.T) {
	s, _ := newTestService(t, okHandler)

	_, err := s.GetInsights(context.Background(), &domain.InsightsRequest{
		Period:     domain.PeriodDay,
		MetricType: domain.MetricTypeTotalValue,
		Metrics:    []string{"reach"},
	})
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.True(t, validationErr.Missing)

	// valor inválido não é campo ausente
	_, err = s.GetInsights(context.Background(), &domain.InsightsRequest{
		AccountID:  "123/media",
		Period:     domain.PeriodDay,
		MetricType: domain.MetricTypeTotalValue,
		Metrics:    []string{"reach"},
	})
	require.ErrorAs(t, err, &validationErr)
	assert.False(t, validationErr.Missing)
}

func TestGetInsights_ValidationHappensBeforeNetwork(t *testing.T) {
	s, calls := newTestService(t, okHandler)

	base := func() *domain.InsightsRequest {
		return &domain.InsightsRequest{
			AccountID:  "123",
			Metrics:    []string{"reach"},
			Period:     domain.PeriodDay,
			MetricType: domain.MetricTypeTotalValue,
		}
	}

	tests := []struct {
		name  string
		setup func(r *domain.InsightsRequest)
		field string
	}{
		{name: "sem conta", setup: func(r *domain.InsightsRequest) { r.AccountID = "" }, field: "instagram_account_id"},
		{
			name:  "conta com query string embutida",
			setup: func(r *domain.InsightsRequest) { r.AccountID = "me?metric=impressions&x=" },
			field: "instagram_account_id",
		},
		{name: "conta com barra", setup: func(r *domain.InsightsRequest) { r.AccountID = "123/media" }, field: "instagram_account_id"},
		{name: "conta com fragmento", setup: func(r *domain.InsightsRequest) { r.AccountID = "123#x" }, field: "instagram_account_id"},
		{name: "sem métricas", setup: func(r *domain.InsightsRequest) { r.Metrics = nil }, field: "metrics"},
		{name: "métrica desconhecida", setup: func(r *domain.InsightsRequest) { r.Metrics = []string{"impressions"} }, field: "metrics"},
		{name: "período inválido", setup: func(r *domain.InsightsRequest) { r.Period = "month" }, field: "period"},
		{name: "metric_type inválido", setup: func(r *domain.InsightsRequest) { r.MetricType = "sum" }, field: "metric_type"},
		{name: "timeframe inválido", setup: func(r *domain.InsightsRequest) { r.Timeframe = "last_year" }, field: "timeframe"},
		{
			name: "lifetime com time_series",
			setup: func(r *domain.InsightsRequest) {
				r.Period = domain.PeriodLifetime
				r.MetricType = domain.MetricTypeTimeSeries
			},
			field: "metrics",
		},
		{
			name: "demográfica sem timeframe",
			setup: func(r *domain.InsightsRequest) {
				r.Metrics = []string{"follower_demographics"}
				r.Period = domain.PeriodLifetime
			},
			field: "timeframe",
		},
		{name: "breakdown desconhecido", setup: func(r *domain.InsightsRequest) { r.Breakdowns = []string{"device"} }, field: "breakdowns"},
		{name: "breakdown incompatível", setup: func(r *domain.InsightsRequest) { r.Breakdowns = []string{"follow_type"} }, field: "breakdowns"},
		{
			name: "since com lifetime",
			setup: func(r *domain.InsightsRequest) {
				r.Period = domain.PeriodLifetime
				r.Since = int64Ptr(1)
			},
			field: "since",
		},
		{
			name: "since depois de until",
			setup: func(r *domain.InsightsRequest) {
				r.Since = int64Ptr(10)
				r.Until = int64Ptr(5)
			},
			field: "since",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.setup(req)

			_, err := s.GetInsights(context.Background(), req)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestGetInsights_MissingToken(t *testing.T) {
	s, calls := newTestService(t, okHandler)
	s.cfg.Instagram.AccessToken = ""

	_, err := s.GetInsights(context.Background(), &domain.InsightsRequest{
		AccountID:  "123",
		Metrics:    []string{"reach"},
		Period:     domain.PeriodDay,
		MetricType: domain.MetricTypeTotalValue,
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "access_token", validationErr.Field)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestGetInsights_UpstreamError(t *testing.T) {
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","code":190}}`))
	})

	_, err := s.GetInsights(context.Background(), &domain.InsightsRequest{
		AccountID:  "123",
		Metrics:    []string{"reach"},
		Period:     domain.PeriodDay,
		MetricType: domain.MetricTypeTotalValue,
	})

	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadRequest, upstreamErr.StatusCode)
	assert.Equal(t, "Invalid OAuth access token", upstreamErr.Message)
}

func TestSampleRequestsPassValidation(t *testing.T) {
	s, calls := newTestService(t, okHandler)

	samples := s.SampleRequests()
	require.NotEmpty(t, samples)

	for name, sample := range samples {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, sample.URL, "/api/v1/instagram/insights?")

			u, err := url.Parse(sample.URL)
			require.NoError(t, err)

			req, err := RequestFromQuery(u.Query())
			require.NoError(t, err)

			_, err = s.BuildParams(req)
			assert.NoError(t, err)
		})
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestRequestFromQuery(t *testing.T) {
	query := url.Values{
		"instagram_account_id": {"123"},
		"metrics":              {"reach,likes", "comments"},
		"period":               {"day"},
		"metric_type":          {"total_value"},
		"breakdowns":           {"media_product_type"},
		"since":                {"1685991600"},
	}

	req, err := RequestFromQuery(query)
	require.NoError(t, err)

	assert.Equal(t, "123", req.AccountID)
	assert.Equal(t, []string{"reach", "likes", "comments"}, req.Metrics)
	assert.Equal(t, []string{"media_product_type"}, req.Breakdowns)
	assert.Equal(t, int64(1685991600), *req.Since)
	assert.Nil(t, req.Until)

	_, err = RequestFromQuery(url.Values{"since": {"yesterday"}})
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCatalogAccessorsAreStable(t *testing.T) {
	s, calls := newTestService(t, okHandler)

	assert.Equal(t, s.Metrics(), s.Metrics())
	assert.Equal(t, s.Breakdowns(), s.Breakdowns())
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}
