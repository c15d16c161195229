package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/instagram-insights-api/internal/domain"
)

func TestMetricInfo_Allows(t *testing.T) {
	tests := []struct {
		name       string
		metric     string
		period     domain.Period
		metricType domain.MetricType
		want       bool
	}{
		{name: "reach day total_value", metric: "reach", period: domain.PeriodDay, metricType: domain.MetricTypeTotalValue, want: true},
		{name: "reach week time_series", metric: "reach", period: domain.PeriodWeek, metricType: domain.MetricTypeTimeSeries, want: true},
		{name: "reach lifetime time_series", metric: "reach", period: domain.PeriodLifetime, metricType: domain.MetricTypeTimeSeries, want: false},
		{name: "likes lifetime total_value", metric: "likes", period: domain.PeriodLifetime, metricType: domain.MetricTypeTotalValue, want: true},
		{name: "likes week", metric: "likes", period: domain.PeriodWeek, metricType: domain.MetricTypeTotalValue, want: false},
		{name: "online_followers only day", metric: "online_followers", period: domain.PeriodLifetime, metricType: domain.MetricTypeTotalValue, want: false},
		{name: "follower_count lifetime", metric: "follower_count", period: domain.PeriodLifetime, metricType: domain.MetricTypeTotalValue, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := LookupMetric(tt.metric)
			require.True(t, ok)
			assert.Equal(t, tt.want, m.Allows(tt.period, tt.metricType))
		})
	}
}

func TestDemographicMetricsRequireTimeframe(t *testing.T) {
	for _, name := range []string{"audience_demographics", "engaged_audience_demographics", "follower_demographics"} {
		m, ok := LookupMetric(name)
		require.True(t, ok, name)
		assert.True(t, m.RequiresTimeframe, name)
		assert.Equal(t, CategoryDemographic, m.Category)
	}

	m, _ := LookupMetric("reach")
	assert.False(t, m.RequiresTimeframe)
}

func TestLookupMetric_Unknown(t *testing.T) {
	_, ok := LookupMetric("impressions_total")
	assert.False(t, ok)
}

func TestMetricsByCategory_IsStable(t *testing.T) {
	first := MetricsByCategory()
	second := MetricsByCategory()

	assert.Equal(t, first, second)
	assert.Len(t, first[CategoryInteraction], 12)
	assert.Len(t, first[CategoryDemographic], 5)
	assert.Contains(t, first[CategoryInteraction], "website_clicks")
}

func TestMetricNames_Sorted(t *testing.T) {
	names := MetricNames()
	assert.Equal(t, "accounts_engaged", names[0])
	assert.IsNonDecreasing(t, names)
}

func TestBreakdowns(t *testing.T) {
	b, ok := LookupBreakdown("follow_type")
	require.True(t, ok)
	assert.True(t, b.SupportsMetric("follows"))
	assert.False(t, b.SupportsMetric("reach"))

	b, ok = LookupBreakdown("media_product_type")
	require.True(t, ok)
	assert.Equal(t, []string{"feed", "story", "reels"}, b.Values)
	assert.True(t, b.SupportsMetric("total_interactions"))

	_, ok = LookupBreakdown("device")
	assert.False(t, ok)

	assert.Equal(t, Breakdowns(), Breakdowns())
	assert.Equal(t, []string{"age", "city", "contact_button_type", "country", "follow_type", "gender", "media_product_type"}, BreakdownNames())
}

// Todo breakdown precisa apontar para métricas que existem no catálogo
func TestBreakdownsReferenceKnownMetrics(t *testing.T) {
	for name, b := range Breakdowns() {
		for _, metric := range b.CompatibleMetrics {
			_, ok := LookupMetric(metric)
			assert.True(t, ok, "%s -> %s", name, metric)
		}
	}
}

func TestMediaMetrics(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		want      []string
		wantOK    bool
	}{
		{
			name:      "vídeo inclui visualizações",
			mediaType: "VIDEO",
			want:      []string{"engagement", "impressions", "reach", "saved", "video_views"},
			wantOK:    true,
		},
		{
			name:      "tipo em minúsculas",
			mediaType: "image",
			want:      []string{"engagement", "impressions", "reach", "saved"},
			wantOK:    true,
		},
		{
			name:      "tipo desconhecido não tem métricas",
			mediaType: "GIF",
			want:      nil,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MediaMetrics(tt.mediaType)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	album, ok := MediaMetrics("CAROUSEL_ALBUM")
	require.True(t, ok)
	assert.Len(t, album, 4)

	// a cópia não deve alterar o catálogo
	m, _ := MediaMetrics("IMAGE")
	m[0] = "changed"
	again, _ := MediaMetrics("IMAGE")
	assert.Equal(t, "engagement", again[0])
}

func TestMediaTypes(t *testing.T) {
	assert.Equal(t, []string{"CAROUSEL_ALBUM", "IMAGE", "REELS", "VIDEO"}, MediaTypes())
}

func TestNormalizeMediaMetric(t *testing.T) {
	assert.Equal(t, "engagement", NormalizeMediaMetric("carousel_album_engagement"))
	assert.Equal(t, "reach", NormalizeMediaMetric("reach"))
}
