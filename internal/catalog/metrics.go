package catalog

import (
	"sort"

	"github.com/vfg2006/instagram-insights-api/internal/domain"
)

type Category string

const (
	CategoryInteraction Category = "interaction_metrics"
	CategoryDemographic Category = "demographic_metrics"
)

// MetricInfo descreve uma métrica de conta aceita pelo endpoint de insights.
// Periods lista, para cada período aceito, os metric_type permitidos.
type MetricInfo struct {
	Name              string                                `json:"-"`
	Category          Category                              `json:"-"`
	Description       string                                `json:"description"`
	Requirements      string                                `json:"requirements"`
	Periods           map[domain.Period][]domain.MetricType `json:"periods"`
	RequiresTimeframe bool                                  `json:"requires_timeframe"`
}

// Allows verifica se a combinação período/metric_type é aceita pela métrica
func (m MetricInfo) Allows(period domain.Period, metricType domain.MetricType) bool {
	types, ok := m.Periods[period]
	if !ok {
		return false
	}
	for _, t := range types {
		if t == metricType {
			return true
		}
	}
	return false
}

var (
	totalValue = []domain.MetricType{domain.MetricTypeTotalValue}
	bothTypes  = []domain.MetricType{domain.MetricTypeTotalValue, domain.MetricTypeTimeSeries}

	dayAndLifetime = map[domain.Period][]domain.MetricType{
		domain.PeriodDay:      totalValue,
		domain.PeriodLifetime: totalValue,
	}
)

func interaction(name, description string) MetricInfo {
	return MetricInfo{
		Name:         name,
		Category:     CategoryInteraction,
		Description:  description,
		Requirements: "Available for day and lifetime periods",
		Periods:      dayAndLifetime,
	}
}

func demographic(name, description string) MetricInfo {
	return MetricInfo{
		Name:              name,
		Category:          CategoryDemographic,
		Description:       description,
		Requirements:      "Requires timeframe parameter",
		Periods:           map[domain.Period][]domain.MetricType{domain.PeriodLifetime: totalValue},
		RequiresTimeframe: true,
	}
}

var metrics = map[string]MetricInfo{
	"accounts_engaged": interaction("accounts_engaged", "Number of unique accounts that engaged with your content"),
	"comments":         interaction("comments", "Number of comments on your content"),
	"follows":          interaction("follows", "Number of follows of your account"),
	"likes":            interaction("likes", "Number of likes on your content"),
	"profile_views":    interaction("profile_views", "Number of views of your profile"),
	"reach": {
		Name:         "reach",
		Category:     CategoryInteraction,
		Description:  "Number of unique accounts that saw your content",
		Requirements: "Available for day, week and lifetime periods; time_series only for day and week",
		Periods: map[domain.Period][]domain.MetricType{
			domain.PeriodDay:      bothTypes,
			domain.PeriodWeek:     bothTypes,
			domain.PeriodLifetime: totalValue,
		},
	},
	"replies":            interaction("replies", "Number of replies to your stories"),
	"saved":              interaction("saved", "Number of saves of your content"),
	"shares":             interaction("shares", "Number of shares of your content"),
	"total_interactions": interaction("total_interactions", "Total number of interactions on your content"),
	"views":              interaction("views", "Number of views on your content (video)"),
	"website_clicks":     interaction("website_clicks", "Number of clicks on your website link"),

	"audience_demographics":         demographic("audience_demographics", "Demographic breakdown of your audience"),
	"engaged_audience_demographics": demographic("engaged_audience_demographics", "Demographic breakdown of accounts that engaged with your content"),
	"follower_demographics":         demographic("follower_demographics", "Demographic breakdown of your followers"),
	"online_followers": {
		Name:         "online_followers",
		Category:     CategoryDemographic,
		Description:  "Number of your followers online over time",
		Requirements: "Available for day period only",
		Periods:      map[domain.Period][]domain.MetricType{domain.PeriodDay: totalValue},
	},
	"follower_count": {
		Name:         "follower_count",
		Category:     CategoryDemographic,
		Description:  "Total number of followers",
		Requirements: "Available for lifetime period only",
		Periods:      map[domain.Period][]domain.MetricType{domain.PeriodLifetime: totalValue},
	},
}

func LookupMetric(name string) (MetricInfo, bool) {
	m, ok := metrics[name]
	return m, ok
}

// MetricNames retorna os nomes das métricas em ordem alfabética
func MetricNames() []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MetricsByCategory agrupa o catálogo no formato exposto por GET metrics
func MetricsByCategory() map[Category]map[string]MetricInfo {
	grouped := map[Category]map[string]MetricInfo{
		CategoryInteraction: {},
		CategoryDemographic: {},
	}
	for name, m := range metrics {
		grouped[m.Category][name] = m
	}
	return grouped
}
