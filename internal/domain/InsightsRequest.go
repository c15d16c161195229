package domain

type Period string

const (
	PeriodDay      Period = "day"
	PeriodWeek     Period = "week"
	PeriodLifetime Period = "lifetime"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodLifetime:
		return true
	}
	return false
}

type MetricType string

const (
	MetricTypeTotalValue MetricType = "total_value"
	MetricTypeTimeSeries MetricType = "time_series"
)

func (m MetricType) IsValid() bool {
	return m == MetricTypeTotalValue || m == MetricTypeTimeSeries
}

type Timeframe string

const (
	TimeframeLast7Days  Timeframe = "last_7_days"
	TimeframeLast14Days Timeframe = "last_14_days"
	TimeframeLast30Days Timeframe = "last_30_days"
	TimeframeLast90Days Timeframe = "last_90_days"
)

func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeLast7Days, TimeframeLast14Days, TimeframeLast30Days, TimeframeLast90Days:
		return true
	}
	return false
}

// InsightsRequest representa uma consulta de insights de uma conta do Instagram
type InsightsRequest struct {
	AccountID   string
	Metrics     []string
	Period      Period
	MetricType  MetricType
	Breakdowns  []string
	Timeframe   Timeframe
	Since       *int64
	Until       *int64
	AccessToken string
}

// Document é o corpo JSON devolvido pela Graph API, repassado sem alterações
type Document map[string]any

type SampleRequest struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}
