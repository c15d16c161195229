package insighting

import (
	"net/url"
	"strings"

	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/pkg/utils"
)

// RequestFromQuery lê os parâmetros de GET insights.
// metrics e breakdowns aceitam tanto repetição quanto lista separada por vírgula.
func RequestFromQuery(query url.Values) (*domain.InsightsRequest, error) {
	req := &domain.InsightsRequest{
		AccountID:   query.Get("instagram_account_id"),
		Metrics:     splitList(query["metrics"]),
		Period:      domain.Period(query.Get("period")),
		MetricType:  domain.MetricType(query.Get("metric_type")),
		Breakdowns:  splitList(query["breakdowns"]),
		Timeframe:   domain.Timeframe(query.Get("timeframe")),
		AccessToken: query.Get("access_token"),
	}

	var err error
	if req.Since, err = utils.ParseUnix(query.Get("since")); err != nil {
		return nil, domain.NewValidationError("since", "since must be a Unix timestamp")
	}
	if req.Until, err = utils.ParseUnix(query.Get("until")); err != nil {
		return nil, domain.NewValidationError("until", "until must be a Unix timestamp")
	}

	return req, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}
