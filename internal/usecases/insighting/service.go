package insighting

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/instagram-insights-api/internal/catalog"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

type Service struct {
	cfg    *config.Config
	client igclient.Client
}

func NewService(cfg *config.Config, client igclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) GetInsights(ctx context.Context, req *domain.InsightsRequest) (domain.Document, error) {
	if req == nil {
		return nil, domain.NewMissingFieldError("request", "request is required")
	}

	params, err := s.BuildParams(req)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"account_id": req.AccountID,
		"metrics":    params.Get("metric"),
		"period":     req.Period,
	}).Debug("insighting: forwarding insights query")

	return s.client.GetAccountInsights(ctx, req.AccountID, params)
}

// BuildParams valida a requisição e monta os parâmetros na ordem enviada à Graph API.
// Nenhuma chamada de rede acontece aqui.
func (s *Service) BuildParams(req *domain.InsightsRequest) (*igclient.Params, error) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	req.Metrics = orderedSet(req.Metrics)
	req.Breakdowns = orderedSet(req.Breakdowns)

	if err := s.validate(req); err != nil {
		return nil, err
	}

	token := req.AccessToken
	if token == "" {
		token = s.cfg.Instagram.AccessToken
	}

	params := igclient.NewParams().
		Add("metric", strings.Join(req.Metrics, ",")).
		Add("period", string(req.Period)).
		Add("metric_type", string(req.MetricType)).
		AddIf("breakdown", strings.Join(req.Breakdowns, ",")).
		AddIf("timeframe", string(req.Timeframe))
	if req.Since != nil {
		params.Add("since", strconv.FormatInt(*req.Since, 10))
	}
	if req.Until != nil {
		params.Add("until", strconv.FormatInt(*req.Until, 10))
	}
	params.Add("access_token", token)

	return params, nil
}

func (s *Service) validate(req *domain.InsightsRequest) error {
	if req.AccountID == "" {
		return domain.NewMissingFieldError("instagram_account_id", "instagram_account_id is required")
	}
	if !domain.IsObjectID(req.AccountID) {
		return domain.NewValidationError("instagram_account_id", fmt.Sprintf("invalid instagram_account_id %q", req.AccountID))
	}
	if !req.Period.IsValid() {
		return &domain.ValidationError{
			Field:   "period",
			Message: fmt.Sprintf("unknown period %q", req.Period),
			Details: map[string]any{"allowed": []domain.Period{domain.PeriodDay, domain.PeriodWeek, domain.PeriodLifetime}},
		}
	}
	if !req.MetricType.IsValid() {
		return &domain.ValidationError{
			Field:   "metric_type",
			Message: fmt.Sprintf("unknown metric_type %q", req.MetricType),
			Details: map[string]any{"allowed": []domain.MetricType{domain.MetricTypeTotalValue, domain.MetricTypeTimeSeries}},
		}
	}
	if req.Timeframe != "" && !req.Timeframe.IsValid() {
		return domain.NewValidationError("timeframe", fmt.Sprintf("unknown timeframe %q", req.Timeframe))
	}
	if len(req.Metrics) == 0 {
		return domain.NewMissingFieldError("metrics", "at least one metric is required")
	}

	var (
		unknown           []string
		incompatible      []string
		requiresTimeframe []string
	)
	for _, name := range req.Metrics {
		info, ok := catalog.LookupMetric(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if !info.Allows(req.Period, req.MetricType) {
			incompatible = append(incompatible, name)
		}
		if info.RequiresTimeframe {
			requiresTimeframe = append(requiresTimeframe, name)
		}
	}

	if len(unknown) > 0 {
		return &domain.ValidationError{
			Field:   "metrics",
			Message: "unknown metrics: " + strings.Join(unknown, ", "),
			Details: map[string]any{"invalid_metrics": unknown, "allowed_metrics": catalog.MetricNames()},
		}
	}
	if len(incompatible) > 0 {
		return &domain.ValidationError{
			Field: "metrics",
			Message: fmt.Sprintf("metrics %s do not support period=%s with metric_type=%s",
				strings.Join(incompatible, ", "), req.Period, req.MetricType),
			Details: map[string]any{"incompatible_metrics": incompatible, "period": req.Period, "metric_type": req.MetricType},
		}
	}
	if len(requiresTimeframe) > 0 && req.Timeframe == "" {
		return &domain.ValidationError{
			Field:   "timeframe",
			Message: "timeframe is required for metrics: " + strings.Join(requiresTimeframe, ", "),
			Details: map[string]any{"metrics": requiresTimeframe},
		}
	}

	for _, name := range req.Breakdowns {
		info, ok := catalog.LookupBreakdown(name)
		if !ok {
			return &domain.ValidationError{
				Field:   "breakdowns",
				Message: fmt.Sprintf("unknown breakdown %q", name),
				Details: map[string]any{"allowed_breakdowns": catalog.BreakdownNames()},
			}
		}
		for _, metric := range req.Metrics {
			if !info.SupportsMetric(metric) {
				return &domain.ValidationError{
					Field:   "breakdowns",
					Message: fmt.Sprintf("breakdown %q is not compatible with metric %q", name, metric),
					Details: map[string]any{"breakdown": name, "compatible_metrics": info.CompatibleMetrics},
				}
			}
		}
	}

	if (req.Since != nil || req.Until != nil) && req.Period == domain.PeriodLifetime {
		return domain.NewValidationError("since", "since/until are not supported with period=lifetime")
	}
	if req.Since != nil && req.Until != nil && *req.Since > *req.Until {
		return domain.NewValidationError("since", "since must not be after until")
	}

	if req.AccessToken == "" && s.cfg.Instagram.AccessToken == "" {
		return domain.NewMissingFieldError("access_token", "access_token is required when INSTAGRAM_ACCESS_TOKEN is not configured")
	}

	return nil
}

// SampleRequests retorna consultas de exemplo sob o prefixo configurado
func (s *Service) SampleRequests() map[string]domain.SampleRequest {
	base := s.cfg.App.APIPrefix + "/instagram/insights?instagram_account_id=ACCOUNT_ID&access_token=YOUR_TOKEN"

	return map[string]domain.SampleRequest{
		"reach_engagement_day": {
			URL:         base + "&metrics=reach,profile_views,accounts_engaged&period=day&metric_type=total_value",
			Description: "Get total reach, profile views, and engaged accounts for the day",
		},
		"reach_time_series": {
			URL:         base + "&metrics=reach&period=day&metric_type=time_series&since=1685991600&until=1686077999",
			Description: "Get daily reach as a time series for a date range",
		},
		"follower_demographics": {
			URL:         base + "&metrics=follower_demographics&period=lifetime&metric_type=total_value&timeframe=last_30_days&breakdowns=age,gender",
			Description: "Get follower demographics by age and gender for the last 30 days",
		},
		"content_interactions_with_breakdown": {
			URL:         base + "&metrics=likes,comments,shares&period=day&metric_type=total_value&breakdowns=media_product_type",
			Description: "Get content interactions broken down by media type",
		},
		"audience_by_country": {
			URL:         base + "&metrics=audience_demographics&period=lifetime&metric_type=total_value&timeframe=last_90_days&breakdowns=country",
			Description: "Get audience demographics broken down by country",
		},
	}
}

func (s *Service) Metrics() map[catalog.Category]map[string]catalog.MetricInfo {
	return catalog.MetricsByCategory()
}

func (s *Service) Breakdowns() map[string]catalog.BreakdownInfo {
	return catalog.Breakdowns()
}

// orderedSet remove vazios e duplicados mantendo a primeira ocorrência
func orderedSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
