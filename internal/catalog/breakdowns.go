package catalog

import "sort"

type BreakdownInfo struct {
	Description       string   `json:"description"`
	Values            []string `json:"values"`
	CompatibleMetrics []string `json:"compatible_metrics"`
}

// SupportsMetric informa se o breakdown pode ser aplicado à métrica
func (b BreakdownInfo) SupportsMetric(metric string) bool {
	for _, m := range b.CompatibleMetrics {
		if m == metric {
			return true
		}
	}
	return false
}

var demographicMetrics = []string{
	"audience_demographics",
	"engaged_audience_demographics",
	"follower_demographics",
}

var breakdowns = map[string]BreakdownInfo{
	"contact_button_type": {
		Description:       "Breaks down insights by type of contact button clicked",
		Values:            []string{"call_phone_number", "text_message", "email", "directions"},
		CompatibleMetrics: []string{"website_clicks"},
	},
	"follow_type": {
		Description:       "Breaks down follows by type",
		Values:            []string{"follow", "unfollow"},
		CompatibleMetrics: []string{"follows"},
	},
	"media_product_type": {
		Description: "Breaks down insights by media type",
		Values:      []string{"feed", "story", "reels"},
		CompatibleMetrics: []string{
			"accounts_engaged", "comments", "likes", "reach",
			"saved", "shares", "total_interactions", "views",
		},
	},
	"age": {
		Description:       "Breaks down demographics by age range",
		Values:            []string{"13-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65+"},
		CompatibleMetrics: demographicMetrics,
	},
	"city": {
		Description:       "Breaks down demographics by city",
		Values:            []string{},
		CompatibleMetrics: demographicMetrics,
	},
	"country": {
		Description:       "Breaks down demographics by country (ISO 3166 code)",
		Values:            []string{},
		CompatibleMetrics: demographicMetrics,
	},
	"gender": {
		Description:       "Breaks down demographics by gender",
		Values:            []string{"F", "M", "U"},
		CompatibleMetrics: demographicMetrics,
	},
}

func LookupBreakdown(name string) (BreakdownInfo, bool) {
	b, ok := breakdowns[name]
	return b, ok
}

func BreakdownNames() []string {
	names := make([]string, 0, len(breakdowns))
	for name := range breakdowns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Breakdowns retorna uma cópia do catálogo de breakdowns
func Breakdowns() map[string]BreakdownInfo {
	out := make(map[string]BreakdownInfo, len(breakdowns))
	for k, v := range breakdowns {
		out[k] = v
	}
	return out
}
