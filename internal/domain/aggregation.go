package domain

const DefaultMediaLimit = 25

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type AggregationRequest struct {
	MediaLimit *int     `json:"media_limit,omitempty"`
	Hashtags   []string `json:"hashtags,omitempty"`
}

// Limit retorna o limite de mídias, aplicando o padrão quando ausente
func (r AggregationRequest) Limit() int {
	if r.MediaLimit == nil {
		return DefaultMediaLimit
	}
	return *r.MediaLimit
}

type ProfileStatus struct {
	Username string `json:"username,omitempty"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

type MediaStatus struct {
	Count  int    `json:"count"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type MediaInsightStatus struct {
	MediaID string `json:"media_id"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

type MediaInsightsStatus struct {
	Count int                  `json:"count"`
	Items []MediaInsightStatus `json:"items"`
}

type StepStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type HashtagStatus struct {
	Hashtag string `json:"hashtag"`
	Count   int    `json:"count"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

type HashtagsStatus struct {
	Count int             `json:"count"`
	Items []HashtagStatus `json:"items"`
}

// AggregationSummary registra o resultado de cada etapa da agregação
type AggregationSummary struct {
	Profile       ProfileStatus       `json:"profile"`
	Media         MediaStatus         `json:"media"`
	MediaInsights MediaInsightsStatus `json:"media_insights"`
	UserInsights  StepStatus          `json:"user_insights"`
	Hashtags      *HashtagsStatus     `json:"hashtags,omitempty"`
}
