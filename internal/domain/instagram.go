package domain

import (
	"encoding/json"
	"regexp"
)

var objectIDPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// IsObjectID indica se o id pode ser usado como segmento de caminho na Graph API ("me" incluso)
func IsObjectID(id string) bool {
	return objectIDPattern.MatchString(id)
}

type Profile struct {
	ID          string
	Username    string
	AccountType string
	MediaCount  int64
}

type Media struct {
	ID           string
	Caption      string
	MediaType    string
	MediaURL     string
	Permalink    string
	ThumbnailURL string
	Timestamp    string
	Username     string
	Children     json.RawMessage
}

// MediaInsights contém os valores numéricos de insights de uma mídia
type MediaInsights struct {
	MediaID     string
	MediaType   string
	Engagement  *int64
	Impressions *int64
	Reach       *int64
	Saved       *int64
	VideoViews  *int64
}

// UserInsights contém as métricas demográficas da conta
type UserInsights struct {
	UserID            string
	Username          string
	AudienceGenderAge json.RawMessage
	AudienceLocale    json.RawMessage
	AudienceCountry   json.RawMessage
	OnlineFollowers   json.RawMessage
}

type Hashtag struct {
	ID   string
	Name string
}
