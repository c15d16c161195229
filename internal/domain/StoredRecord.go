package domain

import (
	"encoding/json"
	"time"
)

type DataType string

const (
	DataTypeProfile      DataType = "profile"
	DataTypeMedia        DataType = "media"
	DataTypeMediaInsight DataType = "media_insight"
	DataTypeUserInsight  DataType = "user_insight"
	DataTypeHashtagMedia DataType = "hashtag_media"
)

func (d DataType) IsValid() bool {
	switch d {
	case DataTypeProfile, DataTypeMedia, DataTypeMediaInsight, DataTypeUserInsight, DataTypeHashtagMedia:
		return true
	}
	return false
}

// StoredRecord é a linha persistida na tabela de dados do Instagram.
// Campos que não se aplicam ao DataType ficam nulos.
type StoredRecord struct {
	ID        string    `json:"id"`
	DataType  DataType  `json:"data_type"`
	FetchedAt time.Time `json:"fetched_at"`
	SourceID  *string   `json:"source_id"`

	Username    *string `json:"username"`
	AccountType *string `json:"account_type"`
	MediaCount  *int64  `json:"media_count"`

	Caption      *string         `json:"caption"`
	MediaType    *string         `json:"media_type"`
	MediaURL     *string         `json:"media_url"`
	Permalink    *string         `json:"permalink"`
	ThumbnailURL *string         `json:"thumbnail_url"`
	PostedAt     *string         `json:"posted_at"`
	Children     json.RawMessage `json:"children"`

	MediaID     *string `json:"media_id"`
	Engagement  *int64  `json:"engagement"`
	Impressions *int64  `json:"impressions"`
	Reach       *int64  `json:"reach"`
	Saved       *int64  `json:"saved"`
	VideoViews  *int64  `json:"video_views"`

	UserID            *string         `json:"user_id"`
	AudienceGenderAge json.RawMessage `json:"audience_gender_age"`
	AudienceLocale    json.RawMessage `json:"audience_locale"`
	AudienceCountry   json.RawMessage `json:"audience_country"`
	OnlineFollowers   json.RawMessage `json:"online_followers"`

	Hashtag   *string `json:"hashtag"`
	HashtagID *string `json:"hashtag_id"`
}

// RecordFilter filtra a leitura de registros armazenados
type RecordFilter struct {
	DataType DataType
	Username string
	Hashtag  string
	Since    *time.Time
	Until    *time.Time
	Limit    int
}
