package aggregating

import (
	"encoding/json"

	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/pkg/utils"
)

func (s *Service) newRecord(dataType domain.DataType, sourceID string) (*domain.StoredRecord, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	return &domain.StoredRecord{
		ID:        id,
		DataType:  dataType,
		FetchedAt: s.now().UTC(),
		SourceID:  optional(sourceID),
	}, nil
}

func (s *Service) profileRecord(profile *domain.Profile) (*domain.StoredRecord, error) {
	record, err := s.newRecord(domain.DataTypeProfile, profile.ID)
	if err != nil {
		return nil, err
	}

	record.UserID = optional(profile.ID)
	record.Username = optional(profile.Username)
	record.AccountType = optional(profile.AccountType)
	mediaCount := profile.MediaCount
	record.MediaCount = &mediaCount

	return record, nil
}

// mediaRecords gera uma linha por mídia; tag preenche hashtag e hashtag_id
func (s *Service) mediaRecords(dataType domain.DataType, media []domain.Media, tag *domain.Hashtag) ([]*domain.StoredRecord, error) {
	records := make([]*domain.StoredRecord, 0, len(media))
	for _, m := range media {
		record, err := s.newRecord(dataType, m.ID)
		if err != nil {
			return nil, err
		}

		record.Username = optional(m.Username)
		record.Caption = optional(m.Caption)
		record.MediaType = optional(m.MediaType)
		record.MediaURL = optional(m.MediaURL)
		record.Permalink = optional(m.Permalink)
		record.ThumbnailURL = optional(m.ThumbnailURL)
		record.PostedAt = optional(m.Timestamp)
		record.Children = optionalJSON(m.Children)

		if tag != nil {
			record.Hashtag = optional(tag.Name)
			record.HashtagID = optional(tag.ID)
		}

		records = append(records, record)
	}
	return records, nil
}

func (s *Service) mediaInsightRecord(insights *domain.MediaInsights) (*domain.StoredRecord, error) {
	record, err := s.newRecord(domain.DataTypeMediaInsight, insights.MediaID)
	if err != nil {
		return nil, err
	}

	record.MediaID = optional(insights.MediaID)
	record.MediaType = optional(insights.MediaType)
	record.Engagement = insights.Engagement
	record.Impressions = insights.Impressions
	record.Reach = insights.Reach
	record.Saved = insights.Saved
	record.VideoViews = insights.VideoViews

	return record, nil
}

func (s *Service) userInsightRecord(insights *domain.UserInsights) (*domain.StoredRecord, error) {
	record, err := s.newRecord(domain.DataTypeUserInsight, insights.UserID)
	if err != nil {
		return nil, err
	}

	record.UserID = optional(insights.UserID)
	record.Username = optional(insights.Username)
	record.AudienceGenderAge = optionalJSON(insights.AudienceGenderAge)
	record.AudienceLocale = optionalJSON(insights.AudienceLocale)
	record.AudienceCountry = optionalJSON(insights.AudienceCountry)
	record.OnlineFollowers = optionalJSON(insights.OnlineFollowers)

	return record, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// optionalJSON trata ausência e null como coluna nula
func optionalJSON(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
