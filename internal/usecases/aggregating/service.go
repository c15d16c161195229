package aggregating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/instagram-insights-api/infrastructure/repository"
	"github.com/vfg2006/instagram-insights-api/internal/catalog"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/aggregator_mock.go -package=mocks

// Aggregator busca dados da Graph API e grava cada item como uma linha nova
type Aggregator interface {
	FetchAndStoreProfile(ctx context.Context) (*domain.StoredRecord, error)
	FetchAndStoreMedia(ctx context.Context, limit int) ([]*domain.StoredRecord, error)
	FetchAndStoreMediaInsights(ctx context.Context, mediaID, mediaType string) (*domain.StoredRecord, error)
	FetchAndStoreUserInsights(ctx context.Context) (*domain.StoredRecord, error)
	FetchAndStoreHashtagMedia(ctx context.Context, hashtag string, limit int) ([]*domain.StoredRecord, error)
	AggregateAll(ctx context.Context, req domain.AggregationRequest) (*domain.AggregationSummary, error)
	GetRecord(ctx context.Context, id string) (*domain.StoredRecord, error)
	ListRecords(ctx context.Context, filter domain.RecordFilter) ([]*domain.StoredRecord, error)
}

type Service struct {
	cfg        *config.Config
	instagram  instagram.InstagramIntegrator
	repository repository.RecordRepository
	now        func() time.Time
}

func NewService(cfg *config.Config, ig instagram.InstagramIntegrator, repo repository.RecordRepository) *Service {
	return &Service{
		cfg:        cfg,
		instagram:  ig,
		repository: repo,
		now:        time.Now,
	}
}

func (s *Service) FetchAndStoreProfile(ctx context.Context) (*domain.StoredRecord, error) {
	record, _, err := s.storeProfile(ctx)
	return record, err
}

func (s *Service) storeProfile(ctx context.Context) (*domain.StoredRecord, *domain.Profile, error) {
	profile, err := s.instagram.GetProfile(ctx)
	if err != nil {
		return nil, nil, err
	}

	record, err := s.profileRecord(profile)
	if err != nil {
		return nil, nil, err
	}

	if err := s.store(ctx, domain.DataTypeProfile, record); err != nil {
		return nil, nil, err
	}

	return record, profile, nil
}

func (s *Service) FetchAndStoreMedia(ctx context.Context, limit int) ([]*domain.StoredRecord, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		return []*domain.StoredRecord{}, nil
	}

	media, err := s.instagram.GetMedia(ctx, limit)
	if err != nil {
		return nil, err
	}

	records, err := s.mediaRecords(domain.DataTypeMedia, media, nil)
	if err != nil {
		return nil, err
	}

	if err := s.store(ctx, domain.DataTypeMedia, records...); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Service) FetchAndStoreMediaInsights(ctx context.Context, mediaID, mediaType string) (*domain.StoredRecord, error) {
	mediaID = strings.TrimSpace(mediaID)
	if mediaID == "" {
		return nil, domain.NewMissingFieldError("media_id", "media_id is required")
	}
	if !domain.IsObjectID(mediaID) {
		return nil, domain.NewValidationError("media_id", fmt.Sprintf("invalid media_id %q", mediaID))
	}

	// sem tipo informado o integrador consulta a Graph API
	mediaType = strings.ToUpper(strings.TrimSpace(mediaType))
	if mediaType != "" {
		if _, ok := catalog.MediaMetrics(mediaType); !ok {
			return nil, &domain.ValidationError{
				Field:   "media_type",
				Message: fmt.Sprintf("unsupported media type %q", mediaType),
				Details: map[string]any{"allowed": catalog.MediaTypes()},
			}
		}
	}

	insights, err := s.instagram.GetMediaInsights(ctx, mediaID, mediaType)
	if err != nil {
		return nil, err
	}

	record, err := s.mediaInsightRecord(insights)
	if err != nil {
		return nil, err
	}

	if err := s.store(ctx, domain.DataTypeMediaInsight, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *Service) FetchAndStoreUserInsights(ctx context.Context) (*domain.StoredRecord, error) {
	return s.storeUserInsights(ctx, nil)
}

// storeUserInsights reaproveita o perfil já buscado quando houver
func (s *Service) storeUserInsights(ctx context.Context, profile *domain.Profile) (*domain.StoredRecord, error) {
	insights, err := s.instagram.GetUserInsights(ctx)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		if profile, err = s.instagram.GetProfile(ctx); err != nil {
			return nil, err
		}
	}
	if profile.ID == "" {
		return nil, errors.New("could not get user id from profile")
	}
	insights.UserID = profile.ID
	insights.Username = profile.Username

	record, err := s.userInsightRecord(insights)
	if err != nil {
		return nil, err
	}

	if err := s.store(ctx, domain.DataTypeUserInsight, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *Service) FetchAndStoreHashtagMedia(ctx context.Context, hashtag string, limit int) ([]*domain.StoredRecord, error) {
	name := normalizeHashtag(hashtag)
	if name == "" {
		return nil, domain.NewMissingFieldError("hashtag_name", "hashtag_name is required")
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	userID, err := s.hashtagUserID(ctx, nil)
	if err != nil {
		return nil, err
	}

	return s.storeHashtagMedia(ctx, userID, name, limit)
}

func (s *Service) storeHashtagMedia(ctx context.Context, userID, name string, limit int) ([]*domain.StoredRecord, error) {
	tag, err := s.instagram.SearchHashtag(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	if limit == 0 {
		return []*domain.StoredRecord{}, nil
	}

	media, err := s.instagram.GetHashtagMedia(ctx, tag.ID, userID, limit)
	if err != nil {
		return nil, err
	}

	records, err := s.mediaRecords(domain.DataTypeHashtagMedia, media, tag)
	if err != nil {
		return nil, err
	}

	if err := s.store(ctx, domain.DataTypeHashtagMedia, records...); err != nil {
		return nil, err
	}

	return records, nil
}

// hashtagUserID usa INSTAGRAM_USER_ID e, na falta dele, o id do perfil
func (s *Service) hashtagUserID(ctx context.Context, profile *domain.Profile) (string, error) {
	if s.cfg.Instagram.UserID != "" {
		return s.cfg.Instagram.UserID, nil
	}

	if profile == nil {
		var err error
		if profile, err = s.instagram.GetProfile(ctx); err != nil {
			return "", err
		}
	}
	if profile.ID == "" {
		return "", errors.New("could not get user id from profile")
	}

	return profile.ID, nil
}

// AggregateAll executa as etapas em sequência; a falha de uma etapa fica no resumo
// e não interrompe as demais
func (s *Service) AggregateAll(ctx context.Context, req domain.AggregationRequest) (*domain.AggregationSummary, error) {
	limit := req.Limit()
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	hashtags := NormalizeHashtags(req.Hashtags)

	logger := log.ForContext(ctx)
	logger.WithFields(log.Fields{"records": limit, "hashtag": strings.Join(hashtags, ",")}).Info("aggregating: starting aggregation")

	summary := &domain.AggregationSummary{}

	_, profile, err := s.storeProfile(ctx)
	if err != nil {
		logger.WithError(err).Error("aggregating: profile step failed")
		summary.Profile = domain.ProfileStatus{Status: domain.StatusError, Error: err.Error()}
	} else {
		summary.Profile = domain.ProfileStatus{Username: profile.Username, Status: domain.StatusSuccess}
	}

	mediaRecords, err := s.FetchAndStoreMedia(ctx, limit)
	if err != nil {
		logger.WithError(err).Error("aggregating: media step failed")
		summary.Media = domain.MediaStatus{Status: domain.StatusError, Error: err.Error()}
	} else {
		summary.Media = domain.MediaStatus{Count: len(mediaRecords), Status: domain.StatusSuccess}
	}

	summary.MediaInsights.Items = make([]domain.MediaInsightStatus, 0, len(mediaRecords))
	for _, media := range mediaRecords {
		mediaID := deref(media.SourceID)
		item := domain.MediaInsightStatus{MediaID: mediaID, Status: domain.StatusSuccess}

		if _, err := s.FetchAndStoreMediaInsights(ctx, mediaID, deref(media.MediaType)); err != nil {
			logger.WithError(err).WithField("media_id", mediaID).Error("aggregating: media insights step failed")
			item.Status = domain.StatusError
			item.Error = err.Error()
		}
		summary.MediaInsights.Items = append(summary.MediaInsights.Items, item)
	}
	summary.MediaInsights.Count = len(summary.MediaInsights.Items)

	if _, err := s.storeUserInsights(ctx, profile); err != nil {
		logger.WithError(err).Error("aggregating: user insights step failed")
		summary.UserInsights = domain.StepStatus{Status: domain.StatusError, Error: err.Error()}
	} else {
		summary.UserInsights = domain.StepStatus{Status: domain.StatusSuccess}
	}

	if len(hashtags) > 0 {
		summary.Hashtags = &domain.HashtagsStatus{Items: make([]domain.HashtagStatus, 0, len(hashtags))}

		userID, userErr := s.hashtagUserID(ctx, profile)
		for _, name := range hashtags {
			item := domain.HashtagStatus{Hashtag: name, Status: domain.StatusSuccess}

			err := userErr
			if err == nil {
				var records []*domain.StoredRecord
				records, err = s.storeHashtagMedia(ctx, userID, name, limit)
				item.Count = len(records)
			}
			if err != nil {
				logger.WithError(err).WithField("hashtag", name).Error("aggregating: hashtag step failed")
				item.Status = domain.StatusError
				item.Error = err.Error()
			}
			summary.Hashtags.Items = append(summary.Hashtags.Items, item)
		}
		summary.Hashtags.Count = len(summary.Hashtags.Items)
	}

	logger.Info("aggregating: aggregation finished")
	return summary, nil
}

func (s *Service) GetRecord(ctx context.Context, id string) (*domain.StoredRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewMissingFieldError("id", "id is required")
	}

	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
		return nil, storageError("read", 0, err)
	}

	return record, nil
}

func (s *Service) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]*domain.StoredRecord, error) {
	if filter.DataType != "" && !filter.DataType.IsValid() {
		return nil, domain.NewValidationError("data_type", "unknown data_type "+string(filter.DataType))
	}
	if filter.Limit < 0 {
		return nil, domain.NewValidationError("limit", "limit must not be negative")
	}
	if filter.Since != nil && filter.Until != nil && filter.Since.After(*filter.Until) {
		return nil, domain.NewValidationError("since", "since must not be after until")
	}
	filter.Hashtag = normalizeHashtag(filter.Hashtag)
	filter.Limit = repository.NormalizeLimit(filter.Limit)

	records, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, storageError("read", 0, err)
	}

	return records, nil
}

// store grava o lote inteiro; não há retry nem desfazimento de lotes anteriores
func (s *Service) store(ctx context.Context, dataType domain.DataType, records ...*domain.StoredRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := s.repository.Insert(ctx, records); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"data_type": dataType,
			"records":   len(records),
		}).Error("aggregating: failed to store records")
		return storageError("insert", len(records), err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"data_type": dataType,
		"records":   len(records),
	}).Info("aggregating: records stored")
	return nil
}

func storageError(op string, count int, err error) error {
	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return &domain.StorageError{Op: op, Count: count, Err: err}
}

func validateLimit(limit int) error {
	if limit < 0 {
		return domain.NewValidationError("media_limit", "media_limit must be greater than or equal to 0")
	}
	return nil
}

// NormalizeHashtags remove '#', espaços, vazios e repetidos mantendo a ordem
func NormalizeHashtags(hashtags []string) []string {
	seen := make(map[string]struct{}, len(hashtags))
	out := make([]string, 0, len(hashtags))
	for _, h := range hashtags {
		name := normalizeHashtag(h)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func normalizeHashtag(name string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(name), "#"))
}
