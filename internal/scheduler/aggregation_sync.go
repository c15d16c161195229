package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

// AggregationSyncConfig representa a configuração da agregação agendada
type AggregationSyncConfig struct {
	CronSchedule string
	MediaLimit   int
	Hashtags     []string
	SyncEnabled  bool
}

// SyncStatus é o estado exposto em GET sync/status
type SyncStatus struct {
	SyncEnabled         bool                       `json:"sync_enabled"`
	SyncCron            string                     `json:"sync_cron"`
	MediaLimit          int                        `json:"media_limit"`
	Hashtags            []string                   `json:"hashtags"`
	Running             bool                       `json:"running"`
	LastSyncStartedAt   *time.Time                 `json:"last_sync_started_at"`
	LastSyncCompletedAt *time.Time                 `json:"last_sync_completed_at"`
	LastError           string                     `json:"last_error,omitempty"`
	LastSummary         *domain.AggregationSummary `json:"last_summary,omitempty"`
}

// AggregationSyncService executa AggregateAll no cron configurado.
// Execuções sobrepostas são ignoradas.
type AggregationSyncService struct {
	scheduler  *gocron.Scheduler
	config     AggregationSyncConfig
	aggregator aggregating.Aggregator
	baseCtx    context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
	lastSummary         *domain.AggregationSummary
}

func NewAggregationSyncService(aggregator aggregating.Aggregator, appConfig *config.Config) *AggregationSyncService {
	syncConfig := AggregationSyncConfig{
		CronSchedule: appConfig.AggregationSync.CronSchedule,
		MediaLimit:   appConfig.AggregationSync.MediaLimit,
		Hashtags:     aggregating.NormalizeHashtags(appConfig.AggregationSync.Hashtags),
		SyncEnabled:  appConfig.AggregationSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"records":       syncConfig.MediaLimit,
		"hashtag":       syncConfig.Hashtags,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: aggregation sync configuration loaded")

	return &AggregationSyncService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     syncConfig,
		aggregator: aggregator,
		baseCtx:    context.Background(),
	}
}

// Start registra o job no cron e para o agendador quando ctx termina
func (s *AggregationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("scheduler: aggregation sync disabled by configuration")
		return nil
	}

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runGuarded(s.newRunContext())
	})
	if err != nil {
		return fmt.Errorf("scheduler: invalid aggregation cron %q: %w", s.config.CronSchedule, err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: aggregation sync started")

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: stopping aggregation sync")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução em segundo plano.
// Retorna false quando já existe uma execução em andamento.
func (s *AggregationSyncService) TriggerManualSync() bool {
	if !s.tryStart() {
		log.L.Info("scheduler: aggregation already running, manual trigger ignored")
		return false
	}

	go s.run(s.newRunContext())
	return true
}

// RunOnce executa a agregação de forma síncrona, usada pelo CLI
func (s *AggregationSyncService) RunOnce(ctx context.Context) (*domain.AggregationSummary, error) {
	if !s.tryStart() {
		return nil, fmt.Errorf("scheduler: aggregation already running")
	}
	return s.run(ctx)
}

func (s *AggregationSyncService) runGuarded(ctx context.Context) {
	if !s.tryStart() {
		log.ForContext(ctx).Info("scheduler: aggregation already running, skipping")
		return
	}
	_, _ = s.run(ctx)
}

func (s *AggregationSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *AggregationSyncService) run(ctx context.Context) (*domain.AggregationSummary, error) {
	startTime := time.Now()
	logger := log.ForContext(ctx)
	logger.Info("scheduler: aggregation started")

	summary, err := s.aggregator.AggregateAll(ctx, domain.AggregationRequest{
		MediaLimit: &s.config.MediaLimit,
		Hashtags:   s.config.Hashtags,
	})

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastSummary = summary
	}
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("scheduler: aggregation failed")
		return nil, err
	}

	logger.WithField("duration_ms", time.Since(startTime).Milliseconds()).Info("scheduler: aggregation finished")
	return summary, nil
}

func (s *AggregationSyncService) newRunContext() context.Context {
	s.syncMutex.Lock()
	base := s.baseCtx
	s.syncMutex.Unlock()

	ctx, _ := log.WithCorrelationID(base)
	return ctx
}

// GetStatus retorna o estado atual do agendador
func (s *AggregationSyncService) GetStatus() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		SyncEnabled: s.config.SyncEnabled,
		SyncCron:    s.config.CronSchedule,
		MediaLimit:  s.config.MediaLimit,
		Hashtags:    s.config.Hashtags,
		Running:     s.syncRunning,
		LastError:   s.lastError,
		LastSummary: s.lastSummary,
	}
	if !s.lastSyncStartedAt.IsZero() {
		started := s.lastSyncStartedAt
		status.LastSyncStartedAt = &started
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completed := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completed
	}

	return status
}
