package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/vfg2006/instagram-insights-api/internal/api/handler"
	"github.com/vfg2006/instagram-insights-api/internal/api/handler/router"
	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
	"github.com/vfg2006/instagram-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta as rotas e a cadeia global de middlewares
func NewHandler(
	cfg *config.Config,
	insightService insighting.Insighter,
	aggregator aggregating.Aggregator,
	authenticator authenticating.Authenticator,
	syncer handler.AggregationSyncer,
) http.Handler {
	prefix := cfg.App.APIPrefix

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(cfg)...),
		router.WithRoutes(handler.Instagram(prefix, insightService)...),
		router.WithRoutes(handler.Aggregator(prefix, aggregator, authenticator)...),
		router.WithRoutes(handler.Records(prefix, aggregator)...),
		router.WithRoutes(handler.AggregationSync(prefix, syncer, authenticator)...),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		limiter.Limit,
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	cfg *config.Config,
	insightService insighting.Insighter,
	aggregator aggregating.Aggregator,
	authenticator authenticating.Authenticator,
	syncer handler.AggregationSyncer,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, insightService, aggregator, authenticator, syncer),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Run atende até receber SIGINT/SIGTERM ou até ctx terminar e então desliga com timeout
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("server: interrupt signal received")
	case <-ctx.Done():
		log.L.Info("server: context cancelled")
	case err := <-errCh:
		log.L.WithError(err).Error("server: failed to serve")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("server: graceful shutdown started")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server: shutdown failed")
		return err
	}

	log.L.Info("server: stopped")
	return nil
}
