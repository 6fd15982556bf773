// Package server wires configuration, providers, services, and the HTTP
// surface into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"yahoo-fantasy-assistant/internal/config"
	httpapi "yahoo-fantasy-assistant/internal/http"
	"yahoo-fantasy-assistant/internal/metrics"
	"yahoo-fantasy-assistant/internal/providers"
	"yahoo-fantasy-assistant/internal/providers/fixture"
	"yahoo-fantasy-assistant/internal/risk"
	"yahoo-fantasy-assistant/internal/trade"
	"yahoo-fantasy-assistant/internal/valuation"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	valuations    *valuation.Service
	trades        *trade.Engine
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	league, stats := newProviderFactory(logger, recorder).build(cfg)
	return newServerWithProviders(cfg, logger, league, stats, recorder, metricsSrv, metricsShutdown)
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, league providers.LeagueProvider, stats providers.StatsProvider, recorder *metrics.Recorder, metricsSrv httpServer, metricsShutdown func(context.Context) error) *Server {
	estimator := risk.NewEstimator(stats, risk.NewCache(), logger, recorder, cfg.Seasons)
	valuations := valuation.NewService(league, estimator, logger)
	trades := trade.NewEngine(league, logger)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		valuations:    valuations,
		trades:        trades,
		httpServer:    buildHTTPServer(cfg, valuations, trades, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, valuations *valuation.Service, trades *trade.Engine, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpapi.NewHandler(valuations, trades, defaultTeamKey(cfg), logger)
	router := httpapi.NewRouter(handler)
	wrapped := httpapi.LoggingMiddleware(logger, httpapi.MetricsMiddleware(recorder, router))

	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

// defaultTeamKey falls back to the fixture roster so the API works out of
// the box without Yahoo credentials.
func defaultTeamKey(cfg config.Config) string {
	if cfg.TeamKey != "" {
		return cfg.TeamKey
	}
	return fixture.TeamKey
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	telemetryCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	recorder, handler, shutdown, err := metricsSetup(context.Background(), telemetryCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && telemetryCfg.Enabled {
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + telemetryCfg.Port,
			Handler: handler,
		}}
	}
	return recorder, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
