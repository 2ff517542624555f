package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/dajarony/club-deportivo-quito/internal/config"
	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/platform/resilience"
	"github.com/dajarony/club-deportivo-quito/internal/site"
	"github.com/dajarony/club-deportivo-quito/internal/webclient"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	apiClient := webclient.NewClient(webclient.ClientConfig{
		HTTPClient:   &fasthttp.Client{},
		BaseURL:      cfg.APIBaseURL,
		Timeout:      cfg.APITimeout,
		MockFallback: cfg.MockFallbackEnabled,
		Logger:       logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APICircuitEnabled,
			FailureThreshold: cfg.APICircuitFailureCount,
			OpenTimeout:      cfg.APICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APICircuitHalfOpenMax,
		},
	})

	poller := site.NewLivePoller(apiClient.GetLiveMatch, cfg.LivePollInterval, logger)

	renderer, err := site.NewRenderer(apiClient, poller, logger)
	if err != nil {
		logger.Error("build site renderer", "error", err)
		os.Exit(1)
	}

	handler := site.NewHandler(renderer, apiClient, logger)
	srv := &http.Server{
		Addr:         cfg.WebAddr,
		Handler:      site.NewRouter(handler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go poller.Run(ctx)

	go func() {
		logger.Info("web server starting", "addr", cfg.WebAddr, "api_base_url", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("web server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	logger.Info("web server stopped")
}
