package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"realestate-api/config"
	httpLayer "realestate-api/http"
	"realestate-api/metrics"
	"realestate-api/repository"
	"realestate-api/service"
)

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Println("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initiate logger\"}")
		panic(err)
	}
	defer logger.Sync()

	var propertyRepo repository.PropertyRepository
	if cfg.RedisAddr != "" {
		propertyRepo = repository.NewRedisPropertyRepository(cfg.RedisAddr)
		logger.Info("using redis property store", zap.String("addr", cfg.RedisAddr))
	} else {
		propertyRepo = repository.NewPropertyRepositoryMemory()
		logger.Warn("REDIS_ADDR not set, property records are kept in memory")
	}

	recorder := metrics.NewLogRecorder(logger, cfg.MetricsNamespace)

	cashFlowService := service.NewCashFlowService()
	cashFlowHandler := httpLayer.NewCashFlowHandler(cashFlowService, logger, recorder)

	propertyService := service.NewPropertyService(propertyRepo, logger)
	propertyHandler := httpLayer.NewPropertyHandler(propertyService, logger, recorder)

	healthHandler := httpLayer.NewHealthHandler(propertyService, logger, recorder, cfg.Environment, cfg.Region)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/calculate/cash-flow",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(cashFlowHandler.Calculate),
		),
	)

	mux.Handle(
		"/properties",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			logger,
			http.HandlerFunc(propertyHandler.Handle),
		),
	)

	mux.Handle("/health", http.HandlerFunc(healthHandler.Handle))
	mux.Handle("/", http.HandlerFunc(healthHandler.Handle))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.RecoverMiddleware(logger, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening",
			zap.String("addr", cfg.Addr),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
