package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"vehicle-query-service/internal/cache"
	"vehicle-query-service/internal/config"
	"vehicle-query-service/internal/db"
	httphandler "vehicle-query-service/internal/http"
	"vehicle-query-service/internal/logger"
	"vehicle-query-service/internal/metrics"
	"vehicle-query-service/internal/orchestrator"
	"vehicle-query-service/internal/repository"
	"vehicle-query-service/internal/service"
	"vehicle-query-service/internal/viewmodel"
)

const viewQueryTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	vehicleRepo := repository.NewVehicleRepository(database)
	fineRepo := repository.NewFineRepository(database)
	ownershipRepo := repository.NewOwnershipRepository(database)

	var payloadCache service.PayloadCache
	redisClient, err := cache.Connect(context.Background(), cfg.Cache.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		payloadCache = cache.NewQueryCache(redisClient, cfg.Cache.TTL)
		appLogger.Info().Dur("ttl", cfg.Cache.TTL).Msg("query cache enabled")
	}

	queryMetrics := metrics.New(prometheus.DefaultRegisterer)
	queryService := service.NewQueryService(vehicleRepo, fineRepo, ownershipRepo, payloadCache, queryMetrics, appLogger)

	normalizer := viewmodel.New(viewmodel.Options{
		CurrencySymbol: cfg.Display.CurrencySymbol,
		AmountFormat:   cfg.Display.AmountFormat,
	})
	orch := orchestrator.New(queryService, normalizer, viewQueryTimeout)

	handler := httphandler.NewHandler(queryService, orch, vehicleRepo, appLogger)
	router := httphandler.NewRouter(handler, cfg, prometheus.DefaultGatherer, appLogger)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		appLogger.Info().Str("addr", addr).Msg("starting vehicle query service")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("server forced to shutdown")
	}
}
