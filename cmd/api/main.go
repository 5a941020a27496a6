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

	"go.uber.org/zap"

	"github.com/seeracv/api/internal/catalog"
	"github.com/seeracv/api/internal/geonames"
	"github.com/seeracv/api/internal/handlers"
	"github.com/seeracv/api/internal/llm"
	"github.com/seeracv/api/internal/platform/config"
	"github.com/seeracv/api/internal/platform/observability"
	"github.com/seeracv/api/internal/services"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	tables, err := catalog.Load()
	if err != nil {
		logger.Fatal("failed to load reference tables", zap.Error(err))
	}

	directoryService, err := services.NewDirectoryService(services.DirectoryServiceDeps{
		Catalog:   tables,
		ResultCap: cfg.Search.ResultCap,
	})
	if err != nil {
		logger.Fatal("failed to initialise directory service", zap.Error(err))
	}

	geocoder := geonames.NewClient(cfg.Geonames.Username,
		geonames.WithBaseURL(cfg.Geonames.BaseURL),
		geonames.WithLang(cfg.Geonames.Lang),
		geonames.WithTimeout(cfg.Geonames.Timeout),
	)
	if !geocoder.Configured() {
		logger.Warn("geonames username not configured; /api/cities/ar will be unavailable")
	}

	cityService, err := services.NewCityService(services.CityServiceDeps{
		Countries: tables.CountriesArabic,
		Geocoder:  geocoder,
		Cache:     services.NewMemoryCityCache(),
		ResultCap: cfg.Search.ResultCap,
	})
	if err != nil {
		logger.Fatal("failed to initialise city service", zap.Error(err))
	}

	gemini, err := llm.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.Fatal("failed to initialise gemini client", zap.Error(err))
	}
	if gemini == nil {
		logger.Warn("gemini api key not configured; /api/translate-resume will be unavailable")
	}

	var completer services.Completer
	if gemini != nil {
		completer = gemini
	}
	translationService, err := services.NewTranslationService(services.TranslationServiceDeps{
		Completer: completer,
	})
	if err != nil {
		logger.Fatal("failed to initialise translation service", zap.Error(err))
	}

	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger.Named("http")),
		observability.RecoveryMiddleware(logger.Named("http")),
		observability.RequestLoggerMiddleware(),
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(middlewares...),
		handlers.WithDirectoryRoutes(handlers.NewDirectoryHandlers(directoryService).Routes),
		handlers.WithCityRoutes(handlers.NewCityHandlers(cityService).Routes),
		handlers.WithTranslationRoutes(handlers.NewTranslationHandlers(translationService).Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("seeracv api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
