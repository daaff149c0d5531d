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
	"github.com/redis/go-redis/v9"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/api"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/api/middleware"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/classifier"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/config"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/logger"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/metrics"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/repository"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/service"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/storage"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/textproc"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/translation"
)

func main() {
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	ctx := context.Background()

	stopwords, err := textproc.LoadStopwords(cfg.Text.StopwordsPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load stopwords")
	}
	normalizer := textproc.NewNormalizer(stopwords)

	artifactStore, err := storage.NewStorage(cfg.Model.Storage.StorageConfig())
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize artifact storage")
	}

	loadCtx, cancelLoad := context.WithTimeout(ctx, time.Minute)
	clf, err := classifier.Load(loadCtx, artifactStore, cfg.Model.VectorizerKey, cfg.Model.ModelKey)
	cancelLoad()
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load sentiment model")
	}
	appLogger.WithFields(logger.Fields{
		"features": clf.Dimension(),
		"classes":  clf.Classes(),
	}).Info("Sentiment model loaded")

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}
	defer repository.Close(db)
	sqlDB, err := db.DB()
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to access database pool")
	}

	var (
		reg *prometheus.Registry
		m   *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
		m = metrics.New(reg)
	}

	gateway, closeGateway := buildGateway(ctx, cfg, m, appLogger)
	defer closeGateway()

	reviewService := service.NewReviewService(
		normalizer,
		clf,
		gateway,
		repository.NewReviewRepository(db),
		m,
		appLogger,
	)

	router := api.SetupRouter(&api.RouterConfig{
		Mode: cfg.Server.Mode,
		CORS: middleware.CORSConfig{
			AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
			AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
		},
		Logger:        appLogger,
		ReviewService: reviewService,
		DB:            sqlDB,
		Metrics:       m,
		Registry:      reg,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}

// buildGateway returns the translation gateway described by cfg and a cleanup func.
func buildGateway(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (translation.Gateway, func()) {
	if !cfg.Translation.Enabled {
		log.Info("Translation disabled")
		return translation.NoopGateway{}, func() {}
	}

	var gw translation.Gateway = translation.NewGoogleGateway(translation.GoogleConfig{
		BaseURL: cfg.Translation.BaseURL,
		Timeout: cfg.Translation.Timeout,
	}, m)

	cacheCfg := cfg.Translation.Cache
	if !cacheCfg.Enabled {
		return gw, func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cacheCfg.Addr,
		Password: cacheCfg.Password,
		DB:       cacheCfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).WithField("addr", cacheCfg.Addr).Warn("Translation cache unreachable, requests will bypass it until it recovers")
	} else {
		log.WithField("addr", cacheCfg.Addr).Info("Translation cache enabled")
	}

	return translation.NewCachedGateway(gw, rdb, cacheCfg.TTL, m), func() { _ = rdb.Close() }
}
