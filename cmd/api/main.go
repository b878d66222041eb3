package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/samrahim8/curbappeal/internal/cache"
	"github.com/samrahim8/curbappeal/internal/config"
	"github.com/samrahim8/curbappeal/internal/handler"
	middlewarepkg "github.com/samrahim8/curbappeal/internal/middleware"
	"github.com/samrahim8/curbappeal/internal/places"
	"github.com/samrahim8/curbappeal/internal/router"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, cleanup := buildCache(ctx, cfg)
	defer cleanup()

	placesOpts := []places.Option{places.WithTimeout(cfg.HTTPTimeout)}
	if cfg.PlacesBaseURL != "" {
		placesOpts = append(placesOpts, places.WithBaseURL(cfg.PlacesBaseURL))
	}
	placesClient := places.NewClient(cfg.GooglePlacesKey, placesOpts...)

	handlers := router.Handlers{
		Audit:        handler.NewAuditHandler(placesClient, store, cfg.AuditCacheTTL),
		Autocomplete: handler.NewAutocompleteHandler(placesClient),
		OG:           handler.NewOGHandler(handler.NewAuditClient(nil, cfg.AppBaseURL)),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	logrus.WithField("port", cfg.Port).Info("api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("graceful shutdown failed")
	}
}

// buildCache prefers Redis when configured and falls back to the in-process
// cache with an hourly sweep of expired entries.
func buildCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.RedisAddr != "" {
		store, err := cache.NewRedis(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect redis")
		}
		logrus.WithField("addr", cfg.RedisAddr).Info("using redis audit cache")
		return store, func() {
			if err := store.Close(); err != nil {
				logrus.WithError(err).Warn("failed to close redis")
			}
		}
	}

	store := cache.NewMemory()
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		if removed := store.Sweep(); removed > 0 {
			logrus.WithField("removed", removed).Debug("swept expired audits")
		}
	}); err != nil {
		logrus.WithError(err).Fatal("failed to schedule cache sweep")
	}
	scheduler.Start()
	logrus.Info("using in-memory audit cache")

	return store, func() { scheduler.Stop() }
}
