package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aicl/list-api/internal/config"
	"github.com/aicl/list-api/internal/content"
	"github.com/aicl/list-api/internal/handlers"
	"github.com/aicl/list-api/internal/logic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := content.NewStore(content.StoreConfig{
		Dir:            cfg.DataDir,
		Concurrency:    cfg.LoadConcurrency,
		ReloadInterval: cfg.ReloadInterval,
		Logger:         logger,
	})
	if err := store.Load(ctx); err != nil {
		sugar.Fatalw("Initial content load failed", "dir", cfg.DataDir, "error", err)
	}

	var rdb *redis.Client
	var cache logic.RedisClient
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid REDIS_URL", "error", err)
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			sugar.Warnw("Redis unreachable, continuing without shared cache", "error", err)
		} else {
			cache = rdb
		}
	}

	h := handlers.New(handlers.Config{
		Content:     store,
		Leaderboard: logic.NewLeaderboardService(store, cache, cfg.CacheTTL, logger),
		Packs:       logic.NewPackService(store, logger),
		Changelog:   logic.NewChangelogService(store),
		Logger:      logger,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/list", h.GetList)
		r.Get("/list/{file}", h.GetLevel)
		r.Get("/leaderboard", h.GetLeaderboard)
		r.Get("/leaderboard/{player}", h.GetPlayer)
		r.Get("/packs", h.GetPacks)
		r.Get("/changelog", h.GetChangelog)
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := store.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			sugar.Errorw("Content watcher stopped", "error", err)
		}
	}()

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env, "dataDir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}
	if rdb != nil {
		rdb.Close()
	}
	sugar.Info("Server stopped")
}
