package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/config"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/database"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/flow"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/handler"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/logger"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/repository"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/router"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/service"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/session"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/validator"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/websocket"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("store_backend", cfg.StoreBackend).
		Str("session_backend", cfg.SessionBackend).
		Msg("Starting Test Vocacional Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL (when selected) ─────────────────────────
	var submissions repository.SubmissionStore
	if cfg.StoreBackend == config.StoreBackendPostgres {
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		submissions = repository.NewPostgresSubmissionStore(pool)
	} else {
		log.Warn().Msg("Using in-memory submission store; data is lost on restart")
		submissions = repository.NewMemorySubmissionStore()
	}

	// ─── Connect to Redis (when selected) ──────────────────────────────
	// Redis carries both the session store and the live feed queue; in
	// memory mode the feed is published straight to the local hub.
	hub := websocket.NewHub(log)

	var sessions session.Store
	var feed flow.FeedPublisher = hub
	var feedWorker *worker.FeedWorker

	if cfg.SessionBackend == config.SessionBackendRedis {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
		feed = worker.NewRedisFeed(rdb, log)
		feedWorker = worker.NewFeedWorker(rdb, hub, log)
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	// ─── Initialize Flow and Services ──────────────────────────────────
	assessmentFlow := flow.New(sessions, submissions, feed, log)
	panelService := service.NewPanelService(submissions, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Flow:   handler.NewFlowHandler(assessmentFlow, int(cfg.SessionTTL.Seconds()), log),
		Report: handler.NewReportHandler(assessmentFlow, log),
		Panel:  handler.NewPanelHandler(panelService, log),
		Live:   handler.NewLiveHandler(hub, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	if feedWorker != nil {
		go feedWorker.Start(workerCtx)
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the feed worker and let it finish its current event.
	workerCancel()
	time.Sleep(2 * time.Second)

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
