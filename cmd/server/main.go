package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/memoflash/memoflash/internal/api"
	"github.com/memoflash/memoflash/internal/config"
	"github.com/memoflash/memoflash/internal/db"
	"github.com/memoflash/memoflash/internal/fsrs"
	"github.com/memoflash/memoflash/internal/jobs"
	"github.com/memoflash/memoflash/internal/logger"
	"github.com/memoflash/memoflash/internal/repository/sqlite"
	"github.com/memoflash/memoflash/internal/services"
	"github.com/memoflash/memoflash/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("MemoFlash Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)
	log.Debug("request_retention=%v", cfg.RequestRetention)
	log.Debug("maximum_interval_days=%d", cfg.MaximumIntervalDays)
	log.Debug("queue_limit=%d", cfg.QueueLimit)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	profileRepo := sqlite.NewProfileRepository(database.DB)
	deckRepo := sqlite.NewDeckRepository(database.DB)
	cardRepo := sqlite.NewCardRepository(database.DB)
	scheduleRepo := sqlite.NewScheduleRepository(database.DB)
	reviewRepo := sqlite.NewReviewRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	// Scheduler
	params := fsrs.DefaultParams()
	params.RequestRetention = cfg.RequestRetention
	params.MaximumInterval = cfg.MaximumIntervalDays
	scheduler := fsrs.NewScheduler(params)

	// Worker pool and job queue
	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)

	// Services
	profileService := services.NewProfileService(profileRepo)
	deckService := services.NewDeckService(deckRepo)
	cardService := services.NewCardService(cardRepo, deckRepo, scheduleRepo, scheduler)
	reviewService := services.NewReviewService(scheduleRepo, reviewRepo, scheduler, cfg.QueueLimit)
	statsService := services.NewStatsService(statsRepo, profileRepo)
	importService := services.NewImportService(cardRepo, scheduleRepo, scheduler)

	jobQueue := jobs.NewWorkerQueue(importPool, importService)

	srv := &api.Server{
		DB:             database,
		ProfileService: profileService,
		DeckService:    deckService,
		CardService:    cardService,
		ReviewService:  reviewService,
		StatsService:   statsService,
		JobQueue:       jobQueue,
	}

	ctx, cancel := context.WithCancel(context.Background())
	importPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	importPool.Stop()

	log.Info("===========================================")
	log.Info("MemoFlash Server Stopped")
	log.Info("===========================================")
}
