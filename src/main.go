package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/contre95/tourstats/src/features/config"
	"github.com/contre95/tourstats/src/features/hosting"
	"github.com/contre95/tourstats/src/features/ingest"
	"github.com/contre95/tourstats/src/features/jobs"
	"github.com/contre95/tourstats/src/features/logging"
	"github.com/contre95/tourstats/src/features/metrics"
	"github.com/contre95/tourstats/src/features/stats"
	"github.com/contre95/tourstats/src/infra/archive"
	"github.com/contre95/tourstats/src/infra/database"
	"github.com/contre95/tourstats/src/infra/setlist"
	"github.com/contre95/tourstats/src/infra/watcher"
	"github.com/contre95/tourstats/src/tour"
)

func main() {
	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	cfg := cfgManager.Get()

	// Create the statistics store
	store, err := database.NewSqliteStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	pipeline := metrics.NewPipeline()

	// Create the data providers
	setlistProvider := setlist.NewPhishNetProvider(cfg.Providers.Setlist.BaseURL, cfg.Providers.Setlist.APIKey)
	var archiveProvider tour.ArchiveProvider
	switch {
	case cfg.Providers.LocalArchive.Enabled:
		archiveProvider = archive.NewLocalArchiveProvider(cfg.Providers.LocalArchive.Path)
		slog.Info("Using local recordings archive", "path", cfg.Providers.LocalArchive.Path)
	case cfg.Providers.Archive.Enabled:
		archiveProvider = archive.NewPhishInProvider(cfg.Providers.Archive.BaseURL)
	default:
		slog.Info("No audio archive configured, duration statistics will be empty")
	}

	ingestService := ingest.NewService(setlistProvider, archiveProvider, store, pipeline)

	// Create the statistics service
	registry := stats.NewRegistry(stats.Limits{
		LongestSongs:    cfg.Stats.LongestSongs,
		RarestSongs:     cfg.Stats.RarestSongs,
		MostPlayedSongs: cfg.Stats.MostPlayedSongs,
		SongsNotPlayed:  cfg.Stats.SongsNotPlayed,
	}, pipeline)
	statsService := stats.NewService(registry, store, pipeline)

	// Create the job service
	jobService := jobs.NewService(&cfgManager.Get().Jobs)

	// Register the generation Task
	generateTask := stats.NewGenerateJobTask(statsService, ingestService)
	jobService.RegisterHandler("stats_generate", jobs.NewBaseTaskHandler(generateTask))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sweep finished jobs and their log files periodically
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				jobService.CleanupOldJobs(24 * time.Hour)
			case <-ctx.Done():
				return
			}
		}
	}()

	// Create and start the recordings watcher if enabled
	if cfg.Watcher.Enabled && cfg.Providers.LocalArchive.Enabled {
		eventChan := make(chan watcher.RecordingEvent, 10)
		recordingsWatcher, err := watcher.NewWatcher(eventChan)
		if err != nil {
			slog.Error("Failed to initialize recordings watcher", "error", err)
		} else if err := recordingsWatcher.Start(ctx, cfg.Providers.LocalArchive.Path); err != nil {
			slog.Error("Failed to start recordings watcher", "error", err)
		} else {
			defer recordingsWatcher.Stop()
			go recomputeOnRecordings(eventChan, jobService, cfgManager)
		}
	}

	// Create and start the Telegram bot if enabled
	var telegramBot *hosting.TelegramBot
	if cfg.Telegram.Enabled {
		var err error
		telegramBot, err = hosting.NewTelegramBot(cfgManager, statsService, jobService)
		if err != nil {
			slog.Error("Failed to initialize Telegram bot", "error", err)
		} else {
			go telegramBot.Start()
			slog.Info("Telegram bot started")
		}
	}

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, statsService, jobService)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfg.Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down server...")

	// Shutdown the Telegram bot
	if telegramBot != nil {
		telegramBot.Stop()
		slog.Info("Telegram bot stopped")
	}

	// Shutdown the server
	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}

// recomputeOnRecordings enqueues a generation job for every configured tour
// whenever the recordings directory settles after a change.
func recomputeOnRecordings(events <-chan watcher.RecordingEvent, jobService *jobs.Service, cfgManager *config.Manager) {
	for event := range events {
		tours := cfgManager.Get().Stats.Tours
		if len(tours) == 0 {
			slog.Warn("Recordings changed but no tours are configured", "path", event.Path)
			continue
		}
		for _, tourName := range tours {
			jobID, err := jobService.StartJob("stats_generate", "Recompute "+tourName, map[string]any{"tour": tourName})
			if err != nil {
				slog.Error("Failed to enqueue recompute job", "tour", tourName, "error", err)
				continue
			}
			slog.Info("Recompute job enqueued after recordings change", "tour", tourName, "job", jobID)
		}
	}
}
