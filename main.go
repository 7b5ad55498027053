package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/avh/trend/database"
	"github.com/avh/trend/fetch"
	"github.com/avh/trend/service"
	"github.com/avh/trend/shared"
	"github.com/avh/trend/store"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// handleTermination processes context cancellation signals or interrupt signals from the OS.
func handleTermination(ctx context.Context, cancel context.CancelFunc) {
	// Listen for interrupt signals.
	signals := []os.Signal{os.Interrupt}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, signals...)

	// Wait for the context to be cancelled or an interrupt signal.
	for {
		select {
		case <-ctx.Done():
			return

		case <-interrupt:
			cancel()
		}
	}
}

func main() {
	var cfg Config
	err := loadConfig(&cfg, "")
	if err != nil {
		log.Error().Msgf("loading config: %v", err)
		return
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	logger := log.With().Str("service", "trend").Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	timeframe, err := shared.ParseTimeframe(cfg.Timeframe)
	if err != nil {
		logger.Error().Msgf("parsing timeframe: %v", err)
		return
	}

	fmp, err := fetch.NewFMPClient(&fetch.FMPConfig{APIKey: cfg.FMPAPIKey, BaseURL: fetch.BaseURL})
	if err != nil {
		logger.Error().Msgf("creating fmp client: %v", err)
		return
	}

	cacheLogger := logger.With().Str("component", "cache").Logger()
	cache, err := store.NewCache(&store.CacheConfig{
		Source:   fmp,
		Capacity: cfg.CacheCapacity,
		Logger:   &cacheLogger,
	})
	if err != nil {
		logger.Error().Msgf("creating series cache: %v", err)
		return
	}

	var storer database.SignalStorer
	if cfg.DatabaseEndpoint != "" {
		dbLogger := logger.With().Str("component", "database").Logger()
		db, err := database.NewDatabase(ctx, &database.DatabaseConfig{
			Endpoint: cfg.DatabaseEndpoint,
			User:     cfg.DatabaseUser,
			Pass:     cfg.DatabasePass,
			Logger:   &dbLogger,
		})
		if err != nil {
			logger.Error().Msgf("creating database: %v", err)
			return
		}
		storer = db
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		logger.Error().Msgf("creating job scheduler: %v", err)
		return
	}

	analyserLogger := logger.With().Str("component", "analyser").Logger()
	analyser, err := service.NewAnalyser(&service.AnalyserConfig{
		Watchlist:    cfg.Watchlist,
		Cache:        cache,
		Storer:       storer,
		JobScheduler: scheduler,
		ScanSchedule: cfg.ScanSchedule,
		Logger:       analyserLogger,
	})
	if err != nil {
		logger.Error().Msgf("creating analyser: %v", err)
		return
	}

	go handleTermination(ctx, cancel)

	// Run an initial scan before settling into the schedule.
	reports := analyser.ScanWatchlist(ctx, timeframe)
	logger.Info().Msgf("initial watchlist scan complete: %d symbols", len(reports))

	err = analyser.Run(ctx)
	if err != nil {
		logger.Error().Msgf("running analyser: %v", err)
	}
}
