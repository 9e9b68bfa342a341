package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"faqsite/internal/config"
	"faqsite/internal/faq"
	"faqsite/internal/jobs"
	"faqsite/internal/logger"
	"faqsite/internal/metrics"
	"faqsite/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	// A missing or unreadable FAQ file serves an empty list
	records, err := faq.LoadFile(cfg.FAQFile)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.FAQFile).Msg("serving empty FAQ list")
	}
	store := faq.NewStore(faq.NewIndex(records))
	log.Info().Int("records", store.Index().Len()).Str("path", cfg.FAQFile).Msg("FAQ list loaded")

	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ConfigFile).Msg("failed to load config file")
	}

	metrics.Init(store, prometheus.DefaultRegisterer)

	if cfg.ReloadInterval > 0 {
		reloader := jobs.NewReloader(store, cfg.FAQFile, cfg.ReloadInterval, log)
		go reloader.Start(ctx)
	}

	srv := server.New(cfg, store, log)
	srv.RegisterRoutes(yamlCfg)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	log.Info().Str("addr", cfg.ServerAddr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
