package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/hexaaagon/tugascollecter/internal/cache"
	"github.com/hexaaagon/tugascollecter/internal/config"
	"github.com/hexaaagon/tugascollecter/internal/files"
	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/internal/notify"
	"github.com/hexaaagon/tugascollecter/internal/service"
	"github.com/hexaaagon/tugascollecter/internal/store"
	"github.com/hexaaagon/tugascollecter/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("tugasd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.LogToFile {
		log = logger.NewFileLogger("tugasd")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	cacheStore := cache.New(storages.KV, cfg.Cache, log)

	platform := files.NewHeadlessPlatform(log)
	attachments := files.NewAttachmentStore(cfg.Storage.Files, platform, platform, platform, log)

	scheduler := notify.NewScheduler(
		notify.NewLogNotifier(log),
		notify.AlwaysGranted{},
		storages.Homework,
		storages.Preferences,
		cfg.Notify,
		log,
	)

	services := service.NewServices(storages, attachments, cacheStore, scheduler, *cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services.StorageService.Initialize(ctx)
	if err = scheduler.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("error checking notification permission")
	}

	ws := workers.NewWorkers(
		workers.NewRescheduleWorker(ctx, services.RescheduleJob, cfg.Workers.RescheduleInterval),
	)
	ws.Run()
	defer services.RescheduleJob.Stop()

	log.Info().Msg("tugasd started")
	<-ctx.Done()
	log.Info().Msg("shutting down")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
