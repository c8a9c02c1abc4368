package service

import (
	"github.com/hexaaagon/tugascollecter/internal/config"
	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/internal/store"
)

type Services struct {
	StorageService StorageService
	RescheduleJob  RescheduleJob
}

func NewServices(storages *store.Storages, attachments AttachmentStorage, cache CacheMaintainer, scheduler Rescheduler, cfg config.Config, log *logger.Logger) *Services {
	return &Services{
		StorageService: NewStorageService(storages, attachments, cache, cfg.Cache, log),
		RescheduleJob:  NewRescheduleJob(scheduler, log),
	}
}
