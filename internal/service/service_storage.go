// Package service composes the storage layers behind a single facade and
// hosts the background reschedule job.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hexaaagon/tugascollecter/internal/config"
	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/internal/store"
	"github.com/hexaaagon/tugascollecter/internal/validators"
	"github.com/hexaaagon/tugascollecter/models"
)

type storageService struct {
	storages    *store.Storages
	attachments AttachmentStorage
	cache       CacheMaintainer
	cacheCfg    config.Cache
	validator   validators.Validator
	logger      *logger.Logger

	now func() time.Time
}

func NewStorageService(storages *store.Storages, attachments AttachmentStorage, cache CacheMaintainer, cacheCfg config.Cache, log *logger.Logger) StorageService {
	return &storageService{
		storages:    storages,
		attachments: attachments,
		cache:       cache,
		cacheCfg:    cacheCfg,
		validator:   validators.NewCollectionValidator(),
		logger:      log,
		now:         time.Now,
	}
}

// Initialize implements StorageService. Directory setup and cache
// maintenance run concurrently; neither failure blocks startup.
func (s *storageService) Initialize(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.attachments.InitDirs(ctx); err != nil {
			s.logger.Err(err).Msg("attachment directory setup failed")
		}
		if err := s.attachments.CleanupTemp(ctx); err != nil {
			s.logger.Err(err).Msg("temp cleanup failed")
		}
	}()

	go func() {
		defer wg.Done()
		removed := s.cache.CleanupExpired(ctx)
		s.cache.LimitSize(ctx, s.cacheCfg.MaxEntries)
		s.logger.Debug().Int("removed", removed).Msg("cache swept on startup")
	}()

	wg.Wait()
	s.logger.Info().Msg("storage initialized")
}

func (s *storageService) ListHomework(ctx context.Context) ([]models.Homework, error) {
	return s.storages.Homework.List(ctx)
}

func (s *storageService) SaveHomework(ctx context.Context, items []models.Homework) error {
	for _, item := range items {
		if err := s.validator.Validate(ctx, item); err != nil {
			return err
		}
	}
	return s.storages.Homework.Save(ctx, items)
}

func (s *storageService) AddHomework(ctx context.Context, item models.Homework) error {
	if err := s.validator.Validate(ctx, item); err != nil {
		return err
	}
	return s.storages.Homework.Add(ctx, item)
}

func (s *storageService) UpdateHomework(ctx context.Context, id string, patch models.HomeworkPatch) (*models.Homework, error) {
	return s.storages.Homework.Update(ctx, id, patch)
}

func (s *storageService) DeleteHomework(ctx context.Context, id string) error {
	return s.storages.Homework.Delete(ctx, id)
}

func (s *storageService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.storages.Subjects.List(ctx)
}

func (s *storageService) SaveSubjects(ctx context.Context, items []models.Subject) error {
	for _, item := range items {
		if err := s.validator.Validate(ctx, item); err != nil {
			return err
		}
	}
	return s.storages.Subjects.Save(ctx, items)
}

func (s *storageService) AddSubject(ctx context.Context, item models.Subject) error {
	if err := s.validator.Validate(ctx, item); err != nil {
		return err
	}
	return s.storages.Subjects.Add(ctx, item)
}

func (s *storageService) UpdateSubject(ctx context.Context, id string, patch models.SubjectPatch) (*models.Subject, error) {
	return s.storages.Subjects.Update(ctx, id, patch)
}

func (s *storageService) DeleteSubject(ctx context.Context, id string) error {
	return s.storages.Subjects.Delete(ctx, id)
}

func (s *storageService) Preferences(ctx context.Context) (models.Preferences, error) {
	return s.storages.Preferences.Preferences(ctx)
}

func (s *storageService) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	if err := s.validator.Validate(ctx, prefs); err != nil {
		return err
	}
	return s.storages.Preferences.SavePreferences(ctx, prefs)
}

func (s *storageService) Theme(ctx context.Context) (models.Theme, bool, error) {
	return s.storages.Preferences.Theme(ctx)
}

func (s *storageService) SaveTheme(ctx context.Context, theme models.Theme) error {
	if err := s.validator.Validate(ctx, theme); err != nil {
		return err
	}
	return s.storages.Preferences.SaveTheme(ctx, theme)
}

func (s *storageService) SaveAttachment(ctx context.Context, sourceURI, ownerID, filename string) (models.Attachment, error) {
	return s.attachments.SaveAttachment(ctx, sourceURI, ownerID, filename)
}

func (s *storageService) AttachmentPath(ctx context.Context, id string) (string, bool, error) {
	return s.attachments.AttachmentPath(ctx, id)
}

func (s *storageService) DeleteAttachment(ctx context.Context, id string) error {
	return s.attachments.DeleteAttachment(ctx, id)
}

func (s *storageService) ShareAttachment(ctx context.Context, id string) error {
	return s.attachments.ShareAttachment(ctx, id)
}

func (s *storageService) OpenAttachment(ctx context.Context, id string) error {
	return s.attachments.OpenWithExternalApp(ctx, id)
}

// ResetAllData implements StorageService. The three layers clear
// concurrently; every failure is reported, none stops the others.
func (s *storageService) ResetAllData(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	collect := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		collect(s.storages.ClearAll(ctx))
	}()
	go func() {
		defer wg.Done()
		collect(s.attachments.ClearAll(ctx))
	}()
	go func() {
		defer wg.Done()
		collect(s.cache.ClearFileCache(ctx))
		collect(s.cache.Clear(ctx))
	}()
	wg.Wait()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.logger.Info().Msg("all data reset")
	return nil
}
