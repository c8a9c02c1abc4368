package service

import (
	"context"

	"github.com/hexaaagon/tugascollecter/models"
)

// ExportData implements StorageService. Preferences and theme are included
// only when they were explicitly persisted; a missing theme stays out of
// the payload rather than exporting the implicit default.
func (s *storageService) ExportData(ctx context.Context) (models.ExportPayload, error) {
	payload := models.ExportPayload{
		Version:    models.ExportVersion,
		ExportedAt: s.now(),
	}

	homework, err := s.storages.Homework.List(ctx)
	if err != nil {
		return models.ExportPayload{}, err
	}
	payload.Homework = homework

	subjects, err := s.storages.Subjects.List(ctx)
	if err != nil {
		return models.ExportPayload{}, err
	}
	payload.Subjects = subjects

	prefs, err := s.storages.Preferences.Preferences(ctx)
	if err != nil {
		return models.ExportPayload{}, err
	}
	payload.Preferences = &prefs

	theme, ok, err := s.storages.Preferences.Theme(ctx)
	if err != nil {
		return models.ExportPayload{}, err
	}
	if ok {
		payload.Theme = &theme
	}

	return payload, nil
}

// ImportData implements StorageService. Collections are replaced wholesale
// and validated item by item, since the payload typically comes from a
// user-picked file; optional sections absent from the payload leave the
// stored values untouched.
func (s *storageService) ImportData(ctx context.Context, payload models.ExportPayload) error {
	if err := s.SaveHomework(ctx, payload.Homework); err != nil {
		return err
	}
	if err := s.SaveSubjects(ctx, payload.Subjects); err != nil {
		return err
	}

	if payload.Preferences != nil {
		if err := s.SavePreferences(ctx, *payload.Preferences); err != nil {
			return err
		}
	}
	if payload.Theme != nil {
		if err := s.SaveTheme(ctx, *payload.Theme); err != nil {
			return err
		}
	}

	s.logger.Info().
		Int("homework", len(payload.Homework)).
		Int("subjects", len(payload.Subjects)).
		Msg("data imported")
	return nil
}

// CreateBackup implements StorageService.
func (s *storageService) CreateBackup(ctx context.Context) (string, error) {
	payload, err := s.ExportData(ctx)
	if err != nil {
		return "", err
	}
	return s.attachments.Export(ctx, payload)
}

// RestoreFromBackup implements StorageService.
func (s *storageService) RestoreFromBackup(ctx context.Context) (bool, error) {
	payload, err := s.attachments.Import(ctx)
	if err != nil {
		return false, err
	}
	if payload == nil {
		// Picker cancelled.
		return false, nil
	}

	if err := s.ImportData(ctx, *payload); err != nil {
		return false, err
	}
	return true, nil
}
