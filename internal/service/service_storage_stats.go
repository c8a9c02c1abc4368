package service

import (
	"context"

	"github.com/hexaaagon/tugascollecter/internal/cache"
	"github.com/hexaaagon/tugascollecter/internal/files"
)

// StorageStats aggregates advisory usage numbers from every storage layer.
type StorageStats struct {
	HomeworkCount int               `json:"homeworkCount"`
	SubjectCount  int               `json:"subjectCount"`
	CacheEntries  int               `json:"cacheEntries"`
	Files         files.StorageInfo `json:"files"`
}

// GetStorageStats implements StorageService. Each subsection is collected
// independently; a failing layer is logged and reported as zeroes so one
// broken layer cannot hide the numbers from the healthy ones.
func (s *storageService) GetStorageStats(ctx context.Context) StorageStats {
	var stats StorageStats

	if homework, err := s.storages.Homework.List(ctx); err != nil {
		s.logger.Err(err).Msg("storage stats: homework count unavailable")
	} else {
		stats.HomeworkCount = len(homework)
	}

	if subjects, err := s.storages.Subjects.List(ctx); err != nil {
		s.logger.Err(err).Msg("storage stats: subject count unavailable")
	} else {
		stats.SubjectCount = len(subjects)
	}

	if keys, err := s.storages.KV.Keys(ctx, cache.Prefix); err != nil {
		s.logger.Err(err).Msg("storage stats: cache entry count unavailable")
	} else {
		stats.CacheEntries = len(keys)
	}

	// Already zeroed internally on error.
	stats.Files = s.attachments.GetStorageInfo(ctx)

	return stats
}
