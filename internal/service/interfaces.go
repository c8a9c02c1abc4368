package service

import (
	"context"
	"time"

	"github.com/hexaaagon/tugascollecter/internal/files"
	"github.com/hexaaagon/tugascollecter/models"
)

// StorageService is the single composed entry point over the durable store,
// the attachment store and the cache. Callers never talk to an individual
// layer directly; cross-layer operations (startup, backup, reset) live here.
type StorageService interface {
	// Initialize prepares all storage layers for use: attachment
	// directories are created and the cache is swept and capped,
	// concurrently. Best-effort: failures are logged, never returned.
	// Safe to call more than once.
	Initialize(ctx context.Context)

	ListHomework(ctx context.Context) ([]models.Homework, error)
	SaveHomework(ctx context.Context, items []models.Homework) error
	AddHomework(ctx context.Context, item models.Homework) error
	// UpdateHomework applies the patch to the item with the given id and
	// returns the updated item, or (nil, nil) when the id is unknown.
	UpdateHomework(ctx context.Context, id string, patch models.HomeworkPatch) (*models.Homework, error)
	DeleteHomework(ctx context.Context, id string) error

	ListSubjects(ctx context.Context) ([]models.Subject, error)
	SaveSubjects(ctx context.Context, items []models.Subject) error
	AddSubject(ctx context.Context, item models.Subject) error
	UpdateSubject(ctx context.Context, id string, patch models.SubjectPatch) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id string) error

	Preferences(ctx context.Context) (models.Preferences, error)
	SavePreferences(ctx context.Context, prefs models.Preferences) error
	Theme(ctx context.Context) (models.Theme, bool, error)
	SaveTheme(ctx context.Context, theme models.Theme) error

	SaveAttachment(ctx context.Context, sourceURI, ownerID, filename string) (models.Attachment, error)
	AttachmentPath(ctx context.Context, id string) (string, bool, error)
	DeleteAttachment(ctx context.Context, id string) error
	ShareAttachment(ctx context.Context, id string) error
	OpenAttachment(ctx context.Context, id string) error

	// GetStorageStats aggregates counts and sizes from every layer. Stats
	// are advisory: a failing layer contributes a zeroed subsection
	// instead of failing the whole call.
	GetStorageStats(ctx context.Context) StorageStats

	// ExportData collects every persisted collection into one payload.
	ExportData(ctx context.Context) (models.ExportPayload, error)
	// ImportData replaces the persisted collections with the payload's
	// contents. Absent optional sections leave the current values alone.
	ImportData(ctx context.Context, payload models.ExportPayload) error
	// CreateBackup exports all data into a timestamped file under the
	// exports directory and returns its path.
	CreateBackup(ctx context.Context) (string, error)
	// RestoreFromBackup imports a backup file chosen via the document
	// picker. Returns (false, nil) when the user cancels.
	RestoreFromBackup(ctx context.Context) (bool, error)

	// ResetAllData clears the durable store, the attachment directories
	// and the cache concurrently, returning every failure joined.
	ResetAllData(ctx context.Context) error
}

// AttachmentStorage is the attachment-store boundary consumed by the
// facade. *files.AttachmentStore satisfies it.
type AttachmentStorage interface {
	InitDirs(ctx context.Context) error
	SaveAttachment(ctx context.Context, sourceURI, ownerID, filename string) (models.Attachment, error)
	AttachmentPath(ctx context.Context, id string) (string, bool, error)
	DeleteAttachment(ctx context.Context, id string) error
	ShareAttachment(ctx context.Context, id string) error
	OpenWithExternalApp(ctx context.Context, id string) error
	GetStorageInfo(ctx context.Context) files.StorageInfo
	CleanupTemp(ctx context.Context) error
	Export(ctx context.Context, payload models.ExportPayload) (string, error)
	Import(ctx context.Context) (*models.ExportPayload, error)
	ClearAll(ctx context.Context) error
}

// CacheMaintainer is the cache-maintenance boundary consumed by the facade.
// *cache.Cache satisfies it.
type CacheMaintainer interface {
	CleanupExpired(ctx context.Context) int
	LimitSize(ctx context.Context, max int)
	Clear(ctx context.Context) error
	ClearFileCache(ctx context.Context) error
}

// Rescheduler rebuilds every pending homework item's reminder cascade.
// *notify.Scheduler satisfies it.
type Rescheduler interface {
	RescheduleAllHomeworkNotifications(ctx context.Context) error
}

// RescheduleJob periodically refreshes reminder cascades in the background
// so delays stay aligned with wall-clock time.
type RescheduleJob interface {
	// Start launches the background loop: one immediate pass, then one
	// per interval. A previously running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited. No-op when
	// the job is not running.
	Stop()
}
