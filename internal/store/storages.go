package store

import (
	"context"
	"fmt"

	"github.com/hexaaagon/tugascollecter/internal/config"
	"github.com/hexaaagon/tugascollecter/internal/logger"
)

// Storages groups the durable collection stores into a single value passed
// to the service layer.
type Storages struct {
	// KV is the underlying key-value boundary, also consumed by the cache
	// layer.
	KV KeyValue

	Homework    *HomeworkStore
	Subjects    *SubjectStore
	Preferences *PreferenceStore
}

// NewStorages initialises the durable storage layer:
//  1. Opens the sqlite file from cfg.DSN, creating it if absent.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the collection stores over a fresh kv repository.
//
// Returns an error if the database cannot be opened or migration fails.
func NewStorages(cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKVRepository(db, log)

	return &Storages{
		KV:          kv,
		Homework:    NewHomeworkStore(kv, log),
		Subjects:    NewSubjectStore(kv, log),
		Preferences: NewPreferenceStore(kv, log),
	}, nil
}

// ClearAll removes every namespaced collection key in one batch. Cache keys
// are not touched; the cache layer owns its own namespace.
func (s *Storages) ClearAll(ctx context.Context) error {
	err := s.KV.Remove(ctx, KeyHomework, KeySubjects, KeyPreferences, KeyTheme)
	if err != nil {
		return NewError(CodeStorageClear, "failed to clear stored collections", err)
	}

	return nil
}
