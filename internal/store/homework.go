package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/models"
)

// KeyHomework is the logical key the whole homework collection is stored
// under, as one JSON blob.
const KeyHomework = "homework"

// HomeworkStore persists the homework collection through the key-value
// layer. All mutating methods are read-modify-write over the full blob and
// are not safe under concurrent callers: two concurrent Adds can race and
// one append can be lost (last write wins). Accepted for the single-user,
// single-process context.
type HomeworkStore struct {
	kv     KeyValue
	logger *logger.Logger
	now    func() time.Time
}

func NewHomeworkStore(kv KeyValue, log *logger.Logger) *HomeworkStore {
	return &HomeworkStore{kv: kv, logger: log, now: time.Now}
}

// List returns all stored homework, or an empty slice when nothing has been
// saved yet. Absence is never an error.
func (s *HomeworkStore) List(ctx context.Context) ([]models.Homework, error) {
	raw, ok, err := s.kv.Get(ctx, KeyHomework)
	if err != nil {
		return nil, NewError(CodeHomeworkLoad, "failed to load homework", err)
	}
	if !ok {
		return []models.Homework{}, nil
	}

	var items []models.Homework
	if err = json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, NewError(CodeHomeworkLoad, "failed to decode homework", err)
	}
	if items == nil {
		items = []models.Homework{}
	}

	return items, nil
}

// Save overwrites the entire homework collection in a single write.
func (s *HomeworkStore) Save(ctx context.Context, items []models.Homework) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return NewError(CodeHomeworkSave, "failed to encode homework", err)
	}

	if err = s.kv.Set(ctx, KeyHomework, string(raw)); err != nil {
		return NewError(CodeHomeworkSave, "failed to save homework", err)
	}

	return nil
}

// Add appends one homework item to the stored collection.
func (s *HomeworkStore) Add(ctx context.Context, item models.Homework) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}

	return s.Save(ctx, append(items, item))
}

// Update merges the non-nil fields of patch into the item with the given id,
// bumps its updatedAt timestamp, and writes the collection back. Setting
// status to completed records completedAt; setting any other status clears
// it. Unknown ids are a silent no-op: the returned item is nil and no error
// is raised.
func (s *HomeworkStore) Update(ctx context.Context, id string, patch models.HomeworkPatch) (*models.Homework, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}

		applyHomeworkPatch(&items[i], patch, s.now())
		if err = s.Save(ctx, items); err != nil {
			return nil, err
		}

		updated := items[i]
		return &updated, nil
	}

	s.logger.Debug().Str("id", id).Msg("homework update skipped: id not found")
	return nil, nil
}

// Delete removes the item with the given id. Unknown ids are a no-op.
func (s *HomeworkStore) Delete(ctx context.Context, id string) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	return s.Save(ctx, kept)
}

func applyHomeworkPatch(hw *models.Homework, patch models.HomeworkPatch, now time.Time) {
	if patch.SubjectID != nil {
		hw.SubjectID = *patch.SubjectID
	}
	if patch.Title != nil {
		hw.Title = *patch.Title
	}
	if patch.Description != nil {
		hw.Description = *patch.Description
	}
	if patch.Details != nil {
		hw.Details = *patch.Details
	}
	if patch.Tags != nil {
		hw.Tags = *patch.Tags
	}
	if patch.DueDate != nil {
		hw.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		hw.Priority = *patch.Priority
	}
	if patch.Attachments != nil {
		hw.Attachments = *patch.Attachments
	}

	if patch.Status != nil {
		hw.Status = *patch.Status
		if hw.Status == models.StatusCompleted {
			completed := now
			hw.CompletedAt = &completed
		} else {
			hw.CompletedAt = nil
		}
	}

	updated := now
	hw.UpdatedAt = &updated
}
