package store

import (
	"context"
	"encoding/json"

	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/models"
)

// KeySubjects is the logical key for the subject collection blob.
const KeySubjects = "subjects"

// SubjectStore persists the subject collection through the key-value layer.
// Same read-modify-write caveats as [HomeworkStore]. Name uniqueness is a
// caller concern; the store writes whatever it is given.
type SubjectStore struct {
	kv     KeyValue
	logger *logger.Logger
}

func NewSubjectStore(kv KeyValue, log *logger.Logger) *SubjectStore {
	return &SubjectStore{kv: kv, logger: log}
}

// List returns all stored subjects, or an empty slice when nothing has been
// saved yet.
func (s *SubjectStore) List(ctx context.Context) ([]models.Subject, error) {
	raw, ok, err := s.kv.Get(ctx, KeySubjects)
	if err != nil {
		return nil, NewError(CodeSubjectLoad, "failed to load subjects", err)
	}
	if !ok {
		return []models.Subject{}, nil
	}

	var items []models.Subject
	if err = json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, NewError(CodeSubjectLoad, "failed to decode subjects", err)
	}
	if items == nil {
		items = []models.Subject{}
	}

	return items, nil
}

// Save overwrites the entire subject collection in a single write.
func (s *SubjectStore) Save(ctx context.Context, items []models.Subject) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return NewError(CodeSubjectSave, "failed to encode subjects", err)
	}

	if err = s.kv.Set(ctx, KeySubjects, string(raw)); err != nil {
		return NewError(CodeSubjectSave, "failed to save subjects", err)
	}

	return nil
}

// Add appends one subject to the stored collection.
func (s *SubjectStore) Add(ctx context.Context, item models.Subject) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}

	return s.Save(ctx, append(items, item))
}

// Update merges the non-nil fields of patch into the subject with the given
// id and writes the collection back. Unknown ids are a silent no-op.
func (s *SubjectStore) Update(ctx context.Context, id string, patch models.SubjectPatch) (*models.Subject, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}

		if patch.Name != nil {
			items[i].Name = *patch.Name
		}
		if patch.Color != nil {
			items[i].Color = *patch.Color
		}
		if patch.Days != nil {
			items[i].Days = *patch.Days
		}
		if patch.Description != nil {
			items[i].Description = *patch.Description
		}

		if err = s.Save(ctx, items); err != nil {
			return nil, err
		}

		updated := items[i]
		return &updated, nil
	}

	s.logger.Debug().Str("id", id).Msg("subject update skipped: id not found")
	return nil, nil
}

// Delete removes the subject with the given id. Homework referencing it is
// left untouched; dangling subject ids are tolerated by design.
func (s *SubjectStore) Delete(ctx context.Context, id string) error {
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
