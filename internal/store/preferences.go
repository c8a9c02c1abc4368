package store

import (
	"context"
	"encoding/json"

	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/models"
)

// Logical keys for the scalar settings blobs.
const (
	KeyPreferences = "preferences"
	KeyTheme       = "theme"
)

// PreferenceStore persists user preferences and the theme selection.
type PreferenceStore struct {
	kv     KeyValue
	logger *logger.Logger
}

func NewPreferenceStore(kv KeyValue, log *logger.Logger) *PreferenceStore {
	return &PreferenceStore{kv: kv, logger: log}
}

// Preferences returns the stored preferences, or the defaults when nothing
// has been saved yet.
func (s *PreferenceStore) Preferences(ctx context.Context) (models.Preferences, error) {
	raw, ok, err := s.kv.Get(ctx, KeyPreferences)
	if err != nil {
		return models.Preferences{}, NewError(CodePreferencesLoad, "failed to load preferences", err)
	}
	if !ok {
		return models.DefaultPreferences(), nil
	}

	var prefs models.Preferences
	if err = json.Unmarshal([]byte(raw), &prefs); err != nil {
		return models.Preferences{}, NewError(CodePreferencesLoad, "failed to decode preferences", err)
	}

	return prefs, nil
}

// SavePreferences overwrites the stored preferences.
func (s *PreferenceStore) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return NewError(CodePreferencesSave, "failed to encode preferences", err)
	}

	if err = s.kv.Set(ctx, KeyPreferences, string(raw)); err != nil {
		return NewError(CodePreferencesSave, "failed to save preferences", err)
	}

	return nil
}

// Theme returns the stored theme; the second result is false when the user
// never picked one.
func (s *PreferenceStore) Theme(ctx context.Context) (models.Theme, bool, error) {
	raw, ok, err := s.kv.Get(ctx, KeyTheme)
	if err != nil {
		return models.Theme{}, false, NewError(CodeThemeLoad, "failed to load theme", err)
	}
	if !ok {
		return models.Theme{}, false, nil
	}

	var theme models.Theme
	if err = json.Unmarshal([]byte(raw), &theme); err != nil {
		return models.Theme{}, false, NewError(CodeThemeLoad, "failed to decode theme", err)
	}

	return theme, true, nil
}

// SaveTheme overwrites the stored theme.
func (s *PreferenceStore) SaveTheme(ctx context.Context, theme models.Theme) error {
	raw, err := json.Marshal(theme)
	if err != nil {
		return NewError(CodeThemeSave, "failed to encode theme", err)
	}

	if err = s.kv.Set(ctx, KeyTheme, string(raw)); err != nil {
		return NewError(CodeThemeSave, "failed to save theme", err)
	}

	return nil
}
