package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexaaagon/tugascollecter/models"
)

func TestCollectionValidator_Homework(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		hw      models.Homework
		fields  []string
		wantErr error
	}{
		{
			name: "valid homework",
			hw:   models.Homework{ID: "h1", Title: "Essay", Status: models.StatusPending},
		},
		{
			name: "valid with priority",
			hw:   models.Homework{ID: "h1", Title: "Essay", Status: models.StatusPending, Priority: models.PriorityHigh},
		},
		{
			name:    "missing id",
			hw:      models.Homework{Title: "Essay", Status: models.StatusPending},
			wantErr: ErrEmptyID,
		},
		{
			name:    "missing title",
			hw:      models.Homework{ID: "h1", Status: models.StatusPending},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "unknown status",
			hw:      models.Homework{ID: "h1", Title: "Essay", Status: "archived"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "unknown priority",
			hw:      models.Homework{ID: "h1", Title: "Essay", Status: models.StatusPending, Priority: "urgent"},
			wantErr: ErrInvalidPriority,
		},
		{
			name:   "scoped to status only ignores missing title",
			hw:     models.Homework{ID: "h1", Status: models.StatusCompleted},
			fields: []string{FieldStatus},
		},
		{
			name:    "unknown field name",
			hw:      models.Homework{ID: "h1", Title: "Essay", Status: models.StatusPending},
			fields:  []string{"due_date"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.hw, tt.fields...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCollectionValidator_PointerForms(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	hw := &models.Homework{ID: "h1", Title: "Essay", Status: models.StatusPending}
	require.NoError(t, v.Validate(ctx, hw))

	subject := &models.Subject{ID: "s1", Name: "Math"}
	require.NoError(t, v.Validate(ctx, subject))
}

func TestCollectionValidator_Subject(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.Subject{ID: "s1", Name: "Math", Days: []models.Weekday{models.Monday, models.Friday}})
	require.NoError(t, err)

	err = v.Validate(ctx, models.Subject{ID: "s1"})
	assert.ErrorIs(t, err, ErrEmptyName)

	err = v.Validate(ctx, models.Subject{ID: "s1", Name: "Math", Days: []models.Weekday{"holiday"}})
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestCollectionValidator_Preferences(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.DefaultPreferences()))

	prefs := models.DefaultPreferences()
	prefs.Language = "fr"
	assert.ErrorIs(t, v.Validate(ctx, prefs), ErrInvalidLanguage)
}

func TestCollectionValidator_Theme(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Theme{Mode: "dark"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Theme{}), ErrEmptyThemeMode)
}

func TestCollectionValidator_UnsupportedType(t *testing.T) {
	v := NewCollectionValidator()

	err := v.Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}
