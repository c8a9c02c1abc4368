package validators

import (
	"context"
	"fmt"

	"github.com/hexaaagon/tugascollecter/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldID targets the unique identifier of a homework item or subject.
	FieldID = "id"

	// FieldTitle targets the display title of a homework item.
	FieldTitle = "title"

	// FieldStatus targets the lifecycle status of a homework item.
	FieldStatus = "status"

	// FieldPriority targets the urgency field of a homework item or the
	// default-priority preference.
	FieldPriority = "priority"

	// FieldName targets the display name of a subject.
	FieldName = "name"

	// FieldDays targets a subject's scheduled weekdays.
	FieldDays = "days"

	// FieldLanguage targets the notification language preference.
	FieldLanguage = "language"

	// FieldThemeMode targets the persisted theme's mode.
	FieldThemeMode = "theme_mode"
)

// allowedStatuses is the exhaustive set of Status values accepted by the
// validator. Any Status not present in this slice is considered invalid.
var allowedStatuses = []models.Status{
	models.StatusPending,
	models.StatusInProgress,
	models.StatusCompleted,
	models.StatusOverdue,
}

// allowedPriorities is the exhaustive set of Priority values accepted by
// the validator.
var allowedPriorities = []models.Priority{
	models.PriorityLow,
	models.PriorityMedium,
	models.PriorityHigh,
}

// allowedWeekdays is the exhaustive set of Weekday values accepted by the
// validator.
var allowedWeekdays = []models.Weekday{
	models.Monday,
	models.Tuesday,
	models.Wednesday,
	models.Thursday,
	models.Friday,
	models.Saturday,
	models.Sunday,
}

// allowedLanguages lists the language codes notification texts exist for.
var allowedLanguages = []string{"en", "id"}

// CollectionValidator implements the Validator interface for the persisted
// collection models: Homework, Subject, Preferences, and Theme.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type CollectionValidator struct {
}

// NewCollectionValidator constructs a new CollectionValidator and returns
// it as the Validator interface.
func NewCollectionValidator() Validator {
	return &CollectionValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Homework / *models.Homework
//   - models.Subject / *models.Subject
//   - models.Preferences / *models.Preferences
//   - models.Theme / *models.Theme
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *CollectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Homework:
		return v.validateHomework(ctx, value, fields...)
	case *models.Homework:
		return v.validateHomework(ctx, *value, fields...)

	case models.Subject:
		return v.validateSubject(ctx, value, fields...)
	case *models.Subject:
		return v.validateSubject(ctx, *value, fields...)

	case models.Preferences:
		return v.validatePreferences(ctx, value, fields...)
	case *models.Preferences:
		return v.validatePreferences(ctx, *value, fields...)

	case models.Theme:
		return v.validateTheme(ctx, value, fields...)
	case *models.Theme:
		return v.validateTheme(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidStatus(s models.Status) bool {
	for _, allowed := range allowedStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

func isValidPriority(p models.Priority) bool {
	for _, allowed := range allowedPriorities {
		if p == allowed {
			return true
		}
	}
	return false
}

func isValidWeekday(d models.Weekday) bool {
	for _, allowed := range allowedWeekdays {
		if d == allowed {
			return true
		}
	}
	return false
}

func isValidLanguage(lang string) bool {
	for _, allowed := range allowedLanguages {
		if lang == allowed {
			return true
		}
	}
	return false
}

func (v *CollectionValidator) validateHomework(_ context.Context, hw models.Homework, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldStatus, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if hw.ID == "" {
				return ErrEmptyID
			}
		case FieldTitle:
			if hw.Title == "" {
				return ErrEmptyTitle
			}
		case FieldStatus:
			if !isValidStatus(hw.Status) {
				return fmt.Errorf("%w: %s", ErrInvalidStatus, hw.Status)
			}
		case FieldPriority:
			// Priority is optional; the stored default applies when empty.
			if hw.Priority != "" && !isValidPriority(hw.Priority) {
				return fmt.Errorf("%w: %s", ErrInvalidPriority, hw.Priority)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *CollectionValidator) validateSubject(_ context.Context, subject models.Subject, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldDays}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if subject.ID == "" {
				return ErrEmptyID
			}
		case FieldName:
			if subject.Name == "" {
				return ErrEmptyName
			}
		case FieldDays:
			for _, day := range subject.Days {
				if !isValidWeekday(day) {
					return fmt.Errorf("%w: %s", ErrInvalidWeekday, day)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *CollectionValidator) validatePreferences(_ context.Context, prefs models.Preferences, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLanguage, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldLanguage:
			if !isValidLanguage(prefs.Language) {
				return fmt.Errorf("%w: %s", ErrInvalidLanguage, prefs.Language)
			}
		case FieldPriority:
			if prefs.DefaultPriority != "" && !isValidPriority(prefs.DefaultPriority) {
				return fmt.Errorf("%w: %s", ErrInvalidPriority, prefs.DefaultPriority)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *CollectionValidator) validateTheme(_ context.Context, theme models.Theme, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldThemeMode}
	}

	for _, f := range fields {
		switch f {
		case FieldThemeMode:
			if theme.Mode == "" {
				return ErrEmptyThemeMode
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
