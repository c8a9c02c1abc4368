package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID         = errors.New("id is required")
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidWeekday  = errors.New("invalid weekday")
	ErrInvalidLanguage = errors.New("unsupported language")
	ErrEmptyThemeMode  = errors.New("theme mode is required")
)
