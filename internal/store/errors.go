package store

import (
	"errors"
	"fmt"
)

// Stable error codes carried by [Error]. UI layers branch on these instead
// of parsing error strings.
const (
	CodeHomeworkLoad    = "HOMEWORK_LOAD_ERROR"
	CodeHomeworkSave    = "HOMEWORK_SAVE_ERROR"
	CodeSubjectLoad     = "SUBJECT_LOAD_ERROR"
	CodeSubjectSave     = "SUBJECT_SAVE_ERROR"
	CodePreferencesLoad = "PREFERENCES_LOAD_ERROR"
	CodePreferencesSave = "PREFERENCES_SAVE_ERROR"
	CodeThemeLoad       = "THEME_LOAD_ERROR"
	CodeThemeSave       = "THEME_SAVE_ERROR"
	CodeStorageClear    = "STORAGE_CLEAR_ERROR"
)

// Error is the typed failure returned by the durable store. It pairs a
// human-readable message with a stable string code for programmatic
// branching and wraps the underlying cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError constructs an *Error with the given stable code.
func NewError(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the stable code of err if it is (or wraps) an *Error,
// otherwise the empty string.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Low-level key-value operation errors. Repository methods wrap these into
// [Error] values with the collection-specific code.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan kv row")
)
