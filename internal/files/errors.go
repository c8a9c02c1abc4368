package files

import (
	"errors"
	"fmt"
)

// Stable error codes for external-storage failures.
const (
	CodeInit          = "FILE_INIT_ERROR"
	CodeSourceMissing = "ATTACHMENT_SOURCE_MISSING"
	CodeSave          = "ATTACHMENT_SAVE_ERROR"
	CodeDelete        = "ATTACHMENT_DELETE_ERROR"
	CodeNotFound      = "ATTACHMENT_NOT_FOUND"
	CodeExport        = "EXPORT_ERROR"
	CodeImport        = "IMPORT_INVALID"
	CodeShare         = "SHARE_ERROR"
	CodeOpen          = "OPEN_ERROR"
	CodeCleanup       = "FILE_CLEANUP_ERROR"
)

// Error is the typed failure returned by the attachment store: a
// human-readable message plus a stable string code, wrapping the cause.
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
