// Package app contains shared application-layer constants used across the
// Tugas Collecter storage and notification services.
//
// All Msg* constants are human-readable message strings surfaced to the
// user by the embedding shell or written into log entries to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the application.
package app

import (
	"github.com/hexaaagon/tugascollecter/internal/files"
	"github.com/hexaaagon/tugascollecter/internal/store"
)

const (
	// MsgHomeworkLoadFailed is shown when the homework collection cannot
	// be read from durable storage.
	MsgHomeworkLoadFailed = "could not load your homework"

	// MsgHomeworkSaveFailed is shown when a homework change cannot be
	// persisted.
	MsgHomeworkSaveFailed = "could not save your homework"

	// MsgSubjectLoadFailed is shown when the subject collection cannot be
	// read from durable storage.
	MsgSubjectLoadFailed = "could not load your subjects"

	// MsgSubjectSaveFailed is shown when a subject change cannot be
	// persisted.
	MsgSubjectSaveFailed = "could not save your subjects"

	// MsgSettingsFailed is shown when preferences or theme operations
	// fail; the distinction carries no user-actionable difference.
	MsgSettingsFailed = "could not update your settings"

	// MsgAttachmentMissing is shown when an attachment's source file or
	// stored copy no longer exists.
	MsgAttachmentMissing = "attachment file not found"

	// MsgAttachmentSaveFailed is shown when an attachment cannot be
	// copied into managed storage.
	MsgAttachmentSaveFailed = "could not save the attachment"

	// MsgExportFailed is shown when a backup file cannot be written.
	MsgExportFailed = "could not create the backup file"

	// MsgImportInvalid is shown when a picked file is not a valid backup
	// document.
	MsgImportInvalid = "this file is not a valid backup"

	// MsgShareFailed is shown when handing an attachment to the platform
	// share sheet fails.
	MsgShareFailed = "could not share the attachment"

	// MsgOpenFailed is shown when no external application could open the
	// attachment.
	MsgOpenFailed = "could not open the attachment"

	// MsgOperationFailed is the fallback for failures without a more
	// specific message.
	MsgOperationFailed = "something went wrong, please try again"
)

// MessageFor maps a storage-layer error to the message shown to the user.
// Unrecognized errors fall back to MsgOperationFailed; a nil error returns
// the empty string.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}

	switch store.CodeOf(err) {
	case store.CodeHomeworkLoad:
		return MsgHomeworkLoadFailed
	case store.CodeHomeworkSave:
		return MsgHomeworkSaveFailed
	case store.CodeSubjectLoad:
		return MsgSubjectLoadFailed
	case store.CodeSubjectSave:
		return MsgSubjectSaveFailed
	case store.CodePreferencesLoad, store.CodePreferencesSave,
		store.CodeThemeLoad, store.CodeThemeSave:
		return MsgSettingsFailed
	}

	switch files.CodeOf(err) {
	case files.CodeSourceMissing, files.CodeNotFound:
		return MsgAttachmentMissing
	case files.CodeSave:
		return MsgAttachmentSaveFailed
	case files.CodeExport:
		return MsgExportFailed
	case files.CodeImport:
		return MsgImportInvalid
	case files.CodeShare:
		return MsgShareFailed
	case files.CodeOpen:
		return MsgOpenFailed
	}

	return MsgOperationFailed
}
