package models

import (
	"path/filepath"
	"strings"
	"time"
)

// AttachmentType is a coarse classification of an attachment, derived from
// the file extension.
type AttachmentType string

const (
	AttachmentImage    AttachmentType = "image"
	AttachmentDocument AttachmentType = "document"
	AttachmentAudio    AttachmentType = "audio"
	AttachmentVideo    AttachmentType = "video"
	AttachmentOther    AttachmentType = "other"
)

// TempAttachmentPrefix marks attachment ids produced by the file picker that
// have not yet been copied into the attachments directory. Temp attachments
// never exist on disk under the attachments tree, so disk-level delete is a
// no-op for them.
const TempAttachmentPrefix = "temp_"

// Attachment describes one file attached to a homework item. URI points at
// the copied file under the attachments directory once persisted, or at the
// transient picker location while the id still carries TempAttachmentPrefix.
type Attachment struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       AttachmentType `json:"type"`
	URI        string         `json:"uri"`
	Size       int64          `json:"size"`
	MimeType   string         `json:"mimeType"`
	UploadedAt time.Time      `json:"uploadedAt"`
}

// IsTemp reports whether the attachment has not been persisted yet.
func (a Attachment) IsTemp() bool {
	return strings.HasPrefix(a.ID, TempAttachmentPrefix)
}

// ClassifyAttachment maps a filename extension to an AttachmentType.
func ClassifyAttachment(name string) AttachmentType {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg", "png", "gif", "webp", "heic", "bmp":
		return AttachmentImage
	case "pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt", "md", "csv":
		return AttachmentDocument
	case "mp3", "wav", "m4a", "aac", "ogg":
		return AttachmentAudio
	case "mp4", "mov", "mkv", "avi", "webm":
		return AttachmentVideo
	default:
		return AttachmentOther
	}
}

// MimeTypeFor returns the MIME type for a filename extension, falling back
// to application/octet-stream for anything unrecognized.
func MimeTypeFor(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "heic":
		return "image/heic"
	case "bmp":
		return "image/bmp"
	case "pdf":
		return "application/pdf"
	case "doc":
		return "application/msword"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "xls":
		return "application/vnd.ms-excel"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "ppt":
		return "application/vnd.ms-powerpoint"
	case "pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case "txt", "md":
		return "text/plain"
	case "csv":
		return "text/csv"
	case "json":
		return "application/json"
	case "mp3":
		return "audio/mpeg"
	case "wav":
		return "audio/wav"
	case "m4a":
		return "audio/mp4"
	case "aac":
		return "audio/aac"
	case "ogg":
		return "audio/ogg"
	case "mp4":
		return "video/mp4"
	case "mov":
		return "video/quicktime"
	case "mkv":
		return "video/x-matroska"
	case "avi":
		return "video/x-msvideo"
	case "webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}
