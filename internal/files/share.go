package files

import (
	"context"
	"errors"

	"github.com/hexaaagon/tugascollecter/models"
)

// ShareAttachment resolves the attachment id and hands the file to the
// platform share sheet with a MIME type derived from its extension.
func (s *AttachmentStore) ShareAttachment(ctx context.Context, id string) error {
	path, ok, err := s.AttachmentPath(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(CodeNotFound, "attachment not found on disk", nil)
	}

	if err := s.sharer.Share(ctx, path, models.MimeTypeFor(path)); err != nil {
		return NewError(CodeShare, "share sheet failed", err)
	}

	return nil
}

// OpenWithExternalApp resolves the attachment id and hands the file to an
// external application. When the direct-open path is unsupported it falls
// back to the share sheet; if both fail, the error enumerates the likely
// causes so the UI can present something actionable.
func (s *AttachmentStore) OpenWithExternalApp(ctx context.Context, id string) error {
	path, ok, err := s.AttachmentPath(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(CodeNotFound, "attachment not found on disk", nil)
	}

	mimeType := models.MimeTypeFor(path)

	openErr := s.opener.Open(ctx, path, mimeType)
	if openErr == nil {
		return nil
	}
	s.logger.Debug().Err(openErr).Str("id", id).Msg("direct open failed, falling back to share")

	shareErr := s.sharer.Share(ctx, path, mimeType)
	if shareErr == nil {
		return nil
	}

	return NewError(CodeOpen,
		"unable to open the file: no app can handle it, the file may be corrupted, or the format is unsupported",
		errors.Join(openErr, shareErr))
}
