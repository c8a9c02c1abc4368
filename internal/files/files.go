// Package files manages the app-private directory tree for binary content
// kept outside the key-value store: user attachments, export documents, and
// a scratch area for temporary files.
//
// Attachment identity is resolved by filename prefix rather than an index
// file. The lookup cost is a directory listing; in exchange there is no
// separate manifest that can go out of sync with disk contents after a
// crash.
package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hexaaagon/tugascollecter/internal/config"
	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/models"
)

// Subdirectories of the base data dir.
const (
	attachmentsDir = "attachments"
	exportsDir     = "exports"
	tempDir        = "temp"
)

// AttachmentStore manages attachments, exports and temp files on disk.
type AttachmentStore struct {
	baseDir string
	picker  Picker
	sharer  Sharer
	opener  Opener
	logger  *logger.Logger
	now     func() time.Time
}

func NewAttachmentStore(cfg config.Files, picker Picker, sharer Sharer, opener Opener, log *logger.Logger) *AttachmentStore {
	return &AttachmentStore{
		baseDir: cfg.DataDir,
		picker:  picker,
		sharer:  sharer,
		opener:  opener,
		logger:  log,
		now:     time.Now,
	}
}

func (s *AttachmentStore) attachmentsPath() string { return filepath.Join(s.baseDir, attachmentsDir) }
func (s *AttachmentStore) exportsPath() string     { return filepath.Join(s.baseDir, exportsDir) }
func (s *AttachmentStore) tempPath() string        { return filepath.Join(s.baseDir, tempDir) }

// InitDirs idempotently ensures the base directory and its three
// subdirectories exist. Safe to call repeatedly.
func (s *AttachmentStore) InitDirs(ctx context.Context) error {
	for _, dir := range []string{s.baseDir, s.attachmentsPath(), s.exportsPath(), s.tempPath()} {
		if _, err := os.Stat(dir); err == nil {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return NewError(CodeInit, "failed to create storage directory", err)
		}
	}

	return nil
}

// SaveAttachment copies the file at sourceURI into the attachments
// directory under a fresh `<ownerID>_<unixms>` id and returns the populated
// attachment record. Fails with CodeSourceMissing if the source does not
// exist.
func (s *AttachmentStore) SaveAttachment(ctx context.Context, sourceURI, ownerID, filename string) (models.Attachment, error) {
	if _, err := os.Stat(sourceURI); err != nil {
		return models.Attachment{}, NewError(CodeSourceMissing, "source file does not exist", err)
	}

	id := fmt.Sprintf("%s_%d", ownerID, s.now().UnixMilli())
	dest := filepath.Join(s.attachmentsPath(), id+filepath.Ext(filename))

	if err := copyFile(sourceURI, dest); err != nil {
		return models.Attachment{}, NewError(CodeSave, "failed to copy attachment", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		return models.Attachment{}, NewError(CodeSave, "failed to stat copied attachment", err)
	}

	attachment := models.Attachment{
		ID:         id,
		Name:       filename,
		Type:       models.ClassifyAttachment(filename),
		URI:        dest,
		Size:       info.Size(),
		MimeType:   models.MimeTypeFor(filename),
		UploadedAt: s.now(),
	}

	s.logger.Debug().Str("id", id).Int64("size", attachment.Size).Msg("attachment saved")
	return attachment, nil
}

// AttachmentPath resolves an attachment id to its on-disk path using a
// filename-prefix lookup. The second result is false when no file matches.
func (s *AttachmentStore) AttachmentPath(ctx context.Context, id string) (string, bool, error) {
	entries, err := os.ReadDir(s.attachmentsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, NewError(CodeNotFound, "failed to list attachments directory", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), id) {
			return filepath.Join(s.attachmentsPath(), entry.Name()), true, nil
		}
	}

	return "", false, nil
}

// DeleteAttachment removes the file whose name starts with the given id.
// Silently succeeds when nothing matches; temp ids never hit disk, so for
// them this is always a no-op.
func (s *AttachmentStore) DeleteAttachment(ctx context.Context, id string) error {
	if strings.HasPrefix(id, models.TempAttachmentPrefix) {
		return nil
	}

	path, ok, err := s.AttachmentPath(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := os.Remove(path); err != nil {
		return NewError(CodeDelete, "failed to delete attachment", err)
	}

	return nil
}

// StorageInfo summarizes disk usage of the attachments and exports trees.
type StorageInfo struct {
	AttachmentsBytes int64 `json:"attachmentsBytes"`
	AttachmentsCount int   `json:"attachmentsCount"`
	ExportsBytes     int64 `json:"exportsBytes"`
	ExportsCount     int   `json:"exportsCount"`
}

// GetStorageInfo walks the attachments and exports directories summing
// sizes. Storage info is advisory: any error degrades to zeroed totals
// instead of failing the call.
func (s *AttachmentStore) GetStorageInfo(ctx context.Context) StorageInfo {
	var info StorageInfo

	bytes, count, err := dirUsage(s.attachmentsPath())
	if err != nil {
		s.logger.Warn().Err(err).Msg("storage info: attachments walk failed")
		return StorageInfo{}
	}
	info.AttachmentsBytes, info.AttachmentsCount = bytes, count

	bytes, count, err = dirUsage(s.exportsPath())
	if err != nil {
		s.logger.Warn().Err(err).Msg("storage info: exports walk failed")
		return StorageInfo{}
	}
	info.ExportsBytes, info.ExportsCount = bytes, count

	return info
}

// CleanupTemp removes the temp directory and recreates it empty.
func (s *AttachmentStore) CleanupTemp(ctx context.Context) error {
	if err := os.RemoveAll(s.tempPath()); err != nil {
		return NewError(CodeCleanup, "failed to remove temp directory", err)
	}
	if err := os.MkdirAll(s.tempPath(), 0o755); err != nil {
		return NewError(CodeCleanup, "failed to recreate temp directory", err)
	}

	return nil
}

// ClearAll removes the entire base directory tree.
func (s *AttachmentStore) ClearAll(ctx context.Context) error {
	if err := os.RemoveAll(s.baseDir); err != nil {
		return NewError(CodeCleanup, "failed to remove data directory", err)
	}

	return nil
}

func dirUsage(dir string) (int64, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	var total int64
	var count int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return 0, 0, err
		}
		total += info.Size()
		count++
	}

	return total, count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
