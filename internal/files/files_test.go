package files

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexaaagon/tugascollecter/internal/config"
	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/models"
)

type fakePicker struct {
	file *PickedFile
	err  error
}

func (p *fakePicker) Pick(context.Context) (*PickedFile, error) { return p.file, p.err }

type fakeSharer struct {
	calls []string
	err   error
}

func (s *fakeSharer) Share(_ context.Context, path, mimeType string) error {
	s.calls = append(s.calls, path+"|"+mimeType)
	return s.err
}

type fakeOpener struct {
	calls []string
	err   error
}

func (o *fakeOpener) Open(_ context.Context, path, mimeType string) error {
	o.calls = append(o.calls, path+"|"+mimeType)
	return o.err
}

func newTestStore(t *testing.T) (*AttachmentStore, *fakePicker, *fakeSharer, *fakeOpener) {
	t.Helper()
	picker := &fakePicker{}
	sharer := &fakeSharer{}
	opener := &fakeOpener{}

	s := NewAttachmentStore(config.Files{DataDir: t.TempDir()}, picker, sharer, opener, logger.Nop())
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, s.InitDirs(context.Background()))
	return s, picker, sharer, opener
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitDirs_Idempotent(t *testing.T) {
	s, _, _, _ := newTestStore(t)

	// Second run over existing directories must succeed.
	require.NoError(t, s.InitDirs(context.Background()))

	for _, dir := range []string{s.attachmentsPath(), s.exportsPath(), s.tempPath()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveAttachment_PopulatesRecord(t *testing.T) {
	s, _, _, _ := newTestStore(t)
	src := writeSource(t, "notes.pdf", "pdf-bytes")

	att, err := s.SaveAttachment(context.Background(), src, "h1", "notes.pdf")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(att.ID, "h1_"))
	assert.Equal(t, "notes.pdf", att.Name)
	assert.Equal(t, models.AttachmentDocument, att.Type)
	assert.Equal(t, "application/pdf", att.MimeType)
	assert.Equal(t, int64(len("pdf-bytes")), att.Size)
	assert.FileExists(t, att.URI)
}

func TestSaveAttachment_MissingSource(t *testing.T) {
	s, _, _, _ := newTestStore(t)

	_, err := s.SaveAttachment(context.Background(), "/nope/gone.png", "h1", "gone.png")

	require.Error(t, err)
	assert.Equal(t, CodeSourceMissing, CodeOf(err))
}

func TestAttachmentPath_PrefixLookup(t *testing.T) {
	s, _, _, _ := newTestStore(t)
	src := writeSource(t, "photo.JPG", "jpeg-bytes")

	att, err := s.SaveAttachment(context.Background(), src, "h2", "photo.JPG")
	require.NoError(t, err)

	// The id resolves regardless of the original extension.
	path, ok, err := s.AttachmentPath(context.Background(), att.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(filepath.Base(path), att.ID))
}

func TestAttachmentPath_UnknownID(t *testing.T) {
	s, _, _, _ := newTestStore(t)

	_, ok, err := s.AttachmentPath(context.Background(), "ghost_123")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteAttachment_RemovesByPrefix(t *testing.T) {
	s, _, _, _ := newTestStore(t)
	src := writeSource(t, "sheet.xlsx", "cells")
	att, err := s.SaveAttachment(context.Background(), src, "h3", "sheet.xlsx")
	require.NoError(t, err)

	require.NoError(t, s.DeleteAttachment(context.Background(), att.ID))

	_, ok, err := s.AttachmentPath(context.Background(), att.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteAttachment_SilentOnMiss(t *testing.T) {
	s, _, _, _ := newTestStore(t)

	assert.NoError(t, s.DeleteAttachment(context.Background(), "never_saved"))
}

func TestDeleteAttachment_TempIDIsNoop(t *testing.T) {
	s, _, _, _ := newTestStore(t)

	assert.NoError(t, s.DeleteAttachment(context.Background(), models.TempAttachmentPrefix+"abc"))
}

func TestGetStorageInfo_SumsSizes(t *testing.T) {
	s, _, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveAttachment(ctx, writeSource(t, "a.txt", "12345"), "h1", "a.txt")
	require.NoError(t, err)

	info := s.GetStorageInfo(ctx)

	assert.Equal(t, int64(5), info.AttachmentsBytes)
	assert.Equal(t, 1, info.AttachmentsCount)
	assert.Zero(t, info.ExportsCount)
}

func TestGetStorageInfo_MissingDirsZeroed(t *testing.T) {
	s := NewAttachmentStore(config.Files{DataDir: filepath.Join(t.TempDir(), "never-created")},
		&fakePicker{}, &fakeSharer{}, &fakeOpener{}, logger.Nop())

	info := s.GetStorageInfo(context.Background())

	assert.Zero(t, info.AttachmentsBytes)
	assert.Zero(t, info.AttachmentsCount)
}

func TestCleanupTemp_RecreatesEmpty(t *testing.T) {
	s, _, _, _ := newTestStore(t)
	ctx := context.Background()

	junk := filepath.Join(s.tempPath(), "scratch.bin")
	require.NoError(t, os.WriteFile(junk, []byte("x"), 0o600))

	require.NoError(t, s.CleanupTemp(ctx))

	entries, err := os.ReadDir(s.tempPath())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClearAll_RemovesTree(t *testing.T) {
	s, _, _, _ := newTestStore(t)

	require.NoError(t, s.ClearAll(context.Background()))

	_, err := os.Stat(s.baseDir)
	assert.True(t, os.IsNotExist(err))
}

func TestShareAttachment_NotFound(t *testing.T) {
	s, _, sharer, _ := newTestStore(t)

	err := s.ShareAttachment(context.Background(), "ghost_1")

	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
	assert.Empty(t, sharer.calls)
}

func TestShareAttachment_DelegatesWithMime(t *testing.T) {
	s, _, sharer, _ := newTestStore(t)
	src := writeSource(t, "img.png", "png")
	att, err := s.SaveAttachment(context.Background(), src, "h1", "img.png")
	require.NoError(t, err)

	require.NoError(t, s.ShareAttachment(context.Background(), att.ID))

	require.Len(t, sharer.calls, 1)
	assert.Contains(t, sharer.calls[0], "image/png")
}

func TestOpenWith_FallsBackToShare(t *testing.T) {
	s, _, sharer, opener := newTestStore(t)
	opener.err = errors.New("no direct-open support")
	src := writeSource(t, "doc.pdf", "pdf")
	att, err := s.SaveAttachment(context.Background(), src, "h1", "doc.pdf")
	require.NoError(t, err)

	require.NoError(t, s.OpenWithExternalApp(context.Background(), att.ID))

	assert.Len(t, opener.calls, 1)
	assert.Len(t, sharer.calls, 1)
}

func TestOpenWith_BothFail(t *testing.T) {
	s, _, sharer, opener := newTestStore(t)
	opener.err = errors.New("unsupported")
	sharer.err = errors.New("sharing unavailable")
	src := writeSource(t, "doc.pdf", "pdf")
	att, err := s.SaveAttachment(context.Background(), src, "h1", "doc.pdf")
	require.NoError(t, err)

	err = s.OpenWithExternalApp(context.Background(), att.ID)

	require.Error(t, err)
	assert.Equal(t, CodeOpen, CodeOf(err))
	// Both underlying causes stay inspectable.
	assert.ErrorIs(t, err, opener.err)
	assert.ErrorIs(t, err, sharer.err)
}
