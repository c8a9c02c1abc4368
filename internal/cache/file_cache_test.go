package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetFile_CopiesIntoCacheDir(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()
	src := writeTempFile(t, "report.pdf", "pdf-bytes")

	require.NoError(t, c.SetFile(ctx, "report", src, time.Hour))

	path, ok := c.GetFile(ctx, "report")
	require.True(t, ok)
	assert.Equal(t, c.dir, filepath.Dir(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))
}

func TestGetFile_MissingFileSelfHeals(t *testing.T) {
	c, kv, _ := newTestCache(t)
	ctx := context.Background()
	src := writeTempFile(t, "a.txt", "x")

	require.NoError(t, c.SetFile(ctx, "doc", src, time.Hour))
	path, ok := c.GetFile(ctx, "doc")
	require.True(t, ok)

	// Delete the backing file out from under the cache.
	require.NoError(t, os.Remove(path))

	_, ok = c.GetFile(ctx, "doc")
	assert.False(t, ok)

	// The stale metadata entry was removed too.
	_, present, err := kv.Get(ctx, Prefix+"doc")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestGetFile_ExpiredIsMiss(t *testing.T) {
	c, _, clk := newTestCache(t)
	ctx := context.Background()
	src := writeTempFile(t, "a.txt", "x")

	require.NoError(t, c.SetFile(ctx, "doc", src, time.Minute))
	clk.Advance(2 * time.Minute)

	_, ok := c.GetFile(ctx, "doc")
	assert.False(t, ok)
}

func TestRemoveFile_DeletesEntryAndFile(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()
	src := writeTempFile(t, "a.txt", "x")

	require.NoError(t, c.SetFile(ctx, "doc", src, time.Hour))
	path, ok := c.GetFile(ctx, "doc")
	require.True(t, ok)

	c.RemoveFile(ctx, "doc")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, ok = c.GetFile(ctx, "doc")
	assert.False(t, ok)
}

func TestCleanupExpired_DeletesCachedFiles(t *testing.T) {
	c, _, clk := newTestCache(t)
	ctx := context.Background()
	src := writeTempFile(t, "a.txt", "x")

	require.NoError(t, c.SetFile(ctx, "doc", src, time.Minute))
	path, ok := c.GetFile(ctx, "doc")
	require.True(t, ok)

	clk.Advance(5 * time.Minute)
	removed := c.CleanupExpired(ctx)

	assert.Equal(t, 1, removed)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestClearFileCache_RemovesDirectory(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()
	src := writeTempFile(t, "a.txt", "x")
	require.NoError(t, c.SetFile(ctx, "doc", src, time.Hour))

	require.NoError(t, c.ClearFileCache(ctx))

	_, err := os.Stat(c.dir)
	assert.True(t, os.IsNotExist(err))
}
