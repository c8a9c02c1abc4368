package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hexaaagon/tugascollecter/models"
)

// SetFile copies the file at fileURI into the cache directory and stores
// its location as a regular cache entry under key, so file-backed entries
// expire and evict like everything else.
func (c *Cache) SetFile(ctx context.Context, key, fileURI string, ttl time.Duration) error {
	src, err := os.Open(fileURI)
	if err != nil {
		return err
	}
	defer src.Close()

	if err = os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	dest := filepath.Join(c.dir, fmt.Sprintf("%s_%d%s", sanitizeKey(key), c.now().UnixMilli(), filepath.Ext(fileURI)))
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}

	cached := models.CachedFile{Path: dest, Name: filepath.Base(fileURI)}
	return c.Set(ctx, key, cached, ttl)
}

// GetFile returns the on-disk path of a cached file, validating existence
// on read. A missing file is treated as a miss and the stale metadata entry
// is removed (self-healing).
func (c *Cache) GetFile(ctx context.Context, key string) (string, bool) {
	var cached models.CachedFile
	if !c.Get(ctx, key, &cached) {
		return "", false
	}

	if _, err := os.Stat(cached.Path); err != nil {
		c.Remove(ctx, key)
		return "", false
	}

	return cached.Path, true
}

// RemoveFile deletes a file-backed cache entry and its on-disk file.
func (c *Cache) RemoveFile(ctx context.Context, key string) {
	var cached models.CachedFile
	if c.Get(ctx, key, &cached) {
		_ = os.Remove(cached.Path)
	}
	c.Remove(ctx, key)
}

// ClearFileCache removes the entire file-cache directory.
func (c *Cache) ClearFileCache(ctx context.Context) error {
	return os.RemoveAll(c.dir)
}

// removeCachedFile best-effort deletes the on-disk file behind an entry, if
// its payload decodes as a CachedFile pointing into the cache directory.
func (c *Cache) removeCachedFile(item models.CacheItem) {
	var cached models.CachedFile
	if err := json.Unmarshal(item.Data, &cached); err != nil || cached.Path == "" {
		return
	}
	if filepath.Dir(cached.Path) != filepath.Clean(c.dir) {
		return
	}
	_ = os.Remove(cached.Path)
}

func sanitizeKey(key string) string {
	out := []rune(key)
	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
