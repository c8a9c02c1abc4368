// Package cache is the ephemeral TTL layer over the key-value store. It is
// pure optimization: every failure degrades to a cache miss and is never
// surfaced to callers, so the whole layer can be wiped or bypassed without
// data loss.
package cache

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/hexaaagon/tugascollecter/internal/config"
	"github.com/hexaaagon/tugascollecter/internal/logger"
	"github.com/hexaaagon/tugascollecter/internal/store"
	"github.com/hexaaagon/tugascollecter/models"
)

// Prefix namespaces cache entries inside the shared key-value store so the
// durable collections and the cache can be cleared independently.
const Prefix = "cache:"

// Cache provides TTL-bounded storage with lazy expiration: reads past
// expiresAt delete the entry. A sweep also runs opportunistically after
// every Set and at storage initialization.
type Cache struct {
	kv         store.KeyValue
	dir        string
	defaultTTL time.Duration
	maxEntries int
	logger     *logger.Logger
	now        func() time.Time
}

func New(kv store.KeyValue, cfg config.Cache, log *logger.Logger) *Cache {
	return &Cache{
		kv:         kv,
		dir:        cfg.Dir,
		defaultTTL: cfg.DefaultTTL,
		maxEntries: cfg.MaxEntries,
		logger:     log,
		now:        time.Now,
	}
}

// Set wraps data with its write time and absolute expiry and persists it
// under the cache namespace. A non-positive ttl selects the configured
// default. After the write an opportunistic sweep removes expired entries.
func (c *Cache) Set(ctx context.Context, key string, data any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	now := c.now()
	item := models.CacheItem{
		Data:      raw,
		Timestamp: now,
		ExpiresAt: now.Add(ttl),
	}

	encoded, err := json.Marshal(item)
	if err != nil {
		return err
	}

	if err = c.kv.Set(ctx, Prefix+key, string(encoded)); err != nil {
		return err
	}

	c.CleanupExpired(ctx)
	return nil
}

// Get decodes the cached value for key into dest and reports whether a
// valid entry was found. Expired entries are deleted on read. Failures of
// any kind degrade to a miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	item, ok := c.item(ctx, key)
	if !ok {
		return false
	}

	if err := json.Unmarshal(item.Data, dest); err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("cache decode failed, treating as miss")
		return false
	}

	return true
}

// item fetches and validates one cache entry, deleting it when expired.
func (c *Cache) item(ctx context.Context, key string) (models.CacheItem, bool) {
	raw, ok, err := c.kv.Get(ctx, Prefix+key)
	if err != nil || !ok {
		return models.CacheItem{}, false
	}

	var item models.CacheItem
	if err = json.Unmarshal([]byte(raw), &item); err != nil {
		_ = c.kv.Remove(ctx, Prefix+key)
		return models.CacheItem{}, false
	}

	if !item.Valid(c.now()) {
		_ = c.kv.Remove(ctx, Prefix+key)
		return models.CacheItem{}, false
	}

	return item, true
}

// Remember is the cache-aside read path: it decodes a valid cached value
// into dest, or invokes produce, caches its result, and decodes that into
// dest. A failed cache write never fails the read; the freshly produced
// value is still returned.
func (c *Cache) Remember(ctx context.Context, key string, ttl time.Duration, dest any, produce func(ctx context.Context) (any, error)) error {
	if c.Get(ctx, key, dest) {
		return nil
	}

	value, err := produce(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(raw, dest); err != nil {
		return err
	}

	if err = c.Set(ctx, key, value, ttl); err != nil {
		c.logger.Debug().Err(err).Str("key", key).Msg("cache write failed, returning produced value")
	}

	return nil
}

// Remove deletes one cache entry.
func (c *Cache) Remove(ctx context.Context, key string) {
	_ = c.kv.Remove(ctx, Prefix+key)
}

// CleanupExpired scans the cache namespace and removes every entry past its
// expiry, deleting any associated cached file. Returns the count removed.
func (c *Cache) CleanupExpired(ctx context.Context) int {
	keys, err := c.kv.Keys(ctx, Prefix)
	if err != nil {
		c.logger.Debug().Err(err).Msg("cache sweep skipped: key listing failed")
		return 0
	}

	removed := 0
	now := c.now()
	for _, key := range keys {
		raw, ok, err := c.kv.Get(ctx, key)
		if err != nil || !ok {
			continue
		}

		var item models.CacheItem
		if err = json.Unmarshal([]byte(raw), &item); err == nil && item.Valid(now) {
			continue
		}

		c.removeCachedFile(item)
		if err = c.kv.Remove(ctx, key); err == nil {
			removed++
		}
	}

	return removed
}

// LimitSize evicts the oldest entries by write timestamp until the entry
// count is at or under max. Eviction order is insertion order, not access
// order; access times are not tracked.
func (c *Cache) LimitSize(ctx context.Context, max int) {
	if max <= 0 {
		max = c.maxEntries
	}

	keys, err := c.kv.Keys(ctx, Prefix)
	if err != nil || len(keys) <= max {
		return
	}

	type aged struct {
		key  string
		item models.CacheItem
	}
	entries := make([]aged, 0, len(keys))
	for _, key := range keys {
		raw, ok, err := c.kv.Get(ctx, key)
		if err != nil || !ok {
			continue
		}
		var item models.CacheItem
		if err = json.Unmarshal([]byte(raw), &item); err != nil {
			// Undecodable entries count for nothing; drop them outright.
			_ = c.kv.Remove(ctx, key)
			continue
		}
		entries = append(entries, aged{key: key, item: item})
	}
	if len(entries) <= max {
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].item.Timestamp.Before(entries[j].item.Timestamp)
	})

	for _, entry := range entries[:len(entries)-max] {
		c.removeCachedFile(entry.item)
		_ = c.kv.Remove(ctx, entry.key)
	}
}

// Clear removes every entry in the cache namespace.
func (c *Cache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys(ctx, Prefix)
	if err != nil {
		return err
	}

	return c.kv.Remove(ctx, keys...)
}
