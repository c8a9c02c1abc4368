package models

import (
	"encoding/json"
	"time"
)

// CacheItem wraps a cached value with its write time and absolute expiry.
// An item is valid iff now <= ExpiresAt; reads past expiry delete the entry.
type CacheItem struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// Valid reports whether the item has not expired at the given instant.
func (c CacheItem) Valid(now time.Time) bool {
	return !now.After(c.ExpiresAt)
}

// CachedFile is the payload stored for file-backed cache entries: the
// on-disk location of the copied file plus its original name.
type CachedFile struct {
	Path string `json:"path"`
	Name string `json:"name"`
}
