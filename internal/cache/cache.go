// Package cache implements the client-side read cache: a bounded
// key-value store with TTL expiry, tag-based invalidation and an optional
// persisted snapshot so cached reads survive a restart.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Entry is one cached value with its expiry metadata
type Entry struct {
	Data      any      `json:"data"`
	Tags      []string `json:"tags,omitempty"`
	Timestamp int64    `json:"timestamp"`     // epoch milliseconds at insertion
	TTL       int64    `json:"ttl,omitempty"` // milliseconds; 0 means no expiry
}

// expired reports whether the entry is past its TTL at the given time
func (e *Entry) expired(now int64) bool {
	return e.TTL > 0 && now-e.Timestamp > e.TTL
}

// Config controls cache behaviour
type Config struct {
	StorageKey string

	// DefaultTTL applies when Set is called with a zero ttl
	DefaultTTL time.Duration

	// MaxSize bounds resident entries; inserting at capacity evicts the
	// oldest entry by insertion timestamp
	MaxSize int

	PersistToStorage bool
}

// DefaultConfig returns the cache defaults: 5 minute TTL, 50 entries
func DefaultConfig() Config {
	return Config{
		DefaultTTL:       5 * time.Minute,
		MaxSize:          50,
		PersistToStorage: true,
		StorageKey:       "lms_cache",
	}
}

// SnapshotStore persists a serializable snapshot of the cache
type SnapshotStore interface {
	// SaveCacheSnapshot overwrites the stored snapshot under the given key
	SaveCacheSnapshot(ctx context.Context, storageKey string, entries map[string]json.RawMessage) error

	// LoadCacheSnapshot returns the stored snapshot, or an empty map if
	// none exists
	LoadCacheSnapshot(ctx context.Context, storageKey string) (map[string]json.RawMessage, error)
}

// Stats is a point-in-time summary of the cache
type Stats struct {
	EntriesCount   int     `json:"entriesCount"`
	TotalSizeBytes int     `json:"totalSizeBytes"`
	ExpiredEntries int     `json:"expiredEntries"`
	MaxSize        int     `json:"maxSize"`
	Utilization    float64 `json:"utilization"`
}

// Cache is the TTL + tag cache. All methods are safe for concurrent use.
type Cache struct {
	cfg      Config
	store    SnapshotStore
	logger   *slog.Logger
	entries  map[string]*Entry
	tagIndex map[string]map[string]struct{} // tag -> set of keys
	now      func() time.Time
	mu       sync.Mutex
}

// New creates a cache and, when persistence is enabled, reloads the stored
// snapshot. Entries already expired at load time are dropped and the tag
// index is rebuilt from the surviving entries. store may be nil when
// persistence is disabled.
func New(ctx context.Context, cfg Config, store SnapshotStore, logger *slog.Logger) *Cache {
	c := &Cache{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		entries:  make(map[string]*Entry),
		tagIndex: make(map[string]map[string]struct{}),
		now:      time.Now,
	}

	if cfg.PersistToStorage && store != nil {
		c.loadSnapshot(ctx)
	}

	return c
}

// Set inserts or overwrites an entry. A zero ttl falls back to the
// configured default; a negative ttl stores a non-expiring entry. At
// capacity the single oldest entry (by insertion timestamp) is evicted
// first.
func (c *Cache) Set(ctx context.Context, key string, data any, ttl time.Duration, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ttl == 0 {
		ttl = c.cfg.DefaultTTL
	}
	ttlMs := ttl.Milliseconds()
	if ttlMs < 0 {
		ttlMs = 0
	}

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.cfg.MaxSize {
		c.evictOldest()
	}

	if old, exists := c.entries[key]; exists {
		c.dropTagRefs(key, old)
	}

	entry := &Entry{
		Data:      data,
		Timestamp: c.now().UnixMilli(),
		TTL:       ttlMs,
		Tags:      tags,
	}
	c.entries[key] = entry

	for _, tag := range tags {
		keys, ok := c.tagIndex[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.tagIndex[tag] = keys
		}
		keys[key] = struct{}{}
	}

	c.persist(ctx)
}

// Get returns the live value for key, or (nil, false) on a miss. Reading
// an expired entry evicts it (lazy expiry).
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.getLive(key)
	if !ok {
		return nil, false
	}
	return entry.Data, true
}

// GetEntry returns the live entry with its metadata, or (nil, false)
func (c *Cache) GetEntry(key string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.getLive(key)
}

// Has reports whether a live entry exists for key
func (c *Cache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Remove deletes the entry and its tag-index references. Returns whether
// an entry was removed.
func (c *Cache) Remove(ctx context.Context, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.removeLocked(key)
	if removed {
		c.persist(ctx)
	}
	return removed
}

// InvalidateByTag removes every entry carrying the tag and returns the
// count removed. Callers invalidate after successful writes: the entity's
// own id plus its collection tag.
func (c *Cache) InvalidateByTag(ctx context.Context, tag string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := c.tagIndex[tag]
	if len(keys) == 0 {
		return 0
	}

	count := 0
	for key := range keys {
		if c.removeLocked(key) {
			count++
		}
	}

	if count > 0 {
		c.persist(ctx)
	}
	return count
}

// GetByTag returns the live values of every entry carrying the tag
func (c *Cache) GetByTag(tag string) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make(map[string]any)
	for key := range c.tagIndex[tag] {
		if entry, ok := c.getLive(key); ok {
			result[key] = entry.Data
		}
	}
	return result
}

// MGet looks up several keys at once; missing or expired keys are absent
// from the result. No atomicity across the batch.
func (c *Cache) MGet(keys ...string) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make(map[string]any, len(keys))
	for _, key := range keys {
		if entry, ok := c.getLive(key); ok {
			result[key] = entry.Data
		}
	}
	return result
}

// MSet applies Set for every pair in values with shared ttl and tags
func (c *Cache) MSet(ctx context.Context, values map[string]any, ttl time.Duration, tags ...string) {
	for key, data := range values {
		c.Set(ctx, key, data, ttl, tags...)
	}
}

// Cleanup eagerly sweeps all expired entries and returns the count removed
func (c *Cache) Cleanup(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	nowMs := c.now().UnixMilli()
	var expiredKeys []string
	for key, entry := range c.entries {
		if entry.expired(nowMs) {
			expiredKeys = append(expiredKeys, key)
		}
	}

	count := 0
	for _, key := range expiredKeys {
		if c.removeLocked(key) {
			count++
		}
	}

	if count > 0 {
		c.persist(ctx)
	}
	return count
}

// Clear empties the cache and the persisted snapshot
func (c *Cache) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry)
	c.tagIndex = make(map[string]map[string]struct{})
	c.persist(ctx)
}

// Stats reports entry count, approximate serialized size, how many entries
// are expired but not yet swept, and the utilization ratio.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	nowMs := c.now().UnixMilli()
	stats := Stats{
		EntriesCount: len(c.entries),
		MaxSize:      c.cfg.MaxSize,
	}

	for _, entry := range c.entries {
		if data, err := json.Marshal(entry.Data); err == nil {
			stats.TotalSizeBytes += len(data)
		}
		if entry.expired(nowMs) {
			stats.ExpiredEntries++
		}
	}

	if c.cfg.MaxSize > 0 {
		stats.Utilization = float64(len(c.entries)) / float64(c.cfg.MaxSize)
	}
	return stats
}

// getLive returns the entry if present and unexpired, evicting it when
// expired. Caller holds the lock.
func (c *Cache) getLive(key string) (*Entry, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if entry.expired(c.now().UnixMilli()) {
		c.removeLocked(key)
		return nil, false
	}
	return entry, true
}

// removeLocked deletes the entry and its tag references without
// persisting. Caller holds the lock.
func (c *Cache) removeLocked(key string) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}

	c.dropTagRefs(key, entry)
	delete(c.entries, key)
	return true
}

func (c *Cache) dropTagRefs(key string, entry *Entry) {
	for _, tag := range entry.Tags {
		keys := c.tagIndex[tag]
		delete(keys, key)
		if len(keys) == 0 {
			delete(c.tagIndex, tag)
		}
	}
}

// evictOldest drops the single entry with the smallest insertion
// timestamp. Caller holds the lock.
func (c *Cache) evictOldest() {
	var oldestKey string
	oldestTime := int64(-1)

	for key, entry := range c.entries {
		if oldestTime < 0 || entry.Timestamp < oldestTime {
			oldestTime = entry.Timestamp
			oldestKey = key
		}
	}

	if oldestKey != "" {
		c.removeLocked(oldestKey)
	}
}

// persist writes the snapshot of live entries. Entries that fail to
// serialize are skipped from the snapshot but remain queryable in memory.
// Persistence failures are logged, never surfaced. Caller holds the lock.
func (c *Cache) persist(ctx context.Context) {
	if !c.cfg.PersistToStorage || c.store == nil {
		return
	}

	nowMs := c.now().UnixMilli()
	snapshot := make(map[string]json.RawMessage, len(c.entries))
	for key, entry := range c.entries {
		if entry.expired(nowMs) {
			continue
		}

		data, err := json.Marshal(entry)
		if err != nil {
			c.logger.Warn("skipping unserializable cache entry", "key", key, "error", err)
			continue
		}
		snapshot[key] = data
	}

	if err := c.store.SaveCacheSnapshot(ctx, c.cfg.StorageKey, snapshot); err != nil {
		c.logger.Error("failed to persist cache snapshot", "error", err)
	}
}

// loadSnapshot restores persisted entries, dropping the ones already
// expired and rebuilding the tag index
func (c *Cache) loadSnapshot(ctx context.Context) {
	stored, err := c.store.LoadCacheSnapshot(ctx, c.cfg.StorageKey)
	if err != nil {
		c.logger.Error("failed to load cache snapshot", "error", err)
		return
	}

	nowMs := c.now().UnixMilli()
	for key, raw := range stored {
		var entry Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			c.logger.Warn("dropping corrupt cache entry", "key", key, "error", err)
			continue
		}
		if entry.expired(nowMs) {
			continue
		}

		c.entries[key] = &entry
		for _, tag := range entry.Tags {
			keys, ok := c.tagIndex[tag]
			if !ok {
				keys = make(map[string]struct{})
				c.tagIndex[tag] = keys
			}
			keys[key] = struct{}{}
		}
	}

	if len(c.entries) > 0 {
		c.logger.Debug("restored cache entries from snapshot", "count", len(c.entries))
	}
}
