package cache

import (
	"sync"
	"sync/atomic"

	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
)

// TranslationCache bounded tarjima keshi.
//
// Eviction is strict FIFO by insertion order: a hit does not move an entry.
// Only the first prefixLen runes of the source text take part in the key, so
// long texts sharing that prefix are served by the same entry. There is no TTL.
type TranslationCache struct {
	mu        sync.RWMutex
	entries   map[entity.CacheKey]entity.Translation
	order     []entity.CacheKey
	capacity  int
	prefixLen int

	// Statistics
	hits   atomic.Int64
	misses atomic.Int64
}

// NewTranslationCache creates a cache; non-positive arguments fall back to defaults.
func NewTranslationCache(capacity, prefixLen int) *TranslationCache {
	if capacity <= 0 {
		capacity = constants.DefaultCacheSize
	}
	if prefixLen <= 0 {
		prefixLen = constants.DefaultCacheKeyLength
	}
	return &TranslationCache{
		entries:   make(map[entity.CacheKey]entity.Translation, capacity),
		order:     make([]entity.CacheKey, 0, capacity),
		capacity:  capacity,
		prefixLen: prefixLen,
	}
}

// Key builds the cache key for text and targetLang.
func (c *TranslationCache) Key(text, targetLang string) entity.CacheKey {
	runes := []rune(text)
	if len(runes) > c.prefixLen {
		runes = runes[:c.prefixLen]
	}
	return entity.CacheKey{TextPrefix: string(runes), TargetLang: targetLang}
}

// Lookup returns the cached translation for the truncated text/lang pair.
func (c *TranslationCache) Lookup(text, targetLang string) (entity.Translation, bool) {
	key := c.Key(text, targetLang)

	c.mu.RLock()
	result, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return result, ok
}

// Insert stores result unless the key already exists. When the cache is full
// the oldest inserted key is evicted first. Reports whether an insert happened.
func (c *TranslationCache) Insert(text, targetLang string, result entity.Translation) bool {
	key := c.Key(text, targetLang)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return false
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order[0] = entity.CacheKey{}
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = result
	c.order = append(c.order, key)
	return true
}

// Len returns the number of cached keys.
func (c *TranslationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Capacity returns the configured bound.
func (c *TranslationCache) Capacity() int {
	return c.capacity
}

// Stats returns cache statistics
func (c *TranslationCache) Stats() (hits, misses int64, size int) {
	return c.hits.Load(), c.misses.Load(), c.Len()
}

// Clear clears all cached entries
func (c *TranslationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[entity.CacheKey]entity.Translation, c.capacity)
	c.order = make([]entity.CacheKey, 0, c.capacity)
}
