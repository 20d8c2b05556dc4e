package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/golang/groupcache/singleflight"
)

// Cache is a TTL cache whose misses are collapsed per key, so concurrent
// callers of ComputeIfAbsent share one computation.
type Cache[K string, V any] struct {
	cache *ristretto.Cache[K, V]
	group singleflight.Group
	ttl   time.Duration
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.cache.Get(key)
}

// Set stores value with the cache's default ttl and waits until it is visible to Get.
func (c *Cache[K, V]) Set(key K, value V) bool {
	return c.SetWithTTL(key, value, c.ttl)
}

func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) bool {
	ok := c.cache.SetWithTTL(key, value, 1, ttl)
	c.cache.Wait()
	return ok
}

// ComputeIfAbsent returns the cached value or computes it with f.
// Errors from f are returned as is and nothing is stored.
func (c *Cache[K, V]) ComputeIfAbsent(key K, f func() (V, error)) (*V, error) {
	v, ok := c.cache.Get(key)
	if ok {
		return &v, nil
	}
	cv, err := c.group.Do(string(key), func() (any, error) {
		r, err := f()
		if err != nil {
			return nil, err
		}
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	r := cv.(V)
	c.SetWithTTL(key, r, c.ttl)
	return &r, nil
}

func (c *Cache[K, V]) Delete(key K) {
	c.cache.Del(key)
}

func (c *Cache[K, V]) EvictAll() {
	c.cache.Clear()
}

func (c *Cache[K, V]) Close() {
	c.cache.Close()
}

func NewCache[K string, V any](ttl time.Duration) *Cache[K, V] {
	cache, _ := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: 500,
		MaxCost:     500,
		BufferItems: 64,
	})
	return &Cache[K, V]{
		cache: cache,
		group: singleflight.Group{},
		ttl:   ttl,
	}
}
