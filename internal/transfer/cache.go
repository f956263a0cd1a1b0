package transfer

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ArkTools_Go/internal/item"
	"github.com/osse101/ArkTools_Go/internal/metrics"
	"github.com/osse101/ArkTools_Go/internal/property"
)

// CacheConfig sizes the inventory id set cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type idSetKey struct {
	archive   *property.Archive
	inventory int32
}

// cachedIDSet is an inventory's id set valid for the first scanned objects of its archive
type cachedIDSet struct {
	ids     item.IDSet
	scanned int
}

// idSetCache keeps the item ids of recently targeted inventories. Archives
// only grow, so a stale entry is brought up to date by scanning the objects
// appended since it was built.
type idSetCache struct {
	lru *expirable.LRU[idSetKey, *cachedIDSet]
}

func newIDSetCache(config CacheConfig) *idSetCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	return &idSetCache{
		lru: expirable.NewLRU[idSetKey, *cachedIDSet](config.Size, nil, config.TTL),
	}
}

// Get returns the id set of inventory in archive, building or extending it as needed
func (c *idSetCache) Get(archive *property.Archive, inventory int32) item.IDSet {
	key := idSetKey{archive: archive, inventory: inventory}
	entry, found := c.lru.Get(key)
	if found {
		metrics.PoolCacheHits.Inc()
	} else {
		metrics.PoolCacheMisses.Inc()
		entry = &cachedIDSet{ids: item.IDSet{}}
		c.lru.Add(key, entry)
	}

	if entry.scanned < len(archive.Objects) {
		for _, o := range archive.Objects[entry.scanned:] {
			if !o.IsItem {
				continue
			}
			if owner, ok := o.OwnerInventory(); !ok || owner != inventory {
				continue
			}
			if id, ok := item.ItemIDOf(o); ok {
				entry.ids.Add(id)
			}
		}
		entry.scanned = len(archive.Objects)
	}
	return entry.ids
}

// Invalidate drops every cached set of archive
func (c *idSetCache) Invalidate(archive *property.Archive) {
	for _, key := range c.lru.Keys() {
		if key.archive == archive {
			c.lru.Remove(key)
		}
	}
}

// Len returns the number of cached sets
func (c *idSetCache) Len() int {
	return c.lru.Len()
}
