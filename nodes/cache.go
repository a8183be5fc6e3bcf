package nodes

import (
	"encoding/json"
	"fmt"

	"outfitforge/logger"
	"outfitforge/store"
)

// CacheKey identifies one node invocation: the canonical input
// signature plus how the seed was produced and what it resolved to.
type CacheKey struct {
	Sig      string
	SeedMode string
	Seed     uint32
}

// Cache memoizes node outputs. It is owned by whoever constructs the
// nodes, holds everything forever and does no locking; the host runs
// one graph at a time.
type Cache struct {
	entries map[CacheKey]Output
	db      *store.Store
}

func NewCache() *Cache {
	return &Cache{entries: map[CacheKey]Output{}}
}

// NewPersistentCache writes entries through to the store so cached
// results survive host restarts.
func NewPersistentCache(db *store.Store) *Cache {
	return &Cache{entries: map[CacheKey]Output{}, db: db}
}

func (k CacheKey) storeKey() string {
	return fmt.Sprintf("result:%s:%s:%d", k.SeedMode, k.Sig, k.Seed)
}

func (c *Cache) Get(key CacheKey) (Output, bool) {
	if out, ok := c.entries[key]; ok {
		return out, true
	}
	if c.db == nil {
		return Output{}, false
	}

	raw, err := c.db.Get(key.storeKey())
	if err != nil {
		return Output{}, false
	}
	var out Output
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Error("Corrupt cached result", "error", err)
		return Output{}, false
	}
	c.entries[key] = out
	return out, true
}

func (c *Cache) Put(key CacheKey, out Output) {
	c.entries[key] = out
	if c.db == nil {
		return
	}

	raw, err := json.Marshal(out)
	if err != nil {
		logger.Error("Could not marshal cached result", "error", err)
		return
	}
	if err := c.db.PutBytes(key.storeKey(), raw); err != nil {
		logger.Error("Could not persist cached result", "error", err)
	}
}

func (c *Cache) Len() int {
	return len(c.entries)
}
