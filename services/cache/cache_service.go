package cache

import (
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the explicit read cache in front of the remote row store. Entries
// are keyed by (collection, predicates); mutations never populate it, they
// only invalidate, so read-your-writes is deliberately not provided.
type Cache struct {
	c *gocache.Cache
}

func NewCache() *Cache {
	// Default expiration of 5 minutes, purge of expired items every 10
	return &Cache{
		c: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Key builds the cache key for a read against a collection. Predicates are
// "column=eq.value" fragments in query order.
func Key(collection string, predicates ...string) string {
	if len(predicates) == 0 {
		return collection
	}
	return collection + "|" + strings.Join(predicates, "&")
}

func (cm *Cache) Insert(k string, x interface{}) {
	cm.c.Set(k, x, gocache.DefaultExpiration)
}

func (cm *Cache) Get(key string) (interface{}, error) {
	val, found := cm.c.Get(key)
	if found {
		return val, nil
	}

	return nil, fmt.Errorf("value not found")
}

// Invalidate drops a cached read so the next access re-fetches.
func (cm *Cache) Invalidate(key string) {
	cm.c.Delete(key)
}

func (cm *Cache) Flush() {
	cm.c.Flush()
}
