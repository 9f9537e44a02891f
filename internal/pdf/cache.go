package pdf

import (
	"fmt"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// resultCache keeps parsed filings in memory, keyed by file identity
type resultCache struct {
	cache *gocache.Cache
}

// newResultCache creates a cache whose entries expire after ttl.
// A non-positive ttl disables caching.
func newResultCache(ttl time.Duration) *resultCache {
	if ttl <= 0 {
		return nil
	}
	return &resultCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

// cacheKey identifies a file version by path, size and modification time
func cacheKey(path string, info os.FileInfo) string {
	return fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
}

func (c *resultCache) get(key string) (*ParseFilingResult, bool) {
	if c == nil {
		return nil, false
	}
	if val, found := c.cache.Get(key); found {
		return val.(*ParseFilingResult), true
	}
	return nil, false
}

func (c *resultCache) set(key string, res *ParseFilingResult) {
	if c == nil {
		return
	}
	c.cache.Set(key, res, gocache.DefaultExpiration)
}

func (c *resultCache) count() int {
	if c == nil {
		return 0
	}
	return c.cache.ItemCount()
}

func (c *resultCache) flush() {
	if c == nil {
		return
	}
	c.cache.Flush()
}
