package risk

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"yahoo-fantasy-assistant/internal/gamelog"
)

// Cache holds the two process-wide read-through lookups: player name to
// external id, and (id, season) to normalized game log. Entries are never
// invalidated; resolved values are deterministic for the same input, so the
// rare duplicate-resolve race is harmless (last writer wins). Singleflight
// collapses concurrent misses on the same key.
type Cache struct {
	mu    sync.RWMutex
	ids   map[string]int
	logs  map[string][]gamelog.Record
	group singleflight.Group
}

// NewCache constructs an empty Cache.
func NewCache() *Cache {
	return &Cache{
		ids:  make(map[string]int),
		logs: make(map[string][]gamelog.Record),
	}
}

// PlayerID returns the cached external id for a name, resolving and caching
// on miss. Zero means "resolved to nothing" and is cached as well.
func (c *Cache) PlayerID(name string, resolve func() int) int {
	c.mu.RLock()
	id, ok := c.ids[name]
	c.mu.RUnlock()
	if ok {
		return id
	}

	value, _, _ := c.group.Do("id:"+name, func() (any, error) {
		c.mu.RLock()
		id, ok := c.ids[name]
		c.mu.RUnlock()
		if ok {
			return id, nil
		}
		id = resolve()
		c.mu.Lock()
		c.ids[name] = id
		c.mu.Unlock()
		return id, nil
	})
	return value.(int)
}

// GameLog returns the cached normalized log for a player-season, fetching
// and caching on miss. Fetch failures cache as an empty log: the caller has
// already decided that "no data" is the degraded answer.
func (c *Cache) GameLog(playerID int, season string, fetch func() []gamelog.Record) []gamelog.Record {
	key := strconv.Itoa(playerID) + ":" + season

	c.mu.RLock()
	log, ok := c.logs[key]
	c.mu.RUnlock()
	if ok {
		return log
	}

	value, _, _ := c.group.Do("log:"+key, func() (any, error) {
		c.mu.RLock()
		log, ok := c.logs[key]
		c.mu.RUnlock()
		if ok {
			return log, nil
		}
		log = fetch()
		c.mu.Lock()
		c.logs[key] = log
		c.mu.Unlock()
		return log, nil
	})
	return value.([]gamelog.Record)
}
