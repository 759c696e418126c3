package location

import "sync"

// DefaultCache holds the process-wide fallback location. It is updated only
// when a geolocation fetch succeeds and read only when a request carries no
// location of its own.
type DefaultCache struct {
	mu  sync.RWMutex
	loc Location
	set bool
}

// Update stores a freshly fetched geolocation. Empty locations are ignored
// so a failed fetch can never clobber a known-good fallback.
func (c *DefaultCache) Update(loc Location) {
	if loc.IsZero() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loc = loc
	c.set = true
}

// Get returns the fallback location, if one has been recorded.
func (c *DefaultCache) Get() (Location, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loc, c.set
}
