package store

import (
	"sync"

	"github.com/google/uuid"
)

// Entity is any record with a UUID primary key.
type Entity interface {
	EntityID() uuid.UUID
}

// cache holds the latest fetched result set for one table. List replaces the
// whole snapshot; mutations patch it in place so dependent views recompute
// without a refetch. Last-write-wins: a late List completion overwrites
// whatever a newer call stored.
type cache[T Entity] struct {
	mu    sync.RWMutex
	items []T
	ready bool
}

// snapshot returns a copy of the cached rows and whether a List has
// completed since startup.
func (c *cache[T]) snapshot() ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, c.ready
}

func (c *cache[T]) replaceAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.ready = true
}

func (c *cache[T]) prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

func (c *cache[T]) replace(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == item.EntityID() {
			c.items[i] = item
			return
		}
	}
}

func (c *cache[T]) remove(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// find returns the cached row with the given id, if present.
func (c *cache[T]) find(id uuid.UUID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}
