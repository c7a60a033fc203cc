package cache

import (
	"errors"
	"time"
)

// LayeredCache reads through a fast cache to a durable one
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache stacks memory in front of disk
func NewLayeredCache(memory, disk Cache) *LayeredCache {
	return &LayeredCache{
		memory: memory,
		disk:   disk,
	}
}

// Get checks memory first, then disk, promoting disk hits to memory
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, val, 0)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes a value from both layers
func (c *LayeredCache) Delete(key string) error {
	return errors.Join(c.memory.Delete(key), c.disk.Delete(key))
}

// Clear empties both layers
func (c *LayeredCache) Clear() error {
	return errors.Join(c.memory.Clear(), c.disk.Clear())
}

// Prune drops expired entries from the durable layer when it supports pruning
func (c *LayeredCache) Prune() (int, error) {
	if p, ok := c.disk.(pruner); ok {
		return p.Prune()
	}
	return 0, nil
}
