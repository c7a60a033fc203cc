// Package cache remembers which comments the bot has already handled.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

type pruner interface {
	Prune() (int, error)
}

// Key generates a cache key for a comment ID
func Key(commentID string) string {
	hash := sha256.Sum256([]byte(commentID))
	return "eggcorn:v1:seen:" + hex.EncodeToString(hash[:])
}
