package cache

import (
	"sync"
	"time"

	"github.com/ppiankov/eggcorn/internal/model"
)

// Ledger records handled comment IDs so a comment is corrected at most once
type Ledger struct {
	cache Cache
	ttl   time.Duration
	mu    sync.Mutex
}

// NewLedger wraps c; entries expire after ttl (zero uses the cache default)
func NewLedger(c Cache, ttl time.Duration) *Ledger {
	return &Ledger{cache: c, ttl: ttl}
}

// OpenLedger builds the memory+disk ledger described by cfg.
// It returns nil when the cache is disabled.
func OpenLedger(cfg model.CacheConfig) *Ledger {
	if !cfg.Enabled {
		return nil
	}

	memory := NewMemoryCache(cfg.MemoryTTL, 10*time.Minute)
	if cfg.Dir == "" {
		return NewLedger(memory, cfg.MemoryTTL)
	}

	disk := NewDiskCache(cfg.Dir, cfg.DiskTTL)
	return NewLedger(NewLayeredCache(memory, disk), cfg.DiskTTL)
}

// Seen reports whether the comment was handled before
func (l *Ledger) Seen(commentID string) bool {
	_, found := l.cache.Get(Key(commentID))
	return found
}

// Claim marks the comment as handled and reports whether this call was the first to do so
func (l *Ledger) Claim(commentID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := Key(commentID)
	if _, found := l.cache.Get(key); found {
		return false, nil
	}

	stamp := []byte(time.Now().UTC().Format(time.RFC3339))
	if err := l.cache.Set(key, stamp, l.ttl); err != nil {
		return false, err
	}
	return true, nil
}

// Forget removes a comment so it can be handled again
func (l *Ledger) Forget(commentID string) error {
	return l.cache.Delete(Key(commentID))
}

// Prune removes expired entries from persistent storage
func (l *Ledger) Prune() (int, error) {
	if p, ok := l.cache.(pruner); ok {
		return p.Prune()
	}
	return 0, nil
}
