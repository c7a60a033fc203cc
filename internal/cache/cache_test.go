package cache

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/eggcorn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, Key("abc"), Key("abc"))
	assert.NotEqual(t, Key("abc"), Key("abd"))
	assert.Contains(t, Key("abc"), "eggcorn:v1:seen:")
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_, found := c.Get("k")
	assert.False(t, found)

	require.NoError(t, c.Set("k", []byte("v"), 0))
	val, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, c.Delete("k"))
	_, found = c.Get("k")
	assert.False(t, found)

	require.NoError(t, c.Set("k2", []byte("v2"), 0))
	require.NoError(t, c.Clear())
	_, found = c.Get("k2")
	assert.False(t, found)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	require.NoError(t, c.Set("k", []byte("v"), 10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)
	_, found := c.Get("k")
	assert.False(t, found)
}

func TestDiskCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "seen")
	c := NewDiskCache(dir, time.Hour)

	_, found := c.Get(Key("c1"))
	assert.False(t, found)

	require.NoError(t, c.Set(Key("c1"), []byte("v"), 0))
	val, found := c.Get(Key("c1"))
	require.True(t, found)
	assert.Equal(t, []byte("v"), val)

	// A fresh instance reads what the first one wrote.
	val, found = NewDiskCache(dir, time.Hour).Get(Key("c1"))
	require.True(t, found)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, c.Delete(Key("c1")))
	require.NoError(t, c.Delete(Key("c1")))
	_, found = c.Get(Key("c1"))
	assert.False(t, found)
}

func TestDiskCache_ExpiryAndPrune(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	require.NoError(t, c.Set("old", []byte("v"), time.Millisecond))
	require.NoError(t, c.Set("fresh", []byte("v"), time.Hour))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken"+diskSuffix), []byte("{"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644))

	time.Sleep(10 * time.Millisecond)

	removed, err := c.Prune()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, found := c.Get("fresh")
	assert.True(t, found)
	assert.FileExists(t, filepath.Join(dir, "unrelated.txt"))

	removed, err = NewDiskCache(filepath.Join(dir, "missing"), time.Hour).Prune()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	memory := NewMemoryCache(time.Hour, time.Hour)
	disk := NewDiskCache(t.TempDir(), time.Hour)
	require.NoError(t, disk.Set("k", []byte("v"), 0))

	c := NewLayeredCache(memory, disk)
	val, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, []byte("v"), val)

	val, found = memory.Get("k")
	require.True(t, found)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, c.Delete("k"))
	_, found = c.Get("k")
	assert.False(t, found)
}

func TestLedger_Claim(t *testing.T) {
	l := NewLedger(NewMemoryCache(time.Hour, time.Hour), 0)

	assert.False(t, l.Seen("c1"))

	first, err := l.Claim("c1")
	require.NoError(t, err)
	assert.True(t, first)
	assert.True(t, l.Seen("c1"))

	again, err := l.Claim("c1")
	require.NoError(t, err)
	assert.False(t, again)

	require.NoError(t, l.Forget("c1"))
	assert.False(t, l.Seen("c1"))
}

func TestLedger_ClaimIsExclusive(t *testing.T) {
	l := NewLedger(NewMemoryCache(time.Hour, time.Hour), 0)

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Claim("same"); ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}

func TestOpenLedger(t *testing.T) {
	assert.Nil(t, OpenLedger(model.CacheConfig{Enabled: false}))

	dir := t.TempDir()
	cfg := model.CacheConfig{Enabled: true, Dir: dir, MemoryTTL: time.Hour, DiskTTL: time.Hour}

	l := OpenLedger(cfg)
	require.NotNil(t, l)
	_, err := l.Claim("persisted")
	require.NoError(t, err)

	// Survives a restart through the disk layer.
	assert.True(t, OpenLedger(cfg).Seen("persisted"))

	memOnly := OpenLedger(model.CacheConfig{Enabled: true, MemoryTTL: time.Hour})
	require.NotNil(t, memOnly)
	assert.False(t, memOnly.Seen("persisted"))
}

func TestLedger_Prune(t *testing.T) {
	dir := t.TempDir()
	disk := NewDiskCache(dir, time.Hour)
	require.NoError(t, disk.Set(Key("stale"), []byte("x"), time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	l := NewLedger(NewLayeredCache(NewMemoryCache(time.Hour, time.Hour), disk), time.Hour)
	removed, err := l.Prune()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	removed, err = NewLedger(NewMemoryCache(time.Hour, time.Hour), 0).Prune()
	require.NoError(t, err)
	assert.Zero(t, removed)
}
