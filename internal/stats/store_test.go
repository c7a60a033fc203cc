package stats

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFileIsZero(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "stats.json"))

	st, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

func TestStore_KeepsExistingCounters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"good": 960, "bad": 372, "mistake counter": 25791, "total runs": 3163}`), 0644))

	s := NewStore(path)

	st, err := s.AddMistakes(3)
	require.NoError(t, err)
	assert.Equal(t, Stats{Good: 960, Bad: 372, Mistakes: 25794, Runs: 3163}, st)

	st, err = s.AddMistakes(2)
	require.NoError(t, err)
	assert.Equal(t, 25796, st.Mistakes)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"good": 960, "bad": 372, "mistake counter": 25796, "total runs": 3163}`, string(data))
}

func TestStore_RunsAndFeedback(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "stats.json"))

	_, err := s.AddRun()
	require.NoError(t, err)
	_, err = s.RecordFeedback(true)
	require.NoError(t, err)
	_, err = s.RecordFeedback(true)
	require.NoError(t, err)
	st, err := s.RecordFeedback(false)
	require.NoError(t, err)

	assert.Equal(t, Stats{Good: 2, Bad: 1, Runs: 1}, st)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "stats.json"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddMistakes(1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	st, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 20, st.Mistakes)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := NewStore(path).AddRun()
	assert.Error(t, err)
}
