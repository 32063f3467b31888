package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupTrackerMarkAndSeen(t *testing.T) {
	tracker := NewDedupTracker()

	assert.False(t, tracker.Seen("watcher-a", "uid-1"))

	assert.True(t, tracker.MarkDispatched("watcher-a", "uid-1"))
	assert.True(t, tracker.Seen("watcher-a", "uid-1"))

	// Marking the same UID again reports it as a duplicate.
	assert.False(t, tracker.MarkDispatched("watcher-a", "uid-1"))
	assert.Equal(t, 1, tracker.Len("watcher-a"))
}

func TestDedupTrackerScopedPerWatcher(t *testing.T) {
	tracker := NewDedupTracker()

	tracker.MarkDispatched("watcher-a", "uid-1")

	assert.False(t, tracker.Seen("watcher-b", "uid-1"))
	assert.True(t, tracker.MarkDispatched("watcher-b", "uid-1"))
	assert.Equal(t, 1, tracker.Len("watcher-a"))
	assert.Equal(t, 1, tracker.Len("watcher-b"))
}

func TestDedupTrackerClear(t *testing.T) {
	tracker := NewDedupTracker()

	tracker.MarkDispatched("watcher-a", "uid-1")
	tracker.MarkDispatched("watcher-a", "uid-2")
	tracker.MarkDispatched("watcher-b", "uid-1")

	tracker.Clear("watcher-a")

	assert.Equal(t, 0, tracker.Len("watcher-a"))
	assert.False(t, tracker.Seen("watcher-a", "uid-1"))
	assert.True(t, tracker.Seen("watcher-b", "uid-1"))
}

func TestDedupTrackerForget(t *testing.T) {
	tracker := NewDedupTracker()

	tracker.MarkDispatched("watcher-a", "uid-1")
	tracker.Forget("watcher-a", "uid-1")

	assert.False(t, tracker.Seen("watcher-a", "uid-1"))
	assert.True(t, tracker.MarkDispatched("watcher-a", "uid-1"))

	// Forgetting an unknown watcher or UID is a no-op.
	tracker.Forget("watcher-x", "uid-9")
}

func TestDedupTrackerEntriesSnapshot(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewDedupTracker(WithNowFunc(func() time.Time { return at }))

	tracker.MarkDispatched("watcher-a", "uid-1")

	entries := tracker.Entries("watcher-a")
	require.Len(t, entries, 1)
	assert.Equal(t, "uid-1", entries[0].PodUID)
	assert.Equal(t, at, entries[0].DispatchedAt)

	assert.Nil(t, tracker.Entries("watcher-x"))
}

func TestDedupTrackerConcurrentMark(t *testing.T) {
	tracker := NewDedupTracker()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				uid := fmt.Sprintf("uid-%d", j)
				tracker.MarkDispatched("watcher-a", uid)
				tracker.Seen("watcher-a", uid)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, tracker.Len("watcher-a"))
}
