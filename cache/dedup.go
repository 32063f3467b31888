package cache

import (
	"sync"
	"time"

	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/pkg/util"
)

// DedupTracker remembers which pod UIDs already produced a successful
// checkpoint trigger, scoped per watcher. A UID is recorded only after the
// hook accepted the trigger, so a failed dispatch stays retryable on the
// next event for the same pod.
//
// Entries live until the watcher is deleted. Stopping and restarting a
// watcher keeps its set, which is what prevents duplicate triggers across
// restarts of the loop.
type DedupTracker struct {
	sets    util.GenericMap[string, *dedupSet]
	nowFunc func() time.Time
}

type dedupSet struct {
	mu  sync.RWMutex
	ids map[string]time.Time
}

// DedupTrackerOption configures the DedupTracker.
type DedupTrackerOption func(*DedupTracker)

// WithNowFunc sets the function to get the current time (for testing).
func WithNowFunc(fn func() time.Time) DedupTrackerOption {
	return func(t *DedupTracker) {
		t.nowFunc = fn
	}
}

func NewDedupTracker(opts ...DedupTrackerOption) *DedupTracker {
	t := &DedupTracker{
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Seen reports whether the pod UID already has a successful dispatch
// recorded for this watcher.
func (t *DedupTracker) Seen(watcherName, podUID string) bool {
	set, ok := t.sets.Load(watcherName)
	if !ok {
		return false
	}

	set.mu.RLock()
	defer set.mu.RUnlock()
	_, seen := set.ids[podUID]
	return seen
}

// MarkDispatched records a successful dispatch for the pod UID. It returns
// false if the UID was already recorded.
func (t *DedupTracker) MarkDispatched(watcherName, podUID string) bool {
	set, _ := t.sets.LoadOrStore(watcherName, &dedupSet{ids: make(map[string]time.Time)})

	set.mu.Lock()
	defer set.mu.Unlock()
	if _, exists := set.ids[podUID]; exists {
		return false
	}
	set.ids[podUID] = t.nowFunc()
	return true
}

// Forget drops a single pod UID, used when a tracked pod is deleted from the
// cluster so a future pod reusing the UID could trigger again.
func (t *DedupTracker) Forget(watcherName, podUID string) {
	set, ok := t.sets.Load(watcherName)
	if !ok {
		return
	}

	set.mu.Lock()
	defer set.mu.Unlock()
	delete(set.ids, podUID)
}

// Clear purges every entry for the watcher. Called when the watcher is
// deleted, never when it is merely stopped.
func (t *DedupTracker) Clear(watcherName string) {
	t.sets.Delete(watcherName)
}

// Len returns the number of recorded UIDs for the watcher.
func (t *DedupTracker) Len(watcherName string) int {
	set, ok := t.sets.Load(watcherName)
	if !ok {
		return 0
	}

	set.mu.RLock()
	defer set.mu.RUnlock()
	return len(set.ids)
}

// Entries returns a snapshot of the watcher's recorded dispatches.
func (t *DedupTracker) Entries(watcherName string) []domain.DedupEntry {
	set, ok := t.sets.Load(watcherName)
	if !ok {
		return nil
	}

	set.mu.RLock()
	defer set.mu.RUnlock()
	entries := make([]domain.DedupEntry, 0, len(set.ids))
	for uid, at := range set.ids {
		entries = append(entries, domain.DedupEntry{PodUID: uid, DispatchedAt: at})
	}
	return entries
}
