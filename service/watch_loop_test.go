package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/weaversoft/snapwatch/cache"
	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
)

func testWatchConfig() config.WatchConfig {
	return config.WatchConfig{
		ClusterName:               "test-cluster",
		ReconnectBackoffSeconds:   1,
		ReconnectBackoffMaxSecond: 2,
		HeartbeatSeconds:          1,
		StalenessSeconds:          5,
	}
}

func testWatcherConfig() *domain.WatcherConfig {
	return &domain.WatcherConfig{
		Name:         "orders-watcher",
		ClusterName:  "test-cluster",
		Scope:        domain.ScopeNamespace,
		Namespace:    "orders",
		TriggerKind:  domain.TriggerStartupProbe,
		HookEndpoint: "http://hook.local/api/snap",
	}
}

func eligiblePodEvent(uid, name string) *domain.ObservedPodEvent {
	return &domain.ObservedPodEvent{
		Type:           domain.PodModified,
		UID:            uid,
		Namespace:      "orders",
		PodName:        name,
		NodeName:       "node-1",
		ContainerNames: []string{"app", "sidecar"},
		ContainerStatuses: []domain.ContainerStatus{
			{Name: "app", Running: true, Started: true},
		},
		Labels: map[string]string{domain.LabelSnap: "true"},
		Phase:  domain.PodPhaseRunning,
		Ready:  true,
		OwnerReferences: []domain.OwnerReference{
			{Kind: domain.OwnerReplicaSet, Name: "orders-7f6d", UID: "rs-uid"},
		},
	}
}

func newPipelineLoop(t *testing.T, cfg *domain.WatcherConfig) (*watchLoop, *domain.MockEventSource, *domain.MockTriggerDispatcher, *domain.MockOwnershipResolver) {
	source := domain.NewMockEventSource(t)
	dispatcher := domain.NewMockTriggerDispatcher(t)
	resolver := domain.NewMockOwnershipResolver(t)

	loop := newWatchLoop(cfg, dispatcher, cache.NewDedupTracker(), NewMetricCollector("test"), testWatchConfig())
	loop.source = source
	loop.resolver = resolver
	return loop, source, dispatcher, resolver
}

func TestHandleEventDispatchesTrigger(t *testing.T) {
	ctx := context.Background()
	cfg := testWatcherConfig()
	loop, _, dispatcher, resolver := newPipelineLoop(t, cfg)

	resolver.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Return(domain.OwnershipChain{ReplicaSetName: "orders-7f6d", DeploymentName: "orders"}, nil).
		Once()

	var got *domain.TriggerRequest
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *domain.TriggerRequest) {
			got = req
		}).
		Return(&domain.TriggerResult{Success: true, StatusCode: 200}).
		Once()

	loop.handleEvent(ctx, eligiblePodEvent("uid-1", "orders-7f6d-abc"))

	require.NotNil(t, got)
	assert.Equal(t, "orders-7f6d-abc", got.PodName)
	assert.Equal(t, "orders", got.Namespace)
	assert.Equal(t, "node-1", got.NodeName)
	assert.Equal(t, "app", got.ContainerName)
	assert.Equal(t, "test-cluster", got.ClusterName)
	assert.Equal(t, "orders", got.DeploymentName)

	assert.True(t, loop.dedup.Seen(cfg.Name, "uid-1"))
	set := loop.metrics.Snapshot()
	assert.Equal(t, uint64(1), set.PodEventsObserved)
	assert.Equal(t, uint64(1), set.TriggersDispatched)
	assert.Equal(t, uint64(0), set.TriggersFailed)
	assert.Equal(t, uint64(1), dispatchLatencyHistogram(t, loop.metrics).GetSampleCount())
}

func TestHandleEventFailedDispatchStaysRetryable(t *testing.T) {
	ctx := context.Background()
	cfg := testWatcherConfig()
	loop, _, dispatcher, resolver := newPipelineLoop(t, cfg)

	resolver.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Return(domain.OwnershipChain{}, nil).
		Twice()
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(&domain.TriggerResult{Success: false, StatusCode: 503, Error: "hook returned non-OK status: 503 Service Unavailable"}).
		Once()

	loop.handleEvent(ctx, eligiblePodEvent("uid-1", "pod-a"))
	assert.False(t, loop.dedup.Seen(cfg.Name, "uid-1"))

	// The next event for the same pod dispatches again.
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(&domain.TriggerResult{Success: true, StatusCode: 200}).
		Once()
	loop.handleEvent(ctx, eligiblePodEvent("uid-1", "pod-a"))
	assert.True(t, loop.dedup.Seen(cfg.Name, "uid-1"))

	set := loop.metrics.Snapshot()
	assert.Equal(t, uint64(1), set.TriggersFailed)
	assert.Equal(t, uint64(1), set.TriggersDispatched)

	// Both attempts are observed by the latency histogram.
	assert.Equal(t, uint64(2), dispatchLatencyHistogram(t, loop.metrics).GetSampleCount())
}

func TestHandleEventSkipsDuplicate(t *testing.T) {
	ctx := context.Background()
	cfg := testWatcherConfig()
	loop, _, _, _ := newPipelineLoop(t, cfg)

	loop.dedup.MarkDispatched(cfg.Name, "uid-1")
	loop.handleEvent(ctx, eligiblePodEvent("uid-1", "pod-a"))

	set := loop.metrics.Snapshot()
	assert.Equal(t, uint64(1), set.DuplicatesSkipped)
	assert.Equal(t, uint64(0), set.TriggersDispatched)
}

func TestHandleEventFiltersIneligiblePods(t *testing.T) {
	ctx := context.Background()
	cfg := testWatcherConfig()

	tests := []struct {
		name   string
		mutate func(ev *domain.ObservedPodEvent)
	}{
		{"missing snap label", func(ev *domain.ObservedPodEvent) {
			delete(ev.Labels, domain.LabelSnap)
		}},
		{"mutated label present", func(ev *domain.ObservedPodEvent) {
			ev.Labels[domain.LabelMutated] = "true"
		}},
		{"outside watched namespace", func(ev *domain.ObservedPodEvent) {
			ev.Namespace = "payments"
		}},
		{"phase not running", func(ev *domain.ObservedPodEvent) {
			ev.Phase = "Pending"
		}},
		{"pod not ready", func(ev *domain.ObservedPodEvent) {
			ev.Ready = false
		}},
		{"no started container", func(ev *domain.ObservedPodEvent) {
			ev.ContainerStatuses = []domain.ContainerStatus{{Name: "app", Running: true, Started: false}}
		}},
		{"terminating pod", func(ev *domain.ObservedPodEvent) {
			now := time.Now()
			ev.DeletionTimestamp = &now
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop, _, _, _ := newPipelineLoop(t, cfg)
			ev := eligiblePodEvent("uid-1", "pod-a")
			tt.mutate(ev)

			loop.handleEvent(ctx, ev)

			set := loop.metrics.Snapshot()
			assert.Equal(t, uint64(1), set.EventsFilteredOut)
			assert.False(t, loop.dedup.Seen(cfg.Name, "uid-1"))
		})
	}
}

func TestHandleEventPodDeletedForgetsDedup(t *testing.T) {
	ctx := context.Background()
	cfg := testWatcherConfig()
	loop, _, _, _ := newPipelineLoop(t, cfg)

	loop.dedup.MarkDispatched(cfg.Name, "uid-1")

	ev := eligiblePodEvent("uid-1", "pod-a")
	ev.Type = domain.PodDeleted
	loop.handleEvent(ctx, ev)

	assert.False(t, loop.dedup.Seen(cfg.Name, "uid-1"))
}

func TestHandleEventAutoDeletesPodAfterTrigger(t *testing.T) {
	ctx := context.Background()
	cfg := testWatcherConfig()
	cfg.AutoDeletePod = true
	loop, source, dispatcher, resolver := newPipelineLoop(t, cfg)

	resolver.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Return(domain.OwnershipChain{}, nil).
		Once()
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(&domain.TriggerResult{Success: true, StatusCode: 200}).
		Once()
	source.EXPECT().
		DeletePod(mock.Anything, "orders", "pod-a").
		Return(nil).
		Once()

	loop.handleEvent(ctx, eligiblePodEvent("uid-1", "pod-a"))
	assert.True(t, loop.dedup.Seen(cfg.Name, "uid-1"))
}

func TestHandleEventOwnershipFailureStillDispatches(t *testing.T) {
	ctx := context.Background()
	cfg := testWatcherConfig()
	loop, _, dispatcher, resolver := newPipelineLoop(t, cfg)

	resolver.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Return(domain.OwnershipChain{}, domain.NewConnectivityError("replicaset lookup failed", nil)).
		Once()

	var got *domain.TriggerRequest
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *domain.TriggerRequest) {
			got = req
		}).
		Return(&domain.TriggerResult{Success: true, StatusCode: 200}).
		Once()

	loop.handleEvent(ctx, eligiblePodEvent("uid-1", "pod-a"))

	require.NotNil(t, got)
	assert.Empty(t, got.DeploymentName)
	assert.True(t, loop.dedup.Seen(cfg.Name, "uid-1"))
}

func TestRunDispatchesFromStream(t *testing.T) {
	cfg := testWatcherConfig()
	loop, source, dispatcher, resolver := newPipelineLoop(t, cfg)

	events := make(chan *domain.ObservedPodEvent, 4)
	stream := domain.NewMockEventStream(t)
	stream.EXPECT().Events().Return(events).Once()
	stream.EXPECT().Stop().Return().Once()
	stream.EXPECT().Err().Return(nil).Maybe()

	var gotOpt domain.SubscribeOptions
	source.EXPECT().
		Subscribe(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt domain.SubscribeOptions) {
			gotOpt = opt
		}).
		Return(stream, nil).
		Once()
	resolver.EXPECT().
		Resolve(mock.Anything, mock.Anything).
		Return(domain.OwnershipChain{DeploymentName: "orders"}, nil).
		Once()
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		Return(&domain.TriggerResult{Success: true, StatusCode: 200}).
		Once()

	loop.start(context.Background())
	events <- eligiblePodEvent("uid-1", "pod-a")

	require.Eventually(t, func() bool {
		return loop.dedup.Seen(cfg.Name, "uid-1")
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, domain.EligibilitySelector, gotOpt.LabelSelector)
	assert.Equal(t, "orders", gotOpt.Namespace)
	assert.Equal(t, domain.WatcherStateRunning, loop.snapshot().Status)

	loop.stop()
	rt := loop.snapshot()
	assert.Equal(t, domain.WatcherStateStopped, rt.Status)
	assert.False(t, rt.ThreadAlive)
	assert.False(t, loop.alive())
}

func TestRunReconnectsAfterStreamLoss(t *testing.T) {
	cfg := testWatcherConfig()
	loop, source, _, _ := newPipelineLoop(t, cfg)

	firstEvents := make(chan *domain.ObservedPodEvent)
	firstStream := domain.NewMockEventStream(t)
	firstStream.EXPECT().Events().Return(firstEvents).Once()
	firstStream.EXPECT().Stop().Return().Once()
	firstStream.EXPECT().Err().Return(domain.NewConnectivityError("watch channel closed", nil)).Once()

	secondEvents := make(chan *domain.ObservedPodEvent)
	secondStream := domain.NewMockEventStream(t)
	secondStream.EXPECT().Events().Return(secondEvents).Once()
	secondStream.EXPECT().Stop().Return().Once()
	secondStream.EXPECT().Err().Return(nil).Maybe()

	source.EXPECT().Subscribe(mock.Anything, mock.Anything).Return(firstStream, nil).Once()
	source.EXPECT().Subscribe(mock.Anything, mock.Anything).Return(secondStream, nil).Once()

	loop.start(context.Background())
	require.Eventually(t, func() bool {
		return loop.snapshot().Status == domain.WatcherStateRunning
	}, 3*time.Second, 10*time.Millisecond)

	close(firstEvents)
	require.Eventually(t, func() bool {
		return loop.snapshot().Status == domain.WatcherStateReconnecting
	}, 3*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return loop.snapshot().Status == domain.WatcherStateRunning
	}, 3*time.Second, 10*time.Millisecond)

	assert.GreaterOrEqual(t, loop.metrics.Snapshot().WatchReconnects, uint64(1))
	loop.stop()
}

func TestRunParksOnConfigurationError(t *testing.T) {
	cfg := testWatcherConfig()
	loop, source, _, _ := newPipelineLoop(t, cfg)

	source.EXPECT().
		Subscribe(mock.Anything, mock.Anything).
		Return(nil, domain.NewConfigurationError("namespace orders not found", nil)).
		Once()

	loop.start(context.Background())

	require.Eventually(t, func() bool {
		return loop.snapshot().Status == domain.WatcherStateError
	}, 3*time.Second, 10*time.Millisecond)

	rt := loop.snapshot()
	assert.Contains(t, rt.ErrorMessage, "namespace orders not found")
	assert.False(t, loop.alive())

	// stop on a parked loop returns immediately.
	loop.stop()
	assert.Equal(t, domain.WatcherStateError, loop.snapshot().Status)
}

func TestRunStopDuringBackoff(t *testing.T) {
	cfg := testWatcherConfig()
	loop, source, _, _ := newPipelineLoop(t, cfg)

	source.EXPECT().
		Subscribe(mock.Anything, mock.Anything).
		Return(nil, domain.NewConnectivityError("connection refused", nil)).
		Once()

	loop.start(context.Background())
	require.Eventually(t, func() bool {
		return loop.snapshot().Status == domain.WatcherStateReconnecting
	}, 3*time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		loop.stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stop did not interrupt the reconnect backoff")
	}
	assert.Equal(t, domain.WatcherStateStopped, loop.snapshot().Status)
}

func TestNextBackoffDoublesUpToCap(t *testing.T) {
	limit := 8 * time.Second
	assert.Equal(t, 2*time.Second, nextBackoff(time.Second, limit))
	assert.Equal(t, 4*time.Second, nextBackoff(2*time.Second, limit))
	assert.Equal(t, 8*time.Second, nextBackoff(4*time.Second, limit))
	assert.Equal(t, 8*time.Second, nextBackoff(8*time.Second, limit))
}
