package service

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/weaversoft/snapwatch/cache"
	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/errs"
	"github.com/weaversoft/snapwatch/pkg/util"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newTestService(repo domain.Repository, dispatcher domain.TriggerDispatcher, factory domain.EventSourceFactory) *Service {
	return &Service{
		Repo:          repo,
		Dispatcher:    dispatcher,
		SourceFactory: factory,
		hookConfig:    config.HookConfig{Endpoint: "http://hook.local/api/snap", TimeoutSeconds: 1},
		watchConfig:   testWatchConfig(),
		dedup:         cache.NewDedupTracker(),
		ownership:     cache.NewOwnershipCache(time.Minute),
		metrics:       NewMetricCollector("test"),
		loops:         make(map[string]*watchLoop),
		deleted:       make(map[string]struct{}),
	}
}

// idleEventSource subscribes into a stream that never delivers, so started
// loops sit quietly until stopped.
func idleEventSource(t *testing.T) *domain.MockEventSource {
	stream := domain.NewMockEventStream(t)
	stream.EXPECT().Events().Return(make(chan *domain.ObservedPodEvent)).Maybe()
	stream.EXPECT().Stop().Return().Maybe()
	stream.EXPECT().Err().Return(nil).Maybe()

	source := domain.NewMockEventSource(t)
	source.EXPECT().Subscribe(mock.Anything, mock.Anything).Return(stream, nil).Maybe()
	return source
}

func countingFactory(source domain.EventSource) (domain.EventSourceFactory, *int32) {
	var calls int32
	factory := func(ctx context.Context, conn domain.ClusterConnection) (domain.EventSource, error) {
		atomic.AddInt32(&calls, 1)
		return source, nil
	}
	return factory, &calls
}

func watcherFixture() *domain.WatcherConfig {
	cfg := testWatcherConfig()
	cfg.ID = bson.NewObjectID()
	return cfg
}

func expectWatcherQuery(repo *domain.MockRepository, result ...*domain.WatcherConfig) {
	repo.EXPECT().
		QueryWatchers(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryWatcherOptions) {
			opt.Result = result
		}).
		Return(nil)
}

func TestCreateWatcherPersistsAndStarts(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)

	var stored *domain.WatcherConfig
	repo.EXPECT().
		CreateWatcher(mock.Anything, mock.Anything).
		Run(func(_ context.Context, w *domain.WatcherConfig) {
			stored = w
		}).
		Return(nil).
		Once()

	factory, calls := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)
	defer svc.StopAllWatchers(ctx)

	status, err := svc.CreateWatcher(ctx, nil, &domain.WatcherConfig{
		Name:      "orders-watcher",
		Scope:     domain.ScopeNamespace,
		Namespace: "orders",
	})
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "orders-watcher", status.Name)

	require.NotNil(t, stored)
	assert.Equal(t, domain.TriggerStartupProbe, stored.TriggerKind)
	assert.Equal(t, "test-cluster", stored.ClusterName)
	assert.Equal(t, "http://hook.local/api/snap", stored.HookEndpoint)
	assert.NotZero(t, stored.CreatedTime)

	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	require.Eventually(t, func() bool {
		return svc.loops["orders-watcher"].snapshot().Status == domain.WatcherStateRunning
	}, 3*time.Second, 10*time.Millisecond)
}

func TestCreateWatcherStampsOperator(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)

	var stored *domain.WatcherConfig
	repo.EXPECT().
		CreateWatcher(mock.Anything, mock.Anything).
		Run(func(_ context.Context, w *domain.WatcherConfig) {
			stored = w
		}).
		Return(nil).
		Once()

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)
	defer svc.StopAllWatchers(ctx)

	operatorID := bson.NewObjectID()
	operator := &domain.Claims{UID: operatorID.Hex()}
	_, err := svc.CreateWatcher(ctx, operator, &domain.WatcherConfig{
		Name:  "orders-watcher",
		Scope: domain.ScopeCluster,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, operatorID, stored.CreatorID)
	assert.Equal(t, operatorID, stored.UpdaterID)
}

func TestCreateWatcherDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	repo.EXPECT().
		CreateWatcher(mock.Anything, mock.Anything).
		Return(domain.ErrDuplicateName).
		Once()

	factory, calls := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	_, err := svc.CreateWatcher(ctx, nil, &domain.WatcherConfig{
		Name:  "orders-watcher",
		Scope: domain.ScopeCluster,
	})
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestCreateWatcherValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		watcher *domain.WatcherConfig
	}{
		{"empty name", &domain.WatcherConfig{Scope: domain.ScopeCluster}},
		{"unknown scope", &domain.WatcherConfig{Name: "w", Scope: "region"}},
		{"namespace scope without namespace", &domain.WatcherConfig{Name: "w", Scope: domain.ScopeNamespace}},
		{"cluster scope with namespace", &domain.WatcherConfig{Name: "w", Scope: domain.ScopeCluster, Namespace: "orders"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := domain.NewMockRepository(t)
			factory, calls := countingFactory(idleEventSource(t))
			svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

			_, err := svc.CreateWatcher(ctx, nil, tt.watcher)
			require.Error(t, err)
			httpErr, ok := errs.IsHTTPStatusError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
			assert.Equal(t, int32(0), atomic.LoadInt32(calls))
		})
	}
}

func TestCreateWatcherStartFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	repo.EXPECT().CreateWatcher(mock.Anything, mock.Anything).Return(nil).Once()

	factory := func(ctx context.Context, conn domain.ClusterConnection) (domain.EventSource, error) {
		return nil, domain.NewConfigurationError("kubeconfig missing", domain.ErrNoKubeConfig)
	}
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	status, err := svc.CreateWatcher(ctx, nil, &domain.WatcherConfig{
		Name:  "orders-watcher",
		Scope: domain.ScopeCluster,
	})
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, domain.WatcherStateError, status.Status)
	assert.Contains(t, status.ErrorMessage, "kubeconfig missing")
	assert.False(t, status.ThreadAlive)
}

func TestStartWatcherNoopWhileRunning(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, watcherFixture())

	factory, calls := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)
	defer svc.StopAllWatchers(ctx)

	require.NoError(t, svc.StartWatcher(ctx, nil, "orders-watcher"))
	require.Eventually(t, func() bool {
		return svc.loops["orders-watcher"].snapshot().Status == domain.WatcherStateRunning
	}, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, svc.StartWatcher(ctx, nil, "orders-watcher"))
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestStartWatcherNotFound(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo)

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	err := svc.StartWatcher(ctx, nil, "missing")
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.ErrorIs(t, err, domain.ErrWatcherNotFound)
}

func TestStartWatcherPropagatesClientError(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, watcherFixture())

	factory := func(ctx context.Context, conn domain.ClusterConnection) (domain.EventSource, error) {
		return nil, domain.NewConfigurationError("kubeconfig missing", domain.ErrNoKubeConfig)
	}
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	err := svc.StartWatcher(ctx, nil, "orders-watcher")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build cluster client")

	status, err := svc.GetWatcherStatus(ctx, "orders-watcher")
	require.NoError(t, err)
	assert.Equal(t, domain.WatcherStateError, status.Status)
}

func TestStopWatcherIdempotentAndPreservesDedup(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, watcherFixture())

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	require.NoError(t, svc.StartWatcher(ctx, nil, "orders-watcher"))
	svc.dedup.MarkDispatched("orders-watcher", "uid-1")

	require.NoError(t, svc.StopWatcher(ctx, nil, "orders-watcher"))
	rt := svc.loops["orders-watcher"].snapshot()
	assert.Equal(t, domain.WatcherStateStopped, rt.Status)
	assert.False(t, rt.ThreadAlive)

	// Stopping keeps the dispatch history; only delete clears it.
	assert.True(t, svc.dedup.Seen("orders-watcher", "uid-1"))

	require.NoError(t, svc.StopWatcher(ctx, nil, "orders-watcher"))
}

func TestStopWatcherLeavesSiblingRunning(t *testing.T) {
	ctx := context.Background()
	orders := watcherFixture()
	billing := watcherFixture()
	billing.Name = "billing-watcher"

	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, orders, billing)

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)
	defer svc.StopAllWatchers(ctx)

	require.NoError(t, svc.BootstrapWatchers(ctx))
	require.Eventually(t, func() bool {
		return svc.loops["orders-watcher"].snapshot().Status == domain.WatcherStateRunning &&
			svc.loops["billing-watcher"].snapshot().Status == domain.WatcherStateRunning
	}, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, svc.StopWatcher(ctx, nil, "orders-watcher"))

	stopped := svc.loops["orders-watcher"].snapshot()
	assert.Equal(t, domain.WatcherStateStopped, stopped.Status)
	assert.False(t, stopped.ThreadAlive)

	survivor := svc.loops["billing-watcher"].snapshot()
	assert.Equal(t, domain.WatcherStateRunning, survivor.Status)
	assert.True(t, survivor.ThreadAlive)
}

func TestStopWatcherWithoutLoopIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, watcherFixture())

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	require.NoError(t, svc.StopWatcher(ctx, nil, "orders-watcher"))
}

func TestDeleteWatcherStopsAndPurgesDedup(t *testing.T) {
	ctx := context.Background()
	fixture := watcherFixture()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, fixture)
	repo.EXPECT().DeleteWatcher(mock.Anything, fixture.ID).Return(nil).Once()

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	require.NoError(t, svc.StartWatcher(ctx, nil, "orders-watcher"))
	svc.dedup.MarkDispatched("orders-watcher", "uid-1")

	require.NoError(t, svc.DeleteWatcher(ctx, nil, "orders-watcher"))
	assert.False(t, svc.dedup.Seen("orders-watcher", "uid-1"))

	svc.mu.Lock()
	_, stillRegistered := svc.loops["orders-watcher"]
	svc.mu.Unlock()
	assert.False(t, stillRegistered)
}

func TestStartWithStaleConfigAfterDelete(t *testing.T) {
	ctx := context.Background()
	fixture := watcherFixture()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, fixture)
	repo.EXPECT().DeleteWatcher(mock.Anything, fixture.ID).Return(nil).Once()

	factory, calls := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	// A concurrent start fetches the config before the delete removes it.
	stale, err := svc.getWatcherByName(ctx, "orders-watcher")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWatcher(ctx, nil, "orders-watcher"))

	_, err = svc.startWatcherLoop(ctx, stale)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWatcherNotFound)

	svc.mu.Lock()
	_, registered := svc.loops["orders-watcher"]
	svc.mu.Unlock()
	assert.False(t, registered)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestRecreateAfterDeleteStartsAgain(t *testing.T) {
	ctx := context.Background()
	fixture := watcherFixture()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, fixture)
	repo.EXPECT().DeleteWatcher(mock.Anything, fixture.ID).Return(nil).Once()
	repo.EXPECT().CreateWatcher(mock.Anything, mock.Anything).Return(nil).Once()

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)
	defer svc.StopAllWatchers(ctx)

	require.NoError(t, svc.DeleteWatcher(ctx, nil, "orders-watcher"))

	status, err := svc.CreateWatcher(ctx, nil, &domain.WatcherConfig{
		Name:      "orders-watcher",
		Scope:     domain.ScopeNamespace,
		Namespace: "orders",
	})
	require.NoError(t, err)
	require.NotNil(t, status)
	require.Eventually(t, func() bool {
		return svc.loops["orders-watcher"].snapshot().Status == domain.WatcherStateRunning
	}, 3*time.Second, 10*time.Millisecond)
}

func TestUpdateWatcherRejectedWhileActive(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, watcherFixture())

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)
	defer svc.StopAllWatchers(ctx)

	require.NoError(t, svc.StartWatcher(ctx, nil, "orders-watcher"))

	err := svc.UpdateWatcher(ctx, nil, "orders-watcher", &domain.UpdateWatcherOptions{
		Namespace: util.Ptr("payments"),
	})
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.ErrorIs(t, err, domain.ErrWatcherActive)
}

func TestUpdateWatcherAppliesPatchWhenStopped(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, watcherFixture())

	var updated *domain.WatcherConfig
	repo.EXPECT().
		UpdateWatcher(mock.Anything, mock.Anything).
		Run(func(_ context.Context, w *domain.WatcherConfig) {
			updated = w
		}).
		Return(nil).
		Once()

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	require.NoError(t, svc.StartWatcher(ctx, nil, "orders-watcher"))
	require.NoError(t, svc.StopWatcher(ctx, nil, "orders-watcher"))

	operatorID := bson.NewObjectID()
	err := svc.UpdateWatcher(ctx, &domain.Claims{UID: operatorID.Hex()}, "orders-watcher", &domain.UpdateWatcherOptions{
		Namespace:     util.Ptr("payments"),
		AutoDeletePod: util.Ptr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "payments", updated.Namespace)
	assert.True(t, updated.AutoDeletePod)
	assert.Equal(t, "http://hook.local/api/snap", updated.HookEndpoint)
	assert.Equal(t, operatorID, updated.UpdaterID)
}

func TestUpdateWatcherValidatesPatchedConfig(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, watcherFixture())

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	// Switching to cluster scope while the stored namespace remains set must
	// be rejected, forcing an explicit namespace clear.
	err := svc.UpdateWatcher(ctx, nil, "orders-watcher", &domain.UpdateWatcherOptions{
		Scope: util.Ptr(domain.ScopeCluster),
	})
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}

func TestUpdateWatcherNotFound(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo)

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	err := svc.UpdateWatcher(ctx, nil, "missing", &domain.UpdateWatcherOptions{})
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestGetWatcherStatusWithoutLoop(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, watcherFixture())

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	status, err := svc.GetWatcherStatus(ctx, "orders-watcher")
	require.NoError(t, err)
	assert.Equal(t, domain.WatcherStateCreated, status.Status)
	assert.False(t, status.ThreadAlive)
	assert.Equal(t, "orders", status.Namespace)
}

func TestGetWatcherStatusStaleHeartbeat(t *testing.T) {
	ctx := context.Background()
	fixture := watcherFixture()
	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, fixture)

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	loop := newWatchLoop(fixture, svc.Dispatcher, svc.dedup, svc.metrics, svc.watchConfig)
	loop.state = domain.WatcherRuntimeState{
		Status:      domain.WatcherStateRunning,
		ThreadAlive: true,
		LastUpdate:  time.Now().Add(-10 * time.Second),
	}
	svc.loops["orders-watcher"] = loop

	status, err := svc.GetWatcherStatus(ctx, "orders-watcher")
	require.NoError(t, err)
	assert.Equal(t, domain.WatcherStateRunning, status.Status)
	assert.False(t, status.ThreadAlive)
}

func TestListWatcherStatusesSortedByName(t *testing.T) {
	ctx := context.Background()
	first := watcherFixture()
	first.Name = "billing-watcher"
	second := watcherFixture()
	second.Name = "orders-watcher"

	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, second, first)

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	statuses, err := svc.ListWatcherStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "billing-watcher", statuses[0].Name)
	assert.Equal(t, "orders-watcher", statuses[1].Name)
	assert.Equal(t, domain.WatcherStateCreated, statuses[0].Status)
}

func TestBootstrapWatchersSurvivesBadWatcher(t *testing.T) {
	ctx := context.Background()
	good := watcherFixture()
	bad := watcherFixture()
	bad.Name = "bad-watcher"
	bad.ClusterConnection = domain.ClusterConnection{CredentialsRef: "/bad/path"}

	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, good, bad)

	source := idleEventSource(t)
	factory := func(ctx context.Context, conn domain.ClusterConnection) (domain.EventSource, error) {
		if conn.CredentialsRef == "/bad/path" {
			return nil, domain.NewConfigurationError("kubeconfig unreadable", nil)
		}
		return source, nil
	}
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)
	defer svc.StopAllWatchers(ctx)

	require.NoError(t, svc.BootstrapWatchers(ctx))

	require.Eventually(t, func() bool {
		return svc.loops["orders-watcher"].snapshot().Status == domain.WatcherStateRunning
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, domain.WatcherStateError, svc.loops["bad-watcher"].snapshot().Status)
}

func TestStopAllWatchers(t *testing.T) {
	ctx := context.Background()
	first := watcherFixture()
	second := watcherFixture()
	second.Name = "billing-watcher"

	repo := domain.NewMockRepository(t)
	expectWatcherQuery(repo, first, second)

	factory, _ := countingFactory(idleEventSource(t))
	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), factory)

	require.NoError(t, svc.BootstrapWatchers(ctx))
	require.NoError(t, svc.StopAllWatchers(ctx))

	for name, loop := range svc.loops {
		rt := loop.snapshot()
		assert.Equalf(t, domain.WatcherStateStopped, rt.Status, "watcher %s", name)
		assert.Falsef(t, rt.ThreadAlive, "watcher %s", name)
	}
}

func TestBaseEntityForRejectsBadOperatorID(t *testing.T) {
	_, err := baseEntityFor(&domain.Claims{UID: "not-an-object-id"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid operator ID")
}
