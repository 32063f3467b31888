package service

import (
	"context"
	"sync"
	"time"

	"github.com/weaversoft/snapwatch/cache"
	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/pkg/logger"
)

// watchLoop runs one watcher: it holds the subscription to the cluster,
// funnels every pod event through the trigger pipeline and keeps the
// runtime state that status queries read.
//
// State transitions are one-directional per run. Connectivity failures loop
// through disconnected and reconnecting with capped backoff; a configuration
// failure parks the loop in the error state until an operator restarts it.
type watchLoop struct {
	cfg        *domain.WatcherConfig
	source     domain.EventSource
	resolver   domain.OwnershipResolver
	dispatcher domain.TriggerDispatcher
	dedup      *cache.DedupTracker
	metrics    *MetricCollector
	watchCfg   config.WatchConfig

	mu    sync.RWMutex
	state domain.WatcherRuntimeState

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	nowFunc  func() time.Time
}

func newWatchLoop(cfg *domain.WatcherConfig, dispatcher domain.TriggerDispatcher, dedup *cache.DedupTracker, metrics *MetricCollector, watchCfg config.WatchConfig) *watchLoop {
	l := &watchLoop{
		cfg:        cfg,
		dispatcher: dispatcher,
		dedup:      dedup,
		metrics:    metrics,
		watchCfg:   watchCfg,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
		nowFunc:    time.Now,
	}
	l.state = domain.WatcherRuntimeState{
		Status:     domain.WatcherStateStarting,
		LastUpdate: l.nowFunc(),
	}
	return l
}

// start spawns the loop goroutine. It must be called at most once and only
// after source and resolver are set.
func (l *watchLoop) start(ctx context.Context) {
	l.mu.Lock()
	l.started = true
	l.state.ThreadAlive = true
	l.state.LastUpdate = l.nowFunc()
	l.mu.Unlock()

	// The loop outlives the request that started it.
	loopCtx := logger.WithWatcher(context.WithoutCancel(ctx), l.cfg.Name)
	go l.run(loopCtx)
}

// failBeforeStart parks a loop whose cluster client could not even be built.
// No goroutine runs, so done is closed here to keep stop from blocking.
func (l *watchLoop) failBeforeStart(err error) {
	l.mu.Lock()
	l.state.Status = domain.WatcherStateError
	l.state.ErrorMessage = err.Error()
	l.state.ThreadAlive = false
	l.state.LastUpdate = l.nowFunc()
	l.mu.Unlock()
	close(l.doneCh)
}

// stop asks the loop to shut down and waits until its goroutine exits.
// Calling it on an already stopped loop returns immediately.
func (l *watchLoop) stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		if l.state.ThreadAlive {
			l.state.Status = domain.WatcherStateStopping
			l.state.LastUpdate = l.nowFunc()
		}
		l.mu.Unlock()
		close(l.stopCh)
	})
	<-l.doneCh
}

// alive reports whether the loop goroutine is still running (or would be,
// had it not failed before starting).
func (l *watchLoop) alive() bool {
	select {
	case <-l.doneCh:
		return false
	default:
		return l.startedOrPending()
	}
}

func (l *watchLoop) startedOrPending() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.started || l.state.Status == domain.WatcherStateStarting
}

// snapshot returns a copy of the runtime state for status queries.
func (l *watchLoop) snapshot() domain.WatcherRuntimeState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *watchLoop) transition(status domain.WatcherState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Status = status
	l.state.LastUpdate = l.nowFunc()
}

func (l *watchLoop) touch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.LastUpdate = l.nowFunc()
}

func (l *watchLoop) fail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Status = domain.WatcherStateError
	l.state.ErrorMessage = err.Error()
	l.state.LastUpdate = l.nowFunc()
}

func (l *watchLoop) finish() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.ThreadAlive = false
	if l.state.Status != domain.WatcherStateError {
		l.state.Status = domain.WatcherStateStopped
	}
	l.state.LastUpdate = l.nowFunc()
}

func (l *watchLoop) run(ctx context.Context) {
	defer close(l.doneCh)
	defer l.finish()
	l.metrics.WatcherStarted()
	defer l.metrics.WatcherStopped()

	backoff := l.watchCfg.ReconnectBackoff()
	for {
		select {
		case <-l.stopCh:
			return
		default:
		}

		l.transition(domain.WatcherStateStarting)
		stream, err := l.subscribe(ctx)
		if err != nil {
			if domain.IsConfigurationError(err) {
				logger.Logger(ctx).Error().Err(err).Msg("watch subscription rejected, parking watcher")
				l.fail(err)
				return
			}
			logger.Logger(ctx).Warn().Err(err).Dur("backoff", backoff).Msg("watch subscription failed, reconnecting")
			l.metrics.AddWatchReconnect()
			if !l.pause(backoff) {
				return
			}
			backoff = nextBackoff(backoff, l.watchCfg.ReconnectBackoffMax())
			continue
		}
		backoff = l.watchCfg.ReconnectBackoff()

		l.transition(domain.WatcherStateRunning)
		logger.Logger(ctx).Info().Str("namespace", l.cfg.Namespace).Msg("watch stream established")

		err = l.consume(ctx, stream)
		if err == nil {
			return
		}
		if domain.IsConfigurationError(err) {
			logger.Logger(ctx).Error().Err(err).Msg("watch stream rejected, parking watcher")
			l.fail(err)
			return
		}

		logger.Logger(ctx).Warn().Err(err).Dur("backoff", backoff).Msg("watch stream lost, reconnecting")
		l.metrics.AddWatchReconnect()
		if !l.pause(backoff) {
			return
		}
		backoff = nextBackoff(backoff, l.watchCfg.ReconnectBackoffMax())
	}
}

func (l *watchLoop) subscribe(ctx context.Context) (domain.EventStream, error) {
	opt := domain.SubscribeOptions{
		LabelSelector: domain.EligibilitySelector,
	}
	if l.cfg.Scope == domain.ScopeNamespace {
		opt.Namespace = l.cfg.Namespace
	}
	return l.source.Subscribe(ctx, opt)
}

// consume drains the stream until it dies or stop is requested. A nil return
// means stop; any error means the stream ended and the caller decides whether
// to reconnect.
func (l *watchLoop) consume(ctx context.Context, stream domain.EventStream) error {
	defer stream.Stop()
	events := stream.Events()

	heartbeat := time.NewTicker(l.watchCfg.Heartbeat())
	defer heartbeat.Stop()

	for {
		select {
		case <-l.stopCh:
			return nil
		case <-heartbeat.C:
			l.touch()
		case ev, ok := <-events:
			if !ok {
				if err := stream.Err(); err != nil {
					return err
				}
				return domain.NewConnectivityError("event stream closed", nil)
			}
			l.touch()
			l.handleEvent(ctx, ev)
		}
	}
}

// handleEvent runs one pod event through the pipeline: scope filter,
// lifecycle filter, dedup check, ownership resolution, dispatch. The dedup
// entry is recorded only after the hook accepted the trigger.
func (l *watchLoop) handleEvent(ctx context.Context, ev *domain.ObservedPodEvent) {
	l.metrics.AddPodEvent()

	if ev.Type == domain.PodDeleted {
		// Frees the UID so a future pod that happens to reuse it can trigger.
		l.dedup.Forget(l.cfg.Name, ev.UID)
		return
	}

	if !l.inScope(ev) {
		l.metrics.AddFiltered()
		return
	}
	if !lifecycleReady(ev) {
		l.metrics.AddFiltered()
		return
	}
	if l.dedup.Seen(l.cfg.Name, ev.UID) {
		l.metrics.AddDuplicateSkipped()
		return
	}

	chain, err := l.resolver.Resolve(ctx, ev)
	if err != nil {
		// The trigger is still worth dispatching; it just loses the
		// deployment name.
		logger.Logger(ctx).Warn().Err(err).Str("pod", ev.PodName).Msg("ownership resolution failed")
		chain = domain.OwnershipChain{}
	}

	req := &domain.TriggerRequest{
		PodName:        ev.PodName,
		Namespace:      ev.Namespace,
		NodeName:       ev.NodeName,
		ContainerName:  ev.FirstContainerName(),
		ClusterName:    l.cfg.ClusterName,
		DeploymentName: chain.DeploymentName,
	}
	result := l.dispatcher.Dispatch(ctx, req)
	l.metrics.ObserveDispatchLatency(result.Latency)
	if !result.Success {
		l.metrics.AddTriggerFailed()
		logger.Logger(ctx).Warn().
			Str("pod", ev.PodName).
			Int("status", result.StatusCode).
			Str("error", result.Error).
			Msg("checkpoint trigger dispatch failed")
		return
	}

	l.metrics.AddTriggerDispatched()
	l.dedup.MarkDispatched(l.cfg.Name, ev.UID)
	logger.Logger(ctx).Info().
		Str("pod", ev.PodName).
		Str("deployment", chain.DeploymentName).
		Dur("latency", result.Latency).
		Msg("checkpoint trigger dispatched")

	if l.cfg.AutoDeletePod {
		if err := l.source.DeletePod(ctx, ev.Namespace, ev.PodName); err != nil {
			logger.Logger(ctx).Warn().Err(err).Str("pod", ev.PodName).Msg("failed to delete pod after trigger")
		}
	}
}

// inScope re-checks the eligibility labels client-side. The subscription
// already filters server-side, but a relisted or fake stream may deliver
// broader events than the selector.
func (l *watchLoop) inScope(ev *domain.ObservedPodEvent) bool {
	if _, ok := ev.Labels[domain.LabelSnap]; !ok {
		return false
	}
	if _, ok := ev.Labels[domain.LabelMutated]; ok {
		return false
	}
	if l.cfg.Scope == domain.ScopeNamespace && ev.Namespace != l.cfg.Namespace {
		return false
	}
	return true
}

// lifecycleReady gates on the startup probe trigger condition: the pod is
// running, ready, not terminating, and at least one container passed its
// startup probe.
func lifecycleReady(ev *domain.ObservedPodEvent) bool {
	if ev.DeletionTimestamp != nil {
		return false
	}
	if ev.Phase != domain.PodPhaseRunning {
		return false
	}
	if !ev.Ready {
		return false
	}
	return ev.AnyContainerStarted()
}

// pause sleeps for the backoff interval unless stop is requested first.
func (l *watchLoop) pause(d time.Duration) bool {
	l.transition(domain.WatcherStateReconnecting)
	select {
	case <-l.stopCh:
		return false
	case <-time.After(d):
		return true
	}
}

func nextBackoff(current, limit time.Duration) time.Duration {
	next := current * 2
	if next > limit {
		return limit
	}
	return next
}
