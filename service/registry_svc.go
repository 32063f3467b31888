package service

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/errs"
	"github.com/weaversoft/snapwatch/pkg/logger"
)

func (svc *Service) CreateWatcher(ctx context.Context, operator *domain.Claims, watcher *domain.WatcherConfig) (*domain.WatcherStatus, error) {
	if watcher == nil {
		return nil, errs.NewHTTPStatusError(http.StatusBadRequest, "watcher config is required", nil)
	}
	if watcher.TriggerKind == "" {
		watcher.TriggerKind = domain.TriggerStartupProbe
	}
	if watcher.ClusterName == "" {
		watcher.ClusterName = svc.watchConfig.ClusterName
	}
	// The hook endpoint is operator configuration, never taken from the
	// request.
	watcher.HookEndpoint = svc.hookConfig.Endpoint
	if err := validateWatcher(watcher); err != nil {
		return nil, err
	}

	base, err := baseEntityFor(operator)
	if err != nil {
		return nil, err
	}
	watcher.BaseEntity = base

	err = svc.Repo.CreateWatcher(ctx, watcher)
	if errors.Is(err, domain.ErrDuplicateName) {
		return nil, errs.NewHTTPStatusError(http.StatusConflict, fmt.Sprintf("watcher %s already exists", watcher.Name), err)
	}
	if err != nil {
		return nil, fmt.Errorf("insert watcher into repository: %w", err)
	}

	// A re-created name is eligible to start again.
	svc.mu.Lock()
	delete(svc.deleted, watcher.Name)
	svc.mu.Unlock()

	// Creation implies starting. A start failure leaves the watcher
	// persisted in the error state; the create itself has succeeded.
	loop, startErr := svc.startWatcherLoop(ctx, watcher)
	if startErr != nil {
		logger.Logger(ctx).Warn().Err(startErr).Msgf("watcher %s created but failed to start", watcher.Name)
	} else {
		logger.Logger(ctx).Info().Msgf("created and started watcher %s", watcher.Name)
	}
	return svc.statusOf(watcher, loop), nil
}

func (svc *Service) UpdateWatcher(ctx context.Context, operator *domain.Claims, name string, opt *domain.UpdateWatcherOptions) error {
	if opt == nil {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "update options are required", nil)
	}
	watcher, err := svc.getWatcherByName(ctx, name)
	if err != nil {
		return err
	}

	svc.mu.Lock()
	loop := svc.loops[name]
	svc.mu.Unlock()
	if loop != nil && loop.alive() {
		return errs.NewHTTPStatusError(http.StatusConflict, "watcher is active, stop it before updating", domain.ErrWatcherActive)
	}

	if opt.ClusterName != nil {
		watcher.ClusterName = *opt.ClusterName
	}
	if opt.ClusterConnection != nil {
		watcher.ClusterConnection = *opt.ClusterConnection
	}
	if opt.Scope != nil {
		watcher.Scope = *opt.Scope
	}
	if opt.Namespace != nil {
		watcher.Namespace = *opt.Namespace
	}
	if opt.TriggerKind != nil {
		watcher.TriggerKind = *opt.TriggerKind
	}
	if opt.AutoDeletePod != nil {
		watcher.AutoDeletePod = *opt.AutoDeletePod
	}
	watcher.HookEndpoint = svc.hookConfig.Endpoint
	if err := validateWatcher(watcher); err != nil {
		return err
	}

	if operator != nil {
		operatorID, err := operator.GetBsonObjectUID()
		if err != nil {
			return errors.WithMessagef(err, "invalid operator ID %s", operator.UID)
		}
		watcher.UpdaterID = operatorID
	}

	err = svc.Repo.UpdateWatcher(ctx, watcher)
	if errors.Is(err, domain.ErrNotFound) {
		return errs.NewHTTPStatusError(http.StatusNotFound, fmt.Sprintf("watcher %s not found", name), domain.ErrWatcherNotFound)
	}
	if err != nil {
		return fmt.Errorf("update watcher in repository: %w", err)
	}
	logger.Logger(ctx).Info().Msgf("updated watcher %s", name)
	return nil
}

func (svc *Service) DeleteWatcher(ctx context.Context, operator *domain.Claims, name string) error {
	watcher, err := svc.getWatcherByName(ctx, name)
	if err != nil {
		return err
	}

	svc.mu.Lock()
	loop := svc.loops[name]
	delete(svc.loops, name)
	svc.deleted[name] = struct{}{}
	svc.mu.Unlock()
	if loop != nil {
		loop.stop()
	}

	// Deletion is the only operation that forgets dispatch history. A
	// recreated watcher with the same name starts with a clean slate.
	svc.dedup.Clear(name)

	err = svc.Repo.DeleteWatcher(ctx, watcher.ID)
	if err != nil {
		svc.mu.Lock()
		delete(svc.deleted, name)
		svc.mu.Unlock()
		return fmt.Errorf("delete watcher from repository: %w", err)
	}
	logger.Logger(ctx).Info().Msgf("deleted watcher %s", name)
	return nil
}

func (svc *Service) StartWatcher(ctx context.Context, operator *domain.Claims, name string) error {
	watcher, err := svc.getWatcherByName(ctx, name)
	if err != nil {
		return err
	}
	_, err = svc.startWatcherLoop(ctx, watcher)
	if err != nil {
		return err
	}
	logger.Logger(ctx).Info().Msgf("started watcher %s", name)
	return nil
}

func (svc *Service) StopWatcher(ctx context.Context, operator *domain.Claims, name string) error {
	_, err := svc.getWatcherByName(ctx, name)
	if err != nil {
		return err
	}

	svc.mu.Lock()
	loop := svc.loops[name]
	svc.mu.Unlock()
	if loop == nil {
		return nil
	}
	loop.stop()
	logger.Logger(ctx).Info().Msgf("stopped watcher %s", name)
	return nil
}

func (svc *Service) GetWatcherStatus(ctx context.Context, name string) (*domain.WatcherStatus, error) {
	watcher, err := svc.getWatcherByName(ctx, name)
	if err != nil {
		return nil, err
	}

	svc.mu.Lock()
	loop := svc.loops[name]
	svc.mu.Unlock()
	return svc.statusOf(watcher, loop), nil
}

func (svc *Service) ListWatcherStatuses(ctx context.Context) ([]*domain.WatcherStatus, error) {
	opt := &domain.QueryWatcherOptions{}
	err := svc.Repo.QueryWatchers(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("query watchers: %w", err)
	}
	sort.Slice(opt.Result, func(i, j int) bool {
		return opt.Result[i].Name < opt.Result[j].Name
	})

	statuses := make([]*domain.WatcherStatus, 0, len(opt.Result))
	for _, watcher := range opt.Result {
		svc.mu.Lock()
		loop := svc.loops[watcher.Name]
		svc.mu.Unlock()
		statuses = append(statuses, svc.statusOf(watcher, loop))
	}
	return statuses, nil
}

// BootstrapWatchers restarts the loop of every persisted watcher. One bad
// watcher does not block the rest; it is parked in the error state and
// logged.
func (svc *Service) BootstrapWatchers(ctx context.Context) error {
	opt := &domain.QueryWatcherOptions{}
	err := svc.Repo.QueryWatchers(ctx, opt)
	if err != nil {
		return fmt.Errorf("query watchers for bootstrap: %w", err)
	}

	for _, watcher := range opt.Result {
		if _, err := svc.startWatcherLoop(ctx, watcher); err != nil {
			logger.Logger(ctx).Warn().Err(err).Msgf("bootstrap: watcher %s failed to start", watcher.Name)
		}
	}
	logger.Logger(ctx).Info().Msgf("bootstrapped %d watchers", len(opt.Result))
	return nil
}

func (svc *Service) StopAllWatchers(ctx context.Context) error {
	svc.mu.Lock()
	loops := make([]*watchLoop, 0, len(svc.loops))
	for _, loop := range svc.loops {
		loops = append(loops, loop)
	}
	svc.mu.Unlock()

	for _, loop := range loops {
		loop.stop()
	}
	logger.Logger(ctx).Info().Msgf("stopped %d watchers", len(loops))
	return nil
}

// startWatcherLoop registers and starts a loop for the watcher unless one is
// already alive, in which case starting is a no-op. A name whose deletion has
// begun is refused. The loop is registered even when its cluster client
// cannot be built, so the error state stays visible to status queries.
func (svc *Service) startWatcherLoop(ctx context.Context, watcher *domain.WatcherConfig) (*watchLoop, error) {
	svc.mu.Lock()
	if _, gone := svc.deleted[watcher.Name]; gone {
		svc.mu.Unlock()
		return nil, errs.NewHTTPStatusError(http.StatusNotFound, fmt.Sprintf("watcher %s not found", watcher.Name), domain.ErrWatcherNotFound)
	}
	if existing, ok := svc.loops[watcher.Name]; ok && existing.alive() {
		svc.mu.Unlock()
		return existing, nil
	}
	loop := newWatchLoop(watcher, svc.Dispatcher, svc.dedup, svc.metrics, svc.watchConfig)
	svc.loops[watcher.Name] = loop
	svc.mu.Unlock()

	source, err := svc.SourceFactory(ctx, watcher.ClusterConnection)
	if err != nil {
		err = fmt.Errorf("build cluster client for watcher %s: %w", watcher.Name, err)
		loop.failBeforeStart(err)
		return loop, err
	}
	loop.source = source
	loop.resolver = NewOwnershipResolver(source, svc.ownership, watcher.ClusterName)
	loop.start(ctx)
	return loop, nil
}

func (svc *Service) getWatcherByName(ctx context.Context, name string) (*domain.WatcherConfig, error) {
	opt := &domain.QueryWatcherOptions{
		Names: []string{name},
	}
	err := svc.Repo.QueryWatchers(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("query watcher %s: %w", name, err)
	}
	if len(opt.Result) == 0 {
		return nil, errs.NewHTTPStatusError(http.StatusNotFound, fmt.Sprintf("watcher %s not found", name), domain.ErrWatcherNotFound)
	}
	return opt.Result[0], nil
}

// statusOf merges persisted identity with live loop state. A watcher with no
// loop in this process reads as created. A loop whose heartbeat went stale
// reports thread_alive false even though its goroutine may still exist.
func (svc *Service) statusOf(watcher *domain.WatcherConfig, loop *watchLoop) *domain.WatcherStatus {
	status := &domain.WatcherStatus{
		Name:        watcher.Name,
		ClusterName: watcher.ClusterName,
		Scope:       watcher.Scope,
		Namespace:   watcher.Namespace,
		Status:      domain.WatcherStateCreated,
	}
	if loop == nil {
		return status
	}

	rt := loop.snapshot()
	status.Status = rt.Status
	status.LastUpdate = rt.LastUpdate
	status.ErrorMessage = rt.ErrorMessage
	status.ThreadAlive = rt.ThreadAlive &&
		time.Since(rt.LastUpdate) <= svc.watchConfig.StalenessThreshold()
	return status
}

func validateWatcher(watcher *domain.WatcherConfig) error {
	if watcher.Name == "" {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "watcher name is required", nil)
	}
	if !watcher.Scope.Valid() {
		return errs.NewHTTPStatusError(http.StatusBadRequest, fmt.Sprintf("unknown scope %q", watcher.Scope), domain.ErrInvalidScope)
	}
	if watcher.Scope == domain.ScopeNamespace && watcher.Namespace == "" {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "namespace scope requires a namespace", domain.ErrInvalidScope)
	}
	if watcher.Scope == domain.ScopeCluster && watcher.Namespace != "" {
		return errs.NewHTTPStatusError(http.StatusBadRequest, "cluster scope does not take a namespace", domain.ErrInvalidScope)
	}
	return nil
}

func baseEntityFor(operator *domain.Claims) (domain.BaseEntity, error) {
	if operator == nil {
		return domain.NewBaseEntity(nil, nil), nil
	}
	operatorID, err := operator.GetBsonObjectUID()
	if err != nil {
		return domain.BaseEntity{}, errors.WithMessagef(err, "invalid operator ID %s", operator.UID)
	}
	return domain.NewBaseEntity(&operatorID, &operatorID), nil
}
