package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type QueryWatcherOptions struct {
	IDs          []bson.ObjectID
	Names        []string
	ClusterNames []string
	Result       []*WatcherConfig
}

type QueryUserOptions struct {
	IDs       []bson.ObjectID
	UserNames []string
	Result    []*User
}

type Repository interface {
	CreateWatcher(ctx context.Context, watcher *WatcherConfig) error
	UpdateWatcher(ctx context.Context, watcher *WatcherConfig) error
	DeleteWatcher(ctx context.Context, watcherID bson.ObjectID) error
	QueryWatchers(ctx context.Context, opt *QueryWatcherOptions) error

	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	QueryUsers(ctx context.Context, opt *QueryUserOptions) error
}

type Service interface {
	CreateWatcher(ctx context.Context, operator *Claims, watcher *WatcherConfig) (*WatcherStatus, error)
	UpdateWatcher(ctx context.Context, operator *Claims, name string, opt *UpdateWatcherOptions) error
	DeleteWatcher(ctx context.Context, operator *Claims, name string) error
	StartWatcher(ctx context.Context, operator *Claims, name string) error
	StopWatcher(ctx context.Context, operator *Claims, name string) error
	GetWatcherStatus(ctx context.Context, name string) (*WatcherStatus, error)
	ListWatcherStatuses(ctx context.Context) ([]*WatcherStatus, error)

	// BootstrapWatchers reloads persisted watcher configs after a process
	// restart and starts a fresh loop for each of them.
	BootstrapWatchers(ctx context.Context) error
	// StopAllWatchers stops every running loop and waits for them to drain.
	StopAllWatchers(ctx context.Context) error

	CreateAdminUserIfNotExists(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (token string, err error)
	ChangePassword(ctx context.Context, user *Claims, oldPassword, newPassword string) error
	VerifyJWTToken(ctx context.Context, tokenString string) (Claims, error)
}

type SubscribeOptions struct {
	Namespace     string
	LabelSelector string
}

// EventStream is a live feed of pod events from one cluster connection.
// Events is closed when the stream dies; Err then reports why. Stop releases
// the underlying watch and is safe to call more than once.
type EventStream interface {
	Events() <-chan *ObservedPodEvent
	Err() error
	Stop()
}

// EventSource is a single cluster connection. Subscribe opens a pod watch
// narrowed by SubscribeOptions; the lookup methods serve ownership
// resolution and post-trigger cleanup.
type EventSource interface {
	Subscribe(ctx context.Context, opt SubscribeOptions) (EventStream, error)
	GetReplicaSetOwners(ctx context.Context, namespace, name string) ([]OwnerReference, error)
	GetDeployment(ctx context.Context, namespace, name string) (bool, error)
	DeletePod(ctx context.Context, namespace, name string) error
	Ping(ctx context.Context) error
}

// EventSourceFactory builds an EventSource for one watcher's cluster
// connection. An empty ClusterConnection means the process default cluster.
type EventSourceFactory func(ctx context.Context, conn ClusterConnection) (EventSource, error)

// TriggerDispatcher delivers one checkpoint trigger to the hook endpoint.
// Dispatch never returns an error: delivery failures are folded into the
// TriggerResult so the caller can decide what to do with them.
type TriggerDispatcher interface {
	Dispatch(ctx context.Context, req *TriggerRequest) *TriggerResult
}

// OwnershipResolver walks a pod's owner references up to the deployment that
// manages it. Pods without a ReplicaSet owner resolve to an empty chain, not
// an error.
type OwnershipResolver interface {
	Resolve(ctx context.Context, event *ObservedPodEvent) (OwnershipChain, error)
}
