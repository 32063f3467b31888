package domain

import (
	"time"
)

type WatcherScope string

const (
	ScopeCluster   WatcherScope = "cluster"
	ScopeNamespace WatcherScope = "namespace"
)

func (s WatcherScope) Valid() bool {
	return s == ScopeCluster || s == ScopeNamespace
}

type TriggerKind string

const (
	// TriggerStartupProbe dispatches once a pod reports Running with a ready
	// condition and at least one started container.
	TriggerStartupProbe TriggerKind = "startupProbe"
)

// WatcherState is the administratively visible lifecycle state of a watcher.
type WatcherState string

const (
	WatcherStateCreated      WatcherState = "created"
	WatcherStateStarting     WatcherState = "starting"
	WatcherStateRunning      WatcherState = "running"
	WatcherStateReconnecting WatcherState = "reconnecting"
	WatcherStateStopping     WatcherState = "stopping"
	WatcherStateStopped      WatcherState = "stopped"
	WatcherStateError        WatcherState = "error"
)

// ClusterConnection points a watcher at its target cluster. The credential
// reference is opaque here; the cluster adapter decides how to interpret it
// (currently a kubeconfig path, empty meaning the process-level client).
type ClusterConnection struct {
	APIEndpoint    string `bson:"apiEndpoint,omitempty" json:"api_endpoint,omitempty"`
	CredentialsRef string `bson:"credentialsRef,omitempty" json:"credentials_ref,omitempty"`
}

// WatcherConfig is the persisted identity and behavior of a named watcher.
// Immutable while its loop is running; mutated only through stop, update,
// start.
type WatcherConfig struct {
	BaseEntity        `bson:",inline"`
	Name              string            `bson:"name"`
	ClusterName       string            `bson:"clusterName,omitempty"`
	ClusterConnection ClusterConnection `bson:"clusterConnection,omitempty"`
	Scope             WatcherScope      `bson:"scope"`
	Namespace         string            `bson:"namespace,omitempty"`
	TriggerKind       TriggerKind       `bson:"trigger,omitempty"`
	AutoDeletePod     bool              `bson:"autoDeletePod"`
	// HookEndpoint is resolved from service configuration at create time,
	// never taken from user input.
	HookEndpoint string `bson:"hookEndpoint,omitempty"`
}

// WatcherRuntimeState is owned by the watch loop that updates it and read
// concurrently by status queries. It never survives a process restart.
type WatcherRuntimeState struct {
	Status       WatcherState
	ThreadAlive  bool
	LastUpdate   time.Time
	ErrorMessage string
}

// WatcherStatus is the snapshot returned by status queries, combining
// configuration identity with live runtime state.
type WatcherStatus struct {
	Name         string       `json:"name"`
	ClusterName  string       `json:"cluster_name"`
	Scope        WatcherScope `json:"scope"`
	Namespace    string       `json:"namespace,omitempty"`
	Status       WatcherState `json:"status"`
	ThreadAlive  bool         `json:"thread_alive"`
	LastUpdate   time.Time    `json:"last_update"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

// UpdateWatcherOptions carries the mutable fields of an update call. Nil
// fields keep their stored value.
type UpdateWatcherOptions struct {
	ClusterName       *string            `json:"cluster_name,omitempty"`
	ClusterConnection *ClusterConnection `json:"cluster_connection,omitempty"`
	Scope             *WatcherScope      `json:"scope,omitempty"`
	Namespace         *string            `json:"namespace,omitempty"`
	TriggerKind       *TriggerKind       `json:"trigger,omitempty"`
	AutoDeletePod     *bool              `json:"auto_delete_pod,omitempty"`
}
