package domain

import "time"

// TriggerRequest is the JSON body posted to the hook endpoint when a pod
// qualifies for checkpointing.
type TriggerRequest struct {
	PodName        string `json:"pod_name"`
	Namespace      string `json:"namespace"`
	NodeName       string `json:"node_name"`
	ContainerName  string `json:"container_name"`
	ClusterName    string `json:"cluster_name"`
	DeploymentName string `json:"deployment_name,omitempty"`
}

// TriggerResult is the outcome of exactly one dispatch attempt. Dispatch
// failures are data, not errors; the watch loop records them and carries on.
type TriggerResult struct {
	Success      bool
	StatusCode   int
	Latency      time.Duration
	Error        string
	DispatchedAt time.Time
}

// DedupEntry records a successful dispatch for a pod UID within one watcher.
type DedupEntry struct {
	PodUID       string
	DispatchedAt time.Time
}
