package domain

import "time"

// Eligibility labels. A pod qualifies for checkpoint triggering only while
// the snap label is present and the mutated label is absent.
const (
	LabelSnap    = "snap.weaversoft.io/snap"
	LabelMutated = "snap.weaversoft.io/mutated"
)

// EligibilitySelector is the server-side label selector narrowing a watch
// subscription to checkpoint-eligible pods.
const EligibilitySelector = LabelSnap + ",!" + LabelMutated

type PodEventType string

const (
	PodAdded    PodEventType = "ADDED"
	PodModified PodEventType = "MODIFIED"
	PodDeleted  PodEventType = "DELETED"
)

// PodPhaseRunning is the only pod phase that can produce a trigger.
const PodPhaseRunning = "Running"

type OwnerKind string

const (
	OwnerReplicaSet OwnerKind = "ReplicaSet"
	OwnerDeployment OwnerKind = "Deployment"
)

type OwnerReference struct {
	Kind OwnerKind
	Name string
	UID  string
}

type ContainerStatus struct {
	Name    string
	Running bool
	Started bool
}

// ObservedPodEvent is the transient view of one pod change delivered by the
// cluster watch stream. Consumed once, never persisted.
type ObservedPodEvent struct {
	Type              PodEventType
	UID               string
	Namespace         string
	PodName           string
	NodeName          string
	ContainerNames    []string // pod spec order
	ContainerStatuses []ContainerStatus
	Labels            map[string]string
	Phase             string
	Ready             bool
	DeletionTimestamp *time.Time
	OwnerReferences   []OwnerReference
}

// FirstContainerName returns the first container in spec order, which is the
// container named in the dispatched trigger.
func (e *ObservedPodEvent) FirstContainerName() string {
	if len(e.ContainerNames) == 0 {
		return ""
	}
	return e.ContainerNames[0]
}

// AnyContainerStarted reports whether at least one container is running and
// has passed its startup probe.
func (e *ObservedPodEvent) AnyContainerStarted() bool {
	for _, cs := range e.ContainerStatuses {
		if cs.Running && cs.Started {
			return true
		}
	}
	return false
}

// ReplicaSetOwner returns the first ReplicaSet owner reference, if any.
func (e *ObservedPodEvent) ReplicaSetOwner() (OwnerReference, bool) {
	for _, ref := range e.OwnerReferences {
		if ref.Kind == OwnerReplicaSet {
			return ref, true
		}
	}
	return OwnerReference{}, false
}

// OwnershipChain is the Pod -> ReplicaSet -> Deployment ancestry. A chain
// with no deployment name is valid and means the pod has no Deployment
// ancestor that could be resolved.
type OwnershipChain struct {
	ReplicaSetName string
	DeploymentName string
}

func (c OwnershipChain) Empty() bool {
	return c.DeploymentName == ""
}
