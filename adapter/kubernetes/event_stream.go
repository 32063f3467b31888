package kubernetes

import (
	"sync"

	"github.com/weaversoft/snapwatch/domain"
	apiv1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/watch"
)

// podEventStream pumps a client-go watch into a channel of domain events.
// The pump goroutine exits when the watch dies or Stop is called; Events is
// closed on the way out and Err reports why the stream ended.
type podEventStream struct {
	watcher watch.Interface
	events  chan *domain.ObservedPodEvent
	done    chan struct{}

	stopOnce sync.Once

	mu  sync.Mutex
	err error
}

func newPodEventStream(w watch.Interface) *podEventStream {
	s := &podEventStream{
		watcher: w,
		events:  make(chan *domain.ObservedPodEvent, 16),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *podEventStream) Events() <-chan *domain.ObservedPodEvent {
	return s.events
}

func (s *podEventStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *podEventStream) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.watcher.Stop()
	})
}

func (s *podEventStream) run() {
	defer close(s.events)

	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watcher.ResultChan():
			if !ok {
				// A clean Stop also closes the result channel, so only a
				// close we did not ask for counts as a failure.
				select {
				case <-s.done:
				default:
					s.setErr(domain.NewConnectivityError("watch channel closed", nil))
				}
				return
			}

			switch ev.Type {
			case watch.Error:
				s.setErr(classifyError("watch aborted", apierrors.FromObject(ev.Object)))
				return
			case watch.Bookmark:
				continue
			}

			pod, ok := ev.Object.(*apiv1.Pod)
			if !ok {
				continue
			}

			select {
			case s.events <- podToEvent(ev.Type, pod):
			case <-s.done:
				return
			}
		}
	}
}

func (s *podEventStream) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func podToEvent(eventType watch.EventType, pod *apiv1.Pod) *domain.ObservedPodEvent {
	ev := &domain.ObservedPodEvent{
		Type:      domain.PodEventType(eventType),
		UID:       string(pod.UID),
		Namespace: pod.Namespace,
		PodName:   pod.Name,
		NodeName:  pod.Spec.NodeName,
		Labels:    pod.Labels,
		Phase:     string(pod.Status.Phase),
	}

	for _, c := range pod.Spec.Containers {
		ev.ContainerNames = append(ev.ContainerNames, c.Name)
	}

	for _, cs := range pod.Status.ContainerStatuses {
		ev.ContainerStatuses = append(ev.ContainerStatuses, domain.ContainerStatus{
			Name:    cs.Name,
			Running: cs.State.Running != nil,
			Started: cs.Started != nil && *cs.Started,
		})
	}

	for _, cond := range pod.Status.Conditions {
		if cond.Type == apiv1.PodReady {
			ev.Ready = cond.Status == apiv1.ConditionTrue
			break
		}
	}

	if pod.DeletionTimestamp != nil {
		t := pod.DeletionTimestamp.Time
		ev.DeletionTimestamp = &t
	}

	for _, ref := range pod.OwnerReferences {
		ev.OwnerReferences = append(ev.OwnerReferences, domain.OwnerReference{
			Kind: domain.OwnerKind(ref.Kind),
			Name: ref.Name,
			UID:  string(ref.UID),
		})
	}

	return ev
}
