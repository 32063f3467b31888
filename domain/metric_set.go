package domain

type MetricSet struct {
	PodEventsObserved  uint64
	EventsFilteredOut  uint64
	DuplicatesSkipped  uint64
	TriggersDispatched uint64
	TriggersFailed     uint64
	WatchReconnects    uint64
	WatchersRunning    uint64
}
