package service

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/weaversoft/snapwatch/domain"
)

const metricNamespace = "snapwatch"

// MetricCollector exposes the pipeline counters of every watch loop as a
// single prometheus collector. The loops increment it directly; Collect
// reads a consistent snapshot under the lock.
type MetricCollector struct {
	machineID string

	mu  sync.RWMutex
	set domain.MetricSet

	podEventsDesc  *prometheus.Desc
	filteredDesc   *prometheus.Desc
	duplicatesDesc *prometheus.Desc
	dispatchedDesc *prometheus.Desc
	failedDesc     *prometheus.Desc
	reconnectsDesc *prometheus.Desc
	runningDesc    *prometheus.Desc

	latencyHist prometheus.Histogram
}

func NewMetricCollector(machineID string) *MetricCollector {
	labels := prometheus.Labels{"machine_id": machineID}
	return &MetricCollector{
		machineID: machineID,
		podEventsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "pod_events_total"),
			"Pod events received from cluster watch streams.",
			nil, labels,
		),
		filteredDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "events_filtered_total"),
			"Pod events dropped by the scope or lifecycle filters.",
			nil, labels,
		),
		duplicatesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "duplicates_skipped_total"),
			"Pod events skipped because the pod already triggered.",
			nil, labels,
		),
		dispatchedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "triggers_dispatched_total"),
			"Checkpoint triggers accepted by the hook endpoint.",
			nil, labels,
		),
		failedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "triggers_failed_total"),
			"Checkpoint trigger dispatches that failed.",
			nil, labels,
		),
		reconnectsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "watch_reconnects_total"),
			"Watch stream reconnect attempts across all watchers.",
			nil, labels,
		),
		runningDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "watchers_running"),
			"Watch loops currently alive.",
			nil, labels,
		),
		latencyHist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   metricNamespace,
			Name:        "trigger_dispatch_seconds",
			Help:        "Round-trip latency of checkpoint trigger dispatches.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
	}
}

func (c *MetricCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.podEventsDesc
	ch <- c.filteredDesc
	ch <- c.duplicatesDesc
	ch <- c.dispatchedDesc
	ch <- c.failedDesc
	ch <- c.reconnectsDesc
	ch <- c.runningDesc
	ch <- c.latencyHist.Desc()
}

func (c *MetricCollector) Collect(ch chan<- prometheus.Metric) {
	set := c.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.podEventsDesc, prometheus.CounterValue, float64(set.PodEventsObserved))
	ch <- prometheus.MustNewConstMetric(c.filteredDesc, prometheus.CounterValue, float64(set.EventsFilteredOut))
	ch <- prometheus.MustNewConstMetric(c.duplicatesDesc, prometheus.CounterValue, float64(set.DuplicatesSkipped))
	ch <- prometheus.MustNewConstMetric(c.dispatchedDesc, prometheus.CounterValue, float64(set.TriggersDispatched))
	ch <- prometheus.MustNewConstMetric(c.failedDesc, prometheus.CounterValue, float64(set.TriggersFailed))
	ch <- prometheus.MustNewConstMetric(c.reconnectsDesc, prometheus.CounterValue, float64(set.WatchReconnects))
	ch <- prometheus.MustNewConstMetric(c.runningDesc, prometheus.GaugeValue, float64(set.WatchersRunning))
	ch <- c.latencyHist
}

// Snapshot returns a copy of the current counter values.
func (c *MetricCollector) Snapshot() domain.MetricSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set
}

func (c *MetricCollector) AddPodEvent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set.PodEventsObserved++
}

func (c *MetricCollector) AddFiltered() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set.EventsFilteredOut++
}

func (c *MetricCollector) AddDuplicateSkipped() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set.DuplicatesSkipped++
}

func (c *MetricCollector) AddTriggerDispatched() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set.TriggersDispatched++
}

func (c *MetricCollector) AddTriggerFailed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set.TriggersFailed++
}

// ObserveDispatchLatency records how long one trigger dispatch took,
// successful or not.
func (c *MetricCollector) ObserveDispatchLatency(d time.Duration) {
	c.latencyHist.Observe(d.Seconds())
}

func (c *MetricCollector) AddWatchReconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set.WatchReconnects++
}

func (c *MetricCollector) WatcherStarted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set.WatchersRunning++
}

func (c *MetricCollector) WatcherStopped() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set.WatchersRunning > 0 {
		c.set.WatchersRunning--
	}
}
