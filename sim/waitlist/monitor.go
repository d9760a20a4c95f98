package waitlist

import "github.com/inference-sim/waitlist-sim/sim"

// QueueMonitor samples the clinicians' wait queue once a week. It runs on the
// secondary lane, so each sample reflects the tick after every grant, release
// and arrival at that time has been processed.
type QueueMonitor struct {
	clinicians *sim.Resource
	metrics    *RunMetrics
}

// NewQueueMonitor creates the monitor for one run.
func NewQueueMonitor(clinicians *sim.Resource, metrics *RunMetrics) *QueueMonitor {
	return &QueueMonitor{clinicians: clinicians, metrics: metrics}
}

// Name returns "queue-monitor".
func (m *QueueMonitor) Name() string { return "queue-monitor" }

// Resume records one sample and schedules the next.
func (m *QueueMonitor) Resume(c *sim.Clock) error {
	m.metrics.QueueLengthSamples = append(m.metrics.QueueLengthSamples, QueueSample{
		Time:   c.Now(),
		Length: m.clinicians.QueueLen(),
	})
	return c.TimeoutSecondary(m, WeekLength)
}
