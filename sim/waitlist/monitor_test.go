package waitlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/waitlist-sim/sim"
)

func TestQueueMonitor_SamplesAfterSameTickArrivals(t *testing.T) {
	// GIVEN a monitor scheduled before the patients of the same tick
	clock := sim.NewClock()
	clinicians := sim.NewResource("clinicians", 1)
	metrics := NewRunMetrics()
	require.NoError(t, clock.ScheduleSecondary(0, NewQueueMonitor(clinicians, metrics)))
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, clock.Spawn(NewPatient(id, 0, false, clinicians, 1, metrics)))
	}

	// WHEN two weeks run
	require.NoError(t, clock.RunUntil(2))

	// THEN each sample sees the queue as left by that tick's grants and releases
	assert.Equal(t, []QueueSample{
		{Time: 0, Length: 2},
		{Time: 1, Length: 1},
		{Time: 2, Length: 0},
	}, metrics.QueueLengthSamples)
}

func TestQueueMonitor_Name(t *testing.T) {
	m := NewQueueMonitor(sim.NewResource("clinicians", 1), NewRunMetrics())
	assert.Equal(t, "queue-monitor", m.Name())
}
