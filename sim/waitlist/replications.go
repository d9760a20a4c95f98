package waitlist

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/inference-sim/waitlist-sim/sim"
)

// ReplicationSources returns one random source per replication, drawn from
// a PartitionedRNG on key. Replication 0 uses the arrivals stream, so it
// reproduces a single seeded run. Each source must be used by one goroutine.
func ReplicationSources(key sim.SimulationKey, n int) []*rand.Rand {
	rng := sim.NewPartitionedRNG(key)
	sources := make([]*rand.Rand, n)
	for i := range sources {
		if i == 0 {
			sources[i] = rng.ForSubsystem(sim.SubsystemArrivals)
			continue
		}
		sources[i] = rng.ForSubsystem(sim.SubsystemReplication(i))
	}
	return sources
}

// RunReplications runs n independent copies of cfg, one goroutine each. Every
// run owns its clock and random source; results are in replication order.
func RunReplications(cfg Config, key sim.SimulationKey, n int) ([]*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: replications must be >= 1, got %d", ErrInvalidConfiguration, n)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sources := ReplicationSources(key, n)
	results := make([]*Result, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src *rand.Rand) {
			defer wg.Done()
			results[i], errs[i] = Run(cfg, src)
		}(i, src)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("replication %d: %w", i, err)
		}
	}
	return results, nil
}

// ReplicationSummary averages the headline numbers across replications.
type ReplicationSummary struct {
	Replications         int     `json:"replications"`
	MeanFinalQueueLength float64 `json:"mean_final_queue_length"`
	MinFinalQueueLength  int     `json:"min_final_queue_length"`
	MaxFinalQueueLength  int     `json:"max_final_queue_length"`
	MeanPatientsSeen     float64 `json:"mean_patients_seen"`
	MeanOfMeanWaitWeeks  float64 `json:"mean_of_mean_wait_weeks"`
}

// SummarizeReplications aggregates results. Nil or empty input gives a zero summary.
func SummarizeReplications(results []*Result) ReplicationSummary {
	out := ReplicationSummary{Replications: len(results)}
	if len(results) == 0 {
		return out
	}
	out.MinFinalQueueLength = results[0].Summary.FinalQueueLength
	for _, r := range results {
		s := r.Summary
		out.MeanFinalQueueLength += float64(s.FinalQueueLength)
		out.MeanPatientsSeen += float64(s.PatientsSeen)
		out.MeanOfMeanWaitWeeks += s.MeanWaitWeeks
		out.MinFinalQueueLength = min(out.MinFinalQueueLength, s.FinalQueueLength)
		out.MaxFinalQueueLength = max(out.MaxFinalQueueLength, s.FinalQueueLength)
	}
	n := float64(len(results))
	out.MeanFinalQueueLength /= n
	out.MeanPatientsSeen /= n
	out.MeanOfMeanWaitWeeks /= n
	return out
}
