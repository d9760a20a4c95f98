package report

import (
	"fmt"
	"slices"

	"github.com/inference-sim/waitlist-sim/sim/waitlist"
)

// DefaultThresholds are the referral-to-treatment breach points, in weeks.
var DefaultThresholds = []float64{18, 36, 52}

// Band counts the patients whose wait exceeded one threshold.
type Band struct {
	ThresholdWeeks float64 `json:"threshold_weeks"`
	Seen           int     `json:"seen"`    // seen after waiting longer than the threshold
	Waiting        int     `json:"waiting"` // still waiting at the horizon, older than the threshold
}

// Total returns Seen + Waiting.
func (b Band) Total() int { return b.Seen + b.Waiting }

// Bands classifies every patient against each threshold. A seen patient is
// measured by its recorded wait; a patient still waiting is measured by its
// age at horizon. Backlog patients are skipped unless includeBacklog is set.
// Thresholds must be positive; the result is ordered by threshold.
func Bands(m *waitlist.RunMetrics, horizon float64, thresholds []float64, includeBacklog bool) ([]Band, error) {
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds
	}
	sorted := slices.Clone(thresholds)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	bands := make([]Band, len(sorted))
	for i, t := range sorted {
		if !(t > 0) {
			return nil, fmt.Errorf("wait band threshold must be positive, got %g", t)
		}
		bands[i].ThresholdWeeks = t
	}

	for _, p := range m.PatientsSeen {
		if p.Backlog && !includeBacklog {
			continue
		}
		for i := range bands {
			if p.WaitTime > bands[i].ThresholdWeeks {
				bands[i].Seen++
			}
		}
	}
	for _, p := range m.StillWaiting() {
		if p.Backlog && !includeBacklog {
			continue
		}
		age := horizon - p.ArrivalTime
		for i := range bands {
			if age > bands[i].ThresholdWeeks {
				bands[i].Waiting++
			}
		}
	}
	return bands, nil
}
