package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalGrants     int `json:"total_grants"`
	ImmediateGrants int `json:"immediate_grants"`
	QueuedGrants    int `json:"queued_grants"`
	QueuedRequests  int `json:"queued_requests"`
	TotalReleases   int `json:"total_releases"`
	HandOvers       int `json:"hand_overs"` // releases that went straight to a waiter
	PeakInUse       int `json:"peak_in_use"`
	MaxQueueLen     int `json:"max_queue_len"`
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalGrants = len(st.Grants)
	for _, g := range st.Grants {
		if g.Queued {
			summary.QueuedGrants++
		} else {
			summary.ImmediateGrants++
		}
		summary.PeakInUse = max(summary.PeakInUse, g.InUse)
	}

	summary.QueuedRequests = len(st.Waits)
	for _, w := range st.Waits {
		summary.MaxQueueLen = max(summary.MaxQueueLen, w.Position)
	}

	summary.TotalReleases = len(st.Releases)
	for _, r := range st.Releases {
		if r.HandedTo != "" {
			summary.HandOvers++
		}
	}

	return summary
}
