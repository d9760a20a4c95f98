package report

import (
	"fmt"
	"io"

	"github.com/inference-sim/waitlist-sim/sim/waitlist"
)

// Print writes the end-of-run summary block, followed by the wait bands and
// wait percentiles when there is anything to show.
func Print(w io.Writer, res *waitlist.Result, bands []Band) {
	s := res.Summary
	fmt.Fprintln(w, "\n--- Simulation Summary ---")
	fmt.Fprintf(w, "Final Waiting List: %d\n", s.FinalQueueLength)
	fmt.Fprintf(w, "Patients Seen: %d\n", s.PatientsSeen)
	fmt.Fprintf(w, "Average Wait (weeks): %.1f\n", s.MeanWaitWeeks)

	if s.PatientsSeen > 0 {
		ws := SummarizeWaits(res.Metrics.WaitingTimes)
		fmt.Fprintf(w, "Wait p50/p90/p99 (weeks): %.1f / %.1f / %.1f\n", ws.P50, ws.P90, ws.P99)
		fmt.Fprintf(w, "Longest Wait (weeks): %.1f\n", ws.Max)
	}
	if len(bands) > 0 {
		fmt.Fprintln(w, "\n--- Wait Bands ---")
		for _, b := range bands {
			fmt.Fprintf(w, "Over %g weeks: %d seen, %d still waiting\n", b.ThresholdWeeks, b.Seen, b.Waiting)
		}
	}
}
