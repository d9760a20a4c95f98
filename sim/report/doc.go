// Package report turns the metrics of a finished waitlist run into the
// views a clinic planner reads: the summary block, wait bands, wait
// percentiles, a calendar for simulated weeks and a CSV queue timeline.
//
// Nothing here touches the clock. Every function reads a
// waitlist.RunMetrics after the run has stopped.
package report
