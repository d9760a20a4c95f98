// Package waitlist models a clinic waiting list on top of the sim engine.
//
// Patients arrive every week in stochastic batches, request one of a fixed
// number of clinicians, wait in FIFO order if all are busy, are seen for a
// fixed duration and leave. Time is measured in weeks.
//
// # Processes
//
//   - Patient (patient.go): request → (wait) → in service → release
//   - ArrivalGenerator (arrivals.go): time-zero backlog, then one batch per week
//   - QueueMonitor (monitor.go): weekly queue-length sample, taken after the
//     tick has settled
//
// Simulator (simulator.go) wires them together and returns a Result. Every
// run owns its own RunMetrics, so independent runs may execute concurrently.
package waitlist
