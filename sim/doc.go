// Package sim provides the discrete-event engine the waitlist model runs on.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - event.go: the Process interface, process states and event ordering
//   - clock.go: simulated time, the pending event heap and RunUntil
//   - resource.go: a fixed pool of servers with a FIFO wait queue
//
// # Architecture
//
// The sim package knows nothing about patients or clinics. Domain models live
// in sub-packages:
//   - sim/waitlist/: patients, weekly arrivals, the queue monitor and the driver
//   - sim/report/: wait bands, percentiles, calendar dates and CSV export
//   - sim/trace/: decision trace recording for resource grants and releases
//
// # Process Model
//
// A process is an explicit state machine. The clock calls Resume once per
// event that targets it; Resume advances to the next suspension point, either
// a Resource.Request that was not granted immediately or a Clock.Timeout. A
// Release that frees a server hands it straight to the head of the wait queue
// and schedules that process at the current time.
//
// Events are ordered by (time, lane, insertion sequence). Observers schedule
// on the secondary lane so that, at equal time, they see the state left by
// every primary event of that tick.
//
// Randomness flows through PartitionedRNG so each subsystem draws from its
// own deterministic stream.
package sim
