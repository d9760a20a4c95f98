// Implements the Clock, which holds simulated time and the pending event queue
// and drives processes in time order.

package sim

import (
	"fmt"
	"math"

	"github.com/addrummond/heap"
	"github.com/sirupsen/logrus"
)

// Clock is the core object of the event loop. It owns simulated time (in
// weeks) and the queue of pending process resumptions.
//
// Thread-safety: NOT thread-safe. A Clock and everything scheduled on it
// belong to a single goroutine.
type Clock struct {
	now       float64
	nextSeq   uint64
	pending   int
	processed int
	events    heap.Heap[Event, heap.Min]
}

// NewClock returns a clock at time zero with an empty event queue.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current simulated time.
func (c *Clock) Now() float64 {
	return c.now
}

// Pending returns the number of events not yet processed.
func (c *Clock) Pending() int {
	return c.pending
}

// Processed returns the number of events resumed so far.
func (c *Clock) Processed() int {
	return c.processed
}

// Schedule resumes p at time t.
func (c *Clock) Schedule(t float64, p Process) error {
	return c.push(t, LanePrimary, p)
}

// ScheduleSecondary resumes p at time t, after every primary event at t.
func (c *Clock) ScheduleSecondary(t float64, p Process) error {
	return c.push(t, LaneSecondary, p)
}

// Spawn starts p at the current time.
func (c *Clock) Spawn(p Process) error {
	return c.push(c.now, LanePrimary, p)
}

// Timeout resumes p after delay weeks.
func (c *Clock) Timeout(p Process, delay float64) error {
	if delay < 0 {
		return fmt.Errorf("%w: negative timeout %g for %s", ErrInvalidSchedule, delay, p.Name())
	}
	return c.push(c.now+delay, LanePrimary, p)
}

// TimeoutSecondary resumes p after delay weeks on the secondary lane.
func (c *Clock) TimeoutSecondary(p Process, delay float64) error {
	if delay < 0 {
		return fmt.Errorf("%w: negative timeout %g for %s", ErrInvalidSchedule, delay, p.Name())
	}
	return c.push(c.now+delay, LaneSecondary, p)
}

func (c *Clock) push(t float64, lane Lane, p Process) error {
	if p == nil {
		return fmt.Errorf("%w: nil process at t=%g", ErrInvalidSchedule, t)
	}
	// !(t >= now) also rejects NaN
	if !(t >= c.now) {
		return fmt.Errorf("%w: %s scheduled at t=%g, now=%g", ErrInvalidSchedule, p.Name(), t, c.now)
	}
	heap.PushOrderable(&c.events, Event{time: t, lane: lane, seq: c.nextSeq, process: p})
	c.nextSeq++
	c.pending++
	return nil
}

// RunUntil processes events in order until the queue is empty or the next
// event is later than stop. Events at exactly stop are processed. On a clean
// return the clock reads stop, unless stop is infinite.
//
// An error from a resumed process aborts the run; the clock is left at the
// time of the failing event.
func (c *Clock) RunUntil(stop float64) error {
	if math.IsNaN(stop) {
		return fmt.Errorf("%w: stop time is NaN", ErrInvalidSchedule)
	}
	if stop < c.now {
		return fmt.Errorf("%w: stop time %g is before now=%g", ErrInvalidSchedule, stop, c.now)
	}
	for {
		next, ok := heap.Peek(&c.events)
		if !ok || next.time > stop {
			break
		}
		ev, _ := heap.PopOrderable(&c.events)
		c.pending--
		c.now = ev.time
		c.processed++
		logrus.Debugf("[week %08.3f] resuming %s", c.now, ev.process.Name())
		if err := ev.process.Resume(c); err != nil {
			return fmt.Errorf("resuming %s at t=%g (event %d): %w", ev.process.Name(), ev.time, ev.seq, err)
		}
	}
	if !math.IsInf(stop, 1) {
		c.now = stop
	}
	return nil
}
