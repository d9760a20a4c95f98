// Implements the Resource, a fixed pool of interchangeable servers with a
// FIFO queue of processes waiting for one of them.

package sim

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/waitlist-sim/sim/trace"
)

// GrantListener is implemented by processes that must observe a grant at the
// moment it happens. For a queued request the grant is made inside Release,
// one zero-delay resumption before the process itself runs.
type GrantListener interface {
	Granted(c *Clock)
}

// Resource models capacity identical servers. A request is granted only when
// a server is free and nobody older is still waiting, so the head of the
// wait queue is always the next process granted.
type Resource struct {
	name     string
	capacity int
	inUse    int
	peak     int
	waiting  deque.Deque[Process] // FIFO queue of parked requesters
	holders  map[Process]int      // outstanding grants per process
	trace    *trace.SimulationTrace
}

// NewResource creates a resource with the given capacity.
// Panics if capacity < 1; callers validate configuration first.
func NewResource(name string, capacity int) *Resource {
	if capacity < 1 {
		panic(fmt.Sprintf("NewResource: capacity must be >= 1, got %d", capacity))
	}
	return &Resource{
		name:     name,
		capacity: capacity,
		holders:  make(map[Process]int),
	}
}

// SetTrace attaches a decision trace. Nil disables recording.
func (r *Resource) SetTrace(st *trace.SimulationTrace) {
	r.trace = st
}

// Name returns the resource name.
func (r *Resource) Name() string { return r.name }

// Capacity returns the number of servers.
func (r *Resource) Capacity() int { return r.capacity }

// InUse returns the number of servers currently granted.
func (r *Resource) InUse() int { return r.inUse }

// PeakInUse returns the highest InUse value observed.
func (r *Resource) PeakInUse() int { return r.peak }

// QueueLen returns the number of processes waiting for a grant.
func (r *Resource) QueueLen() int { return r.waiting.Len() }

// Holds reports whether p currently holds a server.
func (r *Resource) Holds(p Process) bool { return r.holders[p] > 0 }

// Waiting returns the parked processes in grant order.
func (r *Resource) Waiting() []Process {
	out := make([]Process, r.waiting.Len())
	for i := range out {
		out[i] = r.waiting.At(i)
	}
	return out
}

// Request asks for one server on behalf of p. It returns true if the grant is
// immediate; otherwise p is queued and will be resumed by the clock once a
// Release hands it a server. Either way a GrantListener is notified when the
// grant is made.
func (r *Resource) Request(c *Clock, p Process) bool {
	if r.inUse < r.capacity && r.waiting.Len() == 0 {
		r.grant(c, p, false)
		return true
	}
	r.waiting.PushBack(p)
	if r.trace != nil {
		r.trace.RecordWait(trace.WaitRecord{Process: p.Name(), Clock: c.Now(), Position: r.waiting.Len()})
	}
	logrus.Debugf("[week %08.3f] %s queued for %s (queue=%d)", c.Now(), p.Name(), r.name, r.waiting.Len())
	return false
}

// Release returns the server held by p. If processes are waiting, the head of
// the queue is granted the server and resumed at the current time.
func (r *Resource) Release(c *Clock, p Process) error {
	if r.holders[p] == 0 {
		return fmt.Errorf("%w: %s released %s without holding it", ErrResourceMisuse, p.Name(), r.name)
	}
	if r.inUse <= 0 {
		return fmt.Errorf("%w: %s in_use would drop below zero", ErrResourceMisuse, r.name)
	}
	if r.holders[p] == 1 {
		delete(r.holders, p)
	} else {
		r.holders[p]--
	}
	r.inUse--

	handedTo := ""
	if r.waiting.Len() > 0 {
		next := r.waiting.PopFront()
		r.grant(c, next, true)
		if err := c.Schedule(c.Now(), next); err != nil {
			return err
		}
		handedTo = next.Name()
	}
	if r.trace != nil {
		r.trace.RecordRelease(trace.ReleaseRecord{
			Process:  p.Name(),
			Clock:    c.Now(),
			InUse:    r.inUse,
			QueueLen: r.waiting.Len(),
			HandedTo: handedTo,
		})
	}
	return nil
}

func (r *Resource) grant(c *Clock, p Process, queued bool) {
	r.inUse++
	r.holders[p]++
	r.peak = max(r.peak, r.inUse)
	if r.trace != nil {
		r.trace.RecordGrant(trace.GrantRecord{
			Process:  p.Name(),
			Clock:    c.Now(),
			InUse:    r.inUse,
			QueueLen: r.waiting.Len(),
			Queued:   queued,
		})
	}
	if l, ok := p.(GrantListener); ok {
		l.Granted(c)
	}
}
