package sim

import "cmp"

// Process is a resumable unit of simulated behavior. The clock calls Resume
// once per event that targets the process; Resume runs the process up to its
// next suspension point (a resource request or a timeout) or to completion.
type Process interface {
	Name() string
	Resume(c *Clock) error
}

// ProcessState is the suspension point a process is parked at.
type ProcessState int

const (
	NotStarted ProcessState = iota
	AwaitingResource
	AwaitingTimeout
	Completed
)

func (s ProcessState) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case AwaitingResource:
		return "awaiting-resource"
	case AwaitingTimeout:
		return "awaiting-timeout"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Lane separates events that change model state from events that only
// observe it. At equal timestamps every primary event runs before any
// secondary event, so observers see the settled state of a tick.
type Lane int

const (
	LanePrimary Lane = iota
	LaneSecondary
)

// Event is a pending resumption of a process.
type Event struct {
	time    float64 // Simulated time of the resumption (in weeks)
	lane    Lane
	seq     uint64 // Insertion order, the final tie-breaker
	process Process
}

// Time returns the scheduled time of the event.
func (e *Event) Time() float64 {
	return e.time
}

// Seq returns the insertion sequence number of the event.
func (e *Event) Seq() uint64 {
	return e.seq
}

// Process returns the process the event resumes.
func (e *Event) Process() Process {
	return e.process
}

// Cmp orders events by time, then lane, then insertion order.
func (e *Event) Cmp(o *Event) int {
	if c := cmp.Compare(e.time, o.time); c != 0 {
		return c
	}
	if c := cmp.Compare(e.lane, o.lane); c != 0 {
		return c
	}
	return cmp.Compare(e.seq, o.seq)
}
