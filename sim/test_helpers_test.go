package sim

import "fmt"

// stepProcess is a scripted process. Every resumption is appended to log as
// "name@time"; then steps[n] runs for the n-th resumption, if present.
type stepProcess struct {
	name  string
	log   *[]string
	steps []func(c *Clock) error
	n     int
}

func (p *stepProcess) Name() string { return p.name }

func (p *stepProcess) Resume(c *Clock) error {
	*p.log = append(*p.log, fmt.Sprintf("%s@%g", p.name, c.Now()))
	if p.n >= len(p.steps) {
		p.n++
		return nil
	}
	step := p.steps[p.n]
	p.n++
	return step(c)
}

// holdJob requests one server of res, holds it for hold weeks, releases it.
type holdJob struct {
	name  string
	res   *Resource
	hold  float64
	state ProcessState

	requestedAt float64
	grantedAt   float64
	queued      *[]string // names in enqueue order
	granted     *[]string // names of queued jobs in grant order
	maxInUse    *int
}

func (j *holdJob) Name() string { return j.name }

func (j *holdJob) Resume(c *Clock) error {
	switch j.state {
	case NotStarted:
		j.requestedAt = c.Now()
		if !j.res.Request(c, j) {
			j.state = AwaitingResource
			if j.queued != nil {
				*j.queued = append(*j.queued, j.name)
			}
			return nil
		}
		return j.begin(c)
	case AwaitingResource:
		if j.granted != nil {
			*j.granted = append(*j.granted, j.name)
		}
		return j.begin(c)
	case AwaitingTimeout:
		j.state = Completed
		return j.res.Release(c, j)
	}
	return fmt.Errorf("%w: %s resumed after completion", ErrInvalidSchedule, j.name)
}

func (j *holdJob) begin(c *Clock) error {
	j.grantedAt = c.Now()
	j.state = AwaitingTimeout
	if j.maxInUse != nil {
		*j.maxInUse = max(*j.maxInUse, j.res.InUse())
	}
	return c.Timeout(j, j.hold)
}

func formatTime(t float64) string {
	return fmt.Sprintf("%g", t)
}
