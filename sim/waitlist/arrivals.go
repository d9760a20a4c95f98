package waitlist

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/waitlist-sim/sim"
)

// NormalSource supplies standard normal draws. *rand.Rand satisfies it.
type NormalSource interface {
	NormFloat64() float64
}

// ArrivalCount turns a standard normal draw z into a weekly arrival count:
// ceil(mean + cv*mean*z), clamped to [0, maxWeeklyArrivals]. NaN counts as 0.
func ArrivalCount(mean, cv, z float64) int {
	n := math.Ceil(mean + cv*mean*z)
	if !(n > 0) {
		return 0
	}
	if n > maxWeeklyArrivals {
		return maxWeeklyArrivals
	}
	return int(n)
}

// ArrivalGenerator is the perpetual process that feeds the waiting list. On
// its first resumption it spawns the time-zero backlog; every resumption
// (the first included) spawns one week's stochastic batch and waits a week.
type ArrivalGenerator struct {
	cfg        Config
	rng        NormalSource
	clinicians *sim.Resource
	metrics    *RunMetrics
	started    bool
}

// NewArrivalGenerator creates the generator for one run.
func NewArrivalGenerator(cfg Config, rng NormalSource, clinicians *sim.Resource, metrics *RunMetrics) *ArrivalGenerator {
	return &ArrivalGenerator{
		cfg:        cfg,
		rng:        rng,
		clinicians: clinicians,
		metrics:    metrics,
	}
}

// Name returns "arrivals".
func (g *ArrivalGenerator) Name() string { return "arrivals" }

// Resume spawns this week's patients and schedules next week.
func (g *ArrivalGenerator) Resume(c *sim.Clock) error {
	now := c.Now()
	if !g.started {
		g.started = true
		for i := 0; i < g.cfg.InitialWaitlist; i++ {
			if err := g.spawn(c, fmt.Sprintf("Initial Patient %d", i+1), true); err != nil {
				return err
			}
		}
		if g.cfg.InitialWaitlist > 0 {
			logrus.Infof("[week %08.3f] %d patients on the initial waiting list", now, g.cfg.InitialWaitlist)
		}
	}

	n := ArrivalCount(g.cfg.Patients, g.cfg.ArrivalCV, g.rng.NormFloat64())
	week := int(math.Ceil(now))
	for i := 0; i < n; i++ {
		if err := g.spawn(c, fmt.Sprintf("Week %d Patient %d", week, i+1), false); err != nil {
			return err
		}
	}
	g.metrics.WeeklyArrivals = append(g.metrics.WeeklyArrivals, ArrivalSample{Time: now, Count: n})
	logrus.Debugf("[week %08.3f] %d new patients", now, n)

	return c.Timeout(g, WeekLength)
}

func (g *ArrivalGenerator) spawn(c *sim.Clock, id string, backlog bool) error {
	p := NewPatient(id, c.Now(), backlog, g.clinicians, g.cfg.ServiceWeeks(), g.metrics)
	return c.Spawn(p)
}
