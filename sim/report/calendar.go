package report

import (
	"fmt"
	"math"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultWeekStart opens each simulated week on Monday at 09:00.
const DefaultWeekStart = "0 9 * * 1"

// Calendar maps simulated weeks onto wall-clock dates. Week n starts at the
// n-th firing of a cron schedule at or after the start date.
type Calendar struct {
	start    time.Time
	schedule cron.Schedule
	starts   []time.Time // cached firings, starts[n] opens week n
}

// NewCalendar parses a five-field cron expression (minute hour dom month dow).
func NewCalendar(start time.Time, spec string) (*Calendar, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing week start schedule %q: %w", spec, err)
	}
	// Next is strictly after its argument, so step back to admit start itself
	first := schedule.Next(start.Add(-time.Second))
	if first.IsZero() {
		return nil, fmt.Errorf("week start schedule %q never fires after %s", spec, start.Format(time.DateOnly))
	}
	return &Calendar{start: start, schedule: schedule, starts: []time.Time{first}}, nil
}

// WeekStart returns the date week n opens. Negative n is treated as 0.
func (c *Calendar) WeekStart(n int) time.Time {
	n = max(n, 0)
	for len(c.starts) <= n {
		last := c.starts[len(c.starts)-1]
		c.starts = append(c.starts, c.schedule.Next(last))
	}
	return c.starts[n]
}

// Date returns the wall-clock instant of a simulated time in weeks. A
// fractional week is spread evenly between consecutive week starts.
func (c *Calendar) Date(week float64) time.Time {
	if week <= 0 {
		return c.WeekStart(0)
	}
	whole := math.Floor(week)
	from := c.WeekStart(int(whole))
	frac := week - whole
	if frac == 0 {
		return from
	}
	to := c.WeekStart(int(whole) + 1)
	return from.Add(time.Duration(frac * float64(to.Sub(from))))
}
