package waitlist

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/waitlist-sim/sim"
)

// PatientStatus is the lifecycle status of a PatientRecord.
type PatientStatus string

const (
	StatusWaiting PatientStatus = "waiting"
	StatusSeen    PatientStatus = "seen"
)

// PatientRecord is the reporting view of one patient. It changes exactly once,
// when a clinician is granted; ServiceStart and WaitTime are meaningful only
// once Status is StatusSeen.
type PatientRecord struct {
	ID           string        `json:"id"`
	ArrivalTime  float64       `json:"arrival_week"`
	ServiceStart float64       `json:"service_start_week"`
	WaitTime     float64       `json:"wait_weeks"`
	Status       PatientStatus `json:"status"`
	Backlog      bool          `json:"backlog"` // on the list at time zero
}

// Patient is the process of one patient's journey:
//
//	NotStarted → AwaitingResource → AwaitingTimeout (in service) → Completed
//
// A patient granted a clinician on request skips AwaitingResource.
type Patient struct {
	record      *PatientRecord
	clinicians  *sim.Resource
	metrics     *RunMetrics
	serviceTime float64
	state       sim.ProcessState
}

// NewPatient creates a patient arriving at arrival and registers its record
// with metrics. The caller spawns it on the clock.
func NewPatient(id string, arrival float64, backlog bool, clinicians *sim.Resource, serviceTime float64, metrics *RunMetrics) *Patient {
	record := &PatientRecord{
		ID:          id,
		ArrivalTime: arrival,
		Status:      StatusWaiting,
		Backlog:     backlog,
	}
	metrics.Patients = append(metrics.Patients, record)
	return &Patient{
		record:      record,
		clinicians:  clinicians,
		metrics:     metrics,
		serviceTime: serviceTime,
		state:       sim.NotStarted,
	}
}

// Name returns the patient ID.
func (p *Patient) Name() string { return p.record.ID }

// State returns the suspension point the patient is parked at.
func (p *Patient) State() sim.ProcessState { return p.state }

// Record returns the patient's record.
func (p *Patient) Record() *PatientRecord { return p.record }

// Granted marks the patient seen. The clinician pool calls it at the moment
// of the grant, so PatientsSeen follows grant order even when a hand-off and
// an immediate grant share a tick.
func (p *Patient) Granted(c *sim.Clock) {
	now := c.Now()
	p.record.ServiceStart = now
	p.record.WaitTime = now - p.record.ArrivalTime
	p.record.Status = StatusSeen
	p.metrics.recordSeen(*p.record)
	logrus.Debugf("[week %08.3f] %s seen after %.3f weeks", now, p.record.ID, p.record.WaitTime)
}

// Resume advances the patient to its next suspension point.
func (p *Patient) Resume(c *sim.Clock) error {
	switch p.state {
	case sim.NotStarted:
		if !p.clinicians.Request(c, p) {
			p.state = sim.AwaitingResource
			return nil
		}
		return p.startService(c)
	case sim.AwaitingResource:
		if !p.clinicians.Holds(p) {
			return fmt.Errorf("%w: %s resumed while still queued for %s", sim.ErrInvalidSchedule, p.record.ID, p.clinicians.Name())
		}
		return p.startService(c)
	case sim.AwaitingTimeout:
		if err := p.clinicians.Release(c, p); err != nil {
			return err
		}
		p.state = sim.Completed
		logrus.Debugf("[week %08.3f] %s leaves", c.Now(), p.record.ID)
		return nil
	default:
		return fmt.Errorf("%w: %s resumed in state %s", sim.ErrInvalidSchedule, p.record.ID, p.state)
	}
}

// startService holds the granted clinician for the visit.
func (p *Patient) startService(c *sim.Clock) error {
	p.state = sim.AwaitingTimeout
	return c.Timeout(p, p.serviceTime)
}
