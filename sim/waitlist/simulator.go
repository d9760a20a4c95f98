package waitlist

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/waitlist-sim/sim"
	"github.com/inference-sim/waitlist-sim/sim/trace"
)

// ErrAlreadyRan is returned by a second call to Simulator.Run.
var ErrAlreadyRan = errors.New("simulator already ran")

// Result is the output of one run.
type Result struct {
	Config  Config                 `json:"config"`
	Metrics *RunMetrics            `json:"metrics"`
	Summary Summary                `json:"summary"`
	Trace   *trace.SimulationTrace `json:"trace,omitempty"`
}

// Simulator owns the clock, the clinician pool and the metrics of one run.
type Simulator struct {
	Config     Config
	Clock      *sim.Clock
	Clinicians *sim.Resource
	Metrics    *RunMetrics
	Trace      *trace.SimulationTrace // nil unless Config.TraceLevel enables it

	arrivals *ArrivalGenerator
	monitor  *QueueMonitor
	ran      bool
}

// NewSimulator validates cfg and builds a simulator drawing arrivals from rng.
// No event executes until Run.
func NewSimulator(cfg Config, rng NormalSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: a random source is required", ErrInvalidConfiguration)
	}

	s := &Simulator{
		Config:     cfg,
		Clock:      sim.NewClock(),
		Clinicians: sim.NewResource("clinicians", cfg.Clinicians),
		Metrics:    NewRunMetrics(),
	}
	if tc := (trace.TraceConfig{Level: cfg.TraceLevel}); tc.Enabled() {
		s.Trace = trace.NewSimulationTrace(tc)
		s.Clinicians.SetTrace(s.Trace)
	}
	s.arrivals = NewArrivalGenerator(cfg, rng, s.Clinicians, s.Metrics)
	s.monitor = NewQueueMonitor(s.Clinicians, s.Metrics)
	return s, nil
}

// Run executes the simulation until the horizon and returns its result. An
// internal invariant violation aborts the run and no result is returned.
func (s *Simulator) Run() (*Result, error) {
	if s.ran {
		return nil, ErrAlreadyRan
	}
	s.ran = true

	horizon := s.Config.HorizonWeeks()
	logrus.Infof("Starting waitlist simulation: %d clinicians, %.3g patients/week (cv=%.2g), service=%.4g weeks, initial waitlist=%d, horizon=%g weeks",
		s.Config.Clinicians, s.Config.Patients, s.Config.ArrivalCV, s.Config.ServiceWeeks(), s.Config.InitialWaitlist, horizon)

	if err := s.Clock.Schedule(0, s.arrivals); err != nil {
		return nil, err
	}
	if err := s.Clock.ScheduleSecondary(0, s.monitor); err != nil {
		return nil, err
	}
	if err := s.Clock.RunUntil(horizon); err != nil {
		return nil, fmt.Errorf("waitlist simulation aborted: %w", err)
	}

	summary := s.summarize(horizon)
	logrus.Infof("[week %08.3f] Simulation ended: %d seen, %d waiting, %d events",
		s.Clock.Now(), summary.PatientsSeen, summary.FinalQueueLength, summary.EventsProcessed)

	return &Result{
		Config:  s.Config,
		Metrics: s.Metrics,
		Summary: summary,
		Trace:   s.Trace,
	}, nil
}

func (s *Simulator) summarize(horizon float64) Summary {
	summary := Summary{
		HorizonWeeks:     horizon,
		FinalQueueLength: s.Clinicians.QueueLen(),
		PatientsSeen:     len(s.Metrics.PatientsSeen),
		MeanWaitWeeks:    s.Metrics.MeanWait(),
		InService:        s.Clinicians.InUse(),
		PeakClinicians:   s.Clinicians.PeakInUse(),
		EventsProcessed:  s.Clock.Processed(),
	}
	for _, r := range s.Metrics.Patients {
		if r.Status == StatusWaiting {
			summary.StillWaiting++
		}
		if r.Backlog {
			summary.BacklogPatients++
		} else {
			summary.ArrivedPatients++
		}
	}
	return summary
}

// Run builds a simulator for cfg and runs it.
func Run(cfg Config, rng NormalSource) (*Result, error) {
	s, err := NewSimulator(cfg, rng)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
