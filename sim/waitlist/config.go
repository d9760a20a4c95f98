package waitlist

import (
	"errors"
	"fmt"
	"math"

	"github.com/inference-sim/waitlist-sim/sim/trace"
)

// ErrInvalidConfiguration reports a parameter outside its domain.
var ErrInvalidConfiguration = errors.New("invalid configuration")

const (
	// WeeksPerYear converts DurationYears into the simulation horizon.
	WeeksPerYear = 52
	// WeekLength is the period of the arrival generator and queue monitor.
	WeekLength = 1.0
	// DefaultArrivalCV is the coefficient of variation of weekly arrivals.
	DefaultArrivalCV = 0.2
	// maxWeeklyPatients bounds the mean so arrival counts stay well inside int.
	maxWeeklyPatients = 1e6
	// maxArrivalCV bounds the spread of weekly arrivals.
	maxArrivalCV = 10.0
	// maxWeeklyArrivals caps one week's batch whatever the draw.
	maxWeeklyArrivals = 1e7
)

// Config is the full parameter set of one run.
type Config struct {
	// Mean new patients per week.
	Patients   float64 `yaml:"patients" json:"patients"`
	Clinicians int     `yaml:"clinicians" json:"clinicians"`

	// Service throughput; one visit lasts 1/PatientsPerClinicianPerWeek weeks.
	PatientsPerClinicianPerWeek float64 `yaml:"patients_per_clinician_per_week" json:"patients_per_clinician_per_week"`

	// DurationWeeks overrides DurationYears when > 0.
	DurationYears   int     `yaml:"duration_years" json:"duration_years"`
	DurationWeeks   float64 `yaml:"duration_weeks" json:"duration_weeks"`
	InitialWaitlist int     `yaml:"initial_waitlist" json:"initial_waitlist"`

	// Standard deviation of weekly arrivals as a fraction of Patients.
	ArrivalCV  float64          `yaml:"arrival_cv" json:"arrival_cv"`
	TraceLevel trace.TraceLevel `yaml:"trace_level" json:"trace_level"`
}

// DefaultConfig returns the defaults of the command-line tool.
func DefaultConfig() Config {
	return Config{
		Patients:                    25,
		Clinicians:                  4,
		PatientsPerClinicianPerWeek: 5,
		DurationYears:               3,
		InitialWaitlist:             0,
		ArrivalCV:                   DefaultArrivalCV,
		TraceLevel:                  trace.TraceLevelNone,
	}
}

// HorizonWeeks returns the stop time of the run.
func (c Config) HorizonWeeks() float64 {
	if c.DurationWeeks > 0 {
		return c.DurationWeeks
	}
	return float64(c.DurationYears * WeeksPerYear)
}

// ServiceWeeks returns the fixed time a clinician spends with one patient.
func (c Config) ServiceWeeks() float64 {
	return 1 / c.PatientsPerClinicianPerWeek
}

// Validate checks every parameter; the returned error wraps ErrInvalidConfiguration.
func (c Config) Validate() error {
	if !isFinite(c.Patients) || c.Patients < 0 || c.Patients > maxWeeklyPatients {
		return fmt.Errorf("%w: patients must be in [0, %g], got %g", ErrInvalidConfiguration, float64(maxWeeklyPatients), c.Patients)
	}
	if c.Clinicians < 1 {
		return fmt.Errorf("%w: clinicians must be >= 1, got %d", ErrInvalidConfiguration, c.Clinicians)
	}
	if !isFinite(c.PatientsPerClinicianPerWeek) || c.PatientsPerClinicianPerWeek <= 0 {
		return fmt.Errorf("%w: patients_per_clinician_per_week must be positive, got %g", ErrInvalidConfiguration, c.PatientsPerClinicianPerWeek)
	}
	if c.DurationYears < 0 {
		return fmt.Errorf("%w: duration_years must be non-negative, got %d", ErrInvalidConfiguration, c.DurationYears)
	}
	if !isFinite(c.DurationWeeks) || c.DurationWeeks < 0 {
		return fmt.Errorf("%w: duration_weeks must be non-negative, got %g", ErrInvalidConfiguration, c.DurationWeeks)
	}
	if c.HorizonWeeks() <= 0 {
		return fmt.Errorf("%w: one of duration_years or duration_weeks must be positive", ErrInvalidConfiguration)
	}
	if c.InitialWaitlist < 0 {
		return fmt.Errorf("%w: initial_waitlist must be non-negative, got %d", ErrInvalidConfiguration, c.InitialWaitlist)
	}
	if !isFinite(c.ArrivalCV) || c.ArrivalCV < 0 || c.ArrivalCV > maxArrivalCV {
		return fmt.Errorf("%w: arrival_cv must be in [0, %g], got %g", ErrInvalidConfiguration, maxArrivalCV, c.ArrivalCV)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("%w: unknown trace_level %q; valid: none, decisions", ErrInvalidConfiguration, c.TraceLevel)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
