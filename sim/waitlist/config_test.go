package waitlist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 156.0, cfg.HorizonWeeks())
	assert.Equal(t, 0.2, cfg.ServiceWeeks())
}

func TestConfig_HorizonWeeks_DurationWeeksOverridesYears(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationWeeks = 10
	assert.Equal(t, 10.0, cfg.HorizonWeeks())
}

func TestConfig_Validate_RejectsOutOfDomainValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero clinicians", func(c *Config) { c.Clinicians = 0 }},
		{"negative patients", func(c *Config) { c.Patients = -1 }},
		{"NaN patients", func(c *Config) { c.Patients = math.NaN() }},
		{"huge patients", func(c *Config) { c.Patients = 1e9 }},
		{"zero throughput", func(c *Config) { c.PatientsPerClinicianPerWeek = 0 }},
		{"infinite throughput", func(c *Config) { c.PatientsPerClinicianPerWeek = math.Inf(1) }},
		{"negative years", func(c *Config) { c.DurationYears = -1 }},
		{"negative weeks", func(c *Config) { c.DurationWeeks = -2 }},
		{"no horizon", func(c *Config) { c.DurationYears = 0; c.DurationWeeks = 0 }},
		{"negative waitlist", func(c *Config) { c.InitialWaitlist = -3 }},
		{"negative cv", func(c *Config) { c.ArrivalCV = -0.1 }},
		{"cv above bound", func(c *Config) { c.ArrivalCV = 1e4 }},
		{"huge cv", func(c *Config) { c.ArrivalCV = 1e300 }},
		{"unknown trace level", func(c *Config) { c.TraceLevel = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN a default config with one bad field
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			// WHEN validated
			err := cfg.Validate()

			// THEN the error is an InvalidConfiguration
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestConfig_Validate_AcceptsZeroMeanArrivals(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Patients = 0
	assert.NoError(t, cfg.Validate())
}

func TestNewSimulator_InvalidConfig_NoEventRuns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Clinicians = 0

	s, err := NewSimulator(cfg, nil)

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewSimulator_NilSource_Rejected(t *testing.T) {
	_, err := NewSimulator(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
